package handler

import (
	"github.com/SKH-TMS/tms-api/internal/core/domain"
	"github.com/SKH-TMS/tms-api/internal/core/ports"
)

// --- Domain → HTTP response ---

func toIdentityResponse(id domain.Identity) identityResponse {
	return identityResponse{Email: id.Email, UserID: id.UserID}
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ProjectID:   p.ProjectID,
		Title:       p.Title,
		Description: p.Description,
		CreatedBy:   toIdentityResponse(p.CreatedBy),
		Deadline:    p.Deadline,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt.UTC(),
	}
}

func toTeamResponse(t *domain.Team) teamResponse {
	return teamResponse{
		TeamID:     t.TeamID,
		TeamName:   t.TeamName,
		TeamLeader: t.TeamLeader,
		Members:    t.Members,
		CreatedAt:  t.CreatedAt.UTC(),
	}
}

func toAssignmentResponse(l *domain.AssignedProjectLog) assignmentResponse {
	return assignmentResponse{
		ProjectID:  l.ProjectID,
		TeamID:     l.TeamID,
		TeamName:   l.TeamName,
		AssignedBy: toIdentityResponse(l.AssignedBy),
		Deadline:   l.Deadline.UTC(),
		CreatedAt:  l.CreatedAt.UTC(),
	}
}

func toProjectViewResponse(v ports.ProjectView) projectViewResponse {
	resp := projectViewResponse{Project: toProjectResponse(v.Project)}
	if v.Assignment != nil {
		a := toAssignmentResponse(v.Assignment)
		resp.Assignment = &a
	}
	return resp
}
