package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SKH-TMS/tms-api/internal/api/metrics"
	"github.com/SKH-TMS/tms-api/internal/core/ports"
)

// TeamHandler handles HTTP requests for team operations.
type TeamHandler struct {
	teams ports.TeamService
}

func NewTeamHandler(teams ports.TeamService) *TeamHandler {
	return &TeamHandler{teams: teams}
}

// Create handles POST /api/projectManagerData/createTeam.
//
// @Summary      Create a team, optionally assigning a project to it
// @Tags         projectManagerData
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTeamRequest  true  "Team details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      403   {object}  envelope
// @Failure      404   {object}  envelope
// @Failure      409   {object}  envelope
// @Router       /api/projectManagerData/createTeam [post]
func (h *TeamHandler) Create(c echo.Context) error {
	var req createTeamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	email, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	members := make([]ports.MemberInput, len(req.Members))
	for i, m := range req.Members {
		members[i] = ports.MemberInput{Email: m.Email, UserID: m.UserID}
	}

	result, err := h.teams.CreateTeam(c.Request().Context(), ports.CreateTeamInput{
		TeamName:          req.TeamName,
		TeamLeader:        ports.MemberInput{Email: req.TeamLeader.Email, UserID: req.TeamLeader.UserID},
		Members:           members,
		AssignedProjectID: req.AssignedProject,
		Deadline:          req.Deadline,
		ActorEmail:        email,
	})
	if err != nil {
		return err
	}

	metrics.TeamsCreatedTotal.Inc()

	msg := "team created successfully without project assignment"
	if result.Assigned {
		msg = "team created and assigned to the project successfully"
	}
	return respond(c, http.StatusCreated, msg, toTeamResponse(result.Team))
}

// List handles GET /api/projectManagerData/teams.
//
// @Summary      List teams
// @Tags         projectManagerData
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Router       /api/projectManagerData/teams [get]
func (h *TeamHandler) List(c echo.Context) error {
	teams, err := h.teams.ListTeams(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]teamResponse, len(teams))
	for i, t := range teams {
		items[i] = toTeamResponse(t)
	}
	return respond(c, http.StatusOK, "teams fetched successfully", items)
}
