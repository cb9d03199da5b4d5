package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/SKH-TMS/tms-api/internal/api/metrics"
	"github.com/SKH-TMS/tms-api/internal/core/domain"
	"github.com/SKH-TMS/tms-api/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project operations.
type ProjectHandler struct {
	projects    ports.ProjectService
	assignments ports.AssignmentService
}

func NewProjectHandler(projects ports.ProjectService, assignments ports.AssignmentService) *ProjectHandler {
	return &ProjectHandler{projects: projects, assignments: assignments}
}

// Create handles POST /api/projectManagerData/createProject.
//
// @Summary      Create a project, optionally assigning it to a team
// @Tags         projectManagerData
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      403   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/projectManagerData/createProject [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
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

	result, err := h.projects.CreateProject(c.Request().Context(), ports.CreateProjectInput{
		Title:          req.Title,
		Description:    req.Description,
		Deadline:       req.Deadline,
		AssignedTeamID: req.AssignedTeam,
		ActorEmail:     email,
	})
	if err != nil {
		return err
	}

	metrics.ProjectsCreatedTotal.WithLabelValues(strconv.FormatBool(result.AssignedTeam != nil)).Inc()

	data := createProjectData{Project: toProjectResponse(result.Project)}
	msg := "project created successfully without assigning a team"
	if result.AssignedTeam != nil {
		team := toTeamResponse(result.AssignedTeam)
		data.AssignedTeam = &team
		msg = "project created and assigned to team successfully"
	}

	return respond(c, http.StatusCreated, msg, data)
}

// Assign handles POST /api/projectManagerData/assignProject.
//
// @Summary      Assign an existing project to an existing team
// @Tags         projectManagerData
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      assignProjectRequest  true  "Assignment details"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Failure      409   {object}  envelope
// @Router       /api/projectManagerData/assignProject [post]
func (h *ProjectHandler) Assign(c echo.Context) error {
	var req assignProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	deadline, err := domain.ParseDeadline(req.Deadline)
	if err != nil {
		return err
	}

	email, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	log, err := h.assignments.AssignProject(c.Request().Context(), ports.AssignProjectInput{
		ProjectID:  req.ProjectID,
		TeamID:     req.TeamID,
		Deadline:   deadline,
		ActorEmail: email,
	})
	if err != nil {
		if err == domain.ErrProjectAlreadyAssigned {
			metrics.AssignmentConflictsTotal.Inc()
		}
		return err
	}

	metrics.AssignmentsTotal.Inc()
	return respond(c, http.StatusOK, "project assigned successfully", toAssignmentResponse(log))
}

// Get handles GET /api/projectManagerData/projects/:projectId.
//
// @Summary      Get a project with its assignment
// @Tags         projectManagerData
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string  true  "Project id (e.g. Project-3)"
// @Success      200        {object}  envelope
// @Failure      404        {object}  envelope
// @Router       /api/projectManagerData/projects/{projectId} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	view, err := h.projects.GetProject(c.Request().Context(), c.Param("projectId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "project fetched successfully", toProjectViewResponse(*view))
}

// List handles GET /api/projectManagerData/projects.
//
// @Summary      List projects with their assignments
// @Tags         projectManagerData
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Router       /api/projectManagerData/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	views, err := h.projects.ListProjects(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]projectViewResponse, len(views))
	for i, v := range views {
		items[i] = toProjectViewResponse(v)
	}
	return respond(c, http.StatusOK, "projects fetched successfully", items)
}
