package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SKH-TMS/tms-api/internal/api/metrics"
	"github.com/SKH-TMS/tms-api/internal/core/domain"
	"github.com/SKH-TMS/tms-api/internal/core/ports"
)

// AdminHandler handles the administrative user-directory operations.
type AdminHandler struct {
	directory ports.DirectoryService
}

func NewAdminHandler(directory ports.DirectoryService) *AdminHandler {
	return &AdminHandler{directory: directory}
}

type assignProjectManagerRequest struct {
	Emails []string `json:"emails" validate:"required,min=1,dive,email"`
}

// AssignProjectManager grants the ProjectManager role to every listed user.
//
// @Summary      Bulk-assign the ProjectManager role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      assignProjectManagerRequest  true  "Emails of the users to promote"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      403   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/adminData/assignProjectManager [put]
func (h *AdminHandler) AssignProjectManager(c echo.Context) error {
	var req assignProjectManagerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no valid users provided for role assignment")
	}

	email, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	userID, _ := c.Get("user_id").(string)

	modified, err := h.directory.AssignProjectManagers(c.Request().Context(),
		domain.Identity{Email: email, UserID: userID}, req.Emails)
	if err != nil {
		return err
	}

	metrics.RoleGrantsTotal.Add(float64(modified))

	msg := fmt.Sprintf("%d user(s) assigned as Project Manager successfully", modified)
	return respond(c, http.StatusOK, msg, map[string]int64{"modified": modified})
}
