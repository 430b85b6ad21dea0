package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"hrms-backend/internal/dispatch"
	"hrms-backend/internal/models"
	"hrms-backend/internal/repository"
)

type ProjectHandler struct {
	projectRepo repository.ProjectRepository
	dispatcher  *dispatch.Dispatcher
}

func NewProjectHandler(projectRepo repository.ProjectRepository, dispatcher *dispatch.Dispatcher) *ProjectHandler {
	return &ProjectHandler{projectRepo: projectRepo, dispatcher: dispatcher}
}

// POST /projects  (admin, hr)
func (h *ProjectHandler) Create(c echo.Context) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "name is required"})
	}

	project := &models.Project{Name: req.Name, Description: req.Description}
	if err := h.projectRepo.Create(project); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, project)
}

// POST /projects/:id/members  (admin, hr)
// Assigning a member notifies the whole roster.
func (h *ProjectHandler) AddMember(c echo.Context) error {
	projectID, ok := paramUint(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid project id"})
	}

	var req struct {
		EmployeeID uint `json:"employee_id"`
	}
	if err := c.Bind(&req); err != nil || req.EmployeeID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "employee_id is required"})
	}

	project, err := h.projectRepo.GetByID(projectID)
	if err != nil {
		return jsonError(c, err)
	}
	if project == nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "project not found"})
	}

	if err := h.projectRepo.AddMember(projectID, req.EmployeeID); err != nil {
		return jsonError(c, err)
	}

	event := dispatch.ProjectAssigned{
		ProjectID:   projectID,
		ProjectName: project.Name,
		AssignedAt:  time.Now(),
	}
	if err := h.dispatcher.Dispatch(event); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"project_id": projectID, "employee_id": req.EmployeeID})
}
