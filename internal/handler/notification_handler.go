package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"hrms-backend/internal/dispatch"
)

// NotificationHandler exposes the trigger endpoints for scheduled and manual
// notification events.
type NotificationHandler struct {
	dispatcher *dispatch.Dispatcher
}

func NewNotificationHandler(dispatcher *dispatch.Dispatcher) *NotificationHandler {
	return &NotificationHandler{dispatcher: dispatcher}
}

// POST /notifications/meeting-reminder  (admin, hr)
// One event per invitee; each invitee is its own recipient scope.
func (h *NotificationHandler) MeetingReminder(c echo.Context) error {
	var req struct {
		MeetingID   uint      `json:"meeting_id"`
		Title       string    `json:"title"`
		StartsAt    time.Time `json:"starts_at"`
		EmployeeIDs []uint    `json:"employee_ids"`
	}
	if err := c.Bind(&req); err != nil || len(req.EmployeeIDs) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "meeting_id, title and employee_ids are required"})
	}

	for _, employeeID := range req.EmployeeIDs {
		event := dispatch.MeetingReminder{
			MeetingID:  req.MeetingID,
			Title:      req.Title,
			StartsAt:   req.StartsAt,
			EmployeeID: employeeID,
		}
		if err := h.dispatcher.Dispatch(event); err != nil {
			return jsonError(c, err)
		}
	}

	return c.JSON(http.StatusAccepted, map[string]any{"recipients": len(req.EmployeeIDs)})
}

// POST /notifications/meeting-started  (admin, hr)
func (h *NotificationHandler) MeetingStarted(c echo.Context) error {
	var req struct {
		MeetingID uint   `json:"meeting_id"`
		Title     string `json:"title"`
		RoomURL   string `json:"room_url"`
		Role      string `json:"role"`
	}
	if err := c.Bind(&req); err != nil || req.Role == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "meeting_id, title and role are required"})
	}

	event := dispatch.MeetingStarted{
		MeetingID: req.MeetingID,
		Title:     req.Title,
		StartedAt: time.Now(),
		RoomURL:   req.RoomURL,
		Role:      req.Role,
	}
	if err := h.dispatcher.Dispatch(event); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusAccepted, map[string]any{"kind": event.Kind()})
}

// POST /notifications/task-reminder  (admin, hr)
func (h *NotificationHandler) TaskReminder(c echo.Context) error {
	var req struct {
		TaskID     uint      `json:"task_id"`
		Title      string    `json:"title"`
		DueAt      time.Time `json:"due_at"`
		EmployeeID uint      `json:"employee_id"`
	}
	if err := c.Bind(&req); err != nil || req.EmployeeID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "task_id, title and employee_id are required"})
	}

	event := dispatch.TaskReminder{
		TaskID:     req.TaskID,
		Title:      req.Title,
		DueAt:      req.DueAt,
		EmployeeID: req.EmployeeID,
	}
	if err := h.dispatcher.Dispatch(event); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusAccepted, map[string]any{"kind": event.Kind()})
}
