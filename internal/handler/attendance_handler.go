package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"hrms-backend/internal/models"
	"hrms-backend/internal/service"
)

type AttendanceHandler struct {
	attendance  *service.AttendanceService
	aggregation *service.AggregationService
}

func NewAttendanceHandler(
	attendance *service.AttendanceService,
	aggregation *service.AggregationService,
) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance, aggregation: aggregation}
}

// POST /attendance/check-in
func (h *AttendanceHandler) CheckIn(c echo.Context) error {
	record, err := h.attendance.CheckIn(currentEmployeeID(c), time.Now())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, record)
}

// POST /attendance/check-out
func (h *AttendanceHandler) CheckOut(c echo.Context) error {
	record, err := h.attendance.CheckOut(currentEmployeeID(c), time.Now())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, record)
}

// POST /attendance/mark  (admin, hr)
func (h *AttendanceHandler) Mark(c echo.Context) error {
	var req struct {
		EmployeeID uint   `json:"employee_id"`
		Date       string `json:"date"`
		Status     string `json:"status"`
		Notes      string `json:"notes"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid payload"})
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "date must be YYYY-MM-DD"})
	}

	record, err := h.attendance.MarkStatus(req.EmployeeID, date, req.Status, req.Notes)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, record)
}

// GET /attendance/summary?employee_id=&year=&month=
// Employees may read their own summary; admin and hr may read anyone's.
func (h *AttendanceHandler) MonthlySummary(c echo.Context) error {
	employeeID, ok := queryUint(c, "employee_id")
	if !ok {
		employeeID = currentEmployeeID(c)
	}
	year, okY := queryInt(c, "year")
	month, okM := queryInt(c, "month")
	if !okY || !okM {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "year and month are required"})
	}

	role := currentRole(c)
	if employeeID != currentEmployeeID(c) && role != models.RoleAdmin && role != models.RoleHR {
		return c.JSON(http.StatusForbidden, map[string]any{"error": "FORBIDDEN"})
	}

	// Store reads get a bounded window; expiry surfaces as 503.
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	summary, err := h.aggregation.ComputeMonthlySummary(ctx, employeeID, year, month)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// PUT /attendance/summary/lock  (admin, hr)
func (h *AttendanceHandler) SetSummaryLock(c echo.Context) error {
	var req struct {
		EmployeeID uint `json:"employee_id"`
		Year       int  `json:"year"`
		Month      int  `json:"month"`
		Locked     bool `json:"locked"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid payload"})
	}

	if err := h.aggregation.SetSummaryLock(req.EmployeeID, req.Year, req.Month, req.Locked); err != nil {
		return jsonError(c, err)
	}

	status := models.SummaryUnlocked
	if req.Locked {
		status = models.SummaryLocked
	}
	return c.JSON(http.StatusOK, map[string]any{"status": status})
}
