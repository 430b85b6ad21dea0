package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hrms-backend/internal/middleware"
	"hrms-backend/internal/models"
)

// Register wires all HTTP routes.
func Register(
	e *echo.Echo,
	jwtSecret string,
	auth *AuthHandler,
	attendance *AttendanceHandler,
	payroll *PayrollHandler,
	project *ProjectHandler,
	holiday *HolidayHandler,
	notification *NotificationHandler,
	ws *WSHandler,
) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"status": "ok"})
	})

	e.POST("/auth/login", auth.Login)

	api := e.Group("", middleware.RequireAuth(jwtSecret))
	staff := middleware.RequireRole(models.RoleAdmin, models.RoleHR)
	admin := middleware.RequireRole(models.RoleAdmin)

	api.POST("/employees", auth.CreateEmployee, admin)
	api.GET("/employees", auth.ListEmployees, staff)

	api.POST("/attendance/check-in", attendance.CheckIn)
	api.POST("/attendance/check-out", attendance.CheckOut)
	api.POST("/attendance/mark", attendance.Mark, staff)
	api.GET("/attendance/summary", attendance.MonthlySummary)
	api.PUT("/attendance/summary/lock", attendance.SetSummaryLock, staff)

	api.POST("/payroll/payslips", payroll.Compute, staff)
	api.GET("/payroll/payslips", payroll.List, staff)
	api.POST("/payroll/payslips/:id/pay", payroll.Pay, admin)

	api.POST("/projects", project.Create, staff)
	api.POST("/projects/:id/members", project.AddMember, staff)

	api.POST("/holidays", holiday.Create, staff)
	api.GET("/holidays", holiday.List)

	api.POST("/notifications/meeting-reminder", notification.MeetingReminder, staff)
	api.POST("/notifications/meeting-started", notification.MeetingStarted, staff)
	api.POST("/notifications/task-reminder", notification.TaskReminder, staff)

	api.GET("/ws", ws.Connect)
}
