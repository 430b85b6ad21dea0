package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"hrms-backend/internal/service"
)

type PayrollHandler struct {
	payroll *service.PayrollService
}

func NewPayrollHandler(payroll *service.PayrollService) *PayrollHandler {
	return &PayrollHandler{payroll: payroll}
}

// POST /payroll/payslips  (admin, hr)
func (h *PayrollHandler) Compute(c echo.Context) error {
	var req struct {
		EmployeeID uint   `json:"employee_id"`
		Year       int    `json:"year"`
		Month      int    `json:"month"`
		PaidDate   string `json:"paid_date"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid payload"})
	}

	var paidDate *time.Time
	if req.PaidDate != "" {
		d, err := time.Parse("2006-01-02", req.PaidDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": "paid_date must be YYYY-MM-DD"})
		}
		paidDate = &d
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	payslip, err := h.payroll.ComputePayslip(ctx, req.EmployeeID, req.Year, req.Month, paidDate)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, payslip)
}

// GET /payroll/payslips?year=&month=  (admin, hr)
func (h *PayrollHandler) List(c echo.Context) error {
	year, okY := queryInt(c, "year")
	month, okM := queryInt(c, "month")
	if !okY || !okM {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "year and month are required"})
	}

	payslips, err := h.payroll.ListPayslips(year, month)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, payslips)
}

// POST /payroll/payslips/:id/pay  (admin)
func (h *PayrollHandler) Pay(c echo.Context) error {
	id, ok := paramUint(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid payslip id"})
	}

	transactionID, err := h.payroll.MarkPaid(id, time.Now())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"transaction_id": transactionID})
}
