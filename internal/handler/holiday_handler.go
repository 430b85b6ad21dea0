package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"hrms-backend/internal/models"
	"hrms-backend/internal/repository"
)

type HolidayHandler struct {
	holidayRepo repository.HolidayRepository
}

func NewHolidayHandler(holidayRepo repository.HolidayRepository) *HolidayHandler {
	return &HolidayHandler{holidayRepo: holidayRepo}
}

// POST /holidays  (admin, hr)
func (h *HolidayHandler) Create(c echo.Context) error {
	var req struct {
		Date string `json:"date"`
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "date and name are required"})
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "date must be YYYY-MM-DD"})
	}

	holiday := &models.Holiday{Date: date, Name: req.Name}
	if err := h.holidayRepo.Create(holiday); err != nil {
		return c.JSON(http.StatusConflict, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, holiday)
}

// GET /holidays?year=
func (h *HolidayHandler) List(c echo.Context) error {
	year, ok := queryInt(c, "year")
	if !ok {
		year = time.Now().Year()
	}

	from := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)

	holidays, err := h.holidayRepo.ListByRange(c.Request().Context(), from, to)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, holidays)
}
