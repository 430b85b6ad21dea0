package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"hrms-backend/internal/dispatch"
	"hrms-backend/internal/service"
)

// jsonError maps service sentinels onto HTTP statuses; everything else is a
// 500.
func jsonError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidPeriod):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrEmployeeNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrIncompleteSummary):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrInvalidConfiguration):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, dispatch.ErrUnknownScope):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{"error": err.Error()})
}

func currentEmployeeID(c echo.Context) uint {
	id, _ := c.Get("employee_id").(uint)
	return id
}

func currentRole(c echo.Context) string {
	role, _ := c.Get("role").(string)
	return role
}

func queryUint(c echo.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.QueryParam(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

func queryInt(c echo.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0, false
	}
	return v, true
}

func paramUint(c echo.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}
