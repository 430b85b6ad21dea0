package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"hrms-backend/internal/middleware"
	"hrms-backend/internal/models"
	"hrms-backend/internal/repository"
)

type AuthHandler struct {
	employeeRepo repository.EmployeeRepository
	jwtSecret    string
}

func NewAuthHandler(employeeRepo repository.EmployeeRepository, jwtSecret string) *AuthHandler {
	return &AuthHandler{employeeRepo: employeeRepo, jwtSecret: jwtSecret}
}

// POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid payload"})
	}

	employee, err := h.employeeRepo.GetByEmail(req.Email)
	if err != nil {
		return jsonError(c, err)
	}
	if employee == nil {
		return c.JSON(http.StatusUnauthorized, map[string]any{"error": "invalid credentials"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(req.Password)); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]any{"error": "invalid credentials"})
	}

	token, err := middleware.IssueToken(h.jwtSecret, employee.ID, employee.Role, employee.FirstName)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"token":    token,
		"employee": employee,
	})
}

// POST /employees  (admin)
func (h *AuthHandler) CreateEmployee(c echo.Context) error {
	var req struct {
		Email         string `json:"email"`
		Password      string `json:"password"`
		FirstName     string `json:"first_name"`
		LastName      string `json:"last_name"`
		Role          string `json:"role"`
		HireDate      string `json:"hire_date"`
		WeeklyOffDays string `json:"weekly_off_days"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid payload"})
	}
	if req.Email == "" || req.Password == "" || req.FirstName == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "email, password and first_name are required"})
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "hire_date must be YYYY-MM-DD"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return jsonError(c, err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleEmployee
	}
	offDays := req.WeeklyOffDays
	if offDays == "" {
		offDays = "SUN"
	}

	employee := &models.Employee{
		Email:         req.Email,
		PasswordHash:  string(hash),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Role:          role,
		HireDate:      hireDate,
		WeeklyOffDays: offDays,
	}
	if err := h.employeeRepo.Create(employee); err != nil {
		return c.JSON(http.StatusConflict, map[string]any{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, employee)
}

// GET /employees  (admin, hr)
func (h *AuthHandler) ListEmployees(c echo.Context) error {
	employees, err := h.employeeRepo.GetAll()
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, employees)
}
