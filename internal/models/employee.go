package models

import (
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleEmployee = "employee"
)

type Employee struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FirstName    string    `gorm:"not null" json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         string    `gorm:"default:'employee';index" json:"role"`
	HireDate     time.Time `gorm:"type:date;not null" json:"hire_date"`

	// Comma-separated weekday names, e.g. "SUN" or "SAT,SUN".
	WeeklyOffDays string `gorm:"default:'SUN'" json:"weekly_off_days"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// IsAdmin reports whether the employee holds the admin role.
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// HiredBy reports whether the employee was already hired on the given date.
func (e *Employee) HiredBy(date time.Time) bool {
	return !e.HireDate.After(date)
}
