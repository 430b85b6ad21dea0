package models

import (
	"time"
)

type AttendanceRecord struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	EmployeeID uint      `gorm:"not null;uniqueIndex:idx_attendance_employee_date,priority:1" json:"employee_id"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:idx_attendance_employee_date,priority:2" json:"date"`

	CheckIn  *time.Time `json:"check_in"`
	CheckOut *time.Time `json:"check_out"`

	Status string `gorm:"type:varchar(20);not null;index" json:"status"`

	// Derived from check-in/check-out.
	WorkedMinutes int `gorm:"not null;default:0" json:"worked_minutes"`

	Notes     string    `json:"notes"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Employee Employee `gorm:"foreignKey:EmployeeID" json:"-"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

// Attendance statuses.
const (
	StatusPresent   = "present"
	StatusLate      = "late"
	StatusAbsent    = "absent"
	StatusHalfDay   = "half-day"
	StatusLeave     = "leave"
	StatusTravel    = "travel"
	StatusHoliday   = "holiday"
	StatusWeeklyOff = "weekly-off"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusPresent, StatusLate, StatusAbsent, StatusHalfDay,
		StatusLeave, StatusTravel, StatusHoliday, StatusWeeklyOff:
		return true
	}
	return false
}

// CountsAsPresent reports whether the status contributes to presentDays.
func CountsAsPresent(status string) bool {
	return status == StatusPresent || status == StatusLate || status == StatusHalfDay
}

// CalculateWorkedMinutes computes minutes between check-in and check-out.
func (r *AttendanceRecord) CalculateWorkedMinutes() int {
	if r.CheckIn == nil || r.CheckOut == nil || r.CheckOut.IsZero() {
		return 0
	}
	return int(r.CheckOut.Sub(*r.CheckIn).Minutes())
}

// UpdateCalculatedFields refreshes the derived fields.
func (r *AttendanceRecord) UpdateCalculatedFields() {
	r.WorkedMinutes = r.CalculateWorkedMinutes()
}

// IsOpen reports whether the record has a check-in without a check-out.
func (r *AttendanceRecord) IsOpen() bool {
	return r.CheckIn != nil && (r.CheckOut == nil || r.CheckOut.IsZero())
}

// IsValid checks structural validity of the record.
func (r *AttendanceRecord) IsValid() bool {
	if r.EmployeeID == 0 {
		return false
	}
	if r.Date.IsZero() {
		return false
	}
	if !ValidStatus(r.Status) {
		return false
	}
	if r.CheckIn != nil && r.CheckOut != nil && !r.CheckOut.IsZero() && r.CheckOut.Before(*r.CheckIn) {
		return false
	}
	return true
}
