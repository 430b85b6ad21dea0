package models

import (
	"time"
)

// Summary lock states.
const (
	SummaryLocked   = "Locked"
	SummaryUnlocked = "Unlocked"
)

// MonthlySummary is derived data, recomputed on demand from attendance
// records and calendar metadata. It is never persisted; only the lock flag
// is (see SummaryLock).
type MonthlySummary struct {
	EmployeeID uint `json:"employee_id"`
	Year       int  `json:"year"`
	Month      int  `json:"month"`

	TotalDays      int `json:"total_days"`
	WorkingDays    int `json:"working_days"`
	NonWorkingDays int `json:"non_working_days"`

	PresentDays   int `json:"present_days"`
	LeaveDays     int `json:"leave_days"`
	TravelDays    int `json:"travel_days"`
	Holidays      int `json:"holidays"`
	WeeklyOffDays int `json:"weekly_off_days"`
	AbsentDays    int `json:"absent_days"`

	EarlyGoingDays int     `json:"early_going_days"`
	LateComingDays int     `json:"late_coming_days"`
	OvertimeHours  float64 `json:"overtime_hours"`

	PayableDays int `json:"payable_days"`

	Status string `json:"status"` // Locked | Unlocked
}

// IsConsistent checks the structural invariants of a computed summary.
func (s *MonthlySummary) IsConsistent() bool {
	if s.TotalDays != s.WorkingDays+s.NonWorkingDays {
		return false
	}
	if s.PayableDays > s.TotalDays || s.PayableDays < 0 {
		return false
	}
	for _, v := range []int{
		s.PresentDays, s.LeaveDays, s.TravelDays, s.Holidays,
		s.WeeklyOffDays, s.AbsentDays, s.EarlyGoingDays, s.LateComingDays,
	} {
		if v < 0 {
			return false
		}
	}
	return s.OvertimeHours >= 0
}

// IsLocked reports whether the summary has been administratively locked.
func (s *MonthlySummary) IsLocked() bool {
	return s.Status == SummaryLocked
}

// SummaryLock is the persisted administrative Locked/Unlocked flag for one
// employee-period. It is informational state, toggled explicitly; the numeric
// summary fields are always recomputed regardless.
type SummaryLock struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	EmployeeID uint      `gorm:"not null;uniqueIndex:idx_summary_lock_period,priority:1" json:"employee_id"`
	Year       int       `gorm:"not null;uniqueIndex:idx_summary_lock_period,priority:2" json:"year"`
	Month      int       `gorm:"not null;check:month >= 1 AND month <= 12;uniqueIndex:idx_summary_lock_period,priority:3" json:"month"`
	Locked     bool      `gorm:"not null;default:false" json:"locked"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SummaryLock) TableName() string {
	return "summary_locks"
}
