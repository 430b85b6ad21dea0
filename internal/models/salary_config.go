package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryConfig holds the per-employee salary components used by payroll
// computation. Rates must be non-negative.
type SalaryConfig struct {
	ID         uint `gorm:"primarykey" json:"id"`
	EmployeeID uint `gorm:"not null;uniqueIndex" json:"employee_id"`

	BasicSalary     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"basic_salary"`
	HRARate         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"hra_rate"` // fraction of basic
	TravelAllowance decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"travel_allowance"`
	OvertimeRate    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"overtime_rate"`     // per hour
	LatePenaltyRate decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"late_penalty_rate"` // per late day
	Deductions      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"deductions"`        // flat monthly

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Employee Employee `gorm:"foreignKey:EmployeeID" json:"-"`
}

func (SalaryConfig) TableName() string {
	return "salary_configs"
}

// IsValid reports whether every component is non-negative.
func (c *SalaryConfig) IsValid() bool {
	for _, d := range []decimal.Decimal{
		c.BasicSalary, c.HRARate, c.TravelAllowance,
		c.OvertimeRate, c.LatePenaltyRate, c.Deductions,
	} {
		if d.IsNegative() {
			return false
		}
	}
	return true
}
