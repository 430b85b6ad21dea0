package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment statuses.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

type Payslip struct {
	ID         uint `gorm:"primarykey" json:"id"`
	EmployeeID uint `gorm:"not null;uniqueIndex:idx_payslip_period,priority:1" json:"employee_id"`
	Year       int  `gorm:"not null;uniqueIndex:idx_payslip_period,priority:2" json:"year"`
	Month      int  `gorm:"not null;check:month >= 1 AND month <= 12;uniqueIndex:idx_payslip_period,priority:3" json:"month"`

	BasicSalary     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"basic_salary"`
	HRAAmount       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"hra_amount"`
	TravelAllowance decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"travel_allowance"`
	OvertimePay     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"overtime_pay"`
	LatePenalty     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"late_penalty"`
	Deductions      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"deductions"`
	GrossSalary     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"gross_salary"`
	NetSalary       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"net_salary"`

	PayableDays    int     `gorm:"not null;default:0" json:"payable_days"`
	PresentDays    int     `gorm:"not null;default:0" json:"present_days"`
	LeaveDays      int     `gorm:"not null;default:0" json:"leave_days"`
	AbsentDays     int     `gorm:"not null;default:0" json:"absent_days"`
	LateComingDays int     `gorm:"not null;default:0" json:"late_coming_days"`
	OvertimeHours  float64 `gorm:"not null;default:0" json:"overtime_hours"`

	// Provisional marks a payslip computed from an Unlocked summary.
	Provisional bool `gorm:"not null;default:false" json:"provisional"`

	PaymentStatus string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"payment_status"`
	PaidDate      *time.Time `gorm:"type:date" json:"paid_date"`
	TransactionID string     `json:"transaction_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Employee Employee `gorm:"foreignKey:EmployeeID" json:"-"`
}

func (Payslip) TableName() string {
	return "payslips"
}

// IsPaid reports whether the payslip has been settled. Paid payslips are
// immutable except for transaction id attachment.
func (p *Payslip) IsPaid() bool {
	return p.PaymentStatus == PaymentPaid
}

// InvariantsHold verifies gross = basic+hra+travel+overtime and
// net = gross - (latePenalty + deductions).
func (p *Payslip) InvariantsHold() bool {
	gross := p.BasicSalary.Add(p.HRAAmount).Add(p.TravelAllowance).Add(p.OvertimePay)
	if !p.GrossSalary.Equal(gross) {
		return false
	}
	net := gross.Sub(p.LatePenalty.Add(p.Deductions))
	return p.NetSalary.Equal(net)
}
