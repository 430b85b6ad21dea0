package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"hrms-backend/internal/models"
	"hrms-backend/internal/repository"
)

// PayrollService turns monthly summaries and salary configurations into
// payslip records.
type PayrollService struct {
	aggregation *AggregationService
	salaryRepo  repository.SalaryConfigRepository
	payslipRepo repository.PayslipRepository
	logger      *logrus.Logger
}

func NewPayrollService(
	aggregation *AggregationService,
	salaryRepo repository.SalaryConfigRepository,
	payslipRepo repository.PayslipRepository,
) *PayrollService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &PayrollService{
		aggregation: aggregation,
		salaryRepo:  salaryRepo,
		payslipRepo: payslipRepo,
		logger:      logger,
	}
}

// ComputePayslip computes and stores the payslip for one employee-period.
// Recomputation from identical inputs yields an identical record; a payslip
// that has already been paid is never overwritten.
func (s *PayrollService) ComputePayslip(ctx context.Context, employeeID uint, year, month int, paidDate *time.Time) (*models.Payslip, error) {
	summary, err := s.aggregation.ComputeMonthlySummary(ctx, employeeID, year, month)
	if err != nil {
		return nil, err
	}

	config, err := s.salaryRepo.GetByEmployeeID(employeeID)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, fmt.Errorf("%w: no salary config for employee %d", ErrInvalidConfiguration, employeeID)
	}

	payslip, err := BuildPayslip(summary, config, paidDate)
	if err != nil {
		return nil, err
	}

	if err := s.payslipRepo.Save(payslip); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"year":        year,
		"month":       month,
		"gross":       payslip.GrossSalary.String(),
		"net":         payslip.NetSalary.String(),
		"provisional": payslip.Provisional,
	}).Info("Payslip computed")

	return payslip, nil
}

// BuildPayslip derives a payslip from a summary and a salary configuration.
// Deterministic: no hidden randomness or current-time dependence beyond the
// caller-supplied paid date.
func BuildPayslip(summary *models.MonthlySummary, config *models.SalaryConfig, paidDate *time.Time) (*models.Payslip, error) {
	if summary == nil || !summary.IsConsistent() {
		return nil, fmt.Errorf("%w", ErrIncompleteSummary)
	}
	if config == nil || !config.IsValid() {
		return nil, fmt.Errorf("%w", ErrInvalidConfiguration)
	}

	hra := config.BasicSalary.Mul(config.HRARate)
	overtimePay := decimal.NewFromFloat(summary.OvertimeHours).Mul(config.OvertimeRate)
	latePenalty := config.LatePenaltyRate.Mul(decimal.NewFromInt(int64(summary.LateComingDays)))

	gross := config.BasicSalary.Add(hra).Add(config.TravelAllowance).Add(overtimePay)
	net := gross.Sub(latePenalty.Add(config.Deductions))

	return &models.Payslip{
		EmployeeID:      summary.EmployeeID,
		Year:            summary.Year,
		Month:           summary.Month,
		BasicSalary:     config.BasicSalary,
		HRAAmount:       hra,
		TravelAllowance: config.TravelAllowance,
		OvertimePay:     overtimePay,
		LatePenalty:     latePenalty,
		Deductions:      config.Deductions,
		GrossSalary:     gross,
		NetSalary:       net,
		PayableDays:     summary.PayableDays,
		PresentDays:     summary.PresentDays,
		LeaveDays:       summary.LeaveDays,
		AbsentDays:      summary.AbsentDays,
		LateComingDays:  summary.LateComingDays,
		OvertimeHours:   summary.OvertimeHours,
		Provisional:     !summary.IsLocked(),
		PaymentStatus:   models.PaymentPending,
		PaidDate:        paidDate,
	}, nil
}

// MarkPaid settles a payslip, attaching a generated transaction id.
func (s *PayrollService) MarkPaid(payslipID uint, paidDate time.Time) (string, error) {
	transactionID := uuid.NewString()

	if err := s.payslipRepo.MarkPaid(payslipID, transactionID, paidDate); err != nil {
		return "", err
	}

	s.logger.WithFields(logrus.Fields{
		"payslip_id":     payslipID,
		"transaction_id": transactionID,
	}).Info("Payslip paid")

	return transactionID, nil
}

// ListPayslips returns all payslips for a period.
func (s *PayrollService) ListPayslips(year, month int) ([]*models.Payslip, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month=%d", ErrInvalidPeriod, month)
	}
	return s.payslipRepo.ListByPeriod(year, month)
}
