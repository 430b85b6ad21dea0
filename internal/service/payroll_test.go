package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"hrms-backend/internal/models"
)

func sampleSummary() *models.MonthlySummary {
	return &models.MonthlySummary{
		EmployeeID:     1,
		Year:           2024,
		Month:          8,
		TotalDays:      31,
		WorkingDays:    26,
		NonWorkingDays: 5,
		PresentDays:    20,
		LeaveDays:      2,
		Holidays:       1,
		WeeklyOffDays:  4,
		AbsentDays:     4,
		LateComingDays: 3,
		OvertimeHours:  5,
		PayableDays:    27,
		Status:         models.SummaryUnlocked,
	}
}

func sampleConfig() *models.SalaryConfig {
	return &models.SalaryConfig{
		EmployeeID:      1,
		BasicSalary:     decimal.NewFromInt(30000),
		HRARate:         decimal.NewFromFloat(0.4),
		TravelAllowance: decimal.NewFromInt(1600),
		OvertimeRate:    decimal.NewFromInt(200),
		LatePenaltyRate: decimal.NewFromInt(500),
		Deductions:      decimal.NewFromInt(1800),
	}
}

func TestBuildPayslipAmounts(t *testing.T) {
	payslip, err := BuildPayslip(sampleSummary(), sampleConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// hra = 30000*0.4 = 12000; overtime = 5*200 = 1000;
	// gross = 30000+12000+1600+1000 = 44600;
	// penalty = 3*500 = 1500; net = 44600-(1500+1800) = 41300.
	if !payslip.GrossSalary.Equal(decimal.NewFromInt(44600)) {
		t.Errorf("gross = %s, want 44600", payslip.GrossSalary)
	}
	if !payslip.NetSalary.Equal(decimal.NewFromInt(41300)) {
		t.Errorf("net = %s, want 41300", payslip.NetSalary)
	}
	if !payslip.InvariantsHold() {
		t.Error("payslip invariants violated")
	}
	if payslip.PayableDays != 27 || payslip.LateComingDays != 3 {
		t.Errorf("summary counters not carried: %+v", payslip)
	}
	if !payslip.Provisional {
		t.Error("payslip from an Unlocked summary must be provisional")
	}
	if payslip.PaymentStatus != models.PaymentPending {
		t.Errorf("payment status = %q, want pending", payslip.PaymentStatus)
	}
}

func TestBuildPayslipDeterministic(t *testing.T) {
	first, err := BuildPayslip(sampleSummary(), sampleConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := BuildPayslip(sampleSummary(), sampleConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.GrossSalary.String() != second.GrossSalary.String() {
		t.Errorf("gross differs: %s vs %s", first.GrossSalary, second.GrossSalary)
	}
	if first.NetSalary.String() != second.NetSalary.String() {
		t.Errorf("net differs: %s vs %s", first.NetSalary, second.NetSalary)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("recomputation from identical inputs produced a different record")
	}
}

func TestBuildPayslipLockedSummaryIsFinal(t *testing.T) {
	summary := sampleSummary()
	summary.Status = models.SummaryLocked

	payslip, err := BuildPayslip(summary, sampleConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payslip.Provisional {
		t.Error("payslip from a Locked summary must not be provisional")
	}
}

func TestBuildPayslipRejectsNegativeRate(t *testing.T) {
	config := sampleConfig()
	config.LatePenaltyRate = decimal.NewFromInt(-1)

	if _, err := BuildPayslip(sampleSummary(), config, nil); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestBuildPayslipRejectsIncompleteSummary(t *testing.T) {
	if _, err := BuildPayslip(nil, sampleConfig(), nil); !errors.Is(err, ErrIncompleteSummary) {
		t.Fatalf("expected ErrIncompleteSummary for nil summary, got %v", err)
	}

	broken := sampleSummary()
	broken.PayableDays = broken.TotalDays + 1
	if _, err := BuildPayslip(broken, sampleConfig(), nil); !errors.Is(err, ErrIncompleteSummary) {
		t.Fatalf("expected ErrIncompleteSummary for inconsistent summary, got %v", err)
	}
}

func TestComputePayslipEndToEnd(t *testing.T) {
	att, emp, hol, lock := augustScenario()
	aggregation := newTestAggregation(att, emp, hol, lock)

	salaryRepo := &fakeSalaryConfigRepo{}
	if err := salaryRepo.Upsert(sampleConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	payslipRepo := &fakePayslipRepo{}
	payroll := NewPayrollService(aggregation, salaryRepo, payslipRepo)

	payslip, err := payroll.ComputePayslip(context.Background(), 1, 2024, 8, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if payslip.PayableDays != 27 {
		t.Errorf("payableDays = %d, want 27", payslip.PayableDays)
	}
	if !payslip.InvariantsHold() {
		t.Error("payslip invariants violated")
	}
	if len(payslipRepo.saved) != 1 {
		t.Fatalf("expected 1 saved payslip, got %d", len(payslipRepo.saved))
	}
}

func TestComputePayslipMissingConfig(t *testing.T) {
	att, emp, hol, lock := augustScenario()
	aggregation := newTestAggregation(att, emp, hol, lock)
	payroll := NewPayrollService(aggregation, &fakeSalaryConfigRepo{}, &fakePayslipRepo{})

	if _, err := payroll.ComputePayslip(context.Background(), 1, 2024, 8, nil); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestMarkPaidGeneratesTransactionID(t *testing.T) {
	att, emp, hol, lock := augustScenario()
	aggregation := newTestAggregation(att, emp, hol, lock)
	payslipRepo := &fakePayslipRepo{}
	payroll := NewPayrollService(aggregation, &fakeSalaryConfigRepo{}, payslipRepo)

	transactionID, err := payroll.MarkPaid(7, time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if transactionID == "" {
		t.Fatal("expected a transaction id")
	}
	if payslipRepo.paid[7] != transactionID {
		t.Errorf("repository saw transaction id %q, service returned %q", payslipRepo.paid[7], transactionID)
	}
}
