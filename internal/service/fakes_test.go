package service

import (
	"context"
	"fmt"
	"time"

	"hrms-backend/internal/models"
)

// In-memory test doubles for the repository interfaces.

type fakeAttendanceRepo struct {
	records []*models.AttendanceRecord
	listErr error
}

func (f *fakeAttendanceRepo) Create(record *models.AttendanceRecord) error {
	f.records = append(f.records, record)
	return nil
}

func (f *fakeAttendanceRepo) Update(record *models.AttendanceRecord) error {
	return nil
}

func (f *fakeAttendanceRepo) GetByID(id uint) (*models.AttendanceRecord, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(employeeID uint, date time.Time) (*models.AttendanceRecord, error) {
	for _, r := range f.records {
		if r.EmployeeID == employeeID && r.Date.Equal(date) {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) GetOpenByEmployee(employeeID uint) (*models.AttendanceRecord, error) {
	for _, r := range f.records {
		if r.EmployeeID == employeeID && r.IsOpen() {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(ctx context.Context, employeeID uint, from, to time.Time) ([]*models.AttendanceRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.AttendanceRecord
	for _, r := range f.records {
		if r.EmployeeID == employeeID && !r.Date.Before(from) && !r.Date.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees []*models.Employee
}

func (f *fakeEmployeeRepo) Create(employee *models.Employee) error {
	f.employees = append(f.employees, employee)
	return nil
}

func (f *fakeEmployeeRepo) Update(employee *models.Employee) error { return nil }

func (f *fakeEmployeeRepo) GetByID(id uint) (*models.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) GetByEmail(email string) (*models.Employee, error) {
	for _, e := range f.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) GetByRole(role string) ([]*models.Employee, error) {
	var out []*models.Employee
	for _, e := range f.employees {
		if e.Role == role {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) GetAll() ([]*models.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) Exists(id uint) (bool, error) {
	e, _ := f.GetByID(id)
	return e != nil, nil
}

type fakeHolidayRepo struct {
	holidays []*models.Holiday
}

func (f *fakeHolidayRepo) Create(holiday *models.Holiday) error {
	f.holidays = append(f.holidays, holiday)
	return nil
}

func (f *fakeHolidayRepo) Delete(id uint) error { return nil }

func (f *fakeHolidayRepo) ListByRange(ctx context.Context, from, to time.Time) ([]*models.Holiday, error) {
	var out []*models.Holiday
	for _, h := range f.holidays {
		if !h.Date.Before(from) && !h.Date.After(to) {
			out = append(out, h)
		}
	}
	return out, nil
}

type fakeLockRepo struct {
	locked map[string]bool
}

func lockKey(employeeID uint, year, month int) string {
	return fmt.Sprintf("%d/%d-%02d", employeeID, year, month)
}

func (f *fakeLockRepo) SetLocked(employeeID uint, year, month int, locked bool) error {
	if f.locked == nil {
		f.locked = map[string]bool{}
	}
	f.locked[lockKey(employeeID, year, month)] = locked
	return nil
}

func (f *fakeLockRepo) IsLocked(employeeID uint, year, month int) (bool, error) {
	return f.locked[lockKey(employeeID, year, month)], nil
}

type fakeSalaryConfigRepo struct {
	configs map[uint]*models.SalaryConfig
}

func (f *fakeSalaryConfigRepo) Upsert(config *models.SalaryConfig) error {
	if f.configs == nil {
		f.configs = map[uint]*models.SalaryConfig{}
	}
	f.configs[config.EmployeeID] = config
	return nil
}

func (f *fakeSalaryConfigRepo) GetByEmployeeID(employeeID uint) (*models.SalaryConfig, error) {
	return f.configs[employeeID], nil
}

type fakePayslipRepo struct {
	saved []*models.Payslip
	paid  map[uint]string
}

func (f *fakePayslipRepo) Save(payslip *models.Payslip) error {
	f.saved = append(f.saved, payslip)
	return nil
}

func (f *fakePayslipRepo) GetByEmployeeAndPeriod(employeeID uint, year, month int) (*models.Payslip, error) {
	for _, p := range f.saved {
		if p.EmployeeID == employeeID && p.Year == year && p.Month == month {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePayslipRepo) ListByPeriod(year, month int) ([]*models.Payslip, error) {
	var out []*models.Payslip
	for _, p := range f.saved {
		if p.Year == year && p.Month == month {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePayslipRepo) MarkPaid(id uint, transactionID string, paidDate time.Time) error {
	if f.paid == nil {
		f.paid = map[uint]string{}
	}
	f.paid[id] = transactionID
	return nil
}
