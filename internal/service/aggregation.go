package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"hrms-backend/internal/models"
	"hrms-backend/internal/repository"
	"hrms-backend/pkg/workweek"
)

// ShiftConfig is the external shift configuration consumed by the
// aggregation engine.
type ShiftConfig struct {
	Window          workweek.ShiftWindow
	GraceMinutes    int
	StandardMinutes int
}

// AggregationService derives monthly attendance summaries from attendance
// records and calendar metadata. Pure read/compute; safe to call repeatedly
// and concurrently for different employees.
type AggregationService struct {
	attendanceRepo repository.AttendanceRepository
	employeeRepo   repository.EmployeeRepository
	holidayRepo    repository.HolidayRepository
	lockRepo       repository.SummaryLockRepository
	shift          ShiftConfig
	now            func() time.Time
	logger         *logrus.Logger
}

func NewAggregationService(
	attendanceRepo repository.AttendanceRepository,
	employeeRepo repository.EmployeeRepository,
	holidayRepo repository.HolidayRepository,
	lockRepo repository.SummaryLockRepository,
	shift ShiftConfig,
) *AggregationService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &AggregationService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		holidayRepo:    holidayRepo,
		lockRepo:       lockRepo,
		shift:          shift,
		now:            time.Now,
		logger:         logger,
	}
}

// ComputeMonthlySummary builds the summary for one employee and period.
// Periods after the current calendar month are rejected.
func (s *AggregationService) ComputeMonthlySummary(ctx context.Context, employeeID uint, year, month int) (*models.MonthlySummary, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, fmt.Errorf("%w: year=%d month=%d", ErrInvalidPeriod, year, month)
	}

	now := s.now()
	if year > now.Year() || (year == now.Year() && month > int(now.Month())) {
		return nil, fmt.Errorf("%w: %d-%02d is in the future", ErrInvalidPeriod, year, month)
	}

	periodStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)

	employee, err := s.employeeRepo.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, fmt.Errorf("%w: id=%d", ErrEmployeeNotFound, employeeID)
	}
	if !employee.HiredBy(periodEnd) {
		return nil, fmt.Errorf("%w: id=%d not hired before %s", ErrEmployeeNotFound, employeeID, periodEnd.Format("2006-01-02"))
	}

	records, err := s.attendanceRepo.ListByEmployeeAndRange(ctx, employeeID, periodStart, periodEnd)
	if err != nil {
		return nil, s.mapStoreError(err)
	}

	holidays, err := s.holidayRepo.ListByRange(ctx, periodStart, periodEnd)
	if err != nil {
		return nil, s.mapStoreError(err)
	}

	offDays, err := workweek.ParseOffDays(employee.WeeklyOffDays)
	if err != nil {
		return nil, fmt.Errorf("employee %d weekly-off mask: %w", employeeID, err)
	}

	byDate := make(map[string]*models.AttendanceRecord, len(records))
	for _, rec := range records {
		byDate[rec.Date.Format("2006-01-02")] = rec
	}

	holidaySet := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		holidaySet[h.Date.Format("2006-01-02")] = true
	}

	summary := &models.MonthlySummary{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
	}

	today := workweek.DateOnly(now)
	overtimeMinutes := 0

	for day := 1; day <= workweek.DaysInMonth(year, month); day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		key := date.Format("2006-01-02")

		// A recorded fact beats calendar inference; the calendar beats the
		// past-day absence default. Days before the hire date and days still
		// in the future carry no classification and are excluded from all
		// totals.
		var status string
		rec := byDate[key]
		switch {
		case rec != nil:
			status = rec.Status
		case !employee.HiredBy(date):
			continue
		case holidaySet[key]:
			status = models.StatusHoliday
		case offDays.IsOff(date):
			status = models.StatusWeeklyOff
		case date.Before(today):
			status = models.StatusAbsent
		default:
			continue
		}

		switch {
		case models.CountsAsPresent(status):
			summary.PresentDays++
			s.accumulateShiftFacts(summary, rec, &overtimeMinutes)
		case status == models.StatusLeave:
			summary.LeaveDays++
		case status == models.StatusTravel:
			summary.TravelDays++
		case status == models.StatusHoliday:
			summary.Holidays++
		case status == models.StatusWeeklyOff:
			summary.WeeklyOffDays++
		default:
			summary.AbsentDays++
		}
	}

	summary.NonWorkingDays = summary.Holidays + summary.WeeklyOffDays
	summary.TotalDays = summary.PresentDays + summary.LeaveDays + summary.TravelDays +
		summary.Holidays + summary.WeeklyOffDays + summary.AbsentDays
	summary.WorkingDays = summary.TotalDays - summary.NonWorkingDays
	summary.PayableDays = summary.PresentDays + summary.LeaveDays + summary.TravelDays +
		summary.Holidays + summary.WeeklyOffDays
	summary.OvertimeHours = float64(overtimeMinutes) / 60

	locked, err := s.lockRepo.IsLocked(employeeID, year, month)
	if err != nil {
		return nil, err
	}
	if locked {
		summary.Status = models.SummaryLocked
	} else {
		summary.Status = models.SummaryUnlocked
	}

	s.logger.WithFields(logrus.Fields{
		"employee_id":  employeeID,
		"year":         year,
		"month":        month,
		"present_days": summary.PresentDays,
		"payable_days": summary.PayableDays,
	}).Debug("Monthly summary computed")

	return summary, nil
}

// accumulateShiftFacts counts late arrivals, early departures and overtime on
// a present-classified day.
func (s *AggregationService) accumulateShiftFacts(summary *models.MonthlySummary, rec *models.AttendanceRecord, overtimeMinutes *int) {
	if rec == nil {
		return
	}

	if rec.Status == models.StatusLate {
		summary.LateComingDays++
	} else if rec.CheckIn != nil && s.shift.Window.LateArrival(*rec.CheckIn, s.shift.GraceMinutes) {
		summary.LateComingDays++
	}

	if rec.CheckOut != nil && !rec.CheckOut.IsZero() &&
		s.shift.Window.EarlyDeparture(*rec.CheckOut, s.shift.GraceMinutes) {
		summary.EarlyGoingDays++
	}

	worked := rec.WorkedMinutes
	if worked == 0 {
		worked = rec.CalculateWorkedMinutes()
	}
	if worked > s.shift.StandardMinutes {
		*overtimeMinutes += worked - s.shift.StandardMinutes
	}
}

// SetSummaryLock toggles the administrative Locked/Unlocked flag. The flag
// does not affect the numeric computation.
func (s *AggregationService) SetSummaryLock(employeeID uint, year, month int, locked bool) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month=%d", ErrInvalidPeriod, month)
	}

	exists, err := s.employeeRepo.Exists(employeeID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: id=%d", ErrEmployeeNotFound, employeeID)
	}

	return s.lockRepo.SetLocked(employeeID, year, month, locked)
}

func (s *AggregationService) mapStoreError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return err
}
