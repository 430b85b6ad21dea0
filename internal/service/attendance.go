package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"hrms-backend/internal/dispatch"
	"hrms-backend/internal/models"
	"hrms-backend/internal/repository"
	"hrms-backend/pkg/workweek"
)

// AttendanceService manages the per-day check-in/check-out lifecycle and
// explicit status marking.
type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
	employeeRepo   repository.EmployeeRepository
	shift          ShiftConfig
	dispatcher     *dispatch.Dispatcher
	logger         *logrus.Logger
}

func NewAttendanceService(
	attendanceRepo repository.AttendanceRepository,
	employeeRepo repository.EmployeeRepository,
	shift ShiftConfig,
	dispatcher *dispatch.Dispatcher,
) *AttendanceService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		shift:          shift,
		dispatcher:     dispatcher,
		logger:         logger,
	}
}

// CheckIn opens the employee's attendance record for the day. The status is
// classified present or late against the configured shift window.
func (s *AttendanceService) CheckIn(employeeID uint, at time.Time) (*models.AttendanceRecord, error) {
	employee, err := s.employeeRepo.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, fmt.Errorf("%w: id=%d", ErrEmployeeNotFound, employeeID)
	}

	date := workweek.DateOnly(at)
	existing, err := s.attendanceRepo.GetByEmployeeAndDate(employeeID, date)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.CheckIn != nil {
		s.logger.WithFields(logrus.Fields{
			"employee_id": employeeID,
			"date":        date.Format("2006-01-02"),
		}).Warn("Employee already checked in today")
		return nil, errors.New("already checked in today")
	}

	status := models.StatusPresent
	if s.shift.Window.LateArrival(at, s.shift.GraceMinutes) {
		status = models.StatusLate
	}

	checkIn := at
	record := existing
	if record == nil {
		record = &models.AttendanceRecord{
			EmployeeID: employeeID,
			Date:       date,
			CheckIn:    &checkIn,
			Status:     status,
		}
		if err := s.attendanceRepo.Create(record); err != nil {
			return nil, err
		}
	} else {
		// A pre-marked day (leave converted, retro correction) gains the
		// actual check-in; the recorded fact wins.
		record.CheckIn = &checkIn
		record.Status = status
		if err := s.attendanceRepo.Update(record); err != nil {
			return nil, err
		}
	}

	s.logger.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"date":        date.Format("2006-01-02"),
		"status":      status,
	}).Info("Employee checked in")

	s.notifyDayStarted(employee, at)

	return record, nil
}

// CheckOut closes the employee's open record and refreshes the derived
// fields.
func (s *AttendanceService) CheckOut(employeeID uint, at time.Time) (*models.AttendanceRecord, error) {
	record, err := s.attendanceRepo.GetOpenByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errors.New("no open check-in found")
	}
	if at.Before(*record.CheckIn) {
		return nil, errors.New("check-out before check-in")
	}

	checkOut := at
	record.CheckOut = &checkOut
	record.UpdateCalculatedFields()

	if err := s.attendanceRepo.Update(record); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"employee_id":    employeeID,
		"date":           record.Date.Format("2006-01-02"),
		"worked_minutes": record.WorkedMinutes,
	}).Info("Employee checked out")

	return record, nil
}

// MarkStatus records an explicit classification for a day (leave, travel,
// absent, ...). Explicit records take precedence over calendar inference in
// the monthly aggregation.
func (s *AttendanceService) MarkStatus(employeeID uint, date time.Time, status, notes string) (*models.AttendanceRecord, error) {
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("invalid attendance status %q", status)
	}

	exists, err := s.employeeRepo.Exists(employeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: id=%d", ErrEmployeeNotFound, employeeID)
	}

	day := workweek.DateOnly(date)
	record, err := s.attendanceRepo.GetByEmployeeAndDate(employeeID, day)
	if err != nil {
		return nil, err
	}

	if record == nil {
		record = &models.AttendanceRecord{
			EmployeeID: employeeID,
			Date:       day,
			Status:     status,
			Notes:      notes,
		}
		if err := s.attendanceRepo.Create(record); err != nil {
			return nil, err
		}
	} else {
		record.Status = status
		if notes != "" {
			record.Notes = notes
		}
		if err := s.attendanceRepo.Update(record); err != nil {
			return nil, err
		}
	}

	s.logger.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"date":        day.Format("2006-01-02"),
		"status":      status,
	}).Info("Attendance status marked")

	return record, nil
}

// notifyDayStarted pushes a best-effort day-started event to the admin
// cohort. Delivery failure never fails the check-in.
func (s *AttendanceService) notifyDayStarted(employee *models.Employee, at time.Time) {
	if s.dispatcher == nil {
		return
	}

	event := dispatch.DayStarted{
		EmployeeID:   employee.ID,
		EmployeeName: employee.FirstName + " " + employee.LastName,
		StartedAt:    at,
		Role:         models.RoleAdmin,
	}
	if err := s.dispatcher.Dispatch(event); err != nil {
		s.logger.WithError(err).Warn("Failed to dispatch day-started event")
	}
}
