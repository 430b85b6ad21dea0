package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hrms-backend/internal/models"
)

type AttendanceRepository interface {
	Create(record *models.AttendanceRecord) error
	Update(record *models.AttendanceRecord) error
	GetByID(id uint) (*models.AttendanceRecord, error)
	GetByEmployeeAndDate(employeeID uint, date time.Time) (*models.AttendanceRecord, error)
	GetOpenByEmployee(employeeID uint) (*models.AttendanceRecord, error)
	ListByEmployeeAndRange(ctx context.Context, employeeID uint, from, to time.Time) ([]*models.AttendanceRecord, error)
}

type GormAttendanceRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormAttendanceRepository(db *gorm.DB) (*GormAttendanceRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.AttendanceRecord{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate attendance_records table")
		return nil, err
	}

	logger.Info("Attendance repository initialized")

	return &GormAttendanceRepository{db: db, logger: logger}, nil
}

func (r *GormAttendanceRepository) Create(record *models.AttendanceRecord) error {
	r.logger.WithFields(logrus.Fields{
		"employee_id": record.EmployeeID,
		"date":        record.Date.Format("2006-01-02"),
		"status":      record.Status,
	}).Info("Creating attendance record")

	if !record.IsValid() {
		return errors.New("invalid attendance record data")
	}

	// One record per (employee, date).
	existing, err := r.GetByEmployeeAndDate(record.EmployeeID, record.Date)
	if err != nil {
		return err
	}
	if existing != nil {
		r.logger.WithFields(logrus.Fields{
			"employee_id": record.EmployeeID,
			"date":        record.Date.Format("2006-01-02"),
		}).Warn("Attendance record already exists for this date")
		return errors.New("attendance record already exists for this date")
	}

	record.UpdateCalculatedFields()

	if result := r.db.Create(record); result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to create attendance record")
		return result.Error
	}

	return nil
}

func (r *GormAttendanceRepository) Update(record *models.AttendanceRecord) error {
	if !record.IsValid() {
		return errors.New("invalid attendance record data")
	}

	existing, err := r.GetByID(record.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		r.logger.WithField("id", record.ID).Warn("Attendance record not found for update")
		return errors.New("attendance record not found")
	}

	record.UpdateCalculatedFields()

	if result := r.db.Save(record); result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to update attendance record")
		return result.Error
	}

	return nil
}

func (r *GormAttendanceRepository) GetByID(id uint) (*models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	result := r.db.First(&record, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get attendance record by ID")
		return nil, result.Error
	}

	return &record, nil
}

func (r *GormAttendanceRepository) GetByEmployeeAndDate(employeeID uint, date time.Time) (*models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	result := r.db.Where("employee_id = ? AND date = ?", employeeID, date.Format("2006-01-02")).First(&record)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get attendance record by employee and date")
		return nil, result.Error
	}

	return &record, nil
}

func (r *GormAttendanceRepository) GetOpenByEmployee(employeeID uint) (*models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	result := r.db.Where("employee_id = ? AND check_in IS NOT NULL AND check_out IS NULL", employeeID).
		Order("date DESC").
		First(&record)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get open attendance record")
		return nil, result.Error
	}

	return &record, nil
}

func (r *GormAttendanceRepository) ListByEmployeeAndRange(ctx context.Context, employeeID uint, from, to time.Time) ([]*models.AttendanceRecord, error) {
	var records []*models.AttendanceRecord

	result := r.db.WithContext(ctx).
		Where("employee_id = ? AND date BETWEEN ? AND ?",
			employeeID,
			from.Format("2006-01-02"),
			to.Format("2006-01-02")).
		Order("date ASC").
		Find(&records)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to list attendance records by range")
		return nil, result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"from":        from.Format("2006-01-02"),
		"to":          to.Format("2006-01-02"),
		"count":       len(records),
	}).Debug("Retrieved attendance records by range")

	return records, nil
}
