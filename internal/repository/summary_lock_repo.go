package repository

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hrms-backend/internal/models"
)

type SummaryLockRepository interface {
	SetLocked(employeeID uint, year, month int, locked bool) error
	IsLocked(employeeID uint, year, month int) (bool, error)
}

type GormSummaryLockRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormSummaryLockRepository(db *gorm.DB) (*GormSummaryLockRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.SummaryLock{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate summary_locks table")
		return nil, err
	}

	return &GormSummaryLockRepository{db: db, logger: logger}, nil
}

func (r *GormSummaryLockRepository) SetLocked(employeeID uint, year, month int, locked bool) error {
	var lock models.SummaryLock
	result := r.db.Where("employee_id = ? AND year = ? AND month = ?", employeeID, year, month).First(&lock)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		lock = models.SummaryLock{
			EmployeeID: employeeID,
			Year:       year,
			Month:      month,
			Locked:     locked,
		}
		if result := r.db.Create(&lock); result.Error != nil {
			r.logger.WithError(result.Error).Error("Failed to create summary lock")
			return result.Error
		}
		return nil
	}
	if result.Error != nil {
		return result.Error
	}

	if result := r.db.Model(&lock).Update("locked", locked); result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to update summary lock")
		return result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"year":        year,
		"month":       month,
		"locked":      locked,
	}).Info("Summary lock updated")

	return nil
}

func (r *GormSummaryLockRepository) IsLocked(employeeID uint, year, month int) (bool, error) {
	var lock models.SummaryLock
	result := r.db.Where("employee_id = ? AND year = ? AND month = ?", employeeID, year, month).First(&lock)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if result.Error != nil {
		return false, result.Error
	}

	return lock.Locked, nil
}
