package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hrms-backend/internal/models"
)

type HolidayRepository interface {
	Create(holiday *models.Holiday) error
	Delete(id uint) error
	ListByRange(ctx context.Context, from, to time.Time) ([]*models.Holiday, error)
}

type GormHolidayRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormHolidayRepository(db *gorm.DB) (*GormHolidayRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.Holiday{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate holidays table")
		return nil, err
	}

	return &GormHolidayRepository{db: db, logger: logger}, nil
}

func (r *GormHolidayRepository) Create(holiday *models.Holiday) error {
	var existing models.Holiday
	result := r.db.Where("date = ?", holiday.Date.Format("2006-01-02")).First(&existing)
	if result.Error == nil {
		return errors.New("holiday already declared for this date")
	}

	if result := r.db.Create(holiday); result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to create holiday")
		return result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"date": holiday.Date.Format("2006-01-02"),
		"name": holiday.Name,
	}).Info("Holiday declared")

	return nil
}

func (r *GormHolidayRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Holiday{}, id)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to delete holiday")
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("holiday not found")
	}
	return nil
}

func (r *GormHolidayRepository) ListByRange(ctx context.Context, from, to time.Time) ([]*models.Holiday, error) {
	var holidays []*models.Holiday

	result := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("date ASC").
		Find(&holidays)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to list holidays by range")
		return nil, result.Error
	}

	return holidays, nil
}
