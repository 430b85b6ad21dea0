package repository

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hrms-backend/internal/models"
)

type SalaryConfigRepository interface {
	Upsert(config *models.SalaryConfig) error
	GetByEmployeeID(employeeID uint) (*models.SalaryConfig, error)
}

type GormSalaryConfigRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormSalaryConfigRepository(db *gorm.DB) (*GormSalaryConfigRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.SalaryConfig{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate salary_configs table")
		return nil, err
	}

	return &GormSalaryConfigRepository{db: db, logger: logger}, nil
}

func (r *GormSalaryConfigRepository) Upsert(config *models.SalaryConfig) error {
	existing, err := r.GetByEmployeeID(config.EmployeeID)
	if err != nil {
		return err
	}

	if existing != nil {
		config.ID = existing.ID
		config.CreatedAt = existing.CreatedAt
	}

	if result := r.db.Save(config); result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to upsert salary config")
		return result.Error
	}

	r.logger.WithField("employee_id", config.EmployeeID).Info("Salary config saved")

	return nil
}

func (r *GormSalaryConfigRepository) GetByEmployeeID(employeeID uint) (*models.SalaryConfig, error) {
	var config models.SalaryConfig
	result := r.db.Where("employee_id = ?", employeeID).First(&config)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get salary config")
		return nil, result.Error
	}

	return &config, nil
}
