package repository

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hrms-backend/internal/models"
)

type EmployeeRepository interface {
	Create(employee *models.Employee) error
	Update(employee *models.Employee) error
	GetByID(id uint) (*models.Employee, error)
	GetByEmail(email string) (*models.Employee, error)
	GetByRole(role string) ([]*models.Employee, error)
	GetAll() ([]*models.Employee, error)
	Exists(id uint) (bool, error)
}

type GormEmployeeRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormEmployeeRepository(db *gorm.DB) (*GormEmployeeRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.Employee{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate employees table")
		return nil, err
	}

	return &GormEmployeeRepository{db: db, logger: logger}, nil
}

func (r *GormEmployeeRepository) Create(employee *models.Employee) error {
	var existing models.Employee
	result := r.db.Where("email = ?", employee.Email).First(&existing)
	if result.Error == nil {
		return errors.New("employee already exists")
	}

	if result := r.db.Create(employee); result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to create employee")
		return result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"id":   employee.ID,
		"role": employee.Role,
	}).Info("Employee created")

	return nil
}

func (r *GormEmployeeRepository) Update(employee *models.Employee) error {
	existing, err := r.GetByID(employee.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New("employee not found")
	}

	if result := r.db.Save(employee); result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to update employee")
		return result.Error
	}

	return nil
}

func (r *GormEmployeeRepository) GetByID(id uint) (*models.Employee, error) {
	var employee models.Employee
	result := r.db.First(&employee, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get employee by ID")
		return nil, result.Error
	}

	return &employee, nil
}

func (r *GormEmployeeRepository) GetByEmail(email string) (*models.Employee, error) {
	var employee models.Employee
	result := r.db.Where("email = ?", email).First(&employee)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get employee by email")
		return nil, result.Error
	}

	return &employee, nil
}

func (r *GormEmployeeRepository) GetByRole(role string) ([]*models.Employee, error) {
	var employees []*models.Employee
	result := r.db.Where("role = ?", role).Find(&employees)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get employees by role")
		return nil, result.Error
	}

	return employees, nil
}

func (r *GormEmployeeRepository) GetAll() ([]*models.Employee, error) {
	var employees []*models.Employee
	result := r.db.Find(&employees)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get all employees")
		return nil, result.Error
	}

	return employees, nil
}

func (r *GormEmployeeRepository) Exists(id uint) (bool, error) {
	var count int64
	result := r.db.Model(&models.Employee{}).Where("id = ?", id).Count(&count)

	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}
