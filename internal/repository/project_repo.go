package repository

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hrms-backend/internal/models"
)

type ProjectRepository interface {
	Create(project *models.Project) error
	GetByID(id uint) (*models.Project, error)
	AddMember(projectID, employeeID uint) error
	Roster(projectID uint) ([]uint, error)
}

type GormProjectRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormProjectRepository(db *gorm.DB) (*GormProjectRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.Project{}, &models.ProjectMember{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate project tables")
		return nil, err
	}

	return &GormProjectRepository{db: db, logger: logger}, nil
}

func (r *GormProjectRepository) Create(project *models.Project) error {
	if result := r.db.Create(project); result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to create project")
		return result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"id":   project.ID,
		"name": project.Name,
	}).Info("Project created")

	return nil
}

func (r *GormProjectRepository) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	result := r.db.Preload("Members").First(&project, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get project by ID")
		return nil, result.Error
	}

	return &project, nil
}

func (r *GormProjectRepository) AddMember(projectID, employeeID uint) error {
	var existing models.ProjectMember
	result := r.db.Where("project_id = ? AND employee_id = ?", projectID, employeeID).First(&existing)
	if result.Error == nil {
		// Already on the roster.
		return nil
	}

	member := &models.ProjectMember{ProjectID: projectID, EmployeeID: employeeID}
	if result := r.db.Create(member); result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to add project member")
		return result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"project_id":  projectID,
		"employee_id": employeeID,
	}).Info("Project member added")

	return nil
}

func (r *GormProjectRepository) Roster(projectID uint) ([]uint, error) {
	var ids []uint
	result := r.db.Model(&models.ProjectMember{}).
		Where("project_id = ?", projectID).
		Pluck("employee_id", &ids)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get project roster")
		return nil, result.Error
	}

	return ids, nil
}
