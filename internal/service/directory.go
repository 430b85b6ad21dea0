package service

import (
	"fmt"

	"hrms-backend/internal/dispatch"
	"hrms-backend/internal/models"
	"hrms-backend/internal/repository"
)

// DirectoryService resolves notification recipient scopes against the
// employee and project repositories.
type DirectoryService struct {
	employeeRepo repository.EmployeeRepository
	projectRepo  repository.ProjectRepository
}

func NewDirectoryService(
	employeeRepo repository.EmployeeRepository,
	projectRepo repository.ProjectRepository,
) *DirectoryService {
	return &DirectoryService{
		employeeRepo: employeeRepo,
		projectRepo:  projectRepo,
	}
}

func (s *DirectoryService) RoleCohort(role string) ([]uint, error) {
	switch role {
	case models.RoleAdmin, models.RoleHR, models.RoleEmployee:
	default:
		return nil, fmt.Errorf("%w: role %q", dispatch.ErrUnknownScope, role)
	}

	employees, err := s.employeeRepo.GetByRole(role)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(employees))
	for _, e := range employees {
		ids = append(ids, e.ID)
	}
	return ids, nil
}

func (s *DirectoryService) ProjectRoster(projectID uint) ([]uint, error) {
	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project %d", dispatch.ErrUnknownScope, projectID)
	}

	return s.projectRepo.Roster(projectID)
}
