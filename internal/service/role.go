package service

import (
	"errors"
	"fmt"

	"admissions-crm-backend/internal/database/models"
	apperrors "admissions-crm-backend/internal/errors"
	"admissions-crm-backend/internal/logger"
	"admissions-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateRoleRequest is the payload for creating a role
type CreateRoleRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=200"`
}

// RoleService handles role management
type RoleService struct {
	roleRepo  repository.RoleRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewRoleService creates a new role service
func NewRoleService(roleRepo repository.RoleRepositoryInterface) *RoleService {
	return &RoleService{
		roleRepo:  roleRepo,
		validator: validator.New(),
		log:       logger.New().WithField("component", "role_service"),
	}
}

// CreateRole creates a new role with a unique name
func (s *RoleService) CreateRole(req *CreateRoleRequest) (*models.Role, error) {
	if err := s.validator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, apperrors.NewValidationError(verrs[0].Field(), fmt.Sprintf("failed on %s", verrs[0].Tag()))
		}
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.roleRepo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrRoleExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check role name: %w", err)
	}

	role := &models.Role{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.roleRepo.Create(role); err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	s.log.WithField("role", role.Name).Info("role created")
	return role, nil
}

// GetRole retrieves a role by ID
func (s *RoleService) GetRole(id uuid.UUID) (*models.Role, error) {
	role, err := s.roleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return role, nil
}

// ListRoles retrieves all roles
func (s *RoleService) ListRoles() ([]models.Role, error) {
	roles, err := s.roleRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return roles, nil
}
