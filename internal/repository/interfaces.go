package repository

import (
	"time"

	"admissions-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// RoleRepositoryInterface defines the interface for role repository operations
type RoleRepositoryInterface interface {
	Create(role *models.Role) error
	GetByID(id uuid.UUID) (*models.Role, error)
	GetByName(name string) (*models.Role, error)
	GetAll() ([]models.Role, error)
}

// AgentRepositoryInterface defines the interface for agent repository operations
type AgentRepositoryInterface interface {
	Create(agent *models.Agent) error
	GetByID(id uuid.UUID) (*models.Agent, error)
	GetByEmail(email string) (*models.Agent, error)
	GetAll(limit, offset int) ([]models.Agent, int64, error)
	FindAvailableByRoleIDs(roleIDs []uuid.UUID) ([]models.Agent, error)
	SetAvailability(id uuid.UUID, isAvailable bool) error
	IncrementActiveLeads(id uuid.UUID, delta int, assignedAt time.Time) error
	Update(agent *models.Agent) error
}

// LeadFilter narrows lead listings
type LeadFilter struct {
	AssignedTo *uuid.UUID
	Status     string
}

// LeadRepositoryInterface defines the interface for lead repository operations
type LeadRepositoryInterface interface {
	CreateWithAssignment(lead *models.Lead, agentID *uuid.UUID, assignedAt time.Time) error
	CreateBatch(leads []*models.Lead) error
	GetByID(id uuid.UUID) (*models.Lead, error)
	FindByNormalizedPhone(normalizedPhone string) ([]models.Lead, error)
	ScanByDedupKey(normalizedPhone, admissionYear, sourceWebsite string) (*models.Lead, error)
	List(filter LeadFilter, limit, offset int) ([]models.Lead, int64, error)
}
