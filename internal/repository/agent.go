package repository

import (
	"fmt"
	"time"

	"admissions-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AgentRepository handles database operations for agents
type AgentRepository struct {
	db *gorm.DB
}

// NewAgentRepository creates a new agent repository
func NewAgentRepository(db *gorm.DB) *AgentRepository {
	return &AgentRepository{db: db}
}

// Create creates a new agent
func (r *AgentRepository) Create(agent *models.Agent) error {
	return r.db.Create(agent).Error
}

// GetByID retrieves an agent by ID
func (r *AgentRepository) GetByID(id uuid.UUID) (*models.Agent, error) {
	var agent models.Agent
	err := r.db.First(&agent, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

// GetByEmail retrieves an agent by email
func (r *AgentRepository) GetByEmail(email string) (*models.Agent, error) {
	var agent models.Agent
	err := r.db.First(&agent, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

// GetAll retrieves all agents with pagination
func (r *AgentRepository) GetAll(limit, offset int) ([]models.Agent, int64, error) {
	var agents []models.Agent
	var total int64

	if err := r.db.Model(&models.Agent{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Role").Limit(limit).Offset(offset).Order("full_name").Find(&agents).Error
	if err != nil {
		return nil, 0, err
	}

	return agents, total, nil
}

// FindAvailableByRoleIDs retrieves every available agent whose role is one of
// the given ids. The predicate is built from the ids actually present so a
// missing role simply narrows the filter instead of matching nothing.
func (r *AgentRepository) FindAvailableByRoleIDs(roleIDs []uuid.UUID) ([]models.Agent, error) {
	if len(roleIDs) == 0 {
		return nil, nil
	}

	var agents []models.Agent
	err := r.db.
		Where("role_id IN ?", roleIDs).
		Where("is_available = ?", true).
		Find(&agents).Error
	if err != nil {
		return nil, err
	}
	return agents, nil
}

// SetAvailability sets the availability toggle of an agent
func (r *AgentRepository) SetAvailability(id uuid.UUID, isAvailable bool) error {
	result := r.db.Model(&models.Agent{}).Where("id = ?", id).Update("is_available", isAvailable)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementActiveLeads adds delta to an agent's active lead counter and bumps
// last_assigned_at. COALESCE initializes a never-touched counter to zero so
// the first increment lands at delta instead of failing.
func (r *AgentRepository) IncrementActiveLeads(id uuid.UUID, delta int, assignedAt time.Time) error {
	result := r.db.Model(&models.Agent{}).Where("id = ?", id).Updates(map[string]interface{}{
		"active_leads_count": gorm.Expr("COALESCE(active_leads_count, 0) + ?", delta),
		"last_assigned_at":   assignedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("agent %s not found for counter update", id)
	}
	return nil
}

// Update updates an agent
func (r *AgentRepository) Update(agent *models.Agent) error {
	return r.db.Save(agent).Error
}
