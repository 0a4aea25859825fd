package repository

import (
	"errors"
	"fmt"
	"time"

	"admissions-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadRepository handles database operations for leads
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// CreateWithAssignment persists a lead and, when agentID is set, increments
// that agent's active lead counter in the same transaction. Either both
// writes land or neither does: if the counter update touches no row the
// whole transaction is rolled back and the lead is not persisted.
func (r *LeadRepository) CreateWithAssignment(lead *models.Lead, agentID *uuid.UUID, assignedAt time.Time) error {
	if agentID == nil {
		return r.db.Create(lead).Error
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		lead.AssignedTo = agentID
		if err := tx.Create(lead).Error; err != nil {
			return err
		}

		result := tx.Model(&models.Agent{}).Where("id = ?", *agentID).Updates(map[string]interface{}{
			"active_leads_count": gorm.Expr("COALESCE(active_leads_count, 0) + ?", 1),
			"last_assigned_at":   assignedAt,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("agent %s not found for counter increment", *agentID)
		}
		return nil
	})
}

// CreateBatch persists many leads in one insert. Counter updates for batch
// assignment are applied separately by the caller, per agent.
func (r *LeadRepository) CreateBatch(leads []*models.Lead) error {
	if len(leads) == 0 {
		return nil
	}
	return r.db.Create(leads).Error
}

// GetByID retrieves a lead by ID
func (r *LeadRepository) GetByID(id uuid.UUID) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.Preload("AssignedAgent").First(&lead, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// FindByNormalizedPhone retrieves all leads sharing a normalized phone
// number. Backed by idx_leads_normalized_phone, this is the fast path of the
// duplicate guard; the caller filters by year and source in memory.
func (r *LeadRepository) FindByNormalizedPhone(normalizedPhone string) ([]models.Lead, error) {
	var leads []models.Lead
	err := r.db.Where("normalized_phone = ?", normalizedPhone).Find(&leads).Error
	if err != nil {
		return nil, err
	}
	return leads, nil
}

// ScanByDedupKey looks for a lead matching the full de-duplication key with
// a three-way predicate. Functionally identical to the indexed path, only
// slower; used when the indexed lookup is unavailable.
func (r *LeadRepository) ScanByDedupKey(normalizedPhone, admissionYear, sourceWebsite string) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.
		Where("normalized_phone = ? AND admission_year = ? AND source_website = ?",
			normalizedPhone, admissionYear, sourceWebsite).
		First(&lead).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &lead, nil
}

// List retrieves leads matching the filter with pagination
func (r *LeadRepository) List(filter LeadFilter, limit, offset int) ([]models.Lead, int64, error) {
	var leads []models.Lead
	var total int64

	query := r.db.Model(&models.Lead{})
	if filter.AssignedTo != nil {
		query = query.Where("assigned_to = ?", *filter.AssignedTo)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("created_at DESC").Find(&leads).Error
	if err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}
