package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"admissions-crm-backend/internal/database/models"
	apperrors "admissions-crm-backend/internal/errors"
	"admissions-crm-backend/internal/logger"
	"admissions-crm-backend/internal/phone"
	"admissions-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateLeadRequest is the payload for creating a single lead
type CreateLeadRequest struct {
	FullName       string `json:"full_name" validate:"omitempty,max=200"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" validate:"required,max=20"`
	AdmissionYear  string `json:"admission_year" validate:"required,max=10"`
	SourceWebsite  string `json:"source_website" validate:"required,max=100"`
	CourseInterest string `json:"course_interest" validate:"omitempty,max=100"`
}

// LeadResponse is the API representation of a lead
type LeadResponse struct {
	ID             uuid.UUID         `json:"id"`
	FullName       string            `json:"full_name,omitempty"`
	Email          string            `json:"email,omitempty"`
	Phone          string            `json:"phone"`
	AdmissionYear  string            `json:"admission_year"`
	SourceWebsite  string            `json:"source_website"`
	CourseInterest string            `json:"course_interest,omitempty"`
	Status         models.LeadStatus `json:"status"`
	Source         models.LeadSource `json:"source"`
	AssignedTo     *uuid.UUID        `json:"assigned_to,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

// CreateLeadResult distinguishes a freshly created lead from an already
// existing one matched by the duplicate guard.
type CreateLeadResult struct {
	IsDuplicate bool          `json:"is_duplicate"`
	Lead        *LeadResponse `json:"lead"`
}

// LeadListResponse is a paginated list of leads
type LeadListResponse struct {
	Leads      []LeadResponse `json:"leads"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
}

// BulkCreateResult summarizes a batch upload
type BulkCreateResult struct {
	Created  int            `json:"created"`
	Skipped  int            `json:"skipped"`
	Assigned int            `json:"assigned"`
	Leads    []LeadResponse `json:"leads"`
}

// LeadService orchestrates lead intake: validation, phone normalization,
// duplicate detection, agent assignment and persistence.
type LeadService struct {
	leadRepo      repository.LeadRepositoryInterface
	agentRepo     repository.AgentRepositoryInterface
	assignment    AssignmentFinder
	validator     *validator.Validate
	log           *logger.Logger
	defaultRegion string
	now           func() time.Time
}

// NewLeadService creates a new lead service
func NewLeadService(leadRepo repository.LeadRepositoryInterface, agentRepo repository.AgentRepositoryInterface, assignment AssignmentFinder, defaultRegion string) *LeadService {
	return &LeadService{
		leadRepo:      leadRepo,
		agentRepo:     agentRepo,
		assignment:    assignment,
		validator:     validator.New(),
		log:           logger.New().WithField("component", "lead_service"),
		defaultRegion: defaultRegion,
		now:           time.Now,
	}
}

// CreateLead validates and persists one lead.
//
// External submissions (isInternal false) go through the duplicate guard
// first: a lead with the same normalized phone, admission year and source
// website short-circuits to the existing record without creating anything.
// Internal submissions skip the guard so staff can deliberately re-enter a
// candidate.
//
// Assignment is best-effort. A winner found by the routing engine is bound
// atomically with the insert. When no winner exists, an internal lead falls
// back to its creator (without touching any workload counter) and an
// external lead is stored unassigned.
func (s *LeadService) CreateLead(req *CreateLeadRequest, isInternal bool, creatorID *uuid.UUID) (*CreateLeadResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, s.validationError(err)
	}

	normalized := phone.Normalize(req.Phone, s.defaultRegion)

	if !isInternal {
		existing, err := s.findDuplicate(normalized, req.AdmissionYear, req.SourceWebsite)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			s.log.WithFields(map[string]interface{}{
				"lead_id":        existing.ID,
				"admission_year": existing.AdmissionYear,
				"source_website": existing.SourceWebsite,
			}).Info("duplicate lead submission, returning existing record")
			return &CreateLeadResult{IsDuplicate: true, Lead: toLeadResponse(existing)}, nil
		}
	}

	lead := &models.Lead{
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		NormalizedPhone: normalized,
		AdmissionYear:   req.AdmissionYear,
		SourceWebsite:   req.SourceWebsite,
		CourseInterest:  req.CourseInterest,
		Status:          models.LeadStatusNew,
		Source:          models.LeadSourceWebsite,
		CreatedBy:       creatorID,
	}
	if isInternal {
		lead.Source = models.LeadSourceStaff
	}

	var agentID *uuid.UUID
	winner := s.assignment.FindBestAgent()
	if winner != nil {
		id := winner.ID
		agentID = &id
	} else if isInternal && creatorID != nil {
		// Creator keeps the lead but carries no routing workload for it.
		lead.AssignedTo = creatorID
	}

	if err := s.leadRepo.CreateWithAssignment(lead, agentID, s.now()); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	entry := s.log.WithField("lead_id", lead.ID)
	if winner != nil {
		entry = entry.WithFields(map[string]interface{}{
			"assigned_to": winner.ID,
			"agent_role":  winner.RoleName,
		})
	}
	entry.Info("lead created")

	return &CreateLeadResult{IsDuplicate: false, Lead: toLeadResponse(lead)}, nil
}

// BulkCreateLeads ingests a batch of leads in one insert, distributing them
// round-robin over the candidate pool ordered by current workload. Requests
// failing validation, in-batch repeats of the same de-duplication key, and
// rows matching a lead already on file are skipped rather than failing the
// batch. Workload counters are updated per agent after the insert; a failed
// counter update is logged and accepted as a known inconsistency window, no
// background job repairs it.
func (s *LeadService) BulkCreateLeads(reqs []CreateLeadRequest, creatorID *uuid.UUID) (*BulkCreateResult, error) {
	if len(reqs) == 0 {
		return nil, apperrors.ErrEmptyBulkBatch
	}

	pool := s.assignment.CandidatePool()
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].ActiveLeadsCount < pool[j].ActiveLeadsCount
	})

	result := &BulkCreateResult{}
	seen := make(map[string]bool, len(reqs))
	perAgent := make(map[uuid.UUID]int)
	leads := make([]*models.Lead, 0, len(reqs))
	next := 0
	assignedAt := s.now()

	for i := range reqs {
		req := &reqs[i]
		if err := s.validator.Struct(req); err != nil {
			s.log.WithError(err).WithField("batch_index", i).Warn("skipping invalid bulk lead")
			result.Skipped++
			continue
		}

		normalized := phone.Normalize(req.Phone, s.defaultRegion)
		key := normalized + "|" + req.AdmissionYear + "|" + req.SourceWebsite
		if seen[key] {
			result.Skipped++
			continue
		}
		seen[key] = true

		existing, err := s.findDuplicate(normalized, req.AdmissionYear, req.SourceWebsite)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			s.log.WithFields(map[string]interface{}{
				"lead_id":     existing.ID,
				"batch_index": i,
			}).Info("skipping bulk lead already on file")
			result.Skipped++
			continue
		}

		lead := &models.Lead{
			FullName:        req.FullName,
			Email:           req.Email,
			Phone:           req.Phone,
			NormalizedPhone: normalized,
			AdmissionYear:   req.AdmissionYear,
			SourceWebsite:   req.SourceWebsite,
			CourseInterest:  req.CourseInterest,
			Status:          models.LeadStatusNew,
			Source:          models.LeadSourceBulk,
			CreatedBy:       creatorID,
		}

		if len(pool) > 0 {
			agent := &pool[next%len(pool)]
			next++
			id := agent.ID
			lead.AssignedTo = &id
			perAgent[id]++
			result.Assigned++
		}

		leads = append(leads, lead)
	}

	if err := s.leadRepo.CreateBatch(leads); err != nil {
		return nil, fmt.Errorf("failed to create lead batch: %w", err)
	}

	for agentID, count := range perAgent {
		if err := s.agentRepo.IncrementActiveLeads(agentID, count, assignedAt); err != nil {
			s.log.WithError(err).WithFields(map[string]interface{}{
				"agent_id": agentID,
				"delta":    count,
			}).Error("bulk counter update failed, workload counter is stale")
		}
	}

	result.Created = len(leads)
	result.Leads = make([]LeadResponse, 0, len(leads))
	for _, lead := range leads {
		result.Leads = append(result.Leads, *toLeadResponse(lead))
	}

	s.log.WithFields(map[string]interface{}{
		"created":  result.Created,
		"skipped":  result.Skipped,
		"assigned": result.Assigned,
	}).Info("bulk lead batch processed")

	return result, nil
}

// GetLead retrieves a lead by ID
func (s *LeadService) GetLead(id uuid.UUID) (*LeadResponse, error) {
	lead, err := s.leadRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return toLeadResponse(lead), nil
}

// ListLeads retrieves leads matching the filter with pagination
func (s *LeadService) ListLeads(filter repository.LeadFilter, page, limit int) (*LeadListResponse, error) {
	if page < 1 || limit < 1 || limit > 100 {
		return nil, apperrors.ErrInvalidPaginationParams
	}
	if filter.Status != "" && !models.LeadStatus(filter.Status).IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	leads, total, err := s.leadRepo.List(filter, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	responses := make([]LeadResponse, 0, len(leads))
	for i := range leads {
		responses = append(responses, *toLeadResponse(&leads[i]))
	}

	return &LeadListResponse{
		Leads:      responses,
		TotalCount: total,
		Page:       page,
		Limit:      limit,
	}, nil
}

// findDuplicate checks whether an external submission matches an existing
// lead on (normalized phone, admission year, source website). The indexed
// phone lookup is the primary path; if it fails, a full-predicate scan is
// tried before giving up. Both paths failing is a hard error so a duplicate
// is never silently re-created.
func (s *LeadService) findDuplicate(normalizedPhone, admissionYear, sourceWebsite string) (*models.Lead, error) {
	matches, err := s.leadRepo.FindByNormalizedPhone(normalizedPhone)
	if err == nil {
		for i := range matches {
			if matches[i].AdmissionYear == admissionYear && matches[i].SourceWebsite == sourceWebsite {
				return &matches[i], nil
			}
		}
		return nil, nil
	}

	s.log.WithError(err).Warn("indexed duplicate lookup failed, falling back to full scan")

	lead, scanErr := s.leadRepo.ScanByDedupKey(normalizedPhone, admissionYear, sourceWebsite)
	if scanErr != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDuplicateCheckFailed, scanErr)
	}
	return lead, nil
}

func (s *LeadService) validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.NewValidationError(verrs[0].Field(), fmt.Sprintf("failed on %s", verrs[0].Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}

func toLeadResponse(lead *models.Lead) *LeadResponse {
	return &LeadResponse{
		ID:             lead.ID,
		FullName:       lead.FullName,
		Email:          lead.Email,
		Phone:          lead.Phone,
		AdmissionYear:  lead.AdmissionYear,
		SourceWebsite:  lead.SourceWebsite,
		CourseInterest: lead.CourseInterest,
		Status:         lead.Status,
		Source:         lead.Source,
		AssignedTo:     lead.AssignedTo,
		CreatedAt:      lead.CreatedAt,
	}
}
