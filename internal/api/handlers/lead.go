package handlers

import (
	"net/http"
	"strconv"

	"admissions-crm-backend/internal/auth"
	"admissions-crm-backend/internal/repository"
	"admissions-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeadHandler handles lead endpoints
type LeadHandler struct {
	leadService service.LeadServiceInterface
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService service.LeadServiceInterface) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// CreateLeadPublic godoc
// @Summary Submit a lead from a public website form
// @Description Accepts an unauthenticated lead submission. A submission matching an existing lead on phone, admission year and source website returns the existing record with 200 instead of creating a duplicate.
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body service.CreateLeadRequest true "Lead submission"
// @Success 200 {object} service.CreateLeadResult "Existing duplicate lead"
// @Success 201 {object} service.CreateLeadResult "Newly created lead"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/public/leads [post]
func (h *LeadHandler) CreateLeadPublic(c *gin.Context) {
	var req service.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.leadService.CreateLead(&req, false, nil)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsDuplicate {
		status = http.StatusOK
	}
	c.JSON(status, result)
}

// CreateLead godoc
// @Summary Create a lead on behalf of a candidate
// @Description Creates a lead entered by an authenticated staff member. Duplicate checks are skipped; if no agent is available the lead is assigned to the creator.
// @Tags leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lead body service.CreateLeadRequest true "Lead details"
// @Success 201 {object} service.CreateLeadResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req service.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	creatorID := agentIDFromContext(c)
	result, err := h.leadService.CreateLead(&req, true, creatorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// BulkCreateLeads godoc
// @Summary Upload a batch of leads
// @Description Creates many leads in one request, distributing them round-robin over available agents. Invalid entries and in-batch duplicates are skipped.
// @Tags leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param leads body []service.CreateLeadRequest true "Lead batch"
// @Success 201 {object} service.BulkCreateResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/leads/bulk [post]
func (h *LeadHandler) BulkCreateLeads(c *gin.Context) {
	var reqs []service.CreateLeadRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	creatorID := agentIDFromContext(c)
	result, err := h.leadService.BulkCreateLeads(reqs, creatorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GetLead godoc
// @Summary Get a lead by ID
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Success 200 {object} service.LeadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	lead, err := h.leadService.GetLead(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

// ListLeads godoc
// @Summary List leads
// @Description Lists leads with optional filters on assignee and status
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param assigned_to query string false "Filter by assigned agent ID"
// @Param status query string false "Filter by lead status"
// @Success 200 {object} service.LeadListResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var filter repository.LeadFilter
	if raw := c.Query("assigned_to"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid assigned_to"})
			return
		}
		filter.AssignedTo = &id
	}
	filter.Status = c.Query("status")

	result, err := h.leadService.ListLeads(filter, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// agentIDFromContext returns the authenticated agent's id, or nil when the
// request carries no usable identity.
func agentIDFromContext(c *gin.Context) *uuid.UUID {
	raw := c.GetString(auth.ContextKeyAgentID)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
