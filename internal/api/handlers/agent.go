package handlers

import (
	"net/http"
	"strconv"

	"admissions-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AgentHandler handles agent endpoints
type AgentHandler struct {
	agentService service.AgentServiceInterface
}

// NewAgentHandler creates a new agent handler
func NewAgentHandler(agentService service.AgentServiceInterface) *AgentHandler {
	return &AgentHandler{agentService: agentService}
}

// SetAvailabilityRequest toggles an agent's availability
type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

// CreateAgent godoc
// @Summary Register an agent
// @Tags agents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param agent body service.CreateAgentRequest true "Agent details"
// @Success 201 {object} service.AgentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/agents [post]
func (h *AgentHandler) CreateAgent(c *gin.Context) {
	var req service.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	agent, err := h.agentService.CreateAgent(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, agent)
}

// GetAgent godoc
// @Summary Get an agent by ID
// @Tags agents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agent ID"
// @Success 200 {object} service.AgentResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/agents/{id} [get]
func (h *AgentHandler) GetAgent(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	agent, err := h.agentService.GetAgent(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, agent)
}

// ListAgents godoc
// @Summary List agents
// @Tags agents
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} service.AgentListResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/agents [get]
func (h *AgentHandler) ListAgents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.agentService.ListAgents(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SetAvailability godoc
// @Summary Set agent availability
// @Description Marks an agent available or unavailable for new lead assignments
// @Tags agents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agent ID"
// @Param availability body SetAvailabilityRequest true "Availability toggle"
// @Success 200 {object} service.AgentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/agents/{id}/availability [put]
func (h *AgentHandler) SetAvailability(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "is_available is required"})
		return
	}

	agent, err := h.agentService.SetAvailability(id, *req.IsAvailable)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, agent)
}
