package service

import (
	"errors"
	"fmt"
	"time"

	"admissions-crm-backend/internal/database/models"
	apperrors "admissions-crm-backend/internal/errors"
	"admissions-crm-backend/internal/logger"
	"admissions-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateAgentRequest is the payload for registering an agent
type CreateAgentRequest struct {
	FullName    string    `json:"full_name" validate:"required,max=200"`
	Email       string    `json:"email" validate:"required,email,max=255"`
	PhoneNumber string    `json:"phone_number" validate:"omitempty,max=20"`
	RoleID      uuid.UUID `json:"role_id" validate:"required"`
	Weightage   float64   `json:"weightage" validate:"omitempty,gt=0"`
}

// AgentResponse is the API representation of an agent
type AgentResponse struct {
	ID               uuid.UUID  `json:"id"`
	FullName         string     `json:"full_name"`
	Email            string     `json:"email"`
	PhoneNumber      string     `json:"phone_number,omitempty"`
	RoleID           uuid.UUID  `json:"role_id"`
	RoleName         string     `json:"role_name,omitempty"`
	IsAvailable      bool       `json:"is_available"`
	ActiveLeadsCount int        `json:"active_leads_count"`
	Weightage        float64    `json:"weightage"`
	LastAssignedAt   *time.Time `json:"last_assigned_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// AgentListResponse is a paginated list of agents
type AgentListResponse struct {
	Agents     []AgentResponse `json:"agents"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}

// AgentService handles agent management
type AgentService struct {
	agentRepo repository.AgentRepositoryInterface
	roleRepo  repository.RoleRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewAgentService creates a new agent service
func NewAgentService(agentRepo repository.AgentRepositoryInterface, roleRepo repository.RoleRepositoryInterface) *AgentService {
	return &AgentService{
		agentRepo: agentRepo,
		roleRepo:  roleRepo,
		validator: validator.New(),
		log:       logger.New().WithField("component", "agent_service"),
	}
}

// CreateAgent registers a new agent under an existing role. Weightage
// defaults to 1 when omitted.
func (s *AgentService) CreateAgent(req *CreateAgentRequest) (*AgentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, apperrors.NewValidationError(verrs[0].Field(), fmt.Sprintf("failed on %s", verrs[0].Tag()))
		}
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.agentRepo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrAgentExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check agent email: %w", err)
	}

	role, err := s.roleRepo.GetByID(req.RoleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to resolve role: %w", err)
	}

	weightage := req.Weightage
	if weightage <= 0 {
		weightage = 1
	}

	agent := &models.Agent{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		RoleID:      role.ID,
		IsAvailable: true,
		Weightage:   weightage,
	}

	if err := s.agentRepo.Create(agent); err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	agent.Role = *role
	s.log.WithFields(map[string]interface{}{
		"agent_id": agent.ID,
		"role":     role.Name,
	}).Info("agent created")

	return toAgentResponse(agent), nil
}

// GetAgent retrieves an agent by ID
func (s *AgentService) GetAgent(id uuid.UUID) (*AgentResponse, error) {
	agent, err := s.agentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return toAgentResponse(agent), nil
}

// ListAgents retrieves all agents with pagination
func (s *AgentService) ListAgents(page, limit int) (*AgentListResponse, error) {
	if page < 1 || limit < 1 || limit > 100 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	agents, total, err := s.agentRepo.GetAll(limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	responses := make([]AgentResponse, 0, len(agents))
	for i := range agents {
		responses = append(responses, *toAgentResponse(&agents[i]))
	}

	return &AgentListResponse{
		Agents:     responses,
		TotalCount: total,
		Page:       page,
		Limit:      limit,
	}, nil
}

// SetAvailability toggles whether an agent can receive new leads. An
// unavailable agent keeps its current workload; it only leaves the candidate
// pool for future assignments.
func (s *AgentService) SetAvailability(id uuid.UUID, isAvailable bool) (*AgentResponse, error) {
	if err := s.agentRepo.SetAvailability(id, isAvailable); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to set availability: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"agent_id":     id,
		"is_available": isAvailable,
	}).Info("agent availability updated")

	return s.GetAgent(id)
}

func toAgentResponse(agent *models.Agent) *AgentResponse {
	return &AgentResponse{
		ID:               agent.ID,
		FullName:         agent.FullName,
		Email:            agent.Email,
		PhoneNumber:      agent.PhoneNumber,
		RoleID:           agent.RoleID,
		RoleName:         agent.Role.Name,
		IsAvailable:      agent.IsAvailable,
		ActiveLeadsCount: agent.ActiveLeadsCount,
		Weightage:        agent.Weightage,
		LastAssignedAt:   agent.LastAssignedAt,
		CreatedAt:        agent.CreatedAt,
	}
}
