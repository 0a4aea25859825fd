package service

import (
	"admissions-crm-backend/internal/database/models"
	"admissions-crm-backend/internal/logger"
	"admissions-crm-backend/internal/repository"
)

// CandidateAgent is a winning agent augmented with its resolved role name
// for logging and telemetry.
type CandidateAgent struct {
	models.Agent
	RoleName string
}

// AssignmentService decides which agent receives an inbound lead. Any
// internal failure (role fetch, candidate load) degrades to "no winner"
// instead of surfacing an error: losing a lead is worse than losing optimal
// routing.
type AssignmentService struct {
	agentRepo repository.AgentRepositoryInterface
	roleCache *RoleCache
	tolerance float64
	log       *logger.Logger
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(agentRepo repository.AgentRepositoryInterface, roleCache *RoleCache, tolerance float64) *AssignmentService {
	if tolerance <= 0 {
		tolerance = DefaultScoreTolerance
	}
	return &AssignmentService{
		agentRepo: agentRepo,
		roleCache: roleCache,
		tolerance: tolerance,
		log:       logger.New().WithField("component", "assignment"),
	}
}

// FindBestAgent returns the winning agent for the next lead, or nil when no
// eligible, available candidate exists or role resolution failed. It never
// returns an error: callers proceed with an unassigned lead.
func (s *AssignmentService) FindBestAgent() *CandidateAgent {
	roleIDs := s.roleCache.ResolveRoleIDs()
	if roleIDs.Empty() {
		s.log.Info("no eligible roles configured, lead will be unassigned")
		return nil
	}

	candidates, err := s.agentRepo.FindAvailableByRoleIDs(roleIDs.List())
	if err != nil {
		s.log.WithError(err).Error("candidate load failed, lead will be unassigned")
		return nil
	}

	winner := SelectBestCandidate(candidates, s.tolerance)
	if winner == nil {
		return nil
	}

	return &CandidateAgent{
		Agent:    *winner,
		RoleName: roleIDs.RoleNameFor(winner.RoleID),
	}
}

// CandidatePool loads the full eligible, available candidate pool once, for
// batch assignment. Same eligibility rules as FindBestAgent, same fail-open
// behavior: failures yield an empty pool.
func (s *AssignmentService) CandidatePool() []models.Agent {
	roleIDs := s.roleCache.ResolveRoleIDs()
	if roleIDs.Empty() {
		s.log.Info("no eligible roles configured, batch will be unassigned")
		return nil
	}

	candidates, err := s.agentRepo.FindAvailableByRoleIDs(roleIDs.List())
	if err != nil {
		s.log.WithError(err).Error("candidate pool load failed, batch will be unassigned")
		return nil
	}
	return candidates
}
