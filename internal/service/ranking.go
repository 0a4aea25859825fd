package service

import (
	"math"
	"time"

	"admissions-crm-backend/internal/database/models"
)

// DefaultScoreTolerance is the threshold under which two assignment scores
// are treated as equal. It absorbs floating-point noise from the weightage
// division, not genuinely different workloads. Configurable per
// AssignmentService via SCORE_TOLERANCE.
const DefaultScoreTolerance = 0.01

// AssignmentScore computes the weighted load of an agent: active leads
// divided by declared capacity. Lower is preferred. Absent or non-positive
// weightage counts as 1.
func AssignmentScore(agent *models.Agent) float64 {
	weightage := agent.Weightage
	if weightage <= 0 {
		weightage = 1
	}
	return float64(agent.ActiveLeadsCount) / weightage
}

// SelectBestCandidate deterministically picks a single winner from the
// candidate list, or nil when the list is empty. Ordering:
//
//  1. ascending score (scores within tolerance are tied)
//  2. ascending last_assigned_at; never-assigned agents sort first
//  3. ascending raw active_leads_count
//
// The result is a pure function of the candidate snapshot: the same input
// always yields the same winner.
func SelectBestCandidate(candidates []models.Agent, tolerance float64) *models.Agent {
	if len(candidates) == 0 {
		return nil
	}

	best := &candidates[0]
	for i := 1; i < len(candidates); i++ {
		if candidateLess(&candidates[i], best, tolerance) {
			best = &candidates[i]
		}
	}
	return best
}

// candidateLess reports whether a ranks strictly ahead of b
func candidateLess(a, b *models.Agent, tolerance float64) bool {
	scoreA, scoreB := AssignmentScore(a), AssignmentScore(b)
	if math.Abs(scoreA-scoreB) > tolerance {
		return scoreA < scoreB
	}

	lastA, lastB := lastAssigned(a), lastAssigned(b)
	if !lastA.Equal(lastB) {
		return lastA.Before(lastB)
	}

	return a.ActiveLeadsCount < b.ActiveLeadsCount
}

// lastAssigned treats a missing timestamp as the zero time, so agents never
// assigned before rank ahead of everyone else.
func lastAssigned(agent *models.Agent) time.Time {
	if agent.LastAssignedAt == nil {
		return time.Time{}
	}
	return *agent.LastAssignedAt
}
