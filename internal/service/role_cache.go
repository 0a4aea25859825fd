package service

import (
	"sync"
	"time"

	"admissions-crm-backend/internal/database/models"
	"admissions-crm-backend/internal/logger"

	"github.com/google/uuid"
)

// DefaultRoleCacheTTL bounds how often the routing-eligible roles are
// re-read from the database.
const DefaultRoleCacheTTL = 300 * time.Second

// EligibleRoleIDs holds the resolved ids of the two routing-eligible roles.
// Either id may be nil when the role is not seeded.
type EligibleRoleIDs struct {
	ManagerID   *uuid.UUID
	ExecutiveID *uuid.UUID
}

// Empty reports whether no eligible role could be resolved
func (e EligibleRoleIDs) Empty() bool {
	return e.ManagerID == nil && e.ExecutiveID == nil
}

// List returns the resolved ids, skipping absent ones
func (e EligibleRoleIDs) List() []uuid.UUID {
	ids := make([]uuid.UUID, 0, 2)
	if e.ManagerID != nil {
		ids = append(ids, *e.ManagerID)
	}
	if e.ExecutiveID != nil {
		ids = append(ids, *e.ExecutiveID)
	}
	return ids
}

// RoleNameFor maps a resolved role id back to its human-readable name for
// logging. Returns empty for an id outside the eligible pair.
func (e EligibleRoleIDs) RoleNameFor(roleID uuid.UUID) string {
	if e.ManagerID != nil && *e.ManagerID == roleID {
		return models.RoleNameAdmissionManager
	}
	if e.ExecutiveID != nil && *e.ExecutiveID == roleID {
		return models.RoleNameAdmissionExecutive
	}
	return ""
}

// RoleCache resolves the routing-eligible role names to their current ids,
// refreshing at most once per TTL. It trades freshness for read cost: a role
// edit can go unnoticed for up to one TTL, which is accepted. A fetch
// failure yields an empty result instead of an error so assignment degrades
// to "no candidates" rather than blocking lead creation; the failed fetch is
// not cached, so the next call retries.
type RoleCache struct {
	mu        sync.Mutex
	fetch     func() ([]models.Role, error)
	now       func() time.Time
	ttl       time.Duration
	cached    EligibleRoleIDs
	fetchedAt time.Time
	log       *logger.Logger
}

// NewRoleCache creates a role cache over the given fetch function. The clock
// is injectable so tests can drive TTL expiry deterministically.
func NewRoleCache(fetch func() ([]models.Role, error), ttl time.Duration, now func() time.Time) *RoleCache {
	if ttl <= 0 {
		ttl = DefaultRoleCacheTTL
	}
	if now == nil {
		now = time.Now
	}
	return &RoleCache{
		fetch: fetch,
		now:   now,
		ttl:   ttl,
		log:   logger.New().WithField("component", "role_cache"),
	}
}

// ResolveRoleIDs returns the eligible role ids, re-fetching when the cached
// entry is missing or older than the TTL.
func (c *RoleCache) ResolveRoleIDs() EligibleRoleIDs {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fetchedAt.IsZero() && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.cached
	}

	roles, err := c.fetch()
	if err != nil {
		c.log.WithError(err).Warn("role fetch failed, degrading to no eligible roles")
		return EligibleRoleIDs{}
	}

	var resolved EligibleRoleIDs
	for i := range roles {
		switch roles[i].Name {
		case models.RoleNameAdmissionManager:
			id := roles[i].ID
			resolved.ManagerID = &id
		case models.RoleNameAdmissionExecutive:
			id := roles[i].ID
			resolved.ExecutiveID = &id
		}
	}

	c.cached = resolved
	c.fetchedAt = c.now()
	return c.cached
}
