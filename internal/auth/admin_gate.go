package auth

import (
	"crypto/subtle"

	"reservas/internal/model"
)

// AdminGate decides whether a registration may claim the elevated role.
type AdminGate struct {
	key []byte
}

// NewAdminGate creates a gate for the configured key. An empty key closes the gate.
func NewAdminGate(key string) *AdminGate {
	return &AdminGate{key: []byte(key)}
}

// Allow reports whether role may be registered with the supplied key.
// Non-elevated roles are always allowed.
func (g *AdminGate) Allow(role, suppliedKey string) bool {
	if role != model.RoleAdministrator {
		return true
	}
	if g == nil || len(g.key) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(g.key, []byte(suppliedKey)) == 1
}
