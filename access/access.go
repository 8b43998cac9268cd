// Package access decides who may call the administrative surface.
package access

import "sync"

// Authorizer answers role checks for privileged operations.
type Authorizer interface {
	IsAuctionAdmin(account string) bool
}

// RoleMap is a static in-memory Authorizer seeded from configuration.
type RoleMap struct {
	mu     sync.RWMutex
	admins map[string]struct{}
}

func NewRoleMap(auctionAdmins []string) *RoleMap {
	m := &RoleMap{admins: make(map[string]struct{}, len(auctionAdmins))}
	for _, a := range auctionAdmins {
		m.admins[a] = struct{}{}
	}
	return m
}

func (m *RoleMap) IsAuctionAdmin(account string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.admins[account]
	return ok
}

// Grant adds an auction admin at runtime.
func (m *RoleMap) Grant(account string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.admins[account] = struct{}{}
}

// Revoke removes an auction admin; revoking an unknown account is a no-op.
func (m *RoleMap) Revoke(account string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.admins, account)
}
