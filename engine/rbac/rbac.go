// Package rbac implements the simulated role hierarchy that gates every
// demo view. There is no authentication behind it: the demo boots with the
// highest-privilege role on purpose so visitors can see everything, then
// step down.
package rbac

// Role is one tier of the club hierarchy.
type Role string

const (
	RoleMember         Role = "member"
	RoleVIPMember      Role = "vip_member"
	RoleHost           Role = "host"
	RoleDJ             Role = "dj"
	RoleManager        Role = "manager"
	RoleGeneralManager Role = "general_manager"
	RoleOwner          Role = "owner"
	RoleSuperAdmin     Role = "super_admin"
)

// roleRanks is the strict total order used for capability checks: every
// role has a distinct rank, so DJ outranks Host but not the reverse.
var roleRanks = map[Role]int{
	RoleMember:         10,
	RoleVIPMember:      20,
	RoleHost:           40,
	RoleDJ:             50,
	RoleManager:        70,
	RoleGeneralManager: 80,
	RoleOwner:          90,
	RoleSuperAdmin:     100,
}

// AllRoles lists every role from lowest to highest privilege.
var AllRoles = []Role{
	RoleMember,
	RoleVIPMember,
	RoleHost,
	RoleDJ,
	RoleManager,
	RoleGeneralManager,
	RoleOwner,
	RoleSuperAdmin,
}

// roleLabels holds the display metadata from the role config table.
var roleLabels = map[Role]struct{ label, short string }{
	RoleMember:         {"Club Member", "MBR"},
	RoleVIPMember:      {"VIP Member", "VIP"},
	RoleHost:           {"Host", "HOST"},
	RoleDJ:             {"DJ", "DJ"},
	RoleManager:        {"Manager", "MGR"},
	RoleGeneralManager: {"General Manager", "GM"},
	RoleOwner:          {"Owner", "OWN"},
	RoleSuperAdmin:     {"Super Admin", "SA"},
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := roleRanks[r]
	return ok
}

// Rank returns the privilege rank of r, or 0 for unknown roles.
func (r Role) Rank() int {
	return roleRanks[r]
}

// Label returns the human-readable role name.
func (r Role) Label() string {
	if meta, ok := roleLabels[r]; ok {
		return meta.label
	}
	return string(r)
}

// ShortLabel returns the compact role badge text.
func (r Role) ShortLabel() string {
	if meta, ok := roleLabels[r]; ok {
		return meta.short
	}
	return string(r)
}

// Parse returns the role named by s, or false when s names no role.
func Parse(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

// Store holds the single active demo role for a session. A nil role means
// guest. The store is injected into every consumer so tests can swap it.
type Store struct {
	role *Role
}

// NewStore creates a store with the given initial role. Unknown roles fall
// back to guest.
func NewStore(initial Role) *Store {
	s := &Store{}
	if initial.Valid() {
		r := initial
		s.role = &r
	}
	return s
}

// NewGuestStore creates a store with no active role.
func NewGuestStore() *Store {
	return &Store{}
}

// CurrentRole returns the active role, or false when browsing as guest.
func (s *Store) CurrentRole() (Role, bool) {
	if s.role == nil {
		return "", false
	}
	return *s.role, true
}

// SetRole switches the active role. Unknown roles are ignored.
func (s *Store) SetRole(r Role) {
	if !r.Valid() {
		return
	}
	role := r
	s.role = &role
}

// ClearRole switches to guest.
func (s *Store) ClearRole() {
	s.role = nil
}

// IsGuest reports whether no role is active.
func (s *Store) IsGuest() bool {
	return s.role == nil
}

// Can reports whether the active role can act as required. Guests fail
// every check, including for the lowest role.
func (s *Store) Can(required Role) bool {
	if s.role == nil {
		return false
	}
	return roleRanks[*s.role] >= roleRanks[required]
}
