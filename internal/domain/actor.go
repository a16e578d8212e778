package domain

import "strings"

const (
	RoleStudent    = "student"
	RoleEmployer   = "employer"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// Actor is the authenticated caller resolved from a session.
type Actor struct {
	Sub     string
	Email   string
	Roles   []string
	IsAdmin bool
}

// NewActor merges claim roles with the role stored for the user, normalising
// and deduplicating them in order.
func NewActor(sub, email string, claimRoles []string, dbRole string) Actor {
	seen := map[string]struct{}{}
	roles := make([]string, 0, len(claimRoles)+1)
	add := func(r string) {
		r = NormalizeRole(r)
		if r == "" {
			return
		}
		if _, ok := seen[r]; ok {
			return
		}
		seen[r] = struct{}{}
		roles = append(roles, r)
	}
	for _, r := range claimRoles {
		add(r)
	}
	add(dbRole)

	a := Actor{Sub: strings.TrimSpace(sub), Email: strings.TrimSpace(email), Roles: roles}
	for _, r := range roles {
		if IsAdminRole(r) {
			a.IsAdmin = true
			break
		}
	}
	return a
}

func NormalizeRole(role string) string { return strings.ToLower(strings.TrimSpace(role)) }

func IsAdminRole(role string) bool { return role == RoleAdmin || role == RoleSuperAdmin }

func (a Actor) HasAnyRole(roles ...string) bool {
	for _, want := range roles {
		want = NormalizeRole(want)
		for _, have := range a.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

// CanManageEvent: admins manage everything, everyone else only what they created.
func CanManageEvent(ownerSub string, a Actor) bool {
	if a.IsAdmin {
		return true
	}
	return ownerSub != "" && ownerSub == a.Sub
}

// CanManageInternships gates internship writes to employers and admins.
func CanManageInternships(a Actor) bool {
	return a.IsAdmin || a.HasAnyRole(RoleEmployer)
}
