package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewActor(t *testing.T) {
	t.Run("merges_and_dedups_roles", func(t *testing.T) {
		a := NewActor("u1", "u1@school.edu", []string{" Student ", "EMPLOYER", "student"}, "employer")
		assert.Equal(t, []string{"student", "employer"}, a.Roles)
		assert.False(t, a.IsAdmin)
	})

	t.Run("db_superadmin_makes_admin", func(t *testing.T) {
		a := NewActor("u1", "", nil, "SuperAdmin")
		assert.True(t, a.IsAdmin)
	})
}

func TestCanManageEvent(t *testing.T) {
	owner := NewActor("owner", "", nil, "")
	other := NewActor("other", "", nil, "")
	admin := NewActor("root", "", []string{"admin"}, "")

	assert.True(t, CanManageEvent("owner", owner))
	assert.False(t, CanManageEvent("owner", other))
	assert.True(t, CanManageEvent("owner", admin))
	assert.False(t, CanManageEvent("", other))
}

func TestCanManageInternships(t *testing.T) {
	assert.True(t, CanManageInternships(NewActor("e", "", []string{"employer"}, "")))
	assert.True(t, CanManageInternships(NewActor("a", "", nil, "admin")))
	assert.False(t, CanManageInternships(NewActor("s", "", []string{"student"}, "")))
}
