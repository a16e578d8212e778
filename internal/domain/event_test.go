package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	tt, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("bad time %q: %v", s, err)
	}
	return tt.UTC()
}

func validEventInput() EventInput {
	return EventInput{
		Title:            "  Chicago Career Mixer ",
		Date:             "Thu, Feb 20",
		Time:             "6:00 PM - 8:00 PM",
		Location:         "Chicago, IL",
		Description:      "Networking with startup teams and hiring managers.",
		Details:          "Bring your resume and portfolio links.",
		Host:             "City Tech Alliance",
		Price:            "Free",
		RegistrationLink: "https://example.com/chicago-mixer",
		Tags:             []string{"Tech", " Careers ", "", "Tech"},
	}
}

func TestEventInput_Validate(t *testing.T) {
	t.Run("trims_fields_and_normalizes_tags", func(t *testing.T) {
		v, err := validEventInput().Validate()
		require.NoError(t, err)
		assert.Equal(t, "Chicago Career Mixer", v.Title)
		assert.Equal(t, []string{"Tech", "Careers"}, v.Tags)
	})

	t.Run("missing_required_field", func(t *testing.T) {
		in := validEventInput()
		in.Host = "   "
		_, err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, CodeValidation, err.(*AppError).Code)
		assert.Contains(t, err.Error(), "Missing required event fields")
	})

	t.Run("title_too_long", func(t *testing.T) {
		in := validEventInput()
		in.Title = strings.Repeat("a", 256)
		_, err := in.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Title must be 255 characters or fewer")
	})

	t.Run("details_too_long", func(t *testing.T) {
		in := validEventInput()
		in.Details = strings.Repeat("a", 5001)
		_, err := in.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Details must be 5000 characters or fewer")
	})

	t.Run("registration_link_must_be_http", func(t *testing.T) {
		in := validEventInput()
		in.RegistrationLink = "ftp://example.com/x"
		_, err := in.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "http:// or https://")
	})
}

func TestNormalizeTags(t *testing.T) {
	t.Run("keeps_first_fifteen_before_dedup", func(t *testing.T) {
		tags := make([]string, 0, 20)
		for i := 0; i < 20; i++ {
			tags = append(tags, string(rune('a'+i)))
		}
		assert.Len(t, NormalizeTags(tags), 15)
	})

	t.Run("nil_input_yields_empty_slice", func(t *testing.T) {
		out := NormalizeTags(nil)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})
}

func TestEvent_Lifecycle(t *testing.T) {
	now := mustTime(t, "2026-02-01T10:00:00Z")

	t.Run("new_event_gets_prefixed_id_and_owner", func(t *testing.T) {
		e, err := NewEvent(validEventInput(), "auth0|123", "ana@school.edu", now)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(e.ID, EventIDPrefix))
		assert.Equal(t, "auth0|123", e.OwnerSub())
		require.NotNil(t, e.CreatedByEmail)
		assert.Equal(t, "ana@school.edu", *e.CreatedByEmail)
		assert.Equal(t, now, e.CreatedAt)
	})

	t.Run("new_event_requires_creator", func(t *testing.T) {
		_, err := NewEvent(validEventInput(), " ", "", now)
		require.Error(t, err)
		assert.Equal(t, CodeUnauthorized, err.(*AppError).Code)
	})

	t.Run("archive_twice_fails", func(t *testing.T) {
		e, _ := NewEvent(validEventInput(), "u1", "", now)
		require.NoError(t, e.Archive("u1", now))
		assert.True(t, e.IsArchived())
		err := e.Archive("u1", now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already archived")
	})

	t.Run("archived_event_cannot_be_updated", func(t *testing.T) {
		e, _ := NewEvent(validEventInput(), "u1", "", now)
		_ = e.Archive("u1", now)
		err := e.ApplyUpdate(validEventInput(), now)
		require.Error(t, err)
		assert.Equal(t, CodeNotFound, err.(*AppError).Code)
	})

	t.Run("is_live_respects_ends_at", func(t *testing.T) {
		e, _ := NewEvent(validEventInput(), "u1", "", now)
		assert.True(t, e.IsLive(now))

		past := now.Add(-time.Hour)
		e.EndsAt = &past
		assert.False(t, e.IsLive(now))

		future := now.Add(time.Hour)
		e.EndsAt = &future
		assert.True(t, e.IsLive(now))
	})
}
