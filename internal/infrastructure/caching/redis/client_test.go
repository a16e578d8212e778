package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internsnow/campus-match/internal/domain"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	c, err := New("redis://"+s.Addr()+"/0", "test:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, s
}

func TestClient_RoundTrip(t *testing.T) {
	c, s := newTestClient(t)
	ctx := context.Background()
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	items := []*domain.Internship{{ID: "a", CompanyName: "Acme", URL: "https://acme.test", CreatedAt: created}}
	require.NoError(t, c.Set(ctx, "listings:internships", items, time.Minute))
	assert.True(t, s.Exists("test:listings:internships"))
	assert.False(t, s.Exists("listings:internships"))
	assert.Equal(t, time.Minute, s.TTL("test:listings:internships"))

	var got []*domain.Internship
	found, err := c.Get(ctx, "listings:internships", &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got, 1)
	assert.Equal(t, "Acme", got[0].CompanyName)
	assert.True(t, created.Equal(got[0].CreatedAt))
}

func TestClient_MissAndDelete(t *testing.T) {
	c, s := newTestClient(t)
	ctx := context.Background()

	var dest []string
	found, err := c.Get(ctx, "nope", &dest)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "k1", []string{"x"}, 0))
	require.NoError(t, c.Set(ctx, "k2", []string{"y"}, 0))
	require.NoError(t, c.Delete(ctx, "k1", "k2"))
	assert.False(t, s.Exists("test:k1"))
	assert.False(t, s.Exists("test:k2"))

	assert.NoError(t, c.Delete(ctx))
}

func TestClient_ExpiredEntryIsMiss(t *testing.T) {
	c, s := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", 1, time.Second))
	s.FastForward(2 * time.Second)

	var v int
	found, err := c.Get(ctx, "k", &v)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClient_CorruptValueIsDroppedAsMiss(t *testing.T) {
	c, s := newTestClient(t)
	require.NoError(t, s.Set("test:bad", "{not json"))

	var v map[string]any
	found, err := c.Get(context.Background(), "bad", &v)
	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, s.Exists("test:bad"))
}

func TestNew_DefaultPrefix(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	c, err := New("redis://"+s.Addr()+"/0", " ")
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, c.Set(context.Background(), "k", 1, 0))
	assert.True(t, s.Exists(DefaultKeyPrefix+"k"))
}

func TestNew_Unreachable(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	addr := s.Addr()
	s.Close()

	_, err = New("redis://"+addr+"/0", "")
	assert.Error(t, err)
}
