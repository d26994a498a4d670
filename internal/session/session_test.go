package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caretrip/concierge/pkg/logger"
)

func newTestStore(t *testing.T, expiry time.Duration) *Store {
	t.Helper()
	log, err := logger.New(logger.Config{Level: "error", Format: "console"})
	require.NoError(t, err)
	return NewStore(expiry, log)
}

func TestCreateAndGet(t *testing.T) {
	store := newTestStore(t, 30*time.Minute)

	sess := store.Create()
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, StateGreeting, sess.State)
	assert.True(t, sess.ExpiresAt.After(sess.CreatedAt))

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)

	_, err = store.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExpiry(t *testing.T) {
	store := newTestStore(t, -time.Minute)

	sess := store.Create()
	_, err := store.Get(sess.ID)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestHelperLink(t *testing.T) {
	store := newTestStore(t, 30*time.Minute)
	sess := store.Create()

	link, expiresAt, err := store.CreateHelperLink(sess.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, link)
	assert.False(t, expiresAt.IsZero())

	// Repeated calls return the same token.
	again, _, err := store.CreateHelperLink(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, link, again)

	resolved, err := store.ByHelperLink(link)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, resolved.ID)

	_, err = store.ByHelperLink("bogus")
	assert.ErrorIs(t, err, ErrLinkUnknown)
}

func TestHelperLinkExpired(t *testing.T) {
	store := newTestStore(t, -time.Minute)
	sess := store.Create()

	link, _, err := store.CreateHelperLink(sess.ID)
	require.NoError(t, err)

	_, err = store.ByHelperLink(link)
	assert.ErrorIs(t, err, ErrLinkExpired)
}

func TestMessagesAndState(t *testing.T) {
	store := newTestStore(t, 30*time.Minute)
	sess := store.Create()

	msg, err := store.AppendMessage(sess.ID, RoleUser, "I need to change my flight")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, msg.Role)
	assert.NotEmpty(t, msg.ID)

	_, err = store.AppendMessage(sess.ID, RoleFamily, "Try the 2pm option")
	require.NoError(t, err)

	require.NoError(t, store.AttachReservation(sess.ID, "DEMO123"))
	require.NoError(t, store.SetState(sess.ID, StateChanging))

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Len(t, got.Messages, 2)
	assert.Equal(t, "DEMO123", got.ConfirmationCode)
	assert.Equal(t, StateChanging, got.State)
}

func TestSnapshotIsolation(t *testing.T) {
	store := newTestStore(t, 30*time.Minute)
	sess := store.Create()

	_, err := store.AppendMessage(sess.ID, RoleUser, "hello")
	require.NoError(t, err)

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	got.Messages[0].Content = "mutated"
	got.Context["k"] = "v"

	fresh, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", fresh.Messages[0].Content)
	assert.NotContains(t, fresh.Context, "k")
}
