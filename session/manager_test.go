package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestCreateAndResolve(t *testing.T) {
	m := NewManager(testSecret, 8*time.Hour)

	sess, token, err := m.Create(3, 2, false)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.NotEmpty(t, token)

	got, ok := m.Resolve(token)
	require.True(t, ok)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, 3, got.UserID)
	assert.Equal(t, 2, got.StoreID)
	assert.False(t, got.IsAdmin)
	assert.Equal(t, sess.LoginTime.Add(8*time.Hour), got.ExpiresAt)
}

func TestResolveRejectsBadTokens(t *testing.T) {
	m := NewManager(testSecret, 8*time.Hour)
	_, token, err := m.Create(1, 1, false)
	require.NoError(t, err)

	_, ok := m.Resolve("not-a-token")
	assert.False(t, ok)

	// token signed with a different secret
	other := NewManager([]byte("other-secret"), 8*time.Hour)
	_, foreign, err := other.Create(1, 1, false)
	require.NoError(t, err)
	_, ok = m.Resolve(foreign)
	assert.False(t, ok)

	// valid signature but destroyed record
	sess, _ := m.Resolve(token)
	m.Destroy(sess.ID)
	_, ok = m.Resolve(token)
	assert.False(t, ok)
}

func TestAbsoluteExpiry(t *testing.T) {
	m := NewManager(testSecret, 8*time.Hour)

	base := time.Now()
	m.now = func() time.Time { return base }
	_, token, err := m.Create(1, 1, true)
	require.NoError(t, err)

	// still valid one minute before the deadline
	m.now = func() time.Time { return base.Add(8*time.Hour - time.Minute) }
	_, ok := m.Resolve(token)
	assert.True(t, ok)

	// gone one minute after, regardless of activity
	m.now = func() time.Time { return base.Add(8*time.Hour + time.Minute) }
	_, ok = m.Resolve(token)
	assert.False(t, ok)

	// and the record was dropped, not just hidden
	m.now = func() time.Time { return base }
	_, ok = m.Resolve(token)
	assert.False(t, ok)
}

func TestDestroyUnknownIsNoop(t *testing.T) {
	m := NewManager(testSecret, time.Hour)
	m.Destroy("missing")
}
