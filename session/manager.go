// Package session holds server-side session records keyed by opaque IDs.
// The cookie handed to clients carries the ID wrapped in a signed JWT, so a
// forged cookie is rejected before any lookup. Expiry is absolute from
// creation, independent of activity.
package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Session struct {
	ID        string
	UserID    int
	StoreID   int
	IsAdmin   bool
	LoginTime time.Time
	ExpiresAt time.Time
}

type Manager struct {
	mu       sync.RWMutex
	secret   []byte
	ttl      time.Duration
	sessions map[string]Session
	now      func() time.Time
}

func NewManager(secret []byte, ttl time.Duration) *Manager {
	return &Manager{
		secret:   secret,
		ttl:      ttl,
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

// Create establishes a session and returns it with the signed cookie token.
func (m *Manager) Create(userID, storeID int, isAdmin bool) (Session, string, error) {
	now := m.now()
	sess := Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		StoreID:   storeID,
		IsAdmin:   isAdmin,
		LoginTime: now,
		ExpiresAt: now.Add(m.ttl),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sess.ID,
		"iat": now.Unix(),
		"exp": sess.ExpiresAt.Unix(),
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return Session{}, "", err
	}

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	return sess, signed, nil
}

// Resolve validates a cookie token and returns the live session behind it.
// Expired records are dropped on sight.
func (m *Manager) Resolve(tokenStr string) (Session, bool) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Session{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, false
	}
	sid, ok := claims["sid"].(string)
	if !ok {
		return Session{}, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[sid]
	if !ok {
		return Session{}, false
	}
	if m.now().After(sess.ExpiresAt) {
		delete(m.sessions, sid)
		return Session{}, false
	}
	return sess, true
}

// Destroy removes a session record. Destroying an unknown ID is a no-op.
func (m *Manager) Destroy(sessionID string) {
	m.mu.Lock()
	delete(m.sessions, sessionID)
	m.mu.Unlock()
}
