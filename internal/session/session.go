// Package session manages concierge conversation sessions and the shareable
// helper links that let family members view them.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/caretrip/concierge/pkg/logger"
)

// State is the conversation's progress through the concierge flow.
type State string

const (
	StateGreeting   State = "greeting"
	StateLookup     State = "lookup"
	StateViewing    State = "viewing"
	StateChanging   State = "changing"
	StateConfirming State = "confirming"
	StateComplete   State = "complete"
)

// Role identifies a message author.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleFamily    Role = "family"
)

// Message is one line of the session conversation.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is one concierge conversation. Copies are handed out; mutation
// goes through the store.
type Session struct {
	ID               string         `json:"id"`
	State            State          `json:"state"`
	ConfirmationCode string         `json:"confirmation_code,omitempty"`
	HelperLink       string         `json:"helper_link,omitempty"`
	Context          map[string]any `json:"context"`
	Messages         []Message      `json:"messages"`
	CreatedAt        time.Time      `json:"created_at"`
	ExpiresAt        time.Time      `json:"expires_at"`
}

// Lookup errors.
var (
	ErrNotFound    = errors.New("session not found")
	ErrExpired     = errors.New("session expired")
	ErrLinkUnknown = errors.New("helper link not found")
	ErrLinkExpired = errors.New("helper link expired")
)

// Store holds sessions in memory for the process lifetime.
type Store struct {
	mu     sync.Mutex
	byID   map[string]*Session
	byLink map[string]string // helper link -> session id
	expiry time.Duration
	logger *logger.Logger
}

// NewStore creates a session store with the given session lifetime.
func NewStore(expiry time.Duration, log *logger.Logger) *Store {
	return &Store{
		byID:   make(map[string]*Session),
		byLink: make(map[string]string),
		expiry: expiry,
		logger: log.Named("sessions"),
	}
}

// Create starts a new session in the greeting state.
func (s *Store) Create() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	sess := &Session{
		ID:        uuid.NewString(),
		State:     StateGreeting,
		Context:   make(map[string]any),
		CreatedAt: now,
		ExpiresAt: now.Add(s.expiry),
	}
	s.byID[sess.ID] = sess
	s.logger.Info("Session created", logger.String("session_id", sess.ID))
	return snapshot(sess)
}

// Get returns a copy of a session.
func (s *Store) Get(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byID[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	if time.Now().After(sess.ExpiresAt) {
		return Session{}, ErrExpired
	}
	return snapshot(sess), nil
}

// CreateHelperLink issues (or returns the existing) shareable link token
// for a session.
func (s *Store) CreateHelperLink(sessionID string) (string, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byID[sessionID]
	if !ok {
		return "", time.Time{}, ErrNotFound
	}
	if sess.HelperLink == "" {
		sess.HelperLink = newLinkToken()
		s.byLink[sess.HelperLink] = sess.ID
		s.logger.Info("Helper link created",
			logger.String("session_id", sess.ID))
	}
	return sess.HelperLink, sess.ExpiresAt, nil
}

// ByHelperLink resolves a helper link to its session. Expired sessions
// yield ErrLinkExpired so the API can answer 410 rather than 404.
func (s *Store) ByHelperLink(link string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byLink[link]
	if !ok {
		return Session{}, ErrLinkUnknown
	}
	sess := s.byID[id]
	if time.Now().After(sess.ExpiresAt) {
		return Session{}, ErrLinkExpired
	}
	return snapshot(sess), nil
}

// AppendMessage adds a conversation line and returns it.
func (s *Store) AppendMessage(sessionID string, role Role, content string) (Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byID[sessionID]
	if !ok {
		return Message{}, ErrNotFound
	}
	msg := Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
	sess.Messages = append(sess.Messages, msg)
	return msg, nil
}

// AttachReservation binds a reservation to the session and moves it to the
// viewing state.
func (s *Store) AttachReservation(sessionID, confirmationCode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byID[sessionID]
	if !ok {
		return ErrNotFound
	}
	sess.ConfirmationCode = confirmationCode
	sess.State = StateViewing
	return nil
}

// SetState moves the session to a new conversation state.
func (s *Store) SetState(sessionID string, state State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byID[sessionID]
	if !ok {
		return ErrNotFound
	}
	sess.State = state
	return nil
}

// SetContext stores a value in the session's context bag.
func (s *Store) SetContext(sessionID, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byID[sessionID]
	if !ok {
		return ErrNotFound
	}
	sess.Context[key] = value
	return nil
}

func snapshot(sess *Session) Session {
	out := *sess
	out.Messages = make([]Message, len(sess.Messages))
	copy(out.Messages, sess.Messages)
	out.Context = make(map[string]any, len(sess.Context))
	for k, v := range sess.Context {
		out.Context[k] = v
	}
	return out
}

// newLinkToken returns a short URL-safe random token.
func newLinkToken() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a
		// UUID if it somehow does.
		return uuid.NewString()[:11]
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}
