// Package session is the console's authentication context: the token used for
// backend calls, who it belongs to, and a subscription point for login and
// logout events so every open view can react to a logout.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/auth"
)

// EventType names a session transition.
type EventType string

const (
	EventLogin  EventType = "login"
	EventLogout EventType = "logout"
)

// Event is delivered to subscribers on every transition.
type Event struct {
	Type   EventType `json:"type"`
	UserID string    `json:"userId,omitempty"`
	At     time.Time `json:"at"`
}

// Session holds the current state and its subscribers.
type Session struct {
	mu     sync.RWMutex
	store  Store
	state  State
	info   *auth.TokenInfo
	logger zerolog.Logger

	subMu  sync.Mutex
	nextID int
	subs   map[int]func(Event)

	now func() time.Time
}

// Open loads the persisted session from store.
func Open(store Store, logger zerolog.Logger) (*Session, error) {
	state, err := store.Load()
	if err != nil {
		return nil, err
	}
	s := &Session{
		store:  store,
		state:  state,
		logger: logger.With().Str("component", "session").Logger(),
		subs:   make(map[int]func(Event)),
		now:    time.Now,
	}
	s.info = inspect(state.Token)
	return s, nil
}

func inspect(token string) *auth.TokenInfo {
	if token == "" {
		return nil
	}
	info, err := auth.Inspect(token)
	if err != nil {
		// Opaque tokens are still sent; the backend decides.
		return &auth.TokenInfo{}
	}
	return info
}

// Token returns the bearer token, or "" when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

// State returns a copy of the persisted state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ExpiresAt returns the token expiry if the token carries one.
func (s *Session) ExpiresAt() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.info == nil {
		return nil
	}
	return s.info.ExpiresAt
}

// Authenticated reports whether a token is held and has not visibly expired.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Token == "" {
		return false
	}
	return s.info == nil || !s.info.Expired(s.now())
}

// Login stores token and announces the login.
func (s *Session) Login(token string) error {
	if token == "" {
		return apperrors.NewCustomError(apperrors.ErrTokenInvalid, "Login response did not contain a token")
	}

	info := inspect(token)
	state := State{Token: token, UserID: info.UserID, Role: info.Role}

	s.mu.Lock()
	if err := s.store.Save(state); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("save session: %w", err)
	}
	s.state, s.info = state, info
	s.mu.Unlock()

	s.logger.Info().Str("userID", info.UserID).Str("role", info.Role).Msg("Logged in")
	s.publish(Event{Type: EventLogin, UserID: info.UserID, At: s.now()})
	return nil
}

// Logout drops the token, user and role, writes the logout flag and announces
// the logout to every subscriber.
func (s *Session) Logout() error {
	at := s.now()

	s.mu.Lock()
	userID := s.state.UserID
	state := State{LoggedOutAt: &at}
	if err := s.store.Save(state); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("save session: %w", err)
	}
	s.state, s.info = state, nil
	s.mu.Unlock()

	s.logger.Info().Str("userID", userID).Msg("Logged out")
	s.publish(Event{Type: EventLogout, UserID: userID, At: at})
	return nil
}

// Sync reloads the persisted state so a logout written by another process is
// observed here and announced to this process's subscribers.
func (s *Session) Sync() error {
	stored, err := s.store.Load()
	if err != nil {
		return err
	}

	s.mu.Lock()
	current := s.state
	if stored.Token == current.Token && sameTime(stored.LoggedOutAt, current.LoggedOutAt) {
		s.mu.Unlock()
		return nil
	}
	s.state, s.info = stored, inspect(stored.Token)
	s.mu.Unlock()

	switch {
	case current.Token != "" && stored.Token == "":
		at := s.now()
		if stored.LoggedOutAt != nil {
			at = *stored.LoggedOutAt
		}
		s.publish(Event{Type: EventLogout, UserID: current.UserID, At: at})
	case stored.Token != "" && stored.Token != current.Token:
		s.publish(Event{Type: EventLogin, UserID: stored.UserID, At: s.now()})
	}
	return nil
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// Subscribe registers fn for session events and returns its cancel function.
// fn runs on the goroutine that caused the transition and must not block.
func (s *Session) Subscribe(fn func(Event)) func() {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Session) publish(ev Event) {
	s.subMu.Lock()
	fns := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
