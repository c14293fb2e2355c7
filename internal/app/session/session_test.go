package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/courseadmin/internal/pkg/auth"
)

func token(t *testing.T, sub, role string, exp time.Time) string {
	t.Helper()
	claims := &auth.Claims{Role: role, RegisteredClaims: jwt.RegisteredClaims{Subject: sub, ExpiresAt: jwt.NewNumericDate(exp)}}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestLoginLogoutPersistAndBroadcast(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nested", "session.yaml"))
	s, err := Open(store, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if s.Authenticated() {
		t.Fatal("fresh session must not be authenticated")
	}

	var events []Event
	cancel := s.Subscribe(func(ev Event) { events = append(events, ev) })
	defer cancel()

	tok := token(t, "admin", "ADMIN", time.Now().Add(time.Hour))
	if err := s.Login(tok); err != nil {
		t.Fatal(err)
	}
	if !s.Authenticated() || s.Token() != tok {
		t.Fatal("login should authenticate")
	}

	persisted, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if persisted.Token != tok || persisted.UserID != "admin" || persisted.Role != "ADMIN" {
		t.Fatalf("persisted state = %+v", persisted)
	}

	if err := s.Logout(); err != nil {
		t.Fatal(err)
	}
	persisted, _ = store.Load()
	if persisted.Token != "" || persisted.UserID != "" || persisted.Role != "" || persisted.LoggedOutAt == nil {
		t.Fatalf("logout should clear credentials and set the flag: %+v", persisted)
	}

	if len(events) != 2 || events[0].Type != EventLogin || events[1].Type != EventLogout || events[1].UserID != "admin" {
		t.Fatalf("unexpected events %+v", events)
	}
}

func TestExpiredTokenNotAuthenticated(t *testing.T) {
	s, err := Open(&MemoryStore{}, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Login(token(t, "admin", "ADMIN", time.Now().Add(-time.Minute))); err != nil {
		t.Fatal(err)
	}
	if s.Authenticated() {
		t.Fatal("expired token must not count as authenticated")
	}
}

func TestOpaqueTokenAccepted(t *testing.T) {
	s, _ := Open(&MemoryStore{}, zerolog.Nop())
	if err := s.Login("opaque-token"); err != nil {
		t.Fatal(err)
	}
	if !s.Authenticated() || s.ExpiresAt() != nil {
		t.Fatal("opaque tokens are kept and sent as-is")
	}
	if err := s.Login(""); err == nil {
		t.Fatal("empty token must be rejected")
	}
}

func TestSyncObservesLogoutFromAnotherProcess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	console, _ := Open(NewFileStore(path), zerolog.Nop())
	if err := console.Login("tok"); err != nil {
		t.Fatal(err)
	}

	var got []EventType
	console.Subscribe(func(ev Event) { got = append(got, ev.Type) })

	cli, _ := Open(NewFileStore(path), zerolog.Nop())
	if err := cli.Logout(); err != nil {
		t.Fatal(err)
	}

	if err := console.Sync(); err != nil {
		t.Fatal(err)
	}
	if console.Authenticated() {
		t.Fatal("console should see the logout")
	}
	if len(got) != 1 || got[0] != EventLogout {
		t.Fatalf("events = %v", got)
	}

	if err := console.Sync(); err != nil || len(got) != 1 {
		t.Fatalf("unchanged store must not re-announce, events = %v", got)
	}
}

func TestUnsubscribe(t *testing.T) {
	s, _ := Open(&MemoryStore{}, zerolog.Nop())
	calls := 0
	cancel := s.Subscribe(func(Event) { calls++ })
	cancel()
	_ = s.Logout()
	if calls != 0 {
		t.Fatal("cancelled subscriber was called")
	}
}
