package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/app/repositories"
	"github.com/yigit/courseadmin/internal/app/session"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/notify"
)

// AuthService handles login and logout for the console session
type AuthService struct {
	repo     *repositories.AuthRepository
	session  *session.Session
	notifier notify.Notifier
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(repo *repositories.AuthRepository, sess *session.Session, deps Deps) *AuthService {
	if deps.Notifier == nil {
		deps.Notifier = notify.Discard
	}
	return &AuthService{
		repo:     repo,
		session:  sess,
		notifier: deps.Notifier,
		logger:   deps.Logger.With().Str("service", "auth").Logger(),
	}
}

// Login exchanges credentials for a token and stores it in the session
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.SessionResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		err := apperrors.NewCustomError(apperrors.ErrValidationFailed, "Username and password are required")
		notify.Error(s.notifier, err.Error())
		return dto.SessionResponse{}, err
	}

	token, err := s.repo.Login(ctx, req)
	if err != nil {
		s.logger.Warn().Err(err).Str("username", req.Username).Msg("Login failed")
		notify.Error(s.notifier, apperrors.UserMessage(err, "Invalid username or password"))
		return dto.SessionResponse{}, err
	}

	if err := s.session.Login(token); err != nil {
		return dto.SessionResponse{}, err
	}
	notify.Success(s.notifier, "Logged in")
	return s.Session(), nil
}

// Logout clears the session and notifies every subscriber
func (s *AuthService) Logout() error {
	if err := s.session.Logout(); err != nil {
		return err
	}
	notify.Info(s.notifier, "Logged out")
	return nil
}

// Session describes the current session
func (s *AuthService) Session() dto.SessionResponse {
	state := s.session.State()
	return dto.SessionResponse{
		Authenticated: s.session.Authenticated(),
		UserID:        state.UserID,
		Role:          state.Role,
		ExpiresAt:     s.session.ExpiresAt(),
		LoggedOutAt:   state.LoggedOutAt,
	}
}

// RequireSession fails when no usable token is held.
func (s *AuthService) RequireSession() error {
	if err := s.session.Sync(); err != nil {
		return err
	}
	if !s.session.Authenticated() {
		return apperrors.ErrNotLoggedIn
	}
	return nil
}
