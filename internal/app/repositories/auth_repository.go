package repositories

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yigit/courseadmin/internal/app/models/dto"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
)

// AuthRepository exchanges credentials for a token
type AuthRepository struct {
	client *Client
}

// NewAuthRepository creates an auth repository
func NewAuthRepository(client *Client) *AuthRepository {
	return &AuthRepository{client: client}
}

// Login returns the bearer token issued for the credentials
func (r *AuthRepository) Login(ctx context.Context, req dto.LoginRequest) (string, error) {
	var out dto.LoginResponse
	if err := r.client.sendJSON(ctx, http.MethodPost, loginPath, req, &out); err != nil {
		if apperrors.Is(err, apperrors.ErrUnauthorized, apperrors.ErrValidationFailed) {
			return "", fmt.Errorf("%w: %w", apperrors.ErrInvalidCredentials, err)
		}
		return "", err
	}
	if out.Token == "" {
		return "", fmt.Errorf("%w: login response carried no token", apperrors.ErrBackend)
	}
	return out.Token, nil
}
