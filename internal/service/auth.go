package service

import (
	"context"
	"fmt"

	"github.com/emberlore/codex/internal/codex"
	"github.com/emberlore/codex/internal/model"
)

// AuthService talks to the backend's authentication endpoints. It holds
// no session state: tokens are returned to the caller and supplied back
// explicitly per call.
type AuthService struct {
	client *codex.Client
}

// NewAuthService creates a new auth service.
func NewAuthService(client *codex.Client) *AuthService {
	return &AuthService{client: client}
}

// Login exchanges credentials for a token-plus-user payload.
func (s *AuthService) Login(ctx context.Context, creds model.Credentials) (*model.AuthResponse, error) {
	var out model.AuthResponse
	if err := s.client.Post(ctx, "/auth/local", creds, &out); err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}
	return &out, nil
}

// Register creates an account and returns the same token-plus-user shape
// as Login.
func (s *AuthService) Register(ctx context.Context, reg model.Registration) (*model.AuthResponse, error) {
	var out model.AuthResponse
	if err := s.client.Post(ctx, "/auth/local/register", reg, &out); err != nil {
		return nil, fmt.Errorf("registering: %w", err)
	}
	return &out, nil
}

// Me fetches the user the given bearer token belongs to. The token is an
// explicit parameter; this operation never reads ambient session state.
func (s *AuthService) Me(ctx context.Context, token string) (*model.AuthUser, error) {
	if token == "" {
		return nil, fmt.Errorf("fetching current user: %w", ErrMissingToken)
	}
	var out model.AuthUser
	if err := s.client.Get(ctx, "/users/me", nil, &out, codex.WithBearer(token)); err != nil {
		return nil, fmt.Errorf("fetching current user: %w", err)
	}
	return &out, nil
}
