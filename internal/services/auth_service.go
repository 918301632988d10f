package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/store"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = store.ErrInvalidCredentials
	ErrSessionExpired     = errors.New("session expired, please sign in again")
)

// AuthService signs users into the store and issues the JWT that carries the
// session over HTTP. Only the token from the latest login is accepted.
type AuthService struct {
	store *store.Store
	cfg   *config.Config

	// loginMu orders logins end to end. mu guards activeJTI only and is
	// never held while a login waits on the authenticator.
	loginMu   sync.Mutex
	mu        sync.Mutex
	activeJTI string
}

func NewAuthService(s *store.Store, cfg *config.Config) *AuthService {
	return &AuthService{store: s, cfg: cfg}
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	s.loginMu.Lock()
	defer s.loginMu.Unlock()

	user, ok, err := s.store.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, fmt.Errorf("login aborted: %w", err)
	}
	if !ok {
		slog.Info("login rejected", "email", req.Email)
		return nil, ErrInvalidCredentials
	}

	jti, err := newTokenID()
	if err != nil {
		return nil, err
	}
	expiresAt := time.Now().Add(s.cfg.JWTAccessExpiry)
	token, err := s.generateAccessToken(user, jti, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	s.mu.Lock()
	s.activeJTI = jti
	s.mu.Unlock()

	slog.Info("login succeeded", "user_id", user.ID, "role", user.Role)
	return &dto.AuthResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt.UTC(),
		User:        dto.NewUserResponse(user),
	}, nil
}

// Logout ends the store session and revokes the outstanding token.
func (s *AuthService) Logout() {
	s.mu.Lock()
	s.activeJTI = ""
	s.mu.Unlock()
	s.store.Logout()
}

// Authorize checks that the token claims belong to the live session and
// returns the session user.
func (s *AuthService) Authorize(sub, jti string) (models.User, error) {
	s.mu.Lock()
	active := s.activeJTI
	s.mu.Unlock()

	if active == "" || jti != active {
		return models.User{}, ErrSessionExpired
	}
	user, ok := s.store.CurrentUser()
	if !ok || !s.store.IsAuthenticated() || user.ID != sub {
		return models.User{}, ErrSessionExpired
	}
	return user, nil
}

func (s *AuthService) generateAccessToken(user models.User, jti string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"jti":   jti,
		"iat":   time.Now().Unix(),
		"exp":   expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func newTokenID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token id: %w", err)
	}
	return hex.EncodeToString(b), nil
}
