package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Authenticator is the call boundary Login goes through. A real identity
// backend can replace DemoAuthenticator without changing Login's contract.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// DemoAuthenticator accepts a fixed account list that shares one password.
// There is no lockout and no per-user credential.
type DemoAuthenticator struct {
	accounts []models.User
	hash     []byte
	delay    time.Duration
}

// NewDemoAuthenticator hashes password once; delay simulates backend latency.
func NewDemoAuthenticator(accounts []models.User, password string, delay time.Duration) (*DemoAuthenticator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}
	return &DemoAuthenticator{
		accounts: append([]models.User(nil), accounts...),
		hash:     hash,
		delay:    delay,
	}, nil
}

func (a *DemoAuthenticator) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if a.delay > 0 {
		timer := time.NewTimer(a.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	for _, u := range a.accounts {
		if u.Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword(a.hash, []byte(password)); err != nil {
			return nil, ErrInvalidCredentials
		}
		user := u
		return &user, nil
	}
	return nil, ErrInvalidCredentials
}

// Login checks the credentials and, on success, signs the user in. Wrong
// credentials return false and leave the session as it was. The only error
// is the context ending before the authenticator answered.
func (s *Store) Login(ctx context.Context, email, password string) (bool, error) {
	_, ok, err := s.SignIn(ctx, email, password)
	return ok, err
}

// SignIn is Login that also returns the user it signed in.
func (s *Store) SignIn(ctx context.Context, email, password string) (models.User, bool, error) {
	user, err := s.auth.Authenticate(ctx, email, password)
	if errors.Is(err, ErrInvalidCredentials) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Prefer the directory record so profile edits survive a new login.
	if i := s.userIndexLocked(user.ID); i >= 0 {
		u := s.state.AllUsers[i]
		user = &u
	}
	s.state.User = user
	s.state.IsAuthenticated = true
	s.persistLocked()
	return *user, true, nil
}

// Logout clears the session and the notifications. Reports, users and chat stay.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.User = nil
	s.state.IsAuthenticated = false
	s.state.Notifications = []models.Notification{}
	s.persistLocked()
}

func (s *Store) Session() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := models.Session{IsAuthenticated: s.state.IsAuthenticated}
	if s.state.User != nil {
		u := *s.state.User
		sess.User = &u
	}
	return sess
}

// CurrentUser returns the signed-in user, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.User == nil {
		return models.User{}, false
	}
	return *s.state.User, true
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsAuthenticated
}
