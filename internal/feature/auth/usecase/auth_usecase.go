package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"notes_app/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength is the minimum number of characters for a password.
	minPasswordLength = 8

	// sessionTTL is how long a session stays valid after login.
	sessionTTL = 24 * time.Hour
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to storage.
	// Returns ErrUsernameAlreadyExists or ErrEmailAlreadyExists on a unique-key collision.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves the user with the given login name.
	// Returns ErrUserNotFound if no such user exists.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves the user with the given email address.
	// Returns ErrUserNotFound if no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// ClientInfo carries the request metadata recorded on a session.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

// authUsecase implements the credential lifecycle: registration, login,
// session establishment and logout.
type authUsecase struct {
	users    UserRepository
	sessions SessionRepository
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, sessions SessionRepository) *authUsecase {
	return &authUsecase{
		users:    users,
		sessions: sessions,
	}
}

// validatePassword checks that the password meets the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// newSessionToken mints an opaque session token (64-character hex string).
func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Register creates a new user with a hashed password.
// Username and email are probed independently so a collision on either
// rejects the registration before anything is written.
func (u *authUsecase) Register(ctx context.Context, username, firstName, lastName, email, password string) (*entity.User, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	if _, err := u.users.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("probe username: %w", err)
	}

	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("probe email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  string(hashed),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user by username and password.
// The username is the only credential-store key used for authentication.
// The bcrypt comparison always runs, even when the user does not exist,
// to mitigate timing attacks; the caller only ever sees ErrInvalidCredentials.
func (u *authUsecase) Login(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	// Dummy hash so bcrypt.CompareHashAndPassword is always called.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// StartSession establishes a new session for an authenticated user and
// persists it before returning. A persistence failure is surfaced to the
// caller; it must never be reported as a successful login.
func (u *authUsecase) StartSession(ctx context.Context, user *entity.User, client ClientInfo) (*entity.Session, error) {
	token, err := newSessionToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &entity.Session{
		ID:        token,
		UserID:    user.ID,
		Username:  user.Username,
		UserAgent: client.UserAgent,
		IPAddress: client.IPAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return session, nil
}

// Logout revokes the session with the given token.
// Revoking an unknown token is not an error; the outcome is the same.
func (u *authUsecase) Logout(ctx context.Context, sessionID string) error {
	if err := u.sessions.Revoke(ctx, sessionID); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	return nil
}

// CleanupExpired removes expired sessions from the store.
func (u *authUsecase) CleanupExpired(ctx context.Context) (int64, error) {
	return u.sessions.DeleteExpired(ctx)
}
