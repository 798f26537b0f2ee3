package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-text2sql/internal/logger"
	"github.com/sbilibin2017/gw-text2sql/internal/models"
	"github.com/sbilibin2017/gw-text2sql/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingFields      = errors.New("all fields are required")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, displayName, passwordHash string) error
}

// SessionWriter stores and removes login sessions.
type SessionWriter interface {
	Save(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TokenGenerator defines an interface for generating session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, sessionID uuid.UUID, username string) (string, error)
}

// AuthService handles registration, login and logout.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	sessions SessionWriter
	tokens   TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, sessions SessionWriter, tokens TokenGenerator) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
		tokens:   tokens,
	}
}

// Register registers a new user. An existing username is never overwritten.
func (svc *AuthService) Register(ctx context.Context, displayName, username, password string) error {
	if displayName == "" || username == "" || password == "" {
		return ErrMissingFields
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Warnw("user already exists", "username", username)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, username, displayName, string(hashedPassword)); err != nil {
		if errors.Is(err, repositories.ErrDuplicateUser) {
			logger.Log.Warnw("user registered concurrently", "username", username)
			return ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Authenticate returns the stored identity when the password matches and
// nil otherwise. Attempts are not limited.
func (svc *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Warnw("user does not exist", "username", username)
		return nil, nil
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		logger.Log.Warnw("invalid credentials", "username", username)
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to compare password hash", "username", username, "err", err)
		return nil, err
	}

	return &models.User{Username: user.Username, DisplayName: user.DisplayName}, nil
}

// Login authenticates a user, opens a session and returns its token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := svc.Authenticate(ctx, username, password)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	session := &models.Session{
		ID:          uuid.New(),
		Username:    user.Username,
		DisplayName: user.DisplayName,
		CreatedAt:   time.Now(),
	}
	if err := svc.sessions.Save(ctx, session); err != nil {
		logger.Log.Errorw("failed to save session", "err", err)
		return "", nil, err
	}

	token, err := svc.tokens.Generate(ctx, session.ID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		_ = svc.sessions.Delete(ctx, session.ID)
		return "", nil, err
	}

	return token, user, nil
}

// Logout ends the session. Its token is rejected afterwards.
func (svc *AuthService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := svc.sessions.Delete(ctx, sessionID); err != nil {
		logger.Log.Errorw("failed to delete session", "session_id", sessionID, "err", err)
		return err
	}
	return nil
}
