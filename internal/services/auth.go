package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/youone-its/bookstore-backend/internal/logger"
	"github.com/youone-its/bookstore-backend/internal/models"
)

// Error variables
var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrUserNotFound           = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, passwordHash string, username *string) (*models.UserDB, error)
}

// TokenGenerator defines an interface for issuing bearer tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// AuthService handles registration, login, and profile reads.
type AuthService struct {
	reader UserReader
	writer UserWriter
	tokens TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		tokens: tokens,
	}
}

// Register creates a new user with a hashed password.
func (svc *AuthService) Register(ctx context.Context, email, password string, username *string) (*models.User, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("email already registered", "email", email)
		return nil, ErrEmailAlreadyRegistered
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, email, string(hashedPassword), username)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user.ToUser(), nil
}

// Login authenticates a user and returns a bearer token with the profile.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", nil, err
	}

	return token, user.ToUser(), nil
}

// GetProfile returns the profile of the authenticated user.
func (svc *AuthService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user.ToUser(), nil
}
