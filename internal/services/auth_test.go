package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/youone-its/bookstore-backend/internal/models"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	username := "john_doe"

	t.Run("success", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)

		reader.EXPECT().
			GetByEmail(ctx, "john@example.com").
			Return(nil, nil)
		writer.EXPECT().
			Save(ctx, "john@example.com", gomock.Any(), &username).
			DoAndReturn(func(_ context.Context, email, hash string, u *string) (*models.UserDB, error) {
				// The stored hash must verify against the raw password.
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret123")))
				return &models.UserDB{ID: 1, Email: email, PasswordHash: hash, Username: u}, nil
			})

		svc := NewAuthService(reader, writer, nil)
		user, err := svc.Register(ctx, "john@example.com", "secret123", &username)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "john@example.com", user.Email)
	})

	t.Run("email already registered", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)

		reader.EXPECT().
			GetByEmail(ctx, "john@example.com").
			Return(&models.UserDB{ID: 1, Email: "john@example.com"}, nil)

		svc := NewAuthService(reader, writer, nil)
		user, err := svc.Register(ctx, "john@example.com", "secret123", nil)

		assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
		assert.Nil(t, user)
	})

	t.Run("reader error", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)

		reader.EXPECT().
			GetByEmail(ctx, "john@example.com").
			Return(nil, errors.New("database failure"))

		svc := NewAuthService(reader, writer, nil)
		_, err := svc.Register(ctx, "john@example.com", "secret123", nil)

		assert.Error(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	assert.NoError(t, err)
	stored := &models.UserDB{ID: 1, Email: "john@example.com", PasswordHash: string(hash)}

	t.Run("success", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		tokens := NewMockTokenGenerator(ctrl)

		reader.EXPECT().
			GetByEmail(ctx, "john@example.com").
			Return(stored, nil)
		tokens.EXPECT().
			Generate(ctx, int64(1)).
			Return("token-123", nil)

		svc := NewAuthService(reader, nil, tokens)
		token, user, err := svc.Login(ctx, "john@example.com", "secret123")

		assert.NoError(t, err)
		assert.Equal(t, "token-123", token)
		assert.Equal(t, int64(1), user.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)

		reader.EXPECT().
			GetByEmail(ctx, "nobody@example.com").
			Return(nil, nil)

		svc := NewAuthService(reader, nil, nil)
		_, _, err := svc.Login(ctx, "nobody@example.com", "secret123")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)

		reader.EXPECT().
			GetByEmail(ctx, "john@example.com").
			Return(stored, nil)

		svc := NewAuthService(reader, nil, nil)
		_, _, err := svc.Login(ctx, "john@example.com", "wrong")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("token generation failure", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		tokens := NewMockTokenGenerator(ctrl)

		reader.EXPECT().
			GetByEmail(ctx, "john@example.com").
			Return(stored, nil)
		tokens.EXPECT().
			Generate(ctx, int64(1)).
			Return("", errors.New("signing failure"))

		svc := NewAuthService(reader, nil, tokens)
		_, _, err := svc.Login(ctx, "john@example.com", "secret123")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)

		reader.EXPECT().
			GetByID(ctx, int64(1)).
			Return(&models.UserDB{ID: 1, Email: "john@example.com", PasswordHash: "hash"}, nil)

		svc := NewAuthService(reader, nil, nil)
		user, err := svc.GetProfile(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, "john@example.com", user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)

		reader.EXPECT().
			GetByID(ctx, int64(42)).
			Return(nil, nil)

		svc := NewAuthService(reader, nil, nil)
		user, err := svc.GetProfile(ctx, 42)

		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, user)
	})
}
