package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/public-garden-api/internal/config"
	"github.com/public-garden-api/internal/domain"
	"github.com/public-garden-api/internal/pkg/errors"
	"github.com/public-garden-api/internal/usecase"
	"github.com/public-garden-api/internal/usecase/dto"
)

func authConfig() *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret:       "test-secret",
		TokenTTL:        time.Hour,
		AdminSecretCode: "202507",
		BcryptCost:      bcrypt.MinCost,
	}
}

func TestAuthUseCase_Register(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockAdmin := &MockAdminRepository{}
		uc := usecase.NewAuthUseCase(mockAdmin, logger, authConfig())

		var created *domain.Admin
		mockAdmin.On("Create", ctx, mock.AnythingOfType("*domain.Admin")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*domain.Admin)
			}).
			Return(nil)

		err := uc.Register(ctx, dto.RegisterRequest{
			Name:       "Alice",
			Email:      "alice@example.com",
			Password:   "s3cret",
			SecretCode: "202507",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "alice@example.com", created.Email)
		assert.True(t, created.IsAdmin)
		assert.NotEmpty(t, created.ID)

		// Пароль хранится только как bcrypt-хеш
		assert.NotEqual(t, "s3cret", created.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cret")))
	})

	t.Run("invalid secret code creates nothing", func(t *testing.T) {
		mockAdmin := &MockAdminRepository{}
		uc := usecase.NewAuthUseCase(mockAdmin, logger, authConfig())

		err := uc.Register(ctx, dto.RegisterRequest{
			Name:       "Mallory",
			Email:      "mallory@example.com",
			Password:   "s3cret",
			SecretCode: "wrong",
		})

		assert.Equal(t, errors.ErrInvalidSecretCode, err)
		mockAdmin.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockAdmin := &MockAdminRepository{}
		uc := usecase.NewAuthUseCase(mockAdmin, logger, authConfig())

		mockAdmin.On("Create", ctx, mock.AnythingOfType("*domain.Admin")).
			Return(errors.ErrAdminExists)

		err := uc.Register(ctx, dto.RegisterRequest{
			Name:       "Alice",
			Email:      "alice@example.com",
			Password:   "s3cret",
			SecretCode: "202507",
		})

		assert.Equal(t, errors.ErrAdminExists, err)
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := &domain.Admin{
		ID:           "admin-1",
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		IsAdmin:      true,
	}

	t.Run("success issues verifiable token", func(t *testing.T) {
		mockAdmin := &MockAdminRepository{}
		uc := usecase.NewAuthUseCase(mockAdmin, logger, authConfig())

		mockAdmin.On("GetByEmail", ctx, "alice@example.com").Return(admin, nil)

		resp, err := uc.Login(ctx, dto.LoginRequest{
			Email:    "alice@example.com",
			Password: "s3cret",
		})

		require.NoError(t, err)
		assert.True(t, resp.IsAdmin)
		assert.Equal(t, int64(3600), resp.ExpiresIn)
		assert.NotEmpty(t, resp.Token)

		claims, err := uc.VerifyToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "admin-1", claims.AdminID)
		assert.Equal(t, "alice@example.com", claims.Email)
		assert.True(t, claims.IsAdmin)
	})

	t.Run("unknown email", func(t *testing.T) {
		mockAdmin := &MockAdminRepository{}
		uc := usecase.NewAuthUseCase(mockAdmin, logger, authConfig())

		mockAdmin.On("GetByEmail", ctx, "nobody@example.com").
			Return(nil, errors.ErrAdminNotFound)

		_, err := uc.Login(ctx, dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "s3cret",
		})

		assert.Equal(t, errors.ErrInvalidCredentials, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockAdmin := &MockAdminRepository{}
		uc := usecase.NewAuthUseCase(mockAdmin, logger, authConfig())

		mockAdmin.On("GetByEmail", ctx, "alice@example.com").Return(admin, nil)

		_, err := uc.Login(ctx, dto.LoginRequest{
			Email:    "alice@example.com",
			Password: "not-the-password",
		})

		// Ответ не отличает неверный пароль от неизвестного email
		assert.Equal(t, errors.ErrInvalidCredentials, err)
	})
}

func TestAuthUseCase_VerifyToken(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := &domain.Admin{
		ID:           "admin-1",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		IsAdmin:      true,
	}

	t.Run("garbage token", func(t *testing.T) {
		uc := usecase.NewAuthUseCase(&MockAdminRepository{}, logger, authConfig())

		_, err := uc.VerifyToken("not-a-jwt")
		assert.Equal(t, errors.ErrInvalidToken, err)
	})

	t.Run("expired token", func(t *testing.T) {
		mockAdmin := &MockAdminRepository{}
		cfg := authConfig()
		cfg.TokenTTL = -time.Minute
		uc := usecase.NewAuthUseCase(mockAdmin, logger, cfg)

		mockAdmin.On("GetByEmail", ctx, "alice@example.com").Return(admin, nil)

		resp, err := uc.Login(ctx, dto.LoginRequest{
			Email:    "alice@example.com",
			Password: "s3cret",
		})
		require.NoError(t, err)

		_, err = uc.VerifyToken(resp.Token)
		assert.Equal(t, errors.ErrInvalidToken, err)
	})

	t.Run("token signed with different secret", func(t *testing.T) {
		mockAdmin := &MockAdminRepository{}
		uc := usecase.NewAuthUseCase(mockAdmin, logger, authConfig())

		otherCfg := authConfig()
		otherCfg.JWTSecret = "other-secret"
		otherUC := usecase.NewAuthUseCase(mockAdmin, logger, otherCfg)

		mockAdmin.On("GetByEmail", ctx, "alice@example.com").Return(admin, nil)

		resp, err := otherUC.Login(ctx, dto.LoginRequest{
			Email:    "alice@example.com",
			Password: "s3cret",
		})
		require.NoError(t, err)

		_, err = uc.VerifyToken(resp.Token)
		assert.Equal(t, errors.ErrInvalidToken, err)
	})
}
