package usecase

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/public-garden-api/internal/config"
	"github.com/public-garden-api/internal/domain"
	"github.com/public-garden-api/internal/domain/repository"
	"github.com/public-garden-api/internal/pkg/errors"
	"github.com/public-garden-api/internal/usecase/dto"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TokenClaims - полезная нагрузка токена администратора
type TokenClaims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// AuthUseCase выпускает и проверяет токены администраторов
type AuthUseCase struct {
	adminRepo  repository.AdminRepository
	logger     *zap.Logger
	jwtSecret  []byte
	tokenTTL   time.Duration
	secretCode string
	bcryptCost int
}

func NewAuthUseCase(
	adminRepo repository.AdminRepository,
	logger *zap.Logger,
	cfg *config.AuthConfig,
) *AuthUseCase {
	return &AuthUseCase{
		adminRepo:  adminRepo,
		logger:     logger,
		jwtSecret:  []byte(cfg.JWTSecret),
		tokenTTL:   cfg.TokenTTL,
		secretCode: cfg.AdminSecretCode,
		bcryptCost: cfg.BcryptCost,
	}
}

// Register создает новую учётную запись администратора. Регистрация закрыта
// общим статическим кодом, пароль хранится только как bcrypt-хеш.
func (uc *AuthUseCase) Register(ctx context.Context, req dto.RegisterRequest) error {
	if req.SecretCode != uc.secretCode {
		uc.logger.Warn("Admin registration with invalid secret code",
			zap.String("email", req.Email))
		return errors.ErrInvalidSecretCode
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), uc.bcryptCost)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return errors.ErrInternalServer
	}

	admin := &domain.Admin{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		IsAdmin:      true,
		CreatedAt:    time.Now(),
	}

	// Дубликат email ловится уникальным ограничением в БД,
	// предварительная проверка была бы гонкой
	if err := uc.adminRepo.Create(ctx, admin); err != nil {
		return err
	}

	uc.logger.Info("Admin registered",
		zap.String("admin_id", admin.ID),
		zap.String("email", admin.Email))

	return nil
}

// Login проверяет учётные данные и выпускает подписанный токен.
// Неизвестный email и неверный пароль дают один и тот же ответ,
// чтобы не раскрывать, какой из случаев произошёл.
func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := uc.adminRepo.GetByEmail(ctx, req.Email)
	if err == errors.ErrAdminNotFound {
		return nil, errors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	now := time.Now()
	claims := TokenClaims{
		AdminID: admin.ID,
		Email:   admin.Email,
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(uc.tokenTTL)),
			Issuer:    "public-garden-api",
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.jwtSecret)
	if err != nil {
		uc.logger.Error("Failed to sign token", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	uc.logger.Info("Admin logged in",
		zap.String("admin_id", admin.ID),
		zap.String("email", admin.Email))

	return &dto.LoginResponse{
		Message:   "Logged in successfully",
		Token:     token,
		IsAdmin:   true,
		ExpiresIn: int64(uc.tokenTTL.Seconds()),
	}, nil
}

// VerifyToken проверяет подпись и срок действия токена. Списка отзыва нет:
// утёкший токен остаётся валидным до естественного истечения.
func (uc *AuthUseCase) VerifyToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrInvalidToken
		}
		return uc.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.ErrInvalidToken
	}

	return claims, nil
}
