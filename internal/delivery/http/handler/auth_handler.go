package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/public-garden-api/internal/delivery/http/middleware"
	"github.com/public-garden-api/internal/pkg/errors"
	"github.com/public-garden-api/internal/pkg/utils"
	"github.com/public-garden-api/internal/pkg/validator"
	"github.com/public-garden-api/internal/usecase"
	"github.com/public-garden-api/internal/usecase/dto"
	"go.uber.org/zap"
)

// AuthHandler - обработчик запросов аутентификации администраторов
type AuthHandler struct {
	authUC *usecase.AuthUseCase
	logger *zap.Logger
}

// NewAuthHandler - создание нового AuthHandler
func NewAuthHandler(authUC *usecase.AuthUseCase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		logger: logger,
	}
}

// Register godoc
// @Summary Регистрация администратора
// @Description Создает учётную запись администратора. Требуется секретный код регистрации.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Данные администратора"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.authUC.Register(c.Context(), req); err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.RegisterResponse{
		Message: "Admin registered successfully",
	})
}

// Login godoc
// @Summary Вход администратора
// @Description Проверяет учётные данные и возвращает JWT токен
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Учётные данные"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.authUC.Login(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// CheckAdmin godoc
// @Summary Проверка токена администратора
// @Description Подтверждает, что предъявленный токен валиден и принадлежит администратору
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.CheckAdminResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/auth/check-admin [get]
func (h *AuthHandler) CheckAdmin(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromCtx(c)
	if claims == nil {
		return utils.SendError(c, errors.ErrInvalidToken)
	}

	return c.JSON(dto.CheckAdminResponse{
		IsAdmin: claims.IsAdmin,
		Email:   claims.Email,
	})
}
