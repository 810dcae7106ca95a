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

// GardenHandler - обработчик запросов каталога садов
type GardenHandler struct {
	gardenUC *usecase.GardenUseCase
	logger   *zap.Logger
}

// NewGardenHandler - создание нового GardenHandler
func NewGardenHandler(gardenUC *usecase.GardenUseCase, logger *zap.Logger) *GardenHandler {
	return &GardenHandler{
		gardenUC: gardenUC,
		logger:   logger,
	}
}

// List godoc
// @Summary Список всех садов
// @Description Возвращает полный каталог публичных садов с координатами и удобствами
// @Tags Gardens
// @Produce json
// @Success 200 {array} domain.Garden
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/gardens [get]
func (h *GardenHandler) List(c *fiber.Ctx) error {
	gardens, err := h.gardenUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(gardens)
}

// GetByID godoc
// @Summary Получение сада по ID
// @Description Возвращает один сад по его идентификатору
// @Tags Gardens
// @Produce json
// @Param id path string true "ID сада"
// @Success 200 {object} domain.Garden
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/gardens/{id} [get]
func (h *GardenHandler) GetByID(c *fiber.Ctx) error {
	garden, err := h.gardenUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(garden)
}

// Create godoc
// @Summary Добавление нового сада
// @Description Создает новый сад. Доступно без аутентификации, адрес определяется обратным геокодированием по координатам.
// @Tags Gardens
// @Accept json
// @Produce json
// @Param request body dto.CreateGardenRequest true "Данные сада"
// @Success 201 {object} domain.Garden
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/gardens [post]
func (h *GardenHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateGardenRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	garden, err := h.gardenUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(garden)
}

// UpdateKidsCount godoc
// @Summary Обновление счётчика детей
// @Description Обновляет только поле kidsCount. Доступно без аутентификации.
// @Tags Gardens
// @Accept json
// @Produce json
// @Param id path string true "ID сада"
// @Param request body dto.UpdateKidsCountRequest true "Новое значение счётчика"
// @Success 200 {object} dto.KidsCountResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/gardens/{id}/kidscount [put]
func (h *GardenHandler) UpdateKidsCount(c *fiber.Ctx) error {
	var req dto.UpdateKidsCountRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidKidsCount)
	}

	garden, err := h.gardenUC.UpdateKidsCount(c.Context(), c.Params("id"), req.KidsCount)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.KidsCountResponse{
		Message: "Kids count updated successfully",
		Garden:  garden,
	})
}

// Update godoc
// @Summary Обновление сада администратором
// @Description Частично обновляет сад: пишутся только поля, присутствующие в теле запроса. Требуется токен администратора.
// @Tags Gardens
// @Accept json
// @Produce json
// @Param id path string true "ID сада"
// @Param request body dto.UpdateGardenRequest true "Изменяемые поля"
// @Success 200 {object} domain.Garden
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/gardens/{id} [put]
func (h *GardenHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateGardenRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var actorEmail string
	if claims := middleware.ClaimsFromCtx(c); claims != nil {
		actorEmail = claims.Email
	}

	garden, err := h.gardenUC.Update(c.Context(), c.Params("id"), req, actorEmail)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(garden)
}

// Delete godoc
// @Summary Удаление сада администратором
// @Description Удаляет сад по ID. Требуется токен администратора.
// @Tags Gardens
// @Produce json
// @Param id path string true "ID сада"
// @Success 200 {object} dto.DeleteGardenResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/gardens/{id} [delete]
func (h *GardenHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var actorEmail string
	if claims := middleware.ClaimsFromCtx(c); claims != nil {
		actorEmail = claims.Email
	}

	if err := h.gardenUC.Delete(c.Context(), id, actorEmail); err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.DeleteGardenResponse{
		Message:         "Garden deleted successfully",
		DeletedGardenID: id,
	})
}
