package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/public-garden-api/internal/pkg/errors"
	"github.com/public-garden-api/internal/pkg/utils"
	"github.com/public-garden-api/internal/usecase"
	"github.com/public-garden-api/internal/usecase/dto"
	"go.uber.org/zap"
)

// InsightHandler - обработчик генерации текста через языковую модель
type InsightHandler struct {
	insightUC *usecase.InsightUseCase
	logger    *zap.Logger
}

// NewInsightHandler - создание нового InsightHandler
func NewInsightHandler(insightUC *usecase.InsightUseCase, logger *zap.Logger) *InsightHandler {
	return &InsightHandler{
		insightUC: insightUC,
		logger:    logger,
	}
}

// GenerateInsight godoc
// @Summary Генерация текста по prompt
// @Description Отправляет prompt языковой модели и возвращает очищенный от сносок текст
// @Tags Insight
// @Accept json
// @Produce json
// @Param request body dto.InsightRequest true "Prompt для модели"
// @Success 200 {object} dto.InsightResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/gemini-insight [post]
func (h *InsightHandler) GenerateInsight(c *fiber.Ctx) error {
	var req dto.InsightRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrMissingPrompt)
	}

	insight, err := h.insightUC.GenerateInsight(c.Context(), req.Prompt)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.InsightResponse{Insight: insight})
}
