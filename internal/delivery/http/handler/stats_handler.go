package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/public-garden-api/internal/pkg/errors"
	"github.com/public-garden-api/internal/pkg/utils"
	"github.com/public-garden-api/internal/usecase"
	"github.com/public-garden-api/internal/usecase/dto"
	"go.uber.org/zap"
)

// StatsHandler - обработчик статистики кликов по фильтрам
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler - создание нового StatsHandler
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// RecordFilterClick godoc
// @Summary Запись клика по фильтру
// @Description Добавляет событие использования фильтра в журнал статистики
// @Tags Stats
// @Accept json
// @Produce json
// @Param request body dto.FilterClickRequest true "Имя фильтра"
// @Success 201 {object} dto.ClickLoggedResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/stats/filter-click [post]
func (h *StatsHandler) RecordFilterClick(c *fiber.Ctx) error {
	var req dto.FilterClickRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrMissingFilterName)
	}

	if err := h.statsUC.RecordClick(c.Context(), req.FilterName); err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ClickLoggedResponse{
		Message: "Click logged successfully.",
	})
}

// GetFilterClickStats godoc
// @Summary Статистика кликов по фильтрам
// @Description Возвращает количество кликов по каждому фильтру за сутки, неделю и месяц
// @Tags Stats
// @Produce json
// @Success 200 {object} domain.FilterClickStats
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/stats/filter-clicks [get]
func (h *StatsHandler) GetFilterClickStats(c *fiber.Ctx) error {
	stats, err := h.statsUC.GetFilterClickStats(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(stats)
}
