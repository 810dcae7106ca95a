package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/public-garden-api/internal/domain/repository"
	"github.com/public-garden-api/internal/pkg/errors"
	"go.uber.org/zap"
)

// citationPattern вырезает ссылки-сноски вида [1] или [source] из ответа модели
var citationPattern = regexp.MustCompile(`\[.*?\]`)

// InsightUseCase проксирует запросы генерации текста к языковой модели
type InsightUseCase struct {
	insightRepo repository.InsightRepository
	logger      *zap.Logger
}

func NewInsightUseCase(insightRepo repository.InsightRepository, logger *zap.Logger) *InsightUseCase {
	return &InsightUseCase{
		insightRepo: insightRepo,
		logger:      logger,
	}
}

// GenerateInsight отправляет prompt модели и возвращает очищенный текст.
// Детали ошибки провайдера клиенту не раскрываются.
func (uc *InsightUseCase) GenerateInsight(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.ErrMissingPrompt
	}

	text, err := uc.insightRepo.GenerateInsight(ctx, prompt)
	if err != nil {
		uc.logger.Error("Insight generation failed", zap.Error(err))
		return "", errors.ErrInsightUpstream
	}

	cleaned := strings.TrimSpace(citationPattern.ReplaceAllString(text, ""))

	return cleaned, nil
}
