package repository

import "context"

// InsightRepository - внешний сервис генерации текста
type InsightRepository interface {
	GenerateInsight(ctx context.Context, prompt string) (string, error)
}
