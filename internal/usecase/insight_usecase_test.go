package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/public-garden-api/internal/pkg/errors"
	"github.com/public-garden-api/internal/usecase"
)

func TestInsightUseCase_GenerateInsight(t *testing.T) {
	ctx := context.Background()

	t.Run("strips citations and trims whitespace", func(t *testing.T) {
		mockInsight := &MockInsightRepository{}
		uc := usecase.NewInsightUseCase(mockInsight, zap.NewNop())

		mockInsight.On("GenerateInsight", ctx, "describe the park").
			Return("  The park [1] has a slide [source: osm] and swings.  ", nil)

		result, err := uc.GenerateInsight(ctx, "describe the park")

		require.NoError(t, err)
		assert.Equal(t, "The park  has a slide  and swings.", result)
	})

	t.Run("blank prompt is rejected without an upstream call", func(t *testing.T) {
		mockInsight := &MockInsightRepository{}
		uc := usecase.NewInsightUseCase(mockInsight, zap.NewNop())

		_, err := uc.GenerateInsight(ctx, "   ")

		assert.Equal(t, errors.ErrMissingPrompt, err)
		mockInsight.AssertNotCalled(t, "GenerateInsight", mock.Anything, mock.Anything)
	})

	t.Run("upstream failure is masked", func(t *testing.T) {
		mockInsight := &MockInsightRepository{}
		uc := usecase.NewInsightUseCase(mockInsight, zap.NewNop())

		mockInsight.On("GenerateInsight", ctx, "describe the park").
			Return("", assert.AnError)

		_, err := uc.GenerateInsight(ctx, "describe the park")

		assert.Equal(t, errors.ErrInsightUpstream, err)
	})
}
