package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/public-garden-api/internal/pkg/errors"
	"github.com/public-garden-api/internal/pkg/utils"
	"github.com/public-garden-api/internal/usecase"
)

// ClaimsKey - ключ, под которым claims токена кладутся в контекст запроса
const ClaimsKey = "adminClaims"

// RequireAdmin - middleware аутентификации администратора.
// Ожидает заголовок Authorization в формате "Bearer <token>".
func RequireAdmin(authUC *usecase.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return utils.SendError(c, errors.ErrMissingToken)
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.SendError(c, errors.ErrMissingToken)
		}

		claims, err := authUC.VerifyToken(parts[1])
		if err != nil {
			return utils.SendError(c, err)
		}

		c.Locals(ClaimsKey, claims)

		return c.Next()
	}
}

// ClaimsFromCtx достает claims администратора, положенные RequireAdmin
func ClaimsFromCtx(c *fiber.Ctx) *usecase.TokenClaims {
	claims, _ := c.Locals(ClaimsKey).(*usecase.TokenClaims)
	return claims
}
