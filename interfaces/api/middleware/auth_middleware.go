package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"todo-backend/pkg/logger"
	"todo-backend/pkg/utils"
)

// Protected middleware validates JWT tokens and sets user context
// sub claim ของ token คือ user id ของผู้เรียก
func Protected(verifier *utils.TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "Missing authorization header")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Invalid authorization header format")
		}

		userCtx, err := verifier.Verify(token)
		if err != nil {
			logger.WarnContext(c.UserContext(), "Token validation failed", "error", err)
			switch {
			case errors.Is(err, utils.ErrExpiredToken):
				return utils.UnauthorizedResponse(c, "Token has expired")
			case errors.Is(err, utils.ErrInvalidToken):
				return utils.UnauthorizedResponse(c, "Invalid token")
			case errors.Is(err, utils.ErrMissingToken):
				return utils.UnauthorizedResponse(c, "Missing token")
			default:
				return utils.UnauthorizedResponse(c, "Token validation failed")
			}
		}

		c.Locals(utils.UserLocalsKey, userCtx)
		c.SetUserContext(logger.ContextWithUserID(c.UserContext(), userCtx.ID))

		return c.Next()
	}
}
