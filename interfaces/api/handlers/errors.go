package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"todo-backend/domain/errs"
	"todo-backend/pkg/logger"
	"todo-backend/pkg/utils"
)

// serviceErrorResponse NotFound -> 404, Forbidden -> 403, อื่นๆ -> 500
func serviceErrorResponse(c *fiber.Ctx, err error, action string) error {
	ctx := c.UserContext()

	switch {
	case errors.Is(err, errs.ErrNotFound):
		logger.WarnContext(ctx, action+" failed: todo not found", "error", err)
		return utils.NotFoundResponse(c, "Todo not found")
	case errors.Is(err, errs.ErrForbidden):
		logger.WarnContext(ctx, action+" failed: forbidden", "error", err)
		return utils.ForbiddenResponse(c, "Todo belongs to another user")
	default:
		logger.ErrorContext(ctx, action+" failed", "error", err, "store_error", errs.IsStoreError(err))
		return utils.InternalServerErrorResponse(c)
	}
}
