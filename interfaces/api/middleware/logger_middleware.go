package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"todo-backend/pkg/logger"
)

// LoggerMiddleware structured logging สำหรับทุก request
// skipPaths ไม่ log (เช่น /health ที่ถูก probe บ่อย)
func LoggerMiddleware(skipPaths ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, p := range skipPaths {
			if strings.HasPrefix(c.Path(), p) {
				return c.Next()
			}
		}

		start := time.Now()

		logger.DebugContext(c.UserContext(), "Request started",
			"method", c.Method(),
			"path", c.Path(),
			"ip", c.IP(),
			"user_agent", c.Get("User-Agent"),
		)

		err := c.Next()

		// ให้ ErrorHandler เขียน status ก่อน log
		if err != nil {
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
			err = nil
		}

		status := c.Response().StatusCode()

		logFunc := logger.InfoContext
		if status >= 500 {
			logFunc = logger.ErrorContext
		} else if status >= 400 {
			logFunc = logger.WarnContext
		}

		// UserContext หลัง Next มี user_id จาก Protected
		logFunc(c.UserContext(), "Request completed",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", time.Since(start).String(),
			"bytes", len(c.Response().Body()),
		)

		return err
	}
}
