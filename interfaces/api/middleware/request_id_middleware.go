package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"todo-backend/pkg/logger"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDLocal  = "request_id"

	maxRequestIDLength = 128
)

// RequestIDMiddleware สร้าง request ID สำหรับทุก request
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// ใช้ request ID จาก client ถ้ามีและไม่ยาวเกิน
		requestID := c.Get(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDHeader, requestID)

		// ใส่ request ID ใน context สำหรับ logging
		c.SetUserContext(logger.ContextWithRequestID(c.UserContext(), requestID))
		c.Locals(requestIDLocal, requestID)

		return c.Next()
	}
}

// GetRequestIDFromContext ดึง request ID จาก fiber context
func GetRequestIDFromContext(c *fiber.Ctx) string {
	if requestID, ok := c.Locals(requestIDLocal).(string); ok {
		return requestID
	}
	return ""
}
