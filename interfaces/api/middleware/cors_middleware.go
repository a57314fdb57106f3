package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware origins มาจาก CORS_ALLOW_ORIGINS
func CorsMiddleware(allowOrigins string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:  allowOrigins,
		AllowMethods:  "GET,POST,PUT,PATCH,DELETE,OPTIONS,HEAD",
		AllowHeaders:  "Origin,Content-Type,Accept,Authorization,X-Request-ID",
		ExposeHeaders: "Content-Length,Content-Type,X-Request-ID",
		// Bearer token ไม่ต้องใช้ cookies และ fiber ไม่ยอมให้ credentials คู่กับ "*"
		AllowCredentials: allowOrigins != "*",
	})
}
