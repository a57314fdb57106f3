package routes

import (
	"github.com/gofiber/fiber/v2"

	"todo-backend/interfaces/api/handlers"
	"todo-backend/interfaces/api/middleware"
	"todo-backend/pkg/utils"
)

// Options สิ่งที่ routes ต้องใช้นอกจาก handlers
type Options struct {
	Verifier     *utils.TokenVerifier
	AppName      string
	FilesDir     string // local storage directory (ว่าง = ไม่ serve /files)
	HealthChecks map[string]HealthCheck
}

func SetupRoutes(app *fiber.App, h *handlers.Handlers, opts Options) {
	SetupHealthRoutes(app, opts.AppName, opts.HealthChecks)

	// API version group - ทุก route ต้องมี identity
	api := app.Group("/api/v1", middleware.Protected(opts.Verifier))

	SetupTodoRoutes(api, h)
	SetupAttachmentRoutes(api, h)

	// Local storage upload/download (ไม่ผ่าน Protected ใช้ upload token แทน)
	SetupFileRoutes(app, h, opts.FilesDir)
}
