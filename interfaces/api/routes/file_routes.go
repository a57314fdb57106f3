package routes

import (
	"github.com/gofiber/fiber/v2"

	"todo-backend/interfaces/api/handlers"
)

// SetupFileRoutes ใช้เฉพาะ local storage
func SetupFileRoutes(app *fiber.App, h *handlers.Handlers, filesDir string) {
	if h.FileUploadHandler != nil {
		app.Put("/files/:attachmentId", h.FileUploadHandler.Upload)
	}
	if filesDir != "" {
		app.Static("/files", filesDir, fiber.Static{
			Browse:   false,
			Download: false,
		})
	}
}
