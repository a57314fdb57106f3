package routes

import (
	"github.com/gofiber/fiber/v2"

	"todo-backend/interfaces/api/handlers"
)

func SetupAttachmentRoutes(api fiber.Router, h *handlers.Handlers) {
	attachments := api.Group("/attachments")
	attachments.Get("/:attachmentId/upload-url", h.AttachmentHandler.GetUploadURL)
}
