package handlers

import (
	"github.com/gofiber/fiber/v2"

	"todo-backend/domain/dto"
	"todo-backend/domain/services"
	"todo-backend/pkg/logger"
	"todo-backend/pkg/utils"
)

type AttachmentHandler struct {
	todoService services.TodoService
}

func NewAttachmentHandler(todoService services.TodoService) *AttachmentHandler {
	return &AttachmentHandler{
		todoService: todoService,
	}
}

// GetUploadURL ออก upload URL ให้ client อัปโหลดตรงไปที่ object store
func (h *AttachmentHandler) GetUploadURL(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if _, err := utils.GetUserFromContext(c); err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	param := dto.AttachmentIDParam{AttachmentID: c.Params("attachmentId")}
	if err := utils.ValidateStruct(&param); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	uploadURL, err := h.todoService.GetUploadURL(ctx, param.AttachmentID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to issue upload URL", "attachment_id", param.AttachmentID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.UploadURLResponse{UploadURL: uploadURL})
}
