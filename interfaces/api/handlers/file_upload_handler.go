package handlers

import (
	"bytes"
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"todo-backend/domain/models"
	"todo-backend/infrastructure/storage"
	"todo-backend/pkg/logger"
	"todo-backend/pkg/utils"
)

// ObjectWriter local storage ที่รับไฟล์ผ่าน upload URL ของตัวเอง
type ObjectWriter interface {
	VerifyUploadToken(token, attachmentID string) error
	WriteObject(attachmentID string, r io.Reader, maxSize int64) (int64, error)
}

// FileUploadHandler รับ PUT จาก upload URL ที่ local storage ออกให้
type FileUploadHandler struct {
	store   ObjectWriter
	maxSize int64
}

func NewFileUploadHandler(store ObjectWriter, maxSize int64) *FileUploadHandler {
	return &FileUploadHandler{
		store:   store,
		maxSize: maxSize,
	}
}

func (h *FileUploadHandler) Upload(c *fiber.Ctx) error {
	ctx := c.UserContext()

	attachmentID := c.Params("attachmentId")
	if !models.ValidAttachmentID(attachmentID) {
		return utils.BadRequestResponse(c, "Invalid attachment ID")
	}

	if err := h.store.VerifyUploadToken(c.Query("token"), attachmentID); err != nil {
		logger.WarnContext(ctx, "Upload token rejected", "attachment_id", attachmentID, "error", err)
		if errors.Is(err, utils.ErrExpiredToken) {
			return utils.UnauthorizedResponse(c, "Upload URL has expired")
		}
		return utils.UnauthorizedResponse(c, "Invalid upload token")
	}

	if h.maxSize > 0 && int64(len(c.Body())) > h.maxSize {
		return utils.PayloadTooLargeResponse(c, "File exceeds maximum upload size")
	}

	written, err := h.store.WriteObject(attachmentID, bytes.NewReader(c.Body()), h.maxSize)
	if err != nil {
		if errors.Is(err, storage.ErrObjectTooLarge) {
			return utils.PayloadTooLargeResponse(c, "File exceeds maximum upload size")
		}
		logger.ErrorContext(ctx, "Failed to store upload", "attachment_id", attachmentID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "Attachment uploaded", "attachment_id", attachmentID, "bytes", written)
	return utils.NoContentResponse(c)
}
