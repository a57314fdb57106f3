package storage

import (
	"errors"
	"time"

	"todo-backend/domain/models"
)

// DefaultUploadExpiry อายุของ upload URL ถ้าไม่ได้กำหนด
const DefaultUploadExpiry = 300 * time.Second

var ErrInvalidAttachmentID = errors.New("invalid attachment id")

// objectPath object path ของ attachment คือ id ตรงๆ
func objectPath(attachmentID string) (string, error) {
	if !models.ValidAttachmentID(attachmentID) {
		return "", ErrInvalidAttachmentID
	}
	return attachmentID, nil
}
