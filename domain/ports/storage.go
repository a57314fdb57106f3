package ports

import "context"

// AttachmentStoragePort คือ interface สำหรับ object store ของ attachments
// object path = attachmentID
type AttachmentStoragePort interface {
	// UploadURL สร้าง URL แบบ write ที่หมดอายุ สำหรับอัปโหลด object เดียว
	UploadURL(ctx context.Context, attachmentID string) (string, error)

	// DownloadURL URL ถาวรสำหรับอ่าน object, id เดียวกันได้ URL เดิมเสมอ
	DownloadURL(ctx context.Context, attachmentID string) (string, error)

	// GetProviderName ชื่อ provider (local, s3, r2)
	GetProviderName() string
}
