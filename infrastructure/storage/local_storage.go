package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"todo-backend/domain/errs"
	"todo-backend/domain/ports"
	"todo-backend/pkg/utils"
)

// ErrObjectTooLarge object ใหญ่เกิน maxSize
var ErrObjectTooLarge = errors.New("object exceeds maximum upload size")

// LocalStorage implements AttachmentStoragePort สำหรับเก็บไฟล์ใน local filesystem
// upload URL ชี้กลับมาที่ server นี้ พร้อม token ที่ sign ด้วย uploadSecret
type LocalStorage struct {
	basePath     string // เส้นทางหลักที่เก็บไฟล์ (เช่น ./uploads)
	baseURL      string // URL สำหรับเข้าถึงไฟล์ (เช่น http://localhost:8080/files)
	uploadSecret string
	uploadExpiry time.Duration
	now          func() time.Time
}

type LocalStorageConfig struct {
	BasePath     string // ./uploads
	BaseURL      string // http://localhost:8080/files
	UploadSecret string
	UploadExpiry time.Duration
}

// NewLocalStorage สร้าง LocalStorage instance
func NewLocalStorage(config LocalStorageConfig) (*LocalStorage, error) {
	if config.UploadSecret == "" {
		return nil, errors.New("local storage requires an upload secret")
	}

	// สร้าง base directory ถ้ายังไม่มี
	if err := os.MkdirAll(config.BasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	expiry := config.UploadExpiry
	if expiry <= 0 {
		expiry = DefaultUploadExpiry
	}

	return &LocalStorage{
		basePath:     config.BasePath,
		baseURL:      strings.TrimSuffix(config.BaseURL, "/"),
		uploadSecret: config.UploadSecret,
		uploadExpiry: expiry,
		now:          time.Now,
	}, nil
}

var _ ports.AttachmentStoragePort = (*LocalStorage)(nil)

// UploadURL <baseURL>/<id>?token=<jwt>
func (l *LocalStorage) UploadURL(ctx context.Context, attachmentID string) (string, error) {
	path, err := objectPath(attachmentID)
	if err != nil {
		return "", errs.Store("presign upload", err)
	}

	token, err := utils.GenerateUploadToken(l.uploadSecret, path, l.uploadExpiry, l.now())
	if err != nil {
		return "", errs.Store("presign upload", fmt.Errorf("failed to sign upload token: %w", err))
	}

	return l.baseURL + "/" + url.PathEscape(path) + "?token=" + url.QueryEscape(token), nil
}

// DownloadURL สร้าง URL สำหรับเข้าถึงไฟล์
func (l *LocalStorage) DownloadURL(ctx context.Context, attachmentID string) (string, error) {
	path, err := objectPath(attachmentID)
	if err != nil {
		return "", errs.Store("download url", err)
	}
	return l.baseURL + "/" + url.PathEscape(path), nil
}

// GetProviderName return ชื่อ provider
func (l *LocalStorage) GetProviderName() string {
	return "local"
}

// BasePath directory ที่ใช้ serve ไฟล์แบบ static
func (l *LocalStorage) BasePath() string {
	return l.basePath
}

// VerifyUploadToken ตรวจ token ที่มากับ upload URL
func (l *LocalStorage) VerifyUploadToken(token, attachmentID string) error {
	if _, err := objectPath(attachmentID); err != nil {
		return err
	}
	return utils.ValidateUploadToken(l.uploadSecret, token, attachmentID)
}

// WriteObject เขียน object ลง temp file ก่อนแล้วค่อย rename
// reader ที่ยาวเกิน maxSize จะถูกปฏิเสธ (maxSize <= 0 = ไม่จำกัด)
func (l *LocalStorage) WriteObject(attachmentID string, r io.Reader, maxSize int64) (int64, error) {
	path, err := objectPath(attachmentID)
	if err != nil {
		return 0, err
	}

	tmp, err := os.CreateTemp(l.basePath, ".upload-*")
	if err != nil {
		return 0, errs.Store("write object", fmt.Errorf("failed to create temp file: %w", err))
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	src := r
	if maxSize > 0 {
		src = io.LimitReader(r, maxSize+1)
	}

	written, err := io.Copy(tmp, src)
	closeErr := tmp.Close()
	if err != nil {
		return 0, errs.Store("write object", fmt.Errorf("failed to write file: %w", err))
	}
	if closeErr != nil {
		return 0, errs.Store("write object", closeErr)
	}
	if maxSize > 0 && written > maxSize {
		return 0, ErrObjectTooLarge
	}

	if err := os.Rename(tmpName, filepath.Join(l.basePath, path)); err != nil {
		return 0, errs.Store("write object", fmt.Errorf("failed to move file: %w", err))
	}

	return written, nil
}
