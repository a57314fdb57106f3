package storage

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"todo-backend/domain/errs"
	"todo-backend/domain/ports"
	"todo-backend/pkg/logger"
)

// S3Storage implements AttachmentStoragePort สำหรับ S3-Compatible Storage (MinIO / AWS S3)
type S3Storage struct {
	client       *minio.Client
	bucket       string
	publicURL    string // URL สำหรับเข้าถึงไฟล์ public (ถ้ามี)
	endpoint     string
	useSSL       bool
	uploadExpiry time.Duration
}

type S3StorageConfig struct {
	Endpoint     string // minio:9000 หรือ s3.amazonaws.com
	AccessKey    string
	SecretKey    string
	Bucket       string
	UseSSL       bool
	Region       string
	PublicURL    string // URL สำหรับเข้าถึงไฟล์ public (optional)
	UploadExpiry time.Duration
}

// NewS3Storage สร้าง S3Storage และตรวจสอบ bucket
func NewS3Storage(config S3StorageConfig) (ports.AttachmentStoragePort, error) {
	s, err := newS3Storage(config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// ตรวจสอบว่า bucket มีอยู่หรือไม่
	exists, err := s.client.BucketExists(ctx, config.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	// สร้าง bucket ถ้ายังไม่มี
	if !exists {
		err = s.client.MakeBucket(ctx, config.Bucket, minio.MakeBucketOptions{
			Region: config.Region,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logger.Info("S3 bucket created", "bucket", config.Bucket)
	}

	logger.Info("S3 storage initialized",
		"endpoint", config.Endpoint,
		"bucket", config.Bucket,
		"ssl", config.UseSSL,
	)

	return s, nil
}

// newS3Storage สร้าง client โดยไม่ต่อ network
func newS3Storage(config S3StorageConfig) (*S3Storage, error) {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 50,
	}

	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure:    config.UseSSL,
		Region:    config.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}

	expiry := config.UploadExpiry
	if expiry <= 0 {
		expiry = DefaultUploadExpiry
	}

	return &S3Storage{
		client:       client,
		bucket:       config.Bucket,
		publicURL:    strings.TrimSuffix(config.PublicURL, "/"),
		endpoint:     config.Endpoint,
		useSSL:       config.UseSSL,
		uploadExpiry: expiry,
	}, nil
}

// UploadURL presigned PUT URL สำหรับ object path = attachmentID
func (s *S3Storage) UploadURL(ctx context.Context, attachmentID string) (string, error) {
	path, err := objectPath(attachmentID)
	if err != nil {
		return "", errs.Store("presign upload", err)
	}

	presignedURL, err := s.client.PresignedPutObject(ctx, s.bucket, path, s.uploadExpiry)
	if err != nil {
		return "", errs.Store("presign upload", fmt.Errorf("failed to generate presigned URL: %w", err))
	}

	logger.DebugContext(ctx, "Presigned upload URL generated", "path", path, "expiry", s.uploadExpiry)
	return presignedURL.String(), nil
}

// DownloadURL สร้าง URL สำหรับเข้าถึงไฟล์
func (s *S3Storage) DownloadURL(ctx context.Context, attachmentID string) (string, error) {
	path, err := objectPath(attachmentID)
	if err != nil {
		return "", errs.Store("download url", err)
	}

	// ถ้ามี public URL ให้ใช้
	if s.publicURL != "" {
		return s.publicURL + "/" + path, nil
	}

	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, path), nil
}

// GetProviderName return ชื่อ provider
func (s *S3Storage) GetProviderName() string {
	return "s3"
}
