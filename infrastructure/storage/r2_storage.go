package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"todo-backend/domain/errs"
	"todo-backend/domain/ports"
	"todo-backend/pkg/logger"
)

// R2Storage implements AttachmentStoragePort สำหรับ Cloudflare R2 ผ่าน AWS SDK
type R2Storage struct {
	presignClient *s3.PresignClient
	bucket        string
	endpoint      string
	publicURL     string
	uploadExpiry  time.Duration
}

type R2StorageConfig struct {
	Endpoint     string // https://<account>.r2.cloudflarestorage.com
	AccessKey    string
	SecretKey    string
	Bucket       string
	PublicURL    string // https://cdn.example.com
	UploadExpiry time.Duration
}

func NewR2Storage(cfg R2StorageConfig) (ports.AttachmentStoragePort, error) {
	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	expiry := cfg.UploadExpiry
	if expiry <= 0 {
		expiry = DefaultUploadExpiry
	}

	logger.Info("R2 storage initialized", "endpoint", cfg.Endpoint, "bucket", cfg.Bucket)

	return &R2Storage{
		presignClient: s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		endpoint:      strings.TrimSuffix(cfg.Endpoint, "/"),
		publicURL:     strings.TrimSuffix(cfg.PublicURL, "/"),
		uploadExpiry:  expiry,
	}, nil
}

func (r *R2Storage) UploadURL(ctx context.Context, attachmentID string) (string, error) {
	path, err := objectPath(attachmentID)
	if err != nil {
		return "", errs.Store("presign upload", err)
	}

	req, err := r.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(path),
	}, s3.WithPresignExpires(r.uploadExpiry))
	if err != nil {
		return "", errs.Store("presign upload", fmt.Errorf("failed to presign R2 upload: %w", err))
	}

	return req.URL, nil
}

func (r *R2Storage) DownloadURL(ctx context.Context, attachmentID string) (string, error) {
	path, err := objectPath(attachmentID)
	if err != nil {
		return "", errs.Store("download url", err)
	}

	if r.publicURL != "" {
		return r.publicURL + "/" + path, nil
	}
	return fmt.Sprintf("%s/%s/%s", r.endpoint, r.bucket, path), nil
}

func (r *R2Storage) GetProviderName() string {
	return "r2"
}
