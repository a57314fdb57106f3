package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Record store types
const (
	RecordStorePostgres = "postgres"
	RecordStoreRedis    = "redis"
)

// Storage types
const (
	StorageTypeLocal = "local"
	StorageTypeS3    = "s3"
	StorageTypeR2    = "r2"
)

type Config struct {
	App         AppConfig
	Database    DatabaseConfig
	RecordStore string // postgres, redis
	Redis       RedisConfig
	NATS        NATSConfig // lifecycle events (optional)
	Auth        AuthConfig
	Log         LogConfig
	Storage     StorageConfig
	CORS        CORSConfig
}

type AppConfig struct {
	Name string
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig ใช้เมื่อ RECORD_STORE=redis
type RedisConfig struct {
	URL      string // redis://localhost:6379
	Password string
	DB       int
}

// NATSConfig ว่าง = ไม่ publish events
type NATSConfig struct {
	URL string // nats://localhost:4222
}

// AuthConfig key สำหรับตรวจ token ของผู้เรียก
type AuthConfig struct {
	JWTSecret    string // HS256
	JWTPublicKey string // RS256 PEM (ถ้ามี ใช้แทน secret)
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string // logs/app.log
	MaxSize    int    // MB
	MaxBackups int    // จำนวน backup files
	MaxAge     int    // วัน
	Compress   bool   // บีบอัด backup
}

type StorageConfig struct {
	Type            string // local, s3, r2
	BasePath        string // สำหรับ local: ./uploads
	BaseURL         string // URL สำหรับเข้าถึงไฟล์ (เช่น http://localhost:8080/files)
	UploadSecret    string // sign upload token ของ local storage
	UploadURLExpiry time.Duration
	MaxUploadSize   int64 // ขนาดสูงสุดที่อัปโหลดได้ (bytes)

	S3 S3Config
	R2 R2Config
}

// S3Config S3-Compatible Storage (MinIO / AWS S3)
type S3Config struct {
	Endpoint  string // minio:9000 หรือ s3.amazonaws.com
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool // false สำหรับ MinIO local
	Region    string
	PublicURL string // URL สำหรับเข้าถึงไฟล์ public (optional)
}

// R2Config Cloudflare R2
type R2Config struct {
	Endpoint  string // https://<account>.r2.cloudflarestorage.com
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
}

type CORSConfig struct {
	AllowOrigins string // comma-separated
}

func LoadConfig() (*Config, error) {
	// ไม่ error ถ้าไม่มี .env file (ใช้ environment variables แทน)
	_ = godotenv.Load()

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	maxUploadSize, _ := strconv.ParseInt(getEnv("STORAGE_MAX_UPLOAD_SIZE", "10485760"), 10, 64) // 10MB default
	uploadExpiry, err := time.ParseDuration(getEnv("STORAGE_UPLOAD_URL_EXPIRY", "300s"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORAGE_UPLOAD_URL_EXPIRY: %w", err)
	}
	s3UseSSL := getEnv("S3_USE_SSL", "false") == "true"

	config := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "Todo Backend"),
			Port: getEnv("APP_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "todos"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		RecordStore: strings.ToLower(getEnv("RECORD_STORE", RecordStorePostgres)),
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		NATS: NATSConfig{
			URL: getEnv("NATS_URL", ""),
		},
		Auth: AuthConfig{
			JWTSecret:    getEnv("JWT_SECRET", ""),
			JWTPublicKey: getEnv("JWT_PUBLIC_KEY", ""),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
		Storage: StorageConfig{
			Type:            strings.ToLower(getEnv("STORAGE_TYPE", StorageTypeLocal)),
			BasePath:        getEnv("STORAGE_BASE_PATH", "./uploads"),
			BaseURL:         getEnv("STORAGE_BASE_URL", "http://localhost:8080/files"),
			UploadSecret:    getEnv("STORAGE_UPLOAD_SECRET", ""),
			UploadURLExpiry: uploadExpiry,
			MaxUploadSize:   maxUploadSize,
			S3: S3Config{
				Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
				AccessKey: getEnv("S3_ACCESS_KEY", "minioadmin"),
				SecretKey: getEnv("S3_SECRET_KEY", "minioadmin"),
				Bucket:    getEnv("S3_BUCKET", "attachments"),
				UseSSL:    s3UseSSL,
				Region:    getEnv("S3_REGION", "us-east-1"),
				PublicURL: getEnv("S3_PUBLIC_URL", ""),
			},
			R2: R2Config{
				Endpoint:  getEnv("R2_ENDPOINT", ""),
				AccessKey: getEnv("R2_ACCESS_KEY", ""),
				SecretKey: getEnv("R2_SECRET_KEY", ""),
				Bucket:    getEnv("R2_BUCKET", "attachments"),
				PublicURL: getEnv("R2_PUBLIC_URL", ""),
			},
		},
		CORS: CORSConfig{
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
	}

	return config, nil
}

// Validate ตรวจค่าที่ต้องมีก่อน start server
func (c *Config) Validate() error {
	var errs []error

	switch c.RecordStore {
	case RecordStorePostgres, RecordStoreRedis:
	default:
		errs = append(errs, fmt.Errorf("unknown RECORD_STORE %q", c.RecordStore))
	}

	switch c.Storage.Type {
	case StorageTypeLocal:
		if c.Storage.UploadSecret == "" {
			errs = append(errs, errors.New("local storage requires STORAGE_UPLOAD_SECRET"))
		} else if c.Storage.UploadSecret == c.Auth.JWTSecret {
			errs = append(errs, errors.New("STORAGE_UPLOAD_SECRET must differ from JWT_SECRET"))
		}
	case StorageTypeS3:
	case StorageTypeR2:
		if c.Storage.R2.Endpoint == "" {
			errs = append(errs, errors.New("r2 storage requires R2_ENDPOINT"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_TYPE %q", c.Storage.Type))
	}

	if c.Auth.JWTSecret == "" && c.Auth.JWTPublicKey == "" {
		errs = append(errs, errors.New("JWT_SECRET or JWT_PUBLIC_KEY is required"))
	}

	if c.Storage.UploadURLExpiry <= 0 {
		errs = append(errs, errors.New("STORAGE_UPLOAD_URL_EXPIRY must be positive"))
	}

	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// Origins แปลง comma-separated origins ให้อยู่ในรูปที่ fiber cors รับ
// เช่น "http://a.com, http://b.com" -> "http://a.com,http://b.com"
func (c CORSConfig) Origins() string {
	parts := strings.Split(c.AllowOrigins, ",")
	var origins []string
	for _, p := range parts {
		o := strings.TrimSpace(p)
		if o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return "*"
	}
	return strings.Join(origins, ",")
}

// IsDevelopment ตรวจสอบว่าเป็น development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction ตรวจสอบว่าเป็น production mode
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
