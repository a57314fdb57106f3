package di

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"todo-backend/application/serviceimpl"
	"todo-backend/domain/ports"
	"todo-backend/domain/repositories"
	"todo-backend/domain/services"
	natspkg "todo-backend/infrastructure/nats"
	"todo-backend/infrastructure/postgres"
	redispkg "todo-backend/infrastructure/redis"
	"todo-backend/infrastructure/storage"
	"todo-backend/interfaces/api/handlers"
	"todo-backend/interfaces/api/routes"
	"todo-backend/pkg/config"
	"todo-backend/pkg/logger"
	"todo-backend/pkg/utils"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB            *gorm.DB                    // เมื่อ RECORD_STORE=postgres
	RedisClient   *redispkg.Client            // เมื่อ RECORD_STORE=redis
	NATSClient    *natspkg.Client             // optional
	Storage       ports.AttachmentStoragePort // Port/Adapter pattern
	LocalStorage  *storage.LocalStorage       // non-nil เฉพาะ STORAGE_TYPE=local
	EventPort     ports.TodoEventPort
	TokenVerifier *utils.TokenVerifier

	// Repositories
	TodoRepository repositories.TodoRepository

	// Services
	TodoService services.TodoService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	verifier, err := utils.NewTokenVerifier(c.Config.Auth.JWTSecret, c.Config.Auth.JWTPublicKey)
	if err != nil {
		return fmt.Errorf("failed to initialize token verifier: %w", err)
	}
	c.TokenVerifier = verifier

	if err := c.initRecordStore(); err != nil {
		return err
	}

	if err := c.initStorage(); err != nil {
		return err
	}

	c.initEvents()
	return nil
}

// initRecordStore ต่อ postgres หรือ redis ตาม RECORD_STORE
func (c *Container) initRecordStore() error {
	switch c.Config.RecordStore {
	case config.RecordStoreRedis:
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		c.RedisClient = redisClient
		logger.Info("Record store: redis", "url", c.Config.Redis.URL)

	default:
		db, err := postgres.NewDatabase(postgres.DatabaseConfig{
			Host:     c.Config.Database.Host,
			Port:     c.Config.Database.Port,
			User:     c.Config.Database.User,
			Password: c.Config.Database.Password,
			DBName:   c.Config.Database.DBName,
			SSLMode:  c.Config.Database.SSLMode,
			Debug:    c.Config.IsDevelopment() && c.Config.Log.Level == "debug",
		})
		if err != nil {
			return err
		}
		c.DB = db
		logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

		if err := postgres.Migrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		logger.Info("Database migrated")
	}
	return nil
}

// initStorage สร้าง storage adapter ตาม config
func (c *Container) initStorage() error {
	cfg := c.Config.Storage

	switch cfg.Type {
	case config.StorageTypeS3:
		s3Storage, err := storage.NewS3Storage(storage.S3StorageConfig{
			Endpoint:     cfg.S3.Endpoint,
			AccessKey:    cfg.S3.AccessKey,
			SecretKey:    cfg.S3.SecretKey,
			Bucket:       cfg.S3.Bucket,
			UseSSL:       cfg.S3.UseSSL,
			Region:       cfg.S3.Region,
			PublicURL:    cfg.S3.PublicURL,
			UploadExpiry: cfg.UploadURLExpiry,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		c.Storage = s3Storage

	case config.StorageTypeR2:
		r2Storage, err := storage.NewR2Storage(storage.R2StorageConfig{
			Endpoint:     cfg.R2.Endpoint,
			AccessKey:    cfg.R2.AccessKey,
			SecretKey:    cfg.R2.SecretKey,
			Bucket:       cfg.R2.Bucket,
			PublicURL:    cfg.R2.PublicURL,
			UploadExpiry: cfg.UploadURLExpiry,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize R2 storage: %w", err)
		}
		c.Storage = r2Storage

	default:
		localStorage, err := storage.NewLocalStorage(storage.LocalStorageConfig{
			BasePath:     cfg.BasePath,
			BaseURL:      cfg.BaseURL,
			UploadSecret: cfg.UploadSecret,
			UploadExpiry: cfg.UploadURLExpiry,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize local storage: %w", err)
		}
		c.Storage = localStorage
		c.LocalStorage = localStorage
	}

	logger.Info("Attachment storage initialized", "provider", c.Storage.GetProviderName())
	return nil
}

// initEvents NATS เป็น optional: ไม่มี URL หรือต่อไม่ได้ก็ใช้ noop
func (c *Container) initEvents() {
	if c.Config.NATS.URL == "" {
		c.EventPort = natspkg.NewNoopEventPublisher()
		logger.Info("Lifecycle events disabled (NATS_URL not set)")
		return
	}

	natsClient, err := natspkg.NewClient(natspkg.ClientConfig{URL: c.Config.NATS.URL})
	if err != nil {
		logger.Warn("NATS client initialization failed (events disabled)", "error", err)
		c.EventPort = natspkg.NewNoopEventPublisher()
		return
	}

	c.NATSClient = natsClient
	c.EventPort = natspkg.NewEventPublisher(natsClient)
}

func (c *Container) initRepositories() error {
	if c.RedisClient != nil {
		c.TodoRepository = redispkg.NewTodoRepository(c.RedisClient)
	} else {
		c.TodoRepository = postgres.NewTodoRepository(c.DB)
	}
	logger.Info("Repositories initialized", "record_store", c.Config.RecordStore)
	return nil
}

func (c *Container) initServices() error {
	c.TodoService = serviceimpl.NewTodoService(c.TodoRepository, c.Storage, c.EventPort)
	logger.Info("Services initialized")
	return nil
}

// HealthChecks ping ของ dependency ที่ใช้อยู่
func (c *Container) HealthChecks() map[string]routes.HealthCheck {
	checks := map[string]routes.HealthCheck{}

	if c.DB != nil {
		checks["postgres"] = func(ctx context.Context) error {
			sqlDB, err := c.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
	}
	if c.RedisClient != nil {
		checks["redis"] = c.RedisClient.Ping
	}
	if c.NATSClient != nil {
		checks["nats"] = func(ctx context.Context) error {
			return c.NATSClient.Ping()
		}
	}
	return checks
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	// Close NATS connection
	if c.NATSClient != nil {
		if err := c.NATSClient.Close(); err != nil {
			logger.Warn("Failed to close NATS connection", "error", err)
		}
	}

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	// Close database connection
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return logger.Close()
}

func (c *Container) GetHandlerServices() *handlers.Services {
	svc := &handlers.Services{
		TodoService:   c.TodoService,
		MaxUploadSize: c.Config.Storage.MaxUploadSize,
	}
	// interface ที่เป็น nil pointer ไม่ใช่ nil จึงต้องเช็คก่อน
	if c.LocalStorage != nil {
		svc.LocalStore = c.LocalStorage
	}
	return svc
}

// RouteOptions สิ่งที่ routes ต้องใช้จาก container
func (c *Container) RouteOptions() routes.Options {
	opts := routes.Options{
		Verifier:     c.TokenVerifier,
		AppName:      c.Config.App.Name,
		HealthChecks: c.HealthChecks(),
	}
	if c.LocalStorage != nil {
		opts.FilesDir = c.LocalStorage.BasePath()
	}
	return opts
}
