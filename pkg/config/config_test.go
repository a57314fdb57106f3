package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STORAGE_UPLOAD_SECRET", "upload-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, RecordStorePostgres, cfg.RecordStore)
	assert.Equal(t, StorageTypeLocal, cfg.Storage.Type)
	assert.Equal(t, 300*time.Second, cfg.Storage.UploadURLExpiry)
	assert.Equal(t, "upload-secret", cfg.Storage.UploadSecret)
	assert.True(t, cfg.IsDevelopment())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_UploadSecretNotDerivedFromJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STORAGE_UPLOAD_SECRET", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Empty(t, cfg.Storage.UploadSecret)
	assert.ErrorContains(t, cfg.Validate(), "STORAGE_UPLOAD_SECRET")
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("RECORD_STORE", "Redis")
	t.Setenv("STORAGE_TYPE", "s3")
	t.Setenv("STORAGE_UPLOAD_URL_EXPIRY", "2m")
	t.Setenv("STORAGE_MAX_UPLOAD_SIZE", "1024")
	t.Setenv("S3_USE_SSL", "true")
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, RecordStoreRedis, cfg.RecordStore)
	assert.Equal(t, StorageTypeS3, cfg.Storage.Type)
	assert.Equal(t, 2*time.Minute, cfg.Storage.UploadURLExpiry)
	assert.Equal(t, int64(1024), cfg.Storage.MaxUploadSize)
	assert.True(t, cfg.Storage.S3.UseSSL)
	assert.True(t, cfg.IsProduction())
}

func TestLoadConfig_BadExpiry(t *testing.T) {
	t.Setenv("STORAGE_UPLOAD_URL_EXPIRY", "soon")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			RecordStore: RecordStorePostgres,
			Auth:        AuthConfig{JWTSecret: "secret"},
			Storage: StorageConfig{
				Type:            StorageTypeLocal,
				UploadSecret:    "upload",
				UploadURLExpiry: time.Minute,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"public key only", func(c *Config) { c.Auth = AuthConfig{JWTPublicKey: "pem"} }, ""},
		{"unknown record store", func(c *Config) { c.RecordStore = "mongo" }, "RECORD_STORE"},
		{"unknown storage", func(c *Config) { c.Storage.Type = "ftp" }, "STORAGE_TYPE"},
		{"no signing key", func(c *Config) { c.Auth = AuthConfig{} }, "JWT_SECRET"},
		{"local without secret", func(c *Config) { c.Storage.UploadSecret = "" }, "STORAGE_UPLOAD_SECRET"},
		{"upload secret equals jwt secret", func(c *Config) { c.Storage.UploadSecret = "secret" }, "must differ"},
		{"s3 ignores upload secret", func(c *Config) { c.Storage.Type = StorageTypeS3; c.Storage.UploadSecret = "" }, ""},
		{"r2 without endpoint", func(c *Config) { c.Storage.Type = StorageTypeR2 }, "R2_ENDPOINT"},
		{"zero expiry", func(c *Config) { c.Storage.UploadURLExpiry = 0 }, "EXPIRY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestCORSOrigins(t *testing.T) {
	assert.Equal(t, "*", CORSConfig{}.Origins())
	assert.Equal(t, "http://a.com,http://b.com", CORSConfig{AllowOrigins: " http://a.com, ,http://b.com "}.Origins())
}
