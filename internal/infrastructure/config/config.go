package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const MaxSignedURLTTL = 7 * 24 * time.Hour

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Identity  IdentityConfig
	Blob      BlobConfig
	S3        S3Config
	Upload    UploadConfig
	Log       LogConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
}

type DatabaseConfig struct {
	Host              string        `envconfig:"DB_HOST" default:"localhost"`
	Port              int           `envconfig:"DB_PORT" default:"5432"`
	User              string        `envconfig:"DB_USER" required:"true"`
	Password          string        `envconfig:"DB_PASSWORD" required:"true"`
	Name              string        `envconfig:"DB_NAME" required:"true"`
	SSLMode           string        `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpenConns      int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns      int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime   time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	ConnMaxIdleTime   time.Duration `envconfig:"DB_CONN_MAX_IDLE_TIME" default:"5m"`
	HealthCheckPeriod time.Duration `envconfig:"DB_HEALTH_CHECK_PERIOD" default:"1m"`
	ConnectTimeout    time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"5s"`
	MigrationsPath    string        `envconfig:"DB_MIGRATIONS_PATH"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

const (
	AuthModeRemote = "remote"
	AuthModeJWT    = "jwt"
)

type IdentityConfig struct {
	Mode       string        `envconfig:"AUTH_MODE" default:"remote"`
	ServiceURL string        `envconfig:"AUTH_SERVICE_URL" default:"http://localhost:3001"`
	Timeout    time.Duration `envconfig:"AUTH_TIMEOUT" default:"10s"`
	JWTSecret  string        `envconfig:"AUTH_JWT_SECRET"`
	CacheTTL   time.Duration `envconfig:"AUTH_CACHE_TTL" default:"0s"`
}

const (
	BlobBackendS3    = "s3"
	BlobBackendMinIO = "minio"
)

type BlobConfig struct {
	Backend      string        `envconfig:"BLOB_BACKEND" default:"s3"`
	SignedURLTTL time.Duration `envconfig:"BLOB_SIGNED_URL_TTL" default:"1h"`
}

// SignedURLExpiry returns the configured TTL bounded to (0, MaxSignedURLTTL].
func (c BlobConfig) SignedURLExpiry() time.Duration {
	if c.SignedURLTTL <= 0 {
		return time.Hour
	}
	if c.SignedURLTTL > MaxSignedURLTTL {
		return MaxSignedURLTTL
	}
	return c.SignedURLTTL
}

type S3Config struct {
	Endpoint        string `envconfig:"S3_ENDPOINT"`
	Region          string `envconfig:"S3_REGION" default:"us-east-1"`
	Bucket          string `envconfig:"S3_BUCKET" required:"true"`
	AccessKeyID     string `envconfig:"S3_ACCESS_KEY_ID" required:"true"`
	SecretAccessKey string `envconfig:"S3_SECRET_ACCESS_KEY" required:"true"`
	UsePathStyle    bool   `envconfig:"S3_USE_PATH_STYLE" default:"false"`
	UseSSL          bool   `envconfig:"S3_USE_SSL" default:"true"`
}

type UploadConfig struct {
	MaxFileSize int64 `envconfig:"UPLOAD_MAX_FILE_SIZE" default:"10485760"`
	MaxPixels   int64 `envconfig:"UPLOAD_MAX_PIXELS" default:"50000000"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type RateLimitConfig struct {
	Enabled        bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RequestsPerMin int  `envconfig:"RATE_LIMIT_REQUESTS_PER_MIN" default:"100"`
	SharedPerMin   int  `envconfig:"RATE_LIMIT_SHARED_PER_MIN" default:"20"`
	UploadPerMin   int  `envconfig:"RATE_LIMIT_UPLOAD_PER_MIN" default:"15"`
	SharePerMin    int  `envconfig:"RATE_LIMIT_SHARE_PER_MIN" default:"10"`
}

type CORSConfig struct {
	Origins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Identity.Mode {
	case AuthModeRemote:
	case AuthModeJWT:
		if c.Identity.JWTSecret == "" {
			return fmt.Errorf("AUTH_JWT_SECRET is required when AUTH_MODE=%s", AuthModeJWT)
		}
	default:
		return fmt.Errorf("unknown AUTH_MODE %q", c.Identity.Mode)
	}

	switch c.Blob.Backend {
	case BlobBackendS3, BlobBackendMinIO:
	default:
		return fmt.Errorf("unknown BLOB_BACKEND %q", c.Blob.Backend)
	}

	if c.Upload.MaxFileSize <= 0 {
		return fmt.Errorf("UPLOAD_MAX_FILE_SIZE must be positive")
	}
	return nil
}
