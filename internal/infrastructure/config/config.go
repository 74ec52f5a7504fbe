package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/marcos-nsantos/df-fix-backend/internal/domain"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain/valueobject"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	S3        S3Config
	Log       LogConfig
	RateLimit RateLimitConfig
	MQTT      MQTTConfig
	Fix       FixConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"SERVER_ALLOWED_ORIGINS" default:"*"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            int           `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" required:"true"`
	Password        string        `envconfig:"DB_PASSWORD" required:"true"`
	Name            string        `envconfig:"DB_NAME" required:"true"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	MigrationsPath  string        `envconfig:"DB_MIGRATIONS_PATH" default:"migrations"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

type JWTConfig struct {
	SecretKey      string        `envconfig:"JWT_SECRET_KEY" required:"true"`
	AccessTokenTTL time.Duration `envconfig:"JWT_ACCESS_TOKEN_TTL" default:"12h"`
	// OperatorPasswordHash is a bcrypt hash of the shared operator password.
	OperatorPasswordHash string `envconfig:"OPERATOR_PASSWORD_HASH" required:"true"`
}

type S3Config struct {
	Enabled         bool          `envconfig:"S3_ENABLED" default:"false"`
	Endpoint        string        `envconfig:"S3_ENDPOINT"`
	Region          string        `envconfig:"S3_REGION" default:"us-east-1"`
	Bucket          string        `envconfig:"S3_BUCKET"`
	AccessKeyID     string        `envconfig:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string        `envconfig:"S3_SECRET_ACCESS_KEY"`
	UsePathStyle    bool          `envconfig:"S3_USE_PATH_STYLE" default:"false"`
	SignedURLExpiry time.Duration `envconfig:"S3_SIGNED_URL_EXPIRY" default:"1h"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type RateLimitConfig struct {
	Enabled        bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RequestsPerMin int  `envconfig:"RATE_LIMIT_REQUESTS_PER_MIN" default:"100"`
}

type MQTTConfig struct {
	Enabled  bool   `envconfig:"MQTT_ENABLED" default:"false"`
	Broker   string `envconfig:"MQTT_BROKER" default:"tcp://localhost:1883"`
	ClientID string `envconfig:"MQTT_CLIENT_ID" default:"df-fix-backend"`
	Username string `envconfig:"MQTT_USERNAME"`
	Password string `envconfig:"MQTT_PASSWORD"`
	Topic    string `envconfig:"MQTT_TOPIC" default:"df/reports/+"`
	QoS      byte   `envconfig:"MQTT_QOS" default:"1"`
}

// FixConfig bounds what counts as a plausible fix. A zero area disables
// the area check and a zero range disables the range check.
type FixConfig struct {
	AreaMinLat     float64 `envconfig:"FIX_AREA_MIN_LAT" default:"0"`
	AreaMaxLat     float64 `envconfig:"FIX_AREA_MAX_LAT" default:"0"`
	AreaMinLng     float64 `envconfig:"FIX_AREA_MIN_LNG" default:"0"`
	AreaMaxLng     float64 `envconfig:"FIX_AREA_MAX_LNG" default:"0"`
	MaxRangeMeters float64 `envconfig:"FIX_MAX_RANGE_METERS" default:"0"`
	LineLength     float64 `envconfig:"FIX_BEARING_LINE_METERS" default:"160934.4"`
}

// Area returns the configured operating area, or nil when none is set.
func (c FixConfig) Area() (*valueobject.BoundingBox, error) {
	if c.AreaMinLat == 0 && c.AreaMaxLat == 0 && c.AreaMinLng == 0 && c.AreaMaxLng == 0 {
		return nil, nil
	}
	area := valueobject.NewBoundingBox(c.AreaMinLat, c.AreaMaxLat, c.AreaMinLng, c.AreaMaxLng)
	if !area.IsValid() {
		return nil, domain.ErrInvalidBoundingBox
	}
	return area, nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}
