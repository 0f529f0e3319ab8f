package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, TTLs, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	Redis       RedisConfig
	Gateway     GatewayConfig
	Reservation ReservationConfig
	Notify      NotifyConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// GatewayConfig holds credentials for the external payment provider.
type GatewayConfig struct {
	BaseURL        string        `envconfig:"GATEWAY_BASE_URL" required:"true"`
	PartnerID      string        `envconfig:"GATEWAY_PARTNER_ID" required:"true"`
	ClientID       string        `envconfig:"GATEWAY_CLIENT_ID" required:"true"`
	ClientKey      string        `envconfig:"GATEWAY_CLIENT_KEY" required:"true"`
	HMACKey        string        `envconfig:"GATEWAY_HMAC_KEY" required:"true"`
	RequestTimeout time.Duration `envconfig:"GATEWAY_REQUEST_TIMEOUT" default:"10s"`
	RetryMax       int           `envconfig:"GATEWAY_RETRY_MAX" default:"3"`
	RetryBaseWait  time.Duration `envconfig:"GATEWAY_RETRY_BASE_WAIT" default:"500ms"`
}

type ReservationConfig struct {
	// PendingTTL bounds how long a reservation may stay pending before the
	// expiry sweep releases its seats.
	PendingTTL    time.Duration `envconfig:"RESERVATION_PENDING_TTL" default:"15m"`
	SweepInterval time.Duration `envconfig:"RESERVATION_SWEEP_INTERVAL" default:"1m"`
	SweepBatch    int           `envconfig:"RESERVATION_SWEEP_BATCH" default:"100"`
	SessionTTL    time.Duration `envconfig:"PAYMENT_SESSION_TTL" default:"15m"`
}

type NotifyConfig struct {
	PublishKey   string        `envconfig:"PUBNUB_PUBLISH_KEY" default:""`
	SubscribeKey string        `envconfig:"PUBNUB_SUBSCRIBE_KEY" default:""`
	PollInterval time.Duration `envconfig:"NOTIFY_POLL_INTERVAL" default:"5s"`
	RetryAfter   time.Duration `envconfig:"NOTIFY_RETRY_AFTER" default:"30s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
		},
		Redis: RedisConfig{
			Addr: "localhost:16380",
		},
		Gateway: GatewayConfig{
			BaseURL:        "http://localhost:18080",
			PartnerID:      "test-partner",
			ClientID:       "test-client",
			ClientKey:      "test-client-key",
			HMACKey:        "test-hmac-key",
			RequestTimeout: 2 * time.Second,
			RetryMax:       1,
			RetryBaseWait:  10 * time.Millisecond,
		},
		Reservation: ReservationConfig{
			PendingTTL:    15 * time.Minute,
			SweepInterval: time.Minute,
			SweepBatch:    100,
			SessionTTL:    15 * time.Minute,
		},
		Notify: NotifyConfig{
			// No PubNub keys: tests run against the no-op publisher.
			PollInterval: 100 * time.Millisecond,
			RetryAfter:   30 * time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
	}
}
