package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string   `env:"PORT,         default=8080"`
	Env         string   `env:"ENV,          default=development"`
	LogLevel    string   `env:"LOG_LEVEL,    default=info"`
	ClientURL   string   `env:"CLIENT_URL,   default=http://localhost:5173"`
	CORSOrigins []string `env:"CORS_ORIGINS"`

	Auth      AuthConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	SMTP      SMTPConfig
	S3        S3Config
	RateLimit RateLimitConfig
}

type AuthConfig struct {
	JWTSecret      string        `env:"JWT_SECRET, required"`
	JWTTTL         time.Duration `env:"JWT_TTL,          default=720h"`
	ResetTokenTTL  time.Duration `env:"RESET_TOKEN_TTL,  default=10m"`
	InviteTokenTTL time.Duration `env:"INVITE_TOKEN_TTL, default=24h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=njr_cms"`
}

// RedisConfig is optional. An empty Addr selects the in-process limiter.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type SMTPConfig struct {
	Host      string        `env:"SMTP_HOST"`
	Port      int           `env:"SMTP_PORT,       default=587"`
	Username  string        `env:"SMTP_USERNAME"`
	Password  string        `env:"SMTP_PASSWORD"`
	FromName  string        `env:"MAIL_FROM_NAME,  default=NJR EXIM"`
	FromEmail string        `env:"MAIL_FROM_EMAIL"`
	Timeout   time.Duration `env:"SMTP_TIMEOUT,    default=15s"`
}

type S3Config struct {
	Bucket       string `env:"S3_BUCKET"`
	Region       string `env:"S3_REGION,         default=us-east-1"`
	Endpoint     string `env:"S3_ENDPOINT"`
	AccessKey    string `env:"S3_ACCESS_KEY"`
	SecretKey    string `env:"S3_SECRET_KEY"`
	PublicURL    string `env:"S3_PUBLIC_URL"`
	UsePathStyle bool   `env:"S3_USE_PATH_STYLE, default=false"`
}

// Limit is a fixed number of requests per window.
type Limit struct {
	Requests int
	Window   time.Duration
}

type RateLimitConfig struct {
	PublicRequests  int           `env:"RATELIMIT_PUBLIC_REQUESTS,  default=100"`
	PublicWindow    time.Duration `env:"RATELIMIT_PUBLIC_WINDOW,    default=15m"`
	AuthRequests    int           `env:"RATELIMIT_AUTH_REQUESTS,    default=10"`
	AuthWindow      time.Duration `env:"RATELIMIT_AUTH_WINDOW,      default=15m"`
	ContentRequests int           `env:"RATELIMIT_CONTENT_REQUESTS, default=20"`
	ContentWindow   time.Duration `env:"RATELIMIT_CONTENT_WINDOW,   default=1h"`
}

func (r RateLimitConfig) Public() Limit  { return Limit{r.PublicRequests, r.PublicWindow} }
func (r RateLimitConfig) Auth() Limit    { return Limit{r.AuthRequests, r.AuthWindow} }
func (r RateLimitConfig) Content() Limit { return Limit{r.ContentRequests, r.ContentWindow} }

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("load config: JWT_SECRET must be at least 16 characters")
	}
	for name, d := range map[string]time.Duration{
		"JWT_TTL":          c.Auth.JWTTTL,
		"RESET_TOKEN_TTL":  c.Auth.ResetTokenTTL,
		"INVITE_TOKEN_TTL": c.Auth.InviteTokenTTL,
	} {
		if d <= 0 {
			return fmt.Errorf("load config: %s must be positive", name)
		}
	}
	return nil
}

// ToolConfig is the subset of Config used by offline commands that only
// touch the database.
type ToolConfig struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
}

func (c *ToolConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// LoadTool reads ToolConfig from the environment. Unlike Load it does not
// require auth secrets.
func LoadTool(ctx context.Context) (*ToolConfig, error) {
	return loadTool(ctx, envconfig.OsLookuper())
}

func loadTool(ctx context.Context, lookuper envconfig.Lookuper) (*ToolConfig, error) {
	var cfg ToolConfig
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("load tool config: %w", err)
	}
	return &cfg, nil
}
