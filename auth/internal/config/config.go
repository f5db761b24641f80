package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"storefront/shared/authutils"
	"storefront/shared/utils"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration.
type Config struct {
	Env         string `envconfig:"ENV" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"debug"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"json"`
	LogFile     string `envconfig:"LOG_FILE"`
	ServerPort  string `envconfig:"SERVER_PORT" default:"8081"` // Default port for auth service
	ServiceName string `envconfig:"SERVICE_NAME" default:"AuthService"`

	// JWT Settings. Секретное поле БЕЗ envconfig тега
	JWTSecret   string        `ignored:"true"`
	JWTIssuer   string        `envconfig:"JWT_ISSUER" default:"AuthService"`
	JWTAudience string        `envconfig:"JWT_AUDIENCE" default:"MicroservicesApp"`
	TokenTTL    time.Duration `envconfig:"JWT_TOKEN_TTL" default:"1h"`
	SecretsDir  string        `envconfig:"SECRETS_DIR" default:"/run/secrets"`

	// CORS Settings
	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`

	// Redis is optional: when empty the rate limiter keeps counters in memory.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	RedisPassword string `ignored:"true"`

	// Rate limit for POST /auth/token, per client IP.
	RateLimitRequests uint          `envconfig:"RATE_LIMIT_REQUESTS" default:"10"`
	RateLimitWindow   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
}

// GetAllowedOrigins splits the CORSAllowedOrigins string into a slice.
func (c *Config) GetAllowedOrigins() []string {
	return utils.SplitAndTrim(c.CORSAllowedOrigins)
}

// Validate checks invariants that envconfig tags cannot express.
func (c *Config) Validate() error {
	if len(c.JWTSecret) < authutils.MinSecretLength {
		return fmt.Errorf("jwt secret must be at least %d bytes long", authutils.MinSecretLength)
	}
	if c.TokenTTL <= 0 {
		return errors.New("JWT_TOKEN_TTL must be positive")
	}
	return nil
}

// LoadConfig loads configuration from environment variables and secrets.
// There is no built-in signing key: startup fails unless the jwt_secret
// secret file or JWT_KEY is provided.
func LoadConfig(envFilePath string) (*Config, error) {
	if envFilePath != "" {
		if _, err := os.Stat(envFilePath); err == nil {
			if err := godotenv.Load(envFilePath); err != nil {
				log.Printf("Warning: Could not load %s file: %v", envFilePath, err)
			} else {
				log.Printf("Loaded configuration from %s", envFilePath)
			}
		} else if !os.IsNotExist(err) {
			log.Printf("Warning: Error checking %s file: %v", envFilePath, err)
		}
	}

	var cfg Config
	// Загружаем НЕсекретные переменные из окружения
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error processing env vars: %w", err)
	}

	// Обязательный секрет: файл или JWT_KEY
	secret, err := utils.ReadSecretOrEnv(cfg.SecretsDir, "jwt_secret", "JWT_KEY")
	if err != nil {
		return nil, fmt.Errorf("jwt signing key is not configured: %w", err)
	}
	cfg.JWTSecret = secret

	// Необязательный секрет
	if redisPass, err := utils.ReadSecretOrEnv(cfg.SecretsDir, "redis_password", "REDIS_PASSWORD"); err == nil {
		cfg.RedisPassword = redisPass
	} else if !errors.Is(err, utils.ErrSecretNotFound) {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Println("Configuration loaded successfully.")
	return &cfg, nil
}
