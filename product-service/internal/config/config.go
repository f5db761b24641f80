package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"storefront/shared/authutils"
	"storefront/shared/utils"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env                string          `yaml:"env" env:"ENV" env-default:"development"`
	ServerPort         string          `yaml:"server_port" env:"SERVER_PORT" env-default:"8082"`
	ServiceName        string          `yaml:"service_name" env:"SERVICE_NAME" env-default:"ProductService"`
	CORSAllowedOrigins string          `yaml:"cors_allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:3000"`
	SeedDefaults       bool            `yaml:"seed_defaults" env:"SEED_DEFAULTS" env-default:"true"`
	Log                LogConfig       `yaml:"log"`
	Auth               AuthConfig      `yaml:"auth"`
	RateLimit          RateLimitConfig `yaml:"rate_limit"`
	Redis              RedisConfig     `yaml:"redis"`
}

type LogConfig struct {
	Level    string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Encoding string `yaml:"encoding" env:"LOG_ENCODING" env-default:"json"`
	File     string `yaml:"file" env:"LOG_FILE"`
}

// AuthConfig controls optional bearer-token protection of mutating routes.
// Tokens are verified locally with the same key as the auth service.
type AuthConfig struct {
	Required   bool   `yaml:"required" env:"AUTH_REQUIRED" env-default:"false"`
	Issuer     string `yaml:"issuer" env:"JWT_ISSUER" env-default:"AuthService"`
	Audience   string `yaml:"audience" env:"JWT_AUDIENCE" env-default:"MicroservicesApp"`
	SecretsDir string `yaml:"secrets_dir" env:"SECRETS_DIR" env-default:"/run/secrets"`
	// Секрет не читается из yaml
	Secret string `yaml:"-" env:"-"`
}

type RateLimitConfig struct {
	Requests uint          `yaml:"requests" env:"RATE_LIMIT_REQUESTS" env-default:"60"`
	Window   time.Duration `yaml:"window" env:"RATE_LIMIT_WINDOW" env-default:"1m"`
}

type RedisConfig struct {
	Addr       string `yaml:"addr" env:"REDIS_ADDR"` // Optional: shared rate limiter store
	DB         int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
	SecretsDir string `yaml:"secrets_dir" env:"SECRETS_DIR" env-default:"/run/secrets"`
	// Пароль читается из redis_password или REDIS_PASSWORD, не из yaml
	Password string `yaml:"-" env:"-"`
}

// GetAllowedOrigins splits the CORSAllowedOrigins string into a slice.
func (c *Config) GetAllowedOrigins() []string {
	return utils.SplitAndTrim(c.CORSAllowedOrigins)
}

// LoadConfig reads configPath (yaml, overridden by env) or, when the file is
// missing, the environment only.
func LoadConfig(configPath string) (*Config, error) {
	var cfg Config

	if configPath != "" {
		if _, statErr := os.Stat(configPath); statErr == nil {
			if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
				return nil, fmt.Errorf("ошибка чтения конфигурации %s: %w", configPath, err)
			}
			log.Printf("Loaded configuration from %s", configPath)
			return finalize(&cfg)
		}
		log.Printf("Config file '%s' not found, reading environment only", configPath)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}
	return finalize(&cfg)
}

func finalize(cfg *Config) (*Config, error) {
	if redisPass, err := utils.ReadSecretOrEnv(cfg.Redis.SecretsDir, "redis_password", "REDIS_PASSWORD"); err == nil {
		cfg.Redis.Password = redisPass
	} else if !errors.Is(err, utils.ErrSecretNotFound) {
		return nil, err
	}

	if !cfg.Auth.Required {
		return cfg, nil
	}
	secret, err := utils.ReadSecretOrEnv(cfg.Auth.SecretsDir, "jwt_secret", "JWT_KEY")
	if err != nil {
		return nil, fmt.Errorf("AUTH_REQUIRED is set but jwt signing key is not configured: %w", err)
	}
	if len(secret) < authutils.MinSecretLength {
		return nil, errors.New("jwt secret is too short for HS256")
	}
	cfg.Auth.Secret = secret
	return cfg, nil
}
