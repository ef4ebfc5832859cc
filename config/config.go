package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Port     string `toml:"port"`
	AppEnv   string `toml:"appEnv"`
	LogLevel string `toml:"logLevel"`

	AccessTokenSecret  string        `toml:"accessTokenSecret"`
	RefreshTokenSecret string        `toml:"refreshTokenSecret"`
	AccessTokenTTL     time.Duration `toml:"accessTokenTTL"`
	RefreshTokenTTL    time.Duration `toml:"refreshTokenTTL"`

	FakeUserAmount    int           `toml:"fakeUserAmount"`
	FakePostAmount    int           `toml:"fakePostAmount"`
	FakeCommentAmount int           `toml:"fakeCommentAmount"`
	RefreshInterval   time.Duration `toml:"refreshInterval"`
	SeedPassword      string        `toml:"seedPassword"`
	BcryptCost        int           `toml:"bcryptCost"`

	CORSAllowedOrigins []string `toml:"corsAllowedOrigins"`

	KafkaAddr  string `toml:"kafkaAddr"`
	KafkaTopic string `toml:"kafkaTopic"`
}

func Default() *Config {
	return &Config{
		Port:               "8080",
		AppEnv:             EnvDevelopment,
		LogLevel:           "info",
		AccessTokenSecret:  "mocksocial-access-secret-change-me",
		RefreshTokenSecret: "mocksocial-refresh-secret-change-me",
		AccessTokenTTL:     10 * time.Minute,
		RefreshTokenTTL:    30 * 24 * time.Hour,
		FakeUserAmount:     100,
		FakePostAmount:     200,
		FakeCommentAmount:  400,
		RefreshInterval:    30 * time.Minute,
		SeedPassword:       "password123",
		BcryptCost:         10,
		CORSAllowedOrigins: []string{"http://localhost:5173", "http://localhost:3000"},
		KafkaTopic:         "mocksocial-logs",
	}
}

// Load builds the configuration from defaults, then the TOML file at path
// (skipped when path is empty), then a .env file in the working directory,
// then the process environment. Later sources win.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil {
		log.Debug("[config] no .env file found, using system environment variables")
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Port = getEnv("PORT", c.Port)
	c.AppEnv = getEnv("APP_ENV", c.AppEnv)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.AccessTokenSecret = getEnv("ACCESS_TOKEN_SECRET", c.AccessTokenSecret)
	c.RefreshTokenSecret = getEnv("REFRESH_TOKEN_SECRET", c.RefreshTokenSecret)
	c.SeedPassword = getEnv("SEED_PASSWORD", c.SeedPassword)
	c.KafkaAddr = getEnv("KAFKA_ADDR", c.KafkaAddr)
	c.KafkaTopic = getEnv("KAFKA_TOPIC", c.KafkaTopic)

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		c.CORSAllowedOrigins = splitList(origins)
	}

	var err error
	for _, d := range []struct {
		key string
		dst *time.Duration
	}{
		{"ACCESS_TOKEN_TTL", &c.AccessTokenTTL},
		{"REFRESH_TOKEN_TTL", &c.RefreshTokenTTL},
		{"REFRESH_INTERVAL", &c.RefreshInterval},
	} {
		if *d.dst, err = getEnvDuration(d.key, *d.dst); err != nil {
			return err
		}
	}

	for _, n := range []struct {
		key string
		dst *int
	}{
		{"FAKE_USER_AMOUNT", &c.FakeUserAmount},
		{"FAKE_POST_AMOUNT", &c.FakePostAmount},
		{"FAKE_COMMENT_AMOUNT", &c.FakeCommentAmount},
		{"BCRYPT_COST", &c.BcryptCost},
	} {
		if *n.dst, err = getEnvInt(n.key, *n.dst); err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.AccessTokenSecret == "" || c.RefreshTokenSecret == "" {
		errs = append(errs, errors.New("token secrets must not be empty"))
	} else if c.AccessTokenSecret == c.RefreshTokenSecret {
		errs = append(errs, errors.New("access and refresh token secrets must differ"))
	}
	if c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 {
		errs = append(errs, errors.New("token TTLs must be positive"))
	}
	if c.FakeUserAmount < 0 || c.FakePostAmount < 0 || c.FakeCommentAmount < 0 {
		errs = append(errs, errors.New("fake data amounts must not be negative"))
	}
	if c.RefreshInterval < 0 {
		errs = append(errs, errors.New("refresh interval must not be negative"))
	}
	if c.SeedPassword == "" {
		errs = append(errs, errors.New("seed password must not be empty"))
	}
	if c.AppEnv != EnvDevelopment && c.AppEnv != EnvProduction {
		errs = append(errs, fmt.Errorf("unknown app env %q", c.AppEnv))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == EnvDevelopment
}

// Level maps LogLevel to a logrus level, defaulting to info.
func (c *Config) Level() log.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
