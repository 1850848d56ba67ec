package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	JWT      JWTConfig
	S3       S3Config
	CORS     CORSConfig
	Verifier VerifierConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (c *DBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// S3Config holds object storage settings for review proof files.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// VerifierConfig holds lease verification pipeline settings.
type VerifierConfig struct {
	Provider            string `mapstructure:"provider"`
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	TimeoutSecs         int    `mapstructure:"timeout_secs"`
	ConfidenceThreshold int    `mapstructure:"confidence_threshold"`
	TmpDir              string `mapstructure:"tmp_dir"`
	MaxUploadMB         int64  `mapstructure:"max_upload_mb"`
}

// Load reads configuration from config.yaml (optional) and RENTY_* environment
// variables, with sane defaults for local development.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir := os.Getenv("RENTY_CONFIG_DIR"); dir != "" {
		v.AddConfigPath(dir)
	}

	setDefaults(v)
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if origins := v.GetString("cors.allowed_origins"); origins != "" {
		cfg.CORS.AllowedOrigins = splitAndTrim(origins)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", ":8000")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "renty")
	v.SetDefault("db.password", "renty")
	v.SetDefault("db.name", "renty")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "renty")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "renty-proof-files")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 10)
	v.SetDefault("s3.presign_expiry", 3600)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Verifier defaults
	v.SetDefault("verifier.provider", "gemini")
	v.SetDefault("verifier.api_key", "")
	v.SetDefault("verifier.model", "gemini-2.0-flash")
	v.SetDefault("verifier.timeout_secs", 25)
	v.SetDefault("verifier.confidence_threshold", 60)
	v.SetDefault("verifier.tmp_dir", "")
	v.SetDefault("verifier.max_upload_mb", 10)
}

func bindEnv(v *viper.Viper) {
	envBindings := map[string]string{
		"server.port":                   "RENTY_SERVER_PORT",
		"server.read_timeout":           "RENTY_SERVER_READ_TIMEOUT",
		"server.write_timeout":          "RENTY_SERVER_WRITE_TIMEOUT",
		"server.environment":            "RENTY_SERVER_ENVIRONMENT",
		"db.host":                       "RENTY_DB_HOST",
		"db.port":                       "RENTY_DB_PORT",
		"db.user":                       "RENTY_DB_USER",
		"db.password":                   "RENTY_DB_PASSWORD",
		"db.name":                       "RENTY_DB_NAME",
		"db.sslmode":                    "RENTY_DB_SSLMODE",
		"db.max_open":                   "RENTY_DB_MAX_OPEN",
		"db.max_idle":                   "RENTY_DB_MAX_IDLE",
		"jwt.secret":                    "RENTY_JWT_SECRET",
		"jwt.expiry":                    "RENTY_JWT_EXPIRY",
		"jwt.issuer":                    "RENTY_JWT_ISSUER",
		"s3.region":                     "RENTY_S3_REGION",
		"s3.bucket":                     "RENTY_S3_BUCKET",
		"s3.endpoint":                   "RENTY_S3_ENDPOINT",
		"s3.access_key":                 "RENTY_S3_ACCESS_KEY",
		"s3.secret_key":                 "RENTY_S3_SECRET_KEY",
		"s3.max_file_size_mb":           "RENTY_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":             "RENTY_S3_PRESIGN_EXPIRY",
		"cors.allowed_origins":          "RENTY_CORS_ALLOWED_ORIGINS",
		"verifier.provider":             "RENTY_VERIFIER_PROVIDER",
		"verifier.api_key":              "RENTY_VERIFIER_API_KEY",
		"verifier.model":                "RENTY_VERIFIER_MODEL",
		"verifier.timeout_secs":         "RENTY_VERIFIER_TIMEOUT_SECS",
		"verifier.confidence_threshold": "RENTY_VERIFIER_CONFIDENCE_THRESHOLD",
		"verifier.tmp_dir":              "RENTY_VERIFIER_TMP_DIR",
		"verifier.max_upload_mb":        "RENTY_VERIFIER_MAX_UPLOAD_MB",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			// BindEnv only errors on empty input, which cannot happen here.
			panic(err)
		}
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
