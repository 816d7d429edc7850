package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type ServerConfig struct {
	Port string
}

type MongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type AssetsConfig struct {
	BaseURL        string
	CloudName      string
	APIKey         string
	APISecret      string
	Folder         string
	Transformation string
	Timeout        time.Duration
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type LoggingConfig struct {
	Directory string
	Level     string
	Format    string
}

type SecurityConfig struct {
	JWTSecret string
}

type Config struct {
	Server   ServerConfig
	Mongo    MongoConfig
	CORS     CORSConfig
	Assets   AssetsConfig
	Kafka    KafkaConfig
	Logging  LoggingConfig
	Security SecurityConfig
}

// Load reads the configuration from the process environment and applies the
// documented defaults. It fails fast on values that would only surface as
// runtime errors later.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envOr("PORT", "3001"),
		},
		Mongo: MongoConfig{
			URI:      envOr("MONGODB_URI", "mongodb://localhost:27017"),
			Database: envOr("MONGODB_DATABASE", "fest"),
			Timeout:  envDuration("MONGODB_TIMEOUT", 30*time.Second),
		},
		CORS: CORSConfig{
			AllowedOrigins: envList("ALLOWED_ORIGINS", []string{
				"https://festb2b.netlify.app",
				"http://localhost:3000",
			}),
		},
		Assets: AssetsConfig{
			BaseURL:        os.Getenv("CLOUDINARY_BASE_URL"),
			CloudName:      os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:         os.Getenv("CLOUDINARY_API_KEY"),
			APISecret:      os.Getenv("CLOUDINARY_API_SECRET"),
			Folder:         envOr("CLOUDINARY_FOLDER", "fest"),
			Transformation: envOr("CLOUDINARY_TRANSFORMATION", "w_1200,q_auto"),
			Timeout:        envDuration("CLOUDINARY_TIMEOUT", 10*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers: envList("KAFKA_BROKERS", nil),
			Topic:   envOr("KAFKA_TOPIC", "fest.changes"),
		},
		Logging: LoggingConfig{
			Directory: envOr("LOG_DIR", "./logs"),
			Level:     envOr("LOG_LEVEL", "info"),
			Format:    envOr("LOG_FORMAT", "text"),
		},
		Security: SecurityConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
	}

	if strings.TrimSpace(cfg.Mongo.URI) == "" {
		return nil, fmt.Errorf("MONGODB_URI must not be blank")
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		return nil, fmt.Errorf("ALLOWED_ORIGINS must list at least one origin")
	}
	if cfg.Assets.CloudName != "" && (cfg.Assets.APIKey == "" || cfg.Assets.APISecret == "") {
		return nil, fmt.Errorf("CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET are required when CLOUDINARY_CLOUD_NAME is set")
	}
	return cfg, nil
}

// AssetsConfigured reports whether the asset host account is complete.
func (c *Config) AssetsConfigured() bool {
	return c.Assets.CloudName != "" && c.Assets.APIKey != "" && c.Assets.APISecret != ""
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	values := []string{}
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return fallback
	}
	return values
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	if seconds, err := strconv.Atoi(raw); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if parsed, err := time.ParseDuration(raw); err == nil {
		return parsed
	}
	return fallback
}
