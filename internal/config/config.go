// Package config loads service settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Env  string
	HTTP struct {
		Port int
	}
	Catalog struct {
		File           string
		DatabaseURL    string
		Table          string
		RedisAddr      string
		UpdatesChannel string
	}
	Audit struct {
		Brokers []string
		Topic   string
	}
	DynamoDB struct {
		Region         string
		Endpoint       string
		EstimatesTable string
	}
	Engine struct {
		Name    string
		Version string
	}
}

func Load() (Config, error) {
	var cfg Config
	var err error
	cfg.Env = envOrDefault("APP_ENV", "production")
	if cfg.HTTP.Port, err = envOrDefaultInt("HTTP_PORT", 8080); err != nil {
		return Config{}, err
	}

	cfg.Catalog.File = os.Getenv("CATALOG_FILE")
	cfg.Catalog.DatabaseURL = os.Getenv("CATALOG_DATABASE_URL")
	cfg.Catalog.Table = envOrDefault("CATALOG_TABLE", "rule_catalogs")
	cfg.Catalog.RedisAddr = os.Getenv("REDIS_ADDR")
	cfg.Catalog.UpdatesChannel = envOrDefault("CATALOG_UPDATES_CHANNEL", "pricing:catalog:updated")

	cfg.Audit.Brokers = splitList(os.Getenv("KAFKA_BROKERS"))
	cfg.Audit.Topic = envOrDefault("AUDIT_TOPIC", "estimate-audit")

	cfg.DynamoDB.Region = envOrDefault("AWS_REGION", "us-east-1")
	cfg.DynamoDB.Endpoint = os.Getenv("DYNAMODB_ENDPOINT")
	cfg.DynamoDB.EstimatesTable = envOrDefault("ESTIMATES_TABLE", "estimates")

	cfg.Engine.Name = os.Getenv("ENGINE_NAME")
	cfg.Engine.Version = os.Getenv("ENGINE_VERSION")

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return Config{}, fmt.Errorf("HTTP_PORT out of range: %d", cfg.HTTP.Port)
	}
	if cfg.Catalog.File != "" && cfg.Catalog.DatabaseURL != "" {
		return Config{}, fmt.Errorf("CATALOG_FILE and CATALOG_DATABASE_URL are mutually exclusive")
	}
	return cfg, nil
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "local"
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s is not an integer: %q", key, v)
	}
	return n, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
