package config

import (
	"reflect"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"APP_ENV", "HTTP_PORT", "CATALOG_FILE", "CATALOG_DATABASE_URL", "KAFKA_BROKERS", "ESTIMATES_TABLE"} {
			t.Setenv(k, "")
		}
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.HTTP.Port != 8080 || cfg.Env != "production" || cfg.Catalog.Table != "rule_catalogs" || cfg.DynamoDB.EstimatesTable != "estimates" {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
		if cfg.Audit.Brokers != nil {
			t.Fatalf("expected no brokers, got %v", cfg.Audit.Brokers)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("CATALOG_FILE", "")
		t.Setenv("CATALOG_DATABASE_URL", "")
		t.Setenv("KAFKA_BROKERS", " kafka-1:9092, ,kafka-2:9092")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.HTTP.Port != 9090 || !cfg.IsDevelopment() {
			t.Fatalf("unexpected config: %+v", cfg)
		}
		if !reflect.DeepEqual(cfg.Audit.Brokers, []string{"kafka-1:9092", "kafka-2:9092"}) {
			t.Fatalf("unexpected brokers: %v", cfg.Audit.Brokers)
		}
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "70000")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unparsable port", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "abc")
		_, err := Load()
		if err == nil || !strings.Contains(err.Error(), "HTTP_PORT") {
			t.Fatalf("expected HTTP_PORT error, got %v", err)
		}
	})

	t.Run("both catalog sources", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "")
		t.Setenv("CATALOG_FILE", "catalog.yaml")
		t.Setenv("CATALOG_DATABASE_URL", "postgres://localhost/pricing")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})
}
