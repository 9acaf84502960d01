package app

import (
	"testing"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("unexpected http addr: %s", cfg.HTTPAddr)
	}
	if cfg.MetricsAddr != ":9090" {
		t.Errorf("unexpected metrics addr: %s", cfg.MetricsAddr)
	}
	if cfg.PostgresDSN != "" || cfg.RedisAddr != "" || cfg.KafkaBrokers != "" {
		t.Error("external backends must be disabled by default")
	}
	if cfg.TaxRate != 0.18 {
		t.Errorf("unexpected tax rate: %f", cfg.TaxRate)
	}
	if cfg.FlatShippingFee != domain.MoneyFromMinor(4000) {
		t.Errorf("unexpected shipping fee: %d", cfg.FlatShippingFee.Minor())
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("STOREFRONT_HTTP_ADDR", ":8181")
	t.Setenv("STOREFRONT_METRICS_ADDR", ":9191")
	t.Setenv("STOREFRONT_POSTGRES_DSN", "postgres://localhost/storefront")
	t.Setenv("STOREFRONT_REDIS_ADDR", "localhost:6379")
	t.Setenv("STOREFRONT_REDIS_DB", "2")
	t.Setenv("KAFKA_BROKERS", "localhost:9092")
	t.Setenv("STOREFRONT_ALLOWED_ORIGINS", "https://shop.example.com, https://admin.example.com")
	t.Setenv("STOREFRONT_TAX_RATE", "0.05")
	t.Setenv("STOREFRONT_SHIPPING_FEE", "99.50")

	cfg := ConfigFromEnv()

	if cfg.HTTPAddr != ":8181" {
		t.Errorf("unexpected http addr: %s", cfg.HTTPAddr)
	}
	if cfg.MetricsAddr != ":9191" {
		t.Errorf("unexpected metrics addr: %s", cfg.MetricsAddr)
	}
	if cfg.PostgresDSN != "postgres://localhost/storefront" {
		t.Errorf("unexpected dsn: %s", cfg.PostgresDSN)
	}
	if cfg.RedisAddr != "localhost:6379" || cfg.RedisDB != 2 {
		t.Errorf("unexpected redis settings: %s db=%d", cfg.RedisAddr, cfg.RedisDB)
	}
	if cfg.KafkaBrokers != "localhost:9092" {
		t.Errorf("unexpected brokers: %s", cfg.KafkaBrokers)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://admin.example.com" {
		t.Errorf("unexpected origins: %v", cfg.AllowedOrigins)
	}
	if cfg.TaxRate != 0.05 {
		t.Errorf("unexpected tax rate: %f", cfg.TaxRate)
	}
	if cfg.FlatShippingFee != domain.MoneyFromMinor(9950) {
		t.Errorf("unexpected shipping fee: %d", cfg.FlatShippingFee.Minor())
	}
}

func TestConfigFromEnv_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("STOREFRONT_TAX_RATE", "not-a-number")
	t.Setenv("STOREFRONT_SHIPPING_FEE", "40.005")
	t.Setenv("STOREFRONT_REDIS_DB", "two")

	cfg := ConfigFromEnv()

	if cfg.TaxRate != 0.18 {
		t.Errorf("invalid tax rate must keep default, got %f", cfg.TaxRate)
	}
	if cfg.FlatShippingFee != domain.MoneyFromMinor(4000) {
		t.Errorf("invalid fee must keep default, got %d", cfg.FlatShippingFee.Minor())
	}
	if cfg.RedisDB != 0 {
		t.Errorf("invalid redis db must keep default, got %d", cfg.RedisDB)
	}
}
