package app

import (
	"os"
	"strconv"
	"strings"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Config описывает настройки запуска приложения.
type Config struct {
	// HTTPAddr — адрес browser-facing JSON API.
	HTTPAddr string
	// MetricsAddr — адрес /metrics и health-проверок.
	MetricsAddr string
	// PostgresDSN включает PostgreSQL-хранилище; пустое значение
	// означает in-memory хранилище со встроенным каталогом.
	PostgresDSN string
	// RedisAddr включает Redis для корзин и списков желаний;
	// пустое значение означает in-memory вариант.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	// KafkaBrokers включает публикацию событий заказов; список через запятую.
	KafkaBrokers string
	// AllowedOrigins — CORS-источники фронтенда.
	AllowedOrigins []string
	// TaxRate — ставка налога от промежуточной суммы.
	TaxRate float64
	// FlatShippingFee — фиксированная стоимость доставки без Prime.
	FlatShippingFee domain.Money
}

// DefaultConfig возвращает конфигурацию локальной разработки:
// in-memory хранилища, налог 18%, доставка 40.00.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:        ":8080",
		MetricsAddr:     ":9090",
		AllowedOrigins:  []string{"*"},
		TaxRate:         0.18,
		FlatShippingFee: domain.MoneyFromMinor(4000),
	}
}

// ConfigFromEnv накладывает переменные окружения STOREFRONT_* на дефолты.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("STOREFRONT_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("STOREFRONT_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
	if v := os.Getenv("STOREFRONT_POSTGRES_DSN"); v != "" {
		cfg.PostgresDSN = v
	}
	if v := os.Getenv("STOREFRONT_REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("STOREFRONT_REDIS_PASSWORD"); v != "" {
		cfg.RedisPassword = v
	}
	if v := os.Getenv("STOREFRONT_REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.RedisDB = db
		}
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.KafkaBrokers = v
	}
	if v := os.Getenv("STOREFRONT_ALLOWED_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.AllowedOrigins = origins
	}
	if v := os.Getenv("STOREFRONT_TAX_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil && rate >= 0 {
			cfg.TaxRate = rate
		}
	}
	if v := os.Getenv("STOREFRONT_SHIPPING_FEE"); v != "" {
		if fee, err := domain.ParseMoney(v); err == nil && fee >= 0 {
			cfg.FlatShippingFee = fee
		}
	}

	return cfg
}
