package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/health"
	"github.com/vladislavdragonenkov/storefront/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/storefront/internal/service/checkout"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
	"github.com/vladislavdragonenkov/storefront/internal/storage/postgres"
	"github.com/vladislavdragonenkov/storefront/internal/storage/redis"
	"github.com/vladislavdragonenkov/storefront/internal/storage/seed"
)

// Dependencies содержит все зависимости приложения.
type Dependencies struct {
	Catalog  domain.CatalogStore
	Orders   domain.OrderRepository
	Cart     domain.CartStore
	Wishlist domain.WishlistStore
	Reviews  domain.ReviewRepository
	Checkout *checkout.Service
	Logger   *log.Entry

	pg       *postgres.Store
	rdb      *redis.Client
	producer *kafka.Producer
}

// NewDependencies собирает зависимости по конфигурации.
// Пустой PostgresDSN даёт in-memory хранилища со встроенным каталогом,
// пустой RedisAddr — in-memory корзины; Kafka всегда опциональна.
func NewDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*Dependencies, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	deps := &Dependencies{Logger: logger}

	if cfg.PostgresDSN != "" {
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := store.EnsureSchema(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
		deps.pg = store
		deps.Catalog = postgres.NewCatalogRepository(store)
		deps.Orders = postgres.NewOrderRepository(store)
		deps.Reviews = postgres.NewReviewRepository(store)
		logger.Info("using postgres storage")
	} else {
		data := seed.MustLoad()
		deps.Catalog = memory.NewCatalogStore(data.Products, data.Categories, data.HeroSlides, data.GridCards, data.Deals)
		deps.Orders = memory.NewOrderRepository()
		deps.Reviews = memory.NewReviewRepository()
		logger.Info("using in-memory storage with embedded catalog")
	}

	if cfg.RedisAddr != "" {
		client, err := redis.Open(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			deps.Close()
			return nil, fmt.Errorf("open redis: %w", err)
		}
		deps.rdb = client
		deps.Cart = redis.NewCartStore(client)
		deps.Wishlist = redis.NewWishlistStore(client)
		logger.Info("using redis for carts and wishlists")
	} else {
		deps.Cart = memory.NewCartStore()
		deps.Wishlist = memory.NewWishlistStore()
		logger.Info("using in-memory carts and wishlists")
	}

	producer, err := initKafkaProducer(cfg.KafkaBrokers, logger)
	if err == nil && producer != nil {
		deps.producer = producer
	}

	checkoutCfg := checkout.Config{
		TaxRate:         cfg.TaxRate,
		FlatShippingFee: cfg.FlatShippingFee,
	}
	checkoutLogger := logger.WithField("component", "checkout")
	if deps.producer != nil {
		deps.Checkout = checkout.NewServiceWithEvents(deps.Catalog, deps.Orders, deps.producer, checkoutCfg, checkoutLogger)
	} else {
		deps.Checkout = checkout.NewService(deps.Catalog, deps.Orders, checkoutCfg, checkoutLogger)
	}

	return deps, nil
}

// RegisterHealthCheckers добавляет проверки внешних зависимостей.
func (d *Dependencies) RegisterHealthCheckers(handler *health.Handler) {
	if d.pg != nil {
		handler.RegisterChecker("postgres", health.NewSimpleChecker("postgres", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
			defer cancel()
			return d.pg.Ping(ctx)
		}))
	}
	if d.rdb != nil {
		handler.RegisterChecker("redis", health.NewSimpleChecker("redis", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
			defer cancel()
			return d.rdb.Ping(ctx)
		}))
	}
}

// Close освобождает внешние подключения.
func (d *Dependencies) Close() {
	closeKafka(d.producer, d.Logger)
	if d.rdb != nil {
		if err := d.rdb.Close(); err != nil {
			d.Logger.WithError(err).Warn("failed to close redis client")
		}
	}
	if d.pg != nil {
		if err := d.pg.Close(); err != nil {
			d.Logger.WithError(err).Warn("failed to close postgres store")
		}
	}
}
