package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpadapter "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/events"
	"fooddelivery/internal/adapters/out/memory"
	"fooddelivery/internal/adapters/out/metrics"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"
	"fooddelivery/internal/pkg/clock"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	clock      clock.Clock
	uowFactory ports.UnitOfWorkFactory
	metrics    *metrics.Metrics
	publisher  ports.EventPublisher
	closers    []func() error
}

// NewCompositionRoot opens the configured store (migrating it for postgres),
// connects Redis when REDIS_ADDR is set and builds the shared dependencies.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config:  config,
		logger:  logger,
		clock:   clock.NewSystem(),
		metrics: metrics.New(),
	}

	switch config.StorageDriver {
	case StoragePostgres:
		gormDB, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{
			TranslateError: true,
			Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		c.closers = append(c.closers, sqlDB.Close)

		if err = postgres.Migrate(ctx, gormDB); err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("migrating postgres: %w", err)
		}
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	default:
		c.uowFactory = memory.NewUnitOfWorkFactory(memory.NewStore())
	}

	publishers := []ports.EventPublisher{
		events.NewLogPublisher(logger),
		events.NewMetricsPublisher(c.metrics),
	}
	if config.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		c.closers = append(c.closers, client.Close)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("connecting to redis at %s: %w", config.RedisAddr, err)
		}
		publishers = append(publishers, events.NewRedisPublisher(client, config.RedisChannel))
	}
	c.publisher = events.NewFanOutPublisher(publishers...)

	return c, nil
}

// Close releases the database and Redis connections.
func (c *CompositionRoot) Close() error {
	var closeErrs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		closeErrs = append(closeErrs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(closeErrs...)
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) CreateUpsertMenuItemCommandHandler() commands.UpsertMenuItemCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpsertMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusesCommandHandler() (commands.AdvanceOrderStatusesCommandHandler, error) {
	advancer, err := services.NewStatusAdvancer(c.config.PreparingDuration, c.config.DeliveryDuration)
	if err != nil {
		return commands.AdvanceOrderStatusesCommandHandler{}, err
	}
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderStatusesCommandHandler(f, advancer, c.clock, c.publisher, c.logger), nil
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	sweeper, err := c.CreateAdvanceOrderStatusesCommandHandler()
	if err != nil {
		return nil, err
	}
	job := jobs.NewOrderStatusJob(&sweeper, c.metrics, c.config.SweepSchedule, c.logger)
	return jobs.NewJobManager(job), nil
}

func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	upsert := c.CreateUpsertMenuItemCommandHandler()
	place := c.CreatePlaceOrderCommandHandler()

	server := httpadapter.NewServer(
		&upsert,
		&place,
		c.CreateGetMenuQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.logger,
	)
	return httpadapter.NewRouter(server, httpadapter.RouterConfig{
		Metrics:      c.metrics,
		Logger:       c.logger,
		RateLimitRPS: c.config.RateLimitRPS,
	})
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
