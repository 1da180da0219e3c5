package cmd

import (
	"context"
	"log/slog"
	"os"
	"time"

	httpin "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/kafka"
	"restaurant/internal/adapters/out/kitchenriders"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/purgomalum"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/jobs"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"gorm.io/gorm"
)

const (
	profanityServiceTimeout = 5 * time.Second
	courierServiceTimeout   = 10 * time.Second

	defaultMenusCacheTTL            = time.Minute
	defaultMenuRevalidationSchedule = "*/5 * * * *"
)

type CompositionRoot struct {
	configs     Config
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	redisClient *redis.Client
	kafkaWriter *kafkago.Writer
	logger      *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	var redisClient *redis.Client
	if configs.RedisHost != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: configs.RedisHost})
	}

	// The Hash balancer keeps all events of one product on one partition, so
	// consumers observe a product's price changes in order.
	kafkaWriter := &kafkago.Writer{
		Addr:     kafkago.TCP(configs.KafkaHost),
		Topic:    configs.KafkaPriceChangedTopic,
		Balancer: &kafkago.Hash{},
	}

	return CompositionRoot{
		configs:     configs,
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		redisClient: redisClient,
		kafkaWriter: kafkaWriter,
		logger:      slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

// Close releases the connections the root owns. The gorm DB is owned by the
// caller that opened it.
func (c *CompositionRoot) Close() error {
	if err := c.kafkaWriter.Close(); err != nil {
		return err
	}

	if c.redisClient != nil {
		return c.redisClient.Close()
	}

	return nil
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f, purgomalum.NewClient(profanityServiceTimeout))
}

func (c *CompositionRoot) CreateChangeProductPriceCommandHandler() commands.ChangeProductPriceCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeProductPriceCommandHandler(f, kafka.NewPriceChangePublisher(c.kafkaWriter))
}

func (c *CompositionRoot) CreateCreateMenuGroupCommandHandler() commands.CreateMenuGroupCommandHandler {
	var f commands.MenuGroupUoWFactory = FuncMenuGroupUoWFactory(func() commands.MenuGroupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMenuGroupCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMenuCommandHandler() commands.CreateMenuCommandHandler {
	return commands.NewCreateMenuCommandHandler(c.menuUoWFactory(), purgomalum.NewClient(profanityServiceTimeout))
}

func (c *CompositionRoot) CreateChangeMenuPriceCommandHandler() commands.ChangeMenuPriceCommandHandler {
	return commands.NewChangeMenuPriceCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateDisplayMenuCommandHandler() commands.DisplayMenuCommandHandler {
	return commands.NewDisplayMenuCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateHideMenuCommandHandler() commands.HideMenuCommandHandler {
	return commands.NewHideMenuCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreatePropagateProductPriceCommandHandler() commands.PropagateProductPriceCommandHandler {
	return commands.NewPropagateProductPriceCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderTableCommandHandler() commands.CreateOrderTableCommandHandler {
	return commands.NewCreateOrderTableCommandHandler(c.orderTableUoWFactory())
}

func (c *CompositionRoot) CreateOccupyOrderTableCommandHandler() commands.OccupyOrderTableCommandHandler {
	return commands.NewOccupyOrderTableCommandHandler(c.orderTableUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	dispatcher := kitchenriders.NewClient(c.configs.CourierServiceURL, courierServiceTimeout)
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory(), dispatcher)
}

func (c *CompositionRoot) CreateServeOrderCommandHandler() commands.ServeOrderCommandHandler {
	return commands.NewServeOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateStartDeliveringCommandHandler() commands.StartDeliveringCommandHandler {
	return commands.NewStartDeliveringCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenusQueryHandler() queries.GetMenusQueryHandler {
	return queries.NewGetMenusQueryHandler(c.gormDB, c.redisClient, c.menusCacheTTL())
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateProductCommandHandler(),
		c.CreateChangeProductPriceCommandHandler(),
		c.CreateCreateMenuGroupCommandHandler(),
		c.CreateCreateMenuCommandHandler(),
		c.CreateChangeMenuPriceCommandHandler(),
		c.CreateDisplayMenuCommandHandler(),
		c.CreateHideMenuCommandHandler(),
		c.CreateCreateOrderTableCommandHandler(),
		c.CreateOccupyOrderTableCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateAcceptOrderCommandHandler(),
		c.CreateServeOrderCommandHandler(),
		c.CreateStartDeliveringCommandHandler(),
		c.CreateMarkDeliveredCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateGetProductsQueryHandler(),
		c.CreateGetMenusQueryHandler(),
		c.CreateGetUncompletedOrdersQueryHandler(),
		queries.NewMenusCacheInvalidator(c.redisClient),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers: []string{c.configs.KafkaHost},
		GroupID: c.configs.KafkaConsumerGroup,
		Topic:   c.configs.KafkaPriceChangedTopic,
	})

	consumer := kafka.NewPriceChangeConsumer(reader, c.createPriceChangeHandler(), c.logger)

	return jobs.NewJobManager(
		jobs.NewPriceChangeConsumerJob(consumer, c.logger),
		jobs.NewMenuRevalidationJob(
			c.CreateGetProductsQueryHandler(),
			c.CreatePropagateProductPriceCommandHandler(),
			c.menuRevalidationSchedule(),
			c.logger,
		),
	)
}

// createPriceChangeHandler adapts the propagation command handler to the
// consumer callback. The handler re-reads the stored product price, so
// redelivered messages are harmless.
func (c *CompositionRoot) createPriceChangeHandler() kafka.PriceChangeHandler {
	handler := c.CreatePropagateProductPriceCommandHandler()

	return func(ctx context.Context, productID kernel.UUID) error {
		command, err := commands.NewPropagateProductPriceCommand(productID)
		if err != nil {
			return err
		}
		return handler.Handle(ctx, command)
	}
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderTableUoWFactory() commands.OrderTableUoWFactory {
	return FuncOrderTableUoWFactory(func() commands.OrderTableUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menusCacheTTL() time.Duration {
	ttl, err := time.ParseDuration(c.configs.MenusCacheTTL)
	if err != nil || ttl <= 0 {
		return defaultMenusCacheTTL
	}
	return ttl
}

func (c *CompositionRoot) menuRevalidationSchedule() string {
	if c.configs.MenuRevalidationSchedule == "" {
		return defaultMenuRevalidationSchedule
	}
	return c.configs.MenuRevalidationSchedule
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncMenuGroupUoWFactory func() commands.MenuGroupUoW

func (f FuncMenuGroupUoWFactory) Create() commands.MenuGroupUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderTableUoWFactory func() commands.OrderTableUoW

func (f FuncOrderTableUoWFactory) Create() commands.OrderTableUoW {
	return f()
}
