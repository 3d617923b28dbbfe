package main

import (
	"context"
	"fmt"

	bulkapp "github.com/erp/bizhub/internal/application/bulk"
	catalogapp "github.com/erp/bizhub/internal/application/catalog"
	commerceapp "github.com/erp/bizhub/internal/application/commerce"
	financeapp "github.com/erp/bizhub/internal/application/finance"
	identityapp "github.com/erp/bizhub/internal/application/identity"
	inventoryapp "github.com/erp/bizhub/internal/application/inventory"
	mfgapp "github.com/erp/bizhub/internal/application/manufacturing"
	partnerapp "github.com/erp/bizhub/internal/application/partner"
	reportapp "github.com/erp/bizhub/internal/application/report"
	tradeapp "github.com/erp/bizhub/internal/application/trade"
	"github.com/erp/bizhub/internal/domain/commerce"
	"github.com/erp/bizhub/internal/infrastructure/auth"
	"github.com/erp/bizhub/internal/infrastructure/config"
	"github.com/erp/bizhub/internal/infrastructure/event"
	"github.com/erp/bizhub/internal/infrastructure/lock"
	"github.com/erp/bizhub/internal/infrastructure/persistence"
	"github.com/erp/bizhub/internal/infrastructure/reporting"
	"github.com/erp/bizhub/internal/infrastructure/storage"
	"github.com/erp/bizhub/internal/infrastructure/telemetry"
	"github.com/erp/bizhub/internal/interfaces/http/handler"
	"github.com/erp/bizhub/internal/interfaces/http/middleware"
	"github.com/erp/bizhub/internal/interfaces/http/router"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// infrastructure holds the process-wide adapters. Redis, Kafka, S3 and
// Prometheus are optional and fall back to in-process implementations.
type infrastructure struct {
	redis     *redis.Client
	locker    lock.Locker
	blacklist auth.TokenBlacklist
	limiter   middleware.Limiter
	storage   catalogapp.ObjectStorage
	bus       *event.Bus
	kafka     *event.KafkaForwarder
	metrics   *telemetry.Metrics
	reports   *reporting.Queries
	logger    *zap.Logger
}

func newInfrastructure(ctx context.Context, cfg *config.Config, db *persistence.Database, log *zap.Logger) (*infrastructure, error) {
	infra := &infrastructure{
		bus:    event.NewBus(log),
		logger: log,
	}

	if cfg.Redis.Enabled {
		infra.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := infra.redis.Ping(ctx).Err(); err != nil {
			_ = infra.redis.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		infra.locker = lock.NewRedisLocker(infra.redis, "bizhub:lock:")
		infra.blacklist = auth.NewRedisTokenBlacklist(infra.redis)
		infra.limiter = middleware.NewRedisRateLimiter(infra.redis, "bizhub:ratelimit:auth:", cfg.HTTP.AuthRateLimit, cfg.HTTP.AuthRateWindow)
		log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr))
	} else {
		infra.locker = lock.NewLocalLocker()
		infra.blacklist = auth.NewInMemoryTokenBlacklist()
		infra.limiter = middleware.NewRateLimiter(cfg.HTTP.AuthRateLimit, cfg.HTTP.AuthRateWindow)
		log.Warn("Redis disabled, using in-process locks, token blacklist and rate limiter")
	}

	if cfg.Storage.Enabled {
		s3, err := storage.NewS3ObjectStorage(cfg.Storage, log)
		if err != nil {
			infra.Close()
			return nil, err
		}
		if err := s3.EnsureBucket(ctx); err != nil {
			log.Warn("Failed to ensure image bucket", zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
		}
		infra.storage = s3
	} else {
		local := storage.NewLocalObjectStorage("http://localhost:" + cfg.App.Port + "/media")
		local.Expiration = cfg.Storage.PresignExpiration
		infra.storage = local
	}

	if cfg.Telemetry.MetricsEnabled {
		infra.metrics = telemetry.NewMetrics()
		infra.bus.Subscribe("metrics", infra.metrics)
	}

	if cfg.Events.Enabled {
		infra.kafka = event.NewKafkaForwarder(cfg.Events)
		infra.bus.Subscribe("kafka", infra.kafka)
		log.Info("Kafka event forwarding enabled",
			zap.Strings("brokers", cfg.Events.Brokers),
			zap.String("topic", cfg.Events.Topic),
		)
	}

	sqlxDB, err := db.SQLX("postgres")
	if err != nil {
		infra.Close()
		return nil, err
	}
	infra.reports = reporting.NewQueries(sqlxDB)

	return infra, nil
}

// Close releases the connections opened by newInfrastructure
func (i *infrastructure) Close() {
	if i.kafka != nil {
		if err := i.kafka.Close(); err != nil {
			i.logger.Error("Error closing kafka writer", zap.Error(err))
		}
	}
	if i.redis != nil {
		if err := i.redis.Close(); err != nil {
			i.logger.Error("Error closing redis client", zap.Error(err))
		}
	}
}

// application is the handler set plus the services the middleware needs
type application struct {
	router.Handlers
	authService *identityapp.AuthService
}

func newHandlers(cfg *config.Config, db *persistence.Database, infra *infrastructure, log *zap.Logger) application {
	gdb := db.DB

	userRepo := persistence.NewGormUserRepository(gdb)
	companyRepo := persistence.NewGormCompanyRepository(gdb)
	contactRepo := persistence.NewGormContactRepository(gdb)
	sellerProfileRepo := persistence.NewGormSellerProfileRepository(gdb)
	categoryRepo := persistence.NewGormCategoryRepository(gdb)
	taxRepo := persistence.NewGormTaxRepository(gdb)
	productRepo := persistence.NewGormProductRepository(gdb)
	imageRepo := persistence.NewGormProductImageRepository(gdb)
	purchaseOrderRepo := persistence.NewGormPurchaseOrderRepository(gdb)
	salesOrderRepo := persistence.NewGormSalesOrderRepository(gdb)
	billRepo := persistence.NewGormVendorBillRepository(gdb)
	invoiceRepo := persistence.NewGormCustomerInvoiceRepository(gdb)
	movementRepo := persistence.NewGormStockMovementRepository(gdb)
	cartRepo := persistence.NewGormCartRepository(gdb)
	orderRepo := persistence.NewGormOrderRepository(gdb)
	listingRepo := persistence.NewGormSellerProductRepository(gdb)
	workCenterRepo := persistence.NewGormWorkCenterRepository(gdb)
	mfgOrderRepo := persistence.NewGormManufacturingOrderRepository(gdb)
	workOrderRepo := persistence.NewGormWorkOrderRepository(gdb)
	bulkRepo := persistence.NewGormBulkRepository(gdb)

	txScope := persistence.NewGormTransactionScope(gdb)
	sequencer := persistence.NewSequencer(gdb, infra.locker, cfg.Sequencer.LockTTL, cfg.Sequencer.LockWait)

	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, infra.blacklist, log)
	userService := identityapp.NewUserService(userRepo, log)

	companyService := partnerapp.NewCompanyService(companyRepo, log)
	contactService := partnerapp.NewContactService(contactRepo, companyRepo, log)
	sellerProfileService := partnerapp.NewSellerProfileService(sellerProfileRepo, log)

	categoryService := catalogapp.NewCategoryService(categoryRepo)
	taxService := catalogapp.NewTaxService(taxRepo, companyRepo)
	productService := catalogapp.NewProductService(productRepo, categoryRepo, taxRepo, companyRepo, log)
	imageService := catalogapp.NewImageService(productRepo, imageRepo, infra.storage, log)

	purchaseOrderService := tradeapp.NewPurchaseOrderService(txScope, sequencer, purchaseOrderRepo, contactRepo, companyRepo, productRepo, log)
	purchaseOrderService.SetEventPublisher(infra.bus)
	salesOrderService := tradeapp.NewSalesOrderService(txScope, sequencer, salesOrderRepo, contactRepo, companyRepo, productRepo, log)
	salesOrderService.SetEventPublisher(infra.bus)

	financeService := financeapp.NewFinanceService(billRepo, invoiceRepo, financeapp.WithLogger(log))
	inventoryService := inventoryapp.NewInventoryService(txScope, movementRepo, productRepo, companyRepo, log)

	pricing := commerce.Pricing{TaxRate: cfg.Commerce.TaxRate, DeliveryFee: cfg.Commerce.DeliveryFee}
	cartService := commerceapp.NewCartService(cartRepo, productRepo, log)
	orderService := commerceapp.NewOrderService(txScope, sequencer, cartRepo, orderRepo, pricing, log)
	orderService.SetEventPublisher(infra.bus)
	sellerProductService := commerceapp.NewSellerProductService(listingRepo, productRepo, cfg.Commerce.CommissionRate, log)

	workCenterService := mfgapp.NewWorkCenterService(workCenterRepo, log)
	mfgOrderService := mfgapp.NewManufacturingOrderService(txScope, sequencer, mfgOrderRepo, workOrderRepo, workCenterRepo, log)
	workOrderService := mfgapp.NewWorkOrderService(txScope, workOrderRepo, workCenterRepo, log)

	bulkService := bulkapp.NewBulkService(bulkRepo, log)
	reportService := reportapp.NewReportService(infra.reports, infra.reports, infra.reports, reportapp.Settings{
		CommissionRate:    cfg.Commerce.CommissionRate,
		LowStockThreshold: cfg.Commerce.LowStockThreshold,
	}, log)

	checks := map[string]handler.HealthCheck{"database": db.Ping}
	if infra.redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return infra.redis.Ping(ctx).Err()
		}
	}

	return application{
		authService: authService,
		Handlers: router.Handlers{
			System:             handler.NewSystemHandler(cfg.App.Name, version, checks),
			Auth:               handler.NewAuthHandler(authService),
			User:               handler.NewUserHandler(userService),
			Company:            handler.NewCompanyHandler(companyService),
			Contact:            handler.NewContactHandler(contactService),
			SellerProfile:      handler.NewSellerProfileHandler(sellerProfileService),
			Category:           handler.NewCategoryHandler(categoryService),
			Tax:                handler.NewTaxHandler(taxService),
			Product:            handler.NewProductHandler(productService, imageService),
			PurchaseOrder:      handler.NewPurchaseOrderHandler(purchaseOrderService),
			SalesOrder:         handler.NewSalesOrderHandler(salesOrderService),
			Finance:            handler.NewFinanceHandler(financeService),
			Inventory:          handler.NewInventoryHandler(inventoryService),
			Cart:               handler.NewCartHandler(cartService),
			Order:              handler.NewOrderHandler(orderService),
			SellerProduct:      handler.NewSellerProductHandler(sellerProductService),
			WorkCenter:         handler.NewWorkCenterHandler(workCenterService),
			ManufacturingOrder: handler.NewManufacturingOrderHandler(mfgOrderService),
			WorkOrder:          handler.NewWorkOrderHandler(workOrderService),
			Bulk:               handler.NewBulkHandler(bulkService),
			Report:             handler.NewReportHandler(reportService),
		},
	}
}
