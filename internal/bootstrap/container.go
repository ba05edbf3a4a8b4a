package bootstrap

import (
	"context"
	"time"

	"motoservice-be/internal/config"
	"motoservice-be/internal/controller"
	"motoservice-be/internal/pkg/logger"
	"motoservice-be/internal/pkg/serverutils"
	"motoservice-be/internal/repository/memory"
	"motoservice-be/internal/repository/unitofwork"
	"motoservice-be/internal/service"
	"motoservice-be/pkg/admin/abuse"
	"motoservice-be/pkg/admin/audit"
	adminEvents "motoservice-be/pkg/admin/events"
	"motoservice-be/pkg/auth"
	"motoservice-be/pkg/booking/assignment"
	"motoservice-be/pkg/booking/ledger"
	"motoservice-be/pkg/lease"

	pktNats "motoservice-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	BookingController      controller.IBookingController
	CancellationController controller.ICancellationController
	WorkerController       controller.IWorkerController
	AdminController        controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	Sweeper         *service.AssignmentSweeper

	Logger logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	c := &Container{Logger: sysLogger}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Infrastructure
	// NATS
	var eventSink adminEvents.EventSink
	natsPub, err := pktNats.NewPublisher(context.Background(), cfg.Messaging.NatsURL)
	if err != nil {
		sysLogger.Warn("EVENTS", "Failed to connect to NATS, booking events disabled", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		eventSink = natsPub
		c.closers = append(c.closers, natsPub.Close)
	}

	// Redis
	sweepLease := newSweepLease(cfg, sysLogger)
	if closer, ok := sweepLease.(interface{ Close() error }); ok {
		c.closers = append(c.closers, func() { _ = closer.Close() })
	}

	// 4. Domain Components
	eventPublisher := adminEvents.NewNatsPublisher(eventSink, sysLogger)
	recorder := audit.NewStoreRecorder(uowFactory, sysLogger)
	tokenLedger := ledger.NewLedger(sysLogger)
	scorer := abuse.NewScorer(sysLogger)
	reportCache := memory.NewReportCache(cfg.Admin.AbuseReportCacheTTL)

	// 5. Services
	assignmentService := service.NewAssignmentService(
		uowFactory,
		assignment.NewPolicy(),
		recorder,
		eventPublisher,
		sweepLease,
		cfg.Assignment.SweepBatchSize,
		sysLogger,
	)
	bookingService := service.NewBookingService(
		uowFactory,
		assignmentService,
		tokenLedger,
		recorder,
		eventPublisher,
		sysLogger,
		nil,
	)
	cancellationService := service.NewCancellationService(uowFactory, tokenLedger, nil)

	publisherService := service.NewPublisherService(cfg.Messaging.WorkerEventsTopic, pubSub)
	workerService := service.NewWorkerService(uowFactory, publisherService, recorder, sysLogger)
	adminService := service.NewAdminService(uowFactory, scorer, reportCache, assignmentService, sysLogger, nil)

	c.ConsumerService = service.NewConsumerService(
		pubSub,
		cfg.Messaging.WorkerEventsTopic,
		assignmentService,
		sysLogger,
	)
	c.Sweeper = service.NewAssignmentSweeper(assignmentService, cfg.Assignment.SweepInterval, sysLogger)

	// 6. Controllers
	jwtMiddleware := serverutils.NewJwtMiddleware(auth.NewJWTVerifier(cfg.Auth.JwtSecret))

	c.BookingController = controller.NewBookingController(bookingService, jwtMiddleware)
	c.CancellationController = controller.NewCancellationController(cancellationService, jwtMiddleware)
	c.WorkerController = controller.NewWorkerController(workerService, jwtMiddleware)
	c.AdminController = controller.NewAdminController(adminService, jwtMiddleware)

	return c
}

// newSweepLease falls back to a local lease when Redis is not configured or unreachable.
func newSweepLease(cfg *config.Config, log logger.ILogger) service.SweepLease {
	if cfg.Messaging.RedisURL == "" {
		log.Info("SWEEPER", "REDIS_URL not set, sweeping without a shared lease", nil)
		return lease.Local{}
	}

	opt, err := redis.ParseURL(cfg.Messaging.RedisURL)
	if err != nil {
		log.Warn("SWEEPER", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{
			"error": err.Error(),
		})
		opt = &redis.Options{
			Addr: cfg.Messaging.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("SWEEPER", "Failed to connect to Redis, sweeping without a shared lease", map[string]interface{}{
			"error": err.Error(),
		})
		_ = rdb.Close()
		return lease.Local{}
	}

	return &redisSweepLease{
		RedisLease: lease.NewRedisLease(rdb, lease.DefaultKey, cfg.Assignment.SweepInterval/2),
		client:     rdb,
	}
}

type redisSweepLease struct {
	*lease.RedisLease
	client *redis.Client
}

func (l *redisSweepLease) Close() error {
	return l.client.Close()
}

// Close releases outbound connections and flushes the logger.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
