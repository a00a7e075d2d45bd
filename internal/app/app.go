package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/config"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/handler"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/lock"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/middleware"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/notification"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/repository/memory"
	mongorepo "github.com/guiguil03/Milliers-Coeurs-sub000/internal/repository/mongo"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/repository/postgres"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/router"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/scheduler"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/service"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/service/ports"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const appName = "MilliersCoeurs"

type App struct {
	cfg *config.Config
	log logger.Logger

	db          *dbpg.DB
	mongoClient *mongo.Client
	redis       *redis.Client
	kafka       *notification.KafkaPublisher

	listings     ports.ListingStore
	reservations ports.ReservationStore
	health       []func(ctx context.Context) error

	httpServer         *http.Server
	scheduler          *scheduler.Scheduler
	reservationService *service.ReservationService
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initStorage(); err != nil {
		app.closeResources()
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initServices(); err != nil {
		app.closeResources()
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() error {
	switch a.cfg.Storage.Backend {
	case config.BackendPostgres:
		if err := a.runMigrations(); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		if err := a.initPostgres(); err != nil {
			return fmt.Errorf("init postgres: %w", err)
		}
		a.listings = postgres.NewListingRepo(a.db)
		a.reservations = postgres.NewReservationRepo(a.db)
		a.health = append(a.health, a.db.Master.PingContext)

	case config.BackendMongo:
		db, err := a.initMongo()
		if err != nil {
			return fmt.Errorf("init mongo: %w", err)
		}
		timeouts := mongorepo.Timeouts{
			Read:  a.cfg.Mongo.ReadTimeout,
			Write: a.cfg.Mongo.WriteTimeout,
		}
		a.listings = mongorepo.NewListingRepo(db, timeouts)
		a.reservations = mongorepo.NewReservationRepo(db, timeouts)
		a.health = append(a.health, func(ctx context.Context) error {
			return a.mongoClient.Ping(ctx, readpref.Primary())
		})

	case config.BackendMemory:
		a.log.Warn("using in-memory storage, data is lost on restart")
		a.listings = memory.NewListingRepo()
		a.reservations = memory.NewReservationRepo()

	default:
		return fmt.Errorf("unknown storage backend %q", a.cfg.Storage.Backend)
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "storage ready",
		logger.String("backend", a.cfg.Storage.Backend),
	)
	return nil
}

func (a *App) initPostgres() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		_ = db.Master.Close()
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initMongo() (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Mongo.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(a.cfg.Mongo.URI).
		SetMaxPoolSize(a.cfg.Mongo.MaxPoolSize))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}
	a.mongoClient = client

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}

	db := client.Database(a.cfg.Mongo.Database)
	if err = mongorepo.EnsureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "mongo connected",
		logger.String("database", a.cfg.Mongo.Database),
	)
	return db, nil
}

func (a *App) initLocker() (ports.PairLocker, error) {
	if !a.cfg.Redis.Enabled() {
		return lock.NewKeyedMutex(), nil
	}

	a.redis = redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err := a.redis.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	a.health = append(a.health, func(ctx context.Context) error {
		return a.redis.Ping(ctx).Err()
	})

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis lock enabled",
		logger.String("addr", a.cfg.Redis.Addr),
	)
	return lock.NewRedisLocker(a.redis, lock.RedisOptions{
		Prefix: "milliers:lock:",
		TTL:    a.cfg.Redis.LockTTL,
		Wait:   a.cfg.Redis.LockWait,
	}, a.log), nil
}

func (a *App) initNotifier() (ports.ReservationNotifier, error) {
	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return nil, fmt.Errorf("init telegram: %w", err)
	}
	notifiers := notification.Multi{tg}

	if a.cfg.Kafka.Enabled() {
		a.kafka, err = notification.NewKafkaPublisher(notification.KafkaOptions{
			Brokers:      a.cfg.Kafka.Brokers,
			Topic:        a.cfg.Kafka.Topic,
			MaxAttempts:  a.cfg.Kafka.MaxAttempts,
			BatchTimeout: a.cfg.Kafka.BatchTimeout,
			WriteTimeout: a.cfg.Kafka.WriteTimeout,
		}, a.log)
		if err != nil {
			return nil, fmt.Errorf("init kafka: %w", err)
		}
		notifiers = append(notifiers, a.kafka)

		a.log.LogAttrs(context.Background(), logger.InfoLevel, "kafka events enabled",
			logger.String("topic", a.cfg.Kafka.Topic),
		)
	}

	return notifiers, nil
}

func (a *App) initServices() error {
	locker, err := a.initLocker()
	if err != nil {
		return fmt.Errorf("init locker: %w", err)
	}

	notifier, err := a.initNotifier()
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	listingService := service.NewListingService(a.listings, a.reservations)
	reservationService := service.NewReservationService(a.reservations, a.listings, locker, notifier, a.log)
	a.reservationService = reservationService

	a.scheduler = scheduler.New(
		reservationService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(listingService, reservationService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		a.checkHealth,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.Metrics(),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) checkHealth(ctx context.Context) error {
	for _, check := range a.health {
		if err := check(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		a.closeResources()
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.closeResources()
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.reservationService.Close(shutdownCtx); err != nil {
		a.log.Warn("pending notifications not delivered", logger.String("error", err.Error()))
	}

	a.closeResources()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

// closeResources releases whatever was opened so far; it is also used when
// New fails halfway.
func (a *App) closeResources() {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.WriteTimeout)
	defer cancel()

	if a.kafka != nil {
		if err := a.kafka.Close(); err != nil {
			a.log.Error("close kafka writer", logger.String("error", err.Error()))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Error("close redis", logger.String("error", err.Error()))
		}
	}
	if a.mongoClient != nil {
		if err := a.mongoClient.Disconnect(ctx); err != nil {
			a.log.Error("disconnect mongo", logger.String("error", err.Error()))
		}
	}
	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			a.log.Error("close db", logger.String("error", err.Error()))
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, a.cfg.Postgres.MigrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
