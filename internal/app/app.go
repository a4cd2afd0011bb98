package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/idanidan29/tripbooker/internal/cache"
	"github.com/idanidan29/tripbooker/internal/clock"
	"github.com/idanidan29/tripbooker/internal/config"
	"github.com/idanidan29/tripbooker/internal/handler"
	"github.com/idanidan29/tripbooker/internal/middleware"
	"github.com/idanidan29/tripbooker/internal/notification"
	"github.com/idanidan29/tripbooker/internal/repository"
	"github.com/idanidan29/tripbooker/internal/router"
	"github.com/idanidan29/tripbooker/internal/scheduler"
	"github.com/idanidan29/tripbooker/internal/service"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	publisher  *notification.WaitlistPublisher
	httpServer *http.Server
	sweeper    *scheduler.Sweeper
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"TripBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	app.initRedis()

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
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

	if err := db.Master.PingContext(context.Background()); err != nil {
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

func (a *App) initRedis() {
	if a.cfg.Redis.Addr == "" {
		a.log.Warn("redis addr not configured, trip cache disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		a.log.Warn("redis unreachable, trip cache disabled",
			logger.String("addr", a.cfg.Redis.Addr),
			logger.String("error", err.Error()),
		)
		return
	}

	a.redis = client
}

func (a *App) initServices() error {
	tripRepo := repository.NewTripRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	inventoryRepo := repository.NewInventoryRepo(a.db)
	cartRepo := repository.NewCartRepo(a.db)
	waitlistRepo := repository.NewWaitlistRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	txRunner := repository.NewTxRunner(a.db)

	publisher, err := notification.NewWaitlistPublisher(a.cfg.Rabbit.URL, a.cfg.Rabbit.Queue, a.log)
	if err != nil {
		return fmt.Errorf("init waitlist publisher: %w", err)
	}
	a.publisher = publisher

	alerter, err := notification.NewTelegramAlerter(a.cfg.Telegram.BotToken, a.cfg.Telegram.OpsChatID, a.log)
	if err != nil {
		return fmt.Errorf("init ops alerter: %w", err)
	}

	clk := clock.NewSystem()
	tripCache := cache.NewTripCache(a.redis, a.cfg.Redis.CacheTTL, a.log)

	tripService := service.NewTripService(tripRepo, tripCache, clk)
	userService := service.NewUserService(userRepo)
	reservationService := service.NewReservationService(
		txRunner, inventoryRepo, cartRepo, waitlistRepo, bookingRepo,
		tripRepo, userRepo, publisher, alerter, tripCache, clk, a.log,
		service.WithHoldTTL(a.cfg.Reservation.HoldTTL),
	)

	a.sweeper = scheduler.New(
		reservationService,
		a.cfg.Sweeper.Interval,
		a.log,
	)

	h := handler.NewHandler(tripService, reservationService, userService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
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

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.sweeper.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
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
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.log.Error("close publisher", logger.String("error", err.Error()))
		}
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Error("close redis", logger.String("error", err.Error()))
		}
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
