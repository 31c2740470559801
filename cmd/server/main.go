package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"golang.org/x/crypto/bcrypt"

	"campusevents/config"
	"campusevents/internal/adapters/auth"
	"campusevents/internal/adapters/email"
	delivery "campusevents/internal/delivery/http"
	"campusevents/internal/delivery/http/controllers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/jobs"
	"campusevents/internal/repository/postgres"
	"campusevents/internal/services"
)

const (
	requestTimeout = 10 * time.Second
	pruneSchedule  = "@hourly"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.PingContext(context.Background()); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}
	logger.Info("connected to postgres")

	// Boot migration. Warnings only: the schema is idempotent and prod may
	// run migrations out of band.
	if migration, err := os.ReadFile("db/migrations/001_init.sql"); err != nil {
		logger.Warn("migration file not found, skipping", "err", err)
	} else if _, err := db.Exec(string(migration)); err != nil {
		logger.Warn("migration failed", "err", err)
	} else {
		logger.Info("migration applied")
	}

	accountRepo := postgres.NewAccountRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	relRepo := postgres.NewRelationshipRepository(db)

	authenticator := auth.NewJWTAuthenticator(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("mailer init", "err", err)
		os.Exit(1)
	}

	accountService := services.NewAccountService(accountRepo, hasher, authenticator, cfg.TokenExpiry, mailer, logger, requestTimeout)
	eventService := services.NewEventService(eventRepo, requestTimeout)
	timelineService := services.NewTimelineService(eventRepo, relRepo, logger, requestTimeout, cfg.FetchTimeout)
	relationshipService := services.NewRelationshipService(relRepo, eventRepo, accountRepo, requestTimeout)
	searchService := services.NewSearchService(eventRepo, accountRepo, requestTimeout)

	router := delivery.NewRouter(delivery.Controllers{
		Timeline:     controllers.NewTimelineController(logger, timelineService),
		Relationship: controllers.NewRelationshipController(logger, relationshipService),
		Search:       controllers.NewSearchController(logger, searchService),
		Auth:         controllers.NewAuthController(logger, accountService),
		Event:        controllers.NewEventController(logger, eventService),
	}, authenticator)

	limiter := middleware.NewRateLimiter(20, 40)
	handler := middleware.CORS(cfg.AllowedOrigins,
		middleware.LoggingMiddleware(logger, limiter.Wrap(router)))

	runner := cron.New()
	pruner := jobs.NewPruner(relRepo, logger, requestTimeout)
	if err := pruner.Schedule(runner, pruneSchedule); err != nil {
		logger.Error("schedule prune job", "err", err)
		os.Exit(1)
	}
	runner.Start()
	defer runner.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
