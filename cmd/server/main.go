// @title                       NJR EXIM CMS API
// @version                     1.0
// @description                 Content management backend: auth, role gating and site content.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/njrexim/cms-api/internal/api"
	"github.com/njrexim/cms-api/internal/api/middleware"
	"github.com/njrexim/cms-api/internal/core/ports"
	"github.com/njrexim/cms-api/internal/core/service"
	"github.com/njrexim/cms-api/internal/infrastructure/config"
	"github.com/njrexim/cms-api/internal/infrastructure/db/mongo"
	"github.com/njrexim/cms-api/internal/infrastructure/db/redis"
	"github.com/njrexim/cms-api/internal/infrastructure/mail"
	"github.com/njrexim/cms-api/internal/infrastructure/media"
	"github.com/njrexim/cms-api/internal/infrastructure/queue"
	"github.com/njrexim/cms-api/pkg/logger"
)

const (
	shutdownTimeout     = 15 * time.Second
	notificationWorkers = 2
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cms-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "cms-api",
	})

	// --- Storage ---
	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(dctx)
	}()
	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	var rdb *goredis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()
	}

	// --- Collaborators ---
	mailer, err := mail.NewSMTPMailer(mail.Config{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		Timeout:   cfg.SMTP.Timeout,
	})
	if err != nil {
		return err
	}
	if cfg.SMTP.Host == "" {
		log.Warn().Msg("SMTP_HOST not set, recovery and notification emails will fail")
	}

	var store ports.MediaStore = media.Disabled{}
	if cfg.S3.Bucket != "" {
		s3Store, err := media.NewS3Store(ctx, media.Config{
			Bucket:       cfg.S3.Bucket,
			Region:       cfg.S3.Region,
			Endpoint:     cfg.S3.Endpoint,
			AccessKey:    cfg.S3.AccessKey,
			SecretKey:    cfg.S3.SecretKey,
			PublicURL:    cfg.S3.PublicURL,
			UsePathStyle: cfg.S3.UsePathStyle,
		})
		if err != nil {
			return err
		}
		store = s3Store
	} else {
		log.Warn().Msg("S3_BUCKET not set, uploads are disabled")
	}

	// --- Repositories and services ---
	users := mongo.NewUserRepository(db)
	settingsRepo := mongo.NewSettingsRepository(db)
	emails := service.NewEmailComposer(settingsRepo, cfg.ClientURL)
	tokens := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL)
	recovery := service.NewRecoveryTokens(users, cfg.Auth.ResetTokenTTL, cfg.Auth.InviteTokenTTL)

	dispatcher := queue.NewDispatcher(notificationWorkers, service.InquiryNotification(emails, mailer), logger.Component("notifications"))
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	dispatcher.Start(workerCtx)

	services := api.Services{
		Auth: service.NewAuthService(users, tokens, recovery, mailer, emails, service.AuthOptions{
			ResetTTL:  cfg.Auth.ResetTokenTTL,
			InviteTTL: cfg.Auth.InviteTokenTTL,
		}, logger.Component("auth")),
		Users:        service.NewUserService(users, logger.Component("users")),
		Blogs:        service.NewBlogService(mongo.NewBlogRepository(db), store, logger.Component("blogs")),
		Products:     service.NewProductService(mongo.NewProductRepository(db), store, logger.Component("products")),
		Certificates: service.NewCertificateService(mongo.NewCertificateRepository(db), store, logger.Component("certificates")),
		Gallery:      service.NewGalleryService(mongo.NewGalleryRepository(db), store, logger.Component("gallery")),
		Inquiries:    service.NewInquiryService(mongo.NewInquiryRepository(db), dispatcher, logger.Component("inquiries")),
		Testimonials: service.NewTestimonialService(mongo.NewTestimonialRepository(db), store, logger.Component("testimonials")),
		Pages:        service.NewPageService(mongo.NewPageRepository(db), logger.Component("pages")),
		Settings:     service.NewSettingsService(settingsRepo, logger.Component("settings")),
	}

	e := api.NewRouter(api.Dependencies{
		DB:          db,
		Redis:       rdb,
		Tokens:      tokens,
		UserLookup:  users,
		Services:    services,
		Limiters:    newLimiters(cfg.RateLimit, rdb, log),
		CORSOrigins: cfg.CORSOrigins,
		Production:  cfg.IsProduction(),
		Log:         logger.Component("http"),
	})

	// --- Serve until signalled ---
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		stopWorkers()
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	stopWorkers()
	dispatcher.Wait()
	return nil
}

// newLimiters shares window counters through Redis when it is configured and
// keeps them in process otherwise.
func newLimiters(cfg config.RateLimitConfig, rdb *goredis.Client, log zerolog.Logger) api.Limiters {
	var counter middleware.WindowHitter
	if rdb != nil {
		counter = redis.NewWindowCounter(rdb)
	} else {
		log.Info().Msg("REDIS_ADDR not set, using in-process rate limiting")
		counter = middleware.NewMemoryWindow()
	}
	return api.Limiters{
		Public:  middleware.NewWindowLimiter(counter, "public", middleware.Limit(cfg.Public())),
		Auth:    middleware.NewWindowLimiter(counter, "auth", middleware.Limit(cfg.Auth())),
		Content: middleware.NewWindowLimiter(counter, "content", middleware.Limit(cfg.Content())),
	}
}
