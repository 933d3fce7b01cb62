package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/kuchnahi/backend/internal/config"
	"github.com/kuchnahi/backend/internal/handler"
	"github.com/kuchnahi/backend/internal/logging"
	"github.com/kuchnahi/backend/internal/model"
	"github.com/kuchnahi/backend/internal/notify"
	"github.com/kuchnahi/backend/internal/repository"
	"github.com/kuchnahi/backend/internal/service"
	"github.com/kuchnahi/backend/internal/storage"
	"github.com/kuchnahi/backend/pkg/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("INFO")
		logging.Fatal("load config failed", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	if err := run(cfg); err != nil {
		logging.Fatal("server error", "error", err)
	}
}

// run wires the server and blocks until SIGINT/SIGTERM or a listen failure.
func run(cfg *config.Config) error {
	if cfg.MigrateOnStart {
		if err := repository.Migrate(cfg.DatabaseURL); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	var notifier notify.Notifier = notify.Nop{}
	if cfg.KafkaEnabled() {
		kn, err := notify.NewKafkaNotifier(cfg.KafkaBrokers, cfg.KafkaInquiryTopic)
		if err != nil {
			return err
		}
		notifier = kn
		slog.Info("inquiry events enabled", "topic", cfg.KafkaInquiryTopic)
	}
	defer func() {
		if err := notifier.Close(); err != nil {
			slog.Warn("notifier close failed", "error", err)
		}
	}()

	inquiryRepo := repository.NewPgInquiryRepository(pool)
	projectRepo := repository.NewPgProjectRepository(pool)
	serviceRepo := repository.NewPgServiceRepository(pool)
	adminRepo := repository.NewPgAdminRepository(pool)

	inquiryService := service.NewInquiryService(inquiryRepo, notifier)
	projectService := service.NewProjectService(projectRepo,
		service.NewCache[[]*model.Project]("projects", 1, cfg.CatalogCacheTTL),
		service.NewCache[*model.Project]("project", cfg.CatalogCacheSize, cfg.CatalogCacheTTL))
	serviceListing := service.NewServiceListingService(serviceRepo,
		service.NewCache[[]*model.Service]("services", 1, cfg.CatalogCacheTTL),
		service.NewCache[*model.Service]("service", cfg.CatalogCacheSize, cfg.CatalogCacheTTL))

	secret, err := signingSecret(cfg)
	if err != nil {
		return err
	}
	authService := service.NewAuthService(adminRepo, secret, cfg.JWTTTL)

	// ADMIN_AUTH_REQUIRED=false のときは開発用のダミー管理者で通す
	adminAuth := auth.DevAuth
	if cfg.AdminAuthRequired {
		adminAuth = auth.RequireAdmin(secret)
	} else {
		slog.Warn("admin routes are open: ADMIN_AUTH_REQUIRED is false")
	}

	store := storage.NewLocalStorage(cfg.UploadDir, cfg.UploadURLPrefix)
	limiter := handler.NewRateLimiter(cfg.ContactRateLimit, cfg.TrustedProxies)
	defer limiter.Stop()

	router := handler.NewRouter(handler.Routes{
		Base:            handler.New(pool, cfg.FrontendURL),
		Inquiries:       handler.NewInquiryHandler(inquiryService),
		Projects:        handler.NewProjectHandler(projectService),
		Services:        handler.NewServiceHandler(serviceListing),
		Auth:            handler.NewAuthHandler(authService),
		Uploads:         handler.NewUploadHandler(store),
		AdminAuth:       adminAuth,
		ContactLimiter:  limiter,
		TrustedProxies:  cfg.TrustedProxies,
		UploadDir:       store.Dir(),
		UploadURLPrefix: store.URLPrefix(),
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case err := <-serveErr:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	return nil
}

// signingSecret returns the JWT key. Without ADMIN_AUTH_REQUIRED a short or
// missing JWT_SECRET is replaced by a random per-process key.
func signingSecret(cfg *config.Config) ([]byte, error) {
	secret, err := auth.SecretBytes(cfg.JWTSecret)
	if err == nil {
		return secret, nil
	}
	if cfg.AdminAuthRequired {
		return nil, err
	}
	slog.Warn("JWT_SECRET is unset or short; using a random key for this process")
	return auth.RandomSecret()
}
