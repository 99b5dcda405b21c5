package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/sukryu/pAdmin/internal/config"
	"github.com/sukryu/pAdmin/internal/resources"
	"github.com/sukryu/pAdmin/pkg/apis/handlers"
	"github.com/sukryu/pAdmin/pkg/apis/router"
	"github.com/sukryu/pAdmin/pkg/apis/routes"
	"github.com/sukryu/pAdmin/pkg/controllers"
	"github.com/sukryu/pAdmin/pkg/resource"
	"github.com/sukryu/pAdmin/pkg/store/factory"
	"github.com/sukryu/pAdmin/pkg/toast"
	"github.com/sukryu/pAdmin/pkg/translation"
	"github.com/sukryu/pAdmin/pkg/utils/jwt"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	// 설정 로드
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Log.Development)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	gin.SetMode(cfg.Server.Mode)

	// 번역
	translator := translation.NewTranslator(language.English, logger)
	if cfg.Admin.TranslationsDir != "" {
		if err := translator.LoadDir(cfg.Admin.TranslationsDir); err != nil {
			return err
		}
	}
	locale := translator.Match(cfg.Admin.Locale)
	if locale.String() != cfg.Admin.Locale {
		logger.Warn("configured locale not available", zap.String("locale", cfg.Admin.Locale), zap.Stringer("using", locale))
	}

	// 리소스 등록
	models := resources.Models()
	registry := resource.NewRegistry()
	if err := resources.Register(registry, models, cfg.Admin.ManifestDir, translator.Instance(locale)); err != nil {
		return err
	}
	logger.Info("resources registered", zap.Int("count", registry.Len()), zap.String("locale", locale.String()))

	// 스토어 초기화
	backend, err := factory.Open(cfg.Database.Driver, cfg.Database.DSN, logger)
	if err != nil {
		return err
	}
	defer func() { _ = backend.Close() }()

	if cfg.Database.AutoMigrate {
		if err := backend.Migrate(context.Background(), models.Models()...); err != nil {
			return err
		}
	}
	store := backend.Repository()

	// 컨트롤러, 핸들러 초기화
	paths := routes.NewPaths(cfg.Admin.BasePath)
	if cfg.Auth.AdminPasswordHash == "" {
		logger.Warn("auth.adminPasswordHash is empty, admin login is disabled")
	}
	jwtManager := jwt.NewJWTManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenExpiration)*time.Minute)
	authController := controllers.NewAuthController(controllers.Credentials{
		Username:     cfg.Auth.AdminUser,
		PasswordHash: cfg.Auth.AdminPasswordHash,
	}, jwtManager, time.Duration(cfg.Auth.TokenExpiration)*time.Minute, logger)

	resourceHandler := handlers.NewResourceHandler(
		registry,
		controllers.NewCreateController(store, paths, logger),
		controllers.NewEditController(store, paths, logger),
		controllers.NewListController(store, logger),
		toast.NewCookieStore([]byte(cfg.Session.Secret), cfg.Session.Name),
		logger,
	)

	r := router.NewRouter(paths, handlers.NewAuthHandler(authController), resourceHandler, jwtManager, logger)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr), zap.String("basePath", paths.Base))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("server shutting down")
	return srv.Shutdown(shutdownCtx)
}
