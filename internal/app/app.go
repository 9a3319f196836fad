package app

import (
	"fmt"
	"net/http"

	"github.com/avc-dev/bookmarks/internal/config"
	"github.com/avc-dev/bookmarks/internal/logger"
	"github.com/avc-dev/bookmarks/internal/store"
	"go.uber.org/zap"
)

// App представляет приложение для управления закладками
type App struct {
	config *config.Config
	logger *zap.Logger
	store  *store.Store
	router http.Handler
}

// New создает новый экземпляр приложения
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		return nil, err
	}

	return newApp(cfg, log), nil
}

// newApp собирает приложение из готовой конфигурации и логгера
func newApp(cfg *config.Config, log *zap.Logger) *App {
	deps := initDependencies(cfg, log)

	return &App{
		config: cfg,
		logger: log,
		store:  deps.store,
		router: newRouter(deps, cfg, log),
	}
}

// Run запускает приложение
func Run() error {
	app, err := New()
	if err != nil {
		return err
	}
	defer app.logger.Sync()

	return app.start()
}
