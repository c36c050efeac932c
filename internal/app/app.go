package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofrs/flock"

	"kosmos/internal/blobstore"
	"kosmos/internal/config"
	"kosmos/internal/event"
	"kosmos/internal/handler"
	"kosmos/internal/router"
	"kosmos/internal/store"
	"kosmos/internal/websocket"
)

type App struct {
	server       *http.Server
	cleanupFuncs []func()
}

func New(cfg *config.Config) (*App, error) {
	if err := os.MkdirAll(cfg.StateDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create state dir: %w", err)
	}

	// A second instance would race the first on the blobstore, so the
	// state dir is guarded by an advisory lock.
	lock := flock.New(cfg.StatePath("kosmos.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire state lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("state dir %s is locked by another instance", cfg.StateDir)
	}

	kv, err := blobstore.OpenSQLite(cfg.StatePath("state.db"))
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("failed to open state store: %w", err)
	}
	slog.Info("state store ready", "path", cfg.StatePath("state.db"))

	bus := event.NewBus()
	hub := websocket.NewHub(bus)
	hubCtx, hubCancel := context.WithCancel(context.Background())
	go hub.Run(hubCtx)

	diag := func(key string, err error) {
		slog.Warn("state persistence degraded", "key", key, "error", err)
	}

	scanStore := store.NewScanStore(kv, bus, diag)
	folderStore := store.NewFolderStore(kv, bus, diag)
	historyStore := store.NewHistoryStore(kv, bus, diag)
	operationStore := store.NewOperationStore(bus)
	workspaceStore := store.NewWorkspaceStore(bus)
	layoutStore := store.NewLayoutStore(bus)
	themeStore := store.NewThemeStore(kv, bus, diag, cfg.DefaultTheme)

	appRouter := router.New(
		cfg,
		hub,
		handler.NewScanHandler(scanStore),
		handler.NewFoldersHandler(folderStore),
		handler.NewHistoryHandler(historyStore),
		handler.NewOperationsHandler(operationStore),
		handler.NewNavigationHandler(workspaceStore),
		handler.NewLayoutHandler(layoutStore),
		handler.NewThemeHandler(themeStore),
	)

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.ServerReadHeaderTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	return &App{
		server: server,
		cleanupFuncs: []func(){
			func() {
				hubCancel()
			},
			func() {
				if closeErr := kv.Close(); closeErr != nil {
					slog.Error("failed to close state store", "error", closeErr)
				}
			},
			func() {
				if unlockErr := lock.Unlock(); unlockErr != nil {
					slog.Error("failed to release state lock", "error", unlockErr)
				}
			},
		},
	}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := a.server.Shutdown(ctx)

	for _, cleanup := range a.cleanupFuncs {
		cleanup()
	}

	if err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
