package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/arunsingh-creator/CodeBloom/pkg/config"
	xhttp "github.com/arunsingh-creator/CodeBloom/pkg/http"
	applogger "github.com/arunsingh-creator/CodeBloom/pkg/logger"

	"github.com/labstack/echo/v4"
)

// App encapsulates the application lifecycle: it owns the HTTP server and
// blocks in Run until a shutdown signal arrives.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	handlers   multiHandler
	httpServer *xhttp.Server
}

// multiHandler registers several route handlers as one.
type multiHandler []xhttp.Handler

func (m multiHandler) RegisterRoutes(e *echo.Echo) {
	for _, h := range m {
		h.RegisterRoutes(e)
	}
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, log *applogger.Logger, handlers ...xhttp.Handler) *App {
	return &App{
		cfg:      cfg,
		log:      log,
		handlers: handlers,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	a.httpServer = xhttp.NewServer(a.handlers,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithAllowOrigins(a.cfg.Server.AllowOrigins),
	)

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("server started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("environment", a.cfg.Environment),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown gracefully stops the HTTP server.
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
		return err
	}

	a.log.Info("shutdown complete")
	return nil
}
