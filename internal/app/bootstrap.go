package app

import (
	"context"
	"fmt"
	"strings"

	"job-routing/internal/config"
	"job-routing/internal/delivery/http/handler"
	"job-routing/internal/delivery/http/middleware"
	"job-routing/internal/delivery/http/routes"
	"job-routing/internal/pkg/logger"
	"job-routing/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber  *fiber.App
	Logger *zap.Logger
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Logger: c.Logger}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	log, err := logger.New(cfg.App)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	c, err := NewContainer(cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	go c.Hub.Run(ctx)

	app := New(c)
	cleanup := func() error {
		cancel()
		err := c.Close()
		_ = log.Sync()
		return err
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	var pinger handler.CachePinger
	if c.Cache != nil {
		pinger = c.Cache
	}

	reg := routes.NewRegistry(
		handler.NewHealthHandler(c.Catalog.Len, c.Hub.ClientCount, pinger),
		handler.NewBoardHandler(c.Jobs, c.Renderer, c.Config.Board, c.Config.Theme),
		handler.NewJobsHandler(c.Jobs),
		ws.NewHandler(c.Hub, c.Jobs, c.Logger),
	)
	reg.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
