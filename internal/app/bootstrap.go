package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"talent-match/internal/config"
	"talent-match/internal/database/migration"
	"talent-match/internal/database/seeder"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/delivery/http/routes"
	"talent-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
	Hub       *ws.Hub
}

// Bootstrap builds the full application: connects dependencies, applies
// pending migrations, seeds the skill catalog and mounts the routes.
// The returned cleanup closes every connection the app opened.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = log.Default()
	}

	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("build container: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := migration.Run(ctx, container.DB); err != nil {
		_ = container.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}
	if err := seeder.RunAll(ctx, container.DB, logger); err != nil {
		_ = container.Close()
		return nil, nil, fmt.Errorf("seed catalog: %w", err)
	}

	hub := ws.NewHub(logger)
	go hub.Run()

	f := fiber.New(fiber.Config{})
	registerGlobalMiddleware(f, logger)
	routes.NewRegistry(cfg, container.DB, container.Redis, hub, logger).Register(f)

	app := &App{Fiber: f, Container: container, Hub: hub}
	return app, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
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
