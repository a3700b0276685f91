package handler

import (
	"context"
	"time"

	"talent-match/internal/database"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	redis *cache.Redis
}

func NewHealthHandler(db database.DB, redis *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/healthz", h.Live)
	r.Get("/readyz", h.Ready)
}

func (h *HealthHandler) Live(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"status": "up"})
}

// Ready reports dependency health. The database is required; Redis is
// optional and only reported, since the cache degrades to a bypass.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	checks := fiber.Map{"database": "up", "redis": "up"}

	if h.db == nil || h.db.Ping(ctx) != nil {
		checks["database"] = "down"
		return response.Error(c, fiber.StatusServiceUnavailable, "not ready", checks)
	}
	if h.redis == nil || h.redis.Ping(ctx) != nil {
		checks["redis"] = "down"
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, checks)
}
