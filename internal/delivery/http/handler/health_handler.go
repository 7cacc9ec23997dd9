package handler

import (
	"context"
	"time"

	"job-routing/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type CachePinger interface {
	Available() bool
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	jobs     func() int
	sessions func() int
	cache    CachePinger
}

func NewHealthHandler(jobs func() int, sessions func() int, cache CachePinger) *HealthHandler {
	return &HealthHandler{jobs: jobs, sessions: sessions, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Handle)
}

type healthResponse struct {
	Jobs     int    `json:"jobs"`
	Sessions int    `json:"sessions"`
	Cache    string `json:"cache"`
}

func (h *HealthHandler) Handle(c fiber.Ctx) error {
	out := healthResponse{Cache: "disabled"}
	if h.jobs != nil {
		out.Jobs = h.jobs()
	}
	if h.sessions != nil {
		out.Sessions = h.sessions()
	}
	if h.cache != nil {
		out.Cache = "unavailable"
		if h.cache.Available() {
			ctx, cancel := context.WithTimeout(c.Context(), time.Second)
			defer cancel()
			if err := h.cache.Ping(ctx); err == nil {
				out.Cache = "ok"
			}
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
