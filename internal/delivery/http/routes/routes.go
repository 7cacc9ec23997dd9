package routes

import (
	"job-routing/internal/delivery/http/handler"
	"job-routing/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	board  *handler.BoardHandler
	jobs   *handler.JobsHandler
	ws     *ws.Handler
}

func NewRegistry(health *handler.HealthHandler, board *handler.BoardHandler, jobs *handler.JobsHandler, wsHandler *ws.Handler) *Registry {
	return &Registry{health: health, board: board, jobs: jobs, ws: wsHandler}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
	if r.board != nil {
		r.board.RegisterRoutes(app)
	}
	if r.ws != nil {
		r.ws.RegisterRoutes(app)
	}
	r.registerAPI(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	v1 := app.Group("/api").Group("/v1")
	if r.jobs != nil {
		r.jobs.RegisterRoutes(v1)
	}
}
