package routes

import (
	"skillcompass/internal/delivery/http/handler"
	v1 "skillcompass/internal/delivery/http/routes/v1"
	"skillcompass/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	deps   v1.Deps
	ws     *ws.Handler
}

func NewRegistry(deps v1.Deps, wsHandler *ws.Handler) *Registry {
	return &Registry{
		health: handler.NewHealthHandler(),
		deps:   deps,
		ws:     wsHandler,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.deps)

	if r.ws != nil {
		app.Get("/ws/events", r.ws.HandleEventsWS)
	}
}
