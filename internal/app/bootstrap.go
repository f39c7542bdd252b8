package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"skillcompass/internal/config"
	"skillcompass/internal/delivery/http/handler"
	"skillcompass/internal/delivery/http/middleware"
	"skillcompass/internal/delivery/http/routes"
	v1 "skillcompass/internal/delivery/http/routes/v1"
	"skillcompass/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap wires config into a ready-to-listen application. The returned
// cleanup closes the container; callers run it on shutdown.
func Bootstrap(ctx context.Context, cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	// Cold start tolerates a missing index; search degrades to the
	// unranked fallback until the indexer runs.
	if !c.Index.Load() {
		logger.Printf("vector index not loaded | dir=%s", cfg.Index.Dir)
	}

	go c.Hub.Run()

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	registerGlobalMiddleware(f, logger)

	deps := v1.Deps{
		AuthMiddleware:  middleware.NewAuthMiddleware(c.JWT),
		Auth:            handler.NewAuthHandler(c.AuthUC),
		Users:           handler.NewUserHandler(c.UserUC),
		UserSkills:      handler.NewUserSkillHandler(c.UserSkillUC),
		Extraction:      handler.NewExtractionHandler(c.ExtractionUC),
		Skills:          handler.NewSkillHandler(c.SkillUC),
		Roles:           handler.NewRoleHandler(c.RoleUC),
		Recommendations: handler.NewRecommendationHandler(c.RecommendationUC, c.SkillGapUC),
		Dashboard:       handler.NewDashboardHandler(c.DashboardUC),
		IndexAdmin:      handler.NewIndexAdminHandler(c.IndexUC),
	}
	routes.NewRegistry(deps, ws.NewHandler(c.Hub, logger)).Register(f)

	app := &App{Fiber: f, Container: c}
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware().Middleware())
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
