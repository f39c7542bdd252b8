package v1

import (
	"skillcompass/internal/delivery/http/handler"
	"skillcompass/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	AuthMiddleware  *middleware.AuthMiddleware
	Auth            *handler.AuthHandler
	Users           *handler.UserHandler
	UserSkills      *handler.UserSkillHandler
	Extraction      *handler.ExtractionHandler
	Skills          *handler.SkillHandler
	Roles           *handler.RoleHandler
	Recommendations *handler.RecommendationHandler
	Dashboard       *handler.DashboardHandler
	IndexAdmin      *handler.IndexAdminHandler
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	if d.Auth != nil {
		d.Auth.RegisterRoutes(r.Group("/auth"))
	}

	RegisterCatalog(r, d.Skills, d.Roles)

	if d.AuthMiddleware == nil {
		return
	}
	protected := r.Group("", d.AuthMiddleware.Middleware())
	RegisterUsers(protected.Group("/users"), d.Users, d.UserSkills, d.Extraction, d.Recommendations, d.Dashboard)

	if d.IndexAdmin != nil {
		d.IndexAdmin.RegisterRoutes(protected)
	}
}
