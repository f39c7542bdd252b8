package v1

import (
	"skillcompass/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// RegisterCatalog exposes the skill and role catalogs without auth; they
// contain no user data.
func RegisterCatalog(r fiber.Router, skillHandler *handler.SkillHandler, roleHandler *handler.RoleHandler) {
	if r == nil {
		return
	}

	if skillHandler != nil {
		skillHandler.RegisterRoutes(r)
	}
	if roleHandler != nil {
		roleHandler.RegisterRoutes(r)
	}
}
