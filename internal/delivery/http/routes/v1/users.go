package v1

import (
	"skillcompass/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterUsers(
	r fiber.Router,
	userHandler *handler.UserHandler,
	userSkillHandler *handler.UserSkillHandler,
	extractionHandler *handler.ExtractionHandler,
	recommendationHandler *handler.RecommendationHandler,
	dashboardHandler *handler.DashboardHandler,
) {
	if r == nil {
		return
	}

	if userHandler != nil {
		userHandler.RegisterRoutes(r)
	}
	if userSkillHandler != nil {
		userSkillHandler.RegisterRoutes(r)
	}
	if extractionHandler != nil {
		extractionHandler.RegisterRoutes(r)
	}
	if recommendationHandler != nil {
		recommendationHandler.RegisterRoutes(r)
	}
	if dashboardHandler != nil {
		dashboardHandler.RegisterRoutes(r)
	}
}
