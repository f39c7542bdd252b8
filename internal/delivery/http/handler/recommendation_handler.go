package handler

import (
	"errors"

	"skillcompass/internal/delivery/http/middleware"
	"skillcompass/internal/pkg/response"
	"skillcompass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	recs usecase.RecommendationUsecase
	gaps usecase.SkillGapUsecase
}

func NewRecommendationHandler(recs usecase.RecommendationUsecase, gaps usecase.SkillGapUsecase) *RecommendationHandler {
	return &RecommendationHandler{recs: recs, gaps: gaps}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me/recommendations", h.Recommend)
	r.Get("/me/skill-gap/:roleId", h.SkillGap)
	r.Get("/me/learning-plan/:roleId", h.LearningPlan)
}

func (h *RecommendationHandler) Recommend(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	result, err := h.recs.RecommendRoles(c.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrNoUserSkills) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Add skills before requesting recommendations", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, result)
}

func (h *RecommendationHandler) SkillGap(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	roleID, err := uuid.Parse(c.Params("roleId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	result, err := h.gaps.SkillGap(c.Context(), userID, roleID)
	if err != nil {
		return mapGapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, result)
}

func (h *RecommendationHandler) LearningPlan(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	roleID, err := uuid.Parse(c.Params("roleId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	result, err := h.gaps.LearningPlan(c.Context(), userID, roleID)
	if err != nil {
		return mapGapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, result)
}

func mapGapUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrRoleNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Role not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
