package handler

import (
	"errors"

	"skillcompass/internal/delivery/http/dto"
	"skillcompass/internal/delivery/http/middleware"
	"skillcompass/internal/pkg/response"
	"skillcompass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ExtractionHandler struct {
	uc usecase.ExtractionUsecase
}

type extractSkillsRequest struct {
	Text   string `json:"text"`
	UseLLM *bool  `json:"use_llm"`
}

type extractSkillsResponse struct {
	Skills     []dto.UserSkillResponse `json:"skills"`
	AddedCount int                     `json:"added_count"`
}

func NewExtractionHandler(uc usecase.ExtractionUsecase) *ExtractionHandler {
	return &ExtractionHandler{uc: uc}
}

func (h *ExtractionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/me/skills/extract", h.Extract)
}

func (h *ExtractionHandler) Extract(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req extractSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	useLLM := true
	if req.UseLLM != nil {
		useLLM = *req.UseLLM
	}

	result, err := h.uc.ExtractSkills(c.Context(), userID, req.Text, useLLM)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	res := extractSkillsResponse{
		Skills:     make([]dto.UserSkillResponse, 0, len(result.Skills)),
		AddedCount: result.AddedCount,
	}
	for _, it := range result.Skills {
		res.Skills = append(res.Skills, dto.UserSkillResponse{
			ID:        it.ID,
			SkillID:   it.SkillID,
			SkillName: it.SkillName,
			Source:    it.Source,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
