package handler

import (
	"errors"

	"skillcompass/internal/delivery/http/middleware"
	"skillcompass/internal/pkg/response"
	"skillcompass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type IndexAdminHandler struct {
	uc usecase.IndexUsecase
}

func NewIndexAdminHandler(uc usecase.IndexUsecase) *IndexAdminHandler {
	return &IndexAdminHandler{uc: uc}
}

func (h *IndexAdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/admin/index")
	grp.Post("/rebuild", h.Rebuild)
}

func (h *IndexAdminHandler) Rebuild(c fiber.Ctx) error {
	result, err := h.uc.RebuildIndex(c.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrRebuildInProgress) {
			return middleware.NewAppError(fiber.StatusConflict, "Index rebuild already in progress", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, "Index rebuilt", result)
}
