package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/influencer-marketplace/backend/internal/http/dto"
	"github.com/influencer-marketplace/backend/internal/middleware"
	"github.com/influencer-marketplace/backend/internal/repositories"
	"go.uber.org/zap"
)

type FavoriteHandler struct {
	favoriteRepo *repositories.FavoriteRepo
	campaignRepo *repositories.CampaignRepo
	log          *zap.Logger
}

func NewFavoriteHandler(favoriteRepo *repositories.FavoriteRepo, campaignRepo *repositories.CampaignRepo, log *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{favoriteRepo: favoriteRepo, campaignRepo: campaignRepo, log: log}
}

// Toggle handles POST /favorites/campaigns/:id. Saves the campaign for the
// acting user, or removes it when already saved.
func (h *FavoriteHandler) Toggle(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	if _, err := h.campaignRepo.GetByID(c.Context(), campaignID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "campaign not found"})
		}
		h.log.Error("failed to load campaign", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	saved, err := h.favoriteRepo.Toggle(c.Context(), middleware.GetUserID(c), campaignID)
	if err != nil {
		h.log.Error("failed to toggle favorite", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.FavoriteToggleResponse{Saved: saved})
}

func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	campaigns, err := h.favoriteRepo.ListCampaigns(c.Context(), middleware.GetUserID(c))
	if err != nil {
		h.log.Error("failed to list favorites", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaigns})
}
