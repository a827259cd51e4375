package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/influencer-marketplace/backend/internal/http/dto"
	"github.com/influencer-marketplace/backend/internal/middleware"
	"github.com/influencer-marketplace/backend/internal/services"
	"go.uber.org/zap"
)

type ApplicationHandler struct {
	svc *services.ApplicationService
	log *zap.Logger
}

func NewApplicationHandler(svc *services.ApplicationService, log *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, log: log}
}

// Submit handles POST /applications.
func (h *ApplicationHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	campaignID, err := uuid.Parse(req.CampaignID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	app, err := h.svc.Submit(c.Context(), middleware.GetUserID(c), campaignID, req.Proposal)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: app})
}

// Decide handles POST /applications/:id/decision.
func (h *ApplicationHandler) Decide(c *fiber.Ctx) error {
	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid application id"})
	}

	var req dto.DecideApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	app, err := h.svc.Decide(c.Context(), middleware.GetUserID(c), applicationID, req.Decision)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: app})
}

// MarkViewed handles POST /applications/:id/view.
func (h *ApplicationHandler) MarkViewed(c *fiber.Ctx) error {
	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid application id"})
	}

	if err := h.svc.MarkViewed(c.Context(), middleware.GetUserID(c), applicationID); err != nil {
		return respondServiceError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

// Get handles GET /applications/:id.
func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid application id"})
	}

	app, err := h.svc.Get(c.Context(), middleware.GetUserID(c), applicationID)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: app})
}

// ListForCampaign handles GET /campaigns/:id/applications.
func (h *ApplicationHandler) ListForCampaign(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	apps, err := h.svc.ListForCampaign(c.Context(), middleware.GetUserID(c), campaignID)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: apps})
}

// ListMine handles GET /applications/my.
func (h *ApplicationHandler) ListMine(c *fiber.Ctx) error {
	apps, err := h.svc.ListMine(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return respondServiceError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: apps})
}
