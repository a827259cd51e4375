package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/influencer-marketplace/backend/internal/http/dto"
	"github.com/influencer-marketplace/backend/internal/middleware"
	"github.com/influencer-marketplace/backend/internal/models"
	"github.com/influencer-marketplace/backend/internal/repositories"
	"github.com/influencer-marketplace/backend/internal/services"
	"go.uber.org/zap"
)

type CampaignHandler struct {
	svc *services.CampaignService
	log *zap.Logger
}

func NewCampaignHandler(svc *services.CampaignService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{svc: svc, log: log}
}

func (h *CampaignHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	campaign := &models.Campaign{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		BudgetMin:    req.BudgetMin,
		BudgetMax:    req.BudgetMax,
		Category:     req.Category,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Status:       req.Status,
	}
	if err := h.svc.Create(c.Context(), middleware.GetUserID(c), campaign); err != nil {
		return respondServiceError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	campaign, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

// Browse handles GET /campaigns: the public, active-only listing.
func (h *CampaignHandler) Browse(c *fiber.Ctx) error {
	f := repositories.CampaignFilter{
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	if cat := c.Query("category"); cat != "" {
		f.Category = &cat
	}

	campaigns, err := h.svc.Browse(c.Context(), f)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaigns})
}

// ListMine handles GET /campaigns/my: the owning brand's campaigns, any status.
func (h *CampaignHandler) ListMine(c *fiber.Ctx) error {
	f := repositories.CampaignFilter{
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	if status := c.Query("status"); status != "" {
		f.Status = &status
	}

	campaigns, err := h.svc.ListMine(c.Context(), middleware.GetUserID(c), f)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaigns})
}

func (h *CampaignHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	var req dto.UpdateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	campaign := &models.Campaign{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		BudgetMin:    req.BudgetMin,
		BudgetMax:    req.BudgetMax,
		Category:     req.Category,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	}
	if err := h.svc.Update(c.Context(), id, middleware.GetUserID(c), campaign); err != nil {
		return respondServiceError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) ChangeStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	var req dto.ChangeCampaignStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	campaign, err := h.svc.ChangeStatus(c.Context(), id, middleware.GetUserID(c), req.Status)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	if err := h.svc.Delete(c.Context(), id, middleware.GetUserID(c)); err != nil {
		return respondServiceError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}
