package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/influencer-marketplace/backend/internal/http/dto"
	"github.com/influencer-marketplace/backend/internal/middleware"
	"github.com/influencer-marketplace/backend/internal/models"
	"github.com/influencer-marketplace/backend/internal/repositories"
	"github.com/influencer-marketplace/backend/internal/socialstats"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	userRepo       *repositories.UserRepo
	brandRepo      *repositories.BrandRepo
	influencerRepo *repositories.InfluencerRepo
	statsCache     *socialstats.Cache
	log            *zap.Logger
}

func NewProfileHandler(
	userRepo *repositories.UserRepo,
	brandRepo *repositories.BrandRepo,
	influencerRepo *repositories.InfluencerRepo,
	statsCache *socialstats.Cache,
	log *zap.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		userRepo:       userRepo,
		brandRepo:      brandRepo,
		influencerRepo: influencerRepo,
		statsCache:     statsCache,
		log:            log,
	}
}

// GetMe returns the account plus whichever profiles it has set up.
func (h *ProfileHandler) GetMe(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	user, err := h.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "user not found"})
		}
		h.log.Error("failed to load user", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	resp := dto.MeResponse{User: user}
	if brand, err := h.brandRepo.GetByUserID(c.Context(), userID); err == nil {
		resp.Brand = brand
	}
	if influencer, err := h.influencerRepo.GetByUserID(c.Context(), userID); err == nil {
		resp.Influencer = influencer
	}
	return c.JSON(resp)
}

func (h *ProfileHandler) CreateBrand(c *fiber.Ctx) error {
	var req dto.CreateBrandRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	brand := &models.Brand{
		UserID:      middleware.GetUserID(c),
		CompanyName: req.CompanyName,
		Description: req.Description,
		Website:     req.Website,
		Category:    req.Category,
	}
	if err := h.brandRepo.Create(c.Context(), brand); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "brand profile already exists"})
		}
		h.log.Error("failed to create brand", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: brand})
}

func (h *ProfileHandler) UpdateBrand(c *fiber.Ctx) error {
	var req dto.CreateBrandRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	brand, err := h.brandRepo.GetByUserID(c.Context(), middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "brand profile required", Code: "profile_required"})
		}
		h.log.Error("failed to load brand", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	brand.CompanyName = req.CompanyName
	brand.Description = req.Description
	brand.Website = req.Website
	brand.Category = req.Category
	if err := h.brandRepo.Update(c.Context(), brand); err != nil {
		h.log.Error("failed to update brand", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: brand})
}

func (h *ProfileHandler) CreateInfluencer(c *fiber.Ctx) error {
	var req dto.CreateInfluencerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	influencer := &models.Influencer{
		UserID:      middleware.GetUserID(c),
		DisplayName: req.DisplayName,
		Handle:      req.Handle,
		Bio:         req.Bio,
		Category:    req.Category,
	}
	if err := h.influencerRepo.Create(c.Context(), influencer); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "influencer profile or handle already exists"})
		}
		h.log.Error("failed to create influencer", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: influencer})
}

func (h *ProfileHandler) UpdateInfluencer(c *fiber.Ctx) error {
	var req dto.CreateInfluencerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	influencer, err := h.influencerRepo.GetByUserID(c.Context(), middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "influencer profile required", Code: "profile_required"})
		}
		h.log.Error("failed to load influencer", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	handleChanged := influencer.Handle != req.Handle
	influencer.DisplayName = req.DisplayName
	influencer.Handle = req.Handle
	influencer.Bio = req.Bio
	influencer.Category = req.Category
	if err := h.influencerRepo.Update(c.Context(), influencer); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "handle already taken"})
		}
		h.log.Error("failed to update influencer", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	if handleChanged && h.statsCache != nil {
		_ = h.statsCache.Invalidate(c.Context(), influencer.Handle)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: influencer})
}

// ListInfluencers handles GET /influencers: the public directory.
func (h *ProfileHandler) ListInfluencers(c *fiber.Ctx) error {
	f := repositories.InfluencerFilter{
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	if cat := c.Query("category"); cat != "" {
		f.Category = &cat
	}

	influencers, err := h.influencerRepo.List(c.Context(), f)
	if err != nil {
		h.log.Error("failed to list influencers", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: influencers})
}

func (h *ProfileHandler) GetInfluencer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid influencer id"})
	}

	influencer, err := h.influencerRepo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "influencer not found"})
		}
		h.log.Error("failed to load influencer", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: influencer})
}

// GetInfluencerMetrics handles GET /influencers/:id/metrics: the cached
// public-profile snapshot, refreshed on demand after the TTL lapses. The
// stored follower count is bumped opportunistically on a fresh read.
func (h *ProfileHandler) GetInfluencerMetrics(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid influencer id"})
	}

	influencer, err := h.influencerRepo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "influencer not found"})
		}
		h.log.Error("failed to load influencer", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	stats, err := h.statsCache.Get(c.Context(), influencer.Handle)
	if err != nil {
		h.log.Warn("failed to fetch profile stats",
			zap.String("handle", influencer.Handle), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Error: "profile stats unavailable"})
	}

	if stats.Followers != nil && *stats.Followers > 0 {
		_ = h.influencerRepo.UpdateFollowerCount(c.Context(), influencer.ID, *stats.Followers)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: stats})
}
