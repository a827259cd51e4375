package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/influencer-marketplace/backend/internal/http/dto"
	"github.com/influencer-marketplace/backend/internal/middleware"
	"github.com/influencer-marketplace/backend/internal/repositories"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	repo *repositories.NotificationRepo
	log  *zap.Logger
}

func NewNotificationHandler(repo *repositories.NotificationRepo, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{repo: repo, log: log}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	f := repositories.NotificationFilter{
		UnreadOnly: c.QueryBool("unread"),
		Limit:      c.QueryInt("limit"),
		Offset:     c.QueryInt("offset"),
	}

	notifications, err := h.repo.ListByUser(c.Context(), middleware.GetUserID(c), f)
	if err != nil {
		h.log.Error("failed to list notifications", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: notifications})
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	count, err := h.repo.CountUnread(c.Context(), middleware.GetUserID(c))
	if err != nil {
		h.log.Error("failed to count unread notifications", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.UnreadCountResponse{Unread: count})
}

// MarkRead flips one notification; only the recipient can do it.
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid notification id"})
	}

	updated, err := h.repo.MarkRead(c.Context(), id, middleware.GetUserID(c))
	if err != nil {
		h.log.Error("failed to mark notification read", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	if !updated {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "notification not found"})
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.repo.MarkAllRead(c.Context(), middleware.GetUserID(c)); err != nil {
		h.log.Error("failed to mark notifications read", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}
