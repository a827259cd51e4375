package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/influencer-marketplace/backend/internal/http/dto"
	"github.com/influencer-marketplace/backend/internal/middleware"
	"github.com/influencer-marketplace/backend/internal/services"
	"go.uber.org/zap"
)

type MessageHandler struct {
	svc *services.MessageService
	log *zap.Logger
}

func NewMessageHandler(svc *services.MessageService, log *zap.Logger) *MessageHandler {
	return &MessageHandler{svc: svc, log: log}
}

func (h *MessageHandler) Send(c *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid recipient id"})
	}

	msg, err := h.svc.Send(c.Context(), middleware.GetUserID(c), recipientID, req.Body)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: msg})
}

// Conversation handles GET /messages/:peer_id: both directions, newest first.
func (h *MessageHandler) Conversation(c *fiber.Ctx) error {
	peerID, err := uuid.Parse(c.Params("peer_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid peer id"})
	}

	messages, err := h.svc.Conversation(c.Context(), middleware.GetUserID(c), peerID,
		c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return respondServiceError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: messages})
}
