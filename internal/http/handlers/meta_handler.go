package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/influencer-marketplace/backend/internal/http/dto"
)

type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

type MetaCategory struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var predefinedCategories = []MetaCategory{
	{ID: "beauty", Label: "Beauty & Cosmetics"},
	{ID: "fashion", Label: "Fashion"},
	{ID: "tech", Label: "Technology"},
	{ID: "finance", Label: "Finance"},
	{ID: "education", Label: "Education"},
	{ID: "entertainment", Label: "Entertainment"},
	{ID: "lifestyle", Label: "Lifestyle"},
	{ID: "gaming", Label: "Gaming"},
	{ID: "sports", Label: "Sports & Fitness"},
	{ID: "travel", Label: "Travel"},
	{ID: "food", Label: "Food & Cooking"},
	{ID: "health", Label: "Health & Wellness"},
	{ID: "music", Label: "Music"},
	{ID: "art", Label: "Art & Design"},
	{ID: "parenting", Label: "Parenting & Family"},
	{ID: "pets", Label: "Pets"},
	{ID: "business", Label: "Business"},
	{ID: "other", Label: "Other"},
}

func (h *MetaHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: predefinedCategories})
}
