package models

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a server-owned saved-campaign relation. One row per
// (user, campaign) pair.
type Favorite struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	CampaignID uuid.UUID `json:"campaign_id"`
	CreatedAt  time.Time `json:"created_at"`
}
