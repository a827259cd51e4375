package models

import (
	"time"

	"github.com/google/uuid"
)

// Brand is the advertiser-side profile, owned 1:1 by a user.
type Brand struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	CompanyName string    `json:"company_name"`
	Description *string   `json:"description,omitempty"`
	Website     *string   `json:"website,omitempty"`
	Category    *string   `json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Influencer is the creator-side profile, owned 1:1 by a user.
type Influencer struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	DisplayName   string    `json:"display_name"`
	Handle        string    `json:"handle"`
	Bio           *string   `json:"bio,omitempty"`
	Category      *string   `json:"category,omitempty"`
	FollowerCount *int      `json:"follower_count,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
