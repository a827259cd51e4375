package models

import (
	"time"

	"github.com/google/uuid"
)

// Application statuses
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// Valid application transitions: from -> []to. Accepted and rejected are
// terminal; an application is decided exactly once.
var ValidApplicationTransitions = map[string][]string{
	ApplicationStatusPending:  {ApplicationStatusAccepted, ApplicationStatusRejected},
	ApplicationStatusAccepted: {},
	ApplicationStatusRejected: {},
}

func IsValidApplicationTransition(from, to string) bool {
	allowed, ok := ValidApplicationTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// MinProposalLength is the minimum accepted proposal text length.
const MinProposalLength = 50

type Application struct {
	ID           uuid.UUID `json:"id"`
	CampaignID   uuid.UUID `json:"campaign_id"`
	InfluencerID uuid.UUID `json:"influencer_id"`
	Proposal     string    `json:"proposal"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ApplicationWithInfluencer embeds Application and adds influencer display
// fields for campaign-side listings.
type ApplicationWithInfluencer struct {
	Application
	InfluencerDisplayName *string `json:"influencer_display_name,omitempty"`
	InfluencerHandle      *string `json:"influencer_handle,omitempty"`
}
