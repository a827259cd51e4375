package models

import (
	"time"

	"github.com/google/uuid"
)

// Campaign statuses
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusClosed    = "closed"
	CampaignStatusCompleted = "completed"
)

// Valid campaign transitions: from -> []to. A closed campaign may be
// reopened by the owning brand; completed is terminal.
var ValidCampaignTransitions = map[string][]string{
	CampaignStatusDraft:     {CampaignStatusActive},
	CampaignStatusActive:    {CampaignStatusClosed, CampaignStatusCompleted},
	CampaignStatusClosed:    {CampaignStatusActive, CampaignStatusCompleted},
	CampaignStatusCompleted: {},
}

func IsValidCampaignTransition(from, to string) bool {
	allowed, ok := ValidCampaignTransitions[from]
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

type Campaign struct {
	ID           uuid.UUID  `json:"id"`
	BrandID      uuid.UUID  `json:"brand_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Requirements *string    `json:"requirements,omitempty"`
	BudgetMin    int        `json:"budget_min"`
	BudgetMax    int        `json:"budget_max"`
	Category     *string    `json:"category,omitempty"` // nil means all categories
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CampaignWithBrand embeds Campaign and adds brand info to avoid N+1 queries.
type CampaignWithBrand struct {
	Campaign
	BrandCompanyName *string `json:"brand_company_name,omitempty"`
}
