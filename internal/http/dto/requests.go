package dto

import "time"

// Auth

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Profiles

type CreateBrandRequest struct {
	CompanyName string  `json:"company_name" validate:"required,min=2,max=120"`
	Description *string `json:"description,omitempty"`
	Website     *string `json:"website,omitempty" validate:"omitempty,url"`
	Category    *string `json:"category,omitempty"`
}

type CreateInfluencerRequest struct {
	DisplayName string  `json:"display_name" validate:"required,min=2,max=120"`
	Handle      string  `json:"handle" validate:"required,min=2,max=64,alphanum"`
	Bio         *string `json:"bio,omitempty"`
	Category    *string `json:"category,omitempty"`
}

// Campaigns

type CreateCampaignRequest struct {
	Title        string     `json:"title" validate:"required,min=3,max=200"`
	Description  string     `json:"description" validate:"required"`
	Requirements *string    `json:"requirements,omitempty"`
	BudgetMin    int        `json:"budget_min" validate:"gte=0"`
	BudgetMax    int        `json:"budget_max" validate:"gte=0,gtefield=BudgetMin"`
	Category     *string    `json:"category,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Status       string     `json:"status,omitempty" validate:"omitempty,oneof=draft active"`
}

type UpdateCampaignRequest struct {
	Title        string     `json:"title" validate:"required,min=3,max=200"`
	Description  string     `json:"description" validate:"required"`
	Requirements *string    `json:"requirements,omitempty"`
	BudgetMin    int        `json:"budget_min" validate:"gte=0"`
	BudgetMax    int        `json:"budget_max" validate:"gte=0,gtefield=BudgetMin"`
	Category     *string    `json:"category,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
}

type ChangeCampaignStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft active closed completed"`
}

// Applications

type SubmitApplicationRequest struct {
	CampaignID string `json:"campaign_id" validate:"required,uuid4"`
	Proposal   string `json:"proposal" validate:"required,min=50"`
}

type DecideApplicationRequest struct {
	Decision string `json:"decision" validate:"required,oneof=accept reject"`
}

// Messages

type SendMessageRequest struct {
	RecipientID string `json:"recipient_id" validate:"required,uuid4"`
	Body        string `json:"body" validate:"required,min=1,max=4000"`
}
