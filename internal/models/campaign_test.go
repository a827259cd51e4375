package models

import "testing"

func TestIsValidCampaignTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		{CampaignStatusDraft, CampaignStatusActive, true},
		{CampaignStatusActive, CampaignStatusClosed, true},
		{CampaignStatusActive, CampaignStatusCompleted, true},
		{CampaignStatusClosed, CampaignStatusActive, true}, // reopen
		{CampaignStatusClosed, CampaignStatusCompleted, true},

		{CampaignStatusDraft, CampaignStatusClosed, false},
		{CampaignStatusDraft, CampaignStatusCompleted, false},
		{CampaignStatusCompleted, CampaignStatusActive, false},
		{CampaignStatusCompleted, CampaignStatusClosed, false},
		{CampaignStatusActive, CampaignStatusDraft, false},
		{"nonexistent", CampaignStatusActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			result := IsValidCampaignTransition(tt.from, tt.to)
			if result != tt.expected {
				t.Errorf("IsValidCampaignTransition(%q, %q) = %v, want %v", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestAllCampaignStatusesHaveTransitionEntry(t *testing.T) {
	allStatuses := []string{
		CampaignStatusDraft, CampaignStatusActive, CampaignStatusClosed, CampaignStatusCompleted,
	}

	for _, status := range allStatuses {
		if _, ok := ValidCampaignTransitions[status]; !ok {
			t.Errorf("status %q missing from ValidCampaignTransitions map", status)
		}
	}
}
