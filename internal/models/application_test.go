package models

import "testing"

func TestIsValidApplicationTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		{ApplicationStatusPending, ApplicationStatusAccepted, true},
		{ApplicationStatusPending, ApplicationStatusRejected, true},

		// Terminal statuses never transition
		{ApplicationStatusAccepted, ApplicationStatusRejected, false},
		{ApplicationStatusAccepted, ApplicationStatusPending, false},
		{ApplicationStatusRejected, ApplicationStatusAccepted, false},
		{ApplicationStatusRejected, ApplicationStatusPending, false},

		// No re-review
		{ApplicationStatusAccepted, ApplicationStatusAccepted, false},
		{ApplicationStatusRejected, ApplicationStatusRejected, false},

		{"nonexistent", ApplicationStatusAccepted, false},
		{ApplicationStatusPending, "nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			result := IsValidApplicationTransition(tt.from, tt.to)
			if result != tt.expected {
				t.Errorf("IsValidApplicationTransition(%q, %q) = %v, want %v", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestApplicationTerminalStatusesHaveNoTransitions(t *testing.T) {
	terminal := []string{ApplicationStatusAccepted, ApplicationStatusRejected}
	for _, status := range terminal {
		transitions := ValidApplicationTransitions[status]
		if len(transitions) != 0 {
			t.Errorf("terminal status %q should have no transitions, got %v", status, transitions)
		}
	}
}
