package entity

import "testing"

func TestBusinessStatusCanTransitionTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		from    BusinessStatus
		to      BusinessStatus
		allowed bool
	}{
		{name: "pending to approved", from: BusinessStatusPending, to: BusinessStatusApproved, allowed: true},
		{name: "pending to rejected", from: BusinessStatusPending, to: BusinessStatusRejected, allowed: true},
		{name: "pending to inactive", from: BusinessStatusPending, to: BusinessStatusInactive, allowed: false},
		{name: "approved to inactive", from: BusinessStatusApproved, to: BusinessStatusInactive, allowed: true},
		{name: "approved to rejected", from: BusinessStatusApproved, to: BusinessStatusRejected, allowed: false},
		{name: "approved to pending", from: BusinessStatusApproved, to: BusinessStatusPending, allowed: false},
		{name: "rejected is terminal", from: BusinessStatusRejected, to: BusinessStatusPending, allowed: false},
		{name: "rejected cannot be approved", from: BusinessStatusRejected, to: BusinessStatusApproved, allowed: false},
		{name: "inactive is terminal", from: BusinessStatusInactive, to: BusinessStatusApproved, allowed: false},
		{name: "no self transition", from: BusinessStatusPending, to: BusinessStatusPending, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
				t.Fatalf("%s.CanTransitionTo(%s) = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}

func TestBusinessStatusIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status BusinessStatus
		valid  bool
	}{
		{name: "pending", status: BusinessStatusPending, valid: true},
		{name: "approved", status: BusinessStatusApproved, valid: true},
		{name: "rejected", status: BusinessStatusRejected, valid: true},
		{name: "inactive", status: BusinessStatusInactive, valid: true},
		{name: "empty", status: BusinessStatus(""), valid: false},
		{name: "unknown", status: BusinessStatus("archived"), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.status.IsValid(); got != tt.valid {
				t.Fatalf("BusinessStatus(%q).IsValid() = %v, want %v", tt.status, got, tt.valid)
			}
		})
	}
}
