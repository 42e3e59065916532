package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {

	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{name: "pending can start onboarding", from: StatusPending, to: StatusOnboarding, allowed: true},
		{name: "pending cannot go active directly", from: StatusPending, to: StatusActive, allowed: false},
		{name: "onboarding can complete", from: StatusOnboarding, to: StatusActive, allowed: true},
		{name: "onboarding can fail", from: StatusOnboarding, to: StatusFailed, allowed: true},
		{name: "onboarding cannot offboard", from: StatusOnboarding, to: StatusOffboarding, allowed: false},
		{name: "active can start offboarding", from: StatusActive, to: StatusOffboarding, allowed: true},
		{name: "active cannot re-onboard", from: StatusActive, to: StatusOnboarding, allowed: false},
		{name: "offboarding can complete", from: StatusOffboarding, to: StatusDeregistered, allowed: true},
		{name: "offboarding can fail", from: StatusOffboarding, to: StatusFailed, allowed: true},
		{name: "failed can resume onboarding", from: StatusFailed, to: StatusOnboarding, allowed: true},
		{name: "failed can resume offboarding", from: StatusFailed, to: StatusOffboarding, allowed: true},
		{name: "failed cannot jump to active", from: StatusFailed, to: StatusActive, allowed: false},
		{name: "deregistered is terminal", from: StatusDeregistered, to: StatusOnboarding, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}

	t.Run("only deregistered is terminal", func(t *testing.T) {
		for _, status := range ValidStatuses {
			assert.Equal(t, status == StatusDeregistered, status.IsTerminal(), "status %q", status)
		}
	})
}

func TestParseStatus(t *testing.T) {

	tests := []struct {
		name      string
		input     string
		expStatus Status
		expErr    bool
	}{
		{name: "parses exact casing", input: "Active", expStatus: StatusActive},
		{name: "parses lower casing", input: "offboarding", expStatus: StatusOffboarding},
		{name: "parses upper casing", input: "FAILED", expStatus: StatusFailed},
		{name: "rejects unknown value", input: "Leased", expStatus: EmptyStatus, expErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := ParseStatus(tt.input)
			assert.Equal(t, tt.expStatus, status)
			if tt.expErr {
				assert.Error(t, err)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}
