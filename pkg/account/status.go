package account

import (
	"fmt"
	"strings"
)

// Status is an account lifecycle status type
type Status string

const (
	// EmptyStatus status
	EmptyStatus Status = ""
	// StatusPending - registered but not yet onboarded
	StatusPending Status = "Pending"
	// StatusOnboarding - an onboard workflow is in progress
	StatusOnboarding Status = "Onboarding"
	// StatusActive - onboarded and eligible for aggregation queries
	StatusActive Status = "Active"
	// StatusOffboarding - an offboard workflow is in progress
	StatusOffboarding Status = "Offboarding"
	// StatusDeregistered - offboarded; kept for audit until deleted
	StatusDeregistered Status = "Deregistered"
	// StatusFailed - the last workflow stopped on a failed step
	StatusFailed Status = "Failed"
)

// ValidStatuses has the valid status options
var ValidStatuses = [6]Status{
	StatusPending,
	StatusOnboarding,
	StatusActive,
	StatusOffboarding,
	StatusDeregistered,
	StatusFailed,
}

// transitions are the allowed next statuses per current status.
// Failed re-enters the workflow status it left so a run can resume.
var transitions = map[Status][]Status{
	StatusPending:      {StatusOnboarding},
	StatusOnboarding:   {StatusActive, StatusFailed},
	StatusActive:       {StatusOffboarding},
	StatusOffboarding:  {StatusDeregistered, StatusFailed},
	StatusFailed:       {StatusOnboarding, StatusOffboarding},
	StatusDeregistered: {},
}

// String returns the string value of Status
func (c Status) String() string {
	return string(c)
}

// StringPtr returns a pointer to the string value of Status
func (c Status) StringPtr() *string {
	v := string(c)
	return &v
}

// StatusPtr returns a pointer to the Status value
func (c Status) StatusPtr() *Status {
	v := c
	return &v
}

// CanTransitionTo returns whether the status machine allows moving to
// the next status from this one
func (c Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[c] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal returns whether the status has no outgoing transitions
func (c Status) IsTerminal() bool {
	return len(transitions[c]) == 0
}

// ParseStatus - parses the string into an account status.
func ParseStatus(status string) (Status, error) {
	switch strings.ToLower(status) {
	case "pending":
		return StatusPending, nil
	case "onboarding":
		return StatusOnboarding, nil
	case "active":
		return StatusActive, nil
	case "offboarding":
		return StatusOffboarding, nil
	case "deregistered":
		return StatusDeregistered, nil
	case "failed":
		return StatusFailed, nil
	}
	return EmptyStatus, fmt.Errorf("Cannot parse value %s", status)
}
