package lifecycle

import (
	"fmt"
	"strings"
)

// Kind is the workflow kind of a lifecycle run
type Kind string

const (
	// EmptyKind kind
	EmptyKind Kind = ""
	// KindOnboard - bring a registered account to Active
	KindOnboard Kind = "Onboard"
	// KindOffboard - retire an Active account to Deregistered
	KindOffboard Kind = "Offboard"
)

// String returns the string value of Kind
func (k Kind) String() string {
	return string(k)
}

// KindPtr returns a pointer to the Kind value
func (k Kind) KindPtr() *Kind {
	v := k
	return &v
}

// ParseKind - parses the string into a workflow kind.
func ParseKind(kind string) (Kind, error) {
	switch strings.ToLower(kind) {
	case "onboard":
		return KindOnboard, nil
	case "offboard":
		return KindOffboard, nil
	}
	return EmptyKind, fmt.Errorf("Cannot parse value %s", kind)
}

// Status is a lifecycle run status type
type Status string

const (
	// EmptyStatus status
	EmptyStatus Status = ""
	// StatusRunning - steps are executing
	StatusRunning Status = "Running"
	// StatusSucceeded - every step is Done
	StatusSucceeded Status = "Succeeded"
	// StatusFailed - stopped on a failed step; resumable
	StatusFailed Status = "Failed"
)

// String returns the string value of Status
func (s Status) String() string {
	return string(s)
}

// StatusPtr returns a pointer to the Status value
func (s Status) StatusPtr() *Status {
	v := s
	return &v
}

// ParseStatus - parses the string into a run status.
func ParseStatus(status string) (Status, error) {
	switch strings.ToLower(status) {
	case "running":
		return StatusRunning, nil
	case "succeeded":
		return StatusSucceeded, nil
	case "failed":
		return StatusFailed, nil
	}
	return EmptyStatus, fmt.Errorf("Cannot parse value %s", status)
}

// StepStatus is the status of one step within a run
type StepStatus string

const (
	// StepStatusPending - not yet executed
	StepStatusPending StepStatus = "Pending"
	// StepStatusDone - executed successfully; re-entry is a no-op
	StepStatusDone StepStatus = "Done"
	// StepStatusFailed - the run stopped here
	StepStatusFailed StepStatus = "Failed"
)

// String returns the string value of StepStatus
func (s StepStatus) String() string {
	return string(s)
}

// StepStatusPtr returns a pointer to the StepStatus value
func (s StepStatus) StepStatusPtr() *StepStatus {
	v := s
	return &v
}
