package lifecycle

import (
	"github.com/ajittgosavii/cloudidps/pkg/errors"
	validation "github.com/go-ozzo/ozzo-validation"
)

// Step is one checkpointed step of a lifecycle run
type Step struct {
	Name         *string     `json:"name,omitempty" dynamodbav:"Name"`
	Status       *StepStatus `json:"status,omitempty" dynamodbav:"Status"`
	StartedAt    *int64      `json:"startedAt,omitempty" dynamodbav:"StartedAt,omitempty"`
	FinishedAt   *int64      `json:"finishedAt,omitempty" dynamodbav:"FinishedAt,omitempty"`
	ErrorKind    *string     `json:"errorKind,omitempty" dynamodbav:"ErrorKind,omitempty"`
	ErrorMessage *string     `json:"errorMessage,omitempty" dynamodbav:"ErrorMessage,omitempty"`
}

// Run - Handles importing and exporting lifecycle runs and non-exported
// properties. The persisted record is the crash-recovery checkpoint: a
// resume picks up at CurrentStepIndex.
type Run struct {
	ID               *string `json:"id,omitempty" dynamodbav:"Id" schema:"id,omitempty"`
	AccountID        *string `json:"accountId,omitempty" dynamodbav:"AccountId" schema:"accountId,omitempty"`
	Kind             *Kind   `json:"kind,omitempty" dynamodbav:"Kind" schema:"kind,omitempty"`
	Status           *Status `json:"status,omitempty" dynamodbav:"RunStatus,omitempty" schema:"status,omitempty"`
	Steps            []Step  `json:"steps,omitempty" dynamodbav:"Steps,omitempty" schema:"-"`
	CurrentStepIndex *int64  `json:"currentStepIndex,omitempty" dynamodbav:"CurrentStepIndex,omitempty" schema:"-"`
	CreatedOn        *int64  `json:"createdOn,omitempty" dynamodbav:"CreatedOn,omitempty" schema:"-"`
	LastModifiedOn   *int64  `json:"lastModifiedOn,omitempty" dynamodbav:"LastModifiedOn" schema:"-"`
	FinishedOn       *int64  `json:"finishedOn,omitempty" dynamodbav:"FinishedOn,omitempty" schema:"-"`
	Limit            *int64  `json:"-" dynamodbav:"-" schema:"limit,omitempty"`
	NextID           *string `json:"-" dynamodbav:"-" schema:"nextId,omitempty"`
}

// Validate the run data
func (r *Run) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.ID, validateRunID...),
		validation.Field(&r.AccountID, validateAccountID...),
		validation.Field(&r.Kind, validateKind...),
		validation.Field(&r.Status, validateRunStatus...),
		validation.Field(&r.Steps, validation.Required),
		validation.Field(&r.CurrentStepIndex, validation.NotNil),
	)
	if err != nil {
		return errors.NewValidation("run", err)
	}
	return nil
}

// CurrentStep returns the step the run is positioned at, or nil when the
// run has moved past its last step.
func (r *Run) CurrentStep() *Step {
	if r.CurrentStepIndex == nil {
		return nil
	}
	i := int(*r.CurrentStepIndex)
	if i < 0 || i >= len(r.Steps) {
		return nil
	}
	return &r.Steps[i]
}

// Runs is a list of type Run
type Runs []Run
