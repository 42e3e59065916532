package errors

import (
	"context"
	stderrors "errors"
)

// Kind is the classification of a failure. Callers branch on kinds to
// decide retry and reporting behavior: TransientError may be retried,
// AuthError never is, Cancelled marks work abandoned before completion.
type Kind string

const (
	KindClient        Kind = clientError
	KindServer        Kind = serverError
	KindValidation    Kind = validationError
	KindAlreadyExists Kind = alreadyExistsError
	KindNotFound      Kind = notFoundError
	KindConflict      Kind = conflictError
	KindConfig        Kind = configError
	KindAuth          Kind = authError
	KindTransient     Kind = transientError
	KindState         Kind = stateError
	KindWorkflowStep  Kind = workflowStepError
	KindCancelled     Kind = cancelledError
)

// String satisfies fmt.Stringer
func (k Kind) String() string {
	return string(k)
}

// KindForError classifies an error by walking its chain. Explicit
// StatusError codes win; bare context errors classify as Cancelled;
// anything else is a server error.
func KindForError(err error) Kind {
	if err == nil {
		return ""
	}

	var status *StatusError
	if stderrors.As(err, &status) {
		return Kind(status.Details.Code)
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return KindCancelled
	}
	return KindServer
}

// IsTransient reports whether the error may clear on retry.
func IsTransient(err error) bool {
	return KindForError(err) == KindTransient
}

// IsAuth reports whether the error is an access failure. Auth errors
// are terminal for the account and must not be retried.
func IsAuth(err error) bool {
	return KindForError(err) == KindAuth
}

// IsCancelled reports whether the work was abandoned on cancellation.
func IsCancelled(err error) bool {
	return KindForError(err) == KindCancelled
}
