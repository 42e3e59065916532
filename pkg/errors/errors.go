package errors

import "errors"

var ErrValidation = errors.New("validation error")
var ErrNotFound = errors.New("not found")
var ErrInternalServer = errors.New("internal server error")
var ErrConflict = errors.New("conflict found")

var ErrAccountStatusChange = errors.New("the account status could not be transitioned")
var ErrWorkflowAlreadyActive = errors.New("a workflow is already active for the account")
