package awscloud

import (
	"fmt"

	"github.com/ajittgosavii/cloudidps/pkg/errors"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
)

// classify maps provider error codes onto the engine's error kinds so
// callers can tell a denied role from a throttle without knowing AWS codes.
func classify(accountID string, err error) error {
	aerr, ok := err.(awserr.Error)
	if !ok {
		return errors.NewInternalServer(
			fmt.Sprintf("unexpected provider error for account %q", accountID), err)
	}

	switch aerr.Code() {
	case "AccessDenied",
		"AccessDeniedException",
		"UnauthorizedOperation",
		"InvalidClientTokenId",
		"ExpiredToken",
		"ExpiredTokenException":
		return errors.NewAuth(accountID, err)
	case "Throttling",
		"ThrottlingException",
		"TooManyRequestsException",
		"RequestLimitExceeded",
		"RequestTimeout",
		request.ErrCodeRequestError:
		return errors.NewTransient(
			fmt.Sprintf("provider throttled or unreachable for account %q", accountID), err)
	case request.CanceledErrorCode:
		return errors.NewCancelled(
			fmt.Sprintf("provider call cancelled for account %q", accountID), err)
	}

	return errors.NewInternalServer(
		fmt.Sprintf("unexpected provider error for account %q", accountID), err)
}

// isCode checks an error for a specific provider error code.
func isCode(err error, codes ...string) bool {
	aerr, ok := err.(awserr.Error)
	if !ok {
		return false
	}
	for _, code := range codes {
		if aerr.Code() == code {
			return true
		}
	}
	return false
}
