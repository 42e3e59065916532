package account

import (
	"github.com/ajittgosavii/cloudidps/pkg/arn"
	"github.com/ajittgosavii/cloudidps/pkg/errors"
	validation "github.com/go-ozzo/ozzo-validation"
)

// Account - Handles importing and exporting Accounts and non-exported Properties
type Account struct {
	ID             *string                `json:"id,omitempty" dynamodbav:"Id" schema:"id,omitempty"`                                     // Provider Account ID
	Name           *string                `json:"name,omitempty" dynamodbav:"Name,omitempty" schema:"name,omitempty"`                     // Friendly account name
	Status         *Status                `json:"accountStatus,omitempty" dynamodbav:"AccountStatus,omitempty" schema:"status,omitempty"` // Lifecycle status of the account
	StatusReason   *string                `json:"statusReason,omitempty" dynamodbav:"StatusReason,omitempty" schema:"-"`                  // Step name or reason behind the last status change
	RoleArn        *arn.ARN               `json:"roleArn,omitempty" dynamodbav:"RoleArn" schema:"roleArn,omitempty"`                      // Assumed by the management account for all access
	ExternalID     *string                `json:"-" dynamodbav:"ExternalId,omitempty" schema:"-"`                                         // Condition on the role trust policy; never surfaced
	Regions        []string               `json:"regions,omitempty" dynamodbav:"Regions,omitempty" schema:"-"`                            // Regions in scope for aggregation
	Environment    *string                `json:"environment,omitempty" dynamodbav:"Environment,omitempty" schema:"environment,omitempty"`
	CostCenter     *string                `json:"costCenter,omitempty" dynamodbav:"CostCenter,omitempty" schema:"costCenter,omitempty"`
	OwnerEmail     *string                `json:"ownerEmail,omitempty" dynamodbav:"OwnerEmail,omitempty" schema:"-"`
	Metadata       map[string]interface{} `json:"metadata,omitempty" dynamodbav:"Metadata,omitempty" schema:"-"` // Any org specific metadata pertaining to the account
	CreatedOn      *int64                 `json:"createdOn,omitempty" dynamodbav:"CreatedOn,omitempty" schema:"createdOn,omitempty"`
	LastModifiedOn *int64                 `json:"lastModifiedOn,omitempty" dynamodbav:"LastModifiedOn" schema:"lastModifiedOn,omitempty"`
	Limit          *int64                 `json:"-" dynamodbav:"-" schema:"limit,omitempty"`
	NextID         *string                `json:"-" dynamodbav:"-" schema:"nextId,omitempty"`
}

// Validate the account data
func (a *Account) Validate() error {
	err := validation.ValidateStruct(a,
		validation.Field(&a.ID, validateID...),
		validation.Field(&a.Status, validateStatus...),
		validation.Field(&a.RoleArn, validateRoleArn...),
		validation.Field(&a.Regions, validateRegions...),
		validation.Field(&a.OwnerEmail, validateEmail...),
		validation.Field(&a.CreatedOn, validateInt64...),
		validation.Field(&a.LastModifiedOn, validateInt64...),
	)
	if err != nil {
		return errors.NewValidation("account", err)
	}
	return nil
}

// Accounts is a list of type Account
type Accounts []Account
