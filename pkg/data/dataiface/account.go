//

package dataiface

import (
	"github.com/ajittgosavii/cloudidps/pkg/account"
)

// AccountData makes working with the Account Data Layer easier
type AccountData interface {
	// Write the Account record in DynamoDB
	// This is an upsert operation in which the record will either
	// be inserted or updated
	// lastModifiedOn is the original lastModifiedOn; writes race-guard on it
	Write(data *account.Account, lastModifiedOn *int64) error
	// Delete the Account record from DynamoDB
	Delete(data *account.Account) error
	// Get the Account record by ID
	Get(ID string) (*account.Account, error)
	// List Get a list of accounts based on a query
	List(query *account.Account) (*account.Accounts, error)
}
