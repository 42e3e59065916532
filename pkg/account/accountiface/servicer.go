//

package accountiface

import (
	"github.com/ajittgosavii/cloudidps/pkg/account"
)

// Servicer makes working with the Account Service struct easier
type Servicer interface {
	// Get returns an account from ID
	Get(ID string) (*account.Account, error)
	// Save writes the record to the dataSvc
	Save(data *account.Account) error
	// Create registers a new account in the Pending state
	Create(data *account.Account) (*account.Account, error)
	// Update the Account record in the registry
	Update(ID string, data *account.Account) (*account.Account, error)
	// SetStatus transitions the account through the status machine
	SetStatus(ID string, next account.Status, reason string) (*account.Account, error)
	// Delete removes a deregistered account from the registry
	Delete(data *account.Account) error
	// List Get a list of accounts based on a query
	List(query *account.Account) (*account.Accounts, error)
}
