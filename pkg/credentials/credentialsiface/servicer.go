//

package credentialsiface

import (
	"context"

	"github.com/ajittgosavii/cloudidps/pkg/account"
	"github.com/ajittgosavii/cloudidps/pkg/credentials"
)

// Servicer makes working with the Credentials Service struct easier
type Servicer interface {
	// Credentials returns a live credential for the account
	Credentials(ctx context.Context, acct *account.Account) (*credentials.Credentials, error)
	// Invalidate drops the cached credential for an account
	Invalidate(accountID string)
}
