// Package credentials brokers short-lived session credentials for
// registered accounts. Credentials live in memory only; one live (or
// in-flight-refresh) instance exists per account.
package credentials

import (
	"time"

	"github.com/ajittgosavii/cloudidps/pkg/provider"
)

// Credentials is one account session. Value is never persisted or
// serialized; the json tags on provider.Value strip the secret material.
type Credentials struct {
	AccountID string         `json:"accountId"`
	Value     provider.Value `json:"-"`
	ExpiresAt time.Time      `json:"expiresAt"`
}

// ExpiresWithin returns true when the credential has less than margin of
// lifetime left at the given instant.
func (c *Credentials) ExpiresWithin(margin time.Duration, now time.Time) bool {
	return !c.ExpiresAt.After(now.Add(margin))
}
