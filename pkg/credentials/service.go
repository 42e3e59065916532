package credentials

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ajittgosavii/cloudidps/pkg/account"
	"github.com/ajittgosavii/cloudidps/pkg/errors"
	"github.com/ajittgosavii/cloudidps/pkg/provider"

	"github.com/avast/retry-go"
	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// ServiceConfig has the broker's tunables. All of them are deployment
// knobs, not engine constants.
type ServiceConfig struct {
	RenewalMargin     time.Duration `env:"CREDENTIAL_RENEWAL_MARGIN" envDefault:"5m"`
	MaxRetries        uint          `env:"CREDENTIAL_MAX_RETRIES" envDefault:"3"`
	RetryBaseDelay    time.Duration `env:"CREDENTIAL_RETRY_BASE_DELAY" envDefault:"500ms"`
	SessionDuration   int64         `env:"SESSION_DURATION" envDefault:"3600"`
	SessionNamePrefix string        `env:"SESSION_NAME_PREFIX" envDefault:"CloudIDP"`
}

// Service caches one live credential per account and refreshes it
// through the provider's role assumption. Refreshes are single-flight
// per account: concurrent callers share one assume-role call, and
// distinct accounts never contend.
type Service struct {
	roleAssumer provider.RoleAssumer
	clock       clock.Clock
	config      ServiceConfig

	mu     sync.RWMutex
	cached map[string]*Credentials
	flight singleflight.Group
}

// Credentials returns a live credential for the account, refreshing it
// when the cached one has less than the renewal margin of lifetime left.
// The returned credential always outlives now + RenewalMargin, so a
// long-running query started immediately will not see it expire.
func (s *Service) Credentials(ctx context.Context, acct *account.Account) (*Credentials, error) {
	if acct.ID == nil || acct.RoleArn == nil {
		return nil, errors.NewConfiguration(
			"account is missing its id or role reference", nil)
	}
	accountID := *acct.ID

	if creds, ok := s.cachedFresh(accountID); ok {
		return creds, nil
	}

	ch := s.flight.DoChan(accountID, func() (interface{}, error) {
		// Re-check under the flight: a waiter queued behind a completed
		// refresh should not trigger another one.
		if creds, ok := s.cachedFresh(accountID); ok {
			return creds, nil
		}
		return s.refresh(ctx, acct)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Credentials), nil
	case <-ctx.Done():
		// The flight finishes in the background and its result stays
		// cached for the next caller.
		return nil, errors.NewCancelled(
			fmt.Sprintf("credential wait for account %q abandoned", accountID), ctx.Err())
	}
}

// Invalidate drops the cached credential for an account so the next
// caller forces a refresh.
func (s *Service) Invalidate(accountID string) {
	s.mu.Lock()
	delete(s.cached, accountID)
	s.mu.Unlock()
	s.flight.Forget(accountID)
}

func (s *Service) cachedFresh(accountID string) (*Credentials, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	creds, ok := s.cached[accountID]
	if !ok || creds.ExpiresWithin(s.config.RenewalMargin, s.clock.Now()) {
		return nil, false
	}
	copied := *creds
	return &copied, true
}

// refresh performs the role assumption, retrying transient failures
// with exponential backoff. Auth failures abort immediately: a denied
// role does not become assumable by asking again.
func (s *Service) refresh(ctx context.Context, acct *account.Account) (*Credentials, error) {
	accountID := *acct.ID

	var result *provider.RoleCredentials
	err := retry.Do(
		func() error {
			var assumeErr error
			result, assumeErr = s.roleAssumer.AssumeRole(ctx, &provider.AssumeRoleInput{
				AccountID:   acct.ID,
				RoleArn:     acct.RoleArn,
				ExternalID:  acct.ExternalID,
				SessionName: fmt.Sprintf("%s-%s", s.config.SessionNamePrefix, uuid.New().String()),
				Duration:    s.config.SessionDuration,
			})
			return assumeErr
		},
		retry.RetryIf(errors.IsTransient),
		retry.Attempts(s.config.MaxRetries),
		retry.Delay(s.config.RetryBaseDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"accountId": accountID,
			"errorKind": errors.KindForError(err),
		}).Warn("role assumption failed")
		return nil, err
	}

	creds := &Credentials{
		AccountID: accountID,
		Value:     result.Value,
		ExpiresAt: result.ExpiresAt,
	}

	s.mu.Lock()
	s.cached[accountID] = creds
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"accountId": accountID,
		"expiresAt": creds.ExpiresAt,
	}).Debug("refreshed account credential")

	copied := *creds
	return &copied, nil
}

// NewServiceInput Input for creating a new Service
type NewServiceInput struct {
	RoleAssumer provider.RoleAssumer
	Clock       clock.Clock
	Config      ServiceConfig
}

// NewService creates a new instance of the Service
func NewService(input NewServiceInput) *Service {
	c := input.Clock
	if c == nil {
		c = clock.New()
	}
	return &Service{
		roleAssumer: input.RoleAssumer,
		clock:       c,
		config:      input.Config,
		cached:      map[string]*Credentials{},
	}
}
