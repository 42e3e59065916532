package dispatcher

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ajittgosavii/cloudidps/pkg/account"
	"github.com/ajittgosavii/cloudidps/pkg/cache"
	"github.com/ajittgosavii/cloudidps/pkg/credentials"
	credmocks "github.com/ajittgosavii/cloudidps/pkg/credentials/credentialsiface/mocks"
	"github.com/ajittgosavii/cloudidps/pkg/errors"
	"github.com/ajittgosavii/cloudidps/pkg/provider"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testAccounts(ids ...string) account.Accounts {
	accounts := account.Accounts{}
	for _, id := range ids {
		accountID := id
		accounts = append(accounts, account.Account{
			ID:      &accountID,
			Regions: []string{"us-east-1"},
		})
	}
	return accounts
}

func testCredentials(accountID string) *credentials.Credentials {
	return &credentials.Credentials{
		AccountID: accountID,
		Value:     provider.Value{AccessKeyID: "AKID" + accountID},
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func newTestService(credSvc *credmocks.Servicer, config ServiceConfig) *Service {
	return NewService(NewServiceInput{
		CredSvc:  credSvc,
		CacheSvc: cache.New(clock.NewMock()),
		Config:   config,
	})
}

func TestAggregate(t *testing.T) {

	t.Run("aggregates the full account by region matrix", func(t *testing.T) {
		credSvc := &credmocks.Servicer{}
		credSvc.On("Credentials", mock.Anything, mock.Anything).Return(func(_ context.Context, acct *account.Account) *credentials.Credentials {
			return testCredentials(*acct.ID)
		}, nil)

		accounts := testAccounts("111111111111", "222222222222")
		accounts[0].Regions = []string{"us-east-1", "eu-west-1"}

		svc := newTestService(credSvc, ServiceConfig{Workers: 4})
		result, err := svc.Aggregate(context.Background(), &Input{
			Accounts:     accounts,
			ResourceKind: provider.ResourceEC2,
			TTL:          time.Minute,
			Query: func(_ context.Context, creds *credentials.Credentials, unit Unit) (interface{}, error) {
				return fmt.Sprintf("%s/%s", unit.AccountID, unit.Region), nil
			},
		})

		require.Nil(t, err)
		assert.False(t, result.Partial)
		assert.Len(t, result.Rows, 3)
		assert.Empty(t, result.Failed)
		assert.Equal(t, "111111111111/eu-west-1",
			result.Rows[Unit{AccountID: "111111111111", Region: "eu-west-1"}])
	})

	t.Run("one account's auth failure never blocks the rest", func(t *testing.T) {
		credSvc := &credmocks.Servicer{}
		credSvc.On("Credentials", mock.Anything, mock.MatchedBy(func(acct *account.Account) bool {
			return *acct.ID == "222222222222"
		})).Return(nil, errors.NewAuth("222222222222", fmt.Errorf("external id mismatch")))
		credSvc.On("Credentials", mock.Anything, mock.Anything).Return(func(_ context.Context, acct *account.Account) *credentials.Credentials {
			return testCredentials(*acct.ID)
		}, nil)

		svc := newTestService(credSvc, ServiceConfig{Workers: 4})
		result, err := svc.Aggregate(context.Background(), &Input{
			Accounts:     testAccounts("111111111111", "222222222222", "333333333333"),
			ResourceKind: provider.ResourceEC2,
			TTL:          time.Minute,
			Query: func(_ context.Context, creds *credentials.Credentials, unit Unit) (interface{}, error) {
				return unit.AccountID, nil
			},
		})

		require.Nil(t, err)
		assert.True(t, result.Partial)
		assert.Len(t, result.Rows, 2)
		require.Len(t, result.Failed, 1)

		failure := result.Failed[Unit{AccountID: "222222222222", Region: "us-east-1"}]
		assert.Equal(t, errors.KindAuth, failure.Kind)
	})

	t.Run("query failures are classified per unit", func(t *testing.T) {
		credSvc := &credmocks.Servicer{}
		credSvc.On("Credentials", mock.Anything, mock.Anything).Return(func(_ context.Context, acct *account.Account) *credentials.Credentials {
			return testCredentials(*acct.ID)
		}, nil)

		svc := newTestService(credSvc, ServiceConfig{Workers: 2})
		result, err := svc.Aggregate(context.Background(), &Input{
			Accounts:     testAccounts("111111111111", "222222222222"),
			ResourceKind: provider.ResourceEC2,
			TTL:          time.Minute,
			Query: func(_ context.Context, creds *credentials.Credentials, unit Unit) (interface{}, error) {
				if unit.AccountID == "222222222222" {
					return nil, errors.NewTransient("provider unreachable", fmt.Errorf("timeout"))
				}
				return unit.AccountID, nil
			},
		})

		require.Nil(t, err)
		assert.True(t, result.Partial)
		failure := result.Failed[Unit{AccountID: "222222222222", Region: "us-east-1"}]
		assert.Equal(t, errors.KindTransient, failure.Kind)
	})

	t.Run("expired deadline records unstarted units as cancelled", func(t *testing.T) {
		credSvc := &credmocks.Servicer{}
		svc := newTestService(credSvc, ServiceConfig{Workers: 2})

		var calls int32
		var mu sync.Mutex
		result, err := svc.Aggregate(context.Background(), &Input{
			Accounts:     testAccounts("111111111111", "222222222222"),
			ResourceKind: provider.ResourceEC2,
			TTL:          time.Minute,
			Deadline:     time.Now().Add(-time.Second),
			Query: func(_ context.Context, creds *credentials.Credentials, unit Unit) (interface{}, error) {
				mu.Lock()
				calls++
				mu.Unlock()
				return nil, nil
			},
		})

		require.Nil(t, err)
		assert.True(t, result.Partial)
		assert.Empty(t, result.Rows)
		require.Len(t, result.Failed, 2)
		for _, failure := range result.Failed {
			assert.Equal(t, errors.KindCancelled, failure.Kind)
		}
		assert.Zero(t, calls)
		credSvc.AssertNumberOfCalls(t, "Credentials", 0)
	})

	t.Run("narrows units to the requested regions", func(t *testing.T) {
		credSvc := &credmocks.Servicer{}
		credSvc.On("Credentials", mock.Anything, mock.Anything).Return(func(_ context.Context, acct *account.Account) *credentials.Credentials {
			return testCredentials(*acct.ID)
		}, nil)

		accounts := testAccounts("111111111111")
		accounts[0].Regions = []string{"us-east-1", "eu-west-1", "ap-southeast-2"}

		svc := newTestService(credSvc, ServiceConfig{Workers: 2})
		result, err := svc.Aggregate(context.Background(), &Input{
			Accounts:     accounts,
			Regions:      []string{"eu-west-1"},
			ResourceKind: provider.ResourceEC2,
			TTL:          time.Minute,
			Query: func(_ context.Context, creds *credentials.Credentials, unit Unit) (interface{}, error) {
				return unit.Region, nil
			},
		})

		require.Nil(t, err)
		assert.Len(t, result.Rows, 1)
		assert.Equal(t, "eu-west-1", result.Rows[Unit{AccountID: "111111111111", Region: "eu-west-1"}])
	})

	t.Run("global resource kinds collapse to one unit per account", func(t *testing.T) {
		credSvc := &credmocks.Servicer{}
		credSvc.On("Credentials", mock.Anything, mock.Anything).Return(func(_ context.Context, acct *account.Account) *credentials.Credentials {
			return testCredentials(*acct.ID)
		}, nil)

		accounts := testAccounts("111111111111")
		accounts[0].Regions = []string{"us-east-1", "eu-west-1", "ap-southeast-2"}

		svc := newTestService(credSvc, ServiceConfig{Workers: 2})
		result, err := svc.Aggregate(context.Background(), &Input{
			Accounts:     accounts,
			ResourceKind: provider.ResourceS3,
			TTL:          time.Minute,
			Query: func(_ context.Context, creds *credentials.Credentials, unit Unit) (interface{}, error) {
				return unit.Region, nil
			},
		})

		require.Nil(t, err)
		assert.Len(t, result.Rows, 1)
		assert.Equal(t, provider.GlobalRegion,
			result.Rows[Unit{AccountID: "111111111111", Region: provider.GlobalRegion}])
	})

	t.Run("repeated aggregates inside the ttl hit the cache", func(t *testing.T) {
		credSvc := &credmocks.Servicer{}
		credSvc.On("Credentials", mock.Anything, mock.Anything).Return(func(_ context.Context, acct *account.Account) *credentials.Credentials {
			return testCredentials(*acct.ID)
		}, nil)

		svc := newTestService(credSvc, ServiceConfig{Workers: 2})

		calls := 0
		var mu sync.Mutex
		input := &Input{
			Accounts:     testAccounts("111111111111"),
			ResourceKind: provider.ResourceEC2,
			TTL:          time.Minute,
			Query: func(_ context.Context, creds *credentials.Credentials, unit Unit) (interface{}, error) {
				mu.Lock()
				calls++
				mu.Unlock()
				return "rows", nil
			},
		}

		_, err := svc.Aggregate(context.Background(), input)
		require.Nil(t, err)
		_, err = svc.Aggregate(context.Background(), input)
		require.Nil(t, err)

		assert.Equal(t, 1, calls)
	})

	t.Run("rejects a nil query function", func(t *testing.T) {
		svc := newTestService(&credmocks.Servicer{}, ServiceConfig{Workers: 2})

		_, err := svc.Aggregate(context.Background(), &Input{
			Accounts:     testAccounts("111111111111"),
			ResourceKind: provider.ResourceEC2,
		})
		require.NotNil(t, err)
		assert.Equal(t, errors.KindClient, errors.KindForError(err))
	})
}
