package lifecycle_test

import (
	"context"
	"testing"

	"github.com/ajittgosavii/cloudidps/pkg/account"
	"github.com/ajittgosavii/cloudidps/pkg/dispatcher"
	"github.com/ajittgosavii/cloudidps/pkg/errors"
	"github.com/ajittgosavii/cloudidps/pkg/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEnsureAccessRole(t *testing.T) {

	t.Run("uses the account's own external id", func(t *testing.T) {
		f := newFixture()
		f.svc.ConfigForTest().AccessRoleExternalID = "fleet-wide-id"
		acct := fixtureAccount(account.StatusOnboarding)

		f.credSvc.On("Credentials", mock.Anything, mock.Anything).Return(fixtureCredentials(), nil)
		f.providerSvc.On("EnsureAccessRole", mock.Anything, mock.Anything,
			mock.MatchedBy(func(input *provider.AccessRoleInput) bool {
				return input.ExternalID == "CloudIDP-999999999999"
			}),
		).Return(&provider.AccessRole{}, nil)

		err := f.svc.EnsureAccessRoleForTest(context.Background(), acct)
		require.Nil(t, err)

		f.providerSvc.AssertExpectations(t)
		f.accountSvc.AssertNotCalled(t, "Save", mock.Anything)
	})

	t.Run("falls back to the fleet external id and persists it", func(t *testing.T) {
		f := newFixture()
		f.svc.ConfigForTest().AccessRoleExternalID = "fleet-wide-id"
		acct := fixtureAccount(account.StatusOnboarding)
		acct.ExternalID = nil

		f.credSvc.On("Credentials", mock.Anything, mock.Anything).Return(fixtureCredentials(), nil)
		f.providerSvc.On("EnsureAccessRole", mock.Anything, mock.Anything,
			mock.MatchedBy(func(input *provider.AccessRoleInput) bool {
				return input.ExternalID == "fleet-wide-id"
			}),
		).Return(&provider.AccessRole{Created: true}, nil)
		f.accountSvc.On("Save", mock.MatchedBy(func(saved *account.Account) bool {
			return saved.ExternalID != nil && *saved.ExternalID == "fleet-wide-id"
		})).Return(nil)

		err := f.svc.EnsureAccessRoleForTest(context.Background(), acct)
		require.Nil(t, err)

		f.providerSvc.AssertExpectations(t)
		f.accountSvc.AssertExpectations(t)
	})

	t.Run("no external id anywhere leaves the record untouched", func(t *testing.T) {
		f := newFixture()
		acct := fixtureAccount(account.StatusOnboarding)
		acct.ExternalID = nil

		f.credSvc.On("Credentials", mock.Anything, mock.Anything).Return(fixtureCredentials(), nil)
		f.providerSvc.On("EnsureAccessRole", mock.Anything, mock.Anything,
			mock.MatchedBy(func(input *provider.AccessRoleInput) bool {
				return input.ExternalID == ""
			}),
		).Return(&provider.AccessRole{}, nil)

		err := f.svc.EnsureAccessRoleForTest(context.Background(), acct)
		require.Nil(t, err)

		f.accountSvc.AssertNotCalled(t, "Save", mock.Anything)
	})
}

func TestExportCostReport(t *testing.T) {

	t.Run("mails the workbook to the owner when configured", func(t *testing.T) {
		f := newFixture()
		f.svc.ConfigForTest().MailCostReport = true
		acct := fixtureAccount(account.StatusOffboarding)

		f.credSvc.On("Credentials", mock.Anything, mock.Anything).Return(fixtureCredentials(), nil)
		f.providerSvc.On("GetCost", mock.Anything, mock.Anything, mock.Anything).Return(&provider.CostReport{}, nil)
		f.artifactSvc.On("StoreCostReport", mock.Anything, "offboard/123456789012/final-cost-report", mock.Anything).
			Return("s3://cloudidp-artifacts/offboard/123456789012/final-cost-report.xlsx", nil)
		f.artifactSvc.On("RenderCostReport", mock.Anything).Return([]byte("workbook-bytes"), nil)
		f.notifySvc.On("NotifyWithAttachment", mock.Anything, "owner@example.com",
			mock.Anything, mock.Anything,
			"cost-report-123456789012.xlsx", []byte("workbook-bytes"),
		).Return(nil)

		err := f.svc.ExportCostReportForTest(context.Background(), acct)
		require.Nil(t, err)

		f.artifactSvc.AssertExpectations(t)
		f.notifySvc.AssertExpectations(t)
	})

	t.Run("stores without mailing when not configured", func(t *testing.T) {
		f := newFixture()
		acct := fixtureAccount(account.StatusOffboarding)

		f.credSvc.On("Credentials", mock.Anything, mock.Anything).Return(fixtureCredentials(), nil)
		f.providerSvc.On("GetCost", mock.Anything, mock.Anything, mock.Anything).Return(&provider.CostReport{}, nil)
		f.artifactSvc.On("StoreCostReport", mock.Anything, mock.Anything, mock.Anything).Return("s3://bucket/key", nil)

		err := f.svc.ExportCostReportForTest(context.Background(), acct)
		require.Nil(t, err)

		f.notifySvc.AssertNotCalled(t, "NotifyWithAttachment",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("skips the mail when the account has no owner", func(t *testing.T) {
		f := newFixture()
		f.svc.ConfigForTest().MailCostReport = true
		acct := fixtureAccount(account.StatusOffboarding)
		acct.OwnerEmail = nil

		f.credSvc.On("Credentials", mock.Anything, mock.Anything).Return(fixtureCredentials(), nil)
		f.providerSvc.On("GetCost", mock.Anything, mock.Anything, mock.Anything).Return(&provider.CostReport{}, nil)
		f.artifactSvc.On("StoreCostReport", mock.Anything, mock.Anything, mock.Anything).Return("s3://bucket/key", nil)

		err := f.svc.ExportCostReportForTest(context.Background(), acct)
		require.Nil(t, err)

		f.notifySvc.AssertNotCalled(t, "NotifyWithAttachment",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestExportInventory(t *testing.T) {

	t.Run("a partial aggregate reports every failed unit", func(t *testing.T) {
		f := newFixture()
		acct := fixtureAccount(account.StatusOffboarding)
		acct.Regions = []string{"us-east-1", "eu-west-1"}

		f.dispatchSvc.On("Aggregate", mock.Anything, mock.Anything).Return(&dispatcher.Result{
			Rows: map[dispatcher.Unit]interface{}{},
			Failed: map[dispatcher.Unit]dispatcher.Failure{
				{AccountID: "123456789012", Region: "us-east-1"}: {
					Kind: errors.KindAuth, Message: "access denied",
				},
				{AccountID: "123456789012", Region: "eu-west-1"}: {
					Kind: errors.KindTransient, Message: "throttled",
				},
			},
			Partial: true,
		}, nil)

		err := f.svc.ExportInventoryForTest(context.Background(), acct)
		require.NotNil(t, err)

		// Both failed units surface, not just the first map entry.
		assert.Contains(t, err.Error(), "123456789012/us-east-1: access denied")
		assert.Contains(t, err.Error(), "123456789012/eu-west-1: throttled")

		multi, ok := err.(*errors.MultiError)
		require.True(t, ok)
		assert.Len(t, multi.Errors, 2)

		f.artifactSvc.AssertNotCalled(t, "StoreJSON", mock.Anything, mock.Anything, mock.Anything)
	})
}
