package lifecycle

import (
	"context"

	"github.com/ajittgosavii/cloudidps/pkg/account"
)

// Bridges for the external test package, which cannot be an internal test
// of package lifecycle because importing pkg/lifecycle/mocks from there
// creates an import cycle.

var PtrString = ptrString

func (s *Service) NewRunForTest(accountID string, kind Kind) *Run {
	return s.newRun(accountID, kind)
}

func (s *Service) ConfigForTest() *ServiceConfig {
	return &s.config
}

func (s *Service) EnsureAccessRoleForTest(ctx context.Context, acct *account.Account) error {
	return s.ensureAccessRole(ctx, acct)
}

func (s *Service) ExportCostReportForTest(ctx context.Context, acct *account.Account) error {
	return s.exportCostReport(ctx, acct)
}

func (s *Service) ExportInventoryForTest(ctx context.Context, acct *account.Account) error {
	return s.exportInventory(ctx, acct)
}
