package lifecycle

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ajittgosavii/cloudidps/pkg/account"
	"github.com/ajittgosavii/cloudidps/pkg/credentials"
	"github.com/ajittgosavii/cloudidps/pkg/dispatcher"
	"github.com/ajittgosavii/cloudidps/pkg/errors"
	"github.com/ajittgosavii/cloudidps/pkg/provider"
)

// Step names are stable identifiers: they appear in persisted run
// records, so renaming one orphans old checkpoints.
const (
	StepValidateAccount      = "validate_account"
	StepCreateIAMRole        = "create_iam_role"
	StepConfigureCloudTrail  = "configure_cloudtrail"
	StepEnableConfig         = "enable_config"
	StepEnableSecurityHub    = "enable_security_hub"
	StepEnableGuardDuty      = "enable_guardduty"
	StepActivateCostExplorer = "activate_cost_explorer"
	StepApplyTagPolicy       = "apply_tag_policy"
	StepRegisterAccount      = "register_account"

	StepInventoryExport   = "inventory_export"
	StepCostReport        = "cost_report"
	StepSecurityExport    = "security_export"
	StepCloudTrailArchive = "cloudtrail_archive"
	StepBackupConfig      = "backup_config"
	StepCleanupIAMRole    = "cleanup_iam_role"
	StepDeregisterAccount = "deregister_account"
)

type stepFunc func(ctx context.Context, acct *account.Account) error

type stepDefinition struct {
	name    string
	execute stepFunc
}

// steps returns the declared step order for a workflow kind. Every step
// is idempotent: re-executing a completed one is a provider-side no-op.
func (s *Service) steps(kind Kind) []stepDefinition {
	if kind == KindOffboard {
		return []stepDefinition{
			{StepInventoryExport, s.exportInventory},
			{StepCostReport, s.exportCostReport},
			{StepSecurityExport, s.exportSecurityFindings},
			{StepCloudTrailArchive, s.archiveAuditLogs},
			{StepBackupConfig, s.backupConfiguration},
			{StepCleanupIAMRole, s.cleanupAccessRole},
			{StepDeregisterAccount, s.deregisterAccount},
		}
	}
	return []stepDefinition{
		{StepValidateAccount, s.validateAccount},
		{StepCreateIAMRole, s.ensureAccessRole},
		{StepConfigureCloudTrail, s.enableService(provider.ServiceAuditTrail)},
		{StepEnableConfig, s.enableService(provider.ServiceConfigCompliance)},
		{StepEnableSecurityHub, s.enableService(provider.ServiceSecurityFindings)},
		{StepEnableGuardDuty, s.enableService(provider.ServiceThreatDetection)},
		{StepActivateCostExplorer, s.enableService(provider.ServiceCostReporting)},
		{StepApplyTagPolicy, s.applyTagPolicy},
		{StepRegisterAccount, s.registerAccount},
	}
}

// sessionFor brokers a credential for the step's target account.
func (s *Service) sessionFor(ctx context.Context, acct *account.Account) (*credentials.Credentials, error) {
	return s.credSvc.Credentials(ctx, acct)
}

// serviceRegion is where regional managed services are enabled. Global
// ones are pinned by the provider itself.
func serviceRegion(acct *account.Account, kind provider.ServiceKind) string {
	if kind.IsGlobal() || len(acct.Regions) == 0 {
		return provider.GlobalRegion
	}
	return acct.Regions[0]
}

func (s *Service) validateAccount(ctx context.Context, acct *account.Account) error {
	creds, err := s.sessionFor(ctx, acct)
	if err != nil {
		return err
	}
	return s.providerSvc.VerifyAccess(ctx, creds.Value, *acct.ID)
}

func (s *Service) ensureAccessRole(ctx context.Context, acct *account.Account) error {
	creds, err := s.sessionFor(ctx, acct)
	if err != nil {
		return err
	}

	// Accounts registered without their own external id inherit the
	// fleet-wide one. The resolved id is persisted back so the
	// credential broker presents it on every later assume.
	externalID := s.config.AccessRoleExternalID
	if acct.ExternalID != nil {
		externalID = *acct.ExternalID
	}
	_, err = s.providerSvc.EnsureAccessRole(ctx, creds.Value, &provider.AccessRoleInput{
		AccountID:      *acct.ID,
		RoleName:       s.config.AccessRoleName,
		TrustAccountID: s.config.MgmtAccountID,
		ExternalID:     externalID,
	})
	if err != nil {
		return err
	}

	if acct.ExternalID == nil && externalID != "" {
		acct.ExternalID = &externalID
		if err := s.accountSvc.Save(acct); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) enableService(kind provider.ServiceKind) stepFunc {
	return func(ctx context.Context, acct *account.Account) error {
		creds, err := s.sessionFor(ctx, acct)
		if err != nil {
			return err
		}
		return s.providerSvc.EnableService(ctx, creds.Value, &provider.ServiceInput{
			AccountID: *acct.ID,
			Kind:      kind,
			Region:    serviceRegion(acct, kind),
		})
	}
}

func (s *Service) applyTagPolicy(ctx context.Context, acct *account.Account) error {
	creds, err := s.sessionFor(ctx, acct)
	if err != nil {
		return err
	}

	tags := map[string]string{"ManagedBy": "CloudIDP"}
	if acct.Environment != nil {
		tags["Environment"] = *acct.Environment
	}
	if acct.CostCenter != nil {
		tags["CostCenter"] = *acct.CostCenter
	}
	return s.providerSvc.ApplyTagPolicy(ctx, creds.Value, &provider.TagPolicyInput{
		AccountID: *acct.ID,
		RoleName:  s.config.AccessRoleName,
		Tags:      tags,
	})
}

func (s *Service) registerAccount(ctx context.Context, acct *account.Account) error {
	_, err := s.accountSvc.SetStatus(*acct.ID, account.StatusActive, "onboard complete")
	return err
}

// exportInventory aggregates every resource kind across the account's
// regions and stores the snapshot as the offboarding evidence artifact.
func (s *Service) exportInventory(ctx context.Context, acct *account.Account) error {
	inventory := map[string]interface{}{}

	for _, kind := range provider.ValidResourceKinds {
		resourceKind := kind
		result, err := s.dispatchSvc.Aggregate(ctx, &dispatcher.Input{
			Accounts:     account.Accounts{*acct},
			ResourceKind: resourceKind,
			TTL:          s.config.InventoryTTL,
			Query: func(ctx context.Context, creds *credentials.Credentials, unit dispatcher.Unit) (interface{}, error) {
				return s.providerSvc.ListResources(ctx, creds.Value, &provider.ListResourcesInput{
					AccountID: unit.AccountID,
					Region:    unit.Region,
					Kind:      resourceKind,
				})
			},
		})
		if err != nil {
			return err
		}
		if result.Partial {
			units := make([]dispatcher.Unit, 0, len(result.Failed))
			for unit := range result.Failed {
				units = append(units, unit)
			}
			sort.Slice(units, func(i, j int) bool {
				if units[i].AccountID != units[j].AccountID {
					return units[i].AccountID < units[j].AccountID
				}
				return units[i].Region < units[j].Region
			})
			failures := make([]error, 0, len(units))
			for _, unit := range units {
				failures = append(failures, fmt.Errorf("%s/%s: %s", unit.AccountID, unit.Region, result.Failed[unit].Message))
			}
			return errors.NewMultiError(
				fmt.Sprintf("inventory for %s incomplete", resourceKind),
				failures,
			)
		}
		rows := map[string]interface{}{}
		for unit, row := range result.Rows {
			rows[unit.Region] = row
		}
		inventory[resourceKind.String()] = rows
	}

	_, err := s.artifactSvc.StoreJSON(ctx, s.artifactKey(acct, "inventory"), inventory)
	return err
}

func (s *Service) exportCostReport(ctx context.Context, acct *account.Account) error {
	creds, err := s.sessionFor(ctx, acct)
	if err != nil {
		return err
	}

	end := time.Now()
	start := end.AddDate(0, 0, -s.config.CostReportDays)
	cost, err := s.providerSvc.GetCost(ctx, creds.Value, &provider.CostInput{
		AccountID:   *acct.ID,
		Start:       start,
		End:         end,
		Granularity: "MONTHLY",
	})
	if err != nil {
		return err
	}

	location, err := s.artifactSvc.StoreCostReport(ctx, s.artifactKey(acct, "final-cost-report"), cost)
	if err != nil {
		return err
	}

	if s.config.MailCostReport && acct.OwnerEmail != nil {
		workbook, err := s.artifactSvc.RenderCostReport(cost)
		if err != nil {
			return err
		}
		return s.notifySvc.NotifyWithAttachment(ctx, *acct.OwnerEmail,
			fmt.Sprintf("CloudIDP final cost report for account %s", *acct.ID),
			fmt.Sprintf("The final cost report for account %s is attached. A copy is stored at %s.", *acct.ID, location),
			fmt.Sprintf("cost-report-%s.xlsx", *acct.ID),
			workbook)
	}
	return nil
}

func (s *Service) exportSecurityFindings(ctx context.Context, acct *account.Account) error {
	creds, err := s.sessionFor(ctx, acct)
	if err != nil {
		return err
	}

	findings := map[string]*provider.FindingsExport{}
	for _, region := range acct.Regions {
		export, err := s.providerSvc.ExportFindings(ctx, creds.Value, &provider.ExportInput{
			AccountID: *acct.ID,
			Region:    region,
		})
		if err != nil {
			return err
		}
		findings[region] = export
	}

	_, err = s.artifactSvc.StoreJSON(ctx, s.artifactKey(acct, "security-findings"), findings)
	return err
}

func (s *Service) archiveAuditLogs(ctx context.Context, acct *account.Account) error {
	creds, err := s.sessionFor(ctx, acct)
	if err != nil {
		return err
	}

	receipts := map[string]*provider.ArchiveReceipt{}
	for _, region := range acct.Regions {
		receipt, err := s.providerSvc.ArchiveAuditLogs(ctx, creds.Value, &provider.ArchiveInput{
			AccountID: *acct.ID,
			Region:    region,
		})
		if err != nil {
			return err
		}
		receipts[region] = receipt
	}

	_, err = s.artifactSvc.StoreJSON(ctx, s.artifactKey(acct, "audit-log-archive"), receipts)
	return err
}

func (s *Service) backupConfiguration(ctx context.Context, acct *account.Account) error {
	_, err := s.artifactSvc.StoreJSON(ctx, s.artifactKey(acct, "account-config"), acct)
	return err
}

func (s *Service) cleanupAccessRole(ctx context.Context, acct *account.Account) error {
	creds, err := s.sessionFor(ctx, acct)
	if err != nil {
		return err
	}

	return s.providerSvc.DeleteAccessRole(ctx, creds.Value, &provider.AccessRoleInput{
		AccountID: *acct.ID,
		RoleName:  s.config.AccessRoleName,
	})
}

func (s *Service) deregisterAccount(ctx context.Context, acct *account.Account) error {
	_, err := s.accountSvc.SetStatus(*acct.ID, account.StatusDeregistered, "offboard complete")
	return err
}

func (s *Service) artifactKey(acct *account.Account, name string) string {
	return fmt.Sprintf("offboard/%s/%s", *acct.ID, name)
}
