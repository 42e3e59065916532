// Package report renders aggregation output into shareable artifacts:
// JSON inventory and cost documents for the API, and the XLSX cost
// workbook stored as offboarding evidence.
package report

import (
	"sort"
	"strconv"
	"time"

	"github.com/ajittgosavii/cloudidps/pkg/account"
	"github.com/ajittgosavii/cloudidps/pkg/dispatcher"
	"github.com/ajittgosavii/cloudidps/pkg/provider"

	"github.com/360EntSecGroup-Skylar/excelize"
)

// UnitFailure is one failed cell of an aggregate, flattened for JSON
type UnitFailure struct {
	AccountID string `json:"accountId"`
	Region    string `json:"region"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
}

// InventoryReport is the JSON view of a resource aggregate
type InventoryReport struct {
	ResourceKind string              `json:"resourceKind"`
	GeneratedAt  time.Time           `json:"generatedAt"`
	Resources    []provider.Resource `json:"resources"`
	Failures     []UnitFailure       `json:"failures"`
	Partial      bool                `json:"partial"`
}

// CostRow is one account's spend joined with its registry identity.
type CostRow struct {
	*provider.CostReport
	Name       *string `json:"name,omitempty"`
	CostCenter *string `json:"costCenter,omitempty"`
}

// CostSummary is the JSON view of a cost aggregate
type CostSummary struct {
	GeneratedAt time.Time     `json:"generatedAt"`
	Accounts    []CostRow     `json:"accounts"`
	Failures    []UnitFailure `json:"failures"`
	Partial     bool          `json:"partial"`
}

// NewInventoryReport flattens a dispatcher result whose rows are
// resource pages into one report. Row order is stable across runs.
func NewInventoryReport(kind provider.ResourceKind, result *dispatcher.Result, generatedAt time.Time) *InventoryReport {
	report := &InventoryReport{
		ResourceKind: kind.String(),
		GeneratedAt:  generatedAt,
		Resources:    []provider.Resource{},
		Failures:     flattenFailures(result),
		Partial:      result.Partial,
	}

	for _, unit := range sortedUnits(result.Rows) {
		page, ok := result.Rows[unit].(*provider.ResourcePage)
		if !ok || page == nil {
			continue
		}
		report.Resources = append(report.Resources, page.Resources...)
	}
	return report
}

// NewCostSummary flattens a dispatcher result whose rows are cost
// reports, one per account, joining each row with the registry record
// it was aggregated for.
func NewCostSummary(result *dispatcher.Result, accounts account.Accounts, generatedAt time.Time) *CostSummary {
	byID := map[string]*account.Account{}
	for i := range accounts {
		if accounts[i].ID != nil {
			byID[*accounts[i].ID] = &accounts[i]
		}
	}

	summary := &CostSummary{
		GeneratedAt: generatedAt,
		Accounts:    []CostRow{},
		Failures:    flattenFailures(result),
		Partial:     result.Partial,
	}

	for _, unit := range sortedUnits(result.Rows) {
		cost, ok := result.Rows[unit].(*provider.CostReport)
		if !ok || cost == nil {
			continue
		}
		row := CostRow{CostReport: cost}
		if acct, ok := byID[unit.AccountID]; ok {
			row.Name = acct.Name
			row.CostCenter = acct.CostCenter
		}
		summary.Accounts = append(summary.Accounts, row)
	}
	return summary
}

// costWorkbook renders one account's cost report as an XLSX file with a
// summary sheet and a per-service breakout sheet.
func costWorkbook(cost *provider.CostReport) *excelize.File {
	xlsx := excelize.NewFile()

	xlsx.SetSheetName("Sheet1", "Summary")
	xlsx.SetCellValue("Summary", "A1", "Account")
	xlsx.SetCellValue("Summary", "B1", "Start")
	xlsx.SetCellValue("Summary", "C1", "End")
	xlsx.SetCellValue("Summary", "D1", "Total")
	xlsx.SetCellValue("Summary", "E1", "Unit")
	if cost.AccountID != nil {
		xlsx.SetCellValue("Summary", "A2", *cost.AccountID)
	}
	if cost.Start != nil {
		xlsx.SetCellValue("Summary", "B2", cost.Start.Format("2006-01-02"))
	}
	if cost.End != nil {
		xlsx.SetCellValue("Summary", "C2", cost.End.Format("2006-01-02"))
	}
	if cost.Amount != nil {
		xlsx.SetCellValue("Summary", "D2", *cost.Amount)
	}
	if cost.Unit != nil {
		xlsx.SetCellValue("Summary", "E2", *cost.Unit)
	}

	xlsx.NewSheet("ByService")
	xlsx.SetCellValue("ByService", "A1", "Service")
	xlsx.SetCellValue("ByService", "B1", "Amount")

	services := make([]string, 0, len(cost.ByService))
	for service := range cost.ByService {
		services = append(services, service)
	}
	sort.Strings(services)
	for i, service := range services {
		row := i + 2
		xlsx.SetCellValue("ByService", cellAxis("A", row), service)
		xlsx.SetCellValue("ByService", cellAxis("B", row), cost.ByService[service])
	}

	return xlsx
}

func cellAxis(column string, row int) string {
	return column + strconv.Itoa(row)
}

func flattenFailures(result *dispatcher.Result) []UnitFailure {
	failures := []UnitFailure{}
	for _, unit := range sortedFailedUnits(result.Failed) {
		failure := result.Failed[unit]
		failures = append(failures, UnitFailure{
			AccountID: unit.AccountID,
			Region:    unit.Region,
			Kind:      string(failure.Kind),
			Message:   failure.Message,
		})
	}
	return failures
}

func sortedUnits(rows map[dispatcher.Unit]interface{}) []dispatcher.Unit {
	units := make([]dispatcher.Unit, 0, len(rows))
	for unit := range rows {
		units = append(units, unit)
	}
	sortUnits(units)
	return units
}

func sortedFailedUnits(failed map[dispatcher.Unit]dispatcher.Failure) []dispatcher.Unit {
	units := make([]dispatcher.Unit, 0, len(failed))
	for unit := range failed {
		units = append(units, unit)
	}
	sortUnits(units)
	return units
}

func sortUnits(units []dispatcher.Unit) {
	sort.Slice(units, func(i, j int) bool {
		if units[i].AccountID != units[j].AccountID {
			return units[i].AccountID < units[j].AccountID
		}
		return units[i].Region < units[j].Region
	})
}
