package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ajittgosavii/cloudidps/pkg/account"
	"github.com/ajittgosavii/cloudidps/pkg/api"
	"github.com/ajittgosavii/cloudidps/pkg/credentials"
	"github.com/ajittgosavii/cloudidps/pkg/dispatcher"
	"github.com/ajittgosavii/cloudidps/pkg/errors"
	"github.com/ajittgosavii/cloudidps/pkg/provider"
	"github.com/ajittgosavii/cloudidps/pkg/report"
)

const dateLayout = "2006-01-02"

type costQuery struct {
	StartDate *string `schema:"startDate,omitempty"`
	EndDate   *string `schema:"endDate,omitempty"`
	Limit     *int64  `schema:"limit,omitempty"`
	NextID    *string `schema:"nextId,omitempty"`
}

// GetCosts aggregates spend for the active fleet over the requested
// window, one cost report row per account.
func GetCosts(w http.ResponseWriter, r *http.Request) {
	query := &costQuery{}
	err := api.GetStructFromQuery(query, r.URL.Query())
	if err != nil {
		api.WriteAPIErrorResponse(w, err)
		return
	}

	start, end, err := costWindow(query, time.Now())
	if err != nil {
		api.WriteAPIErrorResponse(w, err)
		return
	}

	acctQuery := &account.Account{
		Status: account.StatusActive.StatusPtr(),
		Limit:  query.Limit,
		NextID: query.NextID,
	}
	accounts, err := Services.AccountService().List(acctQuery)
	if err != nil {
		api.WriteAPIErrorResponse(w, err)
		return
	}

	// The window is part of the cache identity: reports for different
	// windows must never share a cached row.
	result, err := Services.DispatcherService().Aggregate(r.Context(), &dispatcher.Input{
		Accounts:     *accounts,
		ResourceKind: provider.ResourceCost,
		Scope:        start.Format(dateLayout) + ".." + end.Format(dateLayout),
		TTL:          Settings.CostTTL,
		Query: func(ctx context.Context, creds *credentials.Credentials, unit dispatcher.Unit) (interface{}, error) {
			return Services.ProviderService().GetCost(ctx, creds.Value, &provider.CostInput{
				AccountID:   unit.AccountID,
				Start:       start,
				End:         end,
				Granularity: "MONTHLY",
			})
		},
	})
	if err != nil {
		api.WriteAPIErrorResponse(w, err)
		return
	}

	if acctQuery.NextID != nil {
		query.NextID = acctQuery.NextID
		nextURL, err := api.BuildNextURL(r, query, baseRequest)
		if err != nil {
			api.WriteAPIErrorResponse(w, err)
			return
		}
		w.Header().Add("Link", fmt.Sprintf("<%s>; rel=\"next\"", nextURL.String()))
	}

	api.WriteAPIResponse(w, http.StatusOK, report.NewCostSummary(result, *accounts, time.Now()))
}

// costWindow resolves the report window. An absent start backs off the
// default window from the end; an absent end is now.
func costWindow(query *costQuery, now time.Time) (time.Time, time.Time, error) {
	end := now
	var err error
	if query.EndDate != nil {
		end, err = time.Parse(dateLayout, *query.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, errors.NewValidation("costs",
				fmt.Errorf("endDate: must be formatted %q", dateLayout))
		}
	}

	start := end.AddDate(0, 0, -Settings.DefaultWindowDays)
	if query.StartDate != nil {
		start, err = time.Parse(dateLayout, *query.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, errors.NewValidation("costs",
				fmt.Errorf("startDate: must be formatted %q", dateLayout))
		}
	}

	if !start.Before(end) {
		return time.Time{}, time.Time{}, errors.NewValidation("costs",
			fmt.Errorf("startDate: must be before endDate"))
	}
	return start, end, nil
}
