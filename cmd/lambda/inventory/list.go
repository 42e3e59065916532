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

type inventoryQuery struct {
	ResourceKind string  `schema:"resourceKind,omitempty"`
	AccountID    *string `schema:"accountId,omitempty"`
	Region       *string `schema:"region,omitempty"`
	Limit        *int64  `schema:"limit,omitempty"`
	NextID       *string `schema:"nextId,omitempty"`
}

// GetInventory aggregates one resource kind across the fleet. The
// result is a snapshot of what was reachable: broken accounts show up
// under failures, never as a wholesale error.
func GetInventory(w http.ResponseWriter, r *http.Request) {
	query := &inventoryQuery{}
	err := api.GetStructFromQuery(query, r.URL.Query())
	if err != nil {
		api.WriteAPIErrorResponse(w, err)
		return
	}

	kind, err := provider.ParseResourceKind(query.ResourceKind)
	if err != nil {
		api.WriteAPIErrorResponse(w, errors.NewValidation("inventory", err))
		return
	}

	accounts, nextID, err := scopedAccounts(query)
	if err != nil {
		api.WriteAPIErrorResponse(w, err)
		return
	}

	var regions []string
	if query.Region != nil {
		regions = []string{*query.Region}
	}

	result, err := Services.DispatcherService().Aggregate(r.Context(), &dispatcher.Input{
		Accounts:     *accounts,
		Regions:      regions,
		ResourceKind: kind,
		TTL:          Settings.InventoryTTL,
		Query: func(ctx context.Context, creds *credentials.Credentials, unit dispatcher.Unit) (interface{}, error) {
			return Services.ProviderService().ListResources(ctx, creds.Value, &provider.ListResourcesInput{
				AccountID: unit.AccountID,
				Region:    unit.Region,
				Kind:      kind,
			})
		},
	})
	if err != nil {
		api.WriteAPIErrorResponse(w, err)
		return
	}

	if nextID != nil {
		query.NextID = nextID
		nextURL, err := api.BuildNextURL(r, query, baseRequest)
		if err != nil {
			api.WriteAPIErrorResponse(w, err)
			return
		}
		w.Header().Add("Link", fmt.Sprintf("<%s>; rel=\"next\"", nextURL.String()))
	}

	api.WriteAPIResponse(w, http.StatusOK, report.NewInventoryReport(kind, result, time.Now()))
}

// scopedAccounts resolves the accounts in scope for the aggregate. A
// single accountId bypasses the paged registry listing.
func scopedAccounts(query *inventoryQuery) (*account.Accounts, *string, error) {
	if query.AccountID != nil {
		acct, err := Services.AccountService().Get(*query.AccountID)
		if err != nil {
			return nil, nil, err
		}
		return &account.Accounts{*acct}, nil, nil
	}

	acctQuery := &account.Account{
		Status: account.StatusActive.StatusPtr(),
		Limit:  query.Limit,
		NextID: query.NextID,
	}
	accounts, err := Services.AccountService().List(acctQuery)
	if err != nil {
		return nil, nil, err
	}
	return accounts, acctQuery.NextID, nil
}
