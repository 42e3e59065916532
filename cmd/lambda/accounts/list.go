package main

import (
	"fmt"
	"net/http"

	"github.com/ajittgosavii/cloudidps/pkg/account"
	"github.com/ajittgosavii/cloudidps/pkg/api"
)

// GetAccounts - Returns accounts matching the query filters
func GetAccounts(w http.ResponseWriter, r *http.Request) {
	query := &account.Account{}
	err := api.GetStructFromQuery(query, r.URL.Query())
	if err != nil {
		api.WriteAPIErrorResponse(w, err)
		return
	}

	accounts, err := Services.AccountService().List(query)
	if err != nil {
		api.WriteAPIErrorResponse(w, err)
		return
	}

	// If the data layer returned a next key, the URL to retrieve the
	// next page goes into the Link header.
	if query.NextID != nil {
		nextURL, err := api.BuildNextURL(r, query, baseRequest)
		if err != nil {
			api.WriteAPIErrorResponse(w, err)
			return
		}
		w.Header().Add("Link", fmt.Sprintf("<%s>; rel=\"next\"", nextURL.String()))
	}

	api.WriteAPIResponse(w, http.StatusOK, accounts)
}
