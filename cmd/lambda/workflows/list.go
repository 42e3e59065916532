package main

import (
	"fmt"
	"net/http"

	"github.com/ajittgosavii/cloudidps/pkg/api"
	"github.com/ajittgosavii/cloudidps/pkg/lifecycle"
)

// GetWorkflows - Returns runs matching the query filters
func GetWorkflows(w http.ResponseWriter, r *http.Request) {
	query := &lifecycle.Run{}
	err := api.GetStructFromQuery(query, r.URL.Query())
	if err != nil {
		api.WriteAPIErrorResponse(w, err)
		return
	}

	runs, err := Services.LifecycleService().ListRuns(query)
	if err != nil {
		api.WriteAPIErrorResponse(w, err)
		return
	}

	if query.NextID != nil {
		nextURL, err := api.BuildNextURL(r, query, baseRequest)
		if err != nil {
			api.WriteAPIErrorResponse(w, err)
			return
		}
		w.Header().Add("Link", fmt.Sprintf("<%s>; rel=\"next\"", nextURL.String()))
	}

	api.WriteAPIResponse(w, http.StatusOK, runs)
}
