package main

import (
	"net/http"

	"github.com/ajittgosavii/cloudidps/pkg/api"
	"github.com/gorilla/mux"
)

// GetWorkflowByID - Returns the single run by ID
func GetWorkflowByID(w http.ResponseWriter, r *http.Request) {
	runID := mux.Vars(r)["runId"]

	run, err := Services.LifecycleService().GetRun(runID)
	if err != nil {
		api.WriteAPIErrorResponse(w, err)
		return
	}

	api.WriteAPIResponse(w, http.StatusOK, run)
}
