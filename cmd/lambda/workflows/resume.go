package main

import (
	"net/http"

	"github.com/ajittgosavii/cloudidps/pkg/api"
	"github.com/gorilla/mux"
)

// ResumeWorkflow re-enters a failed run at the step that failed.
// Completed steps are never replayed.
func ResumeWorkflow(w http.ResponseWriter, r *http.Request) {
	runID := mux.Vars(r)["runId"]

	run, err := Services.LifecycleService().ResumeWorkflow(r.Context(), runID)
	if err != nil {
		if run == nil {
			api.WriteAPIErrorResponse(w, err)
			return
		}
	}

	api.WriteAPIResponse(w, http.StatusOK, run)
}
