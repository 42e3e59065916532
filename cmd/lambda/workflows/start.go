package main

import (
	"encoding/json"
	"net/http"

	"github.com/ajittgosavii/cloudidps/pkg/api"
	"github.com/ajittgosavii/cloudidps/pkg/errors"
	"github.com/ajittgosavii/cloudidps/pkg/lifecycle"
)

type startWorkflowRequest struct {
	AccountID string `json:"accountId"`
	Kind      string `json:"kind"`
}

// StartWorkflow kicks off an onboard or offboard run for an account.
// The steps execute within this invocation; the response carries the
// run in its final state.
func StartWorkflow(w http.ResponseWriter, r *http.Request) {
	request := &startWorkflowRequest{}
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		api.WriteAPIErrorResponse(w,
			errors.NewBadRequest("invalid request parameters"))
		return
	}

	kind, err := lifecycle.ParseKind(request.Kind)
	if err != nil {
		api.WriteAPIErrorResponse(w, errors.NewValidation("workflow", err))
		return
	}

	run, err := Services.LifecycleService().StartWorkflow(r.Context(), request.AccountID, kind)
	if err != nil {
		// A step failure still produced a resumable run; anything
		// earlier did not get that far.
		if run == nil {
			api.WriteAPIErrorResponse(w, err)
			return
		}
	}

	api.WriteAPIResponse(w, http.StatusCreated, run)
}
