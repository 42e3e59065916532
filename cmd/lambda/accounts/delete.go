package main

import (
	"net/http"

	"github.com/ajittgosavii/cloudidps/pkg/api"
	"github.com/gorilla/mux"
)

// DeleteAccountByID removes a deregistered account's record from the
// registry. Accounts still in any other status are rejected with a
// conflict; run an offboard workflow first.
func DeleteAccountByID(w http.ResponseWriter, r *http.Request) {
	accountID := mux.Vars(r)["accountId"]

	acct, err := Services.AccountService().Get(accountID)
	if err != nil {
		api.WriteAPIErrorResponse(w, err)
		return
	}

	err = Services.AccountService().Delete(acct)
	if err != nil {
		api.WriteAPIErrorResponse(w, err)
		return
	}

	api.WriteAPIResponse(w, http.StatusNoContent, nil)
}
