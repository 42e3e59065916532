package main

import (
	"net/http"

	"github.com/ajittgosavii/cloudidps/pkg/api"
	"github.com/gorilla/mux"
)

// GetAccountByID - Returns the single account by ID
func GetAccountByID(w http.ResponseWriter, r *http.Request) {
	accountID := mux.Vars(r)["accountId"]

	acct, err := Services.AccountService().Get(accountID)
	if err != nil {
		api.WriteAPIErrorResponse(w, err)
		return
	}

	api.WriteAPIResponse(w, http.StatusOK, acct)
}
