package main

import (
	"encoding/json"
	"net/http"

	"github.com/ajittgosavii/cloudidps/pkg/account"
	"github.com/ajittgosavii/cloudidps/pkg/api"
	"github.com/ajittgosavii/cloudidps/pkg/errors"
	"github.com/gorilla/mux"
)

// UpdateAccountByID updates an account's mutable registry fields.
// Status changes go through the workflow API, never through here.
func UpdateAccountByID(w http.ResponseWriter, r *http.Request) {
	accountID := mux.Vars(r)["accountId"]

	request := &account.Account{}
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		api.WriteAPIErrorResponse(w,
			errors.NewBadRequest("invalid request parameters"))
		return
	}

	acct, err := Services.AccountService().Update(accountID, request)
	if err != nil {
		api.WriteAPIErrorResponse(w, err)
		return
	}

	api.WriteAPIResponse(w, http.StatusOK, acct)
}
