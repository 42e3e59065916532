package main

import (
	"encoding/json"
	"net/http"

	"github.com/ajittgosavii/cloudidps/pkg/account"
	"github.com/ajittgosavii/cloudidps/pkg/api"
	"github.com/ajittgosavii/cloudidps/pkg/errors"
)

// CreateAccount - Registers a new account in the registry. The record
// starts out Pending; an onboard workflow moves it to Active.
func CreateAccount(w http.ResponseWriter, r *http.Request) {
	newAccount := &account.Account{}
	err := json.NewDecoder(r.Body).Decode(newAccount)
	if err != nil {
		api.WriteAPIErrorResponse(w,
			errors.NewBadRequest("invalid request parameters"))
		return
	}

	acct, err := Services.AccountService().Create(newAccount)
	if err != nil {
		api.WriteAPIErrorResponse(w, err)
		return
	}

	api.WriteAPIResponse(w, http.StatusCreated, acct)
}
