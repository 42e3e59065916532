package main

import (
	"fmt"
	"io/ioutil"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ajittgosavii/cloudidps/pkg/account"
	"github.com/ajittgosavii/cloudidps/pkg/account/accountiface/mocks"
	"github.com/ajittgosavii/cloudidps/pkg/config"
	"github.com/ajittgosavii/cloudidps/pkg/errors"
	"github.com/gorilla/mux"
	"github.com/gotidy/ptr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpdateAccountByID(t *testing.T) {

	type response struct {
		StatusCode int
		Body       string
	}
	tests := []struct {
		name       string
		accountID  string
		request    string
		expResp    response
		retAccount *account.Account
		retErr     error
	}{
		{
			name:      "success",
			accountID: "123456789012",
			request:   "{\"environment\":\"prod\"}",
			expResp: response{
				StatusCode: 200,
				Body:       "{\"id\":\"123456789012\",\"accountStatus\":\"Active\",\"environment\":\"prod\"}\n",
			},
			retAccount: &account.Account{
				ID:          ptr.String("123456789012"),
				Status:      account.StatusActive.StatusPtr(),
				Environment: ptr.String("prod"),
			},
		},
		{
			name:      "malformed body",
			accountID: "123456789012",
			request:   "not json",
			expResp: response{
				StatusCode: 400,
				Body:       "{\"error\":{\"message\":\"invalid request parameters\",\"code\":\"ClientError\"}}\n",
			},
		},
		{
			name:      "status changes are rejected",
			accountID: "123456789012",
			request:   "{\"accountStatus\":\"Active\"}",
			expResp: response{
				StatusCode: 400,
				Body:       "{\"error\":{\"message\":\"account validation error: accountStatus: must be empty.\",\"code\":\"RequestValidationError\"}}\n",
			},
			retErr: errors.NewValidation("account", fmt.Errorf("accountStatus: must be empty.")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("PUT",
				fmt.Sprintf("http://example.com/accounts/%s", tt.accountID),
				strings.NewReader(tt.request))
			r = mux.SetURLVars(r, map[string]string{
				"accountId": tt.accountID,
			})
			w := httptest.NewRecorder()

			cfgBldr := &config.ConfigurationBuilder{}
			svcBldr := &config.ServiceBuilder{Config: cfgBldr}

			accountSvc := mocks.Servicer{}
			accountSvc.On("Update", tt.accountID, mock.AnythingOfType("*account.Account")).Return(
				tt.retAccount, tt.retErr,
			)
			svcBldr.Config.WithService(&accountSvc)
			_, err := svcBldr.Build()

			assert.Nil(t, err)
			if err == nil {
				Services = svcBldr
			}

			UpdateAccountByID(w, r)

			resp := w.Result()
			body, err := ioutil.ReadAll(resp.Body)

			assert.Nil(t, err)
			assert.Equal(t, tt.expResp.StatusCode, resp.StatusCode)
			assert.Equal(t, tt.expResp.Body, string(body))
		})
	}
}
