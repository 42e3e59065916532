package main

import (
	"fmt"
	"io/ioutil"
	"net/http/httptest"
	"testing"

	"github.com/ajittgosavii/cloudidps/pkg/account"
	"github.com/ajittgosavii/cloudidps/pkg/account/accountiface/mocks"
	"github.com/ajittgosavii/cloudidps/pkg/config"
	"github.com/gotidy/ptr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetAccounts(t *testing.T) {

	type response struct {
		StatusCode int
		Body       string
	}
	tests := []struct {
		name        string
		target      string
		expResp     response
		expLink     string
		expQuery    *account.Account
		retAccounts *account.Accounts
		retErr      error
		nextID      *string
	}{
		{
			name:   "all accounts",
			target: "http://example.com/accounts",
			expResp: response{
				StatusCode: 200,
				Body:       "[{\"id\":\"123456789012\",\"accountStatus\":\"Active\"}]\n",
			},
			expQuery: &account.Account{},
			retAccounts: &account.Accounts{
				account.Account{
					ID:     ptr.String("123456789012"),
					Status: account.StatusActive.StatusPtr(),
				},
			},
		},
		{
			name:   "filtered by status and environment",
			target: "http://example.com/accounts?status=Active&environment=prod",
			expResp: response{
				StatusCode: 200,
				Body:       "[]\n",
			},
			expQuery: &account.Account{
				Status:      account.StatusActive.StatusPtr(),
				Environment: ptr.String("prod"),
			},
			retAccounts: &account.Accounts{},
		},
		{
			name:   "paged result carries a next link",
			target: "http://example.com/accounts?limit=1",
			expResp: response{
				StatusCode: 200,
				Body:       "[{\"id\":\"123456789012\"}]\n",
			},
			expLink: "<https://example.com/accounts?limit=1&nextId=222222222222>; rel=\"next\"",
			expQuery: &account.Account{
				Limit: ptr.Int64(1),
			},
			retAccounts: &account.Accounts{
				account.Account{
					ID: ptr.String("123456789012"),
				},
			},
			nextID: ptr.String("222222222222"),
		},
		{
			name:   "service failure",
			target: "http://example.com/accounts",
			expResp: response{
				StatusCode: 500,
				Body:       "{\"error\":{\"message\":\"unknown error\",\"code\":\"ServerError\"}}\n",
			},
			expQuery: &account.Account{},
			retErr:   fmt.Errorf("failure"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			w := httptest.NewRecorder()

			baseRequest.Scheme = "https"
			baseRequest.Host = "example.com"

			cfgBldr := &config.ConfigurationBuilder{}
			svcBldr := &config.ServiceBuilder{Config: cfgBldr}

			accountSvc := mocks.Servicer{}
			accountSvc.On("List", mock.MatchedBy(func(query *account.Account) bool {
				return assert.ObjectsAreEqual(tt.expQuery.Status, query.Status) &&
					assert.ObjectsAreEqual(tt.expQuery.Environment, query.Environment) &&
					assert.ObjectsAreEqual(tt.expQuery.Limit, query.Limit)
			})).Return(
				tt.retAccounts, tt.retErr,
			).Run(func(args mock.Arguments) {
				query := args.Get(0).(*account.Account)
				query.NextID = tt.nextID
			})
			svcBldr.Config.WithService(&accountSvc)
			_, err := svcBldr.Build()

			assert.Nil(t, err)
			if err == nil {
				Services = svcBldr
			}

			GetAccounts(w, r)

			resp := w.Result()
			body, err := ioutil.ReadAll(resp.Body)

			assert.Nil(t, err)
			assert.Equal(t, tt.expResp.StatusCode, resp.StatusCode)
			assert.Equal(t, tt.expResp.Body, string(body))
			assert.Equal(t, tt.expLink, resp.Header.Get("Link"))
		})
	}
}
