package main

import (
	"io/ioutil"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ajittgosavii/cloudidps/pkg/config"
	"github.com/ajittgosavii/cloudidps/pkg/errors"
	"github.com/ajittgosavii/cloudidps/pkg/lifecycle"
	"github.com/ajittgosavii/cloudidps/pkg/lifecycle/lifecycleiface/mocks"
	"github.com/gotidy/ptr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStartWorkflow(t *testing.T) {

	type response struct {
		StatusCode int
		Body       string
	}
	tests := []struct {
		name     string
		request  string
		expResp  response
		expKind  lifecycle.Kind
		expStart bool
		retRun   *lifecycle.Run
		retErr   error
	}{
		{
			name:     "onboard run started",
			request:  "{\"accountId\":\"123456789012\",\"kind\":\"Onboard\"}",
			expKind:  lifecycle.KindOnboard,
			expStart: true,
			expResp: response{
				StatusCode: 201,
				Body:       "{\"id\":\"run-1\",\"accountId\":\"123456789012\",\"kind\":\"Onboard\",\"status\":\"Succeeded\"}\n",
			},
			retRun: &lifecycle.Run{
				ID:        ptr.String("run-1"),
				AccountID: ptr.String("123456789012"),
				Kind:      lifecycle.KindOnboard.KindPtr(),
				Status:    lifecycle.StatusSucceeded.StatusPtr(),
			},
		},
		{
			name:     "kind is case insensitive",
			request:  "{\"accountId\":\"123456789012\",\"kind\":\"offboard\"}",
			expKind:  lifecycle.KindOffboard,
			expStart: true,
			expResp: response{
				StatusCode: 201,
				Body:       "{\"id\":\"run-2\",\"accountId\":\"123456789012\",\"kind\":\"Offboard\",\"status\":\"Running\"}\n",
			},
			retRun: &lifecycle.Run{
				ID:        ptr.String("run-2"),
				AccountID: ptr.String("123456789012"),
				Kind:      lifecycle.KindOffboard.KindPtr(),
				Status:    lifecycle.StatusRunning.StatusPtr(),
			},
		},
		{
			name:    "malformed body",
			request: "not json",
			expResp: response{
				StatusCode: 400,
				Body:       "{\"error\":{\"message\":\"invalid request parameters\",\"code\":\"ClientError\"}}\n",
			},
		},
		{
			name:    "unknown kind",
			request: "{\"accountId\":\"123456789012\",\"kind\":\"Teardown\"}",
			expResp: response{
				StatusCode: 400,
				Body:       "{\"error\":{\"message\":\"workflow validation error: Cannot parse value Teardown\",\"code\":\"RequestValidationError\"}}\n",
			},
		},
		{
			name:     "active run already exists",
			request:  "{\"accountId\":\"123456789012\",\"kind\":\"Onboard\"}",
			expKind:  lifecycle.KindOnboard,
			expStart: true,
			expResp: response{
				StatusCode: 409,
				Body:       "{\"error\":{\"message\":\"operation cannot be fulfilled on run \\\"run-1\\\": a workflow is already active for the account\",\"code\":\"ConflictError\"}}\n",
			},
			retErr: errors.NewConflict("run", "run-1", errors.ErrWorkflowAlreadyActive),
		},
		{
			name:     "step failure still returns the resumable run",
			request:  "{\"accountId\":\"123456789012\",\"kind\":\"Onboard\"}",
			expKind:  lifecycle.KindOnboard,
			expStart: true,
			expResp: response{
				StatusCode: 201,
				Body:       "{\"id\":\"run-3\",\"accountId\":\"123456789012\",\"kind\":\"Onboard\",\"status\":\"Failed\"}\n",
			},
			retRun: &lifecycle.Run{
				ID:        ptr.String("run-3"),
				AccountID: ptr.String("123456789012"),
				Kind:      lifecycle.KindOnboard.KindPtr(),
				Status:    lifecycle.StatusFailed.StatusPtr(),
			},
			retErr: errors.NewWorkflowStep("validate_account", errors.NewAuth("123456789012", assert.AnError)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "http://example.com/workflows", strings.NewReader(tt.request))
			w := httptest.NewRecorder()

			cfgBldr := &config.ConfigurationBuilder{}
			svcBldr := &config.ServiceBuilder{Config: cfgBldr}

			lifecycleSvc := mocks.Servicer{}
			lifecycleSvc.On("StartWorkflow", mock.Anything, "123456789012", tt.expKind).Return(
				tt.retRun, tt.retErr,
			)
			svcBldr.Config.WithService(&lifecycleSvc)
			_, err := svcBldr.Build()

			assert.Nil(t, err)
			if err == nil {
				Services = svcBldr
			}

			StartWorkflow(w, r)

			resp := w.Result()
			body, err := ioutil.ReadAll(resp.Body)

			assert.Nil(t, err)
			assert.Equal(t, tt.expResp.StatusCode, resp.StatusCode)
			assert.Equal(t, tt.expResp.Body, string(body))

			if !tt.expStart {
				lifecycleSvc.AssertNotCalled(t, "StartWorkflow", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}
