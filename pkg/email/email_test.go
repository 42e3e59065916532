package email

import (
	"context"
	gErrors "errors"
	"strings"
	"testing"

	"github.com/ajittgosavii/cloudidps/pkg/awsiface/mocks"
	"github.com/aws/aws-sdk-go/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotify(t *testing.T) {

	tests := []struct {
		name        string
		sesErr      error
		expectedErr string
	}{
		{
			name: "sends notification",
		},
		{
			name:        "wraps ses failure",
			sesErr:      gErrors.New("throttled"),
			expectedErr: "unable to send notification email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSes := &mocks.SESAPI{}
			svc := NewService(NewServiceInput{
				SesClient:   mockSes,
				FromAddress: "no-reply@cloudidp.example.com",
			})

			mockSes.On("SendEmailWithContext", mock.Anything,
				mock.MatchedBy(func(input *ses.SendEmailInput) bool {
					return *input.Source == "no-reply@cloudidp.example.com" &&
						*input.Destination.ToAddresses[0] == "owner@example.com" &&
						*input.Message.Subject.Data == "workflow succeeded" &&
						*input.Message.Body.Text.Data == "all steps completed"
				}),
			).Return(nil, tt.sesErr)

			err := svc.Notify(context.Background(), "owner@example.com", "workflow succeeded", "all steps completed")
			if tt.expectedErr == "" {
				assert.Nil(t, err)
			} else {
				assert.Contains(t, err.Error(), tt.expectedErr)
			}
			mockSes.AssertExpectations(t)
		})
	}

}

func TestNotifyWithAttachment(t *testing.T) {

	t.Run("sends raw email carrying the attachment", func(t *testing.T) {
		mockSes := &mocks.SESAPI{}
		svc := NewService(NewServiceInput{
			SesClient:   mockSes,
			FromAddress: "no-reply@cloudidp.example.com",
		})

		mockSes.On("SendRawEmailWithContext", mock.Anything,
			mock.MatchedBy(func(input *ses.SendRawEmailInput) bool {
				raw := string(input.RawMessage.Data)
				return strings.Contains(raw, "Subject: cost report") &&
					strings.Contains(raw, "To: owner@example.com") &&
					strings.Contains(raw, "report.xlsx")
			}),
		).Return(nil, nil)

		err := svc.NotifyWithAttachment(context.Background(),
			"owner@example.com", "cost report", "<p>attached</p>",
			"report.xlsx", []byte("workbook-bytes"))

		assert.Nil(t, err)
		mockSes.AssertExpectations(t)
	})

	t.Run("wraps ses failure", func(t *testing.T) {
		mockSes := &mocks.SESAPI{}
		svc := NewService(NewServiceInput{
			SesClient:   mockSes,
			FromAddress: "no-reply@cloudidp.example.com",
		})

		mockSes.On("SendRawEmailWithContext", mock.Anything, mock.Anything).
			Return(nil, gErrors.New("throttled"))

		err := svc.NotifyWithAttachment(context.Background(),
			"owner@example.com", "cost report", "<p>attached</p>",
			"report.xlsx", []byte("workbook-bytes"))

		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "unable to send notification email with attachment")
	})

}
