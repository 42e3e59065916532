// Package email delivers owner notifications over SES. The lifecycle
// service uses it to tell account owners about workflow outcomes;
// offboarding can additionally mail the cost report as an attachment.
package email

import (
	"bytes"
	"context"
	"io"

	"github.com/ajittgosavii/cloudidps/pkg/awsiface"
	"github.com/ajittgosavii/cloudidps/pkg/errors"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ses"
	"gopkg.in/gomail.v2"
)

// Notifier is anything that can deliver a notification to an address
type Notifier interface {
	Notify(ctx context.Context, to string, subject string, body string) error
	NotifyWithAttachment(ctx context.Context, to string, subject string, body string, filename string, attachment []byte) error
}

// NewServiceInput are the items required to create a new email service
type NewServiceInput struct {
	SesClient   awsiface.SESAPI
	FromAddress string `env:"NOTIFICATION_FROM_EMAIL" envDefault:"no-reply@cloudidp.example.com"`
	FromArn     string `env:"NOTIFICATION_FROM_ARN"`
}

// Service sends notifications through SES
type Service struct {
	ses         awsiface.SESAPI
	fromAddress string
	fromArn     string
}

// Notify sends a plain notification to a single address. The body is
// delivered both as text and as minimal HTML so any client renders it.
func (s *Service) Notify(ctx context.Context, to string, subject string, body string) error {
	emailInput := ses.SendEmailInput{
		Destination: &ses.Destination{
			ToAddresses: aws.StringSlice([]string{to}),
		},
		Message: &ses.Message{
			Body: &ses.Body{
				Html: &ses.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String("<p>" + body + "</p>"),
				},
				Text: &ses.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(body),
				},
			},
			Subject: &ses.Content{
				Charset: aws.String("UTF-8"),
				Data:    aws.String(subject),
			},
		},
		Source: aws.String(s.fromAddress),
	}
	_, err := s.ses.SendEmailWithContext(ctx, &emailInput)
	if err != nil {
		return errors.NewInternalServer("unable to send notification email", err)
	}
	return nil
}

// NotifyWithAttachment sends a raw SES message carrying an in-memory
// attachment under the given filename.
func (s *Service) NotifyWithAttachment(ctx context.Context, to string, subject string, body string, filename string, attachment []byte) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.fromAddress)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)
	msg.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(attachment)
		return err
	}))

	var emailRaw bytes.Buffer
	if _, err := msg.WriteTo(&emailRaw); err != nil {
		return errors.NewInternalServer("unable to build raw email", err)
	}

	emailInput := &ses.SendRawEmailInput{
		RawMessage: &ses.RawMessage{Data: emailRaw.Bytes()},
	}
	if s.fromArn != "" {
		emailInput.FromArn = aws.String(s.fromArn)
	}

	_, err := s.ses.SendRawEmailWithContext(ctx, emailInput)
	if err != nil {
		return errors.NewInternalServer("unable to send notification email with attachment", err)
	}
	return nil
}

// NewService creates a new email notification service
func NewService(input NewServiceInput) *Service {
	return &Service{
		ses:         input.SesClient,
		fromAddress: input.FromAddress,
		fromArn:     input.FromArn,
	}
}
