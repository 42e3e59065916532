package awscloud

import (
	"context"
	"fmt"

	"github.com/ajittgosavii/cloudidps/pkg/errors"
	"github.com/ajittgosavii/cloudidps/pkg/provider"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sts"
)

// AssumeRole mints session credentials for a registered account through the
// management account's STS client.
func (s *Service) AssumeRole(ctx context.Context, input *provider.AssumeRoleInput) (*provider.RoleCredentials, error) {
	accountID := aws.StringValue(input.AccountID)

	duration := input.Duration
	if duration == 0 {
		duration = s.config.SessionDuration
	}

	assumeInput := &sts.AssumeRoleInput{
		RoleArn:         aws.String(input.RoleArn.String()),
		RoleSessionName: aws.String(input.SessionName),
		DurationSeconds: aws.Int64(duration),
	}
	if input.ExternalID != nil {
		assumeInput.ExternalId = input.ExternalID
	}

	out, err := s.client.STS().AssumeRoleWithContext(ctx, assumeInput)
	if err != nil {
		return nil, classify(accountID, err)
	}

	return &provider.RoleCredentials{
		Value: provider.Value{
			AccessKeyID:     aws.StringValue(out.Credentials.AccessKeyId),
			SecretAccessKey: aws.StringValue(out.Credentials.SecretAccessKey),
			SessionToken:    aws.StringValue(out.Credentials.SessionToken),
		},
		ExpiresAt: aws.TimeValue(out.Credentials.Expiration),
	}, nil
}

// VerifyAccess confirms the credentials resolve to the expected account.
func (s *Service) VerifyAccess(ctx context.Context, creds provider.Value, accountID string) error {
	out, err := s.client.STSAs(creds).GetCallerIdentityWithContext(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return classify(accountID, err)
	}

	if aws.StringValue(out.Account) != accountID {
		return errors.NewAuth(accountID,
			fmt.Errorf("credentials resolve to account %q", aws.StringValue(out.Account)))
	}

	return nil
}
