package awscloud

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/ajittgosavii/cloudidps/pkg/arn"
	"github.com/ajittgosavii/cloudidps/pkg/provider"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/iam"
)

func trustPolicy(trustAccountID string, externalID string) string {
	return strings.TrimSpace(fmt.Sprintf(`
		{
			"Version": "2012-10-17",
			"Statement": [
				{
					"Effect": "Allow",
					"Principal": {
						"AWS": "arn:aws:iam::%s:root"
					},
					"Action": "sts:AssumeRole",
					"Condition": {
						"StringEquals": {
							"sts:ExternalId": "%s"
						}
					}
				}
			]
		}
	`, trustAccountID, externalID))
}

// EnsureAccessRole creates the dedicated access role if it is missing and
// refreshes its trust policy if it exists.
func (s *Service) EnsureAccessRole(ctx context.Context, creds provider.Value, input *provider.AccessRoleInput) (*provider.AccessRole, error) {
	iamSvc := s.client.IAM(creds)
	policyDocument := trustPolicy(input.TrustAccountID, input.ExternalID)

	createOut, err := iamSvc.CreateRoleWithContext(ctx, &iam.CreateRoleInput{
		RoleName:                 aws.String(input.RoleName),
		AssumeRolePolicyDocument: aws.String(policyDocument),
		Description:              aws.String("Access role assumed by the CloudIDP management account"),
		MaxSessionDuration:       aws.Int64(s.config.SessionDuration),
	})
	if err != nil {
		if !isCode(err, iam.ErrCodeEntityAlreadyExistsException) {
			return nil, classify(input.AccountID, err)
		}
		log.Printf("role %q already exists in account %q (Ignoring)", input.RoleName, input.AccountID)

		// Keep the trust condition current for existing roles
		_, err = iamSvc.UpdateAssumeRolePolicyWithContext(ctx, &iam.UpdateAssumeRolePolicyInput{
			RoleName:       aws.String(input.RoleName),
			PolicyDocument: aws.String(policyDocument),
		})
		if err != nil {
			return nil, classify(input.AccountID, err)
		}

		getOut, err := iamSvc.GetRoleWithContext(ctx, &iam.GetRoleInput{
			RoleName: aws.String(input.RoleName),
		})
		if err != nil {
			return nil, classify(input.AccountID, err)
		}
		roleArn, err := arn.NewFromArn(aws.StringValue(getOut.Role.Arn))
		if err != nil {
			return nil, err
		}
		return &provider.AccessRole{RoleArn: roleArn, Created: false}, nil
	}

	_, err = iamSvc.AttachRolePolicyWithContext(ctx, &iam.AttachRolePolicyInput{
		RoleName:  aws.String(input.RoleName),
		PolicyArn: aws.String(s.config.AccessRolePolicy),
	})
	if err != nil {
		return nil, classify(input.AccountID, err)
	}

	roleArn, err := arn.NewFromArn(aws.StringValue(createOut.Role.Arn))
	if err != nil {
		return nil, err
	}
	return &provider.AccessRole{RoleArn: roleArn, Created: true}, nil
}

// DeleteAccessRole removes the access role and its policy attachment. A role
// that is already gone is not an error.
func (s *Service) DeleteAccessRole(ctx context.Context, creds provider.Value, input *provider.AccessRoleInput) error {
	iamSvc := s.client.IAM(creds)

	_, err := iamSvc.DetachRolePolicyWithContext(ctx, &iam.DetachRolePolicyInput{
		RoleName:  aws.String(input.RoleName),
		PolicyArn: aws.String(s.config.AccessRolePolicy),
	})
	if err != nil && !isCode(err, iam.ErrCodeNoSuchEntityException) {
		return classify(input.AccountID, err)
	}

	_, err = iamSvc.DeleteRoleWithContext(ctx, &iam.DeleteRoleInput{
		RoleName: aws.String(input.RoleName),
	})
	if err != nil {
		if isCode(err, iam.ErrCodeNoSuchEntityException) {
			log.Printf("role %q already deleted in account %q (Ignoring)", input.RoleName, input.AccountID)
			return nil
		}
		return classify(input.AccountID, err)
	}
	return nil
}

// ApplyTagPolicy stamps the organization's standard tags on the access role.
func (s *Service) ApplyTagPolicy(ctx context.Context, creds provider.Value, input *provider.TagPolicyInput) error {
	keys := make([]string, 0, len(input.Tags))
	for key := range input.Tags {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	tags := make([]*iam.Tag, 0, len(keys))
	for _, key := range keys {
		tags = append(tags, &iam.Tag{
			Key:   aws.String(key),
			Value: aws.String(input.Tags[key]),
		})
	}

	_, err := s.client.IAM(creds).TagRoleWithContext(ctx, &iam.TagRoleInput{
		RoleName: aws.String(input.RoleName),
		Tags:     tags,
	})
	if err != nil {
		return classify(input.AccountID, err)
	}
	return nil
}
