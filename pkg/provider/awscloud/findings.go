package awscloud

import (
	"context"

	"github.com/ajittgosavii/cloudidps/pkg/provider"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudtrail"
	"github.com/aws/aws-sdk-go/service/securityhub"
)

// ExportFindings pulls the current security findings for one region.
func (s *Service) ExportFindings(ctx context.Context, creds provider.Value, input *provider.ExportInput) (*provider.FindingsExport, error) {
	getInput := &securityhub.GetFindingsInput{
		Filters: &securityhub.AwsSecurityFindingFilters{
			AwsAccountId: []*securityhub.StringFilter{
				{
					Comparison: aws.String(securityhub.StringFilterComparisonEquals),
					Value:      aws.String(input.AccountID),
				},
			},
		},
	}
	if input.MaxFindings != nil {
		getInput.MaxResults = input.MaxFindings
	}

	out, err := s.client.SecurityHub(creds, input.Region).GetFindingsWithContext(ctx, getInput)
	if err != nil {
		return nil, classify(input.AccountID, err)
	}

	export := &provider.FindingsExport{
		AccountID: aws.String(input.AccountID),
		Region:    aws.String(input.Region),
		Findings:  []provider.Finding{},
	}
	for _, finding := range out.Findings {
		exported := provider.Finding{
			ID:        finding.Id,
			Title:     finding.Title,
			UpdatedAt: finding.UpdatedAt,
		}
		if finding.Severity != nil {
			exported.Severity = finding.Severity.Label
		}
		export.Findings = append(export.Findings, exported)
	}
	return export, nil
}

// ArchiveAuditLogs records where each audit trail delivers its logs so the
// evidence can be located after the account is gone.
func (s *Service) ArchiveAuditLogs(ctx context.Context, creds provider.Value, input *provider.ArchiveInput) (*provider.ArchiveReceipt, error) {
	out, err := s.client.CloudTrail(creds, input.Region).DescribeTrailsWithContext(ctx, &cloudtrail.DescribeTrailsInput{})
	if err != nil {
		return nil, classify(input.AccountID, err)
	}

	receipt := &provider.ArchiveReceipt{
		AccountID: aws.String(input.AccountID),
		Region:    aws.String(input.Region),
		Trails:    []provider.Trail{},
	}
	for _, trail := range out.TrailList {
		receipt.Trails = append(receipt.Trails, provider.Trail{
			Name:     trail.Name,
			S3Bucket: trail.S3BucketName,
		})
	}
	return receipt, nil
}
