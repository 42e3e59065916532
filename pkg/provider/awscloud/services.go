package awscloud

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ajittgosavii/cloudidps/pkg/errors"
	"github.com/ajittgosavii/cloudidps/pkg/provider"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudtrail"
	"github.com/aws/aws-sdk-go/service/configservice"
	"github.com/aws/aws-sdk-go/service/costexplorer"
	"github.com/aws/aws-sdk-go/service/guardduty"
	"github.com/aws/aws-sdk-go/service/securityhub"
)

// EnableService turns a managed service on in one region. Enabling a service
// that is already on is not an error.
func (s *Service) EnableService(ctx context.Context, creds provider.Value, input *provider.ServiceInput) error {
	switch input.Kind {
	case provider.ServiceAuditTrail:
		return s.enableAuditTrail(ctx, creds, input)
	case provider.ServiceConfigCompliance:
		return s.enableConfigRecorder(ctx, creds, input)
	case provider.ServiceSecurityFindings:
		return s.enableSecurityHub(ctx, creds, input)
	case provider.ServiceThreatDetection:
		return s.enableThreatDetection(ctx, creds, input)
	case provider.ServiceCostReporting:
		return s.activateCostReporting(ctx, creds, input)
	}
	return errors.NewValidation("service",
		fmt.Errorf("unsupported service kind %q", input.Kind))
}

// DisableService turns a managed service off in one region. Disabling a
// service that is already off is not an error.
func (s *Service) DisableService(ctx context.Context, creds provider.Value, input *provider.ServiceInput) error {
	switch input.Kind {
	case provider.ServiceAuditTrail:
		return s.disableAuditTrail(ctx, creds, input)
	case provider.ServiceConfigCompliance:
		return s.disableConfigRecorder(ctx, creds, input)
	case provider.ServiceSecurityFindings:
		return s.disableSecurityHub(ctx, creds, input)
	case provider.ServiceThreatDetection:
		return s.disableThreatDetection(ctx, creds, input)
	case provider.ServiceCostReporting:
		// Reporting deactivates itself when unused
		return nil
	}
	return errors.NewValidation("service",
		fmt.Errorf("unsupported service kind %q", input.Kind))
}

func (s *Service) enableAuditTrail(ctx context.Context, creds provider.Value, input *provider.ServiceInput) error {
	trailSvc := s.client.CloudTrail(creds, input.Region)

	_, err := trailSvc.CreateTrailWithContext(ctx, &cloudtrail.CreateTrailInput{
		Name:                       aws.String(s.config.AuditTrailName),
		S3BucketName:               aws.String(s.config.AuditBucket),
		IsMultiRegionTrail:         aws.Bool(true),
		IncludeGlobalServiceEvents: aws.Bool(true),
	})
	if err != nil {
		if !isCode(err, cloudtrail.ErrCodeTrailAlreadyExistsException) {
			return classify(input.AccountID, err)
		}
		log.Printf("trail %q already exists in account %q (Ignoring)", s.config.AuditTrailName, input.AccountID)
	}

	_, err = trailSvc.StartLoggingWithContext(ctx, &cloudtrail.StartLoggingInput{
		Name: aws.String(s.config.AuditTrailName),
	})
	if err != nil {
		return classify(input.AccountID, err)
	}
	return nil
}

func (s *Service) disableAuditTrail(ctx context.Context, creds provider.Value, input *provider.ServiceInput) error {
	_, err := s.client.CloudTrail(creds, input.Region).StopLoggingWithContext(ctx, &cloudtrail.StopLoggingInput{
		Name: aws.String(s.config.AuditTrailName),
	})
	if err != nil && !isCode(err, cloudtrail.ErrCodeTrailNotFoundException) {
		return classify(input.AccountID, err)
	}
	return nil
}

func (s *Service) enableConfigRecorder(ctx context.Context, creds provider.Value, input *provider.ServiceInput) error {
	configSvc := s.client.ConfigService(creds, input.Region)

	describeOut, err := configSvc.DescribeConfigurationRecordersWithContext(ctx,
		&configservice.DescribeConfigurationRecordersInput{})
	if err != nil {
		return classify(input.AccountID, err)
	}

	recorderName := s.config.ConfigRecorderName
	if len(describeOut.ConfigurationRecorders) == 0 {
		_, err = configSvc.PutConfigurationRecorderWithContext(ctx, &configservice.PutConfigurationRecorderInput{
			ConfigurationRecorder: &configservice.ConfigurationRecorder{
				Name: aws.String(recorderName),
				RoleARN: aws.String(fmt.Sprintf(
					"arn:aws:iam::%s:role/aws-service-role/config.amazonaws.com/AWSServiceRoleForConfig",
					input.AccountID)),
				RecordingGroup: &configservice.RecordingGroup{
					AllSupported:               aws.Bool(true),
					IncludeGlobalResourceTypes: aws.Bool(true),
				},
			},
		})
		if err != nil {
			return classify(input.AccountID, err)
		}
	} else {
		recorderName = aws.StringValue(describeOut.ConfigurationRecorders[0].Name)
	}

	_, err = configSvc.StartConfigurationRecorderWithContext(ctx, &configservice.StartConfigurationRecorderInput{
		ConfigurationRecorderName: aws.String(recorderName),
	})
	if err != nil {
		return classify(input.AccountID, err)
	}
	return nil
}

func (s *Service) disableConfigRecorder(ctx context.Context, creds provider.Value, input *provider.ServiceInput) error {
	_, err := s.client.ConfigService(creds, input.Region).StopConfigurationRecorderWithContext(ctx,
		&configservice.StopConfigurationRecorderInput{
			ConfigurationRecorderName: aws.String(s.config.ConfigRecorderName),
		})
	if err != nil && !isCode(err, configservice.ErrCodeNoSuchConfigurationRecorderException) {
		return classify(input.AccountID, err)
	}
	return nil
}

func (s *Service) enableSecurityHub(ctx context.Context, creds provider.Value, input *provider.ServiceInput) error {
	_, err := s.client.SecurityHub(creds, input.Region).EnableSecurityHubWithContext(ctx,
		&securityhub.EnableSecurityHubInput{})
	if err != nil && !isCode(err, securityhub.ErrCodeResourceConflictException) {
		return classify(input.AccountID, err)
	}
	return nil
}

func (s *Service) disableSecurityHub(ctx context.Context, creds provider.Value, input *provider.ServiceInput) error {
	_, err := s.client.SecurityHub(creds, input.Region).DisableSecurityHubWithContext(ctx,
		&securityhub.DisableSecurityHubInput{})
	if err != nil && !isCode(err, securityhub.ErrCodeResourceNotFoundException, securityhub.ErrCodeInvalidAccessException) {
		return classify(input.AccountID, err)
	}
	return nil
}

func (s *Service) enableThreatDetection(ctx context.Context, creds provider.Value, input *provider.ServiceInput) error {
	detectorSvc := s.client.GuardDuty(creds, input.Region)

	listOut, err := detectorSvc.ListDetectorsWithContext(ctx, &guardduty.ListDetectorsInput{})
	if err != nil {
		return classify(input.AccountID, err)
	}
	if len(listOut.DetectorIds) > 0 {
		return nil
	}

	_, err = detectorSvc.CreateDetectorWithContext(ctx, &guardduty.CreateDetectorInput{
		Enable: aws.Bool(true),
	})
	if err != nil {
		return classify(input.AccountID, err)
	}
	return nil
}

func (s *Service) disableThreatDetection(ctx context.Context, creds provider.Value, input *provider.ServiceInput) error {
	detectorSvc := s.client.GuardDuty(creds, input.Region)

	listOut, err := detectorSvc.ListDetectorsWithContext(ctx, &guardduty.ListDetectorsInput{})
	if err != nil {
		return classify(input.AccountID, err)
	}
	for _, id := range listOut.DetectorIds {
		_, err = detectorSvc.UpdateDetectorWithContext(ctx, &guardduty.UpdateDetectorInput{
			DetectorId: id,
			Enable:     aws.Bool(false),
		})
		if err != nil {
			return classify(input.AccountID, err)
		}
	}
	return nil
}

// activateCostReporting touches the reporting API once; the provider
// activates it on first use and keeps history from that point.
func (s *Service) activateCostReporting(ctx context.Context, creds provider.Value, input *provider.ServiceInput) error {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -1)

	_, err := s.client.CostExplorer(creds).GetCostAndUsageWithContext(ctx, &costexplorer.GetCostAndUsageInput{
		TimePeriod: &costexplorer.DateInterval{
			Start: aws.String(start.Format(costDateFormat)),
			End:   aws.String(end.Format(costDateFormat)),
		},
		Granularity: aws.String(costexplorer.GranularityDaily),
		Metrics:     []*string{aws.String("UnblendedCost")},
	})
	if err != nil && !isCode(err, costexplorer.ErrCodeDataUnavailableException) {
		return classify(input.AccountID, err)
	}
	return nil
}
