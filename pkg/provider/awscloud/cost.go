package awscloud

import (
	"context"
	"strconv"

	"github.com/ajittgosavii/cloudidps/pkg/errors"
	"github.com/ajittgosavii/cloudidps/pkg/provider"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/costexplorer"
)

const costDateFormat = "2006-01-02"

// GetCost reads unblended spend for the window, bucketed monthly and grouped
// by provider service.
func (s *Service) GetCost(ctx context.Context, creds provider.Value, input *provider.CostInput) (*provider.CostReport, error) {
	granularity := input.Granularity
	if granularity == "" {
		granularity = costexplorer.GranularityMonthly
	}

	out, err := s.client.CostExplorer(creds).GetCostAndUsageWithContext(ctx, &costexplorer.GetCostAndUsageInput{
		TimePeriod: &costexplorer.DateInterval{
			Start: aws.String(input.Start.Format(costDateFormat)),
			End:   aws.String(input.End.Format(costDateFormat)),
		},
		Granularity: aws.String(granularity),
		Metrics:     []*string{aws.String("UnblendedCost")},
		GroupBy: []*costexplorer.GroupDefinition{
			{
				Type: aws.String(costexplorer.GroupDefinitionTypeDimension),
				Key:  aws.String("SERVICE"),
			},
		},
	})
	if err != nil {
		return nil, classify(input.AccountID, err)
	}

	report := &provider.CostReport{
		AccountID: aws.String(input.AccountID),
		Start:     &input.Start,
		End:       &input.End,
		Amount:    aws.Float64(0),
		ByService: map[string]float64{},
	}

	for _, result := range out.ResultsByTime {
		for _, group := range result.Groups {
			metric, ok := group.Metrics["UnblendedCost"]
			if !ok {
				continue
			}
			amount, err := strconv.ParseFloat(aws.StringValue(metric.Amount), 64)
			if err != nil {
				return nil, errors.NewInternalServer("failure parsing cost amount", err)
			}
			if len(group.Keys) > 0 {
				report.ByService[aws.StringValue(group.Keys[0])] += amount
			}
			*report.Amount += amount
			if report.Unit == nil {
				report.Unit = metric.Unit
			}
		}
	}

	return report, nil
}
