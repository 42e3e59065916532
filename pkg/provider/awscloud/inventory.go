package awscloud

import (
	"context"
	"fmt"

	"github.com/ajittgosavii/cloudidps/pkg/errors"
	"github.com/ajittgosavii/cloudidps/pkg/provider"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/lambda"
	"github.com/aws/aws-sdk-go/service/rds"
	"github.com/aws/aws-sdk-go/service/s3"
)

// ListResources enumerates one page of resources of one kind in one region.
func (s *Service) ListResources(ctx context.Context, creds provider.Value, input *provider.ListResourcesInput) (*provider.ResourcePage, error) {
	switch input.Kind {
	case provider.ResourceEC2:
		return s.listInstances(ctx, creds, input)
	case provider.ResourceRDS:
		return s.listDatabases(ctx, creds, input)
	case provider.ResourceS3:
		return s.listBuckets(ctx, creds, input)
	case provider.ResourceLambda:
		return s.listFunctions(ctx, creds, input)
	case provider.ResourceDynamoDB:
		return s.listTables(ctx, creds, input)
	}
	return nil, errors.NewValidation("inventory",
		fmt.Errorf("unsupported resource kind %q", input.Kind))
}

func (s *Service) listInstances(ctx context.Context, creds provider.Value, input *provider.ListResourcesInput) (*provider.ResourcePage, error) {
	describeInput := &ec2.DescribeInstancesInput{
		NextToken: input.NextToken,
	}
	if input.MaxResults != nil {
		describeInput.MaxResults = input.MaxResults
	}

	out, err := s.client.EC2(creds, input.Region).DescribeInstancesWithContext(ctx, describeInput)
	if err != nil {
		return nil, classify(input.AccountID, err)
	}

	page := &provider.ResourcePage{
		Resources: []provider.Resource{},
		NextToken: out.NextToken,
	}
	for _, reservation := range out.Reservations {
		for _, instance := range reservation.Instances {
			resource := provider.Resource{
				ID:        instance.InstanceId,
				Kind:      provider.ResourceEC2,
				AccountID: aws.String(input.AccountID),
				Region:    aws.String(input.Region),
				State:     instance.State.Name,
				Tags:      map[string]string{},
			}
			for _, tag := range instance.Tags {
				resource.Tags[aws.StringValue(tag.Key)] = aws.StringValue(tag.Value)
				if aws.StringValue(tag.Key) == "Name" {
					resource.Name = tag.Value
				}
			}
			page.Resources = append(page.Resources, resource)
		}
	}
	return page, nil
}

func (s *Service) listDatabases(ctx context.Context, creds provider.Value, input *provider.ListResourcesInput) (*provider.ResourcePage, error) {
	describeInput := &rds.DescribeDBInstancesInput{
		Marker: input.NextToken,
	}
	if input.MaxResults != nil {
		describeInput.MaxRecords = input.MaxResults
	}

	out, err := s.client.RDS(creds, input.Region).DescribeDBInstancesWithContext(ctx, describeInput)
	if err != nil {
		return nil, classify(input.AccountID, err)
	}

	page := &provider.ResourcePage{
		Resources: []provider.Resource{},
		NextToken: out.Marker,
	}
	for _, db := range out.DBInstances {
		page.Resources = append(page.Resources, provider.Resource{
			ID:        db.DBInstanceIdentifier,
			Kind:      provider.ResourceRDS,
			AccountID: aws.String(input.AccountID),
			Region:    aws.String(input.Region),
			Name:      db.DBInstanceIdentifier,
			State:     db.DBInstanceStatus,
		})
	}
	return page, nil
}

// listBuckets has no pagination; the bucket list is global so callers pin it
// to GlobalRegion.
func (s *Service) listBuckets(ctx context.Context, creds provider.Value, input *provider.ListResourcesInput) (*provider.ResourcePage, error) {
	out, err := s.client.S3(creds, input.Region).ListBucketsWithContext(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, classify(input.AccountID, err)
	}

	page := &provider.ResourcePage{
		Resources: []provider.Resource{},
	}
	for _, bucket := range out.Buckets {
		page.Resources = append(page.Resources, provider.Resource{
			ID:        bucket.Name,
			Kind:      provider.ResourceS3,
			AccountID: aws.String(input.AccountID),
			Region:    aws.String(input.Region),
			Name:      bucket.Name,
		})
	}
	return page, nil
}

func (s *Service) listFunctions(ctx context.Context, creds provider.Value, input *provider.ListResourcesInput) (*provider.ResourcePage, error) {
	listInput := &lambda.ListFunctionsInput{
		Marker: input.NextToken,
	}
	if input.MaxResults != nil {
		listInput.MaxItems = input.MaxResults
	}

	out, err := s.client.Lambda(creds, input.Region).ListFunctionsWithContext(ctx, listInput)
	if err != nil {
		return nil, classify(input.AccountID, err)
	}

	page := &provider.ResourcePage{
		Resources: []provider.Resource{},
		NextToken: out.NextMarker,
	}
	for _, function := range out.Functions {
		page.Resources = append(page.Resources, provider.Resource{
			ID:        function.FunctionName,
			Kind:      provider.ResourceLambda,
			AccountID: aws.String(input.AccountID),
			Region:    aws.String(input.Region),
			Name:      function.FunctionName,
			State:     function.Runtime,
		})
	}
	return page, nil
}

func (s *Service) listTables(ctx context.Context, creds provider.Value, input *provider.ListResourcesInput) (*provider.ResourcePage, error) {
	listInput := &dynamodb.ListTablesInput{
		ExclusiveStartTableName: input.NextToken,
	}
	if input.MaxResults != nil {
		listInput.Limit = input.MaxResults
	}

	out, err := s.client.DynamoDB(creds, input.Region).ListTablesWithContext(ctx, listInput)
	if err != nil {
		return nil, classify(input.AccountID, err)
	}

	page := &provider.ResourcePage{
		Resources: []provider.Resource{},
		NextToken: out.LastEvaluatedTableName,
	}
	for _, table := range out.TableNames {
		page.Resources = append(page.Resources, provider.Resource{
			ID:        table,
			Kind:      provider.ResourceDynamoDB,
			AccountID: aws.String(input.AccountID),
			Region:    aws.String(input.Region),
			Name:      table,
		})
	}
	return page, nil
}
