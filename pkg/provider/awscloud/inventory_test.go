package awscloud

import (
	"context"
	"testing"

	awsmocks "github.com/ajittgosavii/cloudidps/pkg/awsiface/mocks"
	"github.com/ajittgosavii/cloudidps/pkg/errors"
	"github.com/ajittgosavii/cloudidps/pkg/provider"
	"github.com/ajittgosavii/cloudidps/pkg/provider/awscloud/mocks"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/lambda"
	"github.com/aws/aws-sdk-go/service/rds"
	"github.com/gotidy/ptr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testService(client clienter) *Service {
	return &Service{
		client: client,
		config: ServiceConfig{
			SessionDuration: 3600,
		},
	}
}

func TestListResources(t *testing.T) {
	creds := provider.Value{AccessKeyID: "AKID"}

	t.Run("flattens instances across reservations", func(t *testing.T) {
		mockEC2 := &awsmocks.EC2API{}
		mockEC2.On("DescribeInstancesWithContext", mock.Anything, mock.MatchedBy(func(input *ec2.DescribeInstancesInput) bool {
			return aws.Int64Value(input.MaxResults) == 25 && input.NextToken == nil
		})).Return(&ec2.DescribeInstancesOutput{
			NextToken: aws.String("page-2"),
			Reservations: []*ec2.Reservation{
				{
					Instances: []*ec2.Instance{
						{
							InstanceId: aws.String("i-111"),
							State:      &ec2.InstanceState{Name: aws.String("running")},
							Tags: []*ec2.Tag{
								{Key: aws.String("Name"), Value: aws.String("bastion")},
								{Key: aws.String("team"), Value: aws.String("platform")},
							},
						},
					},
				},
				{
					Instances: []*ec2.Instance{
						{
							InstanceId: aws.String("i-222"),
							State:      &ec2.InstanceState{Name: aws.String("stopped")},
						},
					},
				},
			},
		}, nil)

		mockClient := &mocks.Clienter{}
		mockClient.On("EC2", creds, "us-west-2").Return(mockEC2)

		page, err := testService(mockClient).ListResources(context.Background(), creds, &provider.ListResourcesInput{
			AccountID:  "123456789012",
			Region:     "us-west-2",
			Kind:       provider.ResourceEC2,
			MaxResults: ptr.Int64(25),
		})

		require.Nil(t, err)
		require.Len(t, page.Resources, 2)
		assert.Equal(t, "i-111", *page.Resources[0].ID)
		assert.Equal(t, "bastion", *page.Resources[0].Name)
		assert.Equal(t, "running", *page.Resources[0].State)
		assert.Equal(t, "123456789012", *page.Resources[0].AccountID)
		assert.Equal(t, "us-west-2", *page.Resources[0].Region)
		assert.Nil(t, page.Resources[1].Name)
		assert.Equal(t, "page-2", *page.NextToken)
		mockEC2.AssertExpectations(t)
	})

	t.Run("lists databases with status", func(t *testing.T) {
		mockRDS := &awsmocks.RDSAPI{}
		mockRDS.On("DescribeDBInstancesWithContext", mock.Anything, mock.Anything).
			Return(&rds.DescribeDBInstancesOutput{
				DBInstances: []*rds.DBInstance{
					{
						DBInstanceIdentifier: aws.String("orders-db"),
						DBInstanceStatus:     aws.String("available"),
					},
				},
			}, nil)

		mockClient := &mocks.Clienter{}
		mockClient.On("RDS", creds, "us-east-1").Return(mockRDS)

		page, err := testService(mockClient).ListResources(context.Background(), creds, &provider.ListResourcesInput{
			AccountID: "123456789012",
			Region:    "us-east-1",
			Kind:      provider.ResourceRDS,
		})

		require.Nil(t, err)
		require.Len(t, page.Resources, 1)
		assert.Equal(t, "orders-db", *page.Resources[0].ID)
		assert.Equal(t, "available", *page.Resources[0].State)
		assert.Nil(t, page.NextToken)
	})

	t.Run("lists functions with their runtime", func(t *testing.T) {
		mockLambda := &awsmocks.LambdaAPI{}
		mockLambda.On("ListFunctionsWithContext", mock.Anything, mock.Anything).
			Return(&lambda.ListFunctionsOutput{
				Functions: []*lambda.FunctionConfiguration{
					{
						FunctionName: aws.String("ingest"),
						Runtime:      aws.String("go1.x"),
					},
				},
			}, nil)

		mockClient := &mocks.Clienter{}
		mockClient.On("Lambda", creds, "eu-west-1").Return(mockLambda)

		page, err := testService(mockClient).ListResources(context.Background(), creds, &provider.ListResourcesInput{
			AccountID: "123456789012",
			Region:    "eu-west-1",
			Kind:      provider.ResourceLambda,
		})

		require.Nil(t, err)
		require.Len(t, page.Resources, 1)
		assert.Equal(t, "ingest", *page.Resources[0].ID)
		assert.Equal(t, "go1.x", *page.Resources[0].State)
	})

	t.Run("passes page tokens through for tables", func(t *testing.T) {
		mockDynamo := &awsmocks.DynamoDBAPI{}
		mockDynamo.On("ListTablesWithContext", mock.Anything, mock.MatchedBy(func(input *dynamodb.ListTablesInput) bool {
			return aws.StringValue(input.ExclusiveStartTableName) == "Accounts"
		})).Return(&dynamodb.ListTablesOutput{
			TableNames:             []*string{aws.String("Runs")},
			LastEvaluatedTableName: aws.String("Runs"),
		}, nil)

		mockClient := &mocks.Clienter{}
		mockClient.On("DynamoDB", creds, "us-east-1").Return(mockDynamo)

		page, err := testService(mockClient).ListResources(context.Background(), creds, &provider.ListResourcesInput{
			AccountID: "123456789012",
			Region:    "us-east-1",
			Kind:      provider.ResourceDynamoDB,
			NextToken: ptr.String("Accounts"),
		})

		require.Nil(t, err)
		require.Len(t, page.Resources, 1)
		assert.Equal(t, "Runs", *page.NextToken)
		mockDynamo.AssertExpectations(t)
	})

	t.Run("rejects unknown kinds before touching the provider", func(t *testing.T) {
		mockClient := &mocks.Clienter{}

		page, err := testService(mockClient).ListResources(context.Background(), creds, &provider.ListResourcesInput{
			AccountID: "123456789012",
			Region:    "us-east-1",
			Kind:      provider.ResourceKind("Cost"),
		})

		assert.Nil(t, page)
		require.NotNil(t, err)
		assert.Equal(t, errors.KindValidation, errors.KindForError(err))
		mockClient.AssertExpectations(t)
	})

	t.Run("classifies denied access", func(t *testing.T) {
		mockEC2 := &awsmocks.EC2API{}
		mockEC2.On("DescribeInstancesWithContext", mock.Anything, mock.Anything).
			Return(nil, awserr.New("UnauthorizedOperation", "not authorized to perform this operation", nil))

		mockClient := &mocks.Clienter{}
		mockClient.On("EC2", creds, "us-east-1").Return(mockEC2)

		page, err := testService(mockClient).ListResources(context.Background(), creds, &provider.ListResourcesInput{
			AccountID: "123456789012",
			Region:    "us-east-1",
			Kind:      provider.ResourceEC2,
		})

		assert.Nil(t, page)
		require.NotNil(t, err)
		assert.Equal(t, errors.KindAuth, errors.KindForError(err))
	})
}
