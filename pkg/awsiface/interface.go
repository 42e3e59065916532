/*
awsiface package contains interfaces for AWS SDKs.

Wrapping AWS SDK interfaces in our own local interfaces allows
us to generate mocks for them using `mockery`.
Keeping this package separate from other services prevents
cyclical dependencies in generated mock packages.
*/

//go:generate mockery -all
package awsiface

import (
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/service/cloudtrail/cloudtrailiface"
	"github.com/aws/aws-sdk-go/service/configservice/configserviceiface"
	"github.com/aws/aws-sdk-go/service/costexplorer/costexploreriface"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
	"github.com/aws/aws-sdk-go/service/guardduty/guarddutyiface"
	"github.com/aws/aws-sdk-go/service/iam/iamiface"
	"github.com/aws/aws-sdk-go/service/lambda/lambdaiface"
	"github.com/aws/aws-sdk-go/service/rds/rdsiface"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/aws/aws-sdk-go/service/securityhub/securityhubiface"
	"github.com/aws/aws-sdk-go/service/ses/sesiface"
	"github.com/aws/aws-sdk-go/service/sns/snsiface"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
	"github.com/aws/aws-sdk-go/service/ssm/ssmiface"
	"github.com/aws/aws-sdk-go/service/sts/stsiface"
)

type AwsSession interface {
	client.ConfigProvider
}

type STSAPI interface {
	stsiface.STSAPI
}

type DynamoDBAPI interface {
	dynamodbiface.DynamoDBAPI
}

type EC2API interface {
	ec2iface.EC2API
}

type RDSAPI interface {
	rdsiface.RDSAPI
}

type LambdaAPI interface {
	lambdaiface.LambdaAPI
}

type S3API interface {
	s3iface.S3API
}

type IAM interface {
	iamiface.IAMAPI
}

type CostExplorerAPI interface {
	costexploreriface.CostExplorerAPI
}

type CloudTrailAPI interface {
	cloudtrailiface.CloudTrailAPI
}

type ConfigServiceAPI interface {
	configserviceiface.ConfigServiceAPI
}

type SecurityHubAPI interface {
	securityhubiface.SecurityHubAPI
}

type GuardDutyAPI interface {
	guarddutyiface.GuardDutyAPI
}

type SESAPI interface {
	sesiface.SESAPI
}

type SSMAPI interface {
	ssmiface.SSMAPI
}

type SNSAPI interface {
	snsiface.SNSAPI
}

type SQSAPI interface {
	sqsiface.SQSAPI
}
