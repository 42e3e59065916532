package awscloud

import (
	"github.com/ajittgosavii/cloudidps/pkg/awsiface"
	"github.com/ajittgosavii/cloudidps/pkg/provider"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudtrail"
	"github.com/aws/aws-sdk-go/service/configservice"
	"github.com/aws/aws-sdk-go/service/costexplorer"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/guardduty"
	"github.com/aws/aws-sdk-go/service/iam"
	"github.com/aws/aws-sdk-go/service/lambda"
	"github.com/aws/aws-sdk-go/service/rds"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/securityhub"
	"github.com/aws/aws-sdk-go/service/sts"
)

//go:generate mockery -name clienter
type clienter interface {
	STS() awsiface.STSAPI
	STSAs(creds provider.Value) awsiface.STSAPI
	EC2(creds provider.Value, region string) awsiface.EC2API
	RDS(creds provider.Value, region string) awsiface.RDSAPI
	S3(creds provider.Value, region string) awsiface.S3API
	Lambda(creds provider.Value, region string) awsiface.LambdaAPI
	DynamoDB(creds provider.Value, region string) awsiface.DynamoDBAPI
	IAM(creds provider.Value) awsiface.IAM
	CostExplorer(creds provider.Value) awsiface.CostExplorerAPI
	CloudTrail(creds provider.Value, region string) awsiface.CloudTrailAPI
	ConfigService(creds provider.Value, region string) awsiface.ConfigServiceAPI
	SecurityHub(creds provider.Value, region string) awsiface.SecurityHubAPI
	GuardDuty(creds provider.Value, region string) awsiface.GuardDutyAPI
}

// client builds per-call service clients from session credentials. The
// management session is only ever used for STS.
type client struct {
	session *session.Session
	sts     awsiface.STSAPI
}

func (c *client) config(creds provider.Value, region string) *aws.Config {
	config := aws.NewConfig().
		WithCredentials(credentials.NewStaticCredentials(
			creds.AccessKeyID, creds.SecretAccessKey, creds.SessionToken)).
		WithMaxRetries(10)
	if region != "" {
		config = config.WithRegion(region)
	}
	return config
}

func (c *client) STS() awsiface.STSAPI {
	return c.sts
}

func (c *client) STSAs(creds provider.Value) awsiface.STSAPI {
	return sts.New(c.session, c.config(creds, ""))
}

func (c *client) EC2(creds provider.Value, region string) awsiface.EC2API {
	return ec2.New(c.session, c.config(creds, region))
}

func (c *client) RDS(creds provider.Value, region string) awsiface.RDSAPI {
	return rds.New(c.session, c.config(creds, region))
}

func (c *client) S3(creds provider.Value, region string) awsiface.S3API {
	return s3.New(c.session, c.config(creds, region))
}

func (c *client) Lambda(creds provider.Value, region string) awsiface.LambdaAPI {
	return lambda.New(c.session, c.config(creds, region))
}

func (c *client) DynamoDB(creds provider.Value, region string) awsiface.DynamoDBAPI {
	return dynamodb.New(c.session, c.config(creds, region))
}

func (c *client) IAM(creds provider.Value) awsiface.IAM {
	return iam.New(c.session, c.config(creds, provider.GlobalRegion))
}

func (c *client) CostExplorer(creds provider.Value) awsiface.CostExplorerAPI {
	return costexplorer.New(c.session, c.config(creds, provider.GlobalRegion))
}

func (c *client) CloudTrail(creds provider.Value, region string) awsiface.CloudTrailAPI {
	return cloudtrail.New(c.session, c.config(creds, region))
}

func (c *client) ConfigService(creds provider.Value, region string) awsiface.ConfigServiceAPI {
	return configservice.New(c.session, c.config(creds, region))
}

func (c *client) SecurityHub(creds provider.Value, region string) awsiface.SecurityHubAPI {
	return securityhub.New(c.session, c.config(creds, region))
}

func (c *client) GuardDuty(creds provider.Value, region string) awsiface.GuardDutyAPI {
	return guardduty.New(c.session, c.config(creds, region))
}
