package arn

import (
	"strconv"
	"strings"

	"github.com/ajittgosavii/cloudidps/pkg/errors"
	"github.com/aws/aws-sdk-go/aws/arn"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// ARN wraps the SDK arn type so it can live directly on models
// that round-trip through JSON and DynamoDB.
type ARN struct {
	arn.ARN
}

// New builds an ARN from its parts.
func New(partition string, service string, region string, accountID string, resource string) *ARN {
	return &ARN{
		arn.ARN{
			Partition: partition,
			Service:   service,
			Region:    region,
			AccountID: accountID,
			Resource:  resource,
		},
	}
}

// NewFromArn parses an ARN string
func NewFromArn(arnString string) (*ARN, error) {
	a := &ARN{}
	if err := a.parseString(arnString); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *ARN) parseString(arnString string) error {
	parsed, err := arn.Parse(arnString)
	if err != nil {
		return errors.NewInternalServer("unexpected error parsing arn", err)
	}
	a.Partition = parsed.Partition
	a.Service = parsed.Service
	a.Region = parsed.Region
	a.AccountID = parsed.AccountID
	a.Resource = parsed.Resource
	return nil
}

// UnmarshalJSON parses a quoted ARN string
func (a *ARN) UnmarshalJSON(data []byte) error {
	unquoted, err := strconv.Unquote(string(data))
	if err != nil {
		return errors.NewInternalServer("unexpected error unquoting arn", err)
	}
	return a.parseString(unquoted)
}

// MarshalJSON writes the ARN as a quoted string
func (a *ARN) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(a.String())), nil
}

// UnmarshalDynamoDBAttributeValue parses an ARN out of a string attribute
func (a *ARN) UnmarshalDynamoDBAttributeValue(av *dynamodb.AttributeValue) error {
	if av.S == nil {
		return nil
	}
	return a.parseString(*av.S)
}

// MarshalDynamoDBAttributeValue stores the ARN as a string attribute
func (a *ARN) MarshalDynamoDBAttributeValue(av *dynamodb.AttributeValue) error {
	arnString := a.String()
	av.S = &arnString
	return nil
}

// IAMResourceName returns the name segment after the last / of an IAM
// resource, or nil for non-IAM ARNs.
func (a *ARN) IAMResourceName() *string {
	if a.Service != "iam" {
		return nil
	}

	parts := strings.Split(a.Resource, "/")
	return &parts[len(parts)-1]
}
