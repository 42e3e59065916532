package data

import (
	gErrors "errors"
	"fmt"
	"strconv"

	"github.com/ajittgosavii/cloudidps/pkg/errors"
	"github.com/ajittgosavii/cloudidps/pkg/lifecycle"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/aws/aws-sdk-go/service/dynamodb/expression"
)

// Run - Data Layer Struct for the persisted lifecycle run log
type Run struct {
	DynamoDB       dynamodbiface.DynamoDBAPI
	TableName      string `env:"RUN_DB"`
	ConsistentRead bool   `env:"USE_CONSISTENT_READS" envDefault:"false"`
	Limit          int64  `env:"PAGINATION_LIMIT" envDefault:"50"`
}

// Write the Run record in DynamoDB
// This is an upsert operation in which the record will either
// be inserted or updated
// lastModifiedOn is the original lastModifiedOn; writes race-guard on it
func (r *Run) Write(data *lifecycle.Run, lastModifiedOn *int64) error {

	var expr expression.Expression
	var err error
	// lastModifiedOn is nil on a create
	if lastModifiedOn != nil {
		modExpr := expression.Name("LastModifiedOn").Equal(expression.Value(lastModifiedOn))
		expr, err = expression.NewBuilder().WithCondition(modExpr).Build()
	} else {
		modExpr := expression.Name("LastModifiedOn").AttributeNotExists()
		expr, err = expression.NewBuilder().WithCondition(modExpr).Build()
	}
	if err != nil {
		return errors.NewInternalServer("unable to build condition", err)
	}

	putMap, _ := dynamodbattribute.Marshal(data)
	_, err = r.DynamoDB.PutItem(
		&dynamodb.PutItemInput{
			TableName:                 aws.String(r.TableName),
			Item:                      putMap.M,
			ConditionExpression:       expr.Condition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ReturnValues:              aws.String("NONE"),
		},
	)
	var awsErr awserr.Error
	if gErrors.As(err, &awsErr) {
		if awsErr.Code() == "ConditionalCheckFailedException" {
			return errors.NewConflict(
				"run",
				*data.ID,
				fmt.Errorf("unable to update run with LastModifiedOn=%q", strconv.FormatInt(*data.LastModifiedOn, 10)))
		}
	}
	if err != nil {
		return errors.NewInternalServer(
			fmt.Sprintf("update failed for run %q", *data.ID),
			err,
		)
	}

	return nil
}

// Get the Run record by ID
func (r *Run) Get(runID string) (*lifecycle.Run, error) {

	res, err := r.DynamoDB.GetItem(
		&dynamodb.GetItemInput{
			TableName: aws.String(r.TableName),
			Key: map[string]*dynamodb.AttributeValue{
				"Id": {
					S: aws.String(runID),
				},
			},
			ConsistentRead: aws.Bool(r.ConsistentRead),
		},
	)

	if err != nil {
		return nil, errors.NewInternalServer(
			fmt.Sprintf("get failed for run %q", runID),
			err,
		)
	}

	if len(res.Item) == 0 {
		return nil, errors.NewNotFound("run", runID)
	}

	item := &lifecycle.Run{}
	err = dynamodbattribute.UnmarshalMap(res.Item, item)
	if err != nil {
		return nil, errors.NewInternalServer("failure unmarshaling run", err)
	}
	return item, nil
}
