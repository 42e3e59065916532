package data

import (
	gErrors "errors"
	"fmt"
	"strconv"

	"github.com/ajittgosavii/cloudidps/pkg/account"
	"github.com/ajittgosavii/cloudidps/pkg/errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/aws/aws-sdk-go/service/dynamodb/expression"
)

// Account - Data Layer Struct
type Account struct {
	DynamoDB       dynamodbiface.DynamoDBAPI
	TableName      string `env:"ACCOUNT_DB"`
	ConsistentRead bool   `env:"USE_CONSISTENT_READS" envDefault:"false"`
	Limit          int64  `env:"PAGINATION_LIMIT" envDefault:"50"`
}

// Write the Account record in DynamoDB
// This is an upsert operation in which the record will either
// be inserted or updated
// lastModifiedOn is the original lastModifiedOn; writes race-guard on it
func (a *Account) Write(data *account.Account, lastModifiedOn *int64) error {

	var expr expression.Expression
	var err error
	returnValue := "NONE"
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
	_, err = a.DynamoDB.PutItem(
		&dynamodb.PutItemInput{
			TableName:                 aws.String(a.TableName),
			Item:                      putMap.M,
			ConditionExpression:       expr.Condition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ReturnValues:              aws.String(returnValue),
		},
	)
	var awsErr awserr.Error
	if gErrors.As(err, &awsErr) {
		if awsErr.Code() == "ConditionalCheckFailedException" {
			return errors.NewConflict(
				"account",
				*data.ID,
				fmt.Errorf("unable to update account with LastModifiedOn=%q", strconv.FormatInt(*data.LastModifiedOn, 10)))
		}
	}
	if err != nil {
		return errors.NewInternalServer(
			fmt.Sprintf("update failed for account %q", *data.ID),
			err,
		)
	}

	return nil
}

// Delete the Account record in DynamoDB
func (a *Account) Delete(data *account.Account) error {

	_, err := a.DynamoDB.DeleteItem(
		&dynamodb.DeleteItemInput{
			TableName: aws.String(a.TableName),
			Key: map[string]*dynamodb.AttributeValue{
				"Id": {
					S: data.ID,
				},
			},
		},
	)

	if err != nil {
		return errors.NewInternalServer(
			fmt.Sprintf("delete failed for account %q", *data.ID),
			err,
		)
	}

	return nil
}

// Get the Account record by ID
func (a *Account) Get(accountID string) (*account.Account, error) {

	res, err := a.DynamoDB.GetItem(
		&dynamodb.GetItemInput{
			TableName: aws.String(a.TableName),
			Key: map[string]*dynamodb.AttributeValue{
				"Id": {
					S: aws.String(accountID),
				},
			},
			ConsistentRead: aws.Bool(a.ConsistentRead),
		},
	)

	if err != nil {
		return nil, errors.NewInternalServer(
			fmt.Sprintf("get failed for account %q", accountID),
			err,
		)
	}

	if len(res.Item) == 0 {
		return nil, errors.NewNotFound("account", accountID)
	}

	item := &account.Account{}
	err = dynamodbattribute.UnmarshalMap(res.Item, item)
	if err != nil {
		return nil, errors.NewInternalServer("failure unmarshaling account", err)
	}
	return item, nil
}
