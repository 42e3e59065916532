package data

import (
	"github.com/ajittgosavii/cloudidps/pkg/account"
	"github.com/ajittgosavii/cloudidps/pkg/errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/expression"
)

// queryAccounts for getting a list of Account records querying the
// AccountStatus secondary index
func (a *Account) queryAccounts(query *account.Account, keyName string, index string) (*queryScanOutput, error) {
	var expr expression.Expression
	var bldr expression.Builder
	var err error
	var res *dynamodb.QueryOutput

	keyCondition, filters := getFiltersFromStruct(query, &keyName)
	bldr = expression.NewBuilder().WithKeyCondition(*keyCondition)
	if filters != nil {
		bldr = bldr.WithFilter(*filters)
	}

	expr, err = bldr.Build()
	if err != nil {
		return nil, errors.NewInternalServer("unable to build query", err)
	}

	queryInput := &dynamodb.QueryInput{
		TableName:                 aws.String(a.TableName),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    expr.KeyCondition(),
		ConsistentRead:            aws.Bool(a.ConsistentRead),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}
	queryInput.SetLimit(*query.Limit)
	if query.NextID != nil {
		// Should be more dynamic
		queryInput.SetExclusiveStartKey(map[string]*dynamodb.AttributeValue{
			"Id": {
				S: query.NextID,
			},
			"AccountStatus": {
				S: aws.String(string(*query.Status)),
			},
		})
	}

	res, err = a.DynamoDB.Query(queryInput)
	if err != nil {
		return nil, errors.NewInternalServer("failed to query accounts", err)
	}

	return &queryScanOutput{
		items:            res.Items,
		lastEvaluatedKey: res.LastEvaluatedKey,
	}, nil
}

// scanAccounts for getting a list of Account records
func (a *Account) scanAccounts(query *account.Account) (*queryScanOutput, error) {
	var expr expression.Expression
	var err error
	var res *dynamodb.ScanOutput

	_, filters := getFiltersFromStruct(query, nil)
	scanInput := &dynamodb.ScanInput{
		TableName:      aws.String(a.TableName),
		ConsistentRead: aws.Bool(a.ConsistentRead),
	}

	if filters != nil {
		expr, err = expression.NewBuilder().WithFilter(*filters).Build()
		if err != nil {
			return nil, errors.NewInternalServer("unable to build query", err)
		}

		scanInput.FilterExpression = expr.Filter()
		scanInput.ExpressionAttributeNames = expr.Names()
		scanInput.ExpressionAttributeValues = expr.Values()
	}

	scanInput.SetLimit(*query.Limit)
	if query.NextID != nil {
		// Should be more dynamic
		scanInput.SetExclusiveStartKey(map[string]*dynamodb.AttributeValue{
			"Id": {
				S: query.NextID,
			},
		})
	}

	res, err = a.DynamoDB.Scan(scanInput)
	if err != nil {
		return nil, errors.NewInternalServer("error getting accounts", err)
	}

	return &queryScanOutput{
		items:            res.Items,
		lastEvaluatedKey: res.LastEvaluatedKey,
	}, nil
}

// List Get a list of accounts based on an account query
func (a *Account) List(query *account.Account) (*account.Accounts, error) {
	var outputs *queryScanOutput
	var err error

	if query.Limit == nil {
		query.Limit = &a.Limit
	}

	if query.Status != nil {
		outputs, err = a.queryAccounts(query, "AccountStatus", "AccountStatus")
	} else {
		outputs, err = a.scanAccounts(query)
	}
	if err != nil {
		return nil, err
	}

	query.NextID = nil
	if outputs.lastEvaluatedKey["Id"] != nil {
		query.NextID = outputs.lastEvaluatedKey["Id"].S
	}

	accounts := &account.Accounts{}
	err = dynamodbattribute.UnmarshalListOfMaps(outputs.items, accounts)
	if err != nil {
		return nil, errors.NewInternalServer("failed unmarshaling of accounts", err)
	}

	return accounts, nil
}
