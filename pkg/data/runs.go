package data

import (
	"github.com/ajittgosavii/cloudidps/pkg/errors"
	"github.com/ajittgosavii/cloudidps/pkg/lifecycle"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/expression"
)

// queryRuns for getting a list of Run records querying the AccountId
// secondary index
func (r *Run) queryRuns(query *lifecycle.Run, keyName string, index string) (*queryScanOutput, error) {
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
		TableName:                 aws.String(r.TableName),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    expr.KeyCondition(),
		ConsistentRead:            aws.Bool(false),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}
	queryInput.SetLimit(*query.Limit)
	if query.NextID != nil {
		queryInput.SetExclusiveStartKey(map[string]*dynamodb.AttributeValue{
			"Id": {
				S: query.NextID,
			},
			"AccountId": {
				S: query.AccountID,
			},
		})
	}

	res, err = r.DynamoDB.Query(queryInput)
	if err != nil {
		return nil, errors.NewInternalServer("failed to query runs", err)
	}

	return &queryScanOutput{
		items:            res.Items,
		lastEvaluatedKey: res.LastEvaluatedKey,
	}, nil
}

// scanRuns for getting a list of Run records
func (r *Run) scanRuns(query *lifecycle.Run) (*queryScanOutput, error) {
	var expr expression.Expression
	var err error
	var res *dynamodb.ScanOutput

	_, filters := getFiltersFromStruct(query, nil)
	scanInput := &dynamodb.ScanInput{
		TableName:      aws.String(r.TableName),
		ConsistentRead: aws.Bool(r.ConsistentRead),
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
		scanInput.SetExclusiveStartKey(map[string]*dynamodb.AttributeValue{
			"Id": {
				S: query.NextID,
			},
		})
	}

	res, err = r.DynamoDB.Scan(scanInput)
	if err != nil {
		return nil, errors.NewInternalServer("error getting runs", err)
	}

	return &queryScanOutput{
		items:            res.Items,
		lastEvaluatedKey: res.LastEvaluatedKey,
	}, nil
}

// List Get a list of runs based on a run query
func (r *Run) List(query *lifecycle.Run) (*lifecycle.Runs, error) {
	var outputs *queryScanOutput
	var err error

	if query.Limit == nil {
		query.Limit = &r.Limit
	}

	if query.AccountID != nil {
		outputs, err = r.queryRuns(query, "AccountId", "AccountId")
	} else {
		outputs, err = r.scanRuns(query)
	}
	if err != nil {
		return nil, err
	}

	query.NextID = nil
	if outputs.lastEvaluatedKey["Id"] != nil {
		query.NextID = outputs.lastEvaluatedKey["Id"].S
	}

	runs := &lifecycle.Runs{}
	err = dynamodbattribute.UnmarshalListOfMaps(outputs.items, runs)
	if err != nil {
		return nil, errors.NewInternalServer("failed unmarshaling of runs", err)
	}

	return runs, nil
}
