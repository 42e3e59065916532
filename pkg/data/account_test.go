package data

import (
	gErrors "errors"
	"fmt"
	"log"
	"strconv"
	"testing"

	"github.com/ajittgosavii/cloudidps/pkg/account"
	"github.com/ajittgosavii/cloudidps/pkg/arn"
	awsmocks "github.com/ajittgosavii/cloudidps/pkg/awsiface/mocks"
	"github.com/ajittgosavii/cloudidps/pkg/errors"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGet(t *testing.T) {

	accountStatusActive := account.StatusActive

	tests := []struct {
		name            string
		accountID       string
		dynamoErr       error
		dynamoOutput    *dynamodb.GetItemOutput
		expectedErr     error
		expectedAccount account.Account
	}{
		{
			name:      "should return an account object",
			accountID: "123456789012",
			expectedAccount: account.Account{
				ID:             ptrString("123456789012"),
				Status:         &accountStatusActive,
				LastModifiedOn: ptrInt64(1573592058),
				RoleArn:        arn.New("aws", "iam", "", "123456789012", "role/CloudIDP-Access"),
			},
			dynamoErr: nil,
			dynamoOutput: &dynamodb.GetItemOutput{
				Item: map[string]*dynamodb.AttributeValue{
					"Id": {
						S: aws.String("123456789012"),
					},
					"AccountStatus": {
						S: aws.String("Active"),
					},
					"LastModifiedOn": {
						N: aws.String(strconv.Itoa(1573592058)),
					},
					"RoleArn": {
						S: aws.String("arn:aws:iam::123456789012:role/CloudIDP-Access"),
					},
				},
			},
			expectedErr: nil,
		},
		{
			name:            "should return nil object when not found",
			accountID:       "123456789012",
			expectedAccount: account.Account{},
			dynamoErr:       nil,
			dynamoOutput: &dynamodb.GetItemOutput{
				Item: map[string]*dynamodb.AttributeValue{},
			},
			expectedErr: errors.NewNotFound("account", "123456789012"),
		},
		{
			name:            "should return nil when dynamodb err",
			accountID:       "123456789012",
			expectedAccount: account.Account{},
			dynamoErr:       gErrors.New("failure"),
			dynamoOutput: &dynamodb.GetItemOutput{
				Item: map[string]*dynamodb.AttributeValue{},
			},
			expectedErr: errors.NewInternalServer("get failed for account \"123456789012\"", gErrors.New("failure")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDynamo := awsmocks.DynamoDBAPI{}

			mockDynamo.On("GetItem", mock.MatchedBy(func(input *dynamodb.GetItemInput) bool {
				return (*input.TableName == "Accounts" &&
					*input.Key["Id"].S == tt.accountID)
			})).Return(
				tt.dynamoOutput, tt.dynamoErr,
			)
			accountData := &Account{
				DynamoDB:  &mockDynamo,
				TableName: "Accounts",
			}

			item, err := accountData.Get(tt.accountID)
			if tt.expectedErr == nil {
				assert.Equal(t, tt.expectedAccount, *item)
			}
			assert.True(t, errors.Is(err, tt.expectedErr))
		})
	}

}

func TestDelete(t *testing.T) {

	accountStatusDeregistered := account.StatusDeregistered

	tests := []struct {
		name         string
		account      account.Account
		dynamoErr    error
		dynamoOutput *dynamodb.DeleteItemOutput
		expectedErr  error
	}{
		{
			name: "should delete an account",
			account: account.Account{
				ID:             ptrString("123456789012"),
				Status:         &accountStatusDeregistered,
				LastModifiedOn: ptrInt64(1573592058),
			},
			dynamoErr: nil,
			dynamoOutput: &dynamodb.DeleteItemOutput{
				Attributes: map[string]*dynamodb.AttributeValue{},
			},
			expectedErr: nil,
		},
		{
			name: "should error on dynamo failure",
			account: account.Account{
				ID:             ptrString("123456789012"),
				Status:         &accountStatusDeregistered,
				LastModifiedOn: ptrInt64(1573592058),
			},
			dynamoErr: gErrors.New("failure"),
			dynamoOutput: &dynamodb.DeleteItemOutput{
				Attributes: map[string]*dynamodb.AttributeValue{},
			},
			expectedErr: errors.NewInternalServer("delete failed for account \"123456789012\"", gErrors.New("failure")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDynamo := awsmocks.DynamoDBAPI{}

			mockDynamo.On("DeleteItem", mock.MatchedBy(func(input *dynamodb.DeleteItemInput) bool {
				return (*input.TableName == "Accounts" &&
					*input.Key["Id"].S == *tt.account.ID)
			})).Return(
				tt.dynamoOutput, tt.dynamoErr,
			)
			accountData := &Account{
				DynamoDB:  &mockDynamo,
				TableName: "Accounts",
			}

			err := accountData.Delete(&tt.account)
			assert.True(t, errors.Is(err, tt.expectedErr))
		})
	}

}

func TestUpdate(t *testing.T) {
	accountStatusActive := account.StatusActive

	tests := []struct {
		name              string
		account           account.Account
		dynamoErr         error
		expectedErr       error
		oldLastModifiedOn *int64
	}{
		{
			name: "update",
			account: account.Account{
				ID:             ptrString("123456789012"),
				Status:         &accountStatusActive,
				LastModifiedOn: ptrInt64(1573592058),
				RoleArn:        arn.New("aws", "iam", "", "123456789012", "role/CloudIDP-Access"),
			},
			oldLastModifiedOn: ptrInt64(1573592057),
			dynamoErr:         nil,
			expectedErr:       nil,
		},
		{
			name: "create",
			account: account.Account{
				ID:             ptrString("123456789012"),
				Status:         &accountStatusActive,
				LastModifiedOn: ptrInt64(1573592058),
				RoleArn:        arn.New("aws", "iam", "", "123456789012", "role/CloudIDP-Access"),
			},
			dynamoErr:   nil,
			expectedErr: nil,
		},
		{
			name: "conditional failure",
			account: account.Account{
				ID:             ptrString("123456789012"),
				Status:         &accountStatusActive,
				LastModifiedOn: ptrInt64(1573592058),
				RoleArn:        arn.New("aws", "iam", "", "123456789012", "role/CloudIDP-Access"),
			},
			oldLastModifiedOn: ptrInt64(1573592057),
			dynamoErr:         awserr.New("ConditionalCheckFailedException", "Message", fmt.Errorf("Bad")),
			expectedErr:       errors.NewConflict("account", "123456789012", fmt.Errorf("unable to update account with LastModifiedOn=\"1573592058\"")),
		},
		{
			name: "other dynamo error",
			account: account.Account{
				ID:             ptrString("123456789012"),
				Status:         &accountStatusActive,
				LastModifiedOn: ptrInt64(1573592058),
				RoleArn:        arn.New("aws", "iam", "", "123456789012", "role/CloudIDP-Access"),
			},
			oldLastModifiedOn: ptrInt64(1573592057),
			dynamoErr:         gErrors.New("failure"),
			expectedErr:       errors.NewInternalServer("update failed for account \"123456789012\"", gErrors.New("failure")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDynamo := awsmocks.DynamoDBAPI{}

			mockDynamo.On("PutItem", mock.MatchedBy(func(input *dynamodb.PutItemInput) bool {
				if tt.oldLastModifiedOn == nil {
					return (*input.TableName == "Accounts" &&
						*input.Item["Id"].S == *tt.account.ID &&
						*input.Item["AccountStatus"].S == string(*tt.account.Status) &&
						*input.Item["LastModifiedOn"].N == strconv.FormatInt(*tt.account.LastModifiedOn, 10) &&
						*input.Item["RoleArn"].S == tt.account.RoleArn.String() &&
						*input.ConditionExpression == "attribute_not_exists (#0)")
				}
				return (*input.TableName == "Accounts" &&
					*input.Item["Id"].S == *tt.account.ID &&
					*input.Item["AccountStatus"].S == string(*tt.account.Status) &&
					*input.Item["LastModifiedOn"].N == strconv.FormatInt(*tt.account.LastModifiedOn, 10) &&
					*input.Item["RoleArn"].S == tt.account.RoleArn.String() &&
					*input.ExpressionAttributeValues[":0"].N == strconv.FormatInt(*tt.oldLastModifiedOn, 10))
			})).Return(
				&dynamodb.PutItemOutput{}, tt.dynamoErr,
			)
			accountData := &Account{
				DynamoDB:  &mockDynamo,
				TableName: "Accounts",
			}

			err := accountData.Write(&tt.account, tt.oldLastModifiedOn)
			if err != nil {
				log.Printf(err.Error())
			}
			assert.True(t, errors.Is(err, tt.expectedErr))
		})
	}

}
