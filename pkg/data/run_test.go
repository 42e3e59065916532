package data

import (
	gErrors "errors"
	"strconv"
	"testing"

	awsmocks "github.com/ajittgosavii/cloudidps/pkg/awsiface/mocks"
	"github.com/ajittgosavii/cloudidps/pkg/errors"
	"github.com/ajittgosavii/cloudidps/pkg/lifecycle"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func ptrRunStatus(s lifecycle.Status) *lifecycle.Status {
	return &s
}

func TestGetRun(t *testing.T) {

	runKindOnboard := lifecycle.KindOnboard

	tests := []struct {
		name         string
		runID        string
		dynamoErr    error
		dynamoOutput *dynamodb.GetItemOutput
		expectedErr  error
		expectedRun  lifecycle.Run
	}{
		{
			name:  "should return a run object",
			runID: "11111111-2222-4333-8444-555555555555",
			expectedRun: lifecycle.Run{
				ID:               ptrString("11111111-2222-4333-8444-555555555555"),
				AccountID:        ptrString("123456789012"),
				Kind:             &runKindOnboard,
				Status:           ptrRunStatus(lifecycle.StatusRunning),
				CurrentStepIndex: ptrInt64(2),
				LastModifiedOn:   ptrInt64(1573592058),
			},
			dynamoOutput: &dynamodb.GetItemOutput{
				Item: map[string]*dynamodb.AttributeValue{
					"Id": {
						S: aws.String("11111111-2222-4333-8444-555555555555"),
					},
					"AccountId": {
						S: aws.String("123456789012"),
					},
					"Kind": {
						S: aws.String("Onboard"),
					},
					"RunStatus": {
						S: aws.String("Running"),
					},
					"CurrentStepIndex": {
						N: aws.String(strconv.Itoa(2)),
					},
					"LastModifiedOn": {
						N: aws.String(strconv.Itoa(1573592058)),
					},
				},
			},
		},
		{
			name:  "should return not found when missing",
			runID: "11111111-2222-4333-8444-555555555555",
			dynamoOutput: &dynamodb.GetItemOutput{
				Item: map[string]*dynamodb.AttributeValue{},
			},
			expectedErr: errors.NewNotFound("run", "11111111-2222-4333-8444-555555555555"),
		},
		{
			name:      "should return nil when dynamodb err",
			runID:     "11111111-2222-4333-8444-555555555555",
			dynamoErr: gErrors.New("failure"),
			dynamoOutput: &dynamodb.GetItemOutput{
				Item: map[string]*dynamodb.AttributeValue{},
			},
			expectedErr: errors.NewInternalServer("get failed for run \"11111111-2222-4333-8444-555555555555\"", gErrors.New("failure")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDynamo := awsmocks.DynamoDBAPI{}

			mockDynamo.On("GetItem", mock.MatchedBy(func(input *dynamodb.GetItemInput) bool {
				return (*input.TableName == "LifecycleRuns" &&
					*input.Key["Id"].S == tt.runID)
			})).Return(
				tt.dynamoOutput, tt.dynamoErr,
			)
			runData := &Run{
				DynamoDB:  &mockDynamo,
				TableName: "LifecycleRuns",
			}

			item, err := runData.Get(tt.runID)
			if tt.expectedErr == nil {
				assert.Equal(t, tt.expectedRun, *item)
			}
			assert.True(t, errors.Is(err, tt.expectedErr))
		})
	}

}

func TestWriteRun(t *testing.T) {

	now := int64(1573592058)

	newRun := func() *lifecycle.Run {
		kind := lifecycle.KindOnboard
		return &lifecycle.Run{
			ID:               ptrString("11111111-2222-4333-8444-555555555555"),
			AccountID:        ptrString("123456789012"),
			Kind:             &kind,
			Status:           ptrRunStatus(lifecycle.StatusRunning),
			CurrentStepIndex: ptrInt64(0),
			LastModifiedOn:   &now,
		}
	}

	tests := []struct {
		name           string
		run            *lifecycle.Run
		lastModifiedOn *int64
		dynamoErr      error
		expectedErr    error
	}{
		{
			name: "should write a new run",
			run:  newRun(),
		},
		{
			name:           "should checkpoint an existing run",
			run:            newRun(),
			lastModifiedOn: &now,
		},
		{
			name:           "should translate a conditional failure to a conflict",
			run:            newRun(),
			lastModifiedOn: &now,
			dynamoErr:      awserr.New("ConditionalCheckFailedException", "condition failed", nil),
			expectedErr: errors.NewConflict(
				"run",
				"11111111-2222-4333-8444-555555555555",
				gErrors.New("unable to update run with LastModifiedOn=\"1573592058\"")),
		},
		{
			name:        "should surface other dynamodb errors",
			run:         newRun(),
			dynamoErr:   gErrors.New("failure"),
			expectedErr: errors.NewInternalServer("update failed for run \"11111111-2222-4333-8444-555555555555\"", gErrors.New("failure")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDynamo := awsmocks.DynamoDBAPI{}

			mockDynamo.On("PutItem", mock.MatchedBy(func(input *dynamodb.PutItemInput) bool {
				return *input.TableName == "LifecycleRuns"
			})).Return(
				&dynamodb.PutItemOutput{}, tt.dynamoErr,
			)
			runData := &Run{
				DynamoDB:  &mockDynamo,
				TableName: "LifecycleRuns",
			}

			err := runData.Write(tt.run, tt.lastModifiedOn)
			assert.True(t, errors.Is(err, tt.expectedErr))
		})
	}

}

func TestListRuns(t *testing.T) {

	tests := []struct {
		name        string
		query       *lifecycle.Run
		expectQuery bool
	}{
		{
			name:        "should query the AccountId index when filtered by account",
			query:       &lifecycle.Run{AccountID: ptrString("123456789012")},
			expectQuery: true,
		},
		{
			name:  "should scan without an account filter",
			query: &lifecycle.Run{Status: ptrRunStatus(lifecycle.StatusFailed)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDynamo := awsmocks.DynamoDBAPI{}

			items := []map[string]*dynamodb.AttributeValue{
				{
					"Id": {
						S: aws.String("11111111-2222-4333-8444-555555555555"),
					},
					"AccountId": {
						S: aws.String("123456789012"),
					},
				},
			}
			if tt.expectQuery {
				mockDynamo.On("Query", mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
					return *input.TableName == "LifecycleRuns" &&
						*input.IndexName == "AccountId"
				})).Return(
					&dynamodb.QueryOutput{Items: items}, nil,
				)
			} else {
				mockDynamo.On("Scan", mock.MatchedBy(func(input *dynamodb.ScanInput) bool {
					return *input.TableName == "LifecycleRuns"
				})).Return(
					&dynamodb.ScanOutput{Items: items}, nil,
				)
			}
			runData := &Run{
				DynamoDB:  &mockDynamo,
				TableName: "LifecycleRuns",
				Limit:     25,
			}

			runs, err := runData.List(tt.query)
			assert.Nil(t, err)
			assert.Len(t, *runs, 1)
			assert.Equal(t, "123456789012", *(*runs)[0].AccountID)
			mockDynamo.AssertExpectations(t)
		})
	}

}
