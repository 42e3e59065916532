package mocks

import (
	sqs "github.com/aws/aws-sdk-go/service/sqs"
	sqsiface "github.com/aws/aws-sdk-go/service/sqs/sqsiface"
	mock "github.com/stretchr/testify/mock"
)

// SQSAPI is a mock type for the SQSAPI type. Only the operations the engine
// exercises are implemented.
type SQSAPI struct {
	sqsiface.SQSAPI
	mock.Mock
}

// SendMessage provides a mock function with given fields: _a0
func (_m *SQSAPI) SendMessage(_a0 *sqs.SendMessageInput) (*sqs.SendMessageOutput, error) {
	ret := _m.Called(_a0)

	var r0 *sqs.SendMessageOutput
	if rf, ok := ret.Get(0).(func(*sqs.SendMessageInput) *sqs.SendMessageOutput); ok {
		r0 = rf(_a0)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*sqs.SendMessageOutput)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(*sqs.SendMessageInput) error); ok {
		r1 = rf(_a0)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
