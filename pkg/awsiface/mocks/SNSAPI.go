package mocks

import (
	sns "github.com/aws/aws-sdk-go/service/sns"
	snsiface "github.com/aws/aws-sdk-go/service/sns/snsiface"
	mock "github.com/stretchr/testify/mock"
)

// SNSAPI is a mock type for the SNSAPI type. Only the operations the engine
// exercises are implemented.
type SNSAPI struct {
	snsiface.SNSAPI
	mock.Mock
}

// Publish provides a mock function with given fields: _a0
func (_m *SNSAPI) Publish(_a0 *sns.PublishInput) (*sns.PublishOutput, error) {
	ret := _m.Called(_a0)

	var r0 *sns.PublishOutput
	if rf, ok := ret.Get(0).(func(*sns.PublishInput) *sns.PublishOutput); ok {
		r0 = rf(_a0)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*sns.PublishOutput)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(*sns.PublishInput) error); ok {
		r1 = rf(_a0)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
