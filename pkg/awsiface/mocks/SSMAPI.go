package mocks

import (
	ssm "github.com/aws/aws-sdk-go/service/ssm"
	ssmiface "github.com/aws/aws-sdk-go/service/ssm/ssmiface"
	mock "github.com/stretchr/testify/mock"
)

// SSMAPI is a mock type for the SSMAPI type. Only the operations the engine
// exercises are implemented.
type SSMAPI struct {
	ssmiface.SSMAPI
	mock.Mock
}

// GetParameters provides a mock function with given fields: _a0
func (_m *SSMAPI) GetParameters(_a0 *ssm.GetParametersInput) (*ssm.GetParametersOutput, error) {
	ret := _m.Called(_a0)

	var r0 *ssm.GetParametersOutput
	if rf, ok := ret.Get(0).(func(*ssm.GetParametersInput) *ssm.GetParametersOutput); ok {
		r0 = rf(_a0)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*ssm.GetParametersOutput)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(*ssm.GetParametersInput) error); ok {
		r1 = rf(_a0)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
