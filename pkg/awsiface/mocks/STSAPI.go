package mocks

import (
	aws "github.com/aws/aws-sdk-go/aws"
	request "github.com/aws/aws-sdk-go/aws/request"
	sts "github.com/aws/aws-sdk-go/service/sts"
	stsiface "github.com/aws/aws-sdk-go/service/sts/stsiface"
	mock "github.com/stretchr/testify/mock"
)

// STSAPI is a mock type for the STSAPI type. Only the operations the engine
// exercises are implemented.
type STSAPI struct {
	stsiface.STSAPI
	mock.Mock
}

// AssumeRoleWithContext provides a mock function with given fields: _a0, _a1, _a2
func (_m *STSAPI) AssumeRoleWithContext(_a0 aws.Context, _a1 *sts.AssumeRoleInput, _a2 ...request.Option) (*sts.AssumeRoleOutput, error) {
	_va := make([]interface{}, len(_a2))
	for _i := range _a2 {
		_va[_i] = _a2[_i]
	}
	var _ca []interface{}
	_ca = append(_ca, _a0, _a1)
	_ca = append(_ca, _va...)
	ret := _m.Called(_ca...)

	var r0 *sts.AssumeRoleOutput
	if rf, ok := ret.Get(0).(func(aws.Context, *sts.AssumeRoleInput, ...request.Option) *sts.AssumeRoleOutput); ok {
		r0 = rf(_a0, _a1, _a2...)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*sts.AssumeRoleOutput)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(aws.Context, *sts.AssumeRoleInput, ...request.Option) error); ok {
		r1 = rf(_a0, _a1, _a2...)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetCallerIdentityWithContext provides a mock function with given fields: _a0, _a1, _a2
func (_m *STSAPI) GetCallerIdentityWithContext(_a0 aws.Context, _a1 *sts.GetCallerIdentityInput, _a2 ...request.Option) (*sts.GetCallerIdentityOutput, error) {
	_va := make([]interface{}, len(_a2))
	for _i := range _a2 {
		_va[_i] = _a2[_i]
	}
	var _ca []interface{}
	_ca = append(_ca, _a0, _a1)
	_ca = append(_ca, _va...)
	ret := _m.Called(_ca...)

	var r0 *sts.GetCallerIdentityOutput
	if rf, ok := ret.Get(0).(func(aws.Context, *sts.GetCallerIdentityInput, ...request.Option) *sts.GetCallerIdentityOutput); ok {
		r0 = rf(_a0, _a1, _a2...)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*sts.GetCallerIdentityOutput)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(aws.Context, *sts.GetCallerIdentityInput, ...request.Option) error); ok {
		r1 = rf(_a0, _a1, _a2...)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
