package mocks

import (
	aws "github.com/aws/aws-sdk-go/aws"
	request "github.com/aws/aws-sdk-go/aws/request"
	ses "github.com/aws/aws-sdk-go/service/ses"
	sesiface "github.com/aws/aws-sdk-go/service/ses/sesiface"
	mock "github.com/stretchr/testify/mock"
)

// SESAPI is a mock type for the SESAPI type. Only the operations the engine
// exercises are implemented.
type SESAPI struct {
	sesiface.SESAPI
	mock.Mock
}

// SendEmailWithContext provides a mock function with given fields: _a0, _a1, _a2
func (_m *SESAPI) SendEmailWithContext(_a0 aws.Context, _a1 *ses.SendEmailInput, _a2 ...request.Option) (*ses.SendEmailOutput, error) {
	ret := _m.Called(_a0, _a1)

	var r0 *ses.SendEmailOutput
	if rf, ok := ret.Get(0).(func(aws.Context, *ses.SendEmailInput) *ses.SendEmailOutput); ok {
		r0 = rf(_a0, _a1)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*ses.SendEmailOutput)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(aws.Context, *ses.SendEmailInput) error); ok {
		r1 = rf(_a0, _a1)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SendRawEmailWithContext provides a mock function with given fields: _a0, _a1, _a2
func (_m *SESAPI) SendRawEmailWithContext(_a0 aws.Context, _a1 *ses.SendRawEmailInput, _a2 ...request.Option) (*ses.SendRawEmailOutput, error) {
	ret := _m.Called(_a0, _a1)

	var r0 *ses.SendRawEmailOutput
	if rf, ok := ret.Get(0).(func(aws.Context, *ses.SendRawEmailInput) *ses.SendRawEmailOutput); ok {
		r0 = rf(_a0, _a1)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*ses.SendRawEmailOutput)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(aws.Context, *ses.SendRawEmailInput) error); ok {
		r1 = rf(_a0, _a1)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
