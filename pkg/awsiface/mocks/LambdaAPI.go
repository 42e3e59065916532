package mocks

import (
	aws "github.com/aws/aws-sdk-go/aws"
	request "github.com/aws/aws-sdk-go/aws/request"
	lambda "github.com/aws/aws-sdk-go/service/lambda"
	lambdaiface "github.com/aws/aws-sdk-go/service/lambda/lambdaiface"
	mock "github.com/stretchr/testify/mock"
)

// LambdaAPI is a mock type for the LambdaAPI type. Only the operations the
// engine exercises are implemented.
type LambdaAPI struct {
	lambdaiface.LambdaAPI
	mock.Mock
}

// ListFunctionsWithContext provides a mock function with given fields: _a0, _a1, _a2
func (_m *LambdaAPI) ListFunctionsWithContext(_a0 aws.Context, _a1 *lambda.ListFunctionsInput, _a2 ...request.Option) (*lambda.ListFunctionsOutput, error) {
	_va := make([]interface{}, len(_a2))
	for _i := range _a2 {
		_va[_i] = _a2[_i]
	}
	var _ca []interface{}
	_ca = append(_ca, _a0, _a1)
	_ca = append(_ca, _va...)
	ret := _m.Called(_ca...)

	var r0 *lambda.ListFunctionsOutput
	if rf, ok := ret.Get(0).(func(aws.Context, *lambda.ListFunctionsInput, ...request.Option) *lambda.ListFunctionsOutput); ok {
		r0 = rf(_a0, _a1, _a2...)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*lambda.ListFunctionsOutput)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(aws.Context, *lambda.ListFunctionsInput, ...request.Option) error); ok {
		r1 = rf(_a0, _a1, _a2...)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
