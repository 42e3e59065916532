package mocks

import (
	aws "github.com/aws/aws-sdk-go/aws"
	request "github.com/aws/aws-sdk-go/aws/request"
	rds "github.com/aws/aws-sdk-go/service/rds"
	rdsiface "github.com/aws/aws-sdk-go/service/rds/rdsiface"
	mock "github.com/stretchr/testify/mock"
)

// RDSAPI is a mock type for the RDSAPI type. Only the operations the engine
// exercises are implemented.
type RDSAPI struct {
	rdsiface.RDSAPI
	mock.Mock
}

// DescribeDBInstancesWithContext provides a mock function with given fields: _a0, _a1, _a2
func (_m *RDSAPI) DescribeDBInstancesWithContext(_a0 aws.Context, _a1 *rds.DescribeDBInstancesInput, _a2 ...request.Option) (*rds.DescribeDBInstancesOutput, error) {
	_va := make([]interface{}, len(_a2))
	for _i := range _a2 {
		_va[_i] = _a2[_i]
	}
	var _ca []interface{}
	_ca = append(_ca, _a0, _a1)
	_ca = append(_ca, _va...)
	ret := _m.Called(_ca...)

	var r0 *rds.DescribeDBInstancesOutput
	if rf, ok := ret.Get(0).(func(aws.Context, *rds.DescribeDBInstancesInput, ...request.Option) *rds.DescribeDBInstancesOutput); ok {
		r0 = rf(_a0, _a1, _a2...)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*rds.DescribeDBInstancesOutput)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(aws.Context, *rds.DescribeDBInstancesInput, ...request.Option) error); ok {
		r1 = rf(_a0, _a1, _a2...)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
