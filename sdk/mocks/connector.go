package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"

	types "github.com/IntersectLabs/supra-oracle-pull/types"
)

// Connector is a mock type for the Connector type
type Connector struct {
	mock.Mock
}

type Connector_Expecter struct {
	mock *mock.Mock
}

func (_m *Connector) EXPECT() *Connector_Expecter {
	return &Connector_Expecter{mock: &_m.Mock}
}

// ChainType provides a mock function with no fields
func (_m *Connector) ChainType() types.ChainType {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for ChainType")
	}

	var r0 types.ChainType
	if rf, ok := ret.Get(0).(func() types.ChainType); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(types.ChainType)
	}

	return r0
}

// Connector_ChainType_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ChainType'
type Connector_ChainType_Call struct {
	*mock.Call
}

// ChainType is a helper method to define mock.On call
func (_e *Connector_Expecter) ChainType() *Connector_ChainType_Call {
	return &Connector_ChainType_Call{Call: _e.mock.On("ChainType")}
}

func (_c *Connector_ChainType_Call) Return(_a0 types.ChainType) *Connector_ChainType_Call {
	_c.Call.Return(_a0)
	return _c
}

// Close provides a mock function with no fields
func (_m *Connector) Close() error {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Close")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Connector_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type Connector_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *Connector_Expecter) Close() *Connector_Close_Call {
	return &Connector_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *Connector_Close_Call) Return(_a0 error) *Connector_Close_Call {
	_c.Call.Return(_a0)
	return _c
}

// Invoke provides a mock function with given fields: ctx, resp
func (_m *Connector) Invoke(ctx context.Context, resp types.PullResponse) (types.TransactionResult, error) {
	ret := _m.Called(ctx, resp)

	if len(ret) == 0 {
		panic("no return value specified for Invoke")
	}

	var r0 types.TransactionResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, types.PullResponse) (types.TransactionResult, error)); ok {
		return rf(ctx, resp)
	}
	if rf, ok := ret.Get(0).(func(context.Context, types.PullResponse) types.TransactionResult); ok {
		r0 = rf(ctx, resp)
	} else {
		r0 = ret.Get(0).(types.TransactionResult)
	}

	if rf, ok := ret.Get(1).(func(context.Context, types.PullResponse) error); ok {
		r1 = rf(ctx, resp)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Connector_Invoke_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Invoke'
type Connector_Invoke_Call struct {
	*mock.Call
}

// Invoke is a helper method to define mock.On call
//   - ctx context.Context
//   - resp types.PullResponse
func (_e *Connector_Expecter) Invoke(ctx interface{}, resp interface{}) *Connector_Invoke_Call {
	return &Connector_Invoke_Call{Call: _e.mock.On("Invoke", ctx, resp)}
}

func (_c *Connector_Invoke_Call) Run(run func(ctx context.Context, resp types.PullResponse)) *Connector_Invoke_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(types.PullResponse))
	})
	return _c
}

func (_c *Connector_Invoke_Call) Return(_a0 types.TransactionResult, _a1 error) *Connector_Invoke_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// NewConnector creates a new instance of Connector. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewConnector(t interface {
	mock.TestingT
	Cleanup(func())
}) *Connector {
	mock := &Connector{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
