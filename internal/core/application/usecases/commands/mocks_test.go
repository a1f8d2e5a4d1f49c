package commands_test

import (
	"context"

	"waybill/internal/core/application/usecases/commands"
	"waybill/internal/core/domain/model/kernel"
	"waybill/internal/core/domain/model/waybill"
	"waybill/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockWaybillRepository struct{ mock.Mock }

func (m *MockWaybillRepository) Add(ctx context.Context, aggregate *waybill.Waybill) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockWaybillRepository) Get(ctx context.Context, id kernel.UUID) (*waybill.Waybill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*waybill.Waybill), args.Error(1)
}

func (m *MockWaybillRepository) CompareAndSwap(
	ctx context.Context,
	aggregate *waybill.Waybill,
	expectedVersion int64,
	expectedStatus waybill.Status,
) (bool, error) {
	args := m.Called(ctx, aggregate, expectedVersion, expectedStatus)
	return args.Bool(0), args.Error(1)
}

type MockTransitionLogRepository struct{ mock.Mock }

func (m *MockTransitionLogRepository) Append(ctx context.Context, entry *waybill.TransitionLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockTransitionLogRepository) GetByWaybillID(
	ctx context.Context,
	waybillID kernel.UUID,
) ([]*waybill.TransitionLogEntry, error) {
	args := m.Called(ctx, waybillID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*waybill.TransitionLogEntry), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) WaybillRepository() ports.WaybillRepository {
	args := m.Called()
	return args.Get(0).(ports.WaybillRepository)
}

func (m *MockUoW) TransitionLogRepository() ports.TransitionLogRepository {
	args := m.Called()
	return args.Get(0).(ports.TransitionLogRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockWaybillUoWFactory struct{ mock.Mock }

func (m *MockWaybillUoWFactory) Create() commands.WaybillUoW {
	args := m.Called()
	return args.Get(0).(commands.WaybillUoW)
}

type MockTransitionPublisher struct{ mock.Mock }

func (m *MockTransitionPublisher) Publish(ctx context.Context, event ports.WaybillTransferredEvent) {
	m.Called(ctx, event)
}
