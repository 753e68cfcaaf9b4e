package commands_test

import (
	"context"
	"log/slog"

	"pharmadmin/internal/core/domain/model/order"
	"pharmadmin/internal/core/domain/model/shipment"
	"pharmadmin/internal/core/domain/services"
	"pharmadmin/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderSource struct{ mock.Mock }

func (m *MockOrderSource) FetchOrders(ctx context.Context) (ports.OrderBatch, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.OrderBatch), args.Error(1)
}

type MockInTransitOrderSource struct{ mock.Mock }

func (m *MockInTransitOrderSource) FetchInTransitOrders(ctx context.Context) (ports.InTransitBatch, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.InTransitBatch), args.Error(1)
}

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) AddAll(orders []*order.Order) error {
	args := m.Called(orders)
	return args.Error(0)
}

func (m *MockOrderStore) CancelOrder(orderID int64) services.CancelResult {
	args := m.Called(orderID)
	return args.Get(0).(services.CancelResult)
}

func (m *MockOrderStore) RemoveOrder(orderID int64) bool {
	args := m.Called(orderID)
	return args.Bool(0)
}

type MockInTransitOrderStore struct{ mock.Mock }

func (m *MockInTransitOrderStore) ReplaceAll(orders []shipment.InTransitOrder) error {
	args := m.Called(orders)
	return args.Error(0)
}

func (m *MockInTransitOrderStore) CancelOrder(orderID int64) services.CancelResult {
	args := m.Called(orderID)
	return args.Get(0).(services.CancelResult)
}

func (m *MockInTransitOrderStore) RemoveOrder(orderID int64) bool {
	args := m.Called(orderID)
	return args.Bool(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
