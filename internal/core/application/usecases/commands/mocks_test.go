package commands_test

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/domain/model/quoterequest"
	"marketplace/internal/core/domain/specification"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Add(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCartRepository) Update(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCartRepository) Get(_ context.Context, _ kernel.UUID) (*cart.Cart, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCartRepository) GetByOwner(ctx context.Context, ownerID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

type MockQuoteRequestRepository struct{ mock.Mock }

func (m *MockQuoteRequestRepository) Add(ctx context.Context, r *quoterequest.QuoteRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockQuoteRequestRepository) Update(ctx context.Context, r *quoterequest.QuoteRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockQuoteRequestRepository) Get(_ context.Context, _ kernel.UUID) (*quoterequest.QuoteRequest, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockQuoteRequestRepository) GetAllPendingExpiredBy(
	ctx context.Context, moment time.Time,
) ([]*quoterequest.QuoteRequest, error) {
	args := m.Called(ctx, moment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*quoterequest.QuoteRequest), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllByOwner(_ context.Context, _ kernel.UUID) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) GetAllMatching(_ context.Context, _ specification.Predicate) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepository) Update(_ context.Context, _ *payment.Payment) error {
	return errors.New("not implemented in mock")
}
func (m *MockPaymentRepository) Get(_ context.Context, _ kernel.UUID) (*payment.Payment, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockPaymentRepository) GetAllByOrder(_ context.Context, _ kernel.UUID) ([]*payment.Payment, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCartUoW struct{ mock.Mock }

func (m *MockCartUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCartUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCartUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCartUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

type MockCheckoutUoW struct{ mock.Mock }

func (m *MockCheckoutUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCheckoutUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCheckoutUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCheckoutUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}
func (m *MockCheckoutUoW) QuoteRequestRepository() ports.QuoteRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.QuoteRequestRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

type MockDepositUoW struct{ mock.Mock }

func (m *MockDepositUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDepositUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDepositUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDepositUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockDepositUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

type MockDepositUoWFactory struct{ mock.Mock }

func (m *MockDepositUoWFactory) Create() commands.DepositUoW {
	args := m.Called()
	return args.Get(0).(commands.DepositUoW)
}

type MockQuoteRequestUoW struct{ mock.Mock }

func (m *MockQuoteRequestUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockQuoteRequestUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockQuoteRequestUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockQuoteRequestUoW) QuoteRequestRepository() ports.QuoteRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.QuoteRequestRepository)
}

type MockQuoteRequestUoWFactory struct{ mock.Mock }

func (m *MockQuoteRequestUoWFactory) Create() commands.QuoteRequestUoW {
	args := m.Called()
	return args.Get(0).(commands.QuoteRequestUoW)
}
