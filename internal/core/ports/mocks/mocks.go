// Package mocks provides testify mocks for the core ports.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/showseat/show_booking/internal/core/domain"
	"github.com/showseat/show_booking/internal/core/ports"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type LockStore struct {
	mock.Mock
}

func NewLockStore(t testingT) *LockStore {
	m := &LockStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *LockStore) TryAcquire(ctx context.Context, key, owner string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, owner, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *LockStore) Release(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *LockStore) IsHeld(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *LockStore) IsExpired(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *LockStore) IsOwnedBy(ctx context.Context, key, owner string) (bool, error) {
	args := m.Called(ctx, key, owner)
	return args.Bool(0), args.Error(1)
}

type BookingRepository struct {
	mock.Mock
}

func NewBookingRepository(t testingT) *BookingRepository {
	m := &BookingRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *BookingRepository) Save(ctx context.Context, booking *domain.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if b, ok := args.Get(0).(*domain.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *BookingRepository) ListByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error) {
	args := m.Called(ctx, status)
	if bs, ok := args.Get(0).([]*domain.Booking); ok {
		return bs, args.Error(1)
	}
	return nil, args.Error(1)
}

type ShowCatalog struct {
	mock.Mock
}

func NewShowCatalog(t testingT) *ShowCatalog {
	m := &ShowCatalog{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ShowCatalog) GetShow(ctx context.Context, showID string) (*domain.Show, error) {
	args := m.Called(ctx, showID)
	if s, ok := args.Get(0).(*domain.Show); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ShowCatalog) ShowSeats(ctx context.Context, showID string) ([]domain.Seat, error) {
	args := m.Called(ctx, showID)
	if seats, ok := args.Get(0).([]domain.Seat); ok {
		return seats, args.Error(1)
	}
	return nil, args.Error(1)
}

type PaymentGateway struct {
	mock.Mock
}

func NewPaymentGateway(t testingT) *PaymentGateway {
	m := &PaymentGateway{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PaymentGateway) Pay(ctx context.Context, booking *domain.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

type PaymentSelector struct {
	mock.Mock
}

func NewPaymentSelector(t testingT) *PaymentSelector {
	m := &PaymentSelector{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PaymentSelector) Select(paymentType domain.PaymentType) (ports.PaymentGateway, error) {
	args := m.Called(paymentType)
	if g, ok := args.Get(0).(ports.PaymentGateway); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}
