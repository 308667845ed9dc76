// Package mocks provides testify mock implementations of the application
// ports for unit testing services and jobs.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"freshtrack-backend/application/ports"
	"freshtrack-backend/domain/inventory"
	"freshtrack-backend/domain/user"
)

// MockProfileRepository mocks ports.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) CreateIfAbsent(ctx context.Context, profile user.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByEmail(ctx context.Context, email string) (*user.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Profile), args.Error(1)
}

// MockItemRepository mocks ports.ItemRepository.
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Put(ctx context.Context, ownerEmail string, item inventory.Item) error {
	args := m.Called(ctx, ownerEmail, item)
	return args.Error(0)
}

func (m *MockItemRepository) Get(ctx context.Context, ownerEmail, itemID string) (*inventory.Item, error) {
	args := m.Called(ctx, ownerEmail, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Item), args.Error(1)
}

func (m *MockItemRepository) Update(ctx context.Context, ownerEmail string, item inventory.Item) error {
	args := m.Called(ctx, ownerEmail, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, ownerEmail, itemID string) error {
	args := m.Called(ctx, ownerEmail, itemID)
	return args.Error(0)
}

func (m *MockItemRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]inventory.Item, error) {
	args := m.Called(ctx, ownerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Item), args.Error(1)
}

func (m *MockItemRepository) ScanExpiring(ctx context.Context, from, to string) ([]ports.OwnedItem, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OwnedItem), args.Error(1)
}

// MockNotificationService mocks ports.NotificationService.
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) SubscribeEmail(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockNotificationService) Publish(ctx context.Context, subject, message string) error {
	args := m.Called(ctx, subject, message)
	return args.Error(0)
}
