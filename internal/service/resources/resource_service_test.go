package resources

import (
	"context"
	"errors"
	"testing"

	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/domain"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) TryDebit(ctx context.Context, resourceKey string, quantity int) (bool, error) {
	args := m.Called(ctx, resourceKey, quantity)
	return args.Bool(0), args.Error(1)
}

func (m *MockInventoryRepository) Credit(ctx context.Context, resourceKey string, quantity int) error {
	return m.Called(ctx, resourceKey, quantity).Error(0)
}

func (m *MockInventoryRepository) GetByKey(ctx context.Context, resourceKey string) (*domain.InventoryRecord, error) {
	args := m.Called(ctx, resourceKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryRecord), args.Error(1)
}

func (m *MockInventoryRepository) List(ctx context.Context) ([]domain.InventoryRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryRecord), args.Error(1)
}

func (m *MockInventoryRepository) Upsert(ctx context.Context, record *domain.InventoryRecord) error {
	return m.Called(ctx, record).Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetResources(ctx context.Context) ([]domain.InventoryRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryRecord), args.Error(1)
}

func (m *MockCache) SetResources(ctx context.Context, records []domain.InventoryRecord) error {
	return m.Called(ctx, records).Error(0)
}

func TestList_CacheHit(t *testing.T) {
	repo := &MockInventoryRepository{}
	cache := &MockCache{}
	service := NewResourceService(repo, cache)
	ctx := context.Background()

	cached := []domain.InventoryRecord{{ResourceKey: "hotel-1", AvailableUnits: 5}}
	cache.On("GetResources", ctx).Return(cached, nil).Once()

	got, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, cached, got)
	repo.AssertNotCalled(t, "List")
}

func TestList_CacheMissFillsCache(t *testing.T) {
	repo := &MockInventoryRepository{}
	cache := &MockCache{}
	service := NewResourceService(repo, cache)
	ctx := context.Background()

	records := []domain.InventoryRecord{
		{ResourceKey: "hotel-1", AvailableUnits: 5},
		{ResourceKey: "guide-7", AvailableUnits: 2},
	}
	cache.On("GetResources", ctx).Return(nil, errors.New("cache miss")).Once()
	repo.On("List", ctx).Return(records, nil).Once()
	cache.On("SetResources", ctx, records).Return(nil).Once()

	got, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, records, got)
	cache.AssertExpectations(t)
}

func TestList_NilCache(t *testing.T) {
	repo := &MockInventoryRepository{}
	service := NewResourceService(repo, nil)
	ctx := context.Background()

	records := []domain.InventoryRecord{{ResourceKey: "hotel-1"}}
	repo.On("List", ctx).Return(records, nil).Once()

	got, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestGetByKey_BypassesCache(t *testing.T) {
	repo := &MockInventoryRepository{}
	cache := &MockCache{}
	service := NewResourceService(repo, cache)
	ctx := context.Background()

	record := &domain.InventoryRecord{ResourceKey: "hotel-1", AvailableUnits: 5}
	repo.On("GetByKey", ctx, "hotel-1").Return(record, nil).Once()

	got, err := service.GetByKey(ctx, "hotel-1")

	assert.NoError(t, err)
	assert.Equal(t, record, got)
	cache.AssertNotCalled(t, "GetResources")
}

func TestGetByKey_NotFound(t *testing.T) {
	repo := &MockInventoryRepository{}
	service := NewResourceService(repo, nil)
	ctx := context.Background()

	repo.On("GetByKey", ctx, "missing").Return(nil, repository.ErrNotFound).Once()

	got, err := service.GetByKey(ctx, "missing")

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Nil(t, got)
}
