package resources

import (
	"context"

	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/domain"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/repository"
)

type ResourceUseCase interface {
	List(ctx context.Context) ([]domain.InventoryRecord, error)
	GetByKey(ctx context.Context, key string) (*domain.InventoryRecord, error)
}

type Cache interface {
	GetResources(ctx context.Context) ([]domain.InventoryRecord, error)
	SetResources(ctx context.Context, records []domain.InventoryRecord) error
}

type ResourceService struct {
	repo  repository.InventoryRepository
	cache Cache
}

func NewResourceService(repo repository.InventoryRepository, cache Cache) *ResourceService {
	return &ResourceService{repo: repo, cache: cache}
}

func (s *ResourceService) List(ctx context.Context) ([]domain.InventoryRecord, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetResources(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetResources(ctx, records)
	}
	return records, nil
}

// GetByKey always reads storage: the booking pre-check wants a fresh
// snapshot, not a cached one.
func (s *ResourceService) GetByKey(ctx context.Context, key string) (*domain.InventoryRecord, error) {
	return s.repo.GetByKey(ctx, key)
}

var _ ResourceUseCase = (*ResourceService)(nil)
