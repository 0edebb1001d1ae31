package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// Category represents a category in the service layer.
type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// CategoryService handles category read logic.
type CategoryService struct {
	storage *storage.Storage
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage) *CategoryService {
	return &CategoryService{storage: store}
}

// ListCategories returns the owner's categories sorted by name.
func (s *CategoryService) ListCategories(ctx context.Context, owner uuid.UUID) ([]Category, error) {
	rows, err := s.storage.Categories.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = Category{
			ID:        row.ID,
			Name:      row.Name,
			CreatedAt: row.CreatedAt,
		}
	}
	return categories, nil
}
