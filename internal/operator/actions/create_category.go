package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/category"
)

// CreateCategory registers a category name, unique per owner.
type CreateCategory struct {
	Owner uuid.UUID
	Name  string

	// Created is populated on success.
	Created *category.Category

	IAction
}

func (a *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Name == "" {
		return fmt.Errorf("name is required: %w", ledger.ErrValidation)
	}

	exists, err := writer.Categories.Exists(ctx, a.Owner, a.Name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("category %q already exists: %w", a.Name, ledger.ErrConflict)
	}

	id, err := writer.Categories.Insert(ctx, &category.CategoryCreate{
		Owner: a.Owner,
		Name:  a.Name,
	})
	if err != nil {
		return err
	}

	a.Created = &category.Category{ID: id, Owner: a.Owner, Name: a.Name}
	return nil
}
