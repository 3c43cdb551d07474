// Package relational implements the durable product store on top of gorm.
// Timestamps are library-assigned; individual record operations rely on the
// database's own consistency guarantees, no multi-statement transaction spans
// product mutations.
package relational

import (
	"context"
	"errors"
	"time"

	"engagemate/internal/logger"
	"engagemate/internal/models"

	"gorm.io/gorm"
)

type Store struct {
	db     *gorm.DB
	logger *logger.Logger
}

func New(db *gorm.DB, log *logger.Logger) *Store {
	return &Store{db: db, logger: log}
}

// List returns products newest-first by creation time, matching the local
// store's ordering.
func (s *Store) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, models.WrapError(models.ErrCodePersistence, "failed to fetch products", err)
	}
	return products, nil
}

func (s *Store) Get(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProductNotFound
		}
		return nil, models.WrapError(models.ErrCodePersistence, "failed to fetch product", err)
	}
	return &product, nil
}

func (s *Store) Create(ctx context.Context, params models.CreateProductParams) (*models.Product, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	product := models.Product{
		Name:        params.Name,
		Description: params.Description,
		Link:        params.Link,
	}
	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, models.WrapError(models.ErrCodePersistence, "failed to create product", err)
	}
	return &product, nil
}

// Update applies the supplied fields only. A persistence failure is swallowed
// into a nil result; callers must treat "no product" as the failure signal.
func (s *Store) Update(ctx context.Context, id string, params models.UpdateProductParams) (*models.Product, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProductNotFound
		}
		return nil, models.WrapError(models.ErrCodePersistence, "failed to fetch product", err)
	}

	// updated_at is refreshed on every mutation, even a field-free one.
	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if params.Name != nil {
		updates["name"] = *params.Name
	}
	if params.Description != nil {
		updates["description"] = *params.Description
	}
	if params.Link != nil {
		updates["link"] = *params.Link
	}

	if err := s.db.WithContext(ctx).Model(&product).Updates(updates).Error; err != nil {
		s.logger.Error("product update write failed: %v", err)
		return nil, nil
	}
	return &product, nil
}

// Delete is idempotent; a persistence failure reports false without error.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	result := s.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		s.logger.Error("product delete failed: %v", result.Error)
		return false, nil
	}
	return result.RowsAffected > 0, nil
}
