package store

import (
	"context"

	"engagemate/internal/models"
)

// ProductStore owns the canonical product list. Exactly one implementation is
// selected at composition time: the bbolt-backed local store or the
// gorm-backed relational store. Both expose identical ordering and field
// semantics.
//
// Update's contract is deliberately lenient about write failures: an
// underlying persistence failure yields (nil, nil), so callers must treat a
// nil product as "no effect". NotFound is still reported as an error.
type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, params models.CreateProductParams) (*models.Product, error)
	Update(ctx context.Context, id string, params models.UpdateProductParams) (*models.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// CommentStore owns the generated-comment collection. The full collection is
// re-serialized on every mutation; loads must reconstitute timestamps
// loss-free. Only the local store implements this today: the relational
// schema defines no comment table.
type CommentStore interface {
	ListComments(ctx context.Context) ([]models.GeneratedComment, error)
	GetComment(ctx context.Context, id string) (*models.GeneratedComment, error)
	AppendComments(ctx context.Context, comments []models.GeneratedComment) error
	SaveComment(ctx context.Context, comment models.GeneratedComment) error
	DeleteComment(ctx context.Context, id string) (bool, error)
}

// SettingsStore persists the platform credential configuration.
type SettingsStore interface {
	LoadSettings(ctx context.Context) (models.RedditSettings, error)
	SaveSettings(ctx context.Context, settings models.RedditSettings) error
}
