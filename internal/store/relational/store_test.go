package relational

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"engagemate/internal/database"
	"engagemate/internal/logger"
	"engagemate/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.New("sqlite://" + filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db.DB, logger.NewNop())
}

func strPtr(s string) *string { return &s }

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	product, err := s.Create(ctx, models.CreateProductParams{
		Name:        "Acme Widget",
		Description: "A widget for widgets",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.False(t, product.CreatedAt.IsZero())
	assert.False(t, product.UpdatedAt.IsZero())
}

func TestCreateValidation(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Create(context.Background(), models.CreateProductParams{Name: " ", Description: "d"})
	assert.True(t, models.IsCode(err, models.ErrCodeValidation))
}

func TestListOrdersNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.Create(ctx, models.CreateProductParams{Name: "first", Description: "d"})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := s.Create(ctx, models.CreateProductParams{Name: "second", Description: "d"})
	require.NoError(t, err)

	products, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, second.ID, products[0].ID)
	assert.Equal(t, first.ID, products[1].ID)
}

func TestGetNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get(context.Background(), "missing")
	assert.True(t, models.IsCode(err, models.ErrCodeNotFound))
}

func TestUpdatePartialFields(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, models.CreateProductParams{
		Name:        "before",
		Description: "unchanged",
		Link:        strPtr("https://before.example"),
	})
	require.NoError(t, err)

	updated, err := s.Update(ctx, created.ID, models.UpdateProductParams{Name: strPtr("after")})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "after", updated.Name)
	assert.Equal(t, "unchanged", updated.Description)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Name)
	assert.Equal(t, "unchanged", got.Description)
	assert.Equal(t, "https://before.example", *got.Link)
}

func TestUpdateUnknownID(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Update(context.Background(), "missing", models.UpdateProductParams{Name: strPtr("x")})
	assert.True(t, models.IsCode(err, models.ErrCodeNotFound))
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, models.CreateProductParams{Name: "n", Description: "d"})
	require.NoError(t, err)

	removed, err := s.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	products, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}
