// Package local implements the device-local persistence backend on top of
// BoltDB. Each named entry holds a whole JSON document, read in full on load
// and rewritten in full on every mutation. There is no query language and no
// delta write; last write wins.
package local

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"engagemate/internal/logger"
	"engagemate/internal/models"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

var (
	bucketName  = []byte("engagemate")
	keyProducts = []byte("products")
	keyComments = []byte("generated-comments")
	keySettings = []byte("reddit-settings")
)

// Store is the bbolt-backed implementation of the product, comment and
// settings stores. Writes are serialized through a single mutex; only the UI
// caller issues writes, so this is belt over braces.
type Store struct {
	db     *bolt.DB
	logger *logger.Logger
	mu     sync.Mutex
}

// Open initializes the BoltDB file and ensures the bucket exists.
func Open(path string, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, models.WrapError(models.ErrCodePersistence, "failed to create data directory", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, models.WrapError(models.ErrCodePersistence, "failed to open local store", err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	}); err != nil {
		db.Close()
		return nil, models.WrapError(models.ErrCodePersistence, "failed to create bucket", err)
	}

	return &Store{db: db, logger: log}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) readEntry(key []byte, out interface{}) error {
	return s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketName).Get(key)
		if raw == nil {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return models.WrapError(models.ErrCodePersistence, "corrupt local store entry "+string(key), err)
		}
		return nil
	})
}

func (s *Store) writeEntry(key []byte, in interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return models.WrapError(models.ErrCodePersistence, "failed to serialize "+string(key), err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put(key, payload)
	})
}

func (s *Store) loadProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.readEntry(keyProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// List returns products newest-first by creation time.
func (s *Store) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.loadProducts()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (s *Store) Get(ctx context.Context, id string) (*models.Product, error) {
	products, err := s.loadProducts()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, models.ErrProductNotFound
}

func (s *Store) Create(ctx context.Context, params models.CreateProductParams) (*models.Product, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.loadProducts()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := models.Product{
		ID:          uuid.New().String(),
		Name:        params.Name,
		Description: params.Description,
		Link:        params.Link,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	products = append(products, product)
	if err := s.writeEntry(keyProducts, products); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update applies the supplied fields only. A failed write is reported as a
// nil product with a nil error; the caller checks the result.
func (s *Store) Update(ctx context.Context, id string, params models.UpdateProductParams) (*models.Product, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.loadProducts()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range products {
		if products[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, models.ErrProductNotFound
	}

	if params.Name != nil {
		products[idx].Name = *params.Name
	}
	if params.Description != nil {
		products[idx].Description = *params.Description
	}
	if params.Link != nil {
		products[idx].Link = params.Link
	}
	products[idx].UpdatedAt = time.Now().UTC()

	if err := s.writeEntry(keyProducts, products); err != nil {
		s.logger.Error("product update write failed: %v", err)
		return nil, nil
	}
	updated := products[idx]
	return &updated, nil
}

// Delete is idempotent: a missing id reports false without error.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.loadProducts()
	if err != nil {
		return false, err
	}

	kept := products[:0]
	removed := false
	for _, p := range products {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return false, nil
	}

	if err := s.writeEntry(keyProducts, kept); err != nil {
		s.logger.Error("product delete write failed: %v", err)
		return false, nil
	}
	return true, nil
}

func (s *Store) loadComments() ([]models.GeneratedComment, error) {
	var comments []models.GeneratedComment
	if err := s.readEntry(keyComments, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *Store) ListComments(ctx context.Context) ([]models.GeneratedComment, error) {
	return s.loadComments()
}

func (s *Store) GetComment(ctx context.Context, id string) (*models.GeneratedComment, error) {
	comments, err := s.loadComments()
	if err != nil {
		return nil, err
	}
	for i := range comments {
		if comments[i].ID == id {
			return &comments[i], nil
		}
	}
	return nil, models.ErrCommentNotFound
}

// AppendComments concatenates onto the existing collection, never replacing
// earlier results.
func (s *Store) AppendComments(ctx context.Context, newComments []models.GeneratedComment) error {
	if len(newComments) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	comments, err := s.loadComments()
	if err != nil {
		return err
	}
	comments = append(comments, newComments...)
	return s.writeEntry(keyComments, comments)
}

// SaveComment replaces the stored record with the same ID.
func (s *Store) SaveComment(ctx context.Context, comment models.GeneratedComment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	comments, err := s.loadComments()
	if err != nil {
		return err
	}
	for i := range comments {
		if comments[i].ID == comment.ID {
			comments[i] = comment
			return s.writeEntry(keyComments, comments)
		}
	}
	return models.ErrCommentNotFound
}

func (s *Store) DeleteComment(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comments, err := s.loadComments()
	if err != nil {
		return false, err
	}

	kept := comments[:0]
	removed := false
	for _, c := range comments {
		if c.ID == id {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	if !removed {
		return false, nil
	}
	if err := s.writeEntry(keyComments, kept); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) LoadSettings(ctx context.Context) (models.RedditSettings, error) {
	var settings models.RedditSettings
	if err := s.readEntry(keySettings, &settings); err != nil {
		return models.RedditSettings{}, err
	}
	return settings, nil
}

func (s *Store) SaveSettings(ctx context.Context, settings models.RedditSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeEntry(keySettings, settings)
}
