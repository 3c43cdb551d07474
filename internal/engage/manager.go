// Package engage holds the comment generation and lifecycle manager: it
// synthesizes one comment per candidate post, tracks each comment through its
// status machine, and keeps the persisted collection consistent.
package engage

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"engagemate/internal/events"
	"engagemate/internal/logger"
	"engagemate/internal/models"
	"engagemate/internal/store"
)

// Manager owns the generated-comment collection. It holds denormalized
// snapshots of products and posts rather than live references, so later
// edits or deletes of the source product never reach past comments.
type Manager struct {
	comments  store.CommentStore
	synth     Synthesizer
	publisher events.Publisher
	logger    *logger.Logger
	inFlight  atomic.Bool
}

func NewManager(comments store.CommentStore, synth Synthesizer, publisher events.Publisher, log *logger.Logger) *Manager {
	return &Manager{
		comments:  comments,
		synth:     synth,
		publisher: publisher,
		logger:    log,
	}
}

// Generate synthesizes one comment per post, preserving input order. The
// batch runs strictly sequentially and every produced comment is appended to
// the persisted collection before the next synthesis starts, so a mid-batch
// failure leaves a well-defined prefix behind. That prefix is returned along
// with the error; callers compare len(result) against len(posts).
func (m *Manager) Generate(ctx context.Context, product models.Product, posts []models.CandidatePost) ([]models.GeneratedComment, error) {
	if len(posts) == 0 {
		return nil, models.NewError(models.ErrCodeInvalidRequest, "no candidate posts to generate comments for")
	}

	if !m.inFlight.CompareAndSwap(false, true) {
		return nil, models.ErrOperationInFlight
	}
	defer m.inFlight.Store(false)

	produced := make([]models.GeneratedComment, 0, len(posts))
	for _, post := range posts {
		content, err := m.synth.Synthesize(ctx, product, post)
		if err != nil {
			m.logger.Error("synthesis failed for post %s after %d of %d comments: %v",
				post.ID, len(produced), len(posts), err)
			return produced, models.WrapError(models.ErrCodeInvalidRequest, "comment synthesis failed", err)
		}

		comment := models.GeneratedComment{
			ID:        newCommentID(),
			PostID:    post.ID,
			Post:      post,
			Content:   content,
			ProductID: product.ID,
			Product:   product,
			Status:    models.CommentGenerated,
			CreatedAt: time.Now().UTC(),
		}

		if err := m.comments.AppendComments(ctx, []models.GeneratedComment{comment}); err != nil {
			m.logger.Error("failed to persist comment for post %s: %v", post.ID, err)
			return produced, err
		}
		produced = append(produced, comment)

		m.publisher.Publish(ctx, events.TypeCommentGenerated, comment.ID, map[string]interface{}{
			"product_id": product.ID,
			"post_id":    post.ID,
		})
	}

	m.logger.Info("generated %d comments for product %s", len(produced), product.ID)
	return produced, nil
}

// List returns the full persisted collection.
func (m *Manager) List(ctx context.Context) ([]models.GeneratedComment, error) {
	return m.comments.ListComments(ctx)
}

// Get fetches a single comment by id.
func (m *Manager) Get(ctx context.Context, id string) (*models.GeneratedComment, error) {
	return m.comments.GetComment(ctx, id)
}

// MarkPosted transitions a comment to posted. Idempotent when already
// posted; a failed comment cannot be resurrected.
func (m *Manager) MarkPosted(ctx context.Context, id string) (*models.GeneratedComment, error) {
	return m.transition(ctx, id, models.CommentPosted, events.TypeCommentPosted)
}

// MarkFailed records a posting failure. Idempotent when already failed.
func (m *Manager) MarkFailed(ctx context.Context, id string) (*models.GeneratedComment, error) {
	return m.transition(ctx, id, models.CommentFailed, events.TypeCommentFailed)
}

func (m *Manager) transition(ctx context.Context, id string, target models.CommentStatus, eventType string) (*models.GeneratedComment, error) {
	comment, err := m.comments.GetComment(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.Status == target {
		return comment, nil
	}
	if comment.Status.Terminal() {
		return nil, models.NewError(models.ErrCodeConflict,
			fmt.Sprintf("comment is already %s", comment.Status))
	}

	comment.Status = target
	if err := m.comments.SaveComment(ctx, *comment); err != nil {
		return nil, err
	}

	m.publisher.Publish(ctx, eventType, comment.ID, map[string]interface{}{
		"product_id": comment.ProductID,
	})
	return comment, nil
}

// Delete removes a comment. Idempotent: a missing id reports false.
func (m *Manager) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := m.comments.DeleteComment(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		m.publisher.Publish(ctx, events.TypeCommentDeleted, id, nil)
	}
	return removed, nil
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// newCommentID combines a nanosecond timestamp with a random suffix so IDs
// stay unique within a batch generated in the same tick.
func newCommentID() string {
	suffix := make([]byte, 8)
	for i := range suffix {
		suffix[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixNano(), suffix)
}
