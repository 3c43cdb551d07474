package models

import "time"

// CommentStatus tracks a generated comment through its lifecycle.
// Transitions: generated -> posted, generated -> failed. Both posted and
// failed are terminal; re-generation creates a new comment instead of
// resetting an old one.
type CommentStatus string

const (
	CommentGenerated CommentStatus = "generated"
	CommentPosted    CommentStatus = "posted"
	CommentFailed    CommentStatus = "failed"
)

// GeneratedComment is synthesized marketing text tied to one product and one
// candidate post. The originating product and post are embedded as full
// snapshots taken at generation time, so the comment stays displayable and
// auditable even after the source product is edited or deleted.
type GeneratedComment struct {
	ID        string        `json:"id"`
	PostID    string        `json:"post_id"`
	Post      CandidatePost `json:"post"`
	Content   string        `json:"content"`
	ProductID string        `json:"product_id"`
	Product   Product       `json:"product"`
	Status    CommentStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// Terminal reports whether the status permits no further transition.
func (s CommentStatus) Terminal() bool {
	return s == CommentPosted || s == CommentFailed
}
