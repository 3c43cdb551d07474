package engage

import (
	"context"
	"fmt"
	"time"

	"engagemate/internal/models"
)

// Synthesizer produces the comment text for one (product, post) pair. The
// canned implementation below is the substitution point for a real
// text-generation backend; swap it without touching the lifecycle manager.
type Synthesizer interface {
	Synthesize(ctx context.Context, product models.Product, post models.CandidatePost) (string, error)
}

// Canned concatenates a fixed phrase with a truncated product description
// and, when present, the product link. Deterministic for a given pair.
type Canned struct {
	delay time.Duration
}

// DefaultDelay is the per-post pause that simulates a generation call.
const DefaultDelay = 1500 * time.Millisecond

func NewCanned(delay time.Duration) *Canned {
	if delay < 0 {
		delay = DefaultDelay
	}
	return &Canned{delay: delay}
}

const descriptionLimit = 100

func (c *Canned) Synthesize(ctx context.Context, product models.Product, post models.CandidatePost) (string, error) {
	select {
	case <-time.After(c.delay):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	description := product.Description
	if len(description) > descriptionLimit {
		description = description[:descriptionLimit]
	}

	closing := "Feel free to ask if you have any questions about it!"
	if product.Link != nil && *product.Link != "" {
		closing = fmt.Sprintf("You can check it out here: %s", *product.Link)
	}

	return fmt.Sprintf(
		"That's a great question! I've been using %s for similar challenges and it's been really helpful. %s... %s",
		product.Name, description, closing,
	), nil
}
