package discovery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"engagemate/internal/logger"
	"engagemate/internal/models"
)

// Simulated stands in for the Reddit search backend. It sleeps to mimic
// network latency and returns a fixed result set tagged with the requested
// subreddits.
type Simulated struct {
	logger *logger.Logger
	delay  time.Duration
}

// DefaultDelay mirrors the latency the UI was originally tuned against.
const DefaultDelay = 2 * time.Second

func NewSimulated(log *logger.Logger, delay time.Duration) *Simulated {
	if delay < 0 {
		delay = DefaultDelay
	}
	return &Simulated{logger: log, delay: delay}
}

// FindCandidates requires at least one subreddit and honors ctx cancellation
// at the simulated-latency suspension point.
func (s *Simulated) FindCandidates(ctx context.Context, product models.Product, subreddits []string, keywords []string) ([]models.CandidatePost, error) {
	cleaned := make([]string, 0, len(subreddits))
	for _, sub := range subreddits {
		if trimmed := strings.TrimSpace(sub); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return nil, models.NewError(models.ErrCodeInvalidRequest, "at least one subreddit is required")
	}

	s.logger.Info("searching %d subreddits for product %s", len(cleaned), product.ID)

	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	now := time.Now().UTC()
	posts := []models.CandidatePost{
		{
			ID:           "1",
			Title:        "Looking for recommendations on productivity tools",
			Content:      "I'm struggling to stay organized with my work. Any suggestions for tools that actually work?",
			Author:       "productivityseeker",
			Subreddit:    cleaned[0],
			URL:          fmt.Sprintf("https://reddit.com/r/%s/comments/1", cleaned[0]),
			Score:        45,
			CommentCount: 23,
			DiscoveredAt: now,
		},
		{
			ID:           "2",
			Title:        "Best software for small business management?",
			Content:      "Running a small business and need better tools for managing everything. What do you recommend?",
			Author:       "smallbizowner",
			Subreddit:    cleaned[len(cleaned)-1],
			URL:          fmt.Sprintf("https://reddit.com/r/%s/comments/2", cleaned[len(cleaned)-1]),
			Score:        78,
			CommentCount: 34,
			DiscoveredAt: now,
		},
	}

	s.logger.Info("found %d candidate posts", len(posts))
	return posts, nil
}
