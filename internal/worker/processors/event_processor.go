package processors

import (
	"sync"

	"engagemate/internal/events"
	"engagemate/internal/logger"
)

// EventProcessor tallies engagement activity from the event stream. The
// counters back operational visibility for deployments where the API and the
// worker run separately; the dashboard itself reads the stores directly.
type EventProcessor struct {
	logger *logger.Logger

	mu     sync.Mutex
	counts map[string]int
}

func NewEventProcessor(log *logger.Logger) *EventProcessor {
	return &EventProcessor{
		logger: log,
		counts: make(map[string]int),
	}
}

func (ep *EventProcessor) Process(event events.Event) error {
	ep.mu.Lock()
	ep.counts[event.Type]++
	total := ep.counts[event.Type]
	ep.mu.Unlock()

	switch event.Type {
	case events.TypeCommentPosted:
		ep.logger.Info("comment %s posted (%d posted so far)", event.EntityID, total)
	case events.TypeCommentFailed:
		ep.logger.Warn("comment %s failed (%d failures so far)", event.EntityID, total)
	default:
		ep.logger.Debug("event %s for %s (%d seen)", event.Type, event.EntityID, total)
	}

	return nil
}

// Counts returns a snapshot of per-type event totals.
func (ep *EventProcessor) Counts() map[string]int {
	ep.mu.Lock()
	defer ep.mu.Unlock()

	snapshot := make(map[string]int, len(ep.counts))
	for k, v := range ep.counts {
		snapshot[k] = v
	}
	return snapshot
}
