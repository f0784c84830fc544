package host

import (
	"sync"

	"github.com/edwingeng/deque"
)

const DefaultHistorySize = 100

// History keeps the most recent outcomes, oldest first.
type History struct {
	mu      sync.Mutex
	entries deque.Deque // <Outcome>
	limit   int
}

// NewHistory creates a history holding at most limit outcomes.
// A non-positive limit means DefaultHistorySize.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistorySize
	}
	return &History{
		entries: deque.NewDeque(),
		limit:   limit,
	}
}

func (h *History) Add(o Outcome) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries.PushBack(o)
	for h.entries.Len() > h.limit {
		h.entries.PopFront()
	}
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries.Len()
}

// Entries returns a copy of the recorded outcomes, oldest first.
func (h *History) Entries() []Outcome {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Outcome, 0, h.entries.Len())
	h.entries.Range(func(_ int, v deque.Elem) bool {
		out = append(out, v.(Outcome))
		return true
	})
	return out
}
