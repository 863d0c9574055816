package feed

import (
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jmcandrew/stevedore/pkg/lifecycle"
)

const (
	// DefaultInterval matches the simulated platform's activity rate.
	DefaultInterval = 3500 * time.Millisecond
	// DefaultCapacity bounds the ring; only the most recent entries are kept.
	DefaultCapacity = 50
)

// Options configures the feed simulator.
type Options struct {
	Interval time.Duration
	Capacity int
}

// System defines the public contract for the audit feed.
type System interface {
	Handler() *Handler
	Start(lc *lifecycle.Coordinator)
	Publish(entry Entry)
	Snapshot(query, sortKey string, desc bool) []Entry
}

// feed holds the live ring. The producer goroutine generates entries
// and hands them over a channel; the owner goroutine is the only writer
// of the ring, so readers only ever contend with one mutator.
type feed struct {
	mu       sync.RWMutex
	entries  []Entry
	capacity int

	interval time.Duration
	gen      *Generator
	incoming chan Entry
	logger   *slog.Logger
}

// New creates the audit feed pre-populated with seed entries.
func New(opts Options, logger *slog.Logger) System {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultCapacity
	}

	f := &feed{
		capacity: opts.Capacity,
		interval: opts.Interval,
		gen:      NewGenerator(nil, 0, time.Now),
		incoming: make(chan Entry, 16),
		logger:   logger.With("system", "feed"),
	}
	f.entries = clampTo(SeedEntries(time.Now()), opts.Capacity)
	return f
}

func (f *feed) Handler() *Handler {
	return NewHandler(f, f.logger)
}

// Start registers the producer and consumer goroutines with the
// lifecycle coordinator. Both exit when the coordinator context is
// cancelled.
func (f *feed) Start(lc *lifecycle.Coordinator) {
	ctx := lc.Context()

	lc.OnShutdown(func() {
		ticker := time.NewTicker(f.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				select {
				case f.incoming <- f.gen.Next():
				case <-ctx.Done():
					return
				}
			}
		}
	})

	lc.OnShutdown(func() {
		for {
			select {
			case <-ctx.Done():
				return
			case entry := <-f.incoming:
				f.Publish(entry)
			}
		}
	})

	f.logger.Info("audit feed started", "interval", f.interval, "capacity", f.capacity)
}

// Publish prepends an entry, dropping the oldest past capacity.
func (f *feed) Publish(entry Entry) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries := make([]Entry, 0, min(len(f.entries)+1, f.capacity))
	entries = append(entries, entry)
	entries = append(entries, f.entries...)
	f.entries = clampTo(entries, f.capacity)
}

// Snapshot returns a filtered, sorted copy of the ring. The query is a
// case-insensitive substring match over details, document id, and user.
// An empty sortKey preserves feed order, newest first.
func (f *feed) Snapshot(query, sortKey string, desc bool) []Entry {
	f.mu.RLock()
	out := make([]Entry, len(f.entries))
	copy(out, f.entries)
	f.mu.RUnlock()

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		out = slices.DeleteFunc(out, func(e Entry) bool {
			return !strings.Contains(strings.ToLower(e.Details), q) &&
				!strings.Contains(strings.ToLower(e.DocumentID), q) &&
				!strings.Contains(strings.ToLower(e.User), q)
		})
	}

	if cmp := compareBy(sortKey); cmp != nil {
		slices.SortStableFunc(out, cmp)
		if desc {
			slices.Reverse(out)
		}
	}

	return out
}

func compareBy(sortKey string) func(a, b Entry) int {
	switch sortKey {
	case "timestamp":
		return func(a, b Entry) int { return a.Timestamp.Compare(b.Timestamp) }
	case "type":
		return func(a, b Entry) int { return strings.Compare(string(a.Type), string(b.Type)) }
	case "action":
		return func(a, b Entry) int { return strings.Compare(a.Action, b.Action) }
	case "document_id":
		return func(a, b Entry) int { return strings.Compare(a.DocumentID, b.DocumentID) }
	case "user":
		return func(a, b Entry) int { return strings.Compare(a.User, b.User) }
	case "id":
		return func(a, b Entry) int { return strings.Compare(a.ID, b.ID) }
	default:
		return nil
	}
}

func clampTo(entries []Entry, capacity int) []Entry {
	if len(entries) > capacity {
		return entries[:capacity]
	}
	return entries
}
