package insights

import (
	"context"
	"strconv"
	"sync"
	"time"
)

// DismissalNamespace prefixes every dismissal key in the backing store.
const DismissalNamespace = "predictive-insights:dismissed"

// SnoozeDuration is how long a snoozed insight stays suppressed.
const SnoozeDuration = 7 * 24 * time.Hour

// dismissForever is the suppression window written by a hard dismiss;
// effectively infinite for this product's lifetime.
const dismissForever = 100 * 365 * 24 * time.Hour

// KeyValueStore is the persistence the generator is handed for dismissal
// state. The generator never touches ambient storage; callers inject an
// implementation (postgres in the server, in-memory in tests).
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
}

// Dismissals reads and writes insight suppression windows through a
// KeyValueStore, storing the expiry as epoch milliseconds under
// "<namespace>:<insightID>".
type Dismissals struct {
	store KeyValueStore
}

func NewDismissals(store KeyValueStore) *Dismissals {
	return &Dismissals{store: store}
}

func dismissalKey(insightID string) string {
	return DismissalNamespace + ":" + insightID
}

// Suppressed reports whether the insight is inside an unexpired suppression
// window at the given time. Store errors and malformed values read as
// not-suppressed; a lost dismissal resurfaces an insight, which is the safe
// failure direction.
func (d *Dismissals) Suppressed(ctx context.Context, insightID string, now time.Time) bool {
	value, ok, err := d.store.Get(ctx, dismissalKey(insightID))
	if err != nil || !ok {
		return false
	}
	untilMillis, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return false
	}
	return now.UnixMilli() < untilMillis
}

// Snooze suppresses the insight for SnoozeDuration from now.
func (d *Dismissals) Snooze(ctx context.Context, insightID string, now time.Time) error {
	return d.set(ctx, insightID, now.Add(SnoozeDuration))
}

// Dismiss suppresses the insight effectively forever.
func (d *Dismissals) Dismiss(ctx context.Context, insightID string, now time.Time) error {
	return d.set(ctx, insightID, now.Add(dismissForever))
}

func (d *Dismissals) set(ctx context.Context, insightID string, until time.Time) error {
	return d.store.Set(ctx, dismissalKey(insightID), strconv.FormatInt(until.UnixMilli(), 10))
}

// MemoryStore is a process-local KeyValueStore used in tests and as a
// fallback when no database-backed store is wired.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
