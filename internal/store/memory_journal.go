// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-users-registry/models"
)

// DefaultMemoryJournalCapacity bounds the in-memory journal.
const DefaultMemoryJournalCapacity = 1024

// memoryJournal is a bounded, process-local [JournalRepository] used when no
// database is configured. The oldest entries are dropped when it is full.
type memoryJournal struct {
	mu       sync.Mutex
	entries  []models.JournalEntry
	capacity int
	nextID   int64
	now      func() time.Time
}

// NewMemoryJournalRepository returns an in-memory [JournalRepository]
// holding at most capacity entries.
func NewMemoryJournalRepository(capacity int) JournalRepository {
	if capacity <= 0 {
		capacity = DefaultMemoryJournalCapacity
	}
	return &memoryJournal{
		entries:  make([]models.JournalEntry, 0, capacity),
		capacity: capacity,
		now:      time.Now,
	}
}

func (m *memoryJournal) Append(_ context.Context, entries ...models.JournalEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now().UTC()
	for _, e := range entries {
		m.nextID++
		e.ID = m.nextID
		if e.CreatedAt.IsZero() {
			e.CreatedAt = now
		}
		m.entries = append(m.entries, e)
	}

	if over := len(m.entries) - m.capacity; over > 0 {
		m.entries = append(m.entries[:0], m.entries[over:]...)
	}

	return nil
}

func (m *memoryJournal) List(_ context.Context, filter models.JournalFilter) ([]models.JournalEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	limit := journalLimit(filter.Limit)
	out := make([]models.JournalEntry, 0)
	for i := len(m.entries) - 1; i >= 0 && uint64(len(out)) < limit; i-- {
		e := m.entries[i]
		if filter.Operation != "" && e.Operation != filter.Operation {
			continue
		}
		out = append(out, e)
	}

	return out, nil
}

func (m *memoryJournal) Prune(_ context.Context, olderThan time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.entries[:0]
	for _, e := range m.entries {
		if !e.CreatedAt.Before(olderThan) {
			kept = append(kept, e)
		}
	}
	removed := int64(len(m.entries) - len(kept))
	m.entries = kept

	return removed, nil
}
