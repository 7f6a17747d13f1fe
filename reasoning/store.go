// Package reasoning caches thinking signatures by tool call ID so that a
// signature produced while answering one request can be replayed on a later,
// independent request that continues the same tool call.
//
// A Store is created once by the program that composes the request pipeline
// and shared with every call site:
//
//	store := reasoning.NewStore()
//	store.Put("tool_123", "Let me think about this...", "sig_abc")
//	sig, ok := store.Signature("tool_123")
//
// The store is a best-effort side channel. No operation returns an error:
// writes that cannot be applied are dropped and failed reads report the
// signature as absent, so callers need a fallback for the absent case.
package reasoning

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tailored-agentic-units/reasoning/observability"
)

// Store maps tool call IDs to Records. Every operation holds a single mutex
// for one map access. The zero value is an empty store that discards events;
// a nil *Store behaves as a store that is always empty.
type Store struct {
	records  map[string]Record
	poisoned bool
	observer observability.Observer
	mu       sync.Mutex
}

// NewStore creates an empty Store. Events are discarded unless an observer
// is supplied with WithObserver.
func NewStore(opts ...Option) *Store {
	o := options{observer: observability.NoOpObserver{}}
	for _, opt := range opts {
		opt(&o)
	}
	return newStore(o.observer)
}

func newStore(observer observability.Observer) *Store {
	if observer == nil {
		observer = observability.NoOpObserver{}
	}
	return &Store{
		records:  make(map[string]Record),
		observer: observer,
	}
}

// Put stores the signature and thinking content for id, replacing any
// existing record. Put is a no-op when the store is unavailable.
func (s *Store) Put(id, content, signature string) {
	if s == nil {
		return
	}

	err := s.withLock(func(records map[string]Record) {
		records[id] = NewRecord(signature, content)
	})
	if err != nil {
		s.unavailable("put", err)
		return
	}

	s.emit(EventPut, observability.LevelVerbose, map[string]any{
		"id":               id,
		"signature_length": len(signature),
		"content_length":   len(content),
	})
}

// Signature returns the signature stored for id. The boolean is false when
// nothing is stored under id and also when the store is unavailable; the two
// cases are deliberately indistinguishable.
func (s *Store) Signature(id string) (string, bool) {
	if s == nil {
		return "", false
	}

	var (
		record Record
		found  bool
	)
	err := s.withLock(func(records map[string]Record) {
		record, found = records[id]
	})
	if err != nil {
		s.unavailable("signature", err)
		return "", false
	}

	if !found {
		s.emit(EventMiss, observability.LevelVerbose, map[string]any{"id": id})
		return "", false
	}

	s.emit(EventHit, observability.LevelVerbose, map[string]any{"id": id})
	return record.Signature(), true
}

// Clear removes every record. The store itself stays usable. Clear is a
// no-op when the store is unavailable.
func (s *Store) Clear() {
	if s == nil {
		return
	}

	var removed int
	err := s.withLock(func(records map[string]Record) {
		removed = len(records)
		clear(records)
	})
	if err != nil {
		s.unavailable("clear", err)
		return
	}

	s.emit(EventClear, observability.LevelInfo, map[string]any{"removed": removed})
}

// Len returns the number of stored records, or 0 when the store is
// unavailable.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}

	var n int
	if err := s.withLock(func(records map[string]Record) {
		n = len(records)
	}); err != nil {
		s.unavailable("len", err)
		return 0
	}
	return n
}

// withLock runs fn with exclusive access to the records. A panic inside fn
// is recovered and poisons the store: this and every later call return an
// error wrapping ErrUnavailable without running fn.
func (s *Store) withLock(fn func(records map[string]Record)) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.poisoned {
		return ErrUnavailable
	}
	if s.records == nil {
		s.records = make(map[string]Record)
	}

	defer func() {
		if r := recover(); r != nil {
			s.poisoned = true
			err = fmt.Errorf("%w: %v", errPoisoned, r)
		}
	}()

	fn(s.records)
	return nil
}

func (s *Store) unavailable(op string, err error) {
	eventType, level := EventUnavailable, observability.LevelWarning
	if errors.Is(err, errPoisoned) {
		eventType, level = EventPoisoned, observability.LevelError
	}

	s.emit(eventType, level, map[string]any{
		"operation": op,
		"error":     err.Error(),
	})
}

// emit runs outside the lock so observers may block or log freely. A
// panicking observer loses its event; the store operation still completes.
func (s *Store) emit(eventType observability.EventType, level observability.Level, data map[string]any) {
	observer := s.observer
	if observer == nil {
		return
	}

	defer func() { _ = recover() }()

	observer.OnEvent(context.Background(), observability.Event{
		Type:      eventType,
		Level:     level,
		Timestamp: time.Now(),
		Source:    eventSource,
		Data:      data,
	})
}
