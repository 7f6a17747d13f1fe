package reasoning

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/tailored-agentic-units/reasoning/observability"
)

type recordingObserver struct {
	mu    sync.Mutex
	types []observability.EventType
}

func (r *recordingObserver) OnEvent(_ context.Context, event observability.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types = append(r.types, event.Type)
}

func poison(t *testing.T, s *Store) {
	t.Helper()

	err := s.withLock(func(map[string]Record) {
		panic("boom")
	})
	if !errors.Is(err, ErrUnavailable) || !errors.Is(err, errPoisoned) {
		t.Fatalf("withLock after panic = %v, want errPoisoned wrapping ErrUnavailable", err)
	}
}

func TestStore_Poisoned_SignatureAbsent(t *testing.T) {
	s := NewStore()
	s.Put("tool_123", "Let me think about this...", "sig_abc")

	poison(t, s)

	if sig, ok := s.Signature("tool_123"); ok {
		t.Errorf("poisoned store returned %q, want absent", sig)
	}
	if s.Len() != 0 {
		t.Errorf("poisoned store Len() = %d, want 0", s.Len())
	}
}

func TestStore_Poisoned_WritesDropped(t *testing.T) {
	s := NewStore()
	s.Put("tool_1", "a", "sig_1")

	poison(t, s)

	s.Put("tool_2", "b", "sig_2")
	s.Clear()

	if !s.poisoned {
		t.Fatal("store should stay poisoned")
	}
	if len(s.records) != 1 {
		t.Errorf("got %d records, want 1 (Put and Clear must be no-ops)", len(s.records))
	}
	if _, ok := s.records["tool_2"]; ok {
		t.Error("Put on a poisoned store was applied")
	}
}

func TestStore_Poisoned_LockReleased(t *testing.T) {
	s := NewStore()
	poison(t, s)

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Put("tool_1", "a", "sig_1")
		s.Signature("tool_1")
		s.Clear()
	}()
	<-done

	if err := s.withLock(func(map[string]Record) {}); err != ErrUnavailable {
		t.Errorf("withLock on poisoned store = %v, want ErrUnavailable", err)
	}
}

func TestStore_Poisoned_Events(t *testing.T) {
	obs := &recordingObserver{}
	s := NewStore(WithObserver(obs))

	err := s.withLock(func(map[string]Record) { panic("boom") })
	s.unavailable("test", err)
	s.Signature("tool_1")

	want := []observability.EventType{EventPoisoned, EventUnavailable}
	if len(obs.types) != len(want) {
		t.Fatalf("got events %v, want %v", obs.types, want)
	}
	for i := range want {
		if obs.types[i] != want[i] {
			t.Errorf("event %d: got %q, want %q", i, obs.types[i], want[i])
		}
	}
}

func TestStore_ZeroValue_Poisoned(t *testing.T) {
	var s Store
	poison(t, &s)

	s.Put("tool_1", "a", "sig_1")
	if _, ok := s.Signature("tool_1"); ok {
		t.Error("poisoned zero-value store returned a signature")
	}
	if err := s.withLock(func(map[string]Record) {}); errors.Is(err, errPoisoned) || !errors.Is(err, ErrUnavailable) {
		t.Errorf("withLock on poisoned store = %v, want bare ErrUnavailable", err)
	}
}
