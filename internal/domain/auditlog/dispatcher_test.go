package auditlog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu      sync.Mutex
	entries []Entry
	err     error
	block   chan struct{}
	closed  bool
}

func (s *recordingSink) Write(ctx context.Context, e Entry) error {
	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, e)
	return nil
}

func (s *recordingSink) Close(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *recordingSink) snapshot() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.entries...)
}

func TestDispatcher_WritesEntriesAndDrainsOnClose(t *testing.T) {
	sink := &recordingSink{}
	fixed := time.Date(2025, 5, 5, 12, 0, 0, 0, time.FixedZone("COT", -5*3600))
	d := NewDispatcher(sink, Options{QueueSize: 8, Now: func() time.Time { return fixed }})

	d.LogAction("1001", "login", map[string]any{"nombre": "ana"})
	d.LogAction("", "login", nil)

	require.NoError(t, d.Close(context.Background()))

	got := sink.snapshot()
	require.Len(t, got, 2)
	assert.Equal(t, "1001", got[0].User)
	assert.Equal(t, "login", got[0].Action)
	assert.Equal(t, "ana", got[0].Details["nombre"])
	assert.Equal(t, time.UTC, got[0].TS.Location())
	assert.True(t, got[0].TS.Equal(fixed))
	assert.NotEmpty(t, got[0].ID)

	assert.Equal(t, "anon", got[1].User)
	assert.NotNil(t, got[1].Details)
	assert.True(t, sink.closed)
}

func TestDispatcher_SinkErrorsAreSwallowed(t *testing.T) {
	sink := &recordingSink{err: errors.New("mongo down")}
	d := NewDispatcher(sink, Options{})

	assert.NotPanics(t, func() { d.LogAction("1001", "login", nil) })
	require.NoError(t, d.Close(context.Background()))
	assert.Empty(t, sink.snapshot())
}

func TestDispatcher_NeverBlocksWhenQueueIsFull(t *testing.T) {
	sink := &recordingSink{block: make(chan struct{})}
	d := NewDispatcher(sink, Options{QueueSize: 1, WriteTimeout: time.Second})

	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			d.LogAction("1001", "login", nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("LogAction blocked with a full queue")
	}

	close(sink.block)
	require.NoError(t, d.Close(context.Background()))
	assert.LessOrEqual(t, len(sink.snapshot()), 2)
}

func TestDispatcher_AfterCloseDrops(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, Options{})
	require.NoError(t, d.Close(context.Background()))
	require.NoError(t, d.Close(context.Background()))

	assert.NotPanics(t, func() { d.LogAction("1001", "login", nil) })
	assert.Empty(t, sink.snapshot())
}
