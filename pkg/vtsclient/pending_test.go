package vtsclient

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitResult(t *testing.T, e *pendingEntry) pendingResult {
	t.Helper()
	select {
	case res := <-e.done:
		return res
	case <-time.After(2 * time.Second):
		t.Fatalf("pending entry %s never completed", e.id)
		return pendingResult{}
	}
}

func TestPendingResolveMatchesCorrectEntry(t *testing.T) {
	p := newPendingRequests(zerolog.Nop())

	const n = 10
	entries := make([]*pendingEntry, n)
	for i := range entries {
		e, err := p.register(time.Minute)
		require.NoError(t, err)
		entries[i] = e
	}
	require.Equal(t, n, p.len())

	// ответы приходят в обратном порядке — каждый находит своего
	for i := n - 1; i >= 0; i-- {
		p.resolve(entries[i].id, &Envelope{RequestID: entries[i].id, MessageType: fmt.Sprintf("Resp%d", i)})
	}
	for i, e := range entries {
		res := waitResult(t, e)
		require.NoError(t, res.err)
		assert.Equal(t, fmt.Sprintf("Resp%d", i), res.env.MessageType)
	}
	assert.Equal(t, 0, p.len())
}

func TestPendingTimeout(t *testing.T) {
	p := newPendingRequests(zerolog.Nop())

	e, err := p.register(30 * time.Millisecond)
	require.NoError(t, err)

	res := waitResult(t, e)
	assert.ErrorIs(t, res.err, ErrRequestTimeout)
	assert.Equal(t, 0, p.len())

	// опоздавший ответ отбрасывается без эффекта
	p.resolve(e.id, &Envelope{RequestID: e.id})
	select {
	case <-e.done:
		t.Fatal("entry completed twice")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPendingRejectUnknownIDIsNoop(t *testing.T) {
	p := newPendingRequests(zerolog.Nop())
	p.resolve("no-such-id", &Envelope{RequestID: "no-such-id"})
	p.reject("no-such-id", ErrRequestTimeout)
	assert.Equal(t, 0, p.len())
}

func TestPendingFailAll(t *testing.T) {
	p := newPendingRequests(zerolog.Nop())

	var entries []*pendingEntry
	for i := 0; i < 5; i++ {
		e, err := p.register(time.Minute)
		require.NoError(t, err)
		entries = append(entries, e)
	}

	p.failAll(ErrConnectionClosed)
	for _, e := range entries {
		res := waitResult(t, e)
		assert.ErrorIs(t, res.err, ErrConnectionClosed)
	}
	assert.Equal(t, 0, p.len())
}

func TestPendingConcurrentResolveAndTimeout(t *testing.T) {
	p := newPendingRequests(zerolog.Nop())

	// регистрация, таймаут и резолв гоняются из разных горутин:
	// каждая запись завершается ровно одним исходом
	const n = 64
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			timeout := time.Minute
			if i%2 == 1 {
				timeout = time.Millisecond
			}
			e, err := p.register(timeout)
			if !assert.NoError(t, err) {
				return
			}
			if i%2 == 0 {
				p.resolve(e.id, &Envelope{RequestID: e.id})
			}
			res := <-e.done
			if i%2 == 0 {
				assert.NoError(t, res.err)
			} else {
				assert.ErrorIs(t, res.err, ErrRequestTimeout)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 0, p.len())
}

func TestPendingIDsUniqueWhilePending(t *testing.T) {
	p := newPendingRequests(zerolog.Nop())
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		e, err := p.register(time.Minute)
		require.NoError(t, err)
		require.False(t, seen[e.id], "duplicate id %s", e.id)
		seen[e.id] = true
	}
}
