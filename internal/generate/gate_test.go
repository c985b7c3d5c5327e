package generate

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGate_SingleFlight(t *testing.T) {
	gate := NewGate()

	assert.True(t, gate.TryAcquire("s1"))
	assert.False(t, gate.TryAcquire("s1"), "second acquire for the same session must fail")
	assert.True(t, gate.TryAcquire("s2"), "other sessions are independent")

	gate.Release("s1", "")
	assert.True(t, gate.TryAcquire("s1"))
}

func TestGate_StatusTracksError(t *testing.T) {
	gate := NewGate()

	gate.TryAcquire("s1")

	generating, lastErr := gate.Status("s1")
	assert.True(t, generating)
	assert.Empty(t, lastErr)

	gate.Release("s1", "Erro: falha upstream")

	generating, lastErr = gate.Status("s1")
	assert.False(t, generating)
	assert.Equal(t, "Erro: falha upstream", lastErr)

	// a fresh acquire clears the recorded failure
	gate.TryAcquire("s1")
	_, lastErr = gate.Status("s1")
	assert.Empty(t, lastErr)
}

func TestGate_SuccessfulReleaseKeepsNoError(t *testing.T) {
	gate := NewGate()

	gate.TryAcquire("s1")
	gate.Release("s1", "")

	generating, lastErr := gate.Status("s1")
	assert.False(t, generating)
	assert.Empty(t, lastErr)
}

func TestGate_CleanReleaseDropsErrorEntry(t *testing.T) {
	gate := NewGate()

	gate.TryAcquire("198.51.100.7")
	gate.Release("198.51.100.7", "Erro: falha upstream")

	// a later clean cycle must not leave the stale failure behind
	gate.TryAcquire("198.51.100.7")
	gate.Release("198.51.100.7", "")

	_, lastErr := gate.Status("198.51.100.7")
	assert.Empty(t, lastErr)
	assert.Empty(t, gate.lastErr, "anonymous session keys must not accumulate")
}

func TestGate_ConcurrentAcquire(t *testing.T) {
	gate := NewGate()

	var wg sync.WaitGroup
	var wins atomic.Int32

	for range 50 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if gate.TryAcquire("s1") {
				wins.Add(1)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(1), wins.Load(), "exactly one goroutine may hold the gate")
}
