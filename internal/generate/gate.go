package generate

import "sync"

// Gate enforces at most one in-flight generation per session key.
// Not reentrant: a second acquire for the same key fails until the
// first holder releases.
type Gate struct {
	mu       sync.Mutex
	inFlight map[string]bool
	lastErr  map[string]string
}

func NewGate() *Gate {
	return &Gate{
		inFlight: make(map[string]bool),
		lastErr:  make(map[string]string),
	}
}

// TryAcquire marks key as generating. Returns false if a generation is
// already in flight for key. A successful acquire clears the key's last
// recorded error.
func (g *Gate) TryAcquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.inFlight[key] {
		return false
	}

	g.inFlight[key] = true
	delete(g.lastErr, key)

	return true
}

// Release clears the in-flight mark for key, recording message as the
// session's last error when non-empty. A clean release drops the key's
// error entry so anonymous session keys do not accumulate. Release must
// run on every exit path of a generation, success or failure.
func (g *Gate) Release(key string, message string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.inFlight, key)

	if message == "" {
		delete(g.lastErr, key)
		return
	}

	g.lastErr[key] = message
}

// Status reports whether key has an in-flight generation and its last
// recorded error message, if any.
func (g *Gate) Status(key string) (generating bool, lastError string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.inFlight[key], g.lastErr[key]
}
