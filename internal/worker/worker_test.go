package worker

import (
	"bytes"
	"encoding/json"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	p := NewPool(3, 10, zerolog.Nop())
	var mu sync.Mutex
	count := 0
	for i := 0; i < 5; i++ {
		require.True(t, p.TrySubmit(func() {
			mu.Lock()
			count++
			mu.Unlock()
		}))
	}
	p.Stop()
	require.Equal(t, 5, count)
}

func TestPoolFullQueue(t *testing.T) {
	p := NewPool(1, 0, zerolog.Nop())
	block := make(chan struct{})
	started := make(chan struct{})

	// 無緩衝佇列需等 worker 就緒才能送出
	for !p.TrySubmit(func() { close(started); <-block }) {
	}
	<-started
	require.False(t, p.TrySubmit(func() {}))

	close(block)
	p.Stop()
}

func TestPoolStop(t *testing.T) {
	p := NewPool(0, -1, zerolog.Nop())
	p.Stop()
	p.Stop()
	require.False(t, p.TrySubmit(func() {}))
}

func TestPoolRecoversPanic(t *testing.T) {
	var buf bytes.Buffer
	p := NewPool(1, 2, zerolog.New(&buf))
	done := make(chan struct{})
	require.True(t, p.TrySubmit(func() { panic("boom") }))
	require.True(t, p.TrySubmit(func() { close(done) }))
	<-done
	p.Stop()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "error", entry["level"])
	require.Equal(t, "worker task panicked", entry["message"])
	require.Equal(t, "boom", entry["panic"])
	require.NotEmpty(t, entry["stack"])
}
