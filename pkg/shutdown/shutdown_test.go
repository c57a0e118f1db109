package shutdown

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGraceful(t *testing.T) {
	t.Run("finishes in time", func(t *testing.T) {
		var forced atomic.Bool
		ok := Graceful(time.Second, func() {}, func() { forced.Store(true) })
		assert.True(t, ok)
		assert.False(t, forced.Load())
	})

	t.Run("forced after deadline", func(t *testing.T) {
		release := make(chan struct{})
		var forced atomic.Bool
		ok := Graceful(10*time.Millisecond, func() { <-release }, func() {
			forced.Store(true)
			close(release)
		})
		assert.False(t, ok)
		assert.True(t, forced.Load())
	})
}

func TestWithSignalsParentCancel(t *testing.T) {
	parent, cancelParent := context.WithCancel(context.Background())
	ctx, cancel := WithSignals(parent)
	defer cancel()

	cancelParent()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not cancelled with parent")
	}
}
