package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func WithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(ch)
		select {
		case <-ctx.Done():
			return
		case <-ch:
			cancel()
		}
	}()

	return ctx, cancel
}

// Graceful runs graceful and waits up to timeout for it to return. When the
// deadline passes first, force is called and Graceful reports false.
func Graceful(timeout time.Duration, graceful func(), force func()) bool {
	stopCtx, stopCancel := context.WithTimeout(context.Background(), timeout)
	defer stopCancel()

	stopped := make(chan struct{})
	go func() {
		graceful()
		close(stopped)
	}()

	select {
	case <-stopCtx.Done():
		force()
		<-stopped
		return false
	case <-stopped:
		return true
	}
}
