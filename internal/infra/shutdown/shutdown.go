// Package shutdown coordinates orderly termination for seeksim.
package shutdown

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Hook is a cleanup function run during shutdown. The context carries the
// grace deadline.
type Hook func(context.Context) error

// Notifier waits for a termination signal and then runs registered hooks
// under a grace deadline.
type Notifier struct {
	grace time.Duration

	mu    sync.Mutex
	hooks []Hook

	done chan struct{}
}

// New creates a Notifier with the given grace period for hooks.
func New(grace time.Duration) *Notifier {
	return &Notifier{
		grace: grace,
		done:  make(chan struct{}),
	}
}

// Register adds a hook. Hooks run in reverse registration order.
func (n *Notifier) Register(hook Hook) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.hooks = append(n.hooks, hook)
}

// Wait blocks until SIGINT or SIGTERM arrives, then runs the hooks and
// returns their errors joined. The Done channel closes once every hook has
// finished.
func (n *Notifier) Wait() error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)
	<-sig

	ctx, cancel := context.WithTimeout(context.Background(), n.grace)
	defer cancel()

	n.mu.Lock()
	hooks := make([]Hook, len(n.hooks))
	copy(hooks, n.hooks)
	n.mu.Unlock()

	var errs []error
	for i := len(hooks) - 1; i >= 0; i-- {
		if err := hooks[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}

	close(n.done)
	return errors.Join(errs...)
}

// Done reports completion of a Wait cycle.
func (n *Notifier) Done() <-chan struct{} {
	return n.done
}
