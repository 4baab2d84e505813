package closer

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type closeFn func(ctx context.Context) error

type namedCloser struct {
	name string
	fn   closeFn
}

var (
	mu      sync.Mutex
	closers []namedCloser
	log     = zap.NewNop()
)

// SetLogger replaces the logger used while closing resources.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l != nil {
		log = l
	}
}

// AddNamed registers a shutdown hook. Hooks run in reverse registration
// order, mirroring defer semantics.
func AddNamed(name string, fn closeFn) {
	mu.Lock()
	defer mu.Unlock()
	closers = append(closers, namedCloser{name: name, fn: fn})
}

// CloseAll runs every registered hook and returns the first error seen.
// All hooks run even when earlier ones fail.
func CloseAll(ctx context.Context) error {
	mu.Lock()
	cs := make([]namedCloser, len(closers))
	copy(cs, closers)
	closers = nil
	mu.Unlock()

	var firstErr error
	for i := len(cs) - 1; i >= 0; i-- {
		c := cs[i]
		log.Info("closing resource", zap.String("name", c.name))
		if err := c.fn(ctx); err != nil {
			log.Error("failed to close resource",
				zap.String("name", c.name),
				zap.Error(err),
			)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
