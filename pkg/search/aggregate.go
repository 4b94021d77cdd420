package search

import (
	"fmt"
	"sync"

	"github.com/matzehuels/scoopfind/pkg/errors"
)

// aggregate collects worker results under a single lock.
// Once poisoned it rejects all further use.
type aggregate[T any] struct {
	mu    sync.Mutex
	items []T
	cause error
}

func (a *aggregate[T]) add(item T) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cause != nil {
		return a.poisonedErr()
	}
	a.items = append(a.items, item)
	return nil
}

// poison marks the aggregate unusable. The first cause is kept.
func (a *aggregate[T]) poison(cause error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cause == nil {
		a.cause = cause
	}
}

// results returns the collected items, or the poisoning error.
func (a *aggregate[T]) results() ([]T, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cause != nil {
		return nil, a.poisonedErr()
	}
	return a.items, nil
}

// failure picks the error a coordinator reports after its workers joined:
// the cause that poisoned the aggregate, falling back to err.
func (a *aggregate[T]) failure(err error) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cause != nil {
		return a.cause
	}
	return err
}

func (a *aggregate[T]) poisonedErr() error {
	return errors.Wrap(errors.ErrCodePoisoned, a.cause, "result aggregate unusable after worker failure")
}

// worker adapts fn into an errgroup task. fn reports whether it produced
// an item worth publishing. Errors and panics poison the aggregate.
func (a *aggregate[T]) worker(fn func() (T, bool, error)) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("search worker panicked: %v", r)
			}
			if err != nil {
				a.poison(err)
			}
		}()

		item, ok, err := fn()
		if err != nil || !ok {
			return err
		}
		return a.add(item)
	}
}
