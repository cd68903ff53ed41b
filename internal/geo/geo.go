// Package geo defines the device-location contracts the booking flow
// consumes. The real sensor lives on the client; the server sees it as
// a Locator feeding a one-shot fix and a continuous position stream.
package geo

import (
	"context"
	"sync"

	"github.com/fst-serve/serve-backend/pkg/types"
)

// Locator is the geolocation collaborator: a one-shot high-confidence
// fix plus a continuous position stream.
type Locator interface {
	// CurrentPosition blocks until a fix arrives or ctx is done.
	CurrentPosition(ctx context.Context) (types.LatLng, error)
	// Watch starts a continuous stream. The caller owns the returned
	// subscription and must Stop it when the location step unmounts.
	Watch(ctx context.Context) (*Subscription, error)
}

// Subscription is a cancellable handle on a continuous position
// stream. Stop is idempotent and closes the Positions channel.
type Subscription struct {
	positions chan types.LatLng
	stop      func()
	once      sync.Once
}

// NewSubscription builds a subscription whose lifecycle is managed by
// the producer through the returned push function.
func NewSubscription(buffer int, onStop func()) (*Subscription, func(types.LatLng) bool) {
	sub := &Subscription{
		positions: make(chan types.LatLng, buffer),
	}
	var mu sync.Mutex
	stopped := false

	sub.stop = func() {
		mu.Lock()
		stopped = true
		close(sub.positions)
		mu.Unlock()
		if onStop != nil {
			onStop()
		}
	}

	push := func(pos types.LatLng) bool {
		mu.Lock()
		defer mu.Unlock()
		if stopped {
			return false
		}
		select {
		case sub.positions <- pos:
			return true
		default:
			// Drop rather than block the producer; the stream is a
			// live marker feed, stale points have no value.
			return false
		}
	}

	return sub, push
}

// Positions returns the stream channel. It is closed by Stop.
func (s *Subscription) Positions() <-chan types.LatLng {
	return s.positions
}

// Stop tears the subscription down. Safe to call more than once.
func (s *Subscription) Stop() {
	s.once.Do(s.stop)
}
