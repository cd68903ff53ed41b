package geo

import (
	"context"
	"errors"
	"sync"

	"github.com/fst-serve/serve-backend/pkg/types"
)

// ErrFixFailed is reported when the device denies or fails the
// one-shot geolocation request.
var ErrFixFailed = errors.New("geo: device fix failed")

// DeviceFeed bridges positions reported by the client into the Locator
// contract. One feed serves one wizard session.
type DeviceFeed struct {
	mu       sync.Mutex
	fixCh    chan fixResult
	fixDone  bool
	watchers []func(types.LatLng) bool
}

type fixResult struct {
	pos types.LatLng
	err error
}

// NewDeviceFeed returns an empty feed.
func NewDeviceFeed() *DeviceFeed {
	return &DeviceFeed{
		fixCh: make(chan fixResult, 1),
	}
}

// ReportFix delivers the one-shot fix. Later calls are folded into the
// continuous stream since the one-shot request is already settled.
func (f *DeviceFeed) ReportFix(pos types.LatLng) {
	f.mu.Lock()
	settled := f.fixDone
	if !settled {
		f.fixDone = true
	}
	f.mu.Unlock()

	if settled {
		f.ReportUpdate(pos)
		return
	}
	f.fixCh <- fixResult{pos: pos}
}

// ReportFixError settles the one-shot request with a failure.
func (f *DeviceFeed) ReportFixError(err error) {
	f.mu.Lock()
	settled := f.fixDone
	if !settled {
		f.fixDone = true
	}
	f.mu.Unlock()

	if settled {
		return
	}
	if err == nil {
		err = ErrFixFailed
	}
	f.fixCh <- fixResult{err: err}
}

// ReportUpdate fans a continuous position out to live subscriptions.
func (f *DeviceFeed) ReportUpdate(pos types.LatLng) {
	f.mu.Lock()
	watchers := make([]func(types.LatLng) bool, len(f.watchers))
	copy(watchers, f.watchers)
	f.mu.Unlock()

	for _, push := range watchers {
		if push != nil {
			push(pos)
		}
	}
}

// CurrentPosition implements Locator.
func (f *DeviceFeed) CurrentPosition(ctx context.Context) (types.LatLng, error) {
	select {
	case res := <-f.fixCh:
		return res.pos, res.err
	case <-ctx.Done():
		return types.LatLng{}, ctx.Err()
	}
}

// Watch implements Locator.
func (f *DeviceFeed) Watch(ctx context.Context) (*Subscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var idx int
	sub, push := NewSubscription(8, func() {
		f.mu.Lock()
		if idx < len(f.watchers) {
			f.watchers[idx] = nil
		}
		f.mu.Unlock()
	})

	f.mu.Lock()
	idx = len(f.watchers)
	f.watchers = append(f.watchers, push)
	f.mu.Unlock()

	return sub, nil
}
