package geo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fst-serve/serve-backend/pkg/types"
)

func TestSubscriptionStopIsIdempotent(t *testing.T) {
	stops := 0
	sub, push := NewSubscription(1, func() { stops++ })

	sub.Stop()
	sub.Stop()

	if stops != 1 {
		t.Fatalf("expected onStop once, got %d", stops)
	}
	if push(types.LatLng{Lat: 1, Lng: 2}) {
		t.Fatal("push after stop should report false")
	}
	if _, open := <-sub.Positions(); open {
		t.Fatal("positions channel should be closed after stop")
	}
}

func TestSubscriptionDropsWhenFull(t *testing.T) {
	sub, push := NewSubscription(1, nil)
	defer sub.Stop()

	if !push(types.LatLng{Lat: 1}) {
		t.Fatal("first push should land")
	}
	if push(types.LatLng{Lat: 2}) {
		t.Fatal("push into a full buffer should drop")
	}

	got := <-sub.Positions()
	if got.Lat != 1 {
		t.Fatalf("expected buffered position, got %+v", got)
	}
}

func TestDeviceFeedDeliversOneShotFix(t *testing.T) {
	feed := NewDeviceFeed()
	want := types.LatLng{Lat: 33.5731, Lng: -7.5898}

	go feed.ReportFix(want)

	got, err := feed.CurrentPosition(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestDeviceFeedFixErrorSettlesOnce(t *testing.T) {
	feed := NewDeviceFeed()

	go feed.ReportFixError(nil)

	_, err := feed.CurrentPosition(context.Background())
	if !errors.Is(err, ErrFixFailed) {
		t.Fatalf("expected ErrFixFailed, got %v", err)
	}

	// A late error after settling must not block or re-settle.
	feed.ReportFixError(errors.New("late"))
}

func TestDeviceFeedCurrentPositionHonorsContext(t *testing.T) {
	feed := NewDeviceFeed()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := feed.CurrentPosition(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}

func TestDeviceFeedWatchStreamsUpdates(t *testing.T) {
	feed := NewDeviceFeed()

	sub, err := feed.Watch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	feed.ReportUpdate(types.LatLng{Lat: 33.59, Lng: -7.61})

	select {
	case got := <-sub.Positions():
		if got.Lat != 33.59 || got.Lng != -7.61 {
			t.Fatalf("unexpected position %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("expected a streamed update")
	}

	sub.Stop()
	// Fan-out after stop must skip the dead slot without panicking.
	feed.ReportUpdate(types.LatLng{Lat: 1, Lng: 1})
}

func TestDeviceFeedLateFixFoldsIntoStream(t *testing.T) {
	feed := NewDeviceFeed()
	go feed.ReportFix(types.LatLng{Lat: 1, Lng: 1})
	if _, err := feed.CurrentPosition(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sub, err := feed.Watch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer sub.Stop()

	feed.ReportFix(types.LatLng{Lat: 2, Lng: 2})

	select {
	case got := <-sub.Positions():
		if got.Lat != 2 {
			t.Fatalf("unexpected position %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("late fix should arrive on the watch stream")
	}
}
