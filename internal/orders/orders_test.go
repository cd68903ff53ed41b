package orders

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fst-serve/serve-backend/internal/wizard"
	"github.com/fst-serve/serve-backend/pkg/enums"
	"github.com/fst-serve/serve-backend/pkg/logger"
	"github.com/fst-serve/serve-backend/pkg/types"
	"github.com/fst-serve/serve-backend/pkg/whatsapp"
	"github.com/rs/zerolog"
)

func submittableSession(t *testing.T) *wizard.Session {
	t.Helper()
	sess := wizard.NewSession("sess-1", time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC))
	pin := types.LatLng{Lat: 33.59, Lng: -7.61}
	sess.Location.Coordinates = &pin
	sess.Location.AcquisitionMode = enums.AcquisitionModeMap
	sess.Location.Notes = "gate code 4521"
	capacity := 82.0
	sess.Vehicle = wizard.VehicleSelection{Brand: "Tesla", Model: "Model 3", CapacityKwh: &capacity}
	sess.Energy = wizard.EnergyRequest{Mode: enums.EnergyModePercent, Value: 50}
	sess.Schedule = wizard.Schedule{Date: "Tomorrow", Time: "01:00 PM"}
	sess.GeneralNotes = "call on arrival"
	sess.Reason = "Low battery at work"
	sess.Step = wizard.StepReview
	return sess
}

func TestBuildRequest(t *testing.T) {
	sess := submittableSession(t)
	now := time.Date(2026, 8, 29, 12, 30, 0, 0, time.UTC)

	req := BuildRequest(sess, now)

	if req.Timestamp != "2026-08-29T12:30:00Z" {
		t.Fatalf("unexpected timestamp %q", req.Timestamp)
	}
	if req.LocationCoordinates == nil || req.LocationCoordinates.Lat != 33.59 {
		t.Fatalf("unexpected coordinates %+v", req.LocationCoordinates)
	}
	if req.Vehicle != "Tesla Model 3 (82 kWh)" {
		t.Fatalf("unexpected vehicle %q", req.Vehicle)
	}
	if req.EnergyRequested != "50% (41 kWh)" {
		t.Fatalf("unexpected energy %q", req.EnergyRequested)
	}
	if req.EstimatedPrice != 205 {
		t.Fatalf("unexpected price %d", req.EstimatedPrice)
	}
	if req.ScheduledTime != "Tomorrow @ 01:00 PM" {
		t.Fatalf("unexpected schedule %q", req.ScheduledTime)
	}
	if req.LocationNotes != "gate code 4521" || req.GeneralNotes != "call on arrival" || req.Reason != "Low battery at work" {
		t.Fatalf("unexpected free-text fields %+v", req)
	}
}

func TestSummaryRendersDispatchMessage(t *testing.T) {
	sess := submittableSession(t)

	summary := Summary(sess)

	if !strings.HasPrefix(summary, "New FST Charge Request ⚡") {
		t.Fatalf("unexpected summary prefix: %q", summary)
	}
	for _, want := range []string{
		"📍 Location: Pinned Location https://www.google.com/maps?q=33.59,-7.61",
		"📝 Loc Notes: gate code 4521",
		"🚗 Vehicle: Tesla Model 3 (82 kWh)",
		"🔋 Energy: 50% (41 kWh)",
		"💰 Est. Price: 205 DH + delivery fees",
		"📅 Time: Tomorrow @ 01:00 PM",
		"📝 Notes: call on arrival",
		"❓ Reason: Low battery at work",
	} {
		if !strings.Contains(summary, want) {
			t.Fatalf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestSummaryGPSAcquisition(t *testing.T) {
	sess := submittableSession(t)
	sess.Location.AcquisitionMode = enums.AcquisitionModeGPS

	if !strings.Contains(Summary(sess), "📍 Location: GPS Location ") {
		t.Fatal("expected gps wording")
	}
}

func TestSummaryWithoutCoordinates(t *testing.T) {
	sess := submittableSession(t)
	sess.Location.Coordinates = nil

	if !strings.Contains(Summary(sess), "Location not provided") {
		t.Fatal("expected missing-location fallback")
	}
}

type recordingForwarder struct {
	mu       sync.Mutex
	payloads []any
	err      error
	done     chan struct{}
}

func (f *recordingForwarder) ForwardOrder(_ context.Context, payload any) error {
	f.mu.Lock()
	f.payloads = append(f.payloads, payload)
	f.mu.Unlock()
	if f.done != nil {
		close(f.done)
	}
	return f.err
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{Output: io.Discard, Level: zerolog.ErrorLevel})
}

func TestSubmitReturnsReceiptAndForwards(t *testing.T) {
	forwarder := &recordingForwarder{done: make(chan struct{})}
	sub, err := NewSubmitter(forwarder, whatsapp.NewLinkBuilder(""), testLogger(), WithSubmitClock(func() time.Time {
		return time.Date(2026, 8, 29, 12, 30, 0, 0, time.UTC)
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	receipt := sub.Submit(context.Background(), submittableSession(t))

	if !strings.HasPrefix(receipt.WhatsAppLink, "https://wa.me/212666126924?text=") {
		t.Fatalf("unexpected link %q", receipt.WhatsAppLink)
	}
	if receipt.Request.EstimatedPrice != 205 {
		t.Fatalf("unexpected price %d", receipt.Request.EstimatedPrice)
	}

	select {
	case <-forwarder.done:
	case <-time.After(2 * time.Second):
		t.Fatal("expected the detached forward to fire")
	}
	forwarder.mu.Lock()
	defer forwarder.mu.Unlock()
	if len(forwarder.payloads) != 1 {
		t.Fatalf("expected one forward, got %d", len(forwarder.payloads))
	}
	if _, ok := forwarder.payloads[0].(Request); !ok {
		t.Fatalf("unexpected payload type %T", forwarder.payloads[0])
	}
}

func TestSubmitForwardFailureDoesNotBlockHandOff(t *testing.T) {
	forwarder := &recordingForwarder{err: errors.New("webhook down"), done: make(chan struct{})}
	sub, err := NewSubmitter(forwarder, whatsapp.NewLinkBuilder(""), testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	receipt := sub.Submit(context.Background(), submittableSession(t))
	if receipt.WhatsAppLink == "" {
		t.Fatal("hand-off link must be returned regardless of the forward outcome")
	}

	<-forwarder.done
	sub.Wait()
	forwarder.mu.Lock()
	defer forwarder.mu.Unlock()
	if len(forwarder.payloads) != 1 {
		t.Fatalf("a failed forward must not be retried, got %d calls", len(forwarder.payloads))
	}
}
