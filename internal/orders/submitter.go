package orders

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fst-serve/serve-backend/internal/wizard"
	"github.com/fst-serve/serve-backend/pkg/logger"
	"github.com/fst-serve/serve-backend/pkg/whatsapp"
)

const forwardTimeout = 30 * time.Second

// Forwarder relays the recording payload to the external collaborator.
type Forwarder interface {
	ForwardOrder(ctx context.Context, payload any) error
}

// Receipt is what the caller gets back at submit time. The WhatsApp
// link is always present; the recording call runs detached.
type Receipt struct {
	Request      Request `json:"request"`
	Summary      string  `json:"summary"`
	WhatsAppLink string  `json:"whatsapp_link"`
}

// Submitter turns a frozen session into a Receipt and fires the
// best-effort recording call in the background.
type Submitter struct {
	forwarder Forwarder
	links     *whatsapp.LinkBuilder
	logg      *logger.Logger
	now       func() time.Time
	inflight  sync.WaitGroup
}

// SubmitterOption tweaks construction, mainly for tests.
type SubmitterOption func(*Submitter)

// WithSubmitClock swaps the time source.
func WithSubmitClock(now func() time.Time) SubmitterOption {
	return func(s *Submitter) { s.now = now }
}

// NewSubmitter builds a submitter backed by the provided stack.
func NewSubmitter(forwarder Forwarder, links *whatsapp.LinkBuilder, logg *logger.Logger, opts ...SubmitterOption) (*Submitter, error) {
	if forwarder == nil {
		return nil, fmt.Errorf("order forwarder required")
	}
	if links == nil {
		return nil, fmt.Errorf("whatsapp link builder required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	sub := &Submitter{
		forwarder: forwarder,
		links:     links,
		logg:      logg,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(sub)
	}
	return sub, nil
}

// Submit assembles the artifacts and detaches the recording call. A
// recording failure is logged once, never retried, and never blocks
// the hand-off link.
func (s *Submitter) Submit(ctx context.Context, sess *wizard.Session) Receipt {
	req := BuildRequest(sess, s.now())
	summary := Summary(sess)

	logCtx := s.logg.WithSessionID(context.Background(), sess.ID)
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		fwdCtx, cancel := context.WithTimeout(context.Background(), forwardTimeout)
		defer cancel()
		if err := s.forwarder.ForwardOrder(fwdCtx, req); err != nil {
			s.logg.Error(logCtx, "forwarding order to the recording service failed", err)
			return
		}
		s.logg.Info(logCtx, "order forwarded to the recording service")
	}()

	return Receipt{
		Request:      req,
		Summary:      summary,
		WhatsAppLink: s.links.DeepLink(summary),
	}
}

// Wait blocks until detached recording calls finish, used on shutdown.
func (s *Submitter) Wait() {
	s.inflight.Wait()
}
