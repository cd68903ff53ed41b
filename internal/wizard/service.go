package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fst-serve/serve-backend/internal/catalog"
	"github.com/fst-serve/serve-backend/internal/geo"
	"github.com/fst-serve/serve-backend/pkg/config"
	"github.com/fst-serve/serve-backend/pkg/enums"
	pkgerrors "github.com/fst-serve/serve-backend/pkg/errors"
	"github.com/fst-serve/serve-backend/pkg/logger"
	"github.com/fst-serve/serve-backend/pkg/redis"
	"github.com/fst-serve/serve-backend/pkg/types"
)

// LocationEvent is one client-reported map or GPS event.
type LocationEvent struct {
	Type     enums.LocationEventType
	Position *types.LatLng
	Message  string
}

// LocatorFeed is the per-session geolocation bridge: the Locator read
// side the watch loop consumes plus the report side the event endpoint
// feeds.
type LocatorFeed interface {
	geo.Locator
	ReportFix(types.LatLng)
	ReportFixError(error)
	ReportUpdate(types.LatLng)
}

// Service exposes every wizard session operation.
type Service interface {
	Create(ctx context.Context) (*Session, error)
	Get(ctx context.Context, sessionID string) (*Session, error)
	Advance(ctx context.Context, sessionID string) (*Session, error)
	Retreat(ctx context.Context, sessionID string) (*Session, error)

	UpdateLocationDetails(ctx context.Context, sessionID string, label enums.LocationLabel, notes string) (*Session, error)
	ReportLocationEvent(ctx context.Context, sessionID string, event LocationEvent) (*Session, error)

	OpenVehiclePicker(ctx context.Context, sessionID string) (*Session, error)
	SelectVehicle(ctx context.Context, sessionID string, selection PickerSelection) (*Session, error)
	VehiclePickerBack(ctx context.Context, sessionID string) (*Session, error)
	CloseVehiclePicker(ctx context.Context, sessionID string) (*Session, error)
	SetVehicleSearch(ctx context.Context, sessionID, term string) (*Session, error)

	SetEnergy(ctx context.Context, sessionID string, mode enums.EnergyMode, value int) (*Session, error)
	SwitchEnergyMode(ctx context.Context, sessionID string, mode enums.EnergyMode) (*Session, error)
	SetSchedule(ctx context.Context, sessionID, date, timeLabel string) (*Session, error)
	SetDetails(ctx context.Context, sessionID, reason, generalNotes string) (*Session, error)

	Submit(ctx context.Context, sessionID string) (*Session, error)
	Catalog() *catalog.Catalog
}

// PickerSelection carries one picker tap. Exactly one field is used,
// chosen by the sheet's active level.
type PickerSelection struct {
	Brand    string
	Model    string
	Capacity float64
}

type service struct {
	store   redis.SessionStore
	catalog *catalog.Catalog
	cfg     config.WizardConfig
	logg    *logger.Logger

	newLocator func() LocatorFeed
	now        func() time.Time

	locks lockTable

	watchMu sync.Mutex
	watches map[string]*sessionWatch
}

type sessionWatch struct {
	feed    LocatorFeed
	cancel  context.CancelFunc
	sub     *geo.Subscription
	stopped bool
}

// Option tweaks service construction, mainly for tests.
type Option func(*service)

// WithLocatorFactory swaps the per-session locator bridge.
func WithLocatorFactory(factory func() LocatorFeed) Option {
	return func(s *service) { s.newLocator = factory }
}

// WithClock swaps the time source.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// NewService builds the wizard service backed by the provided stack.
func NewService(store redis.SessionStore, cat *catalog.Catalog, cfg config.WizardConfig, logg *logger.Logger, opts ...Option) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("session store required")
	}
	if cat == nil {
		return nil, fmt.Errorf("vehicle catalog required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	svc := &service{
		store:      store,
		catalog:    cat,
		cfg:        cfg,
		logg:       logg,
		newLocator: func() LocatorFeed { return geo.NewDeviceFeed() },
		now:        time.Now,
		watches:    map[string]*sessionWatch{},
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

func (s *service) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *service) Create(ctx context.Context) (*Session, error) {
	sess := NewSession(uuid.NewString(), s.now())
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	s.logg.Info(s.logg.WithSessionID(ctx, sess.ID), "wizard session created")
	return sess, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*Session, error) {
	lock := s.locks.forSession(sessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.store.TouchSession(ctx, sessionID, s.cfg.SessionTTL); err != nil {
		s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "refreshing session ttl failed")
	}
	return sess, nil
}

func (s *service) Advance(ctx context.Context, sessionID string) (*Session, error) {
	var from int
	sess, err := s.mutate(ctx, sessionID, func(sess *Session) error {
		from = sess.Step
		return sess.Advance()
	})
	if err != nil {
		return nil, err
	}
	s.syncLocationWatch(ctx, sessionID, from, sess.Step)
	return sess, nil
}

func (s *service) Retreat(ctx context.Context, sessionID string) (*Session, error) {
	var from int
	sess, err := s.mutate(ctx, sessionID, func(sess *Session) error {
		from = sess.Step
		return sess.Retreat()
	})
	if err != nil {
		return nil, err
	}
	s.syncLocationWatch(ctx, sessionID, from, sess.Step)
	return sess, nil
}

func (s *service) UpdateLocationDetails(ctx context.Context, sessionID string, label enums.LocationLabel, notes string) (*Session, error) {
	return s.mutate(ctx, sessionID, func(sess *Session) error {
		return sess.SetLocationDetails(label, notes)
	})
}

func (s *service) ReportLocationEvent(ctx context.Context, sessionID string, event LocationEvent) (*Session, error) {
	switch event.Type {
	case enums.LocationEventMoveStart:
		// Display-only on the client; nothing to record.
		return s.Get(ctx, sessionID)
	case enums.LocationEventMoveEnd, enums.LocationEventClick:
		if event.Position == nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "position is required for this event")
		}
		return s.mutate(ctx, sessionID, func(sess *Session) error {
			return sess.SetPin(*event.Position)
		})
	case enums.LocationEventGPSFix:
		if event.Position == nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "position is required for this event")
		}
		feed, err := s.activeFeed(sessionID)
		if err != nil {
			return nil, err
		}
		feed.ReportFix(*event.Position)
		return s.Get(ctx, sessionID)
	case enums.LocationEventGPSError:
		feed, err := s.activeFeed(sessionID)
		if err != nil {
			return nil, err
		}
		if event.Message != "" {
			feed.ReportFixError(errors.New(event.Message))
		} else {
			feed.ReportFixError(nil)
		}
		return s.Get(ctx, sessionID)
	case enums.LocationEventWatchUpdate:
		if event.Position == nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "position is required for this event")
		}
		feed, err := s.activeFeed(sessionID)
		if err != nil {
			return nil, err
		}
		feed.ReportUpdate(*event.Position)
		return s.Get(ctx, sessionID)
	case enums.LocationEventWatchError:
		s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "device watch reported an error")
		return s.Get(ctx, sessionID)
	}
	return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown location event type")
}

func (s *service) OpenVehiclePicker(ctx context.Context, sessionID string) (*Session, error) {
	return s.mutate(ctx, sessionID, func(sess *Session) error {
		return sess.OpenVehiclePicker()
	})
}

func (s *service) SelectVehicle(ctx context.Context, sessionID string, selection PickerSelection) (*Session, error) {
	return s.mutate(ctx, sessionID, func(sess *Session) error {
		switch sess.Picker.Level {
		case enums.PickerLevelBrand:
			return sess.SelectBrand(s.catalog, selection.Brand)
		case enums.PickerLevelModel:
			return sess.SelectModel(s.catalog, selection.Model)
		case enums.PickerLevelCapacity:
			return sess.SelectCapacity(s.catalog, selection.Capacity)
		}
		return pkgerrors.New(pkgerrors.CodeInternal, "unknown picker level")
	})
}

func (s *service) VehiclePickerBack(ctx context.Context, sessionID string) (*Session, error) {
	return s.mutate(ctx, sessionID, func(sess *Session) error {
		return sess.VehiclePickerBack()
	})
}

func (s *service) CloseVehiclePicker(ctx context.Context, sessionID string) (*Session, error) {
	return s.mutate(ctx, sessionID, func(sess *Session) error {
		return sess.CloseVehiclePicker()
	})
}

func (s *service) SetVehicleSearch(ctx context.Context, sessionID, term string) (*Session, error) {
	return s.mutate(ctx, sessionID, func(sess *Session) error {
		return sess.SetVehicleSearch(term)
	})
}

func (s *service) SetEnergy(ctx context.Context, sessionID string, mode enums.EnergyMode, value int) (*Session, error) {
	return s.mutate(ctx, sessionID, func(sess *Session) error {
		return sess.SetEnergy(mode, value)
	})
}

func (s *service) SwitchEnergyMode(ctx context.Context, sessionID string, mode enums.EnergyMode) (*Session, error) {
	return s.mutate(ctx, sessionID, func(sess *Session) error {
		return sess.SwitchEnergyMode(mode)
	})
}

func (s *service) SetSchedule(ctx context.Context, sessionID, date, timeLabel string) (*Session, error) {
	return s.mutate(ctx, sessionID, func(sess *Session) error {
		if date != "" {
			if err := sess.SetScheduleDate(date); err != nil {
				return err
			}
		}
		if timeLabel != "" {
			if err := sess.SetScheduleTime(timeLabel); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *service) SetDetails(ctx context.Context, sessionID, reason, generalNotes string) (*Session, error) {
	return s.mutate(ctx, sessionID, func(sess *Session) error {
		return sess.SetDetails(reason, generalNotes)
	})
}

func (s *service) Submit(ctx context.Context, sessionID string) (*Session, error) {
	sess, err := s.mutate(ctx, sessionID, func(sess *Session) error {
		return sess.MarkSubmitted(s.now())
	})
	if err != nil {
		return nil, err
	}
	s.stopLocationWatch(sessionID)
	s.logg.Info(s.logg.WithStep(s.logg.WithSessionID(ctx, sessionID), sess.Step), "wizard session submitted")
	return sess, nil
}

// mutate runs fn against the stored session under the session's lock
// and persists the result with a fresh TTL.
func (s *service) mutate(ctx context.Context, sessionID string, fn func(*Session) error) (*Session, error) {
	lock := s.locks.forSession(sessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *service) load(ctx context.Context, sessionID string) (*Session, error) {
	blob, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "wizard session not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading wizard session")
	}
	var sess Session
	if err := json.Unmarshal(blob, &sess); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decoding wizard session")
	}
	return &sess, nil
}

func (s *service) save(ctx context.Context, sess *Session) error {
	blob, err := json.Marshal(sess)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding wizard session")
	}
	if err := s.store.StoreSession(ctx, sess.ID, blob, s.cfg.SessionTTL); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "storing wizard session")
	}
	return nil
}

// syncLocationWatch starts the GPS bridge when the session enters the
// location step and tears it down when the session leaves it.
func (s *service) syncLocationWatch(ctx context.Context, sessionID string, from, to int) {
	if from == to {
		return
	}
	if to == StepLocation {
		s.startLocationWatch(ctx, sessionID)
		return
	}
	if from == StepLocation {
		s.stopLocationWatch(sessionID)
	}
}

func (s *service) startLocationWatch(ctx context.Context, sessionID string) {
	s.watchMu.Lock()
	if _, ok := s.watches[sessionID]; ok {
		s.watchMu.Unlock()
		return
	}
	feed := s.newLocator()
	watchCtx, cancel := context.WithCancel(context.Background())
	watch := &sessionWatch{feed: feed, cancel: cancel}
	s.watches[sessionID] = watch
	s.watchMu.Unlock()

	if _, err := s.mutate(ctx, sessionID, func(sess *Session) error {
		return sess.BeginLocating()
	}); err != nil {
		s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "marking session as locating failed")
	}

	go s.awaitFix(watchCtx, sessionID, feed)
	go s.streamWatch(watchCtx, sessionID, watch)
}

func (s *service) stopLocationWatch(sessionID string) {
	s.watchMu.Lock()
	watch, ok := s.watches[sessionID]
	if ok {
		delete(s.watches, sessionID)
		watch.stopped = true
	}
	var sub *geo.Subscription
	if ok {
		sub = watch.sub
	}
	s.watchMu.Unlock()
	if !ok {
		return
	}
	watch.cancel()
	if sub != nil {
		sub.Stop()
	}

	ctx := context.Background()
	if _, err := s.mutate(ctx, sessionID, func(sess *Session) error {
		return sess.ClearLiveMarker()
	}); err != nil && !pkgerrors.Is(err, pkgerrors.CodeStateConflict) {
		s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), "clearing live marker failed")
	}
}

func (s *service) activeFeed(sessionID string) (LocatorFeed, error) {
	s.watchMu.Lock()
	watch, ok := s.watches[sessionID]
	s.watchMu.Unlock()
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "location step is not active for this session")
	}
	return watch.feed, nil
}

// awaitFix waits for the one-shot fix and applies the seed rule. A
// denied or timed-out fix is logged and the flow carries on.
func (s *service) awaitFix(ctx context.Context, sessionID string, locator geo.Locator) {
	fixCtx, cancel := context.WithTimeout(ctx, s.cfg.GPSFixTimeout)
	defer cancel()

	pos, err := locator.CurrentPosition(fixCtx)
	logCtx := s.logg.WithSessionID(context.Background(), sessionID)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		s.logg.Warn(logCtx, "one-shot gps fix failed, falling back to manual placement")
		if _, err := s.mutate(context.Background(), sessionID, func(sess *Session) error {
			return sess.GPSFailed()
		}); err != nil {
			s.logg.Warn(logCtx, "recording gps failure did not apply")
		}
		return
	}
	if _, err := s.mutate(context.Background(), sessionID, func(sess *Session) error {
		return sess.ApplyGPSFix(pos)
	}); err != nil {
		s.logg.Warn(logCtx, "applying gps fix did not apply")
	}
}

// streamWatch consumes the continuous stream into the live marker
// until the subscription stops.
func (s *service) streamWatch(ctx context.Context, sessionID string, watch *sessionWatch) {
	sub, err := watch.feed.Watch(ctx)
	logCtx := s.logg.WithSessionID(context.Background(), sessionID)
	if err != nil {
		s.logg.Warn(logCtx, "starting device watch failed")
		return
	}
	s.watchMu.Lock()
	watch.sub = sub
	alreadyStopped := watch.stopped
	s.watchMu.Unlock()
	if alreadyStopped {
		sub.Stop()
		return
	}

	for pos := range sub.Positions() {
		if _, err := s.mutate(context.Background(), sessionID, func(sess *Session) error {
			return sess.ApplyWatchUpdate(pos)
		}); err != nil {
			s.logg.Warn(logCtx, "applying watch update did not apply")
		}
	}
}

// lockTable stripes per-session mutexes so concurrent requests for the
// same session serialize without a global lock.
type lockTable struct {
	mus [32]sync.Mutex
}

func (t *lockTable) forSession(sessionID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(sessionID))
	return &t.mus[h.Sum32()%uint32(len(t.mus))]
}
