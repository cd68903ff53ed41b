package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fst-serve/serve-backend/api/responses"
	"github.com/fst-serve/serve-backend/api/validators"
	"github.com/fst-serve/serve-backend/internal/orders"
	"github.com/fst-serve/serve-backend/internal/wizard"
	"github.com/fst-serve/serve-backend/pkg/enums"
	pkgerrors "github.com/fst-serve/serve-backend/pkg/errors"
	"github.com/fst-serve/serve-backend/pkg/logger"
	"github.com/fst-serve/serve-backend/pkg/types"
)

// sessionView is the API shape of a session: the stored aggregate plus
// the derived numbers the client renders.
type sessionView struct {
	*wizard.Session
	EnergyKwh        int      `json:"energy_kwh"`
	EstimatedPriceDh int      `json:"estimated_price_dh"`
	VehicleLabel     string   `json:"vehicle_label"`
	PickerOptions    []string `json:"picker_options,omitempty"`
}

func newSessionView(svc wizard.Service, sess *wizard.Session) sessionView {
	view := sessionView{
		Session:          sess,
		EnergyKwh:        sess.EnergyKwh(),
		EstimatedPriceDh: sess.EstimatedPriceDh(),
		VehicleLabel:     sess.VehicleLabel(),
	}
	if sess.Picker.Open {
		if options, err := sess.PickerOptions(svc.Catalog()); err == nil {
			view.PickerOptions = options
		}
	}
	return view
}

func writeSession(w http.ResponseWriter, svc wizard.Service, sess *wizard.Session) {
	responses.WriteSuccess(w, newSessionView(svc, sess))
}

func sessionID(r *http.Request) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, "sessionID"))
	if id == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	return id, nil
}

func SessionCreate(svc wizard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess, err := svc.Create(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, newSessionView(svc, sess))
	}
}

func SessionGet(svc wizard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := sessionID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		sess, err := svc.Get(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		writeSession(w, svc, sess)
	}
}

func SessionAdvance(svc wizard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := sessionID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		sess, err := svc.Advance(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		writeSession(w, svc, sess)
	}
}

func SessionRetreat(svc wizard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := sessionID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		sess, err := svc.Retreat(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		writeSession(w, svc, sess)
	}
}

type locationDetailsPayload struct {
	Label string `json:"label" validate:"required"`
	Notes string `json:"notes"`
}

func SessionLocation(svc wizard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := sessionID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		var payload locationDetailsPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		label, err := enums.ParseLocationLabel(payload.Label)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid location label"))
			return
		}
		sess, err := svc.UpdateLocationDetails(ctx, id, label, payload.Notes)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		writeSession(w, svc, sess)
	}
}

type locationEventPayload struct {
	Type     string        `json:"type" validate:"required"`
	Position *types.LatLng `json:"position"`
	Message  string        `json:"message"`
}

func SessionLocationEvents(svc wizard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := sessionID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		var payload locationEventPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		eventType, err := enums.ParseLocationEventType(payload.Type)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid location event type"))
			return
		}
		sess, err := svc.ReportLocationEvent(ctx, id, wizard.LocationEvent{
			Type:     eventType,
			Position: payload.Position,
			Message:  payload.Message,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		writeSession(w, svc, sess)
	}
}

type energyPayload struct {
	Mode  string `json:"mode" validate:"required"`
	Value *int   `json:"value"`
}

func SessionEnergy(svc wizard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := sessionID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		var payload energyPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		mode, err := enums.ParseEnergyMode(payload.Mode)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid energy mode"))
			return
		}
		var sess *wizard.Session
		if payload.Value == nil {
			// A mode with no value is a toggle: keep the number,
			// re-clamp into the new range.
			sess, err = svc.SwitchEnergyMode(ctx, id, mode)
		} else {
			sess, err = svc.SetEnergy(ctx, id, mode, *payload.Value)
		}
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		writeSession(w, svc, sess)
	}
}

type schedulePayload struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

func SessionSchedule(svc wizard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := sessionID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		var payload schedulePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if payload.Date == "" && payload.Time == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "a date or time label is required"))
			return
		}
		sess, err := svc.SetSchedule(ctx, id, payload.Date, payload.Time)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		writeSession(w, svc, sess)
	}
}

type detailsPayload struct {
	Reason       string `json:"reason"`
	GeneralNotes string `json:"general_notes"`
}

func SessionDetails(svc wizard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := sessionID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		var payload detailsPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		sess, err := svc.SetDetails(ctx, id, payload.Reason, payload.GeneralNotes)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		writeSession(w, svc, sess)
	}
}

func SessionSubmit(svc wizard.Service, submitter *orders.Submitter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := sessionID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		sess, err := svc.Submit(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		receipt := submitter.Submit(ctx, sess)
		responses.WriteSuccess(w, receipt)
	}
}
