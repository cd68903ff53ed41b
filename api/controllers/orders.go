package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/fst-serve/serve-backend/api/responses"
	"github.com/fst-serve/serve-backend/api/validators"
	"github.com/fst-serve/serve-backend/pkg/airtable"
	pkgerrors "github.com/fst-serve/serve-backend/pkg/errors"
	"github.com/fst-serve/serve-backend/pkg/logger"
)

// OrdersSubmit relays an already-assembled order payload to the
// configured webhook. The critical fields are checked before any
// external call happens.
func OrdersSubmit(client *airtable.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		defer io.Copy(io.Discard, r.Body)

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid request body"))
			return
		}
		for _, field := range []string{"location_coordinates", "vehicle", "energy_requested"} {
			if missingField(body, field) {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "missing critical fields").
					WithDetails(map[string]string{field: "is required"}))
				return
			}
		}

		if err := client.ForwardOrder(ctx, body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"success": true})
	}
}

func missingField(body map[string]any, field string) bool {
	value, ok := body[field]
	if !ok || value == nil {
		return true
	}
	if s, ok := value.(string); ok && s == "" {
		return true
	}
	return false
}

type orderRecordPayload struct {
	Location      string `json:"location"`
	LocationNotes string `json:"location_notes"`
	Vehicle       string `json:"vehicle" validate:"required"`
	Energy        string `json:"energy" validate:"required"`
	Price         int    `json:"price"`
	Time          string `json:"time"`
	Notes         string `json:"notes"`
	Reason        string `json:"reason"`
}

// OrdersRecord writes the order into the Airtable base directly, with
// the server-held credentials.
func OrdersRecord(client *airtable.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload orderRecordPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		err := client.CreateOrderRecord(ctx, airtable.OrderFields{
			Location:      payload.Location,
			LocationNotes: payload.LocationNotes,
			Vehicle:       payload.Vehicle,
			Energy:        payload.Energy,
			Price:         payload.Price,
			Time:          payload.Time,
			Notes:         payload.Notes,
			Reason:        payload.Reason,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"success": true})
	}
}
