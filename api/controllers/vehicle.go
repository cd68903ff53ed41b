package controllers

import (
	"net/http"

	"github.com/fst-serve/serve-backend/api/responses"
	"github.com/fst-serve/serve-backend/api/validators"
	"github.com/fst-serve/serve-backend/internal/wizard"
	"github.com/fst-serve/serve-backend/pkg/logger"
)

func VehiclePickerOpen(svc wizard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := sessionID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		sess, err := svc.OpenVehiclePicker(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		writeSession(w, svc, sess)
	}
}

type pickerSelectPayload struct {
	Brand    string  `json:"brand"`
	Model    string  `json:"model"`
	Capacity float64 `json:"capacity"`
}

func VehiclePickerSelect(svc wizard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := sessionID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		var payload pickerSelectPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		sess, err := svc.SelectVehicle(ctx, id, wizard.PickerSelection{
			Brand:    payload.Brand,
			Model:    payload.Model,
			Capacity: payload.Capacity,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		writeSession(w, svc, sess)
	}
}

func VehiclePickerBack(svc wizard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := sessionID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		sess, err := svc.VehiclePickerBack(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		writeSession(w, svc, sess)
	}
}

func VehiclePickerClose(svc wizard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := sessionID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		sess, err := svc.CloseVehiclePicker(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		writeSession(w, svc, sess)
	}
}

type pickerSearchPayload struct {
	Term string `json:"term"`
}

func VehiclePickerSearch(svc wizard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := sessionID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		var payload pickerSearchPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		sess, err := svc.SetVehicleSearch(ctx, id, payload.Term)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		writeSession(w, svc, sess)
	}
}
