package controllers

import (
	"net/http"

	"github.com/fst-serve/serve-backend/api/responses"
)

// AddressesList and UpcomingCharges back the home screen's empty
// states. Saved addresses and history are not persisted; the endpoints
// exist so the shell renders without special-casing.
func AddressesList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"addresses": []any{}})
	}
}

func UpcomingCharges() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"charges": []any{}})
	}
}
