// Package orders freezes a finished wizard session into the outbound
// artifacts: the recording payload, the dispatch summary, and the
// WhatsApp hand-off link.
package orders

import (
	"fmt"
	"time"

	"github.com/fst-serve/serve-backend/internal/wizard"
	"github.com/fst-serve/serve-backend/pkg/enums"
	"github.com/fst-serve/serve-backend/pkg/types"
)

// Request is the payload relayed to the order-recording collaborator.
type Request struct {
	Timestamp           string        `json:"timestamp"`
	LocationCoordinates *types.LatLng `json:"location_coordinates"`
	LocationNotes       string        `json:"location_notes"`
	Vehicle             string        `json:"vehicle"`
	EnergyRequested     string        `json:"energy_requested"`
	EstimatedPrice      int           `json:"estimated_price"`
	ScheduledTime       string        `json:"scheduled_time"`
	GeneralNotes        string        `json:"general_notes"`
	Reason              string        `json:"reason"`
}

// BuildRequest renders the session's draft into the recording payload.
func BuildRequest(sess *wizard.Session, now time.Time) Request {
	return Request{
		Timestamp:           now.UTC().Format(time.RFC3339),
		LocationCoordinates: sess.Location.Coordinates,
		LocationNotes:       sess.Location.Notes,
		Vehicle:             sess.VehicleLabel(),
		EnergyRequested:     sess.EnergyLabel(),
		EstimatedPrice:      sess.EstimatedPriceDh(),
		ScheduledTime:       sess.ScheduleLabel(),
		GeneralNotes:        sess.GeneralNotes,
		Reason:              sess.Reason,
	}
}

func mapsLink(sess *wizard.Session) string {
	if sess.Location.Coordinates == nil {
		return "Location not provided"
	}
	return sess.Location.Coordinates.MapsURL()
}

func locationMode(sess *wizard.Session) string {
	if sess.Location.AcquisitionMode == enums.AcquisitionModeGPS {
		return "GPS Location"
	}
	return "Pinned Location"
}

// Summary renders the human-readable dispatch message that rides the
// messaging deep link.
func Summary(sess *wizard.Session) string {
	return fmt.Sprintf(`New FST Charge Request ⚡

📍 Location: %s %s
📝 Loc Notes: %s

🚗 Vehicle: %s
🔋 Energy: %s
💰 Est. Price: %d DH + delivery fees

📅 Time: %s
📝 Notes: %s
❓ Reason: %s`,
		locationMode(sess), mapsLink(sess),
		sess.Location.Notes,
		sess.VehicleLabel(),
		sess.EnergyLabel(),
		sess.EstimatedPriceDh(),
		sess.ScheduleLabel(),
		sess.GeneralNotes,
		sess.Reason,
	)
}
