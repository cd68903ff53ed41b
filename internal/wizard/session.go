// Package wizard owns the booking flow: a five-step session aggregate
// holding the order draft, mutated only through named operations, plus
// the service that persists it and drives the location watch.
package wizard

import (
	"fmt"
	"time"

	"github.com/fst-serve/serve-backend/internal/catalog"
	"github.com/fst-serve/serve-backend/pkg/enums"
	pkgerrors "github.com/fst-serve/serve-backend/pkg/errors"
	"github.com/fst-serve/serve-backend/pkg/types"
)

// Wizard steps, in walk order. No transition skips a step.
const (
	StepHome     = 1
	StepLocation = 2
	StepVehicle  = 3
	StepSchedule = 4
	StepReview   = 5
)

// ErrVehicleRequired rejects leaving the vehicle step with no brand
// chosen. The API layer maps it to an open-picker directive instead of
// a silent block.
var ErrVehicleRequired = pkgerrors.New(pkgerrors.CodeValidation, "select a vehicle before continuing").
	WithDetails(map[string]string{"directive": "open_vehicle_picker"})

// LocationState is the delivery point: the authoritative pin plus the
// label and free-text notes attached to it.
type LocationState struct {
	Coordinates     *types.LatLng         `json:"coordinates,omitempty"`
	Label           enums.LocationLabel   `json:"label"`
	Notes           string                `json:"notes"`
	AcquisitionMode enums.AcquisitionMode `json:"acquisition_mode,omitempty"`
}

// VehicleSelection is the committed portion of the picker walk. Model
// implies Brand; CapacityKwh implies Model.
type VehicleSelection struct {
	Brand       string   `json:"brand,omitempty"`
	Model       string   `json:"model,omitempty"`
	CapacityKwh *float64 `json:"capacity_kwh,omitempty"`
}

// EnergyRequest is the requested amount in the active mode. Value is
// always inside the mode's bounds.
type EnergyRequest struct {
	Mode  enums.EnergyMode `json:"mode"`
	Value int              `json:"value"`
}

// Schedule records the chosen slot labels.
type Schedule struct {
	Date string `json:"date"`
	Time string `json:"time,omitempty"`
}

// PickerState is the vehicle picker sheet: open flag, active level and
// the live search term for that level.
type PickerState struct {
	Open  bool              `json:"open"`
	Level enums.PickerLevel `json:"level"`
	Term  string            `json:"term"`
}

// Session is the whole wizard state for one visitor. It round-trips
// through the session store as JSON; every mutation goes through a
// named method so the gates and the submitted freeze always apply.
type Session struct {
	ID           string         `json:"id"`
	Step         int            `json:"step"`
	Submitted    bool           `json:"submitted"`
	Location     LocationState  `json:"location"`
	Vehicle      VehicleSelection `json:"vehicle"`
	Energy       EnergyRequest  `json:"energy"`
	Schedule     Schedule       `json:"schedule"`
	Reason       string         `json:"reason"`
	GeneralNotes string         `json:"general_notes"`
	Picker       PickerState    `json:"picker"`
	LiveMarker   *types.LatLng  `json:"live_marker,omitempty"`
	Locating     bool           `json:"locating"`
	CreatedAt    time.Time      `json:"created_at"`
	SubmittedAt  *time.Time     `json:"submitted_at,omitempty"`
}

// NewSession starts a fresh draft at the home step with the reference
// defaults: Home label, 50 percent requested, today's slot preselected.
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:   id,
		Step: StepHome,
		Location: LocationState{
			Label: enums.LocationLabelHome,
		},
		Energy: EnergyRequest{
			Mode:  enums.EnergyModePercent,
			Value: DefaultEnergyPercent,
		},
		Schedule: Schedule{
			Date: scheduleDates[0],
		},
		Picker: PickerState{
			Level: enums.PickerLevelBrand,
		},
		CreatedAt: now.UTC(),
	}
}

func (s *Session) ensureMutable() error {
	if s.Submitted {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "order already submitted")
	}
	return nil
}

// Advance moves one step forward, gated on the current step's
// completeness.
func (s *Session) Advance() error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	switch s.Step {
	case StepLocation:
		if s.Location.Coordinates == nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "set a delivery location before continuing")
		}
	case StepVehicle:
		if s.Vehicle.Brand == "" {
			return ErrVehicleRequired
		}
	case StepSchedule:
		if s.Schedule.Time == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, "pick a time slot before continuing")
		}
	case StepReview:
		return pkgerrors.New(pkgerrors.CodeStateConflict, "already at the review step")
	}
	s.Step++
	return nil
}

// Retreat moves one step back, flooring at the home step. Stepping
// back is never gated.
func (s *Session) Retreat() error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	if s.Step > StepHome {
		s.Step--
	}
	return nil
}

// SetDetails records the free-text reason and general notes.
func (s *Session) SetDetails(reason, generalNotes string) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	s.Reason = reason
	s.GeneralNotes = generalNotes
	return nil
}

// MarkSubmitted freezes the draft. Callable only from the review step
// with a delivery location set; afterwards every mutation is rejected.
func (s *Session) MarkSubmitted(now time.Time) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	if s.Step != StepReview {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "submit is only available from the review step")
	}
	if s.Location.Coordinates == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "a delivery location is required")
	}
	s.Submitted = true
	at := now.UTC()
	s.SubmittedAt = &at
	return nil
}

// VehicleLabel renders the selection for summaries, substituting
// bracketed placeholders for the parts not chosen yet.
func (s *Session) VehicleLabel() string {
	brand := s.Vehicle.Brand
	if brand == "" {
		brand = "[Brand]"
	}
	model := s.Vehicle.Model
	if model == "" {
		model = "[Model]"
	}
	capacity := DefaultCapacityKwh
	if s.Vehicle.CapacityKwh != nil {
		capacity = *s.Vehicle.CapacityKwh
	}
	return fmt.Sprintf("%s %s (%s kWh)", brand, model, catalog.FormatCapacity(capacity))
}

// EnergyLabel renders the requested amount: percent mode includes the
// computed kWh, kWh mode stands alone.
func (s *Session) EnergyLabel() string {
	if s.Energy.Mode == enums.EnergyModePercent {
		return fmt.Sprintf("%d%% (%d kWh)", s.Energy.Value, s.EnergyKwh())
	}
	return fmt.Sprintf("%d kWh", s.Energy.Value)
}

// ScheduleLabel renders the chosen slot as "{date} @ {time}".
func (s *Session) ScheduleLabel() string {
	return fmt.Sprintf("%s @ %s", s.Schedule.Date, s.Schedule.Time)
}
