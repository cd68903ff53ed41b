package wizard

import (
	"github.com/fst-serve/serve-backend/pkg/enums"
	pkgerrors "github.com/fst-serve/serve-backend/pkg/errors"
	"github.com/fst-serve/serve-backend/pkg/types"
)

// BeginLocating flags the one-shot GPS fix as outstanding. The flag is
// display state only; it never blocks the flow.
func (s *Session) BeginLocating() error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	s.Locating = true
	return nil
}

// ApplyGPSFix settles the one-shot fix. When no authoritative pin
// exists yet the fix seeds it; once a pin is set, GPS only moves the
// live marker.
func (s *Session) ApplyGPSFix(pos types.LatLng) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	s.Locating = false
	marker := pos
	s.LiveMarker = &marker
	if s.Location.Coordinates == nil {
		pin := pos
		s.Location.Coordinates = &pin
		s.Location.AcquisitionMode = enums.AcquisitionModeGPS
	}
	return nil
}

// GPSFailed settles the one-shot fix with a failure. The user can
// still place the pin by panning the map.
func (s *Session) GPSFailed() error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	s.Locating = false
	return nil
}

// ApplyWatchUpdate moves the live-position marker. It never touches
// the authoritative pin.
func (s *Session) ApplyWatchUpdate(pos types.LatLng) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	marker := pos
	s.LiveMarker = &marker
	return nil
}

// SetPin adopts the map center as the authoritative pin. Every pan-end
// lands here, including the one a tap's animated re-center produces.
func (s *Session) SetPin(pos types.LatLng) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	pin := pos
	s.Location.Coordinates = &pin
	s.Location.AcquisitionMode = enums.AcquisitionModeMap
	return nil
}

// SetLocationDetails records the label and free-text notes for the
// delivery point.
func (s *Session) SetLocationDetails(label enums.LocationLabel, notes string) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	if !label.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown location label")
	}
	s.Location.Label = label
	s.Location.Notes = notes
	return nil
}

// ClearLiveMarker drops the live-position marker, used when the
// location step unmounts and the watch is torn down.
func (s *Session) ClearLiveMarker() error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	s.LiveMarker = nil
	s.Locating = false
	return nil
}
