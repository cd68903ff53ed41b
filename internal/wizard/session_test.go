package wizard

import (
	"errors"
	"testing"
	"time"

	"github.com/fst-serve/serve-backend/internal/catalog"
	"github.com/fst-serve/serve-backend/pkg/enums"
	pkgerrors "github.com/fst-serve/serve-backend/pkg/errors"
	"github.com/fst-serve/serve-backend/pkg/types"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession("sess-1", time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC))
}

func TestNewSessionDefaults(t *testing.T) {
	sess := newTestSession(t)

	if sess.Step != StepHome {
		t.Fatalf("expected step %d, got %d", StepHome, sess.Step)
	}
	if sess.Energy.Mode != enums.EnergyModePercent || sess.Energy.Value != DefaultEnergyPercent {
		t.Fatalf("unexpected energy defaults %+v", sess.Energy)
	}
	if sess.Schedule.Date != "Today" || sess.Schedule.Time != "" {
		t.Fatalf("unexpected schedule defaults %+v", sess.Schedule)
	}
	if sess.Location.Label != enums.LocationLabelHome {
		t.Fatalf("unexpected label %q", sess.Location.Label)
	}
}

func TestAdvanceGates(t *testing.T) {
	sess := newTestSession(t)

	if err := sess.Advance(); err != nil {
		t.Fatalf("home step advance should pass: %v", err)
	}

	err := sess.Advance()
	if !pkgerrors.Is(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error without coordinates, got %v", err)
	}
	if err := sess.SetPin(types.LatLng{Lat: 33.59, Lng: -7.61}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sess.Advance(); err != nil {
		t.Fatalf("location advance should pass: %v", err)
	}

	err = sess.Advance()
	if !errors.Is(err, ErrVehicleRequired) {
		t.Fatalf("expected ErrVehicleRequired, got %v", err)
	}
	sess.Vehicle.Brand = "Tesla"
	if err := sess.Advance(); err != nil {
		t.Fatalf("vehicle advance should pass: %v", err)
	}

	err = sess.Advance()
	if !pkgerrors.Is(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error without a time slot, got %v", err)
	}
	if err := sess.SetScheduleTime("11:00 AM"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sess.Advance(); err != nil {
		t.Fatalf("schedule advance should pass: %v", err)
	}

	if !pkgerrors.Is(sess.Advance(), pkgerrors.CodeStateConflict) {
		t.Fatal("advancing past review should be rejected")
	}
}

func TestRetreatFloorsAtHome(t *testing.T) {
	sess := newTestSession(t)
	if err := sess.Retreat(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Step != StepHome {
		t.Fatalf("expected floor at %d, got %d", StepHome, sess.Step)
	}
}

func TestEnergyDerivationsPercentMode(t *testing.T) {
	sess := newTestSession(t)
	capacity := 82.0
	sess.Vehicle.CapacityKwh = &capacity

	if err := sess.SetEnergy(enums.EnergyModePercent, 50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := sess.EnergyKwh(); got != 41 {
		t.Fatalf("expected 41 kWh, got %d", got)
	}
	if got := sess.EstimatedPriceDh(); got != 205 {
		t.Fatalf("expected 205 DH, got %d", got)
	}
	if got := sess.EnergyLabel(); got != "50% (41 kWh)" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestEnergyDerivationsKwhMode(t *testing.T) {
	sess := newTestSession(t)

	if err := sess.SetEnergy(enums.EnergyModeKwh, 40); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := sess.EnergyKwh(); got != 40 {
		t.Fatalf("expected 40 kWh, got %d", got)
	}
	if got := sess.EstimatedPriceDh(); got != 200 {
		t.Fatalf("expected 200 DH, got %d", got)
	}
	if got := sess.EnergyLabel(); got != "40 kWh" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestEnergyDefaultCapacityFallback(t *testing.T) {
	sess := newTestSession(t)
	// 50% of the 75 kWh default.
	if got := sess.EnergyKwh(); got != 38 {
		t.Fatalf("expected 38 kWh, got %d", got)
	}
	if got := sess.EstimatedPriceDh(); got != 188 {
		t.Fatalf("expected 188 DH, got %d", got)
	}
}

func TestSetEnergyClampsToBounds(t *testing.T) {
	sess := newTestSession(t)

	if err := sess.SetEnergy(enums.EnergyModePercent, 99); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Energy.Value != PercentMax {
		t.Fatalf("expected clamp to %d, got %d", PercentMax, sess.Energy.Value)
	}

	if err := sess.SetEnergy(enums.EnergyModeKwh, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Energy.Value != KwhMin {
		t.Fatalf("expected clamp to %d, got %d", KwhMin, sess.Energy.Value)
	}
}

func TestSwitchEnergyModeReclampsOnly(t *testing.T) {
	sess := newTestSession(t)

	if err := sess.SetEnergy(enums.EnergyModeKwh, 120); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sess.SwitchEnergyMode(enums.EnergyModePercent); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Energy.Value != PercentMax {
		t.Fatalf("expected re-clamp to %d, got %d", PercentMax, sess.Energy.Value)
	}

	if err := sess.SetEnergy(enums.EnergyModePercent, 40); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sess.SwitchEnergyMode(enums.EnergyModeKwh); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Energy.Value != 40 {
		t.Fatalf("in-range value should keep its number, got %d", sess.Energy.Value)
	}
}

func TestEnergyTicks(t *testing.T) {
	ticks := EnergyTicks(enums.EnergyModePercent)
	if len(ticks) == 0 {
		t.Fatal("expected ticks")
	}
	if ticks[0].Value != 10 || !ticks[0].Major {
		t.Fatalf("unexpected first tick %+v", ticks[0])
	}
	if last := ticks[len(ticks)-1]; last.Value != 85 || last.Major {
		t.Fatalf("unexpected last tick %+v", last)
	}
	for _, tick := range ticks {
		if tick.Value%5 != 0 {
			t.Fatalf("tick %d is off the 5-unit grid", tick.Value)
		}
		if (tick.Value%10 == 0) != tick.Major {
			t.Fatalf("major flag wrong for tick %d", tick.Value)
		}
	}
}

func TestPickerSingleCapacityAutoAssign(t *testing.T) {
	cat := catalog.Default()
	sess := newTestSession(t)

	if err := sess.OpenVehiclePicker(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sess.SelectBrand(cat, "Tesla"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Picker.Level != enums.PickerLevelModel {
		t.Fatalf("expected model level, got %q", sess.Picker.Level)
	}
	if err := sess.SelectModel(cat, "Model S"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Picker.Open {
		t.Fatal("single-capacity model should close the picker")
	}
	if sess.Vehicle.CapacityKwh == nil || *sess.Vehicle.CapacityKwh != 100 {
		t.Fatalf("expected auto-assigned capacity 100, got %+v", sess.Vehicle.CapacityKwh)
	}
	if got := sess.VehicleLabel(); got != "Tesla Model S (100 kWh)" {
		t.Fatalf("unexpected vehicle label %q", got)
	}
}

func TestPickerMultiCapacityWalk(t *testing.T) {
	cat := catalog.Default()
	sess := newTestSession(t)

	if err := sess.OpenVehiclePicker(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sess.SelectBrand(cat, "Tesla"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sess.SelectModel(cat, "Model 3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Picker.Level != enums.PickerLevelCapacity || !sess.Picker.Open {
		t.Fatalf("expected open picker at capacity level, got %+v", sess.Picker)
	}
	if sess.Vehicle.CapacityKwh != nil {
		t.Fatal("capacity should stay absent until chosen")
	}
	if err := sess.SelectCapacity(cat, 57.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Picker.Open {
		t.Fatal("picking a capacity should close the picker")
	}
	if got := sess.VehicleLabel(); got != "Tesla Model 3 (57.5 kWh)" {
		t.Fatalf("unexpected vehicle label %q", got)
	}
}

func TestPickerBackWalksOneLevel(t *testing.T) {
	cat := catalog.Default()
	sess := newTestSession(t)

	if err := sess.OpenVehiclePicker(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sess.SelectBrand(cat, "Tesla"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sess.SelectModel(cat, "Model 3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sess.SetVehicleSearch("57"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := sess.VehiclePickerBack(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Picker.Level != enums.PickerLevelModel || sess.Picker.Term != "" {
		t.Fatalf("back should land on the model level with a reset term, got %+v", sess.Picker)
	}
	if err := sess.VehiclePickerBack(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Picker.Level != enums.PickerLevelBrand {
		t.Fatalf("expected brand level, got %q", sess.Picker.Level)
	}
	if err := sess.VehiclePickerBack(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Picker.Open {
		t.Fatal("back at the brand level should close the picker")
	}
}

func TestPickerClosePreservesPartialSelection(t *testing.T) {
	cat := catalog.Default()
	sess := newTestSession(t)

	if err := sess.OpenVehiclePicker(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sess.SelectBrand(cat, "Renault"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sess.CloseVehiclePicker(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Vehicle.Brand != "Renault" {
		t.Fatalf("committed brand should survive close, got %q", sess.Vehicle.Brand)
	}
	if sess.Vehicle.Model != "" || sess.Vehicle.CapacityKwh != nil {
		t.Fatalf("uncommitted fields should stay absent, got %+v", sess.Vehicle)
	}
}

func TestPickerUnknownBrand(t *testing.T) {
	cat := catalog.Default()
	sess := newTestSession(t)

	if err := sess.OpenVehiclePicker(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := sess.SelectBrand(cat, "Edison Motors")
	if !pkgerrors.Is(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestLocationSeedThenMapOverride(t *testing.T) {
	sess := newTestSession(t)

	if err := sess.BeginLocating(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sess.Locating {
		t.Fatal("expected locating flag while the fix is outstanding")
	}

	fix := types.LatLng{Lat: 33.5731, Lng: -7.5898}
	if err := sess.ApplyGPSFix(fix); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Locating {
		t.Fatal("fix should settle the locating flag")
	}
	if sess.Location.Coordinates == nil || *sess.Location.Coordinates != fix {
		t.Fatalf("first fix should seed the pin, got %+v", sess.Location.Coordinates)
	}
	if sess.Location.AcquisitionMode != enums.AcquisitionModeGPS {
		t.Fatalf("expected gps acquisition, got %q", sess.Location.AcquisitionMode)
	}

	update := types.LatLng{Lat: 33.574, Lng: -7.591}
	if err := sess.ApplyWatchUpdate(update); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *sess.Location.Coordinates != fix {
		t.Fatal("watch updates must never move the pin")
	}
	if sess.LiveMarker == nil || *sess.LiveMarker != update {
		t.Fatalf("watch update should move the live marker, got %+v", sess.LiveMarker)
	}

	pin := types.LatLng{Lat: 33.59, Lng: -7.61}
	if err := sess.SetPin(pin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *sess.Location.Coordinates != pin {
		t.Fatal("pan-end should move the pin")
	}
	if sess.Location.AcquisitionMode != enums.AcquisitionModeMap {
		t.Fatalf("expected map acquisition, got %q", sess.Location.AcquisitionMode)
	}

	later := types.LatLng{Lat: 33.576, Lng: -7.593}
	if err := sess.ApplyGPSFix(later); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *sess.Location.Coordinates != pin {
		t.Fatal("a fix after the pin is set must only move the marker")
	}
}

func TestLocationGPSDeniedManualFallback(t *testing.T) {
	sess := newTestSession(t)

	if err := sess.BeginLocating(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sess.GPSFailed(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Locating {
		t.Fatal("failure should settle the locating flag")
	}

	pin := types.LatLng{Lat: 33.59, Lng: -7.61}
	if err := sess.SetPin(pin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Location.Coordinates == nil || *sess.Location.Coordinates != pin {
		t.Fatalf("manual pin should land, got %+v", sess.Location.Coordinates)
	}
	if sess.LiveMarker != nil {
		t.Fatal("live marker should remain absent after a denied fix")
	}
}

func TestScheduleRejectsUnknownLabels(t *testing.T) {
	sess := newTestSession(t)

	if err := sess.SetScheduleDate("Sat 3"); !pkgerrors.Is(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := sess.SetScheduleTime("10:30 PM"); !pkgerrors.Is(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := sess.SetScheduleDate("Tomorrow"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sess.SetScheduleTime("07:00 PM"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := sess.ScheduleLabel(); got != "Tomorrow @ 07:00 PM" {
		t.Fatalf("unexpected schedule label %q", got)
	}
}

func TestSubmitFreezesDraft(t *testing.T) {
	sess := newTestSession(t)
	sess.Step = StepReview
	pin := types.LatLng{Lat: 33.59, Lng: -7.61}
	sess.Location.Coordinates = &pin

	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	if err := sess.MarkSubmitted(now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sess.Submitted || sess.SubmittedAt == nil {
		t.Fatal("expected submitted state")
	}

	if err := sess.SetDetails("reason", "notes"); !pkgerrors.Is(err, pkgerrors.CodeStateConflict) {
		t.Fatalf("expected state conflict after submit, got %v", err)
	}
	if err := sess.Advance(); !pkgerrors.Is(err, pkgerrors.CodeStateConflict) {
		t.Fatalf("expected state conflict after submit, got %v", err)
	}
	if err := sess.MarkSubmitted(now); !pkgerrors.Is(err, pkgerrors.CodeStateConflict) {
		t.Fatalf("expected repeat submit to conflict, got %v", err)
	}
}

func TestSubmitRequiresReviewStepAndPin(t *testing.T) {
	sess := newTestSession(t)
	now := time.Now()

	if err := sess.MarkSubmitted(now); !pkgerrors.Is(err, pkgerrors.CodeStateConflict) {
		t.Fatalf("expected state conflict off the review step, got %v", err)
	}

	sess.Step = StepReview
	if err := sess.MarkSubmitted(now); !pkgerrors.Is(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error without a pin, got %v", err)
	}
}

func TestVehicleLabelPlaceholders(t *testing.T) {
	sess := newTestSession(t)
	if got := sess.VehicleLabel(); got != "[Brand] [Model] (75 kWh)" {
		t.Fatalf("unexpected label %q", got)
	}
}
