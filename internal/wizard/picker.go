package wizard

import (
	"github.com/fst-serve/serve-backend/internal/catalog"
	"github.com/fst-serve/serve-backend/pkg/enums"
	pkgerrors "github.com/fst-serve/serve-backend/pkg/errors"
)

// OpenVehiclePicker opens the sheet at the brand level with a fresh
// search term.
func (s *Session) OpenVehiclePicker() error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	s.Picker = PickerState{Open: true, Level: enums.PickerLevelBrand}
	return nil
}

// CloseVehiclePicker dismisses the sheet. Whatever was already
// committed (brand, model) stays committed.
func (s *Session) CloseVehiclePicker() error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	s.Picker.Open = false
	return nil
}

// SetVehicleSearch updates the live filter term for the active level.
func (s *Session) SetVehicleSearch(term string) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	s.Picker.Term = term
	return nil
}

func (s *Session) ensurePickerAt(level enums.PickerLevel) error {
	if !s.Picker.Open {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "vehicle picker is not open")
	}
	if s.Picker.Level != level {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "vehicle picker is at a different level")
	}
	return nil
}

// SelectBrand commits a brand and moves the sheet to the model level.
// Any previous model and capacity are cleared.
func (s *Session) SelectBrand(cat *catalog.Catalog, name string) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	if err := s.ensurePickerAt(enums.PickerLevelBrand); err != nil {
		return err
	}
	if _, err := cat.Models(name); err != nil {
		return err
	}
	s.Vehicle = VehicleSelection{Brand: name}
	s.Picker.Level = enums.PickerLevelModel
	s.Picker.Term = ""
	return nil
}

// SelectModel commits a model. A model with a single capacity option
// auto-assigns it and closes the sheet; otherwise the sheet moves to
// the capacity level.
func (s *Session) SelectModel(cat *catalog.Catalog, name string) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	if err := s.ensurePickerAt(enums.PickerLevelModel); err != nil {
		return err
	}
	model, err := cat.Model(s.Vehicle.Brand, name)
	if err != nil {
		return err
	}
	s.Vehicle.Model = model.Name
	s.Vehicle.CapacityKwh = nil
	if len(model.Capacities) == 1 {
		capacity := model.Capacities[0]
		s.Vehicle.CapacityKwh = &capacity
		s.Picker.Open = false
		s.Picker.Term = ""
		return nil
	}
	s.Picker.Level = enums.PickerLevelCapacity
	s.Picker.Term = ""
	return nil
}

// SelectCapacity commits a capacity option of the chosen model and
// closes the sheet.
func (s *Session) SelectCapacity(cat *catalog.Catalog, capacity float64) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	if err := s.ensurePickerAt(enums.PickerLevelCapacity); err != nil {
		return err
	}
	model, err := cat.Model(s.Vehicle.Brand, s.Vehicle.Model)
	if err != nil {
		return err
	}
	if !model.HasCapacity(capacity) {
		return pkgerrors.New(pkgerrors.CodeValidation, "capacity is not an option for this model")
	}
	s.Vehicle.CapacityKwh = &capacity
	s.Picker.Open = false
	s.Picker.Term = ""
	return nil
}

// VehiclePickerBack steps the sheet one level up: capacity to model,
// model to brand. At the brand level it closes the sheet.
func (s *Session) VehiclePickerBack() error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	if !s.Picker.Open {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "vehicle picker is not open")
	}
	switch s.Picker.Level {
	case enums.PickerLevelCapacity:
		s.Picker.Level = enums.PickerLevelModel
	case enums.PickerLevelModel:
		s.Picker.Level = enums.PickerLevelBrand
	default:
		s.Picker.Open = false
	}
	s.Picker.Term = ""
	return nil
}

// PickerOptions lists the choices at the active level, filtered by the
// live term. Capacities are rendered the way the catalog formats them.
func (s *Session) PickerOptions(cat *catalog.Catalog) ([]string, error) {
	switch s.Picker.Level {
	case enums.PickerLevelBrand:
		return cat.SearchBrands(s.Picker.Term), nil
	case enums.PickerLevelModel:
		models, err := cat.SearchModels(s.Vehicle.Brand, s.Picker.Term)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(models))
		for _, m := range models {
			names = append(names, m.Name)
		}
		return names, nil
	case enums.PickerLevelCapacity:
		model, err := cat.Model(s.Vehicle.Brand, s.Vehicle.Model)
		if err != nil {
			return nil, err
		}
		capacities := catalog.FilterCapacities(model.Capacities, s.Picker.Term)
		rendered := make([]string, 0, len(capacities))
		for _, c := range capacities {
			rendered = append(rendered, catalog.FormatCapacity(c))
		}
		return rendered, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeInternal, "unknown picker level")
}
