package wizard

import (
	"math"

	"github.com/fst-serve/serve-backend/pkg/enums"
	pkgerrors "github.com/fst-serve/serve-backend/pkg/errors"
)

// Pricing and amount constants. The 85 percent ceiling is a battery
// safety limit, so it binds direct input as well as the slider.
const (
	RatePerKwh         = 5
	DefaultCapacityKwh = 75.0

	PercentMin = 10
	PercentMax = 85
	KwhMin     = 10
	KwhMax     = 150

	DefaultEnergyPercent = 50
)

// EnergyBounds returns the inclusive slider range for a mode.
func EnergyBounds(mode enums.EnergyMode) (min, max int) {
	if mode == enums.EnergyModeKwh {
		return KwhMin, KwhMax
	}
	return PercentMin, PercentMax
}

func clampEnergy(mode enums.EnergyMode, value int) int {
	min, max := EnergyBounds(mode)
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// roundHalfUp matches the reference arithmetic, so 0.5 always lands on
// the higher integer.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// SetEnergy records a requested amount, clamped into the mode's range.
func (s *Session) SetEnergy(mode enums.EnergyMode, value int) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	if !mode.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown energy mode")
	}
	s.Energy.Mode = mode
	s.Energy.Value = clampEnergy(mode, value)
	return nil
}

// SwitchEnergyMode changes the mode without rescaling: the value keeps
// its number and is only re-clamped into the new range.
func (s *Session) SwitchEnergyMode(mode enums.EnergyMode) error {
	if err := s.ensureMutable(); err != nil {
		return err
	}
	if !mode.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown energy mode")
	}
	if mode == s.Energy.Mode {
		return nil
	}
	s.Energy.Mode = mode
	s.Energy.Value = clampEnergy(mode, s.Energy.Value)
	return nil
}

func (s *Session) batteryCapacityKwh() float64 {
	if s.Vehicle.CapacityKwh != nil {
		return *s.Vehicle.CapacityKwh
	}
	return DefaultCapacityKwh
}

// EnergyKwh is the requested amount expressed in kWh.
func (s *Session) EnergyKwh() int {
	if s.Energy.Mode == enums.EnergyModePercent {
		return roundHalfUp(float64(s.Energy.Value) / 100 * s.batteryCapacityKwh())
	}
	return s.Energy.Value
}

// EstimatedPriceDh is the rate-based estimate, before delivery fees.
func (s *Session) EstimatedPriceDh() int {
	if s.Energy.Mode == enums.EnergyModePercent {
		return roundHalfUp(float64(s.Energy.Value) / 100 * s.batteryCapacityKwh() * RatePerKwh)
	}
	return s.Energy.Value * RatePerKwh
}

// Tick is one slider mark. Major ticks land on multiples of ten.
type Tick struct {
	Value int  `json:"value"`
	Major bool `json:"major"`
}

// EnergyTicks lists the slider marks for a mode, one every five units.
func EnergyTicks(mode enums.EnergyMode) []Tick {
	min, max := EnergyBounds(mode)
	start := min
	if rem := start % 5; rem != 0 {
		start += 5 - rem
	}
	var ticks []Tick
	for v := start; v <= max; v += 5 {
		ticks = append(ticks, Tick{Value: v, Major: v%10 == 0})
	}
	return ticks
}
