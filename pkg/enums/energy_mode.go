package enums

import "fmt"

// EnergyMode selects how the requested amount is expressed.
type EnergyMode string

const (
	EnergyModePercent EnergyMode = "percent"
	EnergyModeKwh     EnergyMode = "kwh"
)

var validEnergyModes = []EnergyMode{
	EnergyModePercent,
	EnergyModeKwh,
}

// String implements fmt.Stringer.
func (m EnergyMode) String() string {
	return string(m)
}

// IsValid reports whether the value is a known EnergyMode.
func (m EnergyMode) IsValid() bool {
	for _, candidate := range validEnergyModes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseEnergyMode converts raw input into an EnergyMode.
func ParseEnergyMode(value string) (EnergyMode, error) {
	for _, candidate := range validEnergyModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid energy mode %q", value)
}
