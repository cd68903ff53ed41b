package enums

import "fmt"

// PickerLevel is the level the vehicle picker sheet is currently showing.
type PickerLevel string

const (
	PickerLevelBrand    PickerLevel = "brand"
	PickerLevelModel    PickerLevel = "model"
	PickerLevelCapacity PickerLevel = "capacity"
)

var validPickerLevels = []PickerLevel{
	PickerLevelBrand,
	PickerLevelModel,
	PickerLevelCapacity,
}

// String implements fmt.Stringer.
func (p PickerLevel) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PickerLevel.
func (p PickerLevel) IsValid() bool {
	for _, candidate := range validPickerLevels {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePickerLevel converts raw input into a PickerLevel.
func ParsePickerLevel(value string) (PickerLevel, error) {
	for _, candidate := range validPickerLevels {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid picker level %q", value)
}
