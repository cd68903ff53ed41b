package enums

import "fmt"

// AcquisitionMode records which source produced the authoritative pin.
type AcquisitionMode string

const (
	AcquisitionModeGPS AcquisitionMode = "gps"
	AcquisitionModeMap AcquisitionMode = "map"
)

var validAcquisitionModes = []AcquisitionMode{
	AcquisitionModeGPS,
	AcquisitionModeMap,
}

// String implements fmt.Stringer.
func (m AcquisitionMode) String() string {
	return string(m)
}

// IsValid reports whether the value is a known AcquisitionMode.
func (m AcquisitionMode) IsValid() bool {
	for _, candidate := range validAcquisitionModes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseAcquisitionMode converts raw input into an AcquisitionMode.
func ParseAcquisitionMode(value string) (AcquisitionMode, error) {
	for _, candidate := range validAcquisitionModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid acquisition mode %q", value)
}
