package enums

import "fmt"

// LocationLabel categorizes the address the charge is delivered to.
type LocationLabel string

const (
	LocationLabelHome  LocationLabel = "Home"
	LocationLabelWork  LocationLabel = "Work"
	LocationLabelOther LocationLabel = "Other"
)

var validLocationLabels = []LocationLabel{
	LocationLabelHome,
	LocationLabelWork,
	LocationLabelOther,
}

// String implements fmt.Stringer.
func (l LocationLabel) String() string {
	return string(l)
}

// IsValid reports whether the value is a known LocationLabel.
func (l LocationLabel) IsValid() bool {
	for _, candidate := range validLocationLabels {
		if candidate == l {
			return true
		}
	}
	return false
}

// ParseLocationLabel converts raw input into a LocationLabel.
func ParseLocationLabel(value string) (LocationLabel, error) {
	for _, candidate := range validLocationLabels {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid location label %q", value)
}
