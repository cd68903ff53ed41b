package enums

import "fmt"

// LocationEventType identifies the map/GPS events the client reports
// while the location step is mounted.
type LocationEventType string

const (
	LocationEventMoveStart   LocationEventType = "move_start"
	LocationEventMoveEnd     LocationEventType = "move_end"
	LocationEventClick       LocationEventType = "click"
	LocationEventGPSFix      LocationEventType = "gps_fix"
	LocationEventGPSError    LocationEventType = "gps_error"
	LocationEventWatchUpdate LocationEventType = "watch_update"
	LocationEventWatchError  LocationEventType = "watch_error"
)

var validLocationEventTypes = []LocationEventType{
	LocationEventMoveStart,
	LocationEventMoveEnd,
	LocationEventClick,
	LocationEventGPSFix,
	LocationEventGPSError,
	LocationEventWatchUpdate,
	LocationEventWatchError,
}

// String implements fmt.Stringer.
func (t LocationEventType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known LocationEventType.
func (t LocationEventType) IsValid() bool {
	for _, candidate := range validLocationEventTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseLocationEventType converts raw input into a LocationEventType.
func ParseLocationEventType(value string) (LocationEventType, error) {
	for _, candidate := range validLocationEventTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid location event type %q", value)
}
