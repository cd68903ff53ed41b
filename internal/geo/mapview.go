package geo

// Default viewport when no coordinate is known yet (Casablanca), and
// the tighter zoom used when snapping to a fresh GPS fix.
const (
	DefaultCenterLat = 33.5731
	DefaultCenterLng = -7.5898
	DefaultZoom      = 15
	SnapZoom         = 16
)
