package types

import "fmt"

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MapsURL renders the Google Maps link shared with the delivery crew.
func (p LatLng) MapsURL() string {
	return fmt.Sprintf("https://www.google.com/maps?q=%v,%v", p.Lat, p.Lng)
}
