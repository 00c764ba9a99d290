package models

import "time"

// Coordinates is a resolved longitude/latitude pair. A Location either has a
// full pair or none at all; partially resolved coordinates never occur.
type Coordinates struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Location is a cached geocoding result keyed by the raw address text.
// Coords stays nil until the provider returns a match for the address.
type Location struct {
	Address     string       `json:"address"`
	Coords      *Coordinates `json:"coords,omitempty"`
	LastFetched time.Time    `json:"last_fetched"`
}

// NeedsRefresh reports whether the cached entry is stale, i.e. the address
// has never been resolved to coordinates.
func (l Location) NeedsRefresh() bool {
	return l.Coords == nil
}
