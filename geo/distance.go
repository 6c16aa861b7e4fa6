// SPDX-License-Identifier: MIT

// Package geo measures great-circle distances between stops and finds the
// stop nearest to a coordinate.
package geo

import (
	"github.com/golang/geo/s2"
)

// EarthRadiusMeters is the mean Earth radius used to turn angles into meters.
const EarthRadiusMeters = 6371008.8

// Point is a coordinate in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewPoint returns a Point from degrees.
func NewPoint(lat, lng float64) Point {
	return Point{Lat: lat, Lng: lng}
}

func (p Point) latLng() s2.LatLng {
	return s2.LatLngFromDegrees(p.Lat, p.Lng)
}

// Distance returns the great-circle distance from a to b in meters.
func Distance(a, b Point) float64 {
	return a.latLng().Distance(b.latLng()).Radians() * EarthRadiusMeters
}
