// SPDX-License-Identifier: MIT

// Package route converts a solved tour into what a map renderer needs:
// origin, destination, stopover waypoints and an encoded polyline.
package route

import (
	"errors"

	"github.com/twpayne/go-polyline"

	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/geo"
)

// ErrEmptyTour is returned by FromTour for a tour without vertices.
var ErrEmptyTour = errors.New("route: tour is empty")

// Waypoint is one stop of the route.
type Waypoint struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Location geo.Point `json:"location"`
	Stopover bool      `json:"stopover"`
}

// Leg is the straight-line hop between consecutive stops.
type Leg struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Meters float64 `json:"meters"`
}

// Route is a renderer request.
type Route struct {
	Origin      geo.Point  `json:"origin"`
	Destination geo.Point  `json:"destination"`
	Waypoints   []Waypoint `json:"waypoints"`
	Legs        []Leg      `json:"legs"`
	Meters      float64    `json:"meters"`
	Polyline    string     `json:"polyline"`
}

// FromTour builds the Route for vertices in tour order: the origin is the
// first vertex, the destination the last, and every vertex, both ends
// included, is a stopover waypoint.
func FromTour(vertices []core.Vertex) (Route, error) {
	if len(vertices) == 0 {
		return Route{}, ErrEmptyTour
	}

	r := Route{
		Origin:      pointOf(vertices[0]),
		Destination: pointOf(vertices[len(vertices)-1]),
		Waypoints:   make([]Waypoint, 0, len(vertices)),
		Legs:        make([]Leg, 0, len(vertices)-1),
	}
	coords := make([][]float64, 0, len(vertices))
	for i, v := range vertices {
		p := pointOf(v)
		r.Waypoints = append(r.Waypoints, Waypoint{ID: v.ID, Name: v.Name, Location: p, Stopover: true})
		coords = append(coords, []float64{p.Lat, p.Lng})
		if i > 0 {
			leg := Leg{From: vertices[i-1].ID, To: v.ID, Meters: geo.Distance(pointOf(vertices[i-1]), p)}
			r.Legs = append(r.Legs, leg)
			r.Meters += leg.Meters
		}
	}
	r.Polyline = string(polyline.EncodeCoords(coords))

	return r, nil
}

// Decode returns the coordinates encoded in r.Polyline as points.
func (r Route) Decode() ([]geo.Point, error) {
	coords, _, err := polyline.DecodeCoords([]byte(r.Polyline))
	if err != nil {
		return nil, err
	}
	out := make([]geo.Point, 0, len(coords))
	for _, c := range coords {
		out = append(out, geo.NewPoint(c[0], c[1]))
	}

	return out, nil
}

func pointOf(v core.Vertex) geo.Point {
	return geo.NewPoint(v.Lat, v.Lng)
}
