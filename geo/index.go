// SPDX-License-Identifier: MIT

package geo

import (
	"errors"
	"math"

	"github.com/tidwall/rtree"
)

// ErrEmptyIndex is returned by Nearest when nothing was inserted.
var ErrEmptyIndex = errors.New("geo: index is empty")

const (
	kmPerDegree = 111.32
	// initialRadiusKm is the first search box half-size; it doubles until a
	// hit or maxRadiusKm.
	initialRadiusKm = 0.5
	maxRadiusKm     = 2048
)

type entry struct {
	id    string
	point Point
}

// Index is an R-tree of stops keyed by vertex ID.
type Index struct {
	tr rtree.RTreeG[entry]
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{}
}

// Insert adds the stop id at p.
func (ix *Index) Insert(id string, p Point) {
	pt := [2]float64{p.Lng, p.Lat}
	ix.tr.Insert(pt, pt, entry{id: id, point: p})
}

// Len returns the number of stops in the index.
func (ix *Index) Len() int { return ix.tr.Len() }

// Nearest returns the ID of the stop closest to q and its distance in meters.
// Ties keep the stop found first.
//
// The search box around q grows from initialRadiusKm by doubling. Every stop
// is scanned once the box passes maxRadiusKm, or earlier when it would
// cross the antimeridian or reach a pole, where a lng/lat box no longer
// covers the search radius.
func (ix *Index) Nearest(q Point) (string, float64, error) {
	if ix.tr.Len() == 0 {
		return "", 0, ErrEmptyIndex
	}

	best, bestDist := "", math.Inf(1)
	consider := func(_, _ [2]float64, e entry) bool {
		if d := Distance(q, e.point); d < bestDist {
			best, bestDist = e.id, d
		}

		return true
	}

	for r := initialRadiusKm; r <= maxRadiusKm; r *= 2 {
		lower, upper, ok := searchBox(q, r)
		if !ok {
			break
		}
		ix.tr.Search(lower, upper, consider)
		// a hit inside the box may still lose to a stop just outside its
		// corners, so accept it only within the inscribed radius
		if best != "" && bestDist <= r*1000 {
			return best, bestDist, nil
		}
	}
	ix.tr.Scan(consider)

	return best, bestDist, nil
}

// searchBox returns the [lng, lat] corners of a box extending at least
// radiusKm from q. The longitude half-width is sized at the box's pole-ward
// edge, where meridians are closest. ok is false when the box would reach a
// pole or cross ±180°.
func searchBox(q Point, radiusKm float64) (lower, upper [2]float64, ok bool) {
	dLat := radiusKm / kmPerDegree
	edge := math.Max(math.Abs(q.Lat-dLat), math.Abs(q.Lat+dLat))
	if edge >= 90 {
		return lower, upper, false
	}
	dLng := radiusKm / (kmPerDegree * math.Cos(edge*math.Pi/180))
	if q.Lng-dLng < -180 || q.Lng+dLng > 180 {
		return lower, upper, false
	}
	lower = [2]float64{q.Lng - dLng, q.Lat - dLat}
	upper = [2]float64{q.Lng + dLng, q.Lat + dLat}

	return lower, upper, true
}
