package geo

import (
	"errors"
	"math"
	"sort"
)

const EarthRadiusKm = 6371.0

var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
	ErrInvalidRadius    = errors.New("radius must be positive")
)

type Point struct {
	Lat float64
	Lng float64
}

func NewPoint(lat, lng float64) (Point, error) {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return Point{}, ErrInvalidLatitude
	}
	if math.IsNaN(lng) || lng < -180 || lng > 180 {
		return Point{}, ErrInvalidLongitude
	}
	return Point{Lat: lat, Lng: lng}, nil
}

// Distance returns the great-circle distance in kilometres using the Haversine formula.
func Distance(a, b Point) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

type Located interface {
	Location() Point
}

type Match[T Located] struct {
	Item       T
	DistanceKm float64
}

// FilterWithinRadius keeps the items at most radiusKm from origin, nearest first.
func FilterWithinRadius[T Located](origin Point, radiusKm float64, items []T) ([]Match[T], error) {
	if math.IsNaN(radiusKm) || radiusKm <= 0 {
		return nil, ErrInvalidRadius
	}

	matches := make([]Match[T], 0, len(items))
	for _, item := range items {
		d := Distance(origin, item.Location())
		if d <= radiusKm {
			matches = append(matches, Match[T]{Item: item, DistanceKm: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].DistanceKm < matches[j].DistanceKm
	})
	return matches, nil
}

// BoundingBox is a coarse prefilter for storage queries; it always contains the radius circle.
type BoundingBox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

func NewBoundingBox(center Point, radiusKm float64) BoundingBox {
	dLat := radiusKm / EarthRadiusKm * 180 / math.Pi
	box := BoundingBox{
		MinLat: math.Max(center.Lat-dLat, -90),
		MaxLat: math.Min(center.Lat+dLat, 90),
		MinLng: -180,
		MaxLng: 180,
	}
	if box.MinLat == -90 || box.MaxLat == 90 {
		return box
	}

	cosLat := math.Cos(toRadians(math.Max(math.Abs(box.MinLat), math.Abs(box.MaxLat))))
	dLng := dLat / cosLat
	if center.Lng-dLng < -180 || center.Lng+dLng > 180 {
		return box
	}
	box.MinLng = center.Lng - dLng
	box.MaxLng = center.Lng + dLng
	return box
}

func (b BoundingBox) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat && p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}
