package queries

import (
	"context"

	"hosteed/internal/domain/extra"
	"hosteed/internal/domain/geo"
	"hosteed/internal/domain/property"
	"hosteed/internal/infra"
	"hosteed/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPropertyNotFound = errs.New("property not found")

type NearbyProperty struct {
	Property   *property.Property
	DistanceKm float64
}

type PropertyDetails struct {
	Property *property.Property
	Extras   []*extra.Extra
}

//go:generate mockgen -source=property.go -destination=../../../tests/mock/queries/property.go -package=queriesmock
type PropertyQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PropertyDetails, error)
	// Nearby lists properties within radiusKm of (lat, lng), nearest first
	Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]NearbyProperty, error)
}

type propertyQueriesImpl struct {
	store  PropertyReadStore
	extras ExtraReadStore
}

func NewPropertyQueries(store PropertyReadStore, extras ExtraReadStore) PropertyQueries {
	return &propertyQueriesImpl{store: store, extras: extras}
}

func (q *propertyQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PropertyDetails, error) {
	p, err := findProperty(ctx, q.store, id)
	if err != nil {
		return nil, err
	}
	extras, err := q.extras.ListForProperty(ctx, id)
	if err != nil {
		return nil, err
	}
	return &PropertyDetails{Property: p, Extras: extras}, nil
}

func (q *propertyQueriesImpl) Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]NearbyProperty, error) {
	origin, err := geo.NewPoint(lat, lng)
	if err != nil {
		return nil, errs.Validation(err)
	}
	if radiusKm <= 0 {
		return nil, errs.Validation(geo.ErrInvalidRadius)
	}

	candidates, err := q.store.FindInBoundingBox(ctx, geo.NewBoundingBox(origin, radiusKm))
	if err != nil {
		return nil, err
	}

	matches, err := geo.FilterWithinRadius(origin, radiusKm, candidates)
	if err != nil {
		return nil, errs.Validation(err)
	}

	out := make([]NearbyProperty, len(matches))
	for i, m := range matches {
		out[i] = NearbyProperty{Property: m.Item, DistanceKm: m.DistanceKm}
	}
	return out, nil
}

func findProperty(ctx context.Context, store PropertyReadStore, id uuid.UUID) (*property.Property, error) {
	p, err := store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound(ErrPropertyNotFound)
		}
		return nil, err
	}
	return p, nil
}
