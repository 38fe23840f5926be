//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"hosteed/internal/domain/geo"
	"hosteed/internal/domain/property"
	"hosteed/internal/domain/shared/money"
	"hosteed/internal/infra"
	"hosteed/internal/infra/pgq"
	"hosteed/internal/infra/readstore"
	"hosteed/internal/pkg/pgconv"
	"hosteed/tests/common/builder"
	readstoremock "hosteed/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func propertyRow(id uuid.UUID) pgq.Property {
	typeID := uuid.New()
	return pgq.Property{
		ID:                id,
		HostID:            uuid.New(),
		PropertyTypeID:    pgconv.UUIDToPgtype(typeID),
		Title:             "Villa Ambatoloaka",
		BasePrice:         pgconv.DecimalToNumeric(builder.Dec("150000")),
		Currency:          "MGA",
		Latitude:          -13.3986,
		Longitude:         48.2650,
		PromotionPriority: "STACK_DISCOUNTS",
		CreatedAt:         pgconv.TimeToPgtype(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
}

func TestPropertyReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name       string
		row        pgq.Property
		returnErr  error
		expectKind infra.RepositoryErrorKind
		check      func(t *testing.T, p *property.Property)
	}{
		{
			name: "success: maps the host's policy and currency",
			row:  propertyRow(id),
			check: func(t *testing.T, p *property.Property) {
				assert.Equal(t, id, p.ID())
				assert.Equal(t, money.MGA, p.Currency())
				assert.Equal(t, property.PromotionPriority("STACK_DISCOUNTS"), p.PromotionPriority())
				assert.True(t, p.BasePrice().Equal(builder.Dec("150000")))
				assert.NotNil(t, p.PropertyTypeID())
			},
		},
		{
			name: "success: unknown policy falls back to the default",
			row: func() pgq.Property {
				r := propertyRow(id)
				r.PromotionPriority = "SOMETHING_ELSE"
				return r
			}(),
			check: func(t *testing.T, p *property.Property) {
				assert.Equal(t, property.DefaultPromotionPriority, p.PromotionPriority())
			},
		},
		{
			name:       "error: no rows",
			returnErr:  pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: unsupported currency in storage",
			row: func() pgq.Property {
				r := propertyRow(id)
				r.Currency = "USD"
				return r
			}(),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := readstoremock.NewMockPropertyViewQueries(ctrl)
			q.EXPECT().GetPropertyByID(ctx, gomock.Any(), id).Return(tc.row, tc.returnErr)

			p, err := readstore.NewPropertyReadStore(q, nil).FindByID(ctx, id)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			tc.check(t, p)
		})
	}
}

func TestPropertyReadStore_FindInBoundingBox(t *testing.T) {
	ctx := context.Background()
	box := geo.BoundingBox{MinLat: -14, MaxLat: -13, MinLng: 48, MaxLng: 49}

	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockPropertyViewQueries(ctrl)
	q.EXPECT().ListPropertiesInBox(ctx, gomock.Any(), pgq.ListPropertiesInBoxParams{
		MinLat: -14, MaxLat: -13, MinLng: 48, MaxLng: 49,
	}).Return([]pgq.Property{propertyRow(uuid.New()), propertyRow(uuid.New())}, nil)

	got, err := readstore.NewPropertyReadStore(q, nil).FindInBoundingBox(ctx, box)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestPropertyReadStore_SpecialPrices(t *testing.T) {
	ctx := context.Background()
	propertyID := uuid.New()
	stay := builder.Range("2024-07-01", "2024-07-04")

	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockPropertyViewQueries(ctrl)
	q.EXPECT().ListSpecialPrices(ctx, gomock.Any(), pgq.ListSpecialPricesParams{
		PropertyID: propertyID,
		StartDate:  pgconv.DateToPgtype(stay.Start),
		EndDate:    pgconv.DateToPgtype(stay.End),
	}).Return([]pgq.SpecialPrice{{
		ID:            uuid.New(),
		PropertyID:    propertyID,
		PricePerNight: pgconv.DecimalToNumeric(builder.Dec("80")),
		StartDate:     pgconv.DateToPgtype(builder.Day("2024-07-02")),
		EndDate:       pgconv.DateToPgtype(builder.Day("2024-07-02")),
		Active:        true,
	}}, nil)

	got, err := readstore.NewPropertyReadStore(q, nil).SpecialPrices(ctx, propertyID, stay)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].AppliesOn(builder.Day("2024-07-02")))
	assert.False(t, got[0].AppliesOn(builder.Day("2024-07-03")))
}
