//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"hosteed/internal/infra"
	"hosteed/internal/infra/pgq"
	"hosteed/internal/infra/readstore"
	"hosteed/internal/pkg/pgconv"
	"hosteed/tests/common/builder"
	readstoremock "hosteed/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func promotionRow(propertyID uuid.UUID, pct, start, end string, active bool, createdAt time.Time) pgq.Promotion {
	return pgq.Promotion{
		ID:                 uuid.New(),
		PropertyID:         propertyID,
		DiscountPercentage: pgconv.DecimalToNumeric(builder.Dec(pct)),
		StartDate:          pgconv.DateToPgtype(builder.Day(start)),
		EndDate:            pgconv.DateToPgtype(builder.Day(end)),
		Active:             active,
		CreatedBy:          uuid.New(),
		CreatedAt:          pgconv.TimeToPgtype(createdAt),
		UpdatedAt:          pgconv.TimeToPgtype(createdAt),
	}
}

func TestPromotionReadStore_Keyset(t *testing.T) {
	ctx := context.Background()
	propertyID := uuid.New()
	lastID := uuid.New()
	lastAt := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockPromotionViewQueries(ctrl)
	q.EXPECT().ListPromotionsKeyset(ctx, gomock.Any(), pgq.ListPromotionsKeysetParams{
		PropertyID: propertyID,
		CreatedAt:  pgconv.TimeToPgtype(lastAt),
		ID:         lastID,
		Limit:      3,
	}).Return([]pgq.Promotion{
		promotionRow(propertyID, "10", "2024-07-01", "2024-07-10", true, lastAt.Add(-time.Hour)),
		promotionRow(propertyID, "25", "2024-08-01", "2024-08-05", false, lastAt.Add(-2*time.Hour)),
	}, nil)

	got, err := readstore.NewPromotionReadStore(q, nil).ListByPropertyKeyset(ctx, propertyID, lastAt, lastID, 3)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].IsActive())
	assert.False(t, got[1].IsActive())
	assert.Equal(t, "25", got[1].Discount().Percentage().String())
}

func TestPromotionReadStore_ActiveCoveringUsesLastNight(t *testing.T) {
	ctx := context.Background()
	propertyID := uuid.New()
	stay := builder.Range("2024-07-01", "2024-07-04")

	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockPromotionViewQueries(ctrl)
	q.EXPECT().ListActivePromotionsOverlapping(ctx, gomock.Any(), pgq.ListActivePromotionsOverlappingParams{
		PropertyID: propertyID,
		StartDate:  pgconv.DateToPgtype(builder.Day("2024-07-01")),
		EndDate:    pgconv.DateToPgtype(builder.Day("2024-07-03")),
	}).Return(nil, nil)

	got, err := readstore.NewPromotionReadStore(q, nil).ActiveCovering(ctx, propertyID, stay)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPromotionReadStore_CorruptRowIsAFailure(t *testing.T) {
	ctx := context.Background()
	propertyID := uuid.New()
	row := promotionRow(propertyID, "10", "2024-07-01", "2024-07-10", true, time.Now())
	row.DiscountPercentage = pgconv.DecimalToNumeric(builder.Dec("150"))

	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockPromotionViewQueries(ctrl)
	q.EXPECT().GetPromotionByID(ctx, gomock.Any(), row.ID).Return(row, nil)

	_, err := readstore.NewPromotionReadStore(q, nil).FindByID(ctx, row.ID)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
