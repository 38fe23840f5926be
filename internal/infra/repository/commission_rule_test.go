//go:build unit

package repository_test

import (
	"context"
	"testing"

	"hosteed/internal/infra"
	"hosteed/internal/infra/pgq"
	"hosteed/internal/infra/repository"
	"hosteed/internal/pkg/pgconv"
	"hosteed/tests/common/builder"
	repositorymock "hosteed/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCommissionRuleRepository(t *testing.T) {
	ctx := context.Background()
	typeID := uuid.New()
	rule := builder.TypedRule(typeID, builder.Rates("0.12", "1.50", "0.08", "0"))

	t.Run("create keeps the property type scope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockCommissionRuleWriteQueries(ctrl)
		q.EXPECT().CreateCommissionRule(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgq.DBTX, arg pgq.CreateCommissionRuleParams) error {
				assert.Equal(t, pgconv.UUIDToPgtype(typeID), arg.PropertyTypeID)
				fixed, err := pgconv.DecimalFromNumeric(arg.HostCommissionFixed)
				require.NoError(t, err)
				assert.True(t, fixed.Equal(builder.Dec("1.50")))
				return nil
			})

		require.NoError(t, repository.NewCommissionRuleRepository(q, nil).Create(ctx, rule))
	})

	t.Run("create of a global rule stores NULL type", func(t *testing.T) {
		global := builder.GlobalRule(builder.Rates("0.10", "0", "0.05", "0"))
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockCommissionRuleWriteQueries(ctrl)
		q.EXPECT().CreateCommissionRule(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgq.DBTX, arg pgq.CreateCommissionRuleParams) error {
				assert.False(t, arg.PropertyTypeID.Valid)
				return nil
			})

		require.NoError(t, repository.NewCommissionRuleRepository(q, nil).Create(ctx, global))
	})

	t.Run("update of a missing rule is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockCommissionRuleWriteQueries(ctrl)
		q.EXPECT().UpdateCommissionRule(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := repository.NewCommissionRuleRepository(q, nil).Update(ctx, rule)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
