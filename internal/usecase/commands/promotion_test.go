//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"hosteed/internal/domain/promotion"
	"hosteed/internal/pkg/errs"
	"hosteed/internal/usecase/commands"
	"hosteed/internal/usecase/shared"
	"hosteed/tests/common/builder"
	"hosteed/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PromotionCommandsTestSuite struct {
	suite.Suite
	ctx context.Context
	f   *fixture
	uc  commands.PromotionCommands
}

func (s *PromotionCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.f = newFixture()
	s.uc = commands.NewPromotionCommands(s.f.store, s.f.clock, time.UTC)
}

func TestPromotionCommandsSuite(t *testing.T) {
	suite.Run(t, new(PromotionCommandsTestSuite))
}

func (s *PromotionCommandsTestSuite) input(pct, start, end string) commands.CreatePromotionInput {
	return commands.CreatePromotionInput{
		PropertyID:         s.f.property.ID(),
		DiscountPercentage: builder.Dec(pct),
		StartDate:          builder.Day(start),
		EndDate:            builder.Day(end),
	}
}

func (s *PromotionCommandsTestSuite) TestCreateWithoutOverlap() {
	s.f.store.AddPromotion(builder.Promotion(s.f.property.ID(), "10", "2024-07-20", "2024-07-25", true))

	p, err := s.uc.Create(s.ctx, s.input("15", "2024-07-01", "2024-07-10"), s.f.host)
	s.Require().NoError(err)

	s.True(p.IsActive())
	s.True(p.Discount().Percentage().Equal(builder.Dec("15")))
	stored, ok := s.f.store.Promotion(p.ID())
	s.Require().True(ok)
	s.True(stored.IsActive())
	s.Equal([]string{shared.TopicPromotionActivated}, s.f.store.OutboxTopics())
}

// A -15% promotion on [07-01, 07-10] against an active -10% on [07-05, 07-15]
// is rejected until the host confirms replacing the older one.
func (s *PromotionCommandsTestSuite) TestOverlapRequiresConfirmation() {
	existing := builder.Promotion(s.f.property.ID(), "10", "2024-07-05", "2024-07-15", true)
	s.f.store.AddPromotion(existing)
	in := s.input("15", "2024-07-01", "2024-07-10")

	_, err := s.uc.Create(s.ctx, in, s.f.host)
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrConflict))

	var overlap *promotion.OverlapError
	s.Require().True(errs.As(err, &overlap))
	s.Require().Len(overlap.Overlapping, 1)
	s.Equal(existing.ID(), overlap.Overlapping[0].ID())
	s.Len(s.f.store.PromotionsFor(s.f.property.ID()), 1)
	s.Empty(s.f.store.Outbox())

	result, err := s.uc.ConfirmOverlap(s.ctx, in, []uuid.UUID{existing.ID()}, s.f.host)
	s.Require().NoError(err)
	s.Require().Len(result.Deactivated, 1)

	old, _ := s.f.store.Promotion(existing.ID())
	s.False(old.IsActive())
	created, _ := s.f.store.Promotion(result.Promotion.ID())
	s.True(created.IsActive())

	msgs := s.f.store.Outbox()
	s.Require().Len(msgs, 2)
	s.Equal(shared.TopicPromotionDeactivated, msgs[0].Topic)
	s.Equal(shared.TopicPromotionActivated, msgs[1].Topic)

	var ev commands.PromotionEvent
	s.Require().NoError(json.Unmarshal(msgs[0].Payload, &ev))
	s.Equal(existing.ID(), ev.PromotionID)
	s.Require().NotNil(ev.ReplacedBy)
	s.Equal(result.Promotion.ID(), *ev.ReplacedBy)
}

func (s *PromotionCommandsTestSuite) TestSharedBoundaryDayOverlaps() {
	s.f.store.AddPromotion(builder.Promotion(s.f.property.ID(), "10", "2024-07-10", "2024-07-15", true))

	_, err := s.uc.Create(s.ctx, s.input("15", "2024-07-01", "2024-07-10"), s.f.host)
	s.True(errs.Is(err, errs.ErrConflict))
}

func (s *PromotionCommandsTestSuite) TestInactivePromotionsDoNotOverlap() {
	s.f.store.AddPromotion(builder.Promotion(s.f.property.ID(), "10", "2024-07-05", "2024-07-15", false))

	_, err := s.uc.Create(s.ctx, s.input("15", "2024-07-01", "2024-07-10"), s.f.host)
	s.NoError(err)
}

func (s *PromotionCommandsTestSuite) TestConfirmMustListEveryOverlap() {
	first := builder.Promotion(s.f.property.ID(), "10", "2024-07-01", "2024-07-04", true)
	second := builder.Promotion(s.f.property.ID(), "20", "2024-07-08", "2024-07-12", true)
	s.f.store.AddPromotion(first)
	s.f.store.AddPromotion(second)

	_, err := s.uc.ConfirmOverlap(s.ctx, s.input("15", "2024-07-02", "2024-07-10"), []uuid.UUID{first.ID()}, s.f.host)
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrConflict))

	var overlap *promotion.OverlapError
	s.Require().True(errs.As(err, &overlap))
	s.Require().Len(overlap.Overlapping, 1)
	s.Equal(second.ID(), overlap.Overlapping[0].ID())

	stillActive, _ := s.f.store.Promotion(first.ID())
	s.True(stillActive.IsActive())
	s.Len(s.f.store.PromotionsFor(s.f.property.ID()), 2)
}

func (s *PromotionCommandsTestSuite) TestConfirmIsAtomic() {
	existing := builder.Promotion(s.f.property.ID(), "10", "2024-07-05", "2024-07-15", true)
	s.f.store.AddPromotion(existing)
	s.f.store.FailOn(memstore.OpPromotionCreate, errors.New("connection reset"))

	_, err := s.uc.ConfirmOverlap(s.ctx, s.input("15", "2024-07-01", "2024-07-10"), []uuid.UUID{existing.ID()}, s.f.host)
	s.Require().Error(err)

	old, _ := s.f.store.Promotion(existing.ID())
	s.True(old.IsActive())
	s.Len(s.f.store.PromotionsFor(s.f.property.ID()), 1)
	s.Empty(s.f.store.Outbox())
}

func (s *PromotionCommandsTestSuite) TestValidation() {
	cases := []struct {
		name string
		in   commands.CreatePromotionInput
	}{
		{name: "zero discount", in: s.input("0", "2024-07-01", "2024-07-10")},
		{name: "discount above 100", in: s.input("100.5", "2024-07-01", "2024-07-10")},
		{name: "end equals start", in: s.input("10", "2024-07-01", "2024-07-01")},
		{name: "start before today", in: s.input("10", "2024-05-31", "2024-07-10")},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.uc.Create(s.ctx, tc.in, s.f.host)
			s.True(errs.Is(err, errs.ErrValidation), "got %v", err)
		})
	}
}

func (s *PromotionCommandsTestSuite) TestCommissionViolationRejected() {
	typeID := uuid.New()
	prop := builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
		b.HostID = s.f.host.ID
		b.PropertyTypeID = &typeID
	}).BuildDomain()
	s.f.store.AddProperty(prop)
	s.f.store.AddRule(builder.TypedRule(typeID, builder.Rates("0.10", "95", "0.05", "0")))

	in := s.input("10", "2024-07-01", "2024-07-10")
	in.PropertyID = prop.ID()
	_, err := s.uc.Create(s.ctx, in, s.f.host)
	s.True(errs.Is(err, errs.ErrValidation))
	s.True(errs.Is(err, commands.ErrCommissionViolated))
	s.Empty(s.f.store.PromotionsFor(prop.ID()))
}

func (s *PromotionCommandsTestSuite) TestForbiddenForOtherHost() {
	_, err := s.uc.Create(s.ctx, s.input("10", "2024-07-01", "2024-07-10"), s.f.stranger)
	s.True(errs.Is(err, errs.ErrForbidden))
}

func (s *PromotionCommandsTestSuite) TestCancel() {
	p := builder.Promotion(s.f.property.ID(), "10", "2024-07-05", "2024-07-15", true)
	s.f.store.AddPromotion(p)

	s.Require().NoError(s.uc.Cancel(s.ctx, p.ID(), s.f.host))
	cancelled, _ := s.f.store.Promotion(p.ID())
	s.False(cancelled.IsActive())
	s.Equal([]string{shared.TopicPromotionCancelled}, s.f.store.OutboxTopics())

	err := s.uc.Cancel(s.ctx, p.ID(), s.f.host)
	s.True(errs.Is(err, errs.ErrConflict))
	s.True(errs.Is(err, commands.ErrPromotionInactive))

	err = s.uc.Cancel(s.ctx, uuid.New(), s.f.host)
	s.True(errs.Is(err, commands.ErrPromotionNotFound))
}

func TestPromotionCreateWithoutCommissionRule(t *testing.T) {
	f := newFixture()
	store := memstore.New()
	store.AddProperty(f.property)
	uc := commands.NewPromotionCommands(store, f.clock, time.UTC)

	_, err := uc.Create(context.Background(), commands.CreatePromotionInput{
		PropertyID:         f.property.ID(),
		DiscountPercentage: builder.Dec("10"),
		StartDate:          builder.Day("2024-07-01"),
		EndDate:            builder.Day("2024-07-10"),
	}, f.host)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrNotFound))
	assert.True(t, errs.Is(err, commands.ErrCommissionRuleNotFound))
}
