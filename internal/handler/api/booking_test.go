//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"hosteed/internal/domain/commission"
	"hosteed/internal/domain/extra"
	"hosteed/internal/domain/pricing"
	"hosteed/internal/domain/promotion"
	"hosteed/internal/domain/property"
	"hosteed/internal/domain/shared/money"
	"hosteed/internal/handler/api"
	reqdto "hosteed/internal/handler/dto/request"
	resdto "hosteed/internal/handler/dto/response"
	"hosteed/internal/handler/validation"
	"hosteed/internal/pkg/errs"
	"hosteed/internal/usecase/queries"
	"hosteed/tests/common/builder"
	"hosteed/tests/common/httptest"
	"hosteed/tests/common/testutil"
	queriesmock "hosteed/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockCost    *queriesmock.MockCostQueries
	mockPricing *queriesmock.MockPricingQueries
}

func (s *BookingHandlerTestSuite) SetupSuite() {
	s.Require().NoError(validation.Register())
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCost = queriesmock.NewMockCostQueries(s.mockCtrl)
	s.mockPricing = queriesmock.NewMockPricingQueries(s.mockCtrl)
	h := api.NewBookingHandler(s.mockCost, s.mockPricing)

	s.router.POST("/bookings/cost", h.Cost)
	s.router.POST("/pricing/quote", h.Quote)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCost
// ================================================================================

func (s *BookingHandlerTestSuite) TestCost() {
	propertyID := uuid.New()
	cleaningID := uuid.New()
	reqBody := reqdto.CostQuoteRequest{
		PropertyID:       propertyID,
		StartDate:        "2024-07-01",
		EndDate:          "2024-07-04",
		GuestCount:       2,
		SelectedExtraIDs: []uuid.UUID{cleaningID},
		Currency:         "EUR",
	}
	breakdown := &pricing.BookingCostBreakdown{
		NumberOfNights: 3,
		BaseTotal:      builder.Dec("300"),
		ExtrasTotal:    builder.Dec("30"),
		GrandTotal:     builder.Dec("330"),
		Currency:       money.EUR,
		PerExtraBreakdown: []pricing.ExtraCost{{
			ExtraID:     cleaningID,
			Name:        "Cleaning",
			PricingType: extra.PricingPerDay,
			UnitPrice:   builder.Dec("10"),
			Multiplier:  3,
			Cost:        builder.Dec("30"),
		}},
	}

	s.Run("success: totals rendered as decimal strings", func() {
		s.mockCost.EXPECT().Quote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in queries.CostQuoteInput) (*pricing.BookingCostBreakdown, error) {
				s.Equal(propertyID, in.PropertyID)
				s.Equal(builder.Day("2024-07-01"), in.StartDate)
				s.Equal(builder.Day("2024-07-04"), in.EndDate)
				s.Equal(2, in.GuestCount)
				s.Equal(money.EUR, in.Currency)
				s.Equal([]uuid.UUID{cleaningID}, in.SelectedExtraIDs)
				return breakdown, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/cost", reqBody, "")
		var body resdto.BookingCostResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(3, body.NumberOfNights)
		s.Equal("300", body.BaseTotal)
		s.Equal("330", body.GrandTotal)
		s.Equal("EUR", body.Currency)
		s.Require().Len(body.PerExtraBreakdown, 1)
		s.Equal(cleaningID.String(), body.PerExtraBreakdown[0].ExtraID)
		s.Equal("PER_DAY", body.PerExtraBreakdown[0].PricingType)
		s.Equal(3, body.PerExtraBreakdown[0].Multiplier)
		s.Equal("30", body.PerExtraBreakdown[0].Cost)
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "guest count zero", mutate: testutil.Field("guestCount", 0)},
			{name: "unsupported currency", mutate: testutil.Field("currency", "USD")},
			{name: "missing currency", mutate: testutil.Field("currency", nil)},
			{name: "bad start date", mutate: testutil.Field("startDate", "2024-13-01")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/cost", body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 404 when an extra is not offered", func() {
		s.mockCost.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, errs.NotFound(errs.New("extra not found")))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/cost", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "extra not found")
	})
}

// ================================================================================
// TestQuote
// ================================================================================

func (s *BookingHandlerTestSuite) TestQuote() {
	propertyID := uuid.New()
	reqBody := reqdto.PriceQuoteRequest{PropertyID: propertyID, StartDate: "2024-07-01", EndDate: "2024-07-02"}

	promo := builder.Promotion(propertyID, "20", "2024-07-01", "2024-07-10", true)
	quote := &promotion.StayQuote{
		Policy:             property.PriorityPromotionFirst,
		Currency:           money.EUR,
		ClientBaseTotal:    builder.Dec("80"),
		ClientCommission:   builder.Dec("4"),
		ClientTotal:        builder.Dec("84"),
		HostCommission:     builder.Dec("2.4"),
		HostPayout:         builder.Dec("77.6"),
		PlatformCommission: builder.Dec("6.4"),
		Nights: []promotion.Quote{{
			Date:             builder.Day("2024-07-01"),
			BasePrice:        builder.Dec("100"),
			AppliedPromotion: promo,
			Commission: commission.Breakdown{
				Price:              builder.Dec("80"),
				ClientCommission:   builder.Dec("4"),
				ClientPrice:        builder.Dec("84"),
				HostCommission:     builder.Dec("2.4"),
				HostPayout:         builder.Dec("77.6"),
				PlatformCommission: builder.Dec("6.4"),
			},
		}},
	}

	s.Run("success: nightly split with the applied promotion", func() {
		s.mockPricing.EXPECT().Quote(gomock.Any(), propertyID, builder.Day("2024-07-01"), builder.Day("2024-07-02")).
			Return(quote, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/pricing/quote", reqBody, "")
		var body resdto.PriceQuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("PROMOTION_FIRST", body.Policy)
		s.Equal("84", body.ClientTotal)
		s.Equal("77.6", body.HostPayout)
		s.Require().Len(body.Nights, 1)
		night := body.Nights[0]
		s.Equal("2024-07-01", night.Date)
		s.Equal("100", night.BasePrice)
		s.Require().NotNil(night.AppliedPromotionID)
		s.Equal(promo.ID().String(), *night.AppliedPromotionID)
		s.Nil(night.AppliedSpecialPriceID)
		s.Equal("80", night.ClientBasePrice)
		s.Equal("84", night.ClientPrice)
	})

	s.Run("error: 404 when no commission rule applies", func() {
		s.mockPricing.EXPECT().Quote(gomock.Any(), propertyID, gomock.Any(), gomock.Any()).
			Return(nil, errs.NotFound(errs.New("no active commission rule")))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/pricing/quote", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "commission rule")
	})
}
