//go:build e2e

package booking_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"hosteed/internal/domain/user"
	reqdto "hosteed/internal/handler/dto/request"
	resdto "hosteed/internal/handler/dto/response"
	"hosteed/tests/common/dbtest"
	"hosteed/tests/common/httptest"
	"hosteed/tests/e2e"
	"hosteed/tests/e2e/common/helper"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	availabilityURL   = "/api/availability/check"
	costURL           = "/api/bookings/cost"
	quoteURL          = "/api/pricing/quote"
	promotionsURL     = "/api/promotions"
	confirmOverlapURL = "/api/promotions/confirm-overlap"
	blackoutsURL      = "/api/properties/%s/blackouts"
	calendarURL       = "/api/properties/%s/calendar.ics"
	propertyPromosURL = "/api/properties/%s/promotions"
)

type BookingSuite struct {
	e2e.SharedSuite
	jwt *helper.JWTTestHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = helper.NewJWTTestHelper(s.Config.JWT)
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// nextYear keeps fixtures in the future whatever day the suite runs.
func nextYear(monthDay string) string {
	return fmt.Sprintf("%d-%s", time.Now().Year()+1, monthDay)
}

func day(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

type fixture struct {
	hostID     uuid.UUID
	propertyID uuid.UUID
	hostToken  string
}

func (s *BookingSuite) newProperty(t *testing.T, basePrice string) fixture {
	t.Helper()
	hostID := dbtest.CreateTestUser(t, s.DB, "host-"+uuid.NewString()+"@example.com", string(user.RoleHost))
	propertyID := dbtest.CreateTestProperty(t, s.DB, dbtest.PropertyFixture{
		HostID:    hostID,
		Title:     "Villa Nosy Be",
		BasePrice: basePrice,
		Lat:       -13.3986,
		Lng:       48.2650,
	})
	dbtest.CreateTestCommissionRule(t, s.DB, nil, "0.03", "0", "0.05", "0")
	return fixture{
		hostID:     hostID,
		propertyID: propertyID,
		hostToken:  s.jwt.GenerateToken(t, hostID, user.RoleHost),
	}
}

// =============================================================================
// Cost calculator
// =============================================================================

func (s *BookingSuite) TestBookingCost() {
	s.Run("per-person extra over three nights", func() {
		t := s.T()
		f := s.newProperty(t, "100")
		extraID := dbtest.CreateTestExtra(t, s.DB, "Dinner", "20", "90000", "PER_PERSON", f.propertyID)

		req := reqdto.CostQuoteRequest{
			PropertyID:       f.propertyID,
			StartDate:        nextYear("03-01"),
			EndDate:          nextYear("03-04"),
			GuestCount:       2,
			SelectedExtraIDs: []uuid.UUID{extraID},
			Currency:         "EUR",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, costURL, req, "")

		var got resdto.BookingCostResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		want := resdto.BookingCostResponse{
			NumberOfNights: 3,
			BaseTotal:      "300",
			ExtrasTotal:    "40",
			GrandTotal:     "340",
			Currency:       "EUR",
			PerExtraBreakdown: []resdto.ExtraCostResponse{{
				ExtraID:     extraID.String(),
				Name:        "Dinner",
				PricingType: "PER_PERSON",
				UnitPrice:   "20",
				Multiplier:  2,
				Cost:        "40",
			}},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("cost mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("extra not offered by the property", func() {
		t := s.T()
		f := s.newProperty(t, "100")
		foreign := dbtest.CreateTestExtra(t, s.DB, "Boat trip", "50", "220000", "PER_BOOKING")

		req := reqdto.CostQuoteRequest{
			PropertyID:       f.propertyID,
			StartDate:        nextYear("03-01"),
			EndDate:          nextYear("03-02"),
			GuestCount:       1,
			SelectedExtraIDs: []uuid.UUID{foreign},
			Currency:         "EUR",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, costURL, req, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})
}

// =============================================================================
// Availability
// =============================================================================

func (s *BookingSuite) TestAvailability() {
	s.Run("touching a reservation is free, overlapping is not", func() {
		t := s.T()
		f := s.newProperty(t, "100")
		guestID := dbtest.CreateTestUser(t, s.DB, "guest-"+uuid.NewString()+"@example.com", string(user.RoleGuest))
		reservationID := dbtest.CreateTestReservation(t, s.DB, f.propertyID, guestID,
			day(nextYear("06-10")), day(nextYear("06-15")), "confirmed")

		touch := reqdto.AvailabilityCheckRequest{PropertyID: f.propertyID, StartDate: nextYear("06-15"), EndDate: nextYear("06-18")}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, availabilityURL, touch, "")
		var free resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &free)
		require.True(t, free.Available)

		overlap := reqdto.AvailabilityCheckRequest{PropertyID: f.propertyID, StartDate: nextYear("06-14"), EndDate: nextYear("06-20")}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, availabilityURL, overlap, "")
		var busy resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &busy)
		require.False(t, busy.Available)
		require.NotNil(t, busy.ConflictingEntity)
		require.Equal(t, "reservation", busy.ConflictingEntity.Kind)
		require.Equal(t, reservationID.String(), busy.ConflictingEntity.ID)
	})

	s.Run("cancelled reservations do not block", func() {
		t := s.T()
		f := s.newProperty(t, "100")
		guestID := dbtest.CreateTestUser(t, s.DB, "guest-"+uuid.NewString()+"@example.com", string(user.RoleGuest))
		dbtest.CreateTestReservation(t, s.DB, f.propertyID, guestID, day(nextYear("06-10")), day(nextYear("06-15")), "cancelled")

		req := reqdto.AvailabilityCheckRequest{PropertyID: f.propertyID, StartDate: nextYear("06-11"), EndDate: nextYear("06-12")}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, availabilityURL, req, "")
		var got resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.True(t, got.Available)
	})
}

// =============================================================================
// Blackouts
// =============================================================================

func (s *BookingSuite) TestBlackouts() {
	s.Run("concurrent overlapping blackouts: exactly one wins", func() {
		t := s.T()
		f := s.newProperty(t, "100")
		url := fmt.Sprintf(blackoutsURL, f.propertyID)

		const attempts = 8
		codes := make([]int, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				req := reqdto.CreateBlackoutRequest{
					StartDate: nextYear("08-01"),
					EndDate:   nextYear(fmt.Sprintf("08-%02d", 3+i)),
					Title:     fmt.Sprintf("Maintenance %d", i),
				}
				codes[i] = httptest.PerformRequest(t, s.Router, http.MethodPost, url, req, f.hostToken).Code
			}()
		}
		wg.Wait()

		created, conflicts := 0, 0
		for _, c := range codes {
			switch c {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicts++
			}
		}
		require.Equal(t, 1, created, "codes: %v", codes)
		require.Equal(t, attempts-1, conflicts, "codes: %v", codes)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM blackout_periods WHERE property_id = $1", f.propertyID))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM outbox_events WHERE topic = 'availability.blackout_created'"))
	})

	s.Run("another host cannot block the property", func() {
		t := s.T()
		f := s.newProperty(t, "100")
		otherID := dbtest.CreateTestUser(t, s.DB, "other-"+uuid.NewString()+"@example.com", string(user.RoleHost))

		req := reqdto.CreateBlackoutRequest{StartDate: nextYear("08-01"), EndDate: nextYear("08-03"), Title: "Mine"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(blackoutsURL, f.propertyID), req,
			s.jwt.GenerateToken(t, otherID, user.RoleHost))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})

	s.Run("guests are rejected before reaching the handler", func() {
		t := s.T()
		f := s.newProperty(t, "100")
		guestID := dbtest.CreateTestUser(t, s.DB, "guest-"+uuid.NewString()+"@example.com", string(user.RoleGuest))

		req := reqdto.CreateBlackoutRequest{StartDate: nextYear("08-01"), EndDate: nextYear("08-03"), Title: "Nope"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(blackoutsURL, f.propertyID), req,
			s.jwt.GenerateToken(t, guestID, user.RoleGuest))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("exported calendar lists the blackout", func() {
		t := s.T()
		f := s.newProperty(t, "100")
		req := reqdto.CreateBlackoutRequest{StartDate: nextYear("09-01"), EndDate: nextYear("09-05"), Title: "Family visit"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(blackoutsURL, f.propertyID), req, f.hostToken)
		var created resdto.BlackoutResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(calendarURL, f.propertyID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		require.True(t, strings.HasPrefix(body, "BEGIN:VCALENDAR"))
		require.Contains(t, body, "SUMMARY:Family visit")
		require.Contains(t, body, "DTSTART;VALUE=DATE:"+strings.ReplaceAll(nextYear("09-01"), "-", ""))
	})
}

// =============================================================================
// Promotions
// =============================================================================

func (s *BookingSuite) TestPromotionOverlap() {
	s.Run("overlap is reported, then confirmed atomically", func() {
		t := s.T()
		f := s.newProperty(t, "100")

		existing := reqdto.CreatePromotionRequest{
			PropertyID:         f.propertyID,
			DiscountPercentage: "10",
			StartDate:          nextYear("07-05"),
			EndDate:            nextYear("07-15"),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promotionsURL, existing, f.hostToken)
		var old resdto.PromotionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &old)

		candidate := reqdto.CreatePromotionRequest{
			PropertyID:         f.propertyID,
			DiscountPercentage: "15",
			StartDate:          nextYear("07-01"),
			EndDate:            nextYear("07-10"),
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, promotionsURL, candidate, f.hostToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
		var conflict struct {
			Detail resdto.OverlapResponse `json:"detail"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conflict))
		require.Len(t, conflict.Detail.OverlappingPromotions, 1)
		require.Equal(t, old.ID, conflict.Detail.OverlappingPromotions[0].ID)

		confirm := reqdto.ConfirmOverlapRequest{
			CreatePromotionRequest: candidate,
			DeactivateIDs:          []uuid.UUID{uuid.MustParse(old.ID)},
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, confirmOverlapURL, confirm, f.hostToken)
		var confirmed resdto.ConfirmOverlapResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &confirmed)
		require.True(t, confirmed.Promotion.Active)
		require.Len(t, confirmed.Deactivated, 1)
		require.False(t, confirmed.Deactivated[0].Active)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(propertyPromosURL, f.propertyID), nil, "")
		var list resdto.PromotionListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)

		type row struct {
			DiscountPercentage string
			Active             bool
		}
		got := make([]row, len(list.Promotions))
		for i, p := range list.Promotions {
			got[i] = row{DiscountPercentage: p.DiscountPercentage, Active: p.Active}
		}
		want := []row{{"15", true}, {"10", false}}
		if diff := cmp.Diff(want, got, cmpopts.SortSlices(func(a, b row) bool { return a.DiscountPercentage < b.DiscountPercentage })); diff != "" {
			t.Errorf("promotions mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("disjoint promotions need no confirmation", func() {
		t := s.T()
		f := s.newProperty(t, "100")
		for _, r := range [][2]string{{"10-01", "10-05"}, {"10-06", "10-10"}} {
			req := reqdto.CreatePromotionRequest{
				PropertyID:         f.propertyID,
				DiscountPercentage: "10",
				StartDate:          nextYear(r[0]),
				EndDate:            nextYear(r[1]),
			}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, promotionsURL, req, f.hostToken)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}
	})

	s.Run("quote applies the promotion under the commission rule", func() {
		t := s.T()
		f := s.newProperty(t, "100")
		promo := reqdto.CreatePromotionRequest{
			PropertyID:         f.propertyID,
			DiscountPercentage: "20",
			StartDate:          nextYear("11-01"),
			EndDate:            nextYear("11-30"),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promotionsURL, promo, f.hostToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		req := reqdto.PriceQuoteRequest{PropertyID: f.propertyID, StartDate: nextYear("11-02"), EndDate: nextYear("11-03")}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, req, "")
		var quote resdto.PriceQuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &quote)
		require.Len(t, quote.Nights, 1)
		require.Equal(t, "80", quote.Nights[0].ClientBasePrice)
		require.Equal(t, "84", quote.ClientTotal)
		require.Equal(t, "77.6", quote.HostPayout)
	})
}
