package api

import (
	"net/http"

	reqdto "hosteed/internal/handler/dto/request"
	resdto "hosteed/internal/handler/dto/response"
	"hosteed/internal/handler/httperr"
	"hosteed/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cost    queries.CostQueries
	pricing queries.PricingQueries
}

func NewBookingHandler(cost queries.CostQueries, pricing queries.PricingQueries) *BookingHandler {
	return &BookingHandler{cost: cost, pricing: pricing}
}

// @Summary Booking cost
// @Description Base total, extras and grand total for a stay in the requested currency
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CostQuoteRequest true "Stay and extras"
// @Success 200 {object} resdto.BookingCostResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/cost [post]
func (h *BookingHandler) Cost(c *gin.Context) {
	var req reqdto.CostQuoteRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	breakdown, err := h.cost.Quote(c.Request.Context(), in)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingCost(breakdown))
}

// @Summary Price quote
// @Description Per-night client price and commission split under the host's promotion priority
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.PriceQuoteRequest true "Stay"
// @Success 200 {object} resdto.PriceQuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/pricing/quote [post]
func (h *BookingHandler) Quote(c *gin.Context) {
	var req reqdto.PriceQuoteRequest
	if !bindJSON(c, &req) {
		return
	}
	start, err := reqdto.ParseDate(req.StartDate)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	end, err := reqdto.ParseDate(req.EndDate)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	quote, err := h.pricing.Quote(c.Request.Context(), req.PropertyID, start, end)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStayQuote(quote))
}
