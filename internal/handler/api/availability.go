package api

import (
	"fmt"
	"net/http"

	"hosteed/internal/domain/availability"
	reqdto "hosteed/internal/handler/dto/request"
	resdto "hosteed/internal/handler/dto/response"
	"hosteed/internal/handler/httperr"
	"hosteed/internal/pkg/errs"
	"hosteed/internal/usecase/commands"
	"hosteed/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const maxCalendarBody = 1 << 20

type AvailabilityHandler struct {
	q        queries.AvailabilityQueries
	cmds     commands.BlackoutCommands
	importer commands.CalendarImportCommands
}

func NewAvailabilityHandler(
	q queries.AvailabilityQueries,
	cmds commands.BlackoutCommands,
	importer commands.CalendarImportCommands,
) *AvailabilityHandler {
	return &AvailabilityHandler{q: q, cmds: cmds, importer: importer}
}

// @Summary Check availability
// @Description Check whether a property is free for [startDate, endDate)
// @Tags availability
// @Accept json
// @Produce json
// @Param request body reqdto.AvailabilityCheckRequest true "Dates to check"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/availability/check [post]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	var req reqdto.AvailabilityCheckRequest
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
	result, err := h.q.Check(c.Request.Context(), req.PropertyID, start, end)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(result))
}

// @Summary Create blackout
// @Description Block dates on a property; fails with 409 when a reservation or blackout overlaps
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param request body reqdto.CreateBlackoutRequest true "Blackout"
// @Success 201 {object} resdto.BlackoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/properties/{id}/blackouts [post]
func (h *AvailabilityHandler) CreateBlackout(c *gin.Context) {
	propertyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.CreateBlackoutRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput(propertyID)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	b, err := h.cmds.Create(c.Request.Context(), in, actor)
	if err != nil {
		var conflict *availability.ConflictError
		if errs.As(err, &conflict) {
			httperr.AbortWithUsecaseError(c, err, resdto.AvailabilityResponse{
				Available:         false,
				ConflictingEntity: resdto.FromConflict(conflict),
			})
			return
		}
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBlackout(b))
}

// @Summary Delete blackout
// @Tags availability
// @Security BearerAuth
// @Param id path string true "Blackout ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/blackouts/{id} [delete]
func (h *AvailabilityHandler) DeleteBlackout(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id, actor); err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Export calendar
// @Description Upcoming reservations and blackouts as an iCalendar feed
// @Tags availability
// @Produce text/calendar
// @Param id path string true "Property ID"
// @Success 200 {string} string "iCalendar body"
// @Failure 404 {object} httperr.Response
// @Router /api/properties/{id}/calendar.ics [get]
func (h *AvailabilityHandler) ExportCalendar(c *gin.Context) {
	propertyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	body, err := h.q.ExportCalendar(c.Request.Context(), propertyID)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.ics"`, propertyID))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", body)
}

// @Summary Import calendar
// @Description Turn each VEVENT of an iCalendar body into a blackout; overlapping or past events are skipped
// @Tags availability
// @Accept text/calendar
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.CalendarImportResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/properties/{id}/calendar/import [post]
func (h *AvailabilityHandler) ImportCalendar(c *gin.Context) {
	propertyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxCalendarBody)
	result, err := h.importer.Import(c.Request.Context(), propertyID, body, actor)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromImportResult(result))
}
