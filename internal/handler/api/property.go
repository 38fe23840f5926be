package api

import (
	"net/http"

	reqdto "hosteed/internal/handler/dto/request"
	resdto "hosteed/internal/handler/dto/response"
	"hosteed/internal/handler/httperr"
	"hosteed/internal/usecase/commands"
	"hosteed/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	q      queries.PropertyQueries
	extras commands.ExtraCommands
}

func NewPropertyHandler(q queries.PropertyQueries, extras commands.ExtraCommands) *PropertyHandler {
	return &PropertyHandler{q: q, extras: extras}
}

// @Summary Get property
// @Description Property with the extras it offers
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.PropertyDetailsResponse
// @Failure 404 {object} httperr.Response
// @Router /api/properties/{id} [get]
func (h *PropertyHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	details, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPropertyDetails(details))
}

// @Summary Nearby properties
// @Description Properties within radius_km of a point, nearest first
// @Tags properties
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius_km query number true "Radius in kilometres"
// @Success 200 {array} resdto.NearbyPropertyResponse
// @Failure 400 {object} httperr.Response
// @Router /api/properties/nearby [get]
func (h *PropertyHandler) Nearby(c *gin.Context) {
	var query reqdto.NearbyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", bindingDetail(err))
		return
	}
	items, err := h.q.Nearby(c.Request.Context(), *query.Lat, *query.Lng, *query.RadiusKm)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNearby(items))
}

// @Summary Create extra
// @Description Hosts create their own extras; admins may create global ones
// @Tags extras
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateExtraRequest true "Extra"
// @Success 201 {object} resdto.ExtraResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/extras [post]
func (h *PropertyHandler) CreateExtra(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.CreateExtraRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	e, err := h.extras.Create(c.Request.Context(), in, actor)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromExtra(e))
}

// @Summary Attach extra
// @Description Offer an extra on a property
// @Tags extras
// @Accept json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param request body reqdto.AttachExtraRequest true "Extra to attach"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/properties/{id}/extras [post]
func (h *PropertyHandler) AttachExtra(c *gin.Context) {
	propertyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.AttachExtraRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.extras.AttachToProperty(c.Request.Context(), propertyID, req.ExtraID, actor); err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}
