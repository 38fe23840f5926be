package api

import (
	"net/http"
	"strconv"

	"hosteed/internal/domain/promotion"
	reqdto "hosteed/internal/handler/dto/request"
	resdto "hosteed/internal/handler/dto/response"
	"hosteed/internal/handler/httperr"
	"hosteed/internal/pkg/errs"
	"hosteed/internal/usecase/commands"
	"hosteed/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	cmds commands.PromotionCommands
	q    queries.PromotionQueries
}

func NewPromotionHandler(cmds commands.PromotionCommands, q queries.PromotionQueries) *PromotionHandler {
	return &PromotionHandler{cmds: cmds, q: q}
}

func abortWithOverlap(c *gin.Context, err error) {
	var overlap *promotion.OverlapError
	if errs.As(err, &overlap) {
		httperr.AbortWithUsecaseError(c, err, resdto.OverlapResponse{
			OverlappingPromotions: resdto.FromPromotions(overlap.Overlapping),
		})
		return
	}
	httperr.AbortWithUsecaseError(c, err, nil)
}

// @Summary Create promotion
// @Description Activate a promotion; 409 lists overlapping active promotions
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePromotionRequest true "Promotion"
// @Success 201 {object} resdto.PromotionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response{detail=resdto.OverlapResponse}
// @Router /api/promotions [post]
func (h *PromotionHandler) Create(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.CreatePromotionRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	p, err := h.cmds.Create(c.Request.Context(), in, actor)
	if err != nil {
		abortWithOverlap(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPromotion(p))
}

// @Summary Confirm overlap
// @Description Deactivate the listed overlapping promotions and activate the new one atomically
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConfirmOverlapRequest true "Promotion and ids to deactivate"
// @Success 201 {object} resdto.ConfirmOverlapResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response{detail=resdto.OverlapResponse}
// @Router /api/promotions/confirm-overlap [post]
func (h *PromotionHandler) ConfirmOverlap(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.ConfirmOverlapRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	result, err := h.cmds.ConfirmOverlap(c.Request.Context(), in, req.DeactivateIDs, actor)
	if err != nil {
		abortWithOverlap(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromConfirmOverlap(result))
}

// @Summary Cancel promotion
// @Tags promotions
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/promotions/{id} [delete]
func (h *PromotionHandler) Cancel(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), id, actor); err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List property promotions
// @Description Newest first with derived status and keyset pagination
// @Tags promotions
// @Produce json
// @Param id path string true "Property ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.PromotionListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/properties/{id}/promotions [get]
func (h *PromotionHandler) ListByProperty(c *gin.Context) {
	propertyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	items, next, err := h.q.ListByProperty(c.Request.Context(), propertyID, cursor, limit)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	resp := resdto.PromotionListResponse{Promotions: resdto.FromPromotionViews(items)}
	if next != nil {
		resp.NextCursor = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Validate promotion commission
// @Description Whether a discount keeps client commission and host payout non-negative
// @Tags promotions
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateCommissionRequest true "Discount to check"
// @Success 200 {object} resdto.ValidateCommissionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/promotions/validate-commission [post]
func (h *PromotionHandler) ValidateCommission(c *gin.Context) {
	var req reqdto.ValidateCommissionRequest
	if !bindJSON(c, &req) {
		return
	}
	pct, err := req.Discount()
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	valid, err := h.q.ValidateCommission(c.Request.Context(), req.PropertyID, pct)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.ValidateCommissionResponse{Valid: valid})
}
