package api

import (
	"net/http"

	reqdto "hosteed/internal/handler/dto/request"
	resdto "hosteed/internal/handler/dto/response"
	"hosteed/internal/handler/httperr"
	"hosteed/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CommissionHandler struct {
	cmds commands.CommissionRuleCommands
}

func NewCommissionHandler(cmds commands.CommissionRuleCommands) *CommissionHandler {
	return &CommissionHandler{cmds: cmds}
}

// @Summary Create commission rule
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CommissionRuleRequest true "Rule"
// @Success 201 {object} resdto.CommissionRuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/commission-rules [post]
func (h *CommissionHandler) Create(c *gin.Context) {
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.CommissionRuleRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	rule, err := h.cmds.Create(c.Request.Context(), in, actor)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCommissionRule(rule))
}

// @Summary Update commission rule
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Param request body reqdto.CommissionRuleRequest true "Rule"
// @Success 200 {object} resdto.CommissionRuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/commission-rules/{id} [put]
func (h *CommissionHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, ok := actorOf(c)
	if !ok {
		return
	}
	var req reqdto.CommissionRuleRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	rule, err := h.cmds.Update(c.Request.Context(), id, in, actor)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCommissionRule(rule))
}
