package api

import (
	"net/http"

	"hosteed/internal/domain/user"
	"hosteed/internal/handler/httperr"
	"hosteed/internal/handler/middleware"
	"hosteed/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var errUnauthenticated = errs.New("unauthenticated")

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func bindingDetail(err error) any {
	var verrs validator.ValidationErrors
	if !errs.As(err, &verrs) {
		return nil
	}
	out := make([]FieldError, len(verrs))
	for i, fe := range verrs {
		out[i] = FieldError{Field: fe.Field(), Rule: fe.Tag()}
	}
	return out
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", bindingDetail(err))
		return false
	}
	return true
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

func actorOf(c *gin.Context) (user.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return user.Actor{}, false
	}
	return actor, true
}
