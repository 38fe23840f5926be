package httperr

import (
	"log/slog"
	"net/http"

	"hosteed/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Internal server error"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps an error category marker onto an HTTP status.
func StatusOf(err error) int {
	switch errs.Category(err) {
	case errs.ErrValidation:
		return http.StatusBadRequest
	case errs.ErrConflict:
		return http.StatusConflict
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithUsecaseError answers with the status of err's category. Internal failures are logged
// and never leak their message.
func AbortWithUsecaseError(c *gin.Context, err error, detail any) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(),
			"error", err,
			"stack", errs.ExtractStackLines(err, 12),
		)
		AbortWithError(c, status, err, internalMessage, nil)
		return
	}
	AbortWithError(c, status, err, err.Error(), detail)
}
