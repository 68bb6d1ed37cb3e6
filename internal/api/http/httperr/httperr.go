// Package httperr renders domain errors at the HTTP boundary.
package httperr

import (
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/logging"
	"github.com/gin-gonic/gin"
)

var ErrMalformedBody = apperr.New(apperr.InvalidInput, "invalid request body")

// Write aborts the request with {"error","kind"} and the status for err's kind.
// Internal errors are logged and replaced by a generic message.
func Write(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.Internal {
		logging.NewLogger(c.Request.Context()).Error(c.Request.Method+" "+c.FullPath(), err)
	}
	c.AbortWithStatusJSON(apperr.HTTPStatus(kind), gin.H{
		"error": apperr.Message(err),
		"kind":  kind,
	})
}

// BindJSON decodes the body into dst and writes ErrMalformedBody on failure.
func BindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		Write(c, ErrMalformedBody)
		return false
	}
	return true
}
