package middleware

import (
	"log/slog"
	"net/http"

	"beautyverse-storefront/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the envelope for handlers that recorded an error without
// responding. Public errors carry their response in Meta; private ones are
// classified like any store error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		if last.IsType(gin.ErrorTypePublic) {
			if resp, ok := last.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		slog.Debug("unanswered handler error", "path", c.FullPath(), "error", last.Error())
		httperr.Abort(c, last.Err)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"panic", rec,
					"request_id", GetRequestID(c),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"client_id", c.GetString(ctxClientIDKey),
				)
				httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
			}
		}()
		c.Next()
	}
}
