package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"beautyverse-storefront/internal/domain/booking"
	"beautyverse-storefront/internal/infra/apiclient"
	"beautyverse-storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Abort maps a store or backend error to its status and message.
func Abort(c *gin.Context, err error) {
	status, msg, detail := Classify(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "path", c.FullPath(), "status", status, "stack", errs.ExtractStackLines(err, 8))
	}
	AbortWithError(c, status, err, msg, detail)
}

// Classify is ordered: domain sentinels first because stores mark backend
// errors with them (a 409 is both an APIError and ErrSlotReserved).
func Classify(err error) (status int, msg string, detail any) {
	var apiErr *apiclient.APIError
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, errs.UserMessage(err), nil
	case errs.Is(err, booking.ErrSlotReserved):
		return http.StatusConflict, booking.ErrSlotReserved.Error(), nil
	case errs.Is(err, booking.ErrNotFound):
		return http.StatusNotFound, "Booking not found", nil
	case errs.Is(err, errs.ErrNotAuthenticated):
		return http.StatusUnauthorized, "Please log in to continue", nil
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, "Admin access required", nil
	case errors.As(err, &apiErr):
		if apiErr.Status < 400 {
			return http.StatusBadGateway, apiErr.Message, apiErr.Data
		}
		return apiErr.Status, apiErr.Message, apiErr.Data
	case errs.Is(err, apiclient.ErrTransport):
		return http.StatusBadGateway, "Backend is unreachable", nil
	case errs.Is(err, apiclient.ErrUnexpectedPayload):
		return http.StatusBadGateway, "Backend sent an unexpected response", nil
	default:
		return http.StatusInternalServerError, "Internal server error", nil
	}
}
