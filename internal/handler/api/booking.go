package api

import (
	"net/http"

	reqdto "beautyverse-storefront/internal/handler/dto/request"
	resdto "beautyverse-storefront/internal/handler/dto/response"
	"beautyverse-storefront/internal/handler/httperr"
	"beautyverse-storefront/internal/handler/middleware"
	"beautyverse-storefront/internal/pkg/ident"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct{}

func NewBookingHandler() *BookingHandler {
	return &BookingHandler{}
}

// @Summary My bookings
// @Description Bookings of the logged-in user; stale is set when served from the offline copy
// @Tags bookings
// @Produce json
// @Success 200 {object} resdto.BookingListResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	sf, ok := middleware.RequireStorefront(c)
	if !ok {
		return
	}
	list, err := sf.Bookings.Fetch(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(list))
}

// @Summary Book a slot
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} booking.Booking
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	sf, ok := middleware.RequireStorefront(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	b, err := sf.Bookings.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/bookings/"+b.ID.String())
	c.JSON(http.StatusCreated, b)
}

// @Summary Cancel a booking
// @Description Remove the booking and free its slot
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	sf, ok := middleware.RequireStorefront(c)
	if !ok {
		return
	}
	if err := sf.Bookings.Cancel(c.Request.Context(), ident.ID(c.Param("id"))); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
