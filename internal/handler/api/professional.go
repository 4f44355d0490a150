package api

import (
	"net/http"

	"beautyverse-storefront/internal/domain/catalog"
	reqdto "beautyverse-storefront/internal/handler/dto/request"
	resdto "beautyverse-storefront/internal/handler/dto/response"
	"beautyverse-storefront/internal/handler/httperr"
	"beautyverse-storefront/internal/handler/middleware"
	"beautyverse-storefront/internal/pkg/ident"

	"github.com/gin-gonic/gin"
)

type ProfessionalHandler struct{}

func NewProfessionalHandler() *ProfessionalHandler {
	return &ProfessionalHandler{}
}

// @Summary List professionals
// @Tags professionals
// @Produce json
// @Param q query string false "Name, brand or location contains"
// @Param specialty query string false "Specialty"
// @Success 200 {array} resdto.ArtistResponse
// @Router /professionals [get]
func (h *ProfessionalHandler) List(c *gin.Context) {
	sf, ok := middleware.RequireStorefront(c)
	if !ok {
		return
	}
	f := catalog.ArtistFilter{Query: c.Query("q"), Specialty: c.Query("specialty")}
	artists, err := sf.Catalog.Artists(c.Request.Context(), f)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromArtists(artists))
}

// @Summary Get professional
// @Description Profile plus the slots that are neither booked on the backend nor reserved here
// @Tags professionals
// @Produce json
// @Param id path string true "Professional ID"
// @Success 200 {object} resdto.ArtistDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /professionals/{id} [get]
func (h *ProfessionalHandler) Get(c *gin.Context) {
	sf, ok := middleware.RequireStorefront(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	a, err := sf.Catalog.Artist(ctx, ident.ID(c.Param("id")))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	open, err := sf.Bookings.OpenSlots(ctx, a)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromArtistDetail(a, open))
}

// @Summary Register professional
// @Description Multipart with an optional "profile_picture" file
// @Tags professionals
// @Accept mpfd
// @Produce json
// @Success 201 {object} resdto.ArtistResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /professionals [post]
func (h *ProfessionalHandler) Register(c *gin.Context) {
	sf, ok := middleware.RequireStorefront(c)
	if !ok {
		return
	}
	var req reqdto.RegisterArtistRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	draft, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid availability slots", nil)
		return
	}
	picture, closePicture, err := formUpload(c, "profile_picture")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid picture upload", nil)
		return
	}
	defer closePicture()

	a, err := sf.Catalog.RegisterArtist(c.Request.Context(), draft, picture)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res := resdto.FromArtists([]catalog.Artist{a})[0]
	c.JSON(http.StatusCreated, res)
}

// @Summary Delete professional
// @Tags professionals
// @Param id path string true "Professional ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /professionals/{id} [delete]
func (h *ProfessionalHandler) Delete(c *gin.Context) {
	sf, ok := middleware.RequireStorefront(c)
	if !ok {
		return
	}
	if err := sf.Catalog.DeleteArtist(c.Request.Context(), ident.ID(c.Param("id"))); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
