package api

import (
	"net/http"

	"beautyverse-storefront/internal/domain/catalog"
	reqdto "beautyverse-storefront/internal/handler/dto/request"
	resdto "beautyverse-storefront/internal/handler/dto/response"
	"beautyverse-storefront/internal/handler/httperr"
	"beautyverse-storefront/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// @Summary Admin category lists
// @Description Both lists; a list that fails to load is empty
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.CategoriesResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	sf, ok := middleware.RequireStorefront(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	products, err := sf.Catalog.Categories(ctx, catalog.KindProducts)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	artists, err := sf.Catalog.Categories(ctx, catalog.KindArtists)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if products == nil {
		products = []catalog.Category{}
	}
	if artists == nil {
		artists = []catalog.Category{}
	}
	c.JSON(http.StatusOK, resdto.CategoriesResponse{Products: products, Artists: artists})
}

// @Summary Add category
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AddCategoryRequest true "Category"
// @Success 201 {object} catalog.Category
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/categories [post]
func (h *CategoryHandler) Add(c *gin.Context) {
	sf, ok := middleware.RequireStorefront(c)
	if !ok {
		return
	}
	var req reqdto.AddCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	kind, err := catalog.NewCategoryKind(req.Kind)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	cat, err := sf.Catalog.AddCategory(c.Request.Context(), kind, req.Name)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}
