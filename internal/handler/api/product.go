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

type ProductHandler struct{}

func NewProductHandler() *ProductHandler {
	return &ProductHandler{}
}

// @Summary List products
// @Tags products
// @Produce json
// @Param q query string false "Name or description contains"
// @Param category query string false "Category name"
// @Success 200 {array} resdto.ProductResponse
// @Failure 502 {object} httperr.Response
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	sf, ok := middleware.RequireStorefront(c)
	if !ok {
		return
	}
	f := catalog.ProductFilter{Query: c.Query("q"), Category: c.Query("category")}
	products, err := sf.Catalog.Products(c.Request.Context(), f)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProducts(products))
}

// @Summary Product categories
// @Tags products
// @Produce json
// @Success 200 {array} catalog.Category
// @Router /products/categories [get]
func (h *ProductHandler) Categories(c *gin.Context) {
	sf, ok := middleware.RequireStorefront(c)
	if !ok {
		return
	}
	categories, err := sf.Catalog.ProductCategories(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// @Summary Get product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	sf, ok := middleware.RequireStorefront(c)
	if !ok {
		return
	}
	p, err := sf.Catalog.Product(c.Request.Context(), ident.ID(c.Param("id")))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProduct(p))
}

// @Summary Create product
// @Description JSON, or multipart with an optional "image" file
// @Tags products
// @Accept json,mpfd
// @Produce json
// @Param request body reqdto.CreateProductRequest true "Product"
// @Success 201 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	sf, ok := middleware.RequireStorefront(c)
	if !ok {
		return
	}
	var req reqdto.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	image, closeImage, err := formUpload(c, "image")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid image upload", nil)
		return
	}
	defer closeImage()

	p, err := sf.Catalog.CreateProduct(c.Request.Context(), req.ToDomain(), image)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromProduct(p))
}

// @Summary Delete product
// @Tags products
// @Param id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	sf, ok := middleware.RequireStorefront(c)
	if !ok {
		return
	}
	if err := sf.Catalog.DeleteProduct(c.Request.Context(), ident.ID(c.Param("id"))); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
