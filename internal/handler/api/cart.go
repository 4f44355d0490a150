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

type CartHandler struct{}

func NewCartHandler() *CartHandler {
	return &CartHandler{}
}

// @Summary Get cart
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	sf, ok := middleware.RequireStorefront(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromCart(sf.Cart))
}

// @Summary Add to cart
// @Description Add one unit of a product; repeated adds increment the quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddCartItemRequest true "Product to add"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	sf, ok := middleware.RequireStorefront(c)
	if !ok {
		return
	}
	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	ctx := c.Request.Context()
	product, err := sf.Catalog.Product(ctx, req.ProductID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if err := sf.Cart.Add(ctx, product); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCart(sf.Cart))
}

// @Summary Change quantity
// @Description Apply a signed delta; the quantity never goes below 1
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body reqdto.UpdateCartItemRequest true "Quantity delta"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Router /cart/items/{id} [patch]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	sf, ok := middleware.RequireStorefront(c)
	if !ok {
		return
	}
	var req reqdto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := sf.Cart.UpdateQuantity(c.Request.Context(), ident.ID(c.Param("id")), req.Delta); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCart(sf.Cart))
}

// @Summary Remove from cart
// @Tags cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.CartResponse
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sf, ok := middleware.RequireStorefront(c)
	if !ok {
		return
	}
	if err := sf.Cart.Remove(c.Request.Context(), ident.ID(c.Param("id"))); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCart(sf.Cart))
}

// @Summary Clear cart
// @Tags cart
// @Success 204 "No Content"
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	sf, ok := middleware.RequireStorefront(c)
	if !ok {
		return
	}
	if err := sf.Cart.Clear(c.Request.Context()); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
