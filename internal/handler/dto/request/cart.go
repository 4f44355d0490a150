package request

import "beautyverse-storefront/internal/pkg/ident"

type AddCartItemRequest struct {
	ProductID ident.ID `json:"product_id" binding:"required"`
}

// UpdateCartItemRequest carries a signed step; the quantity never drops below 1.
type UpdateCartItemRequest struct {
	Delta int `json:"delta" binding:"required"`
}
