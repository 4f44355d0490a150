package response

import (
	"beautyverse-storefront/internal/domain/cart"
	"beautyverse-storefront/internal/domain/catalog"
	"beautyverse-storefront/internal/usecase"
)

type CartResponse struct {
	Items      []cart.LineItem `json:"items"`
	TotalItems int             `json:"total_items"`
	Subtotal   catalog.Amount  `json:"subtotal"`
}

func FromCart(c usecase.Cart) *CartResponse {
	items := c.Items()
	if items == nil {
		items = []cart.LineItem{}
	}
	return &CartResponse{
		Items:      items,
		TotalItems: c.TotalItems(),
		Subtotal:   c.Subtotal().Round2(),
	}
}
