package catalog

import (
	"strings"

	"beautyverse-storefront/internal/pkg/errs"
	"beautyverse-storefront/internal/pkg/ident"
	"beautyverse-storefront/internal/pkg/patch"
)

type Product struct {
	ID                 ident.ID `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description,omitempty"`
	ShortDescription   string   `json:"short_description,omitempty"`
	Price              Amount   `json:"price"`
	DiscountPrice      Amount   `json:"discount_price,omitempty"`
	FinalPrice         Amount   `json:"final_price,omitempty"`
	DiscountPercentage float64  `json:"discount_percentage,omitempty"`
	Category           string   `json:"category,omitempty"`
	ProductImage       string   `json:"product_image,omitempty"`
	ImageURL           string   `json:"image_url,omitempty"`
	StockQuantity      int      `json:"stock_quantity,omitempty"`
	FreeDelivery       bool     `json:"free_delivery,omitempty"`
	ShopLocation       string   `json:"shop_location,omitempty"`
	DeliveryOption     string   `json:"delivery_option,omitempty"`
}

// EffectivePrice prefers the server-computed final price, then the discount
// price, then the list price. Non-positive values count as absent.
func (p Product) EffectivePrice() Amount {
	return EffectivePrice(p.Price, p.DiscountPrice, p.FinalPrice)
}

func EffectivePrice(price, discount, final Amount) Amount {
	switch {
	case final.IsPositive():
		return final
	case discount.IsPositive():
		return discount
	default:
		return price
	}
}

// HasDiscount is true when a discount price undercuts the list price.
func (p Product) HasDiscount() bool {
	return p.DiscountPrice.IsPositive() && p.DiscountPrice < p.Price
}

// Image returns the uploaded image, falling back to the external URL.
func (p Product) Image() string {
	return patch.FirstNonEmpty(p.ProductImage, p.ImageURL)
}

// ProductDraft is the add-product form.
type ProductDraft struct {
	Name               string
	Description        string
	Price              Amount
	DiscountPercentage float64
	Category           string
	StockQuantity      int
	ImageURL           string
	FreeDelivery       bool
}

func (d ProductDraft) Validate() error {
	switch {
	case strings.TrimSpace(d.Name) == "":
		return errs.Validation("Product name is required")
	case !d.Price.IsPositive():
		return errs.Validation("Price must be greater than zero")
	case strings.TrimSpace(d.Category) == "":
		return errs.Validation("Category is required")
	case d.DiscountPercentage < 0 || d.DiscountPercentage >= 100:
		return errs.Validation("Discount percentage must be between 0 and 100")
	case d.StockQuantity < 0:
		return errs.Validation("Stock quantity cannot be negative")
	}
	return nil
}

// DiscountPrice is price × (1 − pct/100) rounded to cents; zero without a discount.
func (d ProductDraft) DiscountPrice() Amount {
	if d.DiscountPercentage <= 0 {
		return 0
	}
	return d.Price.DiscountedBy(d.DiscountPercentage)
}
