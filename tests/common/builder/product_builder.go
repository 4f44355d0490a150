//go:build unit || e2e

package builder

import (
	"beautyverse-storefront/internal/domain/catalog"
	reqdto "beautyverse-storefront/internal/handler/dto/request"
	"beautyverse-storefront/internal/pkg/ident"
)

type ProductBuilder struct {
	ID                 ident.ID
	Name               string
	Description        string
	Price              catalog.Amount
	DiscountPercentage float64
	FinalPrice         catalog.Amount
	Category           string
	ProductImage       string
	StockQuantity      int
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:            "1",
		Name:          "Velvet Lipstick",
		Description:   "Long-lasting matte finish",
		Price:         2000,
		Category:      "Makeup",
		ProductImage:  "https://api.example.com/media/lipstick.png",
		StockQuantity: 12,
	}
}

func (p *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(p)
	return p
}

func (p *ProductBuilder) BuildDomain() catalog.Product {
	return catalog.Product{
		ID:                 p.ID,
		Name:               p.Name,
		Description:        p.Description,
		Price:              p.Price,
		DiscountPercentage: p.DiscountPercentage,
		FinalPrice:         p.FinalPrice,
		Category:           p.Category,
		ProductImage:       p.ProductImage,
		StockQuantity:      p.StockQuantity,
	}
}

func (p *ProductBuilder) BuildCreateRequestDTO() reqdto.CreateProductRequest {
	return reqdto.CreateProductRequest{
		Name:               p.Name,
		Description:        p.Description,
		Price:              p.Price,
		DiscountPercentage: p.DiscountPercentage,
		Category:           p.Category,
		StockQuantity:      p.StockQuantity,
	}
}
