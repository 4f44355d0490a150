package request

import (
	"encoding/json"
	"strings"

	"beautyverse-storefront/internal/domain/catalog"
	"beautyverse-storefront/internal/pkg/errs"
)

// CreateProductRequest binds from JSON or from a multipart form with an "image" file.
type CreateProductRequest struct {
	Name               string         `json:"name" form:"name"`
	Description        string         `json:"description" form:"description"`
	Price              catalog.Amount `json:"price" form:"price"`
	DiscountPercentage float64        `json:"discount_percentage" form:"discount_percentage"`
	Category           string         `json:"category" form:"category"`
	StockQuantity      int            `json:"stock_quantity" form:"stock_quantity"`
	ImageURL           string         `json:"image_url" form:"image_url"`
	FreeDelivery       bool           `json:"free_delivery" form:"free_delivery"`
}

func (r *CreateProductRequest) ToDomain() catalog.ProductDraft {
	return catalog.ProductDraft{
		Name:               r.Name,
		Description:        r.Description,
		Price:              r.Price,
		DiscountPercentage: r.DiscountPercentage,
		Category:           r.Category,
		StockQuantity:      r.StockQuantity,
		ImageURL:           r.ImageURL,
		FreeDelivery:       r.FreeDelivery,
	}
}

// RegisterArtistRequest is always multipart; availability_slots is a JSON array.
type RegisterArtistRequest struct {
	Name              string   `form:"name"`
	BrandName         string   `form:"brand_name"`
	Phone             string   `form:"phone"`
	WhatsappContact   string   `form:"whatsapp_contact"`
	Location          string   `form:"location"`
	Instagram         string   `form:"instagram"`
	TikTok            string   `form:"tiktok"`
	Bio               string   `form:"bio"`
	Specialties       []string `form:"specialties"`
	AvailabilitySlots string   `form:"availability_slots"`
}

func (r *RegisterArtistRequest) ToDomain() (catalog.ArtistDraft, error) {
	var slots []catalog.AvailabilitySlot
	if raw := strings.TrimSpace(r.AvailabilitySlots); raw != "" {
		if err := json.Unmarshal([]byte(raw), &slots); err != nil {
			return catalog.ArtistDraft{}, errs.Mark(errs.Wrap(err, "availability_slots"), errs.ErrValidation)
		}
	}
	return catalog.ArtistDraft{
		Name:            r.Name,
		BrandName:       r.BrandName,
		Phone:           r.Phone,
		WhatsappContact: r.WhatsappContact,
		Location:        r.Location,
		Instagram:       r.Instagram,
		TikTok:          r.TikTok,
		Bio:             r.Bio,
		Specialties:     r.Specialties,
		Slots:           slots,
	}, nil
}

type AddCategoryRequest struct {
	Kind string `json:"kind" binding:"required"`
	Name string `json:"name"`
}
