package response

import "beautyverse-storefront/internal/domain/catalog"

type ProductResponse struct {
	catalog.Product
	EffectivePrice catalog.Amount `json:"effective_price"`
	DisplayImage   string         `json:"display_image"`
}

func FromProduct(p catalog.Product) *ProductResponse {
	return &ProductResponse{
		Product:        p,
		EffectivePrice: p.EffectivePrice(),
		DisplayImage:   p.Image(),
	}
}

func FromProducts(ps []catalog.Product) []*ProductResponse {
	res := make([]*ProductResponse, len(ps))
	for i, p := range ps {
		res[i] = FromProduct(p)
	}
	return res
}

type ArtistResponse struct {
	catalog.Artist
	Skills []string `json:"skills"`
}

func FromArtists(as []catalog.Artist) []*ArtistResponse {
	res := make([]*ArtistResponse, len(as))
	for i, a := range as {
		res[i] = &ArtistResponse{Artist: a, Skills: a.Skills()}
	}
	return res
}

type ArtistDetailResponse struct {
	ArtistResponse
	OpenSlots []catalog.AvailabilitySlot `json:"open_slots"`
}

func FromArtistDetail(a catalog.Artist, open []catalog.AvailabilitySlot) *ArtistDetailResponse {
	if open == nil {
		open = []catalog.AvailabilitySlot{}
	}
	return &ArtistDetailResponse{
		ArtistResponse: ArtistResponse{Artist: a, Skills: a.Skills()},
		OpenSlots:      open,
	}
}

type CategoriesResponse struct {
	Products []catalog.Category `json:"products"`
	Artists  []catalog.Category `json:"artists"`
}
