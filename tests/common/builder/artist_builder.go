//go:build unit || e2e

package builder

import (
	"beautyverse-storefront/internal/domain/catalog"
	"beautyverse-storefront/internal/pkg/ident"
)

type ArtistBuilder struct {
	ID          ident.ID
	Name        string
	BrandName   string
	Location    string
	Specialties []string
	Slots       []catalog.AvailabilitySlot
}

func NewArtistBuilder() *ArtistBuilder {
	return &ArtistBuilder{
		ID:          "7",
		Name:        "Grace",
		BrandName:   "Grace Glam",
		Location:    "Kigali",
		Specialties: []string{"Makeup", "Bridal"},
		Slots: []catalog.AvailabilitySlot{
			{Date: "2026-11-02", Time: "10:00"},
			{Date: "2026-11-02", Time: "14:00"},
		},
	}
}

func (a *ArtistBuilder) With(mutate func(*ArtistBuilder)) *ArtistBuilder {
	mutate(a)
	return a
}

func (a *ArtistBuilder) BuildDomain() catalog.Artist {
	return catalog.Artist{
		ID:             a.ID,
		Name:           a.Name,
		BrandName:      a.BrandName,
		Location:       a.Location,
		Specialties:    a.Specialties,
		AvailableSlots: a.Slots,
	}
}
