package catalog

import (
	"bytes"
	"encoding/json"
	"strings"

	"beautyverse-storefront/internal/pkg/errs"
	"beautyverse-storefront/internal/pkg/ident"
)

type CategoryKind string

const (
	KindProducts CategoryKind = "products"
	KindArtists  CategoryKind = "artists"
)

func (k CategoryKind) IsValid() bool {
	return k == KindProducts || k == KindArtists
}

func NewCategoryKind(s string) (CategoryKind, error) {
	k := CategoryKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", errs.Validation("Category type must be products or artists")
	}
	return k, nil
}

type Category struct {
	ID   ident.ID `json:"id,omitempty"`
	Name string   `json:"name"`
}

// UnmarshalJSON also accepts a bare name, which some list endpoints return.
func (c *Category) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*c = Category{Name: name}
		return nil
	}
	type plain Category
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = Category(p)
	return nil
}

// Specialties the artist form offers, matching the backend model choices.
var Specialties = []string{
	"Makeup", "Hair", "Nails", "Spa & Massage",
	"Skincare", "Henna", "Barber", "Lashes & Brows",
}
