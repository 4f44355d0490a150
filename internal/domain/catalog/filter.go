package catalog

import "strings"

// ProductFilter is evaluated in memory over the full list on every call.
type ProductFilter struct {
	Query    string
	Category string
}

type ArtistFilter struct {
	Query     string
	Specialty string
}

func FilterProducts(products []Product, f ProductFilter) []Product {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if q != "" && !containsAny(q, p.Name, p.Description, p.ShortDescription, p.Category) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func FilterArtists(artists []Artist, f ArtistFilter) []Artist {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]Artist, 0, len(artists))
	for _, a := range artists {
		if f.Specialty != "" && !hasFold(a.Skills(), f.Specialty) {
			continue
		}
		if q != "" && !containsAny(q, a.Name, a.BrandName, a.Location, a.Bio) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func containsAny(needle string, haystacks ...string) bool {
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}

func hasFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
