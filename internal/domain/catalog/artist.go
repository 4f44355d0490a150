package catalog

import (
	"strings"

	"beautyverse-storefront/internal/pkg/errs"
	"beautyverse-storefront/internal/pkg/ident"
)

type AvailabilitySlot struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	IsBooked bool   `json:"is_booked,omitempty"`
}

type Artist struct {
	ID              ident.ID           `json:"id"`
	Name            string             `json:"name"`
	BrandName       string             `json:"brand_name,omitempty"`
	Phone           string             `json:"phone,omitempty"`
	WhatsappContact string             `json:"whatsapp_contact,omitempty"`
	Location        string             `json:"location,omitempty"`
	Instagram       string             `json:"instagram,omitempty"`
	TikTok          string             `json:"tiktok,omitempty"`
	Bio             string             `json:"bio,omitempty"`
	ProfilePicture  string             `json:"profile_picture,omitempty"`
	Specialties     []string           `json:"specialties,omitempty"`
	Categories      []string           `json:"categories,omitempty"`
	AvailableSlots  []AvailabilitySlot `json:"available_slots,omitempty"`
}

// Skills merges specialties and categories; the backend has used both names.
func (a Artist) Skills() []string {
	seen := make(map[string]struct{}, len(a.Specialties)+len(a.Categories))
	var out []string
	for _, s := range append(append([]string{}, a.Specialties...), a.Categories...) {
		if _, ok := seen[s]; ok || s == "" {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// FreeSlots drops the slots the backend already marks as booked.
func (a Artist) FreeSlots() []AvailabilitySlot {
	out := make([]AvailabilitySlot, 0, len(a.AvailableSlots))
	for _, s := range a.AvailableSlots {
		if !s.IsBooked {
			out = append(out, s)
		}
	}
	return out
}

// ArtistDraft is the "become an artist" form.
type ArtistDraft struct {
	Name            string
	BrandName       string
	Phone           string
	WhatsappContact string
	Location        string
	Instagram       string
	TikTok          string
	Bio             string
	Specialties     []string
	Slots           []AvailabilitySlot
}

func (d ArtistDraft) Validate() error {
	switch {
	case strings.TrimSpace(d.Name) == "":
		return errs.Validation("Artist name is required")
	case strings.TrimSpace(d.Location) == "":
		return errs.Validation("Location is required")
	}
	for _, s := range d.Slots {
		if s.Date == "" || s.Time == "" {
			return errs.Validation("Every availability slot needs a date and a time")
		}
	}
	return nil
}
