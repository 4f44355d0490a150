package booking

import (
	"strings"

	"beautyverse-storefront/internal/pkg/ident"
)

// RegistryKey holds the process-wide slot registry.
const RegistryKey = "beauty_verse_global_slots"

type Slot struct {
	ArtistID ident.ID `json:"artistId"`
	Date     string   `json:"date"`
	Time     string   `json:"time"`
}

func (s Slot) Equal(o Slot) bool {
	return s.ArtistID == o.ArtistID &&
		strings.TrimSpace(s.Date) == strings.TrimSpace(o.Date) &&
		strings.TrimSpace(s.Time) == strings.TrimSpace(o.Time)
}

// Registry is the set of reserved (artist, date, time) tuples.
type Registry []Slot

func (r Registry) Contains(s Slot) bool {
	for _, x := range r {
		if x.Equal(s) {
			return true
		}
	}
	return false
}

// Reserve fails with ErrSlotReserved when s is already taken.
func (r Registry) Reserve(s Slot) (Registry, error) {
	if r.Contains(s) {
		return r, ErrSlotReserved
	}
	out := make(Registry, 0, len(r)+1)
	out = append(out, r...)
	return append(out, s), nil
}

// Record adds s unless present. Used when the server has already decided.
func (r Registry) Record(s Slot) Registry {
	if next, err := r.Reserve(s); err == nil {
		return next
	}
	return r
}

func (r Registry) Release(s Slot) Registry {
	out := make(Registry, 0, len(r))
	for _, x := range r {
		if !x.Equal(s) {
			out = append(out, x)
		}
	}
	return out
}
