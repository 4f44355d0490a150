package booking

import "beautyverse-storefront/internal/pkg/ident"

// List is a user's bookings, newest first.
type List []Booking

func (l List) Prepend(b Booking) List {
	out := make(List, 0, len(l)+1)
	out = append(out, b)
	return append(out, l...)
}

// Without returns the list minus the record with id, and that record.
func (l List) Without(id ident.ID) (List, Booking, bool) {
	out := make(List, 0, len(l))
	var removed Booking
	found := false
	for _, b := range l {
		if !found && b.ID == id {
			removed = b
			found = true
			continue
		}
		out = append(out, b)
	}
	return out, removed, found
}

func (l List) UpcomingCount() int {
	n := 0
	for _, b := range l {
		if b.Status.IsUpcoming() {
			n++
		}
	}
	return n
}

// StorageKey is the per-user key the list is persisted under.
func StorageKey(username string) string {
	return "bookings_" + username
}
