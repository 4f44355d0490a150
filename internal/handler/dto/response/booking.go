package response

import (
	"beautyverse-storefront/internal/domain/booking"
	"beautyverse-storefront/internal/usecase"
)

type BookingListResponse struct {
	Items         booking.List `json:"items"`
	UpcomingCount int          `json:"upcoming_count"`
	// Stale is set when the backend failed and the offline copy was served.
	Stale bool `json:"stale"`
}

func FromBookingList(l usecase.BookingList) *BookingListResponse {
	items := l.Items
	if items == nil {
		items = booking.List{}
	}
	return &BookingListResponse{
		Items:         items,
		UpcomingCount: items.UpcomingCount(),
		Stale:         l.Stale,
	}
}
