package request

import (
	"beautyverse-storefront/internal/domain/booking"
	"beautyverse-storefront/internal/pkg/ident"
)

type CreateBookingRequest struct {
	ArtistID    ident.ID `json:"artist_id"`
	ArtistName  string   `json:"artist_name"`
	ArtistImage string   `json:"artist_image"`
	Service     string   `json:"service"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
}

func (r *CreateBookingRequest) ToDomain() booking.Draft {
	return booking.Draft{
		ArtistID:    r.ArtistID,
		ArtistName:  r.ArtistName,
		ArtistImage: r.ArtistImage,
		Service:     r.Service,
		Date:        r.Date,
		Time:        r.Time,
	}
}
