//go:build unit || e2e

package builder

import (
	"beautyverse-storefront/internal/domain/booking"
	reqdto "beautyverse-storefront/internal/handler/dto/request"
	"beautyverse-storefront/internal/pkg/ident"
)

type BookingBuilder struct {
	ID         ident.ID
	ArtistID   ident.ID
	ArtistName string
	Service    string
	Date       string
	Time       string
	Status     booking.Status
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:         "42",
		ArtistID:   "7",
		ArtistName: "Grace",
		Service:    "Bridal makeup",
		Date:       "2026-11-02",
		Time:       "10:00",
		Status:     booking.StatusUpcoming,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() booking.Booking {
	return booking.Booking{
		ID:         b.ID,
		ArtistID:   b.ArtistID,
		ArtistName: b.ArtistName,
		Service:    b.Service,
		Date:       b.Date,
		Time:       b.Time,
		Status:     b.Status,
	}
}

func (b *BookingBuilder) BuildDraft() booking.Draft {
	return booking.Draft{
		ArtistID:   b.ArtistID,
		ArtistName: b.ArtistName,
		Service:    b.Service,
		Date:       b.Date,
		Time:       b.Time,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ArtistID:   b.ArtistID,
		ArtistName: b.ArtistName,
		Service:    b.Service,
		Date:       b.Date,
		Time:       b.Time,
	}
}
