package booking

import (
	"errors"
	"strings"

	"beautyverse-storefront/internal/pkg/errs"
	"beautyverse-storefront/internal/pkg/ident"
	"beautyverse-storefront/internal/pkg/patch"
)

var (
	ErrSlotReserved = errors.New("this slot is already reserved")
	ErrNotFound     = errors.New("booking not found")
)

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsUpcoming treats an unset status as upcoming.
func (s Status) IsUpcoming() bool {
	return s == "" || s == StatusUpcoming
}

// Booking is the persisted appointment record. JSON keys are camelCase to
// stay readable by clients that saved bookings before the BFF existed.
type Booking struct {
	ID          ident.ID `json:"id"`
	ArtistID    ident.ID `json:"artistId"`
	ArtistName  string   `json:"artistName,omitempty"`
	ArtistImage string   `json:"artistImage,omitempty"`
	Service     string   `json:"service,omitempty"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Status      Status   `json:"status,omitempty"`
}

func (b Booking) Slot() Slot {
	return Slot{ArtistID: b.ArtistID, Date: b.Date, Time: b.Time}
}

// Draft is what the booking form submits.
type Draft struct {
	ArtistID    ident.ID
	ArtistName  string
	ArtistImage string
	Service     string
	Date        string
	Time        string
}

func (d Draft) Validate() error {
	switch {
	case d.ArtistID.IsZero():
		return errs.Validation("Please choose a professional")
	case strings.TrimSpace(d.Date) == "":
		return errs.Validation("Please choose a date")
	case strings.TrimSpace(d.Time) == "":
		return errs.Validation("Please choose a time")
	}
	return nil
}

func (d Draft) Slot() Slot {
	return Slot{ArtistID: d.ArtistID, Date: d.Date, Time: d.Time}
}

// NewLocal builds a client-side record with a fresh id and the default status.
func NewLocal(d Draft) Booking {
	return Booking{
		ID:          ident.New(),
		ArtistID:    d.ArtistID,
		ArtistName:  d.ArtistName,
		ArtistImage: d.ArtistImage,
		Service:     d.Service,
		Date:        d.Date,
		Time:        d.Time,
		Status:      StatusUpcoming,
	}
}

// Normalize fills what a server record may omit from the draft that produced it.
func (b Booking) Normalize(d Draft) Booking {
	if b.ID.IsZero() {
		b.ID = ident.New()
	}
	if b.Status == "" {
		b.Status = StatusUpcoming
	}
	if b.ArtistID.IsZero() {
		b.ArtistID = d.ArtistID
	}
	b.ArtistName = patch.FirstNonEmpty(b.ArtistName, d.ArtistName)
	b.ArtistImage = patch.FirstNonEmpty(b.ArtistImage, d.ArtistImage)
	b.Service = patch.FirstNonEmpty(b.Service, d.Service)
	b.Date = patch.FirstNonEmpty(b.Date, d.Date)
	b.Time = patch.FirstNonEmpty(b.Time, d.Time)
	return b
}
