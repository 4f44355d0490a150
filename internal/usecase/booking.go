package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"beautyverse-storefront/internal/domain/booking"
	"beautyverse-storefront/internal/domain/catalog"
	"beautyverse-storefront/internal/infra/apiclient"
	"beautyverse-storefront/internal/pkg/config"
	"beautyverse-storefront/internal/pkg/errs"
	"beautyverse-storefront/internal/pkg/ident"
	"beautyverse-storefront/internal/pkg/kv"
)

// remoteBooking is the backend's snake_case booking shape.
type remoteBooking struct {
	ID          ident.ID `json:"id"`
	Artist      ident.ID `json:"artist"`
	ArtistID    ident.ID `json:"artist_id"`
	ArtistName  string   `json:"artist_name"`
	ArtistImage string   `json:"artist_image"`
	Service     string   `json:"service"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Status      string   `json:"status"`
}

func (r remoteBooking) toDomain() booking.Booking {
	artist := r.ArtistID
	if artist.IsZero() {
		artist = r.Artist
	}
	return booking.Booking{
		ID:          r.ID,
		ArtistID:    artist,
		ArtistName:  r.ArtistName,
		ArtistImage: r.ArtistImage,
		Service:     r.Service,
		Date:        r.Date,
		Time:        r.Time,
		Status:      booking.Status(r.Status),
	}
}

type createBookingRequest struct {
	Artist  ident.ID `json:"artist"`
	Service string   `json:"service,omitempty"`
	Date    string   `json:"date"`
	Time    string   `json:"time"`
}

// BookingStore keeps one user's appointments. In remote mode the backend is
// the source of truth and the stored list is an offline cache; in local mode
// the stored list and the slot registry are authoritative.
type BookingStore struct {
	storage  kv.Storage
	registry *SlotRegistry
	backend  Backend
	session  Session
	mode     config.BookingMode
	logger   *slog.Logger

	mu sync.Mutex
}

func NewBookingStore(storage kv.Storage, registry *SlotRegistry, backend Backend, session Session, mode config.BookingMode, logger *slog.Logger) *BookingStore {
	if !mode.IsValid() {
		mode = config.BookingRemote
	}
	return &BookingStore{
		storage:  storage,
		registry: registry,
		backend:  backend,
		session:  session,
		mode:     mode,
		logger:   logger,
	}
}

func (s *BookingStore) username() (string, bool) {
	id, ok := s.session.Current()
	if !ok || id.Username == "" {
		return "", false
	}
	return id.Username, true
}

func (s *BookingStore) loadCache(ctx context.Context, username string) (booking.List, error) {
	var list booking.List
	if _, err := kv.GetJSON(ctx, s.storage, booking.StorageKey(username), &list); err != nil {
		if errs.Is(err, errs.ErrCorruptState) {
			s.logger.Warn("discarding unreadable bookings", "username", username, "error", err.Error())
			return booking.List{}, nil
		}
		return nil, errs.Wrap(err, "load bookings")
	}
	if list == nil {
		list = booking.List{}
	}
	return list, nil
}

func (s *BookingStore) saveCache(ctx context.Context, username string, list booking.List) error {
	return errs.Wrap(kv.SetJSON(ctx, s.storage, booking.StorageKey(username), list), "save bookings")
}

// Fetch returns the user's bookings. Without a logged-in user the list is empty.
func (s *BookingStore) Fetch(ctx context.Context) (BookingList, error) {
	username, ok := s.username()
	if !ok {
		return BookingList{Items: booking.List{}}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == config.BookingLocal {
		list, err := s.loadCache(ctx, username)
		if err != nil {
			return BookingList{}, err
		}
		return BookingList{Items: list}, nil
	}

	var raw json.RawMessage
	err := s.backend.Get(ctx, pathMyBookings, &raw)
	if err == nil {
		var list booking.List
		list, err = decodeBookings(raw)
		if err == nil {
			prev, cacheErr := s.loadCache(ctx, username)
			if cacheErr != nil {
				prev = booking.List{}
			}
			if err := s.saveCache(ctx, username, list); err != nil {
				s.logger.Warn("failed to refresh booking cache", "username", username, "error", err.Error())
			}
			s.syncSlots(ctx, prev, list)
			return BookingList{Items: list}, nil
		}
	}

	if status, ok := apiclient.StatusCode(err); ok && status == http.StatusUnauthorized {
		return BookingList{}, errs.Mark(err, errs.ErrNotAuthenticated)
	}
	s.logger.Warn("serving cached bookings", "username", username, "error", err.Error())
	list, cacheErr := s.loadCache(ctx, username)
	if cacheErr != nil {
		return BookingList{}, errs.Wrap(err, "fetch bookings")
	}
	return BookingList{Items: list, Stale: true}, nil
}

// syncSlots mirrors the server's view of this user's bookings into the
// registry: upcoming slots are held, slots of records the server no longer
// reports as upcoming are freed.
func (s *BookingStore) syncSlots(ctx context.Context, prev, next booking.List) {
	var held booking.Registry
	for _, b := range next {
		if b.Status.IsUpcoming() {
			held = held.Record(b.Slot())
		}
	}

	var freed booking.Registry
	for _, b := range append(prev, next...) {
		if slot := b.Slot(); !held.Contains(slot) {
			freed = freed.Record(slot)
		}
	}

	if len(held) > 0 {
		if err := s.registry.Record(ctx, held...); err != nil {
			s.logger.Warn("failed to record booked slots", "error", err.Error())
		}
	}
	if len(freed) > 0 {
		if err := s.registry.Release(ctx, freed...); err != nil {
			s.logger.Warn("failed to release freed slots", "error", err.Error())
		}
	}
}

// decodeBookings accepts a bare array or a {"results": [...]} page.
func decodeBookings(raw json.RawMessage) (booking.List, error) {
	list := booking.List{}
	if len(raw) == 0 {
		return list, nil
	}
	var items []remoteBooking
	if err := json.Unmarshal(raw, &items); err != nil {
		var page struct {
			Results []remoteBooking `json:"results"`
		}
		if err2 := json.Unmarshal(raw, &page); err2 != nil {
			return nil, errs.Mark(errs.Wrap(err, "decode bookings"), apiclient.ErrUnexpectedPayload)
		}
		items = page.Results
	}
	for _, it := range items {
		b := it.toDomain()
		if b.Status == "" {
			b.Status = booking.StatusUpcoming
		}
		list = append(list, b)
	}
	return list, nil
}

// Create books a slot. In local mode a slot already in the registry fails
// with booking.ErrSlotReserved. In remote mode the server decides: its 409 is
// booking.ErrSlotReserved, and a failed call leaves the list unchanged.
func (s *BookingStore) Create(ctx context.Context, d booking.Draft) (booking.Booking, error) {
	if err := d.Validate(); err != nil {
		return booking.Booking{}, err
	}
	username, ok := s.username()
	if !ok {
		return booking.Booking{}, errs.Mark(errs.New("login required to book"), errs.ErrNotAuthenticated)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == config.BookingLocal {
		return s.createLocal(ctx, username, d)
	}
	return s.createRemote(ctx, username, d)
}

func (s *BookingStore) createLocal(ctx context.Context, username string, d booking.Draft) (booking.Booking, error) {
	list, err := s.loadCache(ctx, username)
	if err != nil {
		return booking.Booking{}, err
	}
	if err := s.registry.Reserve(ctx, d.Slot()); err != nil {
		return booking.Booking{}, err
	}

	b := booking.NewLocal(d)
	if err := s.saveCache(ctx, username, list.Prepend(b)); err != nil {
		if relErr := s.registry.Release(ctx, d.Slot()); relErr != nil {
			s.logger.Error("failed to release slot", "error", relErr.Error())
		}
		return booking.Booking{}, err
	}
	s.logger.Info("booking created", "mode", s.mode, "id", b.ID.String(), "artist_id", b.ArtistID.String())
	return b, nil
}

func (s *BookingStore) createRemote(ctx context.Context, username string, d booking.Draft) (booking.Booking, error) {
	if taken, err := s.registry.Contains(ctx, d.Slot()); err == nil && taken {
		s.logger.Info("slot held locally, asking the backend", "artist_id", d.ArtistID.String(), "date", d.Date, "time", d.Time)
	}

	var created remoteBooking
	req := createBookingRequest{Artist: d.ArtistID, Service: d.Service, Date: d.Date, Time: d.Time}
	if err := s.backend.Post(ctx, pathCreateBooking, req, &created); err != nil {
		if status, ok := apiclient.StatusCode(err); ok && status == http.StatusConflict {
			if recErr := s.registry.Record(ctx, d.Slot()); recErr != nil {
				s.logger.Warn("failed to record conflicting slot", "error", recErr.Error())
			}
			return booking.Booking{}, errs.Mark(err, booking.ErrSlotReserved)
		}
		return booking.Booking{}, errs.Wrap(err, "create booking")
	}

	b := created.toDomain().Normalize(d)
	list, err := s.loadCache(ctx, username)
	if err != nil {
		s.logger.Warn("booking created but cache unreadable", "error", err.Error())
		list = booking.List{}
	}
	if err := s.saveCache(ctx, username, list.Prepend(b)); err != nil {
		s.logger.Warn("booking created but cache not updated", "error", err.Error())
	}
	if err := s.registry.Record(ctx, b.Slot()); err != nil {
		s.logger.Warn("failed to record booked slot", "error", err.Error())
	}
	s.logger.Info("booking created", "mode", s.mode, "id", b.ID.String(), "artist_id", b.ArtistID.String())
	return b, nil
}

// Cancel removes exactly the record with id and frees its slot.
func (s *BookingStore) Cancel(ctx context.Context, id ident.ID) error {
	username, ok := s.username()
	if !ok {
		return errs.Mark(errs.New("login required to cancel"), errs.ErrNotAuthenticated)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadCache(ctx, username)
	if err != nil {
		return err
	}
	rest, removed, found := list.Without(id)

	if s.mode == config.BookingLocal {
		if !found {
			return booking.ErrNotFound
		}
	} else if err := s.backend.Delete(ctx, cancelBookingPath(id), nil); err != nil {
		if status, ok := apiclient.StatusCode(err); !ok || status != http.StatusNotFound {
			return errs.Wrap(err, "cancel booking")
		}
		s.logger.Info("booking already gone on backend", "id", id.String())
	}

	if found {
		if err := s.saveCache(ctx, username, rest); err != nil {
			return err
		}
		if err := s.registry.Release(ctx, removed.Slot()); err != nil {
			s.logger.Warn("failed to release slot", "error", err.Error())
		}
	}
	s.logger.Info("booking cancelled", "mode", s.mode, "id", id.String())
	return nil
}

func (s *BookingStore) IsSlotBooked(ctx context.Context, slot booking.Slot) (bool, error) {
	return s.registry.Contains(ctx, slot)
}

// OpenSlots is the artist's availability minus backend-booked and registry-held slots.
func (s *BookingStore) OpenSlots(ctx context.Context, a catalog.Artist) ([]catalog.AvailabilitySlot, error) {
	reg, err := s.registry.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	free := a.FreeSlots()
	out := make([]catalog.AvailabilitySlot, 0, len(free))
	for _, slot := range free {
		if reg.Contains(booking.Slot{ArtistID: a.ID, Date: slot.Date, Time: slot.Time}) {
			continue
		}
		out = append(out, slot)
	}
	return out, nil
}

// UpcomingCount reads the stored list; it does not call the backend.
func (s *BookingStore) UpcomingCount(ctx context.Context) (int, error) {
	username, ok := s.username()
	if !ok {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	list, err := s.loadCache(ctx, username)
	if err != nil {
		return 0, err
	}
	return list.UpcomingCount(), nil
}
