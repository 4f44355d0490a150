//go:build unit

package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"beautyverse-storefront/internal/domain/booking"
	"beautyverse-storefront/internal/domain/catalog"
	"beautyverse-storefront/internal/domain/identity"
	"beautyverse-storefront/internal/infra/apiclient"
	"beautyverse-storefront/internal/pkg/config"
	"beautyverse-storefront/internal/pkg/errs"
	"beautyverse-storefront/internal/pkg/kv"
	"beautyverse-storefront/internal/usecase"

	"github.com/stretchr/testify/suite"
)

type BookingStoreTestSuite struct {
	suite.Suite
	ctx      context.Context
	mux      *http.ServeMux
	client   *apiclient.Client
	store    *kv.Memory
	global   *kv.Memory
	registry *usecase.SlotRegistry
	session  *usecase.SessionStore
}

func (s *BookingStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mux = http.NewServeMux()
	s.client, s.store = fakeBackend(s.T(), s.mux)
	s.global = kv.NewMemory()
	s.registry = usecase.NewSlotRegistry(s.global, discardLogger())

	s.Require().NoError(s.store.Set(s.ctx, identity.AccessTokenKey, "tok"))
	s.Require().NoError(s.store.Set(s.ctx, identity.UsernameKey, "aline"))
	s.session = usecase.NewSessionStore(s.store, s.client, discardLogger())
	s.Require().NoError(s.session.Restore(s.ctx))
}

func TestBookingStoreSuite(t *testing.T) {
	suite.Run(t, new(BookingStoreTestSuite))
}

func (s *BookingStoreTestSuite) newStore(mode config.BookingMode) *usecase.BookingStore {
	return usecase.NewBookingStore(s.store, s.registry, s.client, s.session, mode, discardLogger())
}

func (s *BookingStoreTestSuite) cached() booking.List {
	var list booking.List
	_, err := kv.GetJSON(s.ctx, s.store, booking.StorageKey("aline"), &list)
	s.Require().NoError(err)
	return list
}

func bookingDraft() booking.Draft {
	return booking.Draft{ArtistID: "7", ArtistName: "Bella Glow", Service: "Bridal makeup", Date: "2026-10-20", Time: "10:00"}
}

func (s *BookingStoreTestSuite) TestRemoteCreate() {
	s.Run("success: server record is cached and its slot recorded", func() {
		var sent map[string]any
		var calls atomic.Int32
		s.mux.HandleFunc("POST /bookings/create-booking/", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&sent)
			if calls.Add(1) > 1 {
				writeJSON(w, http.StatusConflict, map[string]any{"detail": "This slot is already reserved"})
				return
			}
			writeJSON(w, http.StatusCreated, map[string]any{"id": 101, "artist": 7, "date": "2026-10-20", "time": "10:00"})
		})
		store := s.newStore(config.BookingRemote)

		b, err := store.Create(s.ctx, bookingDraft())
		s.Require().NoError(err)
		s.Equal("101", b.ID.String())
		s.Equal(booking.StatusUpcoming, b.Status)
		s.Equal("Bella Glow", b.ArtistName)
		s.Equal("7", sent["artist"])

		s.Len(s.cached(), 1)
		booked, err := store.IsSlotBooked(s.ctx, bookingDraft().Slot())
		s.Require().NoError(err)
		s.True(booked)

		_, err = store.Create(s.ctx, bookingDraft())
		s.True(errs.Is(err, booking.ErrSlotReserved), err)
		s.Len(s.cached(), 1)
		s.Equal(int32(2), calls.Load())
	})
}

func (s *BookingStoreTestSuite) TestRemoteCreateFailures() {
	s.Run("a failed call is an error and appends nothing", func() {
		s.mux.HandleFunc("POST /bookings/create-booking/", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "database is locked"})
		})
		store := s.newStore(config.BookingRemote)

		_, err := store.Create(s.ctx, bookingDraft())
		s.Require().Error(err)
		status, ok := apiclient.StatusCode(err)
		s.True(ok)
		s.Equal(http.StatusInternalServerError, status)
		s.Empty(s.cached())

		booked, _ := store.IsSlotBooked(s.ctx, bookingDraft().Slot())
		s.False(booked)
	})
}

func (s *BookingStoreTestSuite) TestRemoteConflict() {
	s.mux.HandleFunc("POST /bookings/create-booking/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]any{"detail": "This slot is already reserved"})
	})
	store := s.newStore(config.BookingRemote)

	_, err := store.Create(s.ctx, bookingDraft())
	s.True(errs.Is(err, booking.ErrSlotReserved), err)
	s.Empty(s.cached())

	booked, _ := store.IsSlotBooked(s.ctx, bookingDraft().Slot())
	s.True(booked)
}

func (s *BookingStoreTestSuite) TestRegistryHeldSlot() {
	var calls atomic.Int32
	s.mux.HandleFunc("POST /bookings/create-booking/", func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusCreated, map[string]any{"id": 1})
	})
	s.Require().NoError(s.registry.Record(s.ctx, bookingDraft().Slot()))

	s.Run("local: fails without a backend call", func() {
		_, err := s.newStore(config.BookingLocal).Create(s.ctx, bookingDraft())
		s.True(errs.Is(err, booking.ErrSlotReserved), err)
		s.Empty(s.cached())
		s.Zero(calls.Load())
	})

	s.Run("remote: the backend decides", func() {
		b, err := s.newStore(config.BookingRemote).Create(s.ctx, bookingDraft())
		s.Require().NoError(err)
		s.Equal("1", b.ID.String())
		s.Equal(int32(1), calls.Load())
		s.Len(s.cached(), 1)
	})
}

func (s *BookingStoreTestSuite) TestRemoteFetchFreesCancelledSlots() {
	status := atomic.Value{}
	status.Store("upcoming")
	s.mux.HandleFunc("GET /bookings/my-bookings/", func(w http.ResponseWriter, _ *http.Request) {
		if status.Load() == "gone" {
			writeJSON(w, http.StatusOK, []map[string]any{})
			return
		}
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": 1, "artist_id": 7, "date": "2026-10-20", "time": "10:00", "status": status.Load()},
		})
	})
	var calls atomic.Int32
	s.mux.HandleFunc("POST /bookings/create-booking/", func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusCreated, map[string]any{"id": 2, "artist": 7, "date": "2026-10-20", "time": "10:00"})
	})
	store := s.newStore(config.BookingRemote)
	slot := bookingDraft().Slot()

	_, err := store.Fetch(s.ctx)
	s.Require().NoError(err)
	booked, _ := store.IsSlotBooked(s.ctx, slot)
	s.True(booked)

	s.Run("cancelled on the server", func() {
		status.Store("cancelled")
		_, err := store.Fetch(s.ctx)
		s.Require().NoError(err)
		booked, _ := store.IsSlotBooked(s.ctx, slot)
		s.False(booked)
	})

	s.Run("the slot can be booked again", func() {
		_, err := store.Create(s.ctx, bookingDraft())
		s.Require().NoError(err)
		s.Equal(int32(1), calls.Load())
	})

	s.Run("gone from the server list", func() {
		s.Require().NoError(s.registry.Record(s.ctx, slot))
		s.Require().NoError(kv.SetJSON(s.ctx, s.store, booking.StorageKey("aline"), booking.List{
			{ID: "2", ArtistID: "7", Date: "2026-10-20", Time: "10:00", Status: booking.StatusUpcoming},
		}))
		status.Store("gone")
		_, err := store.Fetch(s.ctx)
		s.Require().NoError(err)
		booked, _ := store.IsSlotBooked(s.ctx, slot)
		s.False(booked)
	})
}

func (s *BookingStoreTestSuite) TestRemoteFetch() {
	s.Run("success: refreshes the cache", func() {
		s.mux.HandleFunc("GET /bookings/my-bookings/", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"results": []map[string]any{
				{"id": 1, "artist_id": 7, "date": "2026-10-20", "time": "10:00"},
				{"id": 2, "artist_id": 8, "date": "2026-10-21", "time": "11:00", "status": "completed"},
			}})
		})
		store := s.newStore(config.BookingRemote)

		got, err := store.Fetch(s.ctx)
		s.Require().NoError(err)
		s.False(got.Stale)
		s.Len(got.Items, 2)
		s.Len(s.cached(), 2)

		count, err := store.UpcomingCount(s.ctx)
		s.Require().NoError(err)
		s.Equal(1, count)

		booked, _ := store.IsSlotBooked(s.ctx, booking.Slot{ArtistID: "7", Date: "2026-10-20", Time: "10:00"})
		s.True(booked)
	})
}

func (s *BookingStoreTestSuite) TestRemoteFetchFallback() {
	s.mux.HandleFunc("GET /bookings/my-bookings/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Not found."})
	})
	s.Require().NoError(kv.SetJSON(s.ctx, s.store, booking.StorageKey("aline"), booking.List{{ID: "9", ArtistID: "7", Date: "d", Time: "t"}}))

	got, err := s.newStore(config.BookingRemote).Fetch(s.ctx)
	s.Require().NoError(err)
	s.True(got.Stale)
	s.Len(got.Items, 1)
}

func (s *BookingStoreTestSuite) TestRemoteFetchUnauthorized() {
	s.mux.HandleFunc("GET /bookings/my-bookings/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "expired"})
	})

	_, err := s.newStore(config.BookingRemote).Fetch(s.ctx)
	s.True(errs.Is(err, errs.ErrNotAuthenticated), err)
	s.False(s.session.IsAuthenticated())
}

func (s *BookingStoreTestSuite) TestRemoteCancel() {
	seed := booking.List{
		{ID: "1", ArtistID: "7", Date: "2026-10-20", Time: "10:00", Status: booking.StatusUpcoming},
		{ID: "2", ArtistID: "8", Date: "2026-10-21", Time: "11:00", Status: booking.StatusUpcoming},
	}

	s.Run("removes exactly one and frees its slot", func() {
		s.mux.HandleFunc("DELETE /bookings/1/cancel-booking/", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		s.mux.HandleFunc("DELETE /bookings/2/cancel-booking/", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Not found."})
		})
		s.Require().NoError(kv.SetJSON(s.ctx, s.store, booking.StorageKey("aline"), seed))
		s.Require().NoError(s.registry.Record(s.ctx, seed[0].Slot(), seed[1].Slot()))
		store := s.newStore(config.BookingRemote)

		s.Require().NoError(store.Cancel(s.ctx, "1"))
		left := s.cached()
		s.Require().Len(left, 1)
		s.Equal("2", left[0].ID.String())
		booked, _ := store.IsSlotBooked(s.ctx, seed[0].Slot())
		s.False(booked)
		booked, _ = store.IsSlotBooked(s.ctx, seed[1].Slot())
		s.True(booked)

		s.Require().NoError(store.Cancel(s.ctx, "2"), "404 counts as already cancelled")
		s.Empty(s.cached())
	})

	s.Run("backend failure keeps the record", func() {
		s.mux.HandleFunc("DELETE /bookings/3/cancel-booking/", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusInternalServerError, map[string]any{})
		})
		s.Require().NoError(kv.SetJSON(s.ctx, s.store, booking.StorageKey("aline"), booking.List{{ID: "3"}}))

		s.Error(s.newStore(config.BookingRemote).Cancel(s.ctx, "3"))
		s.Len(s.cached(), 1)
	})
}

func (s *BookingStoreTestSuite) TestLocalMode() {
	store := s.newStore(config.BookingLocal)

	first, err := store.Create(s.ctx, bookingDraft())
	s.Require().NoError(err)
	s.False(first.ID.IsZero())
	s.Equal(booking.StatusUpcoming, first.Status)

	other := bookingDraft()
	other.Time = "11:00"
	second, err := store.Create(s.ctx, other)
	s.Require().NoError(err)

	got, err := store.Fetch(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got.Items, 2)
	s.Equal(second.ID, got.Items[0].ID, "newest first")

	_, err = store.Create(s.ctx, bookingDraft())
	s.True(errs.Is(err, booking.ErrSlotReserved), err)

	s.Require().NoError(store.Cancel(s.ctx, first.ID))
	s.True(errs.Is(store.Cancel(s.ctx, first.ID), booking.ErrNotFound))

	again, err := store.Create(s.ctx, bookingDraft())
	s.Require().NoError(err, "slot is reusable after cancel")
	s.NotEqual(first.ID, again.ID)
}

func (s *BookingStoreTestSuite) TestAnonymous() {
	s.Require().NoError(s.session.Logout(s.ctx))
	store := s.newStore(config.BookingRemote)

	got, err := store.Fetch(s.ctx)
	s.Require().NoError(err)
	s.Empty(got.Items)

	_, err = store.Create(s.ctx, bookingDraft())
	s.True(errs.Is(err, errs.ErrNotAuthenticated), err)

	count, err := store.UpcomingCount(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *BookingStoreTestSuite) TestValidation() {
	d := bookingDraft()
	d.Date = ""
	_, err := s.newStore(config.BookingLocal).Create(s.ctx, d)
	s.True(errs.Is(err, errs.ErrValidation), err)
}

func (s *BookingStoreTestSuite) TestOpenSlots() {
	artist := catalog.Artist{
		ID: "7",
		AvailableSlots: []catalog.AvailabilitySlot{
			{Date: "2026-10-20", Time: "10:00"},
			{Date: "2026-10-20", Time: "11:00"},
			{Date: "2026-10-20", Time: "12:00", IsBooked: true},
		},
	}
	s.Require().NoError(s.registry.Record(s.ctx, booking.Slot{ArtistID: "7", Date: "2026-10-20", Time: "10:00"}))

	open, err := s.newStore(config.BookingRemote).OpenSlots(s.ctx, artist)
	s.Require().NoError(err)
	s.Equal([]catalog.AvailabilitySlot{{Date: "2026-10-20", Time: "11:00"}}, open)
}
