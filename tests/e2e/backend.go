//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"beautyverse-storefront/tests/common/authtest"
)

// FakeBackend is an in-process stand-in for the storefront's REST backend.
// It knows two accounts ("aline" customer, "boss" staff) and keeps bookings
// per bearer token.
type FakeBackend struct {
	Server *httptest.Server

	mu       sync.Mutex
	tokens   map[string]string // access token -> username
	bookings map[string][]map[string]any
	taken    map[string]bool // artist|date|time
	nextID   int
}

func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()
	b := &FakeBackend{
		tokens:   make(map[string]string),
		bookings: make(map[string][]map[string]any),
		taken:    make(map[string]bool),
		nextID:   100,
	}
	customer := authtest.CustomerToken(t, "aline")
	staff := authtest.StaffToken(t, "boss")
	b.tokens[customer] = "aline"
	b.tokens[staff] = "boss"

	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/login-user/", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		switch {
		case body.Username == "aline" && body.Password == "password123":
			writeJSON(w, http.StatusOK, map[string]any{"access": customer, "refresh": "r1"})
		case body.Username == "boss" && body.Password == "password123":
			writeJSON(w, http.StatusOK, map[string]any{
				"access": staff, "refresh": "r2",
				"user": map[string]any{"username": "boss", "is_staff": true},
			})
		default:
			writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "No active account found with the given credentials"})
		}
	})
	mux.HandleFunc("GET /beautyVerse/products/list-products/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{product1})
	})
	mux.HandleFunc("GET /products/1/product-details/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, product1)
	})
	mux.HandleFunc("GET /artists/7/artist-details/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"id": 7, "name": "Grace", "location": "Kigali",
			"available_slots": []map[string]any{
				{"date": "2026-11-02", "time": "10:00"},
				{"date": "2026-11-02", "time": "14:00"},
			},
		})
	})
	mux.HandleFunc("GET /bookings/my-bookings/", b.authed(func(w http.ResponseWriter, _ *http.Request, user string) {
		b.mu.Lock()
		defer b.mu.Unlock()
		list := b.bookings[user]
		if list == nil {
			list = []map[string]any{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"results": list})
	}))
	mux.HandleFunc("POST /bookings/create-booking/", b.authed(func(w http.ResponseWriter, r *http.Request, user string) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)

		b.mu.Lock()
		defer b.mu.Unlock()
		key := toString(body["artist"]) + "|" + toString(body["date"]) + "|" + toString(body["time"])
		if b.taken[key] {
			writeJSON(w, http.StatusConflict, map[string]any{"detail": "This slot is already booked."})
			return
		}
		b.taken[key] = true
		b.nextID++
		rec := map[string]any{
			"id": b.nextID, "artist": body["artist"], "service": body["service"],
			"date": body["date"], "time": body["time"], "status": "upcoming",
		}
		b.bookings[user] = append([]map[string]any{rec}, b.bookings[user]...)
		writeJSON(w, http.StatusCreated, rec)
	}))

	b.Server = httptest.NewServer(mux)
	t.Cleanup(b.Server.Close)
	return b
}

var product1 = map[string]any{
	"id": 1, "name": "Velvet Lipstick", "price": "2000.00", "discount_price": "1500.00",
	"category": "Makeup", "product_image": "/media/lipstick.png",
}

func (b *FakeBackend) authed(next func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		b.mu.Lock()
		user, ok := b.tokens[token]
		b.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "Given token not valid for any token type"})
			return
		}
		next(w, r, user)
	}
}

// Revoke makes every later call with the user's token fail with 401 until
// the returned restore func runs.
func (b *FakeBackend) Revoke(username string) (restore func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	revoked := make([]string, 0, 1)
	for token, user := range b.tokens {
		if user == username {
			delete(b.tokens, token)
			revoked = append(revoked, token)
		}
	}
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for _, token := range revoked {
			b.tokens[token] = username
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func toString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		b, _ := json.Marshal(x)
		return string(b)
	default:
		return ""
	}
}
