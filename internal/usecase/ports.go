package usecase

import (
	"context"
	"io"

	"beautyverse-storefront/internal/domain/booking"
	"beautyverse-storefront/internal/domain/cart"
	"beautyverse-storefront/internal/domain/catalog"
	"beautyverse-storefront/internal/domain/identity"
	"beautyverse-storefront/internal/infra/apiclient"
	"beautyverse-storefront/internal/pkg/ident"
)

// Backend is the slice of the API client the stores depend on.
type Backend interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
	PostForm(ctx context.Context, path string, form *apiclient.Form, out any) error
	OnAuthFailure(fn apiclient.AuthFailureHandler)
	ImageURL(path string) string
}

// Upload is an optional file attached to a form submission.
type Upload struct {
	Filename string
	Content  io.Reader
}

// AuthResult never carries an error value; failures are a message for the form.
type AuthResult struct {
	Success bool
	Message string
	// Err is the cause of a failure: a validation error, a marked transport
	// error or the backend's *apiclient.APIError.
	Err error
}

type RegisterInput struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name,omitempty"`
}

type Session interface {
	Restore(ctx context.Context) error
	Loading() bool
	Current() (identity.Identity, bool)
	IsAuthenticated() bool
	Login(ctx context.Context, username, password string) AuthResult
	Register(ctx context.Context, in RegisterInput) AuthResult
	Logout(ctx context.Context) error
}

type Cart interface {
	Add(ctx context.Context, p catalog.Product) error
	Remove(ctx context.Context, id ident.ID) error
	UpdateQuantity(ctx context.Context, id ident.ID, delta int) error
	Clear(ctx context.Context) error
	Items() []cart.LineItem
	TotalItems() int
	Subtotal() catalog.Amount
}

// BookingList is a fetched list; Stale marks a cache served because the backend failed.
type BookingList struct {
	Items booking.List
	Stale bool
}

type Bookings interface {
	Fetch(ctx context.Context) (BookingList, error)
	Create(ctx context.Context, d booking.Draft) (booking.Booking, error)
	Cancel(ctx context.Context, id ident.ID) error
	IsSlotBooked(ctx context.Context, s booking.Slot) (bool, error)
	OpenSlots(ctx context.Context, a catalog.Artist) ([]catalog.AvailabilitySlot, error)
	UpcomingCount(ctx context.Context) (int, error)
}

type Catalog interface {
	Products(ctx context.Context, f catalog.ProductFilter) ([]catalog.Product, error)
	Product(ctx context.Context, id ident.ID) (catalog.Product, error)
	ProductCategories(ctx context.Context) ([]catalog.Category, error)
	CreateProduct(ctx context.Context, d catalog.ProductDraft, image *Upload) (catalog.Product, error)
	DeleteProduct(ctx context.Context, id ident.ID) error

	Artists(ctx context.Context, f catalog.ArtistFilter) ([]catalog.Artist, error)
	Artist(ctx context.Context, id ident.ID) (catalog.Artist, error)
	RegisterArtist(ctx context.Context, d catalog.ArtistDraft, picture *Upload) (catalog.Artist, error)
	DeleteArtist(ctx context.Context, id ident.ID) error

	Categories(ctx context.Context, kind catalog.CategoryKind) ([]catalog.Category, error)
	AddCategory(ctx context.Context, kind catalog.CategoryKind, name string) (catalog.Category, error)

	ImageURL(path string) string
}

// Storefront is one client's set of stores.
type Storefront struct {
	ClientID string
	Session  Session
	Cart     Cart
	Bookings Bookings
	Catalog  Catalog
}

type Storefronts interface {
	Open(ctx context.Context, clientID string) (*Storefront, error)
}

var (
	_ Session     = (*SessionStore)(nil)
	_ Cart        = (*CartStore)(nil)
	_ Bookings    = (*BookingStore)(nil)
	_ Catalog     = (*CatalogService)(nil)
	_ Storefronts = (*StorefrontFactory)(nil)
	_ Backend     = (*apiclient.Client)(nil)
)
