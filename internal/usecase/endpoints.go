package usecase

import (
	"net/url"

	"beautyverse-storefront/internal/pkg/ident"
)

// Backend routes. Product and artist detail routes take the id as a path segment.
const (
	pathLogin    = "/users/login-user/"
	pathRegister = "/users/create-account/"

	pathListProducts      = "/beautyVerse/products/list-products/"
	pathAddProduct        = "/beautyVerse/products/add-new-product/"
	pathProductCategories = "/beautyVerse/products/categories/"

	pathListArtists    = "/artists/list-artists/"
	pathRegisterArtist = "/artists/register-artist/"

	pathAdminProductCategories = "/products/list-categories/"
	pathAdminArtistCategories  = "/artists/categories/"
	pathAddProductCategory     = "/products/add-category/"
	pathAddArtistCategory      = "/artists/add-category/"

	pathMyBookings    = "/bookings/my-bookings/"
	pathCreateBooking = "/bookings/create-booking/"
)

func productDetailPath(id ident.ID) string { return "/products/" + seg(id) + "/product-details/" }
func productDeletePath(id ident.ID) string { return "/products/" + seg(id) + "/delete-product/" }
func artistDetailPath(id ident.ID) string  { return "/artists/" + seg(id) + "/artist-details/" }
func artistDeletePath(id ident.ID) string  { return "/artists/" + seg(id) + "/delete-artist/" }
func cancelBookingPath(id ident.ID) string { return "/bookings/" + seg(id) + "/cancel-booking/" }

func seg(id ident.ID) string { return url.PathEscape(id.String()) }
