//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"beautyverse-storefront/internal/domain/catalog"
	resdto "beautyverse-storefront/internal/handler/dto/response"
	"beautyverse-storefront/internal/infra/apiclient"
	"beautyverse-storefront/tests/common/httptest"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CategoryHandlerTestSuite struct {
	handlerSuite
}

func TestCategoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}

func (s *CategoryHandlerTestSuite) TestAccess() {
	url := "/api/admin/categories"

	s.Run("error: 401 for anonymous clients", func() {
		s.anonymous()
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, url, nil, s.clientCookie())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 403 for a user named admin without the flag", func() {
		s.loggedIn("admin", false)
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, url, nil, s.clientCookie())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Admin access required")
	})
}

func (s *CategoryHandlerTestSuite) TestList() {
	s.Run("success: both kinds, failures already empty", func() {
		s.loggedIn("boss", true)
		s.catalog.EXPECT().Categories(gomock.Any(), catalog.KindProducts).
			Return([]catalog.Category{{ID: "1", Name: "Makeup"}}, nil).Times(1)
		s.catalog.EXPECT().Categories(gomock.Any(), catalog.KindArtists).Return(nil, nil).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/api/admin/categories", nil, s.clientCookie())

		var res resdto.CategoriesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Len(res.Products, 1)
		s.NotNil(res.Artists)
		s.Empty(res.Artists)
	})
}

func (s *CategoryHandlerTestSuite) TestAdd() {
	url := "/api/admin/categories"

	s.Run("success: 201", func() {
		s.loggedIn("boss", true)
		s.catalog.EXPECT().AddCategory(gomock.Any(), catalog.KindArtists, "Nails").
			Return(catalog.Category{ID: "3", Name: "Nails"}, nil).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url,
			map[string]any{"kind": " Artists ", "name": "Nails"}, s.clientCookie())

		var res catalog.Category
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal("Nails", res.Name)
	})

	s.Run("error: unknown kind is a 400", func() {
		s.loggedIn("boss", true)
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url,
			map[string]any{"kind": "shoes", "name": "Heels"}, s.clientCookie())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Category type must be products or artists")
	})

	s.Run("error: backend field errors are summarised", func() {
		s.loggedIn("boss", true)
		s.catalog.EXPECT().AddCategory(gomock.Any(), catalog.KindProducts, "Makeup").
			Return(catalog.Category{}, &apiclient.APIError{Status: http.StatusBadRequest, Message: "name: category with this name already exists."}).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url,
			map[string]any{"kind": "products", "name": "Makeup"}, s.clientCookie())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already exists")
	})
}
