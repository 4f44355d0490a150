//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"beautyverse-storefront/internal/domain/cart"
	"beautyverse-storefront/internal/domain/catalog"
	resdto "beautyverse-storefront/internal/handler/dto/response"
	"beautyverse-storefront/internal/infra/apiclient"
	"beautyverse-storefront/internal/pkg/errs"
	"beautyverse-storefront/internal/pkg/ident"
	"beautyverse-storefront/tests/common/builder"
	"beautyverse-storefront/tests/common/httptest"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	handlerSuite
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) expectSnapshot(items []cart.LineItem, total int, subtotal catalog.Amount) {
	s.cart.EXPECT().Items().Return(items).AnyTimes()
	s.cart.EXPECT().TotalItems().Return(total).AnyTimes()
	s.cart.EXPECT().Subtotal().Return(subtotal).AnyTimes()
}

func (s *CartHandlerTestSuite) TestGet() {
	s.Run("success: items with totals", func() {
		s.anonymous()
		line := cart.NewLineItem(builder.NewProductBuilder().BuildDomain())
		line.Quantity = 2
		s.expectSnapshot([]cart.LineItem{line}, 2, 4000)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/api/cart", nil, s.clientCookie())

		var res resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Len(res.Items, 1)
		s.Equal(2, res.TotalItems)
		s.Equal(catalog.Amount(4000), res.Subtotal)
	})

	s.Run("success: empty cart is an empty list", func() {
		s.anonymous()
		s.expectSnapshot(nil, 0, 0)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/api/cart", nil, s.clientCookie())
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"items":[],"total_items":0,"subtotal":0}`, rec.Body.String())
	})
}

func (s *CartHandlerTestSuite) TestAddItem() {
	url := "/api/cart/items"
	product := builder.NewProductBuilder().BuildDomain()

	s.Run("success: looks the product up and adds it", func() {
		s.anonymous()
		s.catalog.EXPECT().Product(gomock.Any(), ident.ID("1")).Return(product, nil).Times(1)
		s.cart.EXPECT().Add(gomock.Any(), product).Return(nil).Times(1)
		s.expectSnapshot([]cart.LineItem{cart.NewLineItem(product)}, 1, 2000)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url,
			map[string]any{"product_id": 1}, s.clientCookie())

		var res resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(1, res.TotalItems)
	})

	s.Run("error: 400 without product_id", func() {
		s.anonymous()
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, map[string]any{}, s.clientCookie())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: backend 404 is passed through", func() {
		s.anonymous()
		notFound := &apiclient.APIError{Status: http.StatusNotFound, Message: "Not found."}
		s.catalog.EXPECT().Product(gomock.Any(), ident.ID("99")).
			Return(catalog.Product{}, errs.Wrap(notFound, "product details")).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url,
			map[string]any{"product_id": "99"}, s.clientCookie())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found.")
	})
}

func (s *CartHandlerTestSuite) TestUpdateRemoveClear() {
	s.Run("update: applies the signed delta", func() {
		s.anonymous()
		s.cart.EXPECT().UpdateQuantity(gomock.Any(), ident.ID("1"), -1).Return(nil).Times(1)
		s.expectSnapshot(nil, 1, 2000)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPatch, "/api/cart/items/1",
			map[string]any{"delta": -1}, s.clientCookie())
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("update: zero delta is rejected", func() {
		s.anonymous()
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPatch, "/api/cart/items/1",
			map[string]any{"delta": 0}, s.clientCookie())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("remove: 200 with the remaining cart", func() {
		s.anonymous()
		s.cart.EXPECT().Remove(gomock.Any(), ident.ID("1")).Return(nil).Times(1)
		s.expectSnapshot(nil, 0, 0)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodDelete, "/api/cart/items/1", nil, s.clientCookie())
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("clear: 204", func() {
		s.anonymous()
		s.cart.EXPECT().Clear(gomock.Any()).Return(nil).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodDelete, "/api/cart", nil, s.clientCookie())
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("clear: storage failure is a 500", func() {
		s.anonymous()
		s.cart.EXPECT().Clear(gomock.Any()).Return(errs.New("disk full")).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodDelete, "/api/cart", nil, s.clientCookie())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
