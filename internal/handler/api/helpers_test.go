//go:build unit

package api_test

import (
	"context"
	"net/http"

	"beautyverse-storefront/internal/domain/identity"
	"beautyverse-storefront/internal/handler"
	"beautyverse-storefront/internal/handler/middleware"
	"beautyverse-storefront/internal/pkg/clock"
	"beautyverse-storefront/internal/pkg/config"
	"beautyverse-storefront/internal/usecase"
	usecasemock "beautyverse-storefront/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testClientID = "client-1"

// handlerSuite serves the real router over mocked stores. Every test and
// subtest gets a fresh set of mocks.
type handlerSuite struct {
	suite.Suite
	cfg         config.Config
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	storefronts *usecasemock.MockStorefronts
	session     *usecasemock.MockSession
	cart        *usecasemock.MockCart
	bookings    *usecasemock.MockBookings
	catalog     *usecasemock.MockCatalog

	openedWith string
	openErr    error
}

func (s *handlerSuite) SetupTest()    { s.setup() }
func (s *handlerSuite) SetupSubTest() { s.setup() }

func (s *handlerSuite) setup() {
	gin.SetMode(gin.TestMode)
	s.cfg = config.NewTestConfig()
	s.cfg.Log.Level = "error"

	s.mockCtrl = gomock.NewController(s.T())
	s.storefronts = usecasemock.NewMockStorefronts(s.mockCtrl)
	s.session = usecasemock.NewMockSession(s.mockCtrl)
	s.cart = usecasemock.NewMockCart(s.mockCtrl)
	s.bookings = usecasemock.NewMockBookings(s.mockCtrl)
	s.catalog = usecasemock.NewMockCatalog(s.mockCtrl)
	s.openedWith = ""
	s.openErr = nil

	s.storefronts.EXPECT().Open(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, clientID string) (*usecase.Storefront, error) {
			s.openedWith = clientID
			if s.openErr != nil {
				return nil, s.openErr
			}
			return &usecase.Storefront{
				ClientID: clientID,
				Session:  s.session,
				Cart:     s.cart,
				Bookings: s.bookings,
				Catalog:  s.catalog,
			}, nil
		}).AnyTimes()

	s.router = gin.New()
	handler.NewRouter(s.router, s.cfg, handler.NewHandlers(),
		middleware.NewClientMiddleware(s.storefronts, s.cfg),
		middleware.NewRateLimiter(s.cfg, clock.NewRealClock()))
}

func (s *handlerSuite) anonymous() {
	s.session.EXPECT().Current().Return(identity.Identity{}, false).AnyTimes()
}

func (s *handlerSuite) loggedIn(username string, admin bool) {
	s.session.EXPECT().Current().Return(identity.Identity{Username: username, IsAdmin: admin}, true).AnyTimes()
}

func (s *handlerSuite) clientCookie() []*http.Cookie {
	return []*http.Cookie{{Name: s.cfg.Cookie.Name, Value: testClientID}}
}
