package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"beautyverse-storefront/internal/handler/api"
	"beautyverse-storefront/internal/handler/middleware"
	"beautyverse-storefront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Cart         *api.CartHandler
	Booking      *api.BookingHandler
	Product      *api.ProductHandler
	Professional *api.ProfessionalHandler
	Category     *api.CategoryHandler
}

func NewHandlers() *Handlers {
	return &Handlers{
		Auth:         api.NewAuthHandler(),
		Cart:         api.NewCartHandler(),
		Booking:      api.NewBookingHandler(),
		Product:      api.NewProductHandler(),
		Professional: api.NewProfessionalHandler(),
		Category:     api.NewCategoryHandler(),
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, h *Handlers, clientMiddleware *middleware.ClientMiddleware, rateLimiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg, rateLimiter)
	setupRoutes(engine, h, clientMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, rateLimiter *middleware.RateLimiter) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(rateLimiter.Middleware())
}

func setupRoutes(engine *gin.Engine, h *Handlers, clientMiddleware *middleware.ClientMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(clientMiddleware.Attach())
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
		})

		cart := apiGroup.Group("/cart")
		addRoutes(cart, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Cart.Get},
			{Method: http.MethodDelete, Path: "", Handler: h.Cart.Clear},
			{Method: http.MethodPost, Path: "/items", Handler: h.Cart.AddItem},
			{Method: http.MethodPatch, Path: "/items/:id", Handler: h.Cart.UpdateItem},
			{Method: http.MethodDelete, Path: "/items/:id", Handler: h.Cart.RemoveItem},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(middleware.RequireAuth())
		addRoutes(bookings, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Cancel},
		})

		authRequired := []gin.HandlerFunc{middleware.RequireAuth()}

		products := apiGroup.Group("/products")
		addRoutes(products, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Product.List},
			{Method: http.MethodGet, Path: "/categories", Handler: h.Product.Categories},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Product.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Product.Create, Mw: authRequired},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Product.Delete, Mw: authRequired},
		})

		professionals := apiGroup.Group("/professionals")
		addRoutes(professionals, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Professional.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Professional.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Professional.Register, Mw: authRequired},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Professional.Delete, Mw: authRequired},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/categories", Handler: h.Category.List},
			{Method: http.MethodPost, Path: "/categories", Handler: h.Category.Add},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
