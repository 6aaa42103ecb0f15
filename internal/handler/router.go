package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"carseat-rental/internal/handler/api"
	"carseat-rental/internal/handler/middleware"
	"carseat-rental/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Catalog      *api.CatalogHandler
	BookingDraft *api.BookingDraftHandler
	Booking      *api.BookingHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, clientMiddleware *middleware.ClientMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, clientMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, clientMiddleware *middleware.ClientMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(clientMiddleware.Identify())
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{clientMiddleware.RequireSession()}},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/waiver", Handler: h.Auth.SignWaiver, Mw: []gin.HandlerFunc{clientMiddleware.RequireSession()}},
			{Method: http.MethodGet, Path: "/locations", Handler: h.Catalog.ListLocations},
			{Method: http.MethodGet, Path: "/locations/:id", Handler: h.Catalog.GetLocation},
			{Method: http.MethodGet, Path: "/item-types", Handler: h.Catalog.ListItemTypes},
		})

		drafts := apiGroup.Group("/booking-drafts")
		{
			addRoutes(drafts, []route{
				{Method: http.MethodPost, Path: "", Handler: h.BookingDraft.Start},
				{Method: http.MethodGet, Path: "/:id", Handler: h.BookingDraft.Get},
				{Method: http.MethodPut, Path: "/:id/trip", Handler: h.BookingDraft.UpdateTrip},
				{Method: http.MethodPut, Path: "/:id/contact", Handler: h.BookingDraft.UpdateContact},
				{Method: http.MethodPost, Path: "/:id/next", Handler: h.BookingDraft.Next},
				{Method: http.MethodPost, Path: "/:id/back", Handler: h.BookingDraft.Back},
				{Method: http.MethodPost, Path: "/:id/edit-trip", Handler: h.BookingDraft.EditTrip},
				{Method: http.MethodPost, Path: "/:id/submit", Handler: h.BookingDraft.Submit},
				{Method: http.MethodPost, Path: "/:id/retry", Handler: h.BookingDraft.Retry},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(clientMiddleware.RequireSession())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
			})
		}
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
