package api

import (
	stdhttp "net/http"

	intconfig "travelbooking/internal/config"
	h "travelbooking/internal/http/handlers"
	"travelbooking/internal/http/middleware"
	"travelbooking/internal/utils"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.CORS(env.CORSAllowedOrigins),
		middleware.SessionOptional(h.Sessions()),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Logger().Warnf("failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Bookings
		bookings := api.Group("/bookings")
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/mine", middleware.RequireSession(), h.MyBookings)
		bookings.GET("/:id/receipt", h.GetBookingReceipt)

		// Catalog and drafts
		api.GET("/packages", h.ListPackages)
		drafts := api.Group("/drafts")
		drafts.POST("", h.CreateDraft)
		drafts.POST("/quote", h.QuoteDraft)

		// Payments
		payments := api.Group("/payments")
		payments.POST("/request", h.PaymentRequest)
		payments.POST("/qr", h.PaymentQR)
		payments.POST("/settle", h.SettlePayment)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", middleware.RequireSession(), h.Logout)
		auth.GET("/me", middleware.RequireSession(), h.Me)
	}

	h.SetRouter(r)
	return r
}
