package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/njrexim/cms-api/docs"
	"github.com/njrexim/cms-api/internal/api/handler"
	"github.com/njrexim/cms-api/internal/api/middleware"
	"github.com/njrexim/cms-api/internal/core/domain"
	"github.com/njrexim/cms-api/internal/core/ports"
)

// Services groups the application services the HTTP layer exposes.
type Services struct {
	Auth         ports.AuthService
	Users        ports.UserService
	Blogs        ports.BlogService
	Products     ports.ProductService
	Certificates ports.CertificateService
	Gallery      ports.GalleryService
	Inquiries    ports.InquiryService
	Testimonials ports.TestimonialService
	Pages        ports.PageService
	Settings     ports.SettingsService
}

// Limiters holds one limiter per rate-limit bucket.
type Limiters struct {
	Public  middleware.Limiter
	Auth    middleware.Limiter
	Content middleware.Limiter
}

// Dependencies is everything NewRouter needs to assemble the API.
type Dependencies struct {
	DB          *mongo.Database
	Redis       *redis.Client // optional
	Tokens      ports.TokenService
	UserLookup  middleware.UserLookup
	Services    Services
	Limiters    Limiters
	CORSOrigins []string
	Production  bool
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log, d.Production)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: corsOrigins(d.CORSOrigins),
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))
	e.Use(echoprometheus.NewMiddleware("cms"))
	e.Use(middleware.Sanitize())

	// --- Ops endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	checks := []handler.DependencyCheck{handler.MongoCheck(d.DB)}
	if d.Redis != nil {
		checks = append(checks, handler.RedisCheck(d.Redis))
	}
	readinessHandler := handler.NewReadinessHandler(checks...)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Gates ---
	svc := d.Services
	auth := middleware.Auth(d.Tokens, d.UserLookup)
	admin := middleware.Require(domain.CapabilityAdmin)
	superAdmin := middleware.Require(domain.CapabilitySuperAdmin)
	publicLimit := middleware.RateLimit("public", d.Limiters.Public, d.Log)
	authLimit := middleware.RateLimit("auth", d.Limiters.Auth, d.Log)
	contentLimit := middleware.RateLimit("content", d.Limiters.Content, d.Log)

	api := e.Group("/api")

	// --- Auth and users ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	userHandler := handler.NewUserHandler(svc.Users)

	authGroup := api.Group("/auth")
	authGroup.POST("/login", authHandler.Login, authLimit)
	authGroup.POST("/setup", authHandler.Setup, authLimit)
	authGroup.POST("/forgotpassword", authHandler.ForgotPassword, authLimit)
	authGroup.PUT("/resetpassword/:token", authHandler.ResetPassword, authLimit)
	authGroup.POST("/accept-invite", authHandler.AcceptInvite, authLimit)
	authGroup.GET("/profile", authHandler.Profile, auth)
	authGroup.PUT("/profile", authHandler.UpdateProfile, auth)
	authGroup.POST("/invite", authHandler.Invite, auth, superAdmin)
	authGroup.GET("/users", userHandler.List, auth, superAdmin)
	authGroup.PUT("/users/:id", userHandler.Update, auth, superAdmin)
	authGroup.DELETE("/users/:id", userHandler.Delete, auth, superAdmin)

	// --- Blogs ---
	blogHandler := handler.NewBlogHandler(svc.Blogs)
	blogs := api.Group("/blogs")
	blogs.GET("", blogHandler.List)
	blogs.GET("/:id", blogHandler.Get)
	blogs.POST("", blogHandler.Create, auth, admin)
	blogs.PUT("/:id", blogHandler.Update, auth, admin)
	blogs.DELETE("/:id", blogHandler.Delete, auth, admin)

	// --- Products ---
	productHandler := handler.NewProductHandler(svc.Products)
	products := api.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, contentLimit, auth, admin)
	products.PUT("/:id", productHandler.Update, auth, admin)
	products.DELETE("/:id", productHandler.Delete, auth, admin)

	// --- Certificates, gallery, inquiries ---
	cmsHandler := handler.NewCMSHandler(svc.Certificates, svc.Gallery, svc.Inquiries)

	certificates := api.Group("/certificates")
	certificates.GET("", cmsHandler.ListCertificates)
	certificates.POST("", cmsHandler.CreateCertificate, auth, admin)
	certificates.DELETE("/:id", cmsHandler.DeleteCertificate, auth, admin)

	gallery := api.Group("/gallery")
	gallery.GET("", cmsHandler.ListGallery)
	gallery.POST("", cmsHandler.CreateGalleryItem, auth, admin)
	gallery.DELETE("/:id", cmsHandler.DeleteGalleryItem, auth, admin)

	inquiries := api.Group("/inquiries")
	inquiries.POST("", cmsHandler.CreateInquiry, publicLimit)
	inquiries.GET("", cmsHandler.ListInquiries, auth, admin)
	inquiries.PUT("/:id", cmsHandler.UpdateInquiryStatus, auth, admin)
	inquiries.DELETE("/:id", cmsHandler.DeleteInquiry, auth, admin)

	// --- Testimonials ---
	testimonialHandler := handler.NewTestimonialHandler(svc.Testimonials)
	testimonials := api.Group("/testimonials")
	testimonials.GET("", testimonialHandler.ListApproved)
	testimonials.POST("", testimonialHandler.Submit, publicLimit)
	testimonials.GET("/all", testimonialHandler.ListAll, auth, admin)
	testimonials.PUT("/:id", testimonialHandler.Update, auth, admin)
	testimonials.DELETE("/:id", testimonialHandler.Delete, auth, admin)

	// --- Pages ---
	pageHandler := handler.NewPageHandler(svc.Pages)
	pages := api.Group("/pages")
	pages.GET("", pageHandler.List)
	pages.GET("/:slug", pageHandler.Get)
	pages.POST("", pageHandler.Create, auth, admin)
	pages.PUT("/:slug", pageHandler.Update, auth, admin)

	// --- Settings ---
	settingsHandler := handler.NewSettingsHandler(svc.Settings)
	api.GET("/settings", settingsHandler.Get)
	api.PUT("/settings", settingsHandler.Update, auth, superAdmin)

	return e
}

// requestLogger routes Echo's access log through zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

func corsOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
