package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/starevents/starevents-api/docs"
	v1 "github.com/starevents/starevents-api/internal/api/handler/v1"
	"github.com/starevents/starevents-api/internal/api/middleware"
	"github.com/starevents/starevents-api/internal/cache"
	"github.com/starevents/starevents-api/internal/config"
	"github.com/starevents/starevents-api/internal/repository"
	"github.com/starevents/starevents-api/internal/repository/dao"
	"github.com/starevents/starevents-api/internal/service"
	"github.com/starevents/starevents-api/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
	Hub    *v1.AvailabilityHub

	cache    *cache.Cache
	images   service.ImageStore
	accounts middleware.AccountLookup
}

type handlers struct {
	auth      *v1.AuthHandler
	user      *v1.UserHandler
	event     *v1.EventHandler
	booking   *v1.BookingHandler
	catalog   *v1.CatalogHandler
	promotion *v1.PromotionHandler
	report    *v1.ReportHandler
}

// NewServer wires every handler on db. c may be nil to run without redis.
func NewServer(conf *config.AppConfig, db *gorm.DB, c *cache.Cache, images service.ImageStore) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config:   conf,
		Router:   engine,
		cache:    c,
		images:   images,
		accounts: repository.NewUserRepository(dao.NewUserDAO(db)),
	}

	s.MountMiddlewares()

	s.Hub = s.initAvailabilityHub(db)
	s.MountHandlers(handlers{
		auth:      s.initAuthHandler(db),
		user:      s.initUserHandler(db),
		event:     s.initEventHandler(db),
		booking:   s.initBookingHandler(db),
		catalog:   s.initCatalogHandler(db),
		promotion: s.initPromotionHandler(db),
		report:    s.initReportHandler(db),
	})

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

// initAvailabilityHub builds the hub with its own read-only event service;
// the writing services publish into the hub.
func (s *Server) initAvailabilityHub(db *gorm.DB) *v1.AvailabilityHub {
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	catalogRepo := repository.NewCatalogRepository(dao.NewCatalogDAO(db))
	reader := service.NewEventService(eventRepo, catalogRepo, s.images, nil, s.cache)

	return v1.NewAvailabilityHub(reader, s.Config.API.AllowedCORSDomains)
}

func (s *Server) initEventHandler(db *gorm.DB) *v1.EventHandler {
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	catalogRepo := repository.NewCatalogRepository(dao.NewCatalogDAO(db))
	svc := service.NewEventService(eventRepo, catalogRepo, s.images, s.Hub, s.cache)
	handler := v1.NewEventHandler(svc)

	return handler
}

func (s *Server) initBookingHandler(db *gorm.DB) *v1.BookingHandler {
	bookingRepo := repository.NewBookingRepository(dao.NewBookingDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	promotionRepo := repository.NewPromotionRepository(dao.NewPromotionDAO(db))
	svc := service.NewBookingService(bookingRepo, eventRepo, userRepo, promotionRepo, s.Hub, s.cache)
	handler := v1.NewBookingHandler(svc)

	return handler
}

func (s *Server) initCatalogHandler(db *gorm.DB) *v1.CatalogHandler {
	repo := repository.NewCatalogRepository(dao.NewCatalogDAO(db))
	svc := service.NewCatalogService(repo, s.cache)
	handler := v1.NewCatalogHandler(svc)

	return handler
}

func (s *Server) initPromotionHandler(db *gorm.DB) *v1.PromotionHandler {
	repo := repository.NewPromotionRepository(dao.NewPromotionDAO(db))
	svc := service.NewPromotionService(repo)
	handler := v1.NewPromotionHandler(svc)

	return handler
}

func (s *Server) initReportHandler(db *gorm.DB) *v1.ReportHandler {
	reportRepo := repository.NewReportRepository(dao.NewReportDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	svc := service.NewReportService(reportRepo, eventRepo, s.cache)
	handler := v1.NewReportHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Recovery is needed unless we use gin.Default(); AccessLog replaces gin.Logger.
	s.Router.Use(gin.Recovery())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(telemetry.Middleware())
	s.Router.Use(middleware.AccessLog())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(middleware.Timeout(s.Config.API.RequestTimeout))
}

func (s *Server) MountHandlers(h handlers) {
	const basePath = "/api/v1"

	authenticated := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).
		WithAccounts(s.accounts).
		VerifyJWT()

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/signup", h.auth.HandleSignup)
		public.POST("/auth/login", h.auth.HandleLogin)

		public.GET("/events", h.event.HandleListEvents)
		public.GET("/events/:eventID", h.event.HandleGetEvent)
		public.GET("/events/:eventID/availability", h.event.HandleGetAvailability)
		public.GET("/events/:eventID/availability/ws", s.Hub.HandleWebSocket)
		public.GET("/venues", h.catalog.HandleListVenues)
		public.GET("/categories", h.catalog.HandleListCategories)
		public.GET("/cities", h.catalog.HandleListCities)
	}

	users := s.Router.Group(basePath, authenticated)
	{
		users.POST("/auth/password", h.auth.HandleChangePassword)
		users.GET("/me", h.user.HandleGetMe)
		users.PUT("/me", h.user.HandleUpdateMe)
		users.GET("/me/bookings", h.booking.HandleListMyBookings)
		users.GET("/me/tickets", h.booking.HandleListMyTickets)

		users.POST("/events/:eventID/bookings", h.booking.HandlePlaceBooking)
		users.GET("/bookings/:reference", h.booking.HandleGetBooking)
		users.POST("/bookings/:reference/cancel", h.booking.HandleCancelBooking)
		users.POST("/tickets/:number/scan", h.booking.HandleScanTicket)
	}

	organizer := s.Router.Group(basePath+"/organizer", authenticated)
	{
		organizer.POST("/events", h.event.HandleCreateEvent)
		organizer.GET("/events", h.event.HandleListMyEvents)
		organizer.GET("/events/:eventID", h.event.HandleGetMyEvent)
		organizer.PUT("/events/:eventID", h.event.HandleEditEvent)
		organizer.POST("/events/:eventID/image", h.event.HandleReplaceImage)
		organizer.POST("/events/:eventID/cancel", h.event.HandleCancelEvent)
		organizer.GET("/dashboard", h.report.HandleOrganizerDashboard)
		organizer.GET("/reports/sales", h.report.HandleOrganizerSales)
		organizer.GET("/reports/revenue", h.report.HandleOrganizerRevenue)
	}

	admin := s.Router.Group(basePath+"/admin", authenticated)
	{
		admin.GET("/dashboard", h.report.HandleAdminDashboard)
		admin.GET("/reports/sales", h.report.HandleMonthlySales)
		admin.GET("/reports/events", h.report.HandleEventsReport)
		admin.GET("/reports/users", h.report.HandleUsersReport)

		admin.GET("/events", h.event.HandleManageEvents)
		admin.POST("/events/:eventID/approve", h.event.HandleApproveEvent)
		admin.POST("/events/:eventID/reject", h.event.HandleRejectEvent)

		admin.GET("/users", h.user.HandleListUsers)
		admin.POST("/users", h.user.HandleCreateUser)
		admin.GET("/users/:userID", h.user.HandleGetUser)
		admin.PUT("/users/:userID", h.user.HandleUpdateUserAccess)
		admin.DELETE("/users/:userID", h.user.HandleDeleteUser)

		admin.GET("/venues", h.catalog.HandleListVenues)
		admin.POST("/venues", h.catalog.HandleCreateVenue)
		admin.PUT("/venues/:venueID", h.catalog.HandleUpdateVenue)
		admin.GET("/categories", h.catalog.HandleListCategories)
		admin.POST("/categories", h.catalog.HandleCreateCategory)
		admin.PUT("/categories/:categoryID", h.catalog.HandleUpdateCategory)

		admin.GET("/promotions", h.promotion.HandleListPromotions)
		admin.POST("/promotions", h.promotion.HandleCreatePromotion)
		admin.PUT("/promotions/:promotionID/active", h.promotion.HandleSetPromotionActive)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if s.Config.Storage != nil {
		s.Router.Static(s.Config.Storage.PublicPrefix, s.Config.Storage.ImageDir)
	}

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "StarEvents API"
	docs.SwaggerInfo.Description = "Event ticketing: browsing, booking, moderation and reports."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go s.Hub.Run(ctx)

	srv := &http.Server{
		Addr:              ":" + s.Config.API.Port,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("srv.ListenAndServe -> %w", err)
	case <-ctx.Done():
	}

	zap.L().Info("shutting down server")
	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown -> %w", err)
	}

	return nil
}
