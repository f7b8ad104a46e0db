package main

import (
	"database/sql"
	"net/http"
	"net/url"
	"os"
	"path"
	"time"

	_ "github.com/lib/pq"

	"littlemaestros/config"
	authAdapter "littlemaestros/internal/adapters/auth"
	emailAdapter "littlemaestros/internal/adapters/email"
	"littlemaestros/internal/adapters/mainstreet"
	delivery "littlemaestros/internal/delivery/http"
	"littlemaestros/internal/delivery/http/controllers"
	"littlemaestros/internal/delivery/http/middleware"
	"littlemaestros/internal/repository/postgres"
	"littlemaestros/internal/services"

	_ "littlemaestros/docs"
)

const (
	serviceTimeout = 10 * time.Second
	fetchTimeout   = 30 * time.Second
)

// @title Little Maestros API
// @version 1.0
// @description Backend for the Little Maestros marketing site: public page data, admin CRUD, and the MainStreet booking calendar sync.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("database unreachable", "err", err)
		os.Exit(1)
	}

	// Repositories
	classRepo := postgres.NewClassRepository(db)
	locationRepo := postgres.NewLocationRepository(db)
	teacherRepo := postgres.NewTeacherRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	testimonialRepo := postgres.NewTestimonialRepository(db)
	pageContentRepo := postgres.NewPageContentRepository(db)
	photoRepo := postgres.NewPhotoRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	contactRepo := postgres.NewContactRepository(db)
	newsletterRepo := postgres.NewNewsletterRepository(db)

	// Adapters
	tokens := authAdapter.NewJWTTokens(cfg.JWTSecret)
	checker := authAdapter.NewSharedSecretChecker(cfg.AdminPassword, cfg.AdminPasswordHash)
	mailer, err := emailAdapter.NewMailer(emailAdapter.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: emailAdapter.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	renderer := emailAdapter.NewTemplateRenderer()
	fetcher := mainstreet.NewHTTPFetcher(&http.Client{Timeout: fetchTimeout}, cfg.MainStreetURL)
	parser := mainstreet.NewParser(registerBase(cfg.MainStreetURL))

	// Services
	emailService := services.NewEmailService(mailer, renderer, cfg.ContactNotifyEmail, logger)
	authService := services.NewAuthService(checker, tokens, tokens, cfg.SessionTTL)
	catalogService := services.NewCatalogService(classRepo, locationRepo, teacherRepo, serviceTimeout)
	contentService := services.NewContentService(pageContentRepo, testimonialRepo, photoRepo, serviceTimeout)
	scheduleService := services.NewScheduleService(sessionRepo, serviceTimeout)
	inquiryService := services.NewInquiryService(registrationRepo, contactRepo, newsletterRepo, emailService, cfg.ContactNotifyEmail, logger, serviceTimeout)
	syncService := services.NewSyncService(sessionRepo, fetcher, parser, logger, fetchTimeout+serviceTimeout)

	// Controllers
	secureCookies := cfg.Environment == "production"
	authController := controllers.NewAuthController(logger, authService, cfg.SessionTTL, secureCookies)
	catalogController := controllers.NewCatalogController(logger, catalogService)
	scheduleController := controllers.NewScheduleController(logger, scheduleService)
	contentController := controllers.NewContentController(logger, contentService)
	inquiryController := controllers.NewInquiryController(logger, inquiryService)
	syncController := controllers.NewSyncController(logger, syncService)

	mux := delivery.NewRouter(
		authService,
		authController,
		catalogController,
		scheduleController,
		contentController,
		inquiryController,
		syncController,
	)

	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.AllowedOrigins, mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
	if err := server.ListenAndServe(); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

// registerBase returns the directory of the booking page URL, which register
// links on the page are relative to.
func registerBase(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return pageURL
	}
	u.Path = path.Dir(u.Path)
	u.RawQuery = ""
	return u.String()
}
