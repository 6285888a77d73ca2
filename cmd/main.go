package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/arpitastudio/studio-api/internal/handlers"
	"github.com/arpitastudio/studio-api/internal/logger"
	"github.com/arpitastudio/studio-api/internal/middlewares"
	"github.com/arpitastudio/studio-api/internal/repositories"
	"github.com/arpitastudio/studio-api/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title studio-api
// @version 1.0.0
// @description Booking, contact and payment tracking backend with an admin dashboard API
// @host localhost:5000
// @BasePath /api
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, databaseURL,
		pgMaxOpenConns, pgMaxIdleConns,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, databaseURL,
		pgMaxOpenConns, pgMaxIdleConns,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, logging, and storage configuration. An empty DATABASE_URL
// selects the in-memory storage backend.
func parseConfig(path string) (
	appHost, appPort, logLevel, databaseURL string,
	pgMaxOpenConns, pgMaxIdleConns int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "0.0.0.0")
	appPort = getEnv("PORT", "5000")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Storage config
	databaseURL = getEnv("DATABASE_URL", "")
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	return
}

// buildServices wires repositories and services for the chosen storage
// backend. A nil db selects the in-memory repositories.
func buildServices(db *sqlx.DB) (
	*services.BookingService,
	*services.ContactService,
	*services.PaymentService,
	*services.DownloadService,
	*services.BlogService,
	*services.UserService,
	*services.AdminService,
) {
	if db != nil {
		bookingRepo := repositories.NewBookingDBRepository(db)
		contactRepo := repositories.NewContactDBRepository(db)
		paymentRepo := repositories.NewPaymentDBRepository(db)
		downloadRepo := repositories.NewDownloadDBRepository(db)
		blogRepo := repositories.NewBlogPostDBRepository(db)
		userRepo := repositories.NewUserDBRepository(db)

		return services.NewBookingService(bookingRepo, bookingRepo),
			services.NewContactService(contactRepo, contactRepo),
			services.NewPaymentService(paymentRepo, paymentRepo),
			services.NewDownloadService(downloadRepo, downloadRepo),
			services.NewBlogService(blogRepo, blogRepo, blogRepo, blogRepo),
			services.NewUserService(userRepo, userRepo),
			services.NewAdminService(bookingRepo, contactRepo, paymentRepo, downloadRepo, blogRepo)
	}

	bookingRepo := repositories.NewBookingRepository()
	contactRepo := repositories.NewContactRepository()
	paymentRepo := repositories.NewPaymentRepository()
	downloadRepo := repositories.NewDownloadRepository()
	blogRepo := repositories.NewBlogPostRepository()
	userRepo := repositories.NewUserRepository()

	return services.NewBookingService(bookingRepo, bookingRepo),
		services.NewContactService(contactRepo, contactRepo),
		services.NewPaymentService(paymentRepo, paymentRepo),
		services.NewDownloadService(downloadRepo, downloadRepo),
		services.NewBlogService(blogRepo, blogRepo, blogRepo, blogRepo),
		services.NewUserService(userRepo, userRepo),
		services.NewAdminService(bookingRepo, contactRepo, paymentRepo, downloadRepo, blogRepo)
}

// newRouter builds the API router with all routes and middleware.
func newRouter(
	bookingSvc *services.BookingService,
	contactSvc *services.ContactService,
	paymentSvc *services.PaymentService,
	downloadSvc *services.DownloadService,
	blogSvc *services.BlogService,
	adminSvc *services.AdminService,
) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.RecoverMiddleware(logger.Log))
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api", func(r chi.Router) {
		r.Get("/admin/stats", handlers.NewStatsHandler(adminSvc))
		r.Get("/admin/recent-bookings", handlers.NewRecentBookingsHandler(bookingSvc))
		r.Get("/admin/recent-contacts", handlers.NewRecentContactsHandler(contactSvc))
		r.Get("/admin/recent-payments", handlers.NewRecentPaymentsHandler(paymentSvc))
		r.Get("/admin/recent-downloads", handlers.NewRecentDownloadsHandler(downloadSvc))
		r.Get("/admin/export/bookings", handlers.NewExportBookingsHandler(bookingSvc))
		r.Get("/admin/export/contacts", handlers.NewExportContactsHandler(contactSvc))
		r.Get("/admin/export/payments", handlers.NewExportPaymentsHandler(paymentSvc))
		r.Get("/admin/export/downloads", handlers.NewExportDownloadsHandler(downloadSvc))
		r.Get("/admin/export/all", handlers.NewExportAllHandler(adminSvc))

		r.Post("/contact", handlers.NewCreateContactHandler(contactSvc))
		r.Post("/bookings", handlers.NewCreateBookingHandler(bookingSvc))
		r.Get("/bookings", handlers.NewListBookingsHandler(bookingSvc))
		r.Post("/payments", handlers.NewCreatePaymentHandler(paymentSvc))
		r.Post("/downloads", handlers.NewCreateDownloadHandler(downloadSvc))

		r.Get("/blog-posts", handlers.NewListBlogPostsHandler(blogSvc))
		r.Post("/blog-posts", handlers.NewCreateBlogPostHandler(blogSvc))
		r.Get("/blog-posts/{id}", handlers.NewGetBlogPostHandler(blogSvc))
		r.Patch("/blog-posts/{id}", handlers.NewUpdateBlogPostHandler(blogSvc))
		r.Delete("/blog-posts/{id}", handlers.NewDeleteBlogPostHandler(blogSvc))
	})

	return r
}

// run initializes the logger and storage backend, sets up routes, and
// serves HTTP with graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel, databaseURL string,
	pgMaxOpenConns, pgMaxIdleConns int,
) error {
	// Initialize logger
	log, err := logger.Initialize(logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL when configured, otherwise keep everything
	// in process memory.
	var db *sqlx.DB
	if databaseURL != "" {
		log.Infof("Connecting to PostgreSQL")
		db, err = sqlx.ConnectContext(ctx, "pgx", databaseURL)
		if err != nil {
			log.Errorw("PostgreSQL connection error", "error", err)
			return err
		}
		defer db.Close()
		db.SetMaxOpenConns(pgMaxOpenConns)
		db.SetMaxIdleConns(pgMaxIdleConns)
		if err := db.PingContext(ctx); err != nil {
			log.Errorw("PostgreSQL ping failed", "error", err)
			return err
		}
	} else {
		log.Info("DATABASE_URL not set, using in-memory storage")
	}

	// Initialize services
	bookingSvc, contactSvc, paymentSvc, downloadSvc, blogSvc, _, adminSvc := buildServices(db)

	// Setup router
	r := newRouter(bookingSvc, contactSvc, paymentSvc, downloadSvc, blogSvc, adminSvc)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
