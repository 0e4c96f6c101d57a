package server

import (
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/config"
	"portfolio-api/internal/handlers"
	"portfolio-api/internal/mailer"
	"portfolio-api/internal/middlewares"
	"portfolio-api/internal/repositories"
	"portfolio-api/internal/routes"
	"portfolio-api/internal/services"
	"portfolio-api/web"
)

// NewServer wires repositories, services and handlers onto a configured gin
// router and returns the HTTP server ready to listen.
func NewServer(cfg *config.Config, pool *pgxpool.Pool) *http.Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Notification dispatch is optional; the rest of the API works without it.
	var notifier services.Notifier
	if cfg.SMTP.Enabled() {
		notifier = mailer.New(cfg.SMTP)
	} else {
		slog.Warn("SMTP not configured, contact notifications disabled")
	}

	// Dependency injection
	serviceRepo := repositories.NewServiceRepository(pool)
	portfolioRepo := repositories.NewPortfolioRepository(pool)
	messageRepo := repositories.NewMessageRepository(pool)
	userRepo := repositories.NewUserRepository(pool)

	serviceHandler := handlers.NewServiceHandler(services.NewServiceService(serviceRepo))
	portfolioHandler := handlers.NewPortfolioHandler(services.NewPortfolioService(portfolioRepo))
	messageHandler := handlers.NewMessageHandler(services.NewMessageService(messageRepo, notifier))
	userHandler := handlers.NewUserHandler(services.NewUserService(userRepo))

	router := gin.New()
	router.Use(gin.Logger(), middlewares.Recovery())

	// Only the fixed allow-list of origins may call the API with credentials;
	// everything else is rejected before any controller runs.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Admin-Key"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(router, serviceHandler, portfolioHandler, messageHandler, userHandler, cfg.AdminAPIKey)
	registerFrontend(router)

	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

func registerFrontend(router *gin.Engine) {
	tmpl := template.Must(template.ParseFS(web.FS, "templates/*.html"))
	router.SetHTMLTemplate(tmpl)

	staticFS, err := fs.Sub(web.FS, "static")
	if err != nil {
		panic(err)
	}
	router.StaticFS("/static", http.FS(staticFS))

	router.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", nil)
	})
}
