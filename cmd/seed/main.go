package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/config"
	"portfolio-api/internal/database"
	"portfolio-api/internal/logging"
	"portfolio-api/internal/models"
	"portfolio-api/internal/repositories"
)

// Populates the database with sample data for local development.
// Run: go run ./cmd/seed

func sampleServices() []models.Service {
	return []models.Service{
		{
			Title:       "Website Design & Development",
			Description: "I design and develop your website according to your specific needs. Whether you need a personal website, company website, e-commerce store, or any other type of website.",
			Icon:        "🌐",
			Price:       "Custom pricing - Starting at $300",
			Category:    "web-development",
			Features: []string{
				"Professional & Modern Design",
				"Responsive on All Devices (Mobile, Tablet, Desktop)",
				"Fast Loading Speed",
				"SEO Optimized",
				"Easy-to-Use Admin Panel",
				"Social Media Integration",
				"Contact Forms & Interaction",
				"High Security & Protection",
			},
			IsActive: true,
		},
		{
			Title:       "Website Hosting Services",
			Description: "I provide hosting services for your website on fast and secure servers. I handle all technical aspects to ensure your site runs efficiently 24/7.",
			Icon:        "🚀",
			Price:       "Starting at $50/month",
			Category:    "web-development",
			Features: []string{
				"Fast & Secure Servers",
				"Daily Backups",
				"Free SSL Certificate (HTTPS)",
				"Continuous Technical Support",
				"Professional Email Service",
				"cPanel Control Panel",
				"Adequate Storage Space",
				"Free Domain (Depending on Package)",
			},
			IsActive: true,
		},
		{
			Title:       "Website Maintenance & Support",
			Description: "Regular maintenance service for your website to ensure optimal performance. I handle updates, bug fixes, content additions, and continuous monitoring.",
			Icon:        "🔧",
			Price:       "Starting at $30/month",
			Category:    "consulting",
			Features: []string{
				"Regular Security Updates",
				"Fix Any Technical Issues",
				"Add New Content & Pages",
				"Update Design & Content",
				"Website Performance Monitoring",
				"Monthly Reports",
				"Regular Backups",
				"Continuous Consultation & Guidance",
			},
			IsActive: true,
		},
	}
}

func sampleUsers() []models.User {
	return []models.User{
		{
			Name:   "Khaled Ahmed",
			Email:  "akhaledahmedmahamed@gmail.com",
			Role:   "admin",
			Bio:    "Full-stack web developer specializing in website design and development",
			Avatar: "https://i.pravatar.cc/150?img=1",
		},
	}
}

func samplePortfolio() []models.Portfolio {
	return []models.Portfolio{
		{
			Title:        "Business Company Website",
			Description:  "Design and development of a professional website for a trading company specializing in import and export. The site includes service showcase, image gallery, contact form, and social media integration.",
			Category:     "website",
			Technologies: []string{"React", "Node.js", "MongoDB", "TailwindCSS"},
			Images: []string{
				"https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800",
				"https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?w=800",
			},
			ProjectURL:     "https://example-company.com",
			Client:         "International Trade Company",
			CompletionDate: time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC),
			IsFeatured:     true,
			IsActive:       true,
		},
		{
			Title:        "Fashion E-Commerce Store",
			Description:  "Development of a complete e-commerce store for online clothing sales. Includes shopping cart system, secure payment gateway, admin dashboard, and order tracking.",
			Category:     "ecommerce",
			Technologies: []string{"React", "Express", "MongoDB", "Stripe", "TailwindCSS"},
			Images: []string{
				"https://images.unsplash.com/photo-1441984904996-e0b6ba687e04?w=800",
				"https://images.unsplash.com/photo-1472851294608-062f824d29cc?w=800",
			},
			ProjectURL:     "https://example-store.com",
			Client:         "Elegance Store",
			CompletionDate: time.Date(2024, 9, 20, 0, 0, 0, 0, time.UTC),
			IsFeatured:     true,
			IsActive:       true,
		},
		{
			Title:          "Photographer Portfolio Website",
			Description:    "Professional portfolio website to showcase photographer work. Features interactive image gallery, about page, services, and booking form.",
			Category:       "website",
			Technologies:   []string{"React", "Node.js", "TailwindCSS"},
			Images:         []string{"https://images.unsplash.com/photo-1542744173-8e7e53415bb0?w=800"},
			ProjectURL:     "https://photographer-portfolio.com",
			Client:         "Ahmed Photography",
			CompletionDate: time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC),
			IsFeatured:     false,
			IsActive:       true,
		},
		{
			Title:        "Medical Appointment Booking System",
			Description:  "Web application for booking medical appointments at clinics. Includes appointment management system, automatic notifications, and Google Calendar integration.",
			Category:     "web-app",
			Technologies: []string{"React", "Node.js", "MongoDB", "Express", "Socket.io"},
			Images:       []string{"https://images.unsplash.com/photo-1576091160399-112ba8d25d1d?w=800"},
			ProjectURL:   "https://medical-booking.com",
			Client:       "Al Noor Medical Clinic",
			CompletionDate: time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC),
			IsFeatured:   true,
			IsActive:     true,
		},
	}
}

func clearTables(ctx context.Context, pool *pgxpool.Pool) error {
	for _, table := range []string{"services", "portfolio", "messages", "users"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("failed to load configuration", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool); err != nil {
		logging.Fatal("failed to run migrations", "error", err)
	}

	if err := clearTables(ctx, pool); err != nil {
		logging.Fatal("failed to clear existing data", "error", err)
	}
	slog.Info("cleared existing data")

	serviceRepo := repositories.NewServiceRepository(pool)
	services := sampleServices()
	for i := range services {
		services[i].Prepare()
		if err := serviceRepo.Create(ctx, &services[i]); err != nil {
			logging.Fatal("failed to insert service", "title", services[i].Title, "error", err)
		}
	}

	userRepo := repositories.NewUserRepository(pool)
	users := sampleUsers()
	for i := range users {
		users[i].Prepare()
		if err := userRepo.Create(ctx, &users[i]); err != nil {
			logging.Fatal("failed to insert user", "email", users[i].Email, "error", err)
		}
	}

	portfolioRepo := repositories.NewPortfolioRepository(pool)
	items := samplePortfolio()
	for i := range items {
		items[i].Prepare()
		if err := portfolioRepo.Create(ctx, &items[i]); err != nil {
			logging.Fatal("failed to insert portfolio item", "title", items[i].Title, "error", err)
		}
	}

	slog.Info("sample data inserted",
		"services", len(services),
		"users", len(users),
		"portfolio", len(items),
	)
}
