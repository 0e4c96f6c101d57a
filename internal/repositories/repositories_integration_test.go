package repositories

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"portfolio-api/internal/database"
	"portfolio-api/internal/models"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("portfolio"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	if err := database.RunMigrations(ctx, pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}
	testPool = pool

	code := m.Run()

	pool.Close()
	if err := testcontainers.TerminateContainer(container); err != nil {
		log.Printf("failed to terminate container: %v", err)
	}
	os.Exit(code)
}

func requirePool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() || testPool == nil {
		t.Skip("skipping integration test in short mode")
	}
	return testPool
}

func TestServiceRepository_CreateAndFindByID(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	repo := NewServiceRepository(pool)

	unique := fmt.Sprintf("%d", time.Now().UnixNano())
	service := &models.Service{
		Title:       "Integration Service " + unique,
		Description: "A service created by the repository round-trip check.",
		Icon:        "🌐",
		Price:       "Starting at $100",
		Features:    []string{"Feature A", "Feature B"},
		Category:    "web-development",
		IsActive:    true,
	}
	service.Prepare()

	if err := repo.Create(ctx, service); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if service.ID == uuid.Nil {
		t.Error("expected ID to be set after Create")
	}
	if service.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set by the database")
	}

	found, err := repo.FindByID(ctx, service.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.Title != service.Title {
		t.Errorf("expected title %q, got %q", service.Title, found.Title)
	}
	if len(found.Features) != 2 {
		t.Errorf("expected 2 features, got %d", len(found.Features))
	}
}

func TestServiceRepository_CreateRejectsInvalidRecord(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	repo := NewServiceRepository(pool)

	service := &models.Service{Description: "No title on this one."}
	service.Prepare()

	if err := repo.Create(ctx, service); err == nil {
		t.Fatal("expected validation error for missing title")
	}
}

func TestServiceRepository_DeleteUnknownIDIsErrNotFound(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	repo := NewServiceRepository(pool)

	if err := repo.Delete(ctx, uuid.New()); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPortfolioRepository_ListOrderingAndVisibility(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	repo := NewPortfolioRepository(pool)

	unique := fmt.Sprintf("%d", time.Now().UnixNano())
	newItem := func(title string, featured, active bool, completed time.Time) *models.Portfolio {
		item := &models.Portfolio{
			Title:          title + " " + unique,
			Description:    "Ordering check fixture.",
			Category:       "website",
			CompletionDate: completed,
			IsFeatured:     featured,
			IsActive:       active,
		}
		item.Prepare()
		return item
	}

	older := newItem("Older Featured", true, true, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	newer := newItem("Newer Featured", true, true, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	plain := newItem("Plain", false, true, time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC))
	hidden := newItem("Hidden", true, false, time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC))

	for _, item := range []*models.Portfolio{older, newer, plain, hidden} {
		if err := repo.Create(ctx, item); err != nil {
			t.Fatalf("Create %q failed: %v", item.Title, err)
		}
	}

	items, err := repo.List(ctx, PortfolioFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	position := map[uuid.UUID]int{}
	for i, item := range items {
		position[item.ID] = i
		if item.ID == hidden.ID {
			t.Error("inactive items must not be listed")
		}
	}
	for _, item := range []*models.Portfolio{older, newer, plain} {
		if _, ok := position[item.ID]; !ok {
			t.Fatalf("expected %q in listing", item.Title)
		}
	}
	if position[newer.ID] > position[older.ID] {
		t.Error("featured items must be ordered by completion date, newest first")
	}
	if position[plain.ID] < position[older.ID] {
		t.Error("featured items must come before non-featured ones")
	}
}

func TestPortfolioRepository_FilterByFeatured(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	repo := NewPortfolioRepository(pool)

	featured := true
	items, err := repo.List(ctx, PortfolioFilter{IsFeatured: &featured})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for _, item := range items {
		if !item.IsFeatured {
			t.Errorf("expected only featured items, got %q", item.Title)
		}
	}
}

func TestMessageRepository_MarkReadIsIdempotent(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	repo := NewMessageRepository(pool)

	msg := &models.Message{
		Name:    "Integration Tester",
		Email:   "tester@example.com",
		Subject: "Round trip",
		Body:    "Checking that mark-read settles on the same state.",
	}
	msg.Prepare()
	if err := repo.Create(ctx, msg); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if msg.IsRead {
		t.Error("new messages must start unread")
	}

	first, err := repo.MarkRead(ctx, msg.ID)
	if err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	second, err := repo.MarkRead(ctx, msg.ID)
	if err != nil {
		t.Fatalf("second MarkRead failed: %v", err)
	}
	if !first.IsRead || !second.IsRead {
		t.Error("expected isRead=true after both calls")
	}
}

func TestUserRepository_EmailUniqueness(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	repo := NewUserRepository(pool)

	email := fmt.Sprintf("unique-%d@example.com", time.Now().UnixNano())
	first := &models.User{Name: "First User", Email: email}
	first.Prepare()
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	duplicate := &models.User{Name: "Second User", Email: email}
	duplicate.Prepare()
	if err := repo.Create(ctx, duplicate); err == nil {
		t.Fatal("expected duplicate email to be rejected")
	}
}
