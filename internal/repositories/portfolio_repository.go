package repositories

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/models"
	"portfolio-api/internal/validation"
)

// PortfolioFilter is the allow-list of recognized query filters for portfolio
// items. Listing always restricts to active items on top of these.
type PortfolioFilter struct {
	Category   *string
	IsFeatured *bool
}

type PortfolioRepository struct {
	pool *pgxpool.Pool
}

func NewPortfolioRepository(pool *pgxpool.Pool) *PortfolioRepository {
	return &PortfolioRepository{pool: pool}
}

const portfolioColumns = `id, title, description, category, technologies, images, project_url,
	github_url, client, completion_date, is_featured, is_active, created_at, updated_at`

// List returns active portfolio items, featured first, then most recently
// completed first.
func (r *PortfolioRepository) List(ctx context.Context, filter PortfolioFilter) ([]models.Portfolio, error) {
	conditions := []string{"is_active = TRUE"}
	var args []any

	if filter.Category != nil {
		args = append(args, *filter.Category)
		conditions = append(conditions, "category = $"+strconv.Itoa(len(args)))
	}
	if filter.IsFeatured != nil {
		args = append(args, *filter.IsFeatured)
		conditions = append(conditions, "is_featured = $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + portfolioColumns + ` FROM portfolio
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY is_featured DESC, completion_date DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Portfolio{}
	for rows.Next() {
		var p models.Portfolio
		if err := scanPortfolio(rows, &p); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *PortfolioRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Portfolio, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolio WHERE id = $1`

	var p models.Portfolio
	err := scanPortfolio(r.pool.QueryRow(ctx, query, id), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PortfolioRepository) Create(ctx context.Context, item *models.Portfolio) error {
	if err := validation.Struct(item); err != nil {
		return err
	}

	query := `
		INSERT INTO portfolio (id, title, description, category, technologies, images,
			project_url, github_url, client, completion_date, is_featured, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		item.ID,
		item.Title,
		item.Description,
		item.Category,
		item.Technologies,
		item.Images,
		item.ProjectURL,
		item.GithubURL,
		item.Client,
		item.CompletionDate,
		item.IsFeatured,
		item.IsActive,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
}

func (r *PortfolioRepository) Update(ctx context.Context, item *models.Portfolio) error {
	if err := validation.Struct(item); err != nil {
		return err
	}

	query := `
		UPDATE portfolio
		SET title = $2, description = $3, category = $4, technologies = $5, images = $6,
		    project_url = $7, github_url = $8, client = $9, completion_date = $10,
		    is_featured = $11, is_active = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		item.ID,
		item.Title,
		item.Description,
		item.Category,
		item.Technologies,
		item.Images,
		item.ProjectURL,
		item.GithubURL,
		item.Client,
		item.CompletionDate,
		item.IsFeatured,
		item.IsActive,
	).Scan(&item.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *PortfolioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM portfolio WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanPortfolio(row pgx.Row, p *models.Portfolio) error {
	return row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Category,
		&p.Technologies,
		&p.Images,
		&p.ProjectURL,
		&p.GithubURL,
		&p.Client,
		&p.CompletionDate,
		&p.IsFeatured,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}
