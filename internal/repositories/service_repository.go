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

// ServiceFilter is the allow-list of recognized query filters for services.
// Nil fields are not part of the WHERE clause.
type ServiceFilter struct {
	Category *string
	IsActive *bool
}

type ServiceRepository struct {
	pool *pgxpool.Pool
}

func NewServiceRepository(pool *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{pool: pool}
}

const serviceColumns = `id, title, description, icon, price, features, category, is_active, created_at, updated_at`

// List returns services matching the filter, newest first.
func (r *ServiceRepository) List(ctx context.Context, filter ServiceFilter) ([]models.Service, error) {
	var conditions []string
	var args []any

	if filter.Category != nil {
		args = append(args, *filter.Category)
		conditions = append(conditions, "category = $"+strconv.Itoa(len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		conditions = append(conditions, "is_active = $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + serviceColumns + ` FROM services`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := []models.Service{}
	for rows.Next() {
		var s models.Service
		if err := scanService(rows, &s); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *ServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`

	var s models.Service
	err := scanService(r.pool.QueryRow(ctx, query, id), &s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Create inserts the service. Constraints are re-checked here so invalid data
// is rejected even when the request-layer check is bypassed.
func (r *ServiceRepository) Create(ctx context.Context, service *models.Service) error {
	if err := validation.Struct(service); err != nil {
		return err
	}

	query := `
		INSERT INTO services (id, title, description, icon, price, features, category, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		service.ID,
		service.Title,
		service.Description,
		service.Icon,
		service.Price,
		service.Features,
		service.Category,
		service.IsActive,
	).Scan(&service.CreatedAt, &service.UpdatedAt)
}

// Update writes the full merged record and refreshes updated_at.
func (r *ServiceRepository) Update(ctx context.Context, service *models.Service) error {
	if err := validation.Struct(service); err != nil {
		return err
	}

	query := `
		UPDATE services
		SET title = $2, description = $3, icon = $4, price = $5, features = $6,
		    category = $7, is_active = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		service.ID,
		service.Title,
		service.Description,
		service.Icon,
		service.Price,
		service.Features,
		service.Category,
		service.IsActive,
	).Scan(&service.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *ServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanService(row pgx.Row, s *models.Service) error {
	return row.Scan(
		&s.ID,
		&s.Title,
		&s.Description,
		&s.Icon,
		&s.Price,
		&s.Features,
		&s.Category,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
}
