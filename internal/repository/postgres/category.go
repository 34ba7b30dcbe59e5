package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/storefront-bot/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// CategoryRepository реализует domain.CategoryRepository
type CategoryRepository struct {
	db DBTX
}

// NewCategoryRepository создает новый CategoryRepository
func NewCategoryRepository(db DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetCategories получает все разделы каталога
func (r *CategoryRepository) GetCategories(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM categories ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get categories: %w", err)
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		category := &domain.Category{}
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("repository: failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating categories: %w", err)
	}

	return categories, nil
}

// GetCategoryByID получает раздел по идентификатору
func (r *CategoryRepository) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	category := &domain.Category{}

	err := r.db.QueryRow(ctx,
		`SELECT id, name FROM categories WHERE id = $1`,
		id,
	).Scan(&category.ID, &category.Name)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("repository: failed to get category %d: %w", id, err)
	}

	return category, nil
}

// AddCategory создает новый раздел
func (r *CategoryRepository) AddCategory(ctx context.Context, name string) (*domain.Category, error) {
	category := &domain.Category{Name: name}

	err := r.db.QueryRow(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`,
		name,
	).Scan(&category.ID)

	if err != nil {
		// Проверка на уникальность имени (код ошибки PostgreSQL)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrCategoryExists
		}
		return nil, fmt.Errorf("repository: failed to add category %q: %w", name, err)
	}

	return category, nil
}

// DeleteCategory удаляет раздел, предварительно отвязывая его товары.
// Товары остаются в каталоге без раздела
func (r *CategoryRepository) DeleteCategory(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin category delete: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	_, err = tx.Exec(ctx, `UPDATE products SET category_id = NULL WHERE category_id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to detach products from category %d: %w", id, err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete category %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit category delete: %w", err)
	}

	return nil
}
