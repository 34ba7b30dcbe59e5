package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/storefront-bot/internal/domain"
	"github.com/jackc/pgx/v5"
)

// ProductRepository реализует domain.ProductRepository
type ProductRepository struct {
	db DBTX
}

// NewProductRepository создает новый ProductRepository
func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetProductByID получает товар по идентификатору
func (r *ProductRepository) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	product := &domain.Product{}

	err := r.db.QueryRow(ctx,
		`SELECT id, name, price, category_id FROM products WHERE id = $1`,
		id,
	).Scan(&product.ID, &product.Name, &product.Price, &product.CategoryID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("repository: failed to get product %d: %w", id, err)
	}

	return product, nil
}

// GetProducts получает товары, новые первыми. При categoryID == nil
// возвращается весь каталог
func (r *ProductRepository) GetProducts(ctx context.Context, categoryID *int64) ([]*domain.Product, error) {
	var (
		rows pgx.Rows
		err  error
	)

	if categoryID != nil {
		rows, err = r.db.Query(ctx,
			`SELECT id, name, price, category_id FROM products WHERE category_id = $1 ORDER BY id DESC`,
			*categoryID,
		)
	} else {
		rows, err = r.db.Query(ctx,
			`SELECT id, name, price, category_id FROM products ORDER BY id DESC`,
		)
	}

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		product := &domain.Product{}
		if err := rows.Scan(&product.ID, &product.Name, &product.Price, &product.CategoryID); err != nil {
			return nil, fmt.Errorf("repository: failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating products: %w", err)
	}

	return products, nil
}

// AddProduct создает новый товар
func (r *ProductRepository) AddProduct(ctx context.Context, name string, price float64, categoryID int64) (*domain.Product, error) {
	product := &domain.Product{
		Name:       name,
		Price:      price,
		CategoryID: &categoryID,
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO products (name, price, category_id) VALUES ($1, $2, $3) RETURNING id`,
		name, price, categoryID,
	).Scan(&product.ID)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to add product %q: %w", name, err)
	}

	return product, nil
}

// DeleteProduct удаляет товар
func (r *ProductRepository) DeleteProduct(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete product %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}
