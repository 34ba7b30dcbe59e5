package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/avc/storefront-bot/internal/domain"
)

// CatalogService реализует domain.CatalogService
type CatalogService struct {
	productRepo  domain.ProductRepository
	categoryRepo domain.CategoryRepository
	buttonRepo   domain.ButtonRepository
}

// NewCatalogService создает новый CatalogService
func NewCatalogService(
	productRepo domain.ProductRepository,
	categoryRepo domain.CategoryRepository,
	buttonRepo domain.ButtonRepository,
) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		buttonRepo:   buttonRepo,
	}
}

// GetCategories возвращает все разделы каталога
func (s *CatalogService) GetCategories(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categoryRepo.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog service: failed to get categories: %w", err)
	}

	return categories, nil
}

// GetProducts возвращает товары раздела, новые первыми.
// При categoryID == nil возвращается весь каталог
func (s *CatalogService) GetProducts(ctx context.Context, categoryID *int64) ([]*domain.Product, error) {
	products, err := s.productRepo.GetProducts(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("catalog service: failed to get products: %w", err)
	}

	return products, nil
}

// AddProduct добавляет товар в существующий раздел
func (s *CatalogService) AddProduct(ctx context.Context, name string, price float64, categoryID int64) (*domain.Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if price <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	// Раздел должен существовать до вставки товара
	if _, err := s.categoryRepo.GetCategoryByID(ctx, categoryID); err != nil {
		return nil, err
	}

	product, err := s.productRepo.AddProduct(ctx, name, price, categoryID)
	if err != nil {
		return nil, fmt.Errorf("catalog service: failed to add product %q: %w", name, err)
	}

	return product, nil
}

// DeleteProduct удаляет товар из каталога. Снимки названия и цены
// в существующих заказах не затрагиваются
func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	return s.productRepo.DeleteProduct(ctx, id)
}

// AddCategory создает новый раздел каталога
func (s *CatalogService) AddCategory(ctx context.Context, name string) (*domain.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidInput
	}

	category, err := s.categoryRepo.AddCategory(ctx, name)
	if err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory удаляет раздел, оставляя его товары в каталоге без раздела
func (s *CatalogService) DeleteCategory(ctx context.Context, id int64) error {
	return s.categoryRepo.DeleteCategory(ctx, id)
}

// GetButtons возвращает все произвольные кнопки меню
func (s *CatalogService) GetButtons(ctx context.Context) ([]*domain.CustomButton, error) {
	buttons, err := s.buttonRepo.GetButtons(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog service: failed to get buttons: %w", err)
	}

	return buttons, nil
}

// AddButton создает произвольную кнопку со ссылкой
func (s *CatalogService) AddButton(ctx context.Context, text, url string) (*domain.CustomButton, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, domain.ErrInvalidButtonURL
	}

	button, err := s.buttonRepo.AddButton(ctx, text, url)
	if err != nil {
		return nil, fmt.Errorf("catalog service: failed to add button %q: %w", text, err)
	}

	return button, nil
}

// DeleteButton удаляет произвольную кнопку
func (s *CatalogService) DeleteButton(ctx context.Context, id int64) error {
	return s.buttonRepo.DeleteButton(ctx, id)
}
