package service

import (
	"context"

	"github.com/siamstore/backend/internal/models"
	"github.com/siamstore/backend/internal/repository"
)

// SeedResult reports the outcome of a seeding request
type SeedResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// demoProducts are inserted by Seed when the catalog is empty
var demoProducts = []models.Product{
	{
		Title:       "เสื้อยืดโลโก้",
		Description: "ผ้าคอตตอน 100% นุ่มสบาย",
		Price:       299.0,
		Category:    "เสื้อผ้า",
		InStock:     true,
		Image:       "https://images.unsplash.com/photo-1520975916090-3105956dac38?w=800&q=80",
	},
	{
		Title:       "แก้วน้ำสแตนเลส",
		Description: "เก็บความเย็นได้นาน 12 ชม.",
		Price:       459.0,
		Category:    "บ้านและไลฟ์สไตล์",
		InStock:     true,
		Image:       "https://images.unsplash.com/photo-1610701592028-1a23e5f912c3?w=800&q=80",
	},
	{
		Title:       "หูฟังไร้สาย",
		Description: "แบตอึด เสียงชัด เบสแน่น",
		Price:       1290.0,
		Category:    "อิเล็กทรอนิกส์",
		InStock:     true,
		Image:       "https://images.unsplash.com/photo-1518443895914-6bdd97f5d2f1?w=800&q=80",
	},
}

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// CreateProduct validates and persists a product, returning its identifier
func (s *ProductService) CreateProduct(ctx context.Context, product models.Product) (string, error) {
	if err := product.Validate(); err != nil {
		return "", err
	}
	return s.repo.Create(ctx, product)
}

// ListProducts returns products, optionally filtered by category
func (s *ProductService) ListProducts(ctx context.Context, category string) ([]models.StoredProduct, error) {
	return s.repo.List(ctx, category)
}

// Seed inserts demo products if the catalog is empty. A second call is a
// no-op reported in the result message.
func (s *ProductService) Seed(ctx context.Context) (*SeedResult, error) {
	exists, err := s.repo.Any(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return &SeedResult{Status: "ok", Message: "Products already exist"}, nil
	}

	for _, p := range demoProducts {
		if _, err := s.repo.Create(ctx, p); err != nil {
			return nil, err
		}
	}
	return &SeedResult{Status: "ok", Message: "Seeded demo products"}, nil
}
