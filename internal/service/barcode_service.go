package service

import (
	"alcyxob/nutrition-app/internal/domain"
	"alcyxob/nutrition-app/internal/repository"
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidBarcode  = errors.New("barcode must be 8 to 14 digits")
	ErrInvalidProduct  = errors.New("invalid product")
)

// DefaultProducts is the built-in sample catalog.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{Barcode: "5449000000996", Name: "Coca-Cola (330ml)", Calories: 139, Proteins: 0, Carbohydrates: 35, Fats: 0},
		{Barcode: "8710398500395", Name: "Greek Yogurt (150g)", Calories: 150, Proteins: 15, Carbohydrates: 6, Fats: 8},
		{Barcode: "3017620422003", Name: "Nutella (15g serving)", Calories: 80, Proteins: 1, Carbohydrates: 8.5, Fats: 4.5},
		{Barcode: "5000159459228", Name: "Snickers Bar (50g)", Calories: 250, Proteins: 4.5, Carbohydrates: 30, Fats: 12},
	}
}

type BarcodeService interface {
	LookupProduct(ctx context.Context, barcode string) (*domain.Product, error)
	SaveProduct(ctx context.Context, product *domain.Product) error
	SeedDefaultProducts(ctx context.Context) error
}

type barcodeService struct {
	productRepo repository.ProductRepository
}

func NewBarcodeService(productRepo repository.ProductRepository) BarcodeService {
	return &barcodeService{productRepo: productRepo}
}

// NormalizeBarcode trims code and checks it is an EAN/UPC style digit string.
func NormalizeBarcode(code string) (string, error) {
	code = strings.TrimSpace(code)
	if len(code) < 8 || len(code) > 14 {
		return "", ErrInvalidBarcode
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return "", ErrInvalidBarcode
		}
	}
	return code, nil
}

func (s *barcodeService) LookupProduct(ctx context.Context, barcode string) (*domain.Product, error) {
	code, err := NormalizeBarcode(barcode)
	if err != nil {
		return nil, err
	}
	product, err := s.productRepo.GetByBarcode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *barcodeService) SaveProduct(ctx context.Context, product *domain.Product) error {
	code, err := NormalizeBarcode(product.Barcode)
	if err != nil {
		return err
	}
	product.Barcode = code
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if product.Calories < 0 || product.Proteins < 0 || product.Carbohydrates < 0 || product.Fats < 0 {
		return fmt.Errorf("%w: nutrient values must not be negative", ErrInvalidProduct)
	}
	return s.productRepo.Upsert(ctx, product)
}

func (s *barcodeService) SeedDefaultProducts(ctx context.Context) error {
	for _, p := range DefaultProducts() {
		p := p
		if err := s.productRepo.Upsert(ctx, &p); err != nil {
			return fmt.Errorf("seeding product %s: %w", p.Barcode, err)
		}
	}
	return nil
}

// MealLogInputFromProduct pre-fills a meal log form from a scanned product.
// Nutrient values are rounded to whole units.
func MealLogInputFromProduct(p domain.Product, mealType, mealDate, mealTime string) MealLogInput {
	return MealLogInput{
		MealType:      mealType,
		MealDate:      mealDate,
		MealTime:      mealTime,
		Calories:      int(math.Round(p.Calories)),
		Proteins:      int(math.Round(p.Proteins)),
		Fats:          int(math.Round(p.Fats)),
		Carbohydrates: int(math.Round(p.Carbohydrates)),
		Description:   p.Name,
	}
}
