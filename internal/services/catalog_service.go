// internal/services/catalog_service.go
package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gpstracker/inventory-backend/internal/apperrors"
	"github.com/gpstracker/inventory-backend/internal/models"
	"github.com/gpstracker/inventory-backend/internal/repository"
)

// CatalogService owns product records and their name/sku uniqueness.
type CatalogService struct {
	products repository.ProductStore
}

// ProductRequest carries the full product payload. Updates replace every
// mutable field wholesale; absent fields are not preserved, so callers must
// resend the full record.
type ProductRequest struct {
	Name        string                 `json:"name" validate:"required,max=100"`
	SKU         string                 `json:"sku" validate:"required,sku"`
	Description string                 `json:"description"`
	Category    models.ProductCategory `json:"category" validate:"required,product_category"`
	CostPrice   decimal.Decimal        `json:"cost_price" validate:"-"`
	SalePrice   decimal.Decimal        `json:"sale_price" validate:"-"`
}

func NewCatalogService(products repository.ProductStore) *CatalogService {
	return &CatalogService{products: products}
}

func (s *CatalogService) CreateProduct(ctx context.Context, req *ProductRequest) (*models.Product, error) {
	// Check for conflicts before attempting to save; sku first, then name.
	// The store's unique indexes remain the authoritative guard.
	if exists, err := s.products.ExistsBySKU(ctx, req.SKU); err != nil {
		return nil, err
	} else if exists {
		return nil, apperrors.Conflict("Product", "sku", req.SKU)
	}

	if exists, err := s.products.ExistsByName(ctx, req.Name); err != nil {
		return nil, err
	} else if exists {
		return nil, apperrors.Conflict("Product", "name", req.Name)
	}

	product := &models.Product{
		Name:        req.Name,
		SKU:         req.SKU,
		Description: req.Description,
		Category:    req.Category,
		CostPrice:   req.CostPrice,
		SalePrice:   req.SalePrice,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *CatalogService) GetProductBySKU(ctx context.Context, sku string) (*models.Product, error) {
	return s.products.FindBySKU(ctx, sku)
}

// ListProducts returns the whole catalog ordered by creation time.
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.products.FindAll(ctx)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, req *ProductRequest) (*models.Product, error) {
	existing, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Re-check uniqueness only when the value actually changes, so a product
	// can be re-saved under its own sku/name.
	if existing.SKU != req.SKU {
		if err := s.checkOwnedByOther(ctx, id, "sku", req.SKU, s.products.FindBySKU); err != nil {
			return nil, err
		}
	}
	if existing.Name != req.Name {
		if err := s.checkOwnedByOther(ctx, id, "name", req.Name, s.products.FindByName); err != nil {
			return nil, err
		}
	}

	existing.Name = req.Name
	existing.SKU = req.SKU
	existing.Description = req.Description
	existing.Category = req.Category
	existing.CostPrice = req.CostPrice
	existing.SalePrice = req.SalePrice
	// id and createdAt stay as stored; updatedAt is refreshed by the store.

	if err := s.products.Save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	// Deletion is unconditional: no referential check against inventory
	// items is performed.
	return s.products.Delete(ctx, id)
}

func (s *CatalogService) checkOwnedByOther(ctx context.Context, id uuid.UUID, field, value string,
	find func(context.Context, string) (*models.Product, error)) error {
	holder, err := find(ctx, value)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil
		}
		return err
	}
	if holder.ID != id {
		return apperrors.Conflict("Product", field, value)
	}
	return nil
}
