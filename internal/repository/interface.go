// internal/repository/interface.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/gpstracker/inventory-backend/internal/models"
)

// ProductStore is the backing store for catalog records. Implementations
// return apperrors.NotFound for missing rows and apperrors.Conflict when a
// write trips a unique constraint.
type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindBySKU(ctx context.Context, sku string) (*models.Product, error)
	FindByName(ctx context.Context, name string) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Save(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ItemFilter narrows FindAll on the inventory store. Nil fields match
// everything.
type ItemFilter struct {
	ProductID *uuid.UUID
	Status    *models.ItemStatus
}

// InventoryStore is the backing store for inventory items. Finders preload
// the owning product so responses can denormalize it.
type InventoryStore interface {
	Create(ctx context.Context, item *models.InventoryItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error)
	FindByImei(ctx context.Context, imei string) (*models.InventoryItem, error)
	FindByIccid(ctx context.Context, iccid string) (*models.InventoryItem, error)
	FindBySerialNumber(ctx context.Context, serialNumber string) (*models.InventoryItem, error)
	FindAll(ctx context.Context, filter ItemFilter) ([]models.InventoryItem, error)
	CountByProductAndStatus(ctx context.Context, productID uuid.UUID, status models.ItemStatus) (int64, error)
	Save(ctx context.Context, item *models.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}
