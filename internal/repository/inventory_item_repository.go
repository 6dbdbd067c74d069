// internal/repository/inventory_item_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gpstracker/inventory-backend/internal/apperrors"
	"github.com/gpstracker/inventory-backend/internal/models"
)

type inventoryItemRepository struct {
	db *gorm.DB
}

func NewInventoryItemRepository(db *gorm.DB) InventoryStore {
	return &inventoryItemRepository{db: db}
}

func (r *inventoryItemRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.New(apperrors.KindConflict, "inventory item with the same identifier already exists")
		}
		return fmt.Errorf("failed to create inventory item: %w", err)
	}
	return nil
}

func (r *inventoryItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	return r.findOne(ctx, "id = ?", "id", id)
}

func (r *inventoryItemRepository) FindByImei(ctx context.Context, imei string) (*models.InventoryItem, error) {
	return r.findOne(ctx, "imei = ?", "imei", imei)
}

func (r *inventoryItemRepository) FindByIccid(ctx context.Context, iccid string) (*models.InventoryItem, error) {
	return r.findOne(ctx, "iccid = ?", "iccid", iccid)
}

func (r *inventoryItemRepository) FindBySerialNumber(ctx context.Context, serialNumber string) (*models.InventoryItem, error) {
	return r.findOne(ctx, "serial_number = ?", "serialNumber", serialNumber)
}

func (r *inventoryItemRepository) findOne(ctx context.Context, query, field string, value interface{}) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.db.WithContext(ctx).Preload("Product").First(&item, query, value).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Inventory item", field, value)
		}
		return nil, fmt.Errorf("failed to fetch inventory item: %w", err)
	}
	return &item, nil
}

func (r *inventoryItemRepository) FindAll(ctx context.Context, filter ItemFilter) ([]models.InventoryItem, error) {
	query := r.db.WithContext(ctx).Preload("Product").Order("created_at ASC")

	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var items []models.InventoryItem
	if err := query.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch inventory items: %w", err)
	}
	return items, nil
}

func (r *inventoryItemRepository) CountByProductAndStatus(ctx context.Context, productID uuid.UUID, status models.ItemStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.InventoryItem{}).
		Where("product_id = ? AND status = ?", productID, status).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count inventory items: %w", err)
	}
	return count, nil
}

func (r *inventoryItemRepository) Save(ctx context.Context, item *models.InventoryItem) error {
	// Save without the preloaded association so gorm does not try to upsert
	// the product row alongside the item.
	if err := r.db.WithContext(ctx).Omit("Product").Save(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.New(apperrors.KindConflict, "inventory item with the same identifier already exists")
		}
		return fmt.Errorf("failed to save inventory item: %w", err)
	}
	return nil
}

func (r *inventoryItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.InventoryItem{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete inventory item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Inventory item", "id", id)
	}
	return nil
}
