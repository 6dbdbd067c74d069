// internal/services/inventory_service.go
package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gpstracker/inventory-backend/internal/apperrors"
	"github.com/gpstracker/inventory-backend/internal/models"
	"github.com/gpstracker/inventory-backend/internal/repository"
)

// InventoryService owns inventory items: the category-driven identifier
// derivation, the three-way identifier uniqueness, and per-item status.
// It depends on the catalog only to resolve a product and read its category.
type InventoryService struct {
	items    repository.InventoryStore
	products repository.ProductStore
}

// ItemRequest carries the full item payload. As with products, updates
// replace every mutable field wholesale.
type ItemRequest struct {
	ProductID    uuid.UUID         `json:"product_id" validate:"required"`
	Imei         string            `json:"imei" validate:"omitempty,imei"`
	Iccid        string            `json:"iccid" validate:"omitempty,iccid"`
	SerialNumber string            `json:"serial_number" validate:"omitempty,max=100"`
	Status       models.ItemStatus `json:"status" validate:"omitempty,item_status"`
	Location     string            `json:"location" validate:"omitempty,max=100"`
	ReceivedDate *time.Time        `json:"received_date"`
	Notes        string            `json:"notes"`
}

func NewInventoryService(items repository.InventoryStore, products repository.ProductStore) *InventoryService {
	return &InventoryService{items: items, products: products}
}

func (s *InventoryService) CreateItem(ctx context.Context, req *ItemRequest) (*models.InventoryItemResponse, error) {
	product, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	imei, iccid, serialNumber, err := DeriveIdentifiers(product.Category, req.Imei, req.Iccid, req.SerialNumber)
	if err != nil {
		return nil, err
	}

	if err := s.checkIdentifierConflicts(ctx, imei, iccid, serialNumber, uuid.Nil); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.StatusInStock
	}

	item := &models.InventoryItem{
		ProductID:    product.ID,
		Imei:         imei,
		Iccid:        iccid,
		SerialNumber: serialNumber,
		Status:       status,
		Location:     req.Location,
		ReceivedDate: req.ReceivedDate,
		Notes:        req.Notes,
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}

	item.Product = product
	return item.ToResponse(), nil
}

func (s *InventoryService) GetItemByID(ctx context.Context, id uuid.UUID) (*models.InventoryItemResponse, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return item.ToResponse(), nil
}

func (s *InventoryService) GetItemByImei(ctx context.Context, imei string) (*models.InventoryItemResponse, error) {
	item, err := s.items.FindByImei(ctx, imei)
	if err != nil {
		return nil, err
	}
	return item.ToResponse(), nil
}

func (s *InventoryService) GetItemByIccid(ctx context.Context, iccid string) (*models.InventoryItemResponse, error) {
	item, err := s.items.FindByIccid(ctx, iccid)
	if err != nil {
		return nil, err
	}
	return item.ToResponse(), nil
}

func (s *InventoryService) GetItemBySerialNumber(ctx context.Context, serialNumber string) (*models.InventoryItemResponse, error) {
	item, err := s.items.FindBySerialNumber(ctx, serialNumber)
	if err != nil {
		return nil, err
	}
	return item.ToResponse(), nil
}

// ListItems covers the by-product, by-status and by-both lookups; an empty
// filter returns everything, ordered by creation time.
func (s *InventoryService) ListItems(ctx context.Context, filter repository.ItemFilter) ([]*models.InventoryItemResponse, error) {
	items, err := s.items.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.InventoryItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, items[i].ToResponse())
	}
	return responses, nil
}

// CountByProductAndStatus answers stock-level queries without materializing
// item records.
func (s *InventoryService) CountByProductAndStatus(ctx context.Context, productID uuid.UUID, status models.ItemStatus) (int64, error) {
	return s.items.CountByProductAndStatus(ctx, productID, status)
}

func (s *InventoryService) UpdateItem(ctx context.Context, id uuid.UUID, req *ItemRequest) (*models.InventoryItemResponse, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The product reference may itself be changing; derivation always runs
	// against the product the item will point at after this update.
	product, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	imei, iccid, serialNumber, err := DeriveIdentifiers(product.Category, req.Imei, req.Iccid, req.SerialNumber)
	if err != nil {
		return nil, err
	}

	if err := s.checkIdentifierConflicts(ctx, imei, iccid, serialNumber, id); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.StatusInStock
	}

	item.ProductID = product.ID
	item.Imei = imei
	item.Iccid = iccid
	item.SerialNumber = serialNumber
	item.Status = status
	item.Location = req.Location
	item.ReceivedDate = req.ReceivedDate
	item.Notes = req.Notes
	item.Product = nil

	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}

	item.Product = product
	return item.ToResponse(), nil
}

func (s *InventoryService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	// Unconditional: no status-based restriction, deleting a SOLD or IN_USE
	// item is permitted.
	return s.items.Delete(ctx, id)
}

// checkIdentifierConflicts fails with Conflict when any populated identifier
// is already held by a different item. excludeID lets updates re-save their
// own identifiers.
func (s *InventoryService) checkIdentifierConflicts(ctx context.Context, imei, iccid, serialNumber *string, excludeID uuid.UUID) error {
	type lookup struct {
		field string
		value *string
		find  func(context.Context, string) (*models.InventoryItem, error)
	}

	lookups := []lookup{
		{"imei", imei, s.items.FindByImei},
		{"iccid", iccid, s.items.FindByIccid},
		{"serialNumber", serialNumber, s.items.FindBySerialNumber},
	}

	for _, l := range lookups {
		if l.value == nil {
			continue
		}
		holder, err := l.find(ctx, *l.value)
		if err != nil {
			if apperrors.IsNotFound(err) {
				continue
			}
			return err
		}
		if holder.ID != excludeID {
			return apperrors.Conflict("Inventory item", l.field, *l.value)
		}
	}
	return nil
}
