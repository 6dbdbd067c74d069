// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Base model with common fields. Deletes are hard deletes: a removed product
// must free its name and sku for reuse, which a soft-delete row would block.
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Enums
type ProductCategory string

const (
	CategoryGPSTracker ProductCategory = "GPS_TRACKER"
	CategorySIMCard    ProductCategory = "SIM_CARD"
	CategoryAccessory  ProductCategory = "ACCESSORY"
	CategoryBundle     ProductCategory = "BUNDLE"
	CategoryOther      ProductCategory = "OTHER"
)

func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryGPSTracker, CategorySIMCard, CategoryAccessory, CategoryBundle, CategoryOther:
		return true
	}
	return false
}

type ItemStatus string

const (
	StatusInStock         ItemStatus = "IN_STOCK"
	StatusAllocated       ItemStatus = "ALLOCATED"
	StatusSold            ItemStatus = "SOLD"
	StatusInUse           ItemStatus = "IN_USE"
	StatusDefective       ItemStatus = "DEFECTIVE"
	StatusInRepair        ItemStatus = "IN_REPAIR"
	StatusRepairedInStock ItemStatus = "REPAIRED_IN_STOCK"
	StatusDisposed        ItemStatus = "DISPOSED"
	StatusPendingReceipt  ItemStatus = "PENDING_RECEIPT"
)

func (s ItemStatus) Valid() bool {
	switch s {
	case StatusInStock, StatusAllocated, StatusSold, StatusInUse, StatusDefective,
		StatusInRepair, StatusRepairedInStock, StatusDisposed, StatusPendingReceipt:
		return true
	}
	return false
}
