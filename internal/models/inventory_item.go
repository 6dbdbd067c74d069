// internal/models/inventory_item.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// InventoryItem is one physical unit of a product. Which of the identifier
// fields is populated follows from the owning product's category; the fields
// are pointers so the unique indexes admit any number of absent values.
type InventoryItem struct {
	BaseModel
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index;index:idx_inventory_items_product_status,priority:1"`
	Product   *Product  `json:"-" gorm:"foreignKey:ProductID"`

	Imei         *string `json:"imei" gorm:"size:20;uniqueIndex"`
	Iccid        *string `json:"iccid" gorm:"size:22;uniqueIndex"`
	SerialNumber *string `json:"serial_number" gorm:"size:100;uniqueIndex"`

	Status       ItemStatus `json:"status" gorm:"type:varchar(20);not null;index;index:idx_inventory_items_product_status,priority:2"`
	Location     string     `json:"location,omitempty" gorm:"size:100"`
	ReceivedDate *time.Time `json:"received_date,omitempty" gorm:"type:date"`
	Notes        string     `json:"notes,omitempty" gorm:"type:text"`
}

// InventoryItemResponse is the item as presented to callers, with the owning
// product's name, sku and category denormalized for display.
type InventoryItemResponse struct {
	ID              uuid.UUID       `json:"id"`
	ProductID       uuid.UUID       `json:"product_id"`
	ProductName     string          `json:"product_name"`
	ProductSKU      string          `json:"product_sku"`
	ProductCategory ProductCategory `json:"product_category"`
	Imei            *string         `json:"imei"`
	Iccid           *string         `json:"iccid"`
	SerialNumber    *string         `json:"serial_number"`
	Status          ItemStatus      `json:"status"`
	Location        string          `json:"location,omitempty"`
	ReceivedDate    *time.Time      `json:"received_date,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (i *InventoryItem) ToResponse() *InventoryItemResponse {
	resp := &InventoryItemResponse{
		ID:           i.ID,
		ProductID:    i.ProductID,
		Imei:         i.Imei,
		Iccid:        i.Iccid,
		SerialNumber: i.SerialNumber,
		Status:       i.Status,
		Location:     i.Location,
		ReceivedDate: i.ReceivedDate,
		Notes:        i.Notes,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
	if i.Product != nil {
		resp.ProductName = i.Product.Name
		resp.ProductSKU = i.Product.SKU
		resp.ProductCategory = i.Product.Category
	}
	return resp
}
