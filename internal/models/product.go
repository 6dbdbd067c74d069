// internal/models/product.go
package models

import (
	"github.com/shopspring/decimal"
)

// Product is a catalog entry: a tracker model, SIM card type, accessory and
// so on. Name and SKU are unique across the whole catalog.
type Product struct {
	BaseModel
	Name        string          `json:"name" gorm:"size:100;not null;uniqueIndex"`
	SKU         string          `json:"sku" gorm:"size:50;not null;uniqueIndex"`
	Description string          `json:"description,omitempty" gorm:"type:text"`
	Category    ProductCategory `json:"category" gorm:"type:varchar(20);not null;index"`
	CostPrice   decimal.Decimal `json:"cost_price" gorm:"type:decimal(10,2);not null"`
	SalePrice   decimal.Decimal `json:"sale_price" gorm:"type:decimal(10,2);not null"`
}
