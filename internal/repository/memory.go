// internal/repository/memory.go
package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gpstracker/inventory-backend/internal/apperrors"
	"github.com/gpstracker/inventory-backend/internal/models"
)

// MemoryStore is an in-memory backing store with the same error contract as
// the gorm-backed repositories, including unique constraint enforcement on
// write. Products() and Items() expose the two store interfaces over shared
// data. It backs the test suites and needs no running database.
type MemoryStore struct {
	mtx      sync.Mutex
	products map[uuid.UUID]models.Product
	items    map[uuid.UUID]models.InventoryItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[uuid.UUID]models.Product),
		items:    make(map[uuid.UUID]models.InventoryItem),
	}
}

func (s *MemoryStore) Products() ProductStore {
	return &memoryProducts{s: s}
}

func (s *MemoryStore) Items() InventoryStore {
	return &memoryItems{s: s}
}

type memoryProducts struct {
	s *MemoryStore
}

type memoryItems struct {
	s *MemoryStore
}

var (
	_ ProductStore   = (*memoryProducts)(nil)
	_ InventoryStore = (*memoryItems)(nil)
)

// --- ProductStore ---

func (m *memoryProducts) Create(ctx context.Context, product *models.Product) error {
	m.s.mtx.Lock()
	defer m.s.mtx.Unlock()

	for _, p := range m.s.products {
		if p.SKU == product.SKU || p.Name == product.Name {
			return apperrors.New(apperrors.KindConflict, "product with the same sku or name already exists")
		}
	}

	product.ID = uuid.New()
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	m.s.products[product.ID] = *product
	return nil
}

func (m *memoryProducts) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	m.s.mtx.Lock()
	defer m.s.mtx.Unlock()

	p, ok := m.s.products[id]
	if !ok {
		return nil, apperrors.NotFound("Product", "id", id)
	}
	return &p, nil
}

func (m *memoryProducts) FindBySKU(ctx context.Context, sku string) (*models.Product, error) {
	m.s.mtx.Lock()
	defer m.s.mtx.Unlock()

	for _, p := range m.s.products {
		if p.SKU == sku {
			p := p
			return &p, nil
		}
	}
	return nil, apperrors.NotFound("Product", "sku", sku)
}

func (m *memoryProducts) FindByName(ctx context.Context, name string) (*models.Product, error) {
	m.s.mtx.Lock()
	defer m.s.mtx.Unlock()

	for _, p := range m.s.products {
		if p.Name == name {
			p := p
			return &p, nil
		}
	}
	return nil, apperrors.NotFound("Product", "name", name)
}

func (m *memoryProducts) FindAll(ctx context.Context) ([]models.Product, error) {
	m.s.mtx.Lock()
	defer m.s.mtx.Unlock()

	products := make([]models.Product, 0, len(m.s.products))
	for _, p := range m.s.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.Before(products[j].CreatedAt)
	})
	return products, nil
}

func (m *memoryProducts) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	m.s.mtx.Lock()
	defer m.s.mtx.Unlock()

	for _, p := range m.s.products {
		if p.SKU == sku {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryProducts) ExistsByName(ctx context.Context, name string) (bool, error) {
	m.s.mtx.Lock()
	defer m.s.mtx.Unlock()

	for _, p := range m.s.products {
		if p.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryProducts) Save(ctx context.Context, product *models.Product) error {
	m.s.mtx.Lock()
	defer m.s.mtx.Unlock()

	if _, ok := m.s.products[product.ID]; !ok {
		return apperrors.NotFound("Product", "id", product.ID)
	}
	for _, p := range m.s.products {
		if p.ID != product.ID && (p.SKU == product.SKU || p.Name == product.Name) {
			return apperrors.New(apperrors.KindConflict, "product with the same sku or name already exists")
		}
	}

	product.UpdatedAt = time.Now()
	m.s.products[product.ID] = *product
	return nil
}

func (m *memoryProducts) Delete(ctx context.Context, id uuid.UUID) error {
	m.s.mtx.Lock()
	defer m.s.mtx.Unlock()

	if _, ok := m.s.products[id]; !ok {
		return apperrors.NotFound("Product", "id", id)
	}
	delete(m.s.products, id)
	return nil
}

// --- InventoryStore ---

func (m *memoryItems) Create(ctx context.Context, item *models.InventoryItem) error {
	m.s.mtx.Lock()
	defer m.s.mtx.Unlock()

	if err := m.s.checkItemConstraints(item, uuid.Nil); err != nil {
		return err
	}

	item.ID = uuid.New()
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	stored := *item
	stored.Product = nil
	m.s.items[item.ID] = stored
	return nil
}

func (m *memoryItems) FindByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	m.s.mtx.Lock()
	defer m.s.mtx.Unlock()

	item, ok := m.s.items[id]
	if !ok {
		return nil, apperrors.NotFound("Inventory item", "id", id)
	}
	m.s.attachProduct(&item)
	return &item, nil
}

func (m *memoryItems) FindByImei(ctx context.Context, imei string) (*models.InventoryItem, error) {
	return m.findItem(func(i models.InventoryItem) bool {
		return i.Imei != nil && *i.Imei == imei
	}, "imei", imei)
}

func (m *memoryItems) FindByIccid(ctx context.Context, iccid string) (*models.InventoryItem, error) {
	return m.findItem(func(i models.InventoryItem) bool {
		return i.Iccid != nil && *i.Iccid == iccid
	}, "iccid", iccid)
}

func (m *memoryItems) FindBySerialNumber(ctx context.Context, serialNumber string) (*models.InventoryItem, error) {
	return m.findItem(func(i models.InventoryItem) bool {
		return i.SerialNumber != nil && *i.SerialNumber == serialNumber
	}, "serialNumber", serialNumber)
}

func (m *memoryItems) findItem(match func(models.InventoryItem) bool, field, value string) (*models.InventoryItem, error) {
	m.s.mtx.Lock()
	defer m.s.mtx.Unlock()

	for _, item := range m.s.items {
		if match(item) {
			item := item
			m.s.attachProduct(&item)
			return &item, nil
		}
	}
	return nil, apperrors.NotFound("Inventory item", field, value)
}

func (m *memoryItems) FindAll(ctx context.Context, filter ItemFilter) ([]models.InventoryItem, error) {
	m.s.mtx.Lock()
	defer m.s.mtx.Unlock()

	items := make([]models.InventoryItem, 0)
	for _, item := range m.s.items {
		if filter.ProductID != nil && item.ProductID != *filter.ProductID {
			continue
		}
		if filter.Status != nil && item.Status != *filter.Status {
			continue
		}
		m.s.attachProduct(&item)
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (m *memoryItems) CountByProductAndStatus(ctx context.Context, productID uuid.UUID, status models.ItemStatus) (int64, error) {
	m.s.mtx.Lock()
	defer m.s.mtx.Unlock()

	var count int64
	for _, item := range m.s.items {
		if item.ProductID == productID && item.Status == status {
			count++
		}
	}
	return count, nil
}

func (m *memoryItems) Save(ctx context.Context, item *models.InventoryItem) error {
	m.s.mtx.Lock()
	defer m.s.mtx.Unlock()

	if _, ok := m.s.items[item.ID]; !ok {
		return apperrors.NotFound("Inventory item", "id", item.ID)
	}
	if err := m.s.checkItemConstraints(item, item.ID); err != nil {
		return err
	}

	item.UpdatedAt = time.Now()
	stored := *item
	stored.Product = nil
	m.s.items[item.ID] = stored
	return nil
}

func (m *memoryItems) Delete(ctx context.Context, id uuid.UUID) error {
	m.s.mtx.Lock()
	defer m.s.mtx.Unlock()

	if _, ok := m.s.items[id]; !ok {
		return apperrors.NotFound("Inventory item", "id", id)
	}
	delete(m.s.items, id)
	return nil
}

// --- shared helpers, caller must hold the lock ---

func (s *MemoryStore) checkItemConstraints(item *models.InventoryItem, excludeID uuid.UUID) error {
	for _, existing := range s.items {
		if existing.ID == excludeID {
			continue
		}
		if ptrEq(existing.Imei, item.Imei) || ptrEq(existing.Iccid, item.Iccid) ||
			ptrEq(existing.SerialNumber, item.SerialNumber) {
			return apperrors.New(apperrors.KindConflict, "inventory item with the same identifier already exists")
		}
	}
	return nil
}

func ptrEq(a, b *string) bool {
	return a != nil && b != nil && *a == *b
}

// attachProduct mimics the Preload("Product") the SQL store performs.
func (s *MemoryStore) attachProduct(item *models.InventoryItem) {
	if p, ok := s.products[item.ProductID]; ok {
		p := p
		item.Product = &p
	}
}
