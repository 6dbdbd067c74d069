// internal/services/catalog_service_test.go
package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpstracker/inventory-backend/internal/apperrors"
	"github.com/gpstracker/inventory-backend/internal/models"
	"github.com/gpstracker/inventory-backend/internal/repository"
)

func newCatalogService() *CatalogService {
	store := repository.NewMemoryStore()
	return NewCatalogService(store.Products())
}

func trackerRequest() *ProductRequest {
	return &ProductRequest{
		Name:      "Tracker Model X",
		SKU:       "GPS-XT-001",
		Category:  models.CategoryGPSTracker,
		CostPrice: decimal.NewFromFloat(45.50),
		SalePrice: decimal.NewFromFloat(89.99),
	}
}

func TestCreateProduct(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, trackerRequest())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, "Tracker Model X", product.Name)
	assert.Equal(t, "GPS-XT-001", product.SKU)
	assert.Equal(t, models.CategoryGPSTracker, product.Category)
	assert.True(t, product.SalePrice.Equal(decimal.NewFromFloat(89.99)))
	assert.False(t, product.CreatedAt.IsZero())
}

func TestCreateProductDuplicateSKU(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, trackerRequest())
	require.NoError(t, err)

	// Same sku under a different name.
	req := trackerRequest()
	req.Name = "Tracker Model Y"
	_, err = svc.CreateProduct(ctx, req)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Contains(t, err.Error(), "sku")
}

func TestCreateProductDuplicateName(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, trackerRequest())
	require.NoError(t, err)

	req := trackerRequest()
	req.SKU = "GPS-XT-002"
	_, err = svc.CreateProduct(ctx, req)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Contains(t, err.Error(), "name")
}

func TestCreateProductConflictReportsSKUFirst(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, trackerRequest())
	require.NoError(t, err)

	// Both sku and name collide; the sku conflict wins.
	_, err = svc.CreateProduct(ctx, trackerRequest())
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Contains(t, err.Error(), "sku")
}

func TestGetProduct(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, trackerRequest())
	require.NoError(t, err)

	byID, err := svc.GetProductByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)

	bySKU, err := svc.GetProductBySKU(ctx, "GPS-XT-001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySKU.ID)

	// Reads do not mutate; a second read sees the same record.
	again, err := svc.GetProductByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, byID.UpdatedAt, again.UpdatedAt)
}

func TestGetProductNotFound(t *testing.T) {
	svc := newCatalogService()

	_, err := svc.GetProductByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	_, err = svc.GetProductBySKU(context.Background(), "NO-SUCH-SKU")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListProductsOrdering(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	first, err := svc.CreateProduct(ctx, trackerRequest())
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)

	second := trackerRequest()
	second.Name = "SIM Card Type A"
	second.SKU = "SIM-A-001"
	second.Category = models.CategorySIMCard
	_, err = svc.CreateProduct(ctx, second)
	require.NoError(t, err)

	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, first.ID, products[0].ID)
	assert.Equal(t, "SIM-A-001", products[1].SKU)
}

func TestUpdateProduct(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, trackerRequest())
	require.NoError(t, err)

	req := trackerRequest()
	req.Name = "Tracker Model X v2"
	req.SalePrice = decimal.NewFromFloat(99.99)
	updated, err := svc.UpdateProduct(ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Tracker Model X v2", updated.Name)
	assert.True(t, updated.SalePrice.Equal(decimal.NewFromFloat(99.99)))
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateProductKeepsOwnIdentity(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, trackerRequest())
	require.NoError(t, err)

	// Re-saving under the product's own sku and name is not a conflict.
	updated, err := svc.UpdateProduct(ctx, created.ID, trackerRequest())
	require.NoError(t, err)
	assert.Equal(t, "GPS-XT-001", updated.SKU)
}

func TestUpdateProductConflictWithOther(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, trackerRequest())
	require.NoError(t, err)

	other := trackerRequest()
	other.Name = "SIM Card Type A"
	other.SKU = "SIM-A-001"
	created, err := svc.CreateProduct(ctx, other)
	require.NoError(t, err)

	// Moving the second product onto the first one's sku fails.
	req := trackerRequest()
	req.Name = "SIM Card Type A"
	_, err = svc.UpdateProduct(ctx, created.ID, req)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestUpdateProductNotFound(t *testing.T) {
	svc := newCatalogService()

	_, err := svc.UpdateProduct(context.Background(), uuid.New(), trackerRequest())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteProductFreesNameAndSKU(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, trackerRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, created.ID))

	_, err = svc.GetProductByID(ctx, created.ID)
	assert.True(t, apperrors.IsNotFound(err))

	// Deletion is hard, so the identity can be reused immediately.
	recreated, err := svc.CreateProduct(ctx, trackerRequest())
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, recreated.ID)
}

func TestDeleteProductNotFound(t *testing.T) {
	svc := newCatalogService()

	err := svc.DeleteProduct(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
