// internal/handlers/product_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/gpstracker/inventory-backend/internal/repository"
	"github.com/gpstracker/inventory-backend/internal/services"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	catalog := services.NewCatalogService(store.Products())
	handler := NewProductHandler(catalog)

	suite.router = gin.New()
	products := suite.router.Group("/v1/products")
	{
		products.GET("", handler.GetProducts)
		products.GET("/:id", handler.GetProduct)
		products.GET("/sku/:sku", handler.GetProductBySKU)
		products.POST("", handler.CreateProduct)
		products.PUT("/:id", handler.UpdateProduct)
		products.DELETE("/:id", handler.DeleteProduct)
	}
}

func (suite *ProductHandlerTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		suite.Require().NoError(err)
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ProductHandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	suite.Require().NoError(err)
	return response
}

func trackerPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":       "Tracker Model X",
		"sku":        "GPS-XT-001",
		"category":   "GPS_TRACKER",
		"cost_price": "45.50",
		"sale_price": "89.99",
	}
}

func (suite *ProductHandlerTestSuite) createTracker() string {
	w := suite.request("POST", "/v1/products", trackerPayload())
	suite.Require().Equal(http.StatusCreated, w.Code)

	response := suite.decode(w)
	product := response["data"].(map[string]interface{})["product"].(map[string]interface{})
	return product["id"].(string)
}

func (suite *ProductHandlerTestSuite) TestCreateProduct() {
	w := suite.request("POST", "/v1/products", trackerPayload())

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	response := suite.decode(w)
	assert.True(suite.T(), response["success"].(bool))

	product := response["data"].(map[string]interface{})["product"].(map[string]interface{})
	assert.Equal(suite.T(), "Tracker Model X", product["name"])
	assert.Equal(suite.T(), "GPS-XT-001", product["sku"])
	assert.NotEmpty(suite.T(), product["id"])
}

func (suite *ProductHandlerTestSuite) TestCreateProductValidation() {
	payload := trackerPayload()
	payload["sku"] = "x!"
	w := suite.request("POST", "/v1/products", payload)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	response := suite.decode(w)
	assert.False(suite.T(), response["success"].(bool))
	errObj := response["error"].(map[string]interface{})
	assert.Equal(suite.T(), "VALIDATION_FAILED", errObj["code"])
}

func (suite *ProductHandlerTestSuite) TestCreateProductBadPrice() {
	payload := trackerPayload()
	payload["sale_price"] = "89.999"
	w := suite.request("POST", "/v1/products", payload)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ProductHandlerTestSuite) TestCreateProductConflict() {
	suite.createTracker()

	w := suite.request("POST", "/v1/products", trackerPayload())

	assert.Equal(suite.T(), http.StatusConflict, w.Code)

	response := suite.decode(w)
	errObj := response["error"].(map[string]interface{})
	assert.Equal(suite.T(), "CONFLICT", errObj["code"])
}

func (suite *ProductHandlerTestSuite) TestGetProduct() {
	id := suite.createTracker()

	w := suite.request("GET", "/v1/products/"+id, nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("GET", "/v1/products/sku/GPS-XT-001", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	product := response["data"].(map[string]interface{})["product"].(map[string]interface{})
	assert.Equal(suite.T(), id, product["id"])
}

func (suite *ProductHandlerTestSuite) TestGetProductNotFound() {
	w := suite.request("GET", "/v1/products/00000000-0000-0000-0000-000000000001", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	w = suite.request("GET", "/v1/products/sku/NO-SUCH", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ProductHandlerTestSuite) TestGetProductInvalidID() {
	w := suite.request("GET", "/v1/products/not-a-uuid", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ProductHandlerTestSuite) TestListProducts() {
	suite.createTracker()

	w := suite.request("GET", "/v1/products", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	products := response["data"].(map[string]interface{})["products"].([]interface{})
	assert.Len(suite.T(), products, 1)
}

func (suite *ProductHandlerTestSuite) TestUpdateProduct() {
	id := suite.createTracker()

	payload := trackerPayload()
	payload["name"] = "Tracker Model X v2"
	w := suite.request("PUT", "/v1/products/"+id, payload)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	product := response["data"].(map[string]interface{})["product"].(map[string]interface{})
	assert.Equal(suite.T(), "Tracker Model X v2", product["name"])
}

func (suite *ProductHandlerTestSuite) TestDeleteProduct() {
	id := suite.createTracker()

	w := suite.request("DELETE", "/v1/products/"+id, nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("GET", "/v1/products/"+id, nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestProductHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}
