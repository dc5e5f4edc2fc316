package productcontroller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	productcontroller "github.com/rakeshrg123/Mechine-test/controllers/product"
	"github.com/rakeshrg123/Mechine-test/database"
	"github.com/rakeshrg123/Mechine-test/models"
)

var dbSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:products%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// newRouter registers the product handlers without the auth middleware; role
// enforcement has its own tests.
func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/product/create", productcontroller.CreateProduct(db))
	r.GET("/api/product/products", productcontroller.GetProducts(db))
	r.GET("/api/product/filter", productcontroller.FilterProducts(db))
	r.GET("/api/product/:productId", productcontroller.GetProductByID(db))
	r.PUT("/api/product/update/:id", productcontroller.UpdateProduct(db))
	r.DELETE("/api/product/delete/:id", productcontroller.DeleteProduct(db))
	r.POST("/api/product/:productId/variants", productcontroller.CreateVariant(db))
	r.GET("/api/product/:productId/variants", productcontroller.GetVariants(db))
	r.PUT("/api/product/:productId/variants/:variantId", productcontroller.UpdateVariant(db))
	r.DELETE("/api/product/:productId/variants/:variantId", productcontroller.DeleteVariant(db))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(t *testing.T, r *gin.Engine, name string, price float64, variants ...map[string]interface{}) models.Product {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/product/create", gin.H{
		"name":        name,
		"description": "a test product",
		"price":       price,
		"variants":    variants,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Product models.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Product
}

func TestCreateProductValidation(t *testing.T) {
	r := newRouter(newTestDB(t))

	w := doJSON(t, r, http.MethodPost, "/api/product/create", gin.H{
		"name":        "ab",
		"description": "",
		"price":       -3,
		"variants":    []gin.H{},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Validation failed", resp.Message)
	assert.Contains(t, resp.Errors, "name")
	assert.Contains(t, resp.Errors, "description")
	assert.Contains(t, resp.Errors, "price")
	assert.Contains(t, resp.Errors, "variants")
}

func TestCreateAndGetProduct(t *testing.T) {
	r := newRouter(newTestDB(t))
	p := createProduct(t, r, "Backpack", 49.9, gin.H{"color": "Red", "stock": 5})
	require.Len(t, p.Variants, 1)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/product/%d", p.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/product/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFilterProductsByNamePrefix(t *testing.T) {
	r := newRouter(newTestDB(t))
	createProduct(t, r, "Backpack", 10, gin.H{"color": "Red", "stock": 1})
	createProduct(t, r, "Bottle", 5, gin.H{"color": "Blue", "stock": 1})

	w := doJSON(t, r, http.MethodGet, "/api/product/filter?name=back", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Products []models.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Backpack", resp.Products[0].Name)

	// No filter returns everything.
	w = doJSON(t, r, http.MethodGet, "/api/product/filter", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Products, 2)
}

func TestUpdateProductPartialMerge(t *testing.T) {
	r := newRouter(newTestDB(t))
	p := createProduct(t, r, "Backpack", 10, gin.H{"color": "Red", "stock": 5})

	// Only price provided: other fields survive the merge.
	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/product/update/%d", p.ID), gin.H{"price": 15.5})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Product models.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Backpack", resp.Product.Name)
	assert.Equal(t, 15.5, resp.Product.Price)
	assert.Len(t, resp.Product.Variants, 1)

	// Merged state is re-validated.
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/product/update/%d", p.ID), gin.H{"name": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/product/update/9999", gin.H{"price": 1.0})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProduct(t *testing.T) {
	r := newRouter(newTestDB(t))
	p := createProduct(t, r, "Backpack", 10, gin.H{"color": "Red", "stock": 5})

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/product/delete/%d", p.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/product/delete/%d", p.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVariantLifecycle(t *testing.T) {
	r := newRouter(newTestDB(t))
	p := createProduct(t, r, "Backpack", 10, gin.H{"color": "Red", "stock": 5})

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/product/%d/variants", p.ID), gin.H{"color": "Blue", "stock": 2})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Variant models.Variant `json:"variant"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// Partial merge: only stock is supplied, color stays.
	w = doJSON(t, r, http.MethodPut,
		fmt.Sprintf("/api/product/%d/variants/%d", p.ID, created.Variant.ID), gin.H{"stock": 9})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated struct {
		Variant models.Variant `json:"variant"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Blue", updated.Variant.Color)
	assert.Equal(t, 9, updated.Variant.Stock)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/product/%d/variants", p.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed struct {
		Variants []models.Variant `json:"variants"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed.Variants, 2)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/product/%d/variants/9999", p.ID), gin.H{"stock": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteVariantIsIdempotent(t *testing.T) {
	r := newRouter(newTestDB(t))
	p := createProduct(t, r, "Backpack", 10, gin.H{"color": "Red", "stock": 5})
	variantID := p.Variants[0].ID

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/product/%d/variants/%d", p.ID, variantID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Pull semantics: deleting the same id again is still a success.
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/product/%d/variants/%d", p.ID, variantID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// The product must still exist though.
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/product/9999/variants/%d", variantID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
