package cart_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-hena-store/internal/cart"
	"go-hena-store/internal/catalog"
)

type cartEnvelope struct {
	Success bool              `json:"success"`
	Data    cart.CartResponse `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager := cart.NewManager(cart.NewMemoryStoreFactory(), nil)
	handler := cart.NewHandler(manager, catalog.NewService(catalog.Seed()))

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("session_id", "test-session")
	})
	cart.RegisterRoutes(router.Group("/api/v1"), handler)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, cartEnvelope) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env cartEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestHandler_AddItem(t *testing.T) {
	t.Run("success_returns_cart_with_totals", func(t *testing.T) {
		router := newRouter(t)

		rec, env := doJSON(t, router, http.MethodPost, "/api/v1/cart/items",
			`{"productId":"dress-1","quantity":2}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, env.Success)
		require.Len(t, env.Data.Items, 1)
		assert.Equal(t, 2, env.Data.Items[0].Quantity)
		assert.Equal(t, 1360.0, env.Data.Subtotal)
		assert.Equal(t, 50.0, env.Data.Shipping)
		assert.Equal(t, 1410.0, env.Data.Total)
	})

	t.Run("merges_repeat_adds", func(t *testing.T) {
		router := newRouter(t)

		doJSON(t, router, http.MethodPost, "/api/v1/cart/items",
			`{"productId":"dress-2","quantity":1,"variantId":"black"}`)
		_, env := doJSON(t, router, http.MethodPost, "/api/v1/cart/items",
			`{"productId":"dress-2","quantity":2,"variantId":"black"}`)

		require.Len(t, env.Data.Items, 1)
		assert.Equal(t, 3, env.Data.Items[0].Quantity)
	})

	t.Run("unknown_product_is_404", func(t *testing.T) {
		router := newRouter(t)

		rec, env := doJSON(t, router, http.MethodPost, "/api/v1/cart/items",
			`{"productId":"ghost","quantity":1}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, env.Success)
	})

	t.Run("unknown_size_is_rejected", func(t *testing.T) {
		router := newRouter(t)

		rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/cart/items",
			`{"productId":"dress-3","quantity":1,"size":"XXXL"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown_variant_is_rejected", func(t *testing.T) {
		router := newRouter(t)

		rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/cart/items",
			`{"productId":"dress-2","quantity":1,"variantId":"purple"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("zero_quantity_fails_binding", func(t *testing.T) {
		router := newRouter(t)

		rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/cart/items",
			`{"productId":"dress-1","quantity":0}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_Detail(t *testing.T) {
	router := newRouter(t)

	t.Run("empty_cart", func(t *testing.T) {
		rec, env := doJSON(t, router, http.MethodGet, "/api/v1/cart", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, env.Data.Items)
		assert.Equal(t, 0.0, env.Data.Total)
	})
}

func TestHandler_UpdateQuantity(t *testing.T) {
	router := newRouter(t)
	doJSON(t, router, http.MethodPost, "/api/v1/cart/items",
		`{"productId":"dress-1","quantity":1}`)

	t.Run("sets_absolute_quantity", func(t *testing.T) {
		rec, env := doJSON(t, router, http.MethodPut, "/api/v1/cart/items/0",
			`{"quantity":4}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, env.Data.Items, 1)
		assert.Equal(t, 4, env.Data.Items[0].Quantity)
	})

	t.Run("zero_removes_line", func(t *testing.T) {
		rec, env := doJSON(t, router, http.MethodPut, "/api/v1/cart/items/0",
			`{"quantity":0}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, env.Data.Items)
	})

	t.Run("non_numeric_index_is_rejected", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodPut, "/api/v1/cart/items/abc",
			`{"quantity":1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_RemoveAndClear(t *testing.T) {
	router := newRouter(t)
	doJSON(t, router, http.MethodPost, "/api/v1/cart/items",
		`{"productId":"dress-1","quantity":1}`)
	doJSON(t, router, http.MethodPost, "/api/v1/cart/items",
		`{"productId":"dress-2","quantity":1,"variantId":"green"}`)

	t.Run("remove_single_line", func(t *testing.T) {
		rec, env := doJSON(t, router, http.MethodDelete, "/api/v1/cart/items/0", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, env.Data.Items, 1)
		assert.Equal(t, "dress-2", env.Data.Items[0].Product.ID)
	})

	t.Run("clear_empties_cart", func(t *testing.T) {
		rec, env := doJSON(t, router, http.MethodDelete, "/api/v1/cart", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, env.Data.Items)
	})
}

func TestHandler_SavedItems(t *testing.T) {
	router := newRouter(t)
	doJSON(t, router, http.MethodPost, "/api/v1/cart/items",
		`{"productId":"dress-1","quantity":2}`)

	t.Run("save_for_later_moves_line_out_of_cart", func(t *testing.T) {
		rec, env := doJSON(t, router, http.MethodPost, "/api/v1/cart/items/0/save", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, env.Data.Items)
	})

	t.Run("saved_list_holds_the_line", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart/saved", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		var env struct {
			Data cart.SavedItemsResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		require.Len(t, env.Data.Items, 1)
		assert.Equal(t, "dress-1", env.Data.Items[0].Product.ID)
		assert.Equal(t, 2, env.Data.Items[0].Quantity)
	})

	t.Run("move_back_to_cart", func(t *testing.T) {
		rec, env := doJSON(t, router, http.MethodPost, "/api/v1/cart/saved/0/move", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, env.Data.Items, 1)
		assert.Equal(t, 2, env.Data.Items[0].Quantity)
	})
}
