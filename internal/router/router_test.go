package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/ft-backend/config"
	"github.com/ikkim/ft-backend/internal/app/controller"
	"github.com/ikkim/ft-backend/internal/app/repository"
	"github.com/ikkim/ft-backend/internal/app/service"
	"github.com/ikkim/ft-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouterTest(t *testing.T) *gin.Engine {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	boardService := service.NewBoardService(repository.NewBoardRepository(testDB))
	itemService := service.NewItemService(repository.NewItemRepository(testDB))
	orderService := service.NewOrderService(repository.NewOrderRepository(testDB))

	cfg := &config.Config{
		Server: config.ServerConfig{GinMode: "test"},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	r := NewRouter(
		controller.NewBoardController(boardService),
		controller.NewItemController(itemService),
		controller.NewOrderController(orderService),
		controller.NewPaymentController(orderService, "", false),
		nil,
		cfg,
	)
	return r.Setup()
}

func TestRouter_Health(t *testing.T) {
	h := setupRouterTest(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_CORS(t *testing.T) {
	h := setupRouterTest(t)

	t.Run("allowed origin preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/items", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
		req.Header.Set("Origin", "http://evil.example")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRouter_UploadDisabledWithoutStorage(t *testing.T) {
	h := setupRouterTest(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/upload/presigned-url", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_RecoversPanicsAsJSON(t *testing.T) {
	h := setupRouterTest(t)
	h.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_SERVER_ERROR")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_UnsignedPaymentCallbackRejected(t *testing.T) {
	h := setupRouterTest(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/callback",
		strings.NewReader(`{"order_id":"ORD-1","status":"PAID"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
