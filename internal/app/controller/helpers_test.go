package controller

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/ft-backend/internal/app/repository"
	"github.com/ikkim/ft-backend/internal/app/service"
	"github.com/ikkim/ft-backend/internal/db"
	"github.com/stretchr/testify/require"
)

type testServices struct {
	board service.BoardService
	item  service.ItemService
	order service.OrderService
}

func setupControllerTest(t *testing.T) (*gin.Engine, testServices) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	gin.SetMode(gin.TestMode)

	return gin.New(), testServices{
		board: service.NewBoardService(repository.NewBoardRepository(testDB)),
		item:  service.NewItemService(repository.NewItemRepository(testDB)),
		order: service.NewOrderService(repository.NewOrderRepository(testDB)),
	}
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
