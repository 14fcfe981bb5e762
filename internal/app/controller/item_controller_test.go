package controller

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/ikkim/ft-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemController_Flow(t *testing.T) {
	router, svc := setupControllerTest(t)
	ctrl := NewItemController(svc.item)
	router.GET("/items", ctrl.ListItems)
	router.GET("/items/:iid", ctrl.GetItem)
	router.POST("/items", ctrl.CreateItem)
	router.PUT("/items/:iid", ctrl.UpdateItem)
	router.DELETE("/items/:iid", ctrl.DeleteItem)
	router.PUT("/items/:iid/sale", ctrl.SaleItem)
	router.POST("/items/:iid/options", ctrl.AddOption)
	router.POST("/items/:iid/tags", ctrl.AddTag)

	w := doJSON(t, router, http.MethodPost, "/items", map[string]interface{}{
		"name":     "O'Brien Tweed",
		"category": "outer",
		"price":    120000,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	iid := int(decode(t, w)["item"].(map[string]interface{})["iid"].(float64))
	base := fmt.Sprintf("/items/%d", iid)

	w = doJSON(t, router, http.MethodPost, base+"/options", map[string]interface{}{"option": "M", "count": 2})
	assert.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, router, http.MethodPost, base+"/tags", map[string]interface{}{"tag": "winter"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPut, base+"/sale", map[string]interface{}{
		"sale_price": 99000,
		"sale_date":  "2024-12-31T00:00:00Z",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode(t, w)
	item := detail["item"].(map[string]interface{})
	assert.Equal(t, float64(99000), item["sale_price"])
	assert.Equal(t, float64(120000), item["price"])
	assert.Len(t, detail["options"], 1)
	assert.Len(t, detail["tags"], 1)

	w = doJSON(t, router, http.MethodGet, "/items?q="+url.QueryEscape("o'brien"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["count"])

	w = doJSON(t, router, http.MethodGet, "/items?q="+url.QueryEscape("100%"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decode(t, w)["count"])

	w = doJSON(t, router, http.MethodPut, base, map[string]interface{}{"name": "Tweed Coat", "price": 110000})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ITEM_NOT_FOUND", decode(t, w)["error"])

	w = doJSON(t, router, http.MethodGet, "/items", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decode(t, w)["count"])
}

func TestItemController_AddOption_UnknownItem(t *testing.T) {
	router, svc := setupControllerTest(t)
	ctrl := NewItemController(svc.item)
	router.POST("/items/:iid/options", ctrl.AddOption)

	w := doJSON(t, router, http.MethodPost, "/items/999/options", map[string]interface{}{"option": "S"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "RESOURCE_REFERENCE", decode(t, w)["error"])
}

func TestItemController_ListItems_NewestFirst(t *testing.T) {
	router, svc := setupControllerTest(t)
	ctrl := NewItemController(svc.item)
	router.GET("/items", ctrl.ListItems)

	require.NoError(t, svc.item.CreateItem(&model.Item{Name: "first", Price: 1}))
	require.NoError(t, svc.item.CreateItem(&model.Item{Name: "second", Price: 1}))

	w := doJSON(t, router, http.MethodGet, "/items", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode(t, w)["items"].([]interface{})
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].(map[string]interface{})["name"])
}
