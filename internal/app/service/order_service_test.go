package service

import (
	"testing"

	"github.com/ikkim/ft-backend/internal/app/model"
	"github.com/ikkim/ft-backend/internal/app/repository"
	"github.com/ikkim/ft-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOrderServiceTest(t *testing.T) (OrderService, *model.Item, *model.ItemOption) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	itemService := NewItemService(repository.NewItemRepository(testDB))
	item := &model.Item{Name: "Tee", Price: 10000, Img1: "tee.jpg"}
	require.NoError(t, itemService.CreateItem(item))
	option := &model.ItemOption{IID: item.IID, Option: "L", Count: 3}
	require.NoError(t, itemService.AddOption(option))

	return NewOrderService(repository.NewOrderRepository(testDB)), item, option
}

func TestOrderService_CreateAndDetail(t *testing.T) {
	orderService, item, option := setupOrderServiceTest(t)

	order := &model.Order{Email: "me@example.com", OrderID: "ORD-1", TotalPrice: 20000}
	require.NoError(t, orderService.CreateOrder(order))
	require.NotZero(t, order.OID)

	orderItem := &model.OrderItem{OID: order.OID, IID: item.IID, IOID: option.IOID, Count: 2, Price: 10000}
	require.NoError(t, orderService.AddOrderItem(orderItem))

	detail, err := orderService.GetOrderDetail(order.OID)
	require.NoError(t, err)
	assert.Equal(t, "ORD-1", detail.Order.OrderID)
	assert.Equal(t, model.OrderStatusReady, detail.Order.Status)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, orderItem.OIID, detail.Items[0].OIID)

	rows, err := orderService.GetOrderItemDetails(orderItem.OIID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Tee", rows[0].Name)
	assert.Equal(t, "L", rows[0].Option)

	orders, err := orderService.ListOrders("me@example.com")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderService_GetOrderDetail_NotFound(t *testing.T) {
	orderService, _, _ := setupOrderServiceTest(t)

	_, err := orderService.GetOrderDetail(404)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	order, err := orderService.GetOrder(404)
	assert.NoError(t, err)
	assert.Nil(t, order)
}

func TestOrderService_UpdateStatusByOrderID(t *testing.T) {
	orderService, _, _ := setupOrderServiceTest(t)

	order := &model.Order{Email: "me@example.com", OrderID: "ORD-PAY", TotalPrice: 1}
	require.NoError(t, orderService.CreateOrder(order))

	require.NoError(t, orderService.UpdateStatusByOrderID("ORD-PAY", model.OrderStatusShipping))

	got, err := orderService.GetOrder(order.OID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, model.OrderStatusShipping, got.Status)
}

func TestOrderService_DeleteOrder(t *testing.T) {
	orderService, _, _ := setupOrderServiceTest(t)

	order := &model.Order{Email: "me@example.com", OrderID: "ORD-DEL", TotalPrice: 1}
	require.NoError(t, orderService.CreateOrder(order))
	require.NoError(t, orderService.DeleteOrder(order.OID))

	_, err := orderService.GetOrderDetail(order.OID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
