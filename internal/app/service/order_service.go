package service

import (
	"errors"

	"github.com/ikkim/ft-backend/internal/app/model"
	"github.com/ikkim/ft-backend/internal/app/repository"
	"github.com/ikkim/ft-backend/pkg/logger"
)

var (
	ErrOrderNotFound = errors.New("order not found")
)

type OrderService interface {
	ListOrders(email string) ([]model.Order, error)
	GetOrder(oid uint) (*model.Order, error)
	GetOrderDetail(oid uint) (*model.OrderDetail, error)
	CreateOrder(order *model.Order) error
	DeleteOrder(oid uint) error
	GetOrderItemDetails(oiid uint) ([]model.OrderItemDetail, error)
	AddOrderItem(orderItem *model.OrderItem) error
	UpdateStatusByOrderID(orderID string, status model.OrderStatus) error
}

type orderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

func (s *orderService) ListOrders(email string) ([]model.Order, error) {
	return s.orderRepo.FindByEmail(email)
}

func (s *orderService) GetOrder(oid uint) (*model.Order, error) {
	return s.orderRepo.FindByOID(oid)
}

// GetOrderDetail bundles the order with its live line items.
func (s *orderService) GetOrderDetail(oid uint) (*model.OrderDetail, error) {
	order, err := s.orderRepo.FindByOID(oid)
	if err != nil {
		return nil, err
	}
	if order == nil {
		logger.Warn("Order not found", map[string]interface{}{
			"oid": oid,
		})
		return nil, ErrOrderNotFound
	}

	items, err := s.orderRepo.FindItemsByOID(oid)
	if err != nil {
		return nil, err
	}

	return &model.OrderDetail{
		Order: order,
		Items: items,
	}, nil
}

func (s *orderService) CreateOrder(order *model.Order) error {
	if err := s.orderRepo.Create(order); err != nil {
		return err
	}

	logger.Info("Order created", map[string]interface{}{
		"oid":         order.OID,
		"order_id":    order.OrderID,
		"email":       order.Email,
		"total_price": order.TotalPrice,
	})
	return nil
}

func (s *orderService) DeleteOrder(oid uint) error {
	if err := s.orderRepo.Delete(oid); err != nil {
		return err
	}

	logger.Info("Order deleted", map[string]interface{}{
		"oid": oid,
	})
	return nil
}

func (s *orderService) GetOrderItemDetails(oiid uint) ([]model.OrderItemDetail, error) {
	return s.orderRepo.FindItemDetailsByOIID(oiid)
}

func (s *orderService) AddOrderItem(orderItem *model.OrderItem) error {
	return s.orderRepo.CreateItem(orderItem)
}

// UpdateStatusByOrderID is the hook payment and fulfillment callbacks use. The
// status is stored as given; legal transitions are the caller's concern.
func (s *orderService) UpdateStatusByOrderID(orderID string, status model.OrderStatus) error {
	if err := s.orderRepo.UpdateStatusByOrderID(orderID, status); err != nil {
		return err
	}

	logger.Info("Order status updated", map[string]interface{}{
		"order_id": orderID,
		"status":   status,
	})
	return nil
}
