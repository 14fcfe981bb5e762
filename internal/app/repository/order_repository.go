package repository

import (
	"errors"

	"github.com/ikkim/ft-backend/internal/app/model"
	"github.com/ikkim/ft-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository interface {
	FindByEmail(email string) ([]model.Order, error)
	FindByOID(oid uint) (*model.Order, error)
	Create(order *model.Order) error
	Delete(oid uint) error
	FindItemDetailsByOIID(oiid uint) ([]model.OrderItemDetail, error)
	FindItemsByOID(oid uint) ([]model.OrderItem, error)
	CreateItem(orderItem *model.OrderItem) error
	UpdateStatusByOrderID(orderID string, status model.OrderStatus) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) FindByEmail(email string) ([]model.Order, error) {
	logger.Debug("Finding orders by email in database", map[string]interface{}{
		"email": email,
	})

	var orders []model.Order
	if err := r.db.Where("email = ? AND is_deleted = ?", email, false).
		Order("reg_date DESC").
		Order("oid DESC").
		Find(&orders).Error; err != nil {
		logger.Error("Failed to find orders by email in database", err, map[string]interface{}{
			"email": email,
		})
		return nil, err
	}

	logger.Debug("Orders found by email in database", map[string]interface{}{
		"email": email,
		"count": len(orders),
	})
	return orders, nil
}

// FindByOID returns nil without an error when no live order has the given ID.
func (r *orderRepository) FindByOID(oid uint) (*model.Order, error) {
	logger.Debug("Finding order by OID in database", map[string]interface{}{
		"oid": oid,
	})

	var order model.Order
	err := r.db.Where("oid = ? AND is_deleted = ?", oid, false).Take(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Debug("Order not found in database", map[string]interface{}{
			"oid": oid,
		})
		return nil, nil
	}
	if err != nil {
		logger.Error("Failed to find order by OID in database", err, map[string]interface{}{
			"oid": oid,
		})
		return nil, err
	}

	logger.Debug("Order found by OID in database", map[string]interface{}{
		"oid":      order.OID,
		"order_id": order.OrderID,
		"status":   order.Status,
	})
	return &order, nil
}

// Create inserts the order and writes the generated OID back into it. The external
// order ID comes from the caller; status, delivery method, registration time and
// the delete flag take column defaults.
func (r *orderRepository) Create(order *model.Order) error {
	logger.Debug("Creating order in database", map[string]interface{}{
		"email":       order.Email,
		"order_id":    order.OrderID,
		"total_price": order.TotalPrice,
	})

	if err := r.db.Omit(clause.Associations, "status", "way", "reg_date", "is_deleted").Create(order).Error; err != nil {
		logger.Error("Failed to create order in database", err, map[string]interface{}{
			"email":    order.Email,
			"order_id": order.OrderID,
		})
		return err
	}

	logger.Debug("Order created in database", map[string]interface{}{
		"oid":      order.OID,
		"order_id": order.OrderID,
	})
	return nil
}

// Delete flags the order as deleted. Deleting an already deleted order is a no-op.
func (r *orderRepository) Delete(oid uint) error {
	logger.Debug("Deleting order in database", map[string]interface{}{
		"oid": oid,
	})

	if err := r.db.Model(&model.Order{}).Where("oid = ?", oid).
		Update("is_deleted", true).Error; err != nil {
		logger.Error("Failed to delete order in database", err, map[string]interface{}{
			"oid": oid,
		})
		return err
	}

	logger.Debug("Order deleted in database", map[string]interface{}{
		"oid": oid,
	})
	return nil
}

// FindItemDetailsByOIID joins the order item to its item and option rows. Only the
// order item's own delete flag is checked.
func (r *orderRepository) FindItemDetailsByOIID(oiid uint) ([]model.OrderItemDetail, error) {
	logger.Debug("Finding order item details by OIID in database", map[string]interface{}{
		"oiid": oiid,
	})

	var details []model.OrderItemDetail
	if err := r.db.Table("order_items").
		Select("items.name, items.price, items.sale_price, items.img1, item_options.option").
		Joins("JOIN items ON order_items.iid = items.iid").
		Joins("JOIN item_options ON order_items.ioid = item_options.ioid").
		Where("order_items.oiid = ? AND order_items.is_deleted = ?", oiid, false).
		Scan(&details).Error; err != nil {
		logger.Error("Failed to find order item details by OIID in database", err, map[string]interface{}{
			"oiid": oiid,
		})
		return nil, err
	}

	logger.Debug("Order item details found by OIID in database", map[string]interface{}{
		"oiid":  oiid,
		"count": len(details),
	})
	return details, nil
}

func (r *orderRepository) FindItemsByOID(oid uint) ([]model.OrderItem, error) {
	logger.Debug("Finding order items by OID in database", map[string]interface{}{
		"oid": oid,
	})

	var orderItems []model.OrderItem
	if err := r.db.Where("oid = ? AND is_deleted = ?", oid, false).
		Order("oiid ASC").
		Find(&orderItems).Error; err != nil {
		logger.Error("Failed to find order items by OID in database", err, map[string]interface{}{
			"oid": oid,
		})
		return nil, err
	}

	logger.Debug("Order items found by OID in database", map[string]interface{}{
		"oid":   oid,
		"count": len(orderItems),
	})
	return orderItems, nil
}

func (r *orderRepository) CreateItem(orderItem *model.OrderItem) error {
	logger.Debug("Creating order item in database", map[string]interface{}{
		"oid":   orderItem.OID,
		"iid":   orderItem.IID,
		"ioid":  orderItem.IOID,
		"count": orderItem.Count,
	})

	if err := r.db.Omit(clause.Associations, "is_deleted").Create(orderItem).Error; err != nil {
		logger.Error("Failed to create order item in database", err, map[string]interface{}{
			"oid":  orderItem.OID,
			"iid":  orderItem.IID,
			"ioid": orderItem.IOID,
		})
		return err
	}

	logger.Debug("Order item created in database", map[string]interface{}{
		"oiid": orderItem.OIID,
		"oid":  orderItem.OID,
	})
	return nil
}

// UpdateStatusByOrderID overwrites the status of the order carrying the external
// order ID. Any status string is accepted.
func (r *orderRepository) UpdateStatusByOrderID(orderID string, status model.OrderStatus) error {
	logger.Debug("Updating order status by order ID in database", map[string]interface{}{
		"order_id": orderID,
		"status":   status,
	})

	if err := r.db.Model(&model.Order{}).Where("order_id = ?", orderID).
		Update("status", status).Error; err != nil {
		logger.Error("Failed to update order status by order ID in database", err, map[string]interface{}{
			"order_id": orderID,
			"status":   status,
		})
		return err
	}

	logger.Debug("Order status updated by order ID in database", map[string]interface{}{
		"order_id": orderID,
		"status":   status,
	})
	return nil
}
