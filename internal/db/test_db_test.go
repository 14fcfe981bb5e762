package db

import (
	"testing"

	"github.com/ikkim/ft-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func tableSQL(t *testing.T, db *gorm.DB, table string) string {
	var sql string
	require.NoError(t, db.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&sql).Error)
	require.NotEmpty(t, sql, table)
	return sql
}

func TestSetupTestDB_ForeignKeysPointAtParents(t *testing.T) {
	db, err := SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { CleanupTestDB(db) })

	assert.NotContains(t, tableSQL(t, db, "items"), "REFERENCES")
	assert.NotContains(t, tableSQL(t, db, "orders"), "REFERENCES")

	assert.Contains(t, tableSQL(t, db, "item_options"), "REFERENCES `items`")
	assert.Contains(t, tableSQL(t, db, "item_tags"), "REFERENCES `items`")

	orderItems := tableSQL(t, db, "order_items")
	assert.Contains(t, orderItems, "REFERENCES `orders`")
	assert.Contains(t, orderItems, "REFERENCES `items`")
	assert.Contains(t, orderItems, "REFERENCES `item_options`")
}

func seedAllTables(t *testing.T, db *gorm.DB) {
	item := &model.Item{Name: "Tee", Price: 1000}
	require.NoError(t, db.Create(item).Error)

	option := &model.ItemOption{IID: item.IID, Option: "M", Count: 3}
	require.NoError(t, db.Create(option).Error)
	require.NoError(t, db.Create(&model.ItemTag{IID: item.IID, Tag: "summer"}).Error)

	order := &model.Order{Email: "me@example.com", OrderID: "ORD-DB-1", TotalPrice: 1000}
	require.NoError(t, db.Create(order).Error)
	require.NoError(t, db.Create(&model.OrderItem{
		OID: order.OID, IID: item.IID, IOID: option.IOID, Count: 1, Price: 1000,
	}).Error)

	require.NoError(t, db.Create(&model.Board{Type: model.BoardTypeReview, Title: "good", Email: "me@example.com"}).Error)
}

func TestTruncateAllTables(t *testing.T) {
	db, err := SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { CleanupTestDB(db) })

	seedAllTables(t, db)

	var before int64
	require.NoError(t, db.Model(&model.OrderItem{}).Count(&before).Error)
	require.Equal(t, int64(1), before)

	require.NoError(t, TruncateAllTables(db))

	for _, m := range []interface{}{
		&model.Board{}, &model.Item{}, &model.ItemOption{}, &model.ItemTag{}, &model.Order{}, &model.OrderItem{},
	} {
		var n int64
		require.NoError(t, db.Model(m).Count(&n).Error)
		assert.Zero(t, n)
	}

	// the tables stay usable after truncation
	seedAllTables(t, db)
}
