package service

import (
	"errors"
	"testing"

	"github.com/ikkim/ft-backend/internal/app/model"
	"github.com/ikkim/ft-backend/internal/app/repository"
	"github.com/ikkim/ft-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupItemServiceTest(t *testing.T) ItemService {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	return NewItemService(repository.NewItemRepository(testDB))
}

// searchRecorder captures the pattern handed to the repository.
type searchRecorder struct {
	repository.ItemRepository
	pattern string
	err     error
}

func (r *searchRecorder) Search(pattern string) ([]model.Item, error) {
	r.pattern = pattern
	return nil, r.err
}

func TestItemService_SearchItems_BuildsEscapedPattern(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"shirt", "%shirt%"},
		{" O'Brien ", "% O'Brien %"},
		{"10%_off", `%10\%\_off%`},
		{"", "%%"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := &searchRecorder{}
			_, err := NewItemService(rec).SearchItems(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.pattern)
		})
	}
}

func TestItemService_SearchItems_PropagatesError(t *testing.T) {
	boom := errors.New("connection refused")
	_, err := NewItemService(&searchRecorder{err: boom}).SearchItems("x")
	assert.ErrorIs(t, err, boom)
}

func TestItemService_SearchItems(t *testing.T) {
	itemService := setupItemServiceTest(t)

	require.NoError(t, itemService.CreateItem(&model.Item{Name: "O'Brien Jacket", Price: 1}))
	require.NoError(t, itemService.CreateItem(&model.Item{Name: "OBrien Jacket", Price: 1}))

	items, err := itemService.SearchItems("O'Brien")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "O'Brien Jacket", items[0].Name)

	items, err = itemService.SearchItems("")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestItemService_GetItemDetail(t *testing.T) {
	itemService := setupItemServiceTest(t)

	item := &model.Item{Name: "Tee", Price: 10000}
	require.NoError(t, itemService.CreateItem(item))
	require.NoError(t, itemService.AddOption(&model.ItemOption{IID: item.IID, Option: "S", Count: 2}))
	require.NoError(t, itemService.AddOption(&model.ItemOption{IID: item.IID, Option: "M", Count: 0}))
	require.NoError(t, itemService.AddTag(&model.ItemTag{IID: item.IID, Tag: "basic"}))

	detail, err := itemService.GetItemDetail(item.IID)
	require.NoError(t, err)
	assert.Equal(t, "Tee", detail.Item.Name)
	assert.Len(t, detail.Options, 2)
	assert.Len(t, detail.Tags, 1)

	t.Run("deleted item is not found", func(t *testing.T) {
		require.NoError(t, itemService.DeleteItem(item.IID))
		_, err := itemService.GetItemDetail(item.IID)
		assert.ErrorIs(t, err, ErrItemNotFound)

		got, err := itemService.GetItem(item.IID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestItemService_UpdateAndSale(t *testing.T) {
	itemService := setupItemServiceTest(t)

	item := &model.Item{Name: "Coat", Price: 200000}
	require.NoError(t, itemService.CreateItem(item))

	item.Name = "Wool Coat"
	require.NoError(t, itemService.UpdateItem(item))
	require.NoError(t, itemService.SaleItem(&model.Item{IID: item.IID, SalePrice: 150000}))

	got, err := itemService.GetItem(item.IID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Wool Coat", got.Name)
	assert.Equal(t, 200000, got.Price)
	assert.Equal(t, 150000, got.SalePrice)

	items, err := itemService.ListItems()
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
