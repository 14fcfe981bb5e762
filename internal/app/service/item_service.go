package service

import (
	"errors"

	"github.com/ikkim/ft-backend/internal/app/model"
	"github.com/ikkim/ft-backend/internal/app/repository"
	"github.com/ikkim/ft-backend/pkg/logger"
	"github.com/ikkim/ft-backend/pkg/util"
)

var (
	ErrItemNotFound = errors.New("item not found")
)

type ItemService interface {
	GetItem(iid uint) (*model.Item, error)
	GetItemDetail(iid uint) (*model.ItemDetail, error)
	ListItems() ([]model.Item, error)
	SearchItems(query string) ([]model.Item, error)
	CreateItem(item *model.Item) error
	UpdateItem(item *model.Item) error
	DeleteItem(iid uint) error
	SaleItem(item *model.Item) error
	AddOption(option *model.ItemOption) error
	AddTag(tag *model.ItemTag) error
}

type itemService struct {
	itemRepo repository.ItemRepository
}

func NewItemService(itemRepo repository.ItemRepository) ItemService {
	return &itemService{itemRepo: itemRepo}
}

func (s *itemService) GetItem(iid uint) (*model.Item, error) {
	return s.itemRepo.FindByIID(iid)
}

// GetItemDetail bundles the item with its live options and tags.
func (s *itemService) GetItemDetail(iid uint) (*model.ItemDetail, error) {
	item, err := s.itemRepo.FindByIID(iid)
	if err != nil {
		return nil, err
	}
	if item == nil {
		logger.Warn("Item not found", map[string]interface{}{
			"iid": iid,
		})
		return nil, ErrItemNotFound
	}

	options, err := s.itemRepo.FindOptionsByIID(iid)
	if err != nil {
		return nil, err
	}
	tags, err := s.itemRepo.FindTagsByIID(iid)
	if err != nil {
		return nil, err
	}

	return &model.ItemDetail{
		Item:    item,
		Options: options,
		Tags:    tags,
	}, nil
}

func (s *itemService) ListItems() ([]model.Item, error) {
	return s.itemRepo.FindAll()
}

// SearchItems escapes the raw user query and wraps it in wildcards before it
// reaches the repository, which binds it as a single parameter.
func (s *itemService) SearchItems(query string) ([]model.Item, error) {
	pattern := util.BuildLikePattern(query)

	logger.Debug("Searching items", map[string]interface{}{
		"query":   query,
		"pattern": pattern,
	})

	items, err := s.itemRepo.Search(pattern)
	if err != nil {
		logger.Error("Failed to search items", err, map[string]interface{}{
			"query": query,
		})
		return nil, err
	}

	logger.Info("Items searched", map[string]interface{}{
		"query": query,
		"count": len(items),
	})
	return items, nil
}

func (s *itemService) CreateItem(item *model.Item) error {
	if err := s.itemRepo.Create(item); err != nil {
		return err
	}

	logger.Info("Item created", map[string]interface{}{
		"iid":  item.IID,
		"name": item.Name,
	})
	return nil
}

func (s *itemService) UpdateItem(item *model.Item) error {
	if err := s.itemRepo.Update(item); err != nil {
		return err
	}

	logger.Info("Item updated", map[string]interface{}{
		"iid": item.IID,
	})
	return nil
}

func (s *itemService) DeleteItem(iid uint) error {
	if err := s.itemRepo.Delete(iid); err != nil {
		return err
	}

	logger.Info("Item deleted", map[string]interface{}{
		"iid": iid,
	})
	return nil
}

func (s *itemService) SaleItem(item *model.Item) error {
	if err := s.itemRepo.UpdateSale(item); err != nil {
		return err
	}

	logger.Info("Item sale updated", map[string]interface{}{
		"iid":        item.IID,
		"sale_price": item.SalePrice,
	})
	return nil
}

func (s *itemService) AddOption(option *model.ItemOption) error {
	return s.itemRepo.CreateOption(option)
}

func (s *itemService) AddTag(tag *model.ItemTag) error {
	return s.itemRepo.CreateTag(tag)
}
