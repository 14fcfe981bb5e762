package repository

import (
	"errors"

	"github.com/ikkim/ft-backend/internal/app/model"
	"github.com/ikkim/ft-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// searchableColumns is the text matched by Search. Every column is coalesced so a
// NULL option or tag does not null out the whole concatenation.
const searchableColumns = "LOWER(COALESCE(name, '') || COALESCE(category, '') || COALESCE(content, '') || COALESCE(option, '') || COALESCE(tag, ''))"

type ItemRepository interface {
	FindByIID(iid uint) (*model.Item, error)
	FindAll() ([]model.Item, error)
	Search(pattern string) ([]model.Item, error)
	Create(item *model.Item) error
	Update(item *model.Item) error
	Delete(iid uint) error
	UpdateSale(item *model.Item) error
	CreateOption(option *model.ItemOption) error
	CreateTag(tag *model.ItemTag) error
	FindOptionsByIID(iid uint) ([]model.ItemOption, error)
	FindTagsByIID(iid uint) ([]model.ItemTag, error)
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) live() *gorm.DB {
	return r.db.Model(&model.Item{}).Where("is_deleted = ?", false)
}

// FindByIID returns nil without an error when no live item has the given ID.
func (r *itemRepository) FindByIID(iid uint) (*model.Item, error) {
	logger.Debug("Finding item by IID in database", map[string]interface{}{
		"iid": iid,
	})

	var item model.Item
	err := r.live().Where("iid = ?", iid).Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Debug("Item not found in database", map[string]interface{}{
			"iid": iid,
		})
		return nil, nil
	}
	if err != nil {
		logger.Error("Failed to find item by IID in database", err, map[string]interface{}{
			"iid": iid,
		})
		return nil, err
	}

	logger.Debug("Item found by IID in database", map[string]interface{}{
		"iid":  item.IID,
		"name": item.Name,
	})
	return &item, nil
}

func (r *itemRepository) FindAll() ([]model.Item, error) {
	logger.Debug("Finding all items in database", nil)

	var items []model.Item
	if err := r.live().Order("reg_date DESC").Order("iid DESC").Find(&items).Error; err != nil {
		logger.Error("Failed to find items in database", err, nil)
		return nil, err
	}

	logger.Debug("Items found in database", map[string]interface{}{
		"count": len(items),
	})
	return items, nil
}

// Search matches pattern against the concatenated searchable columns. The pattern
// must already be LIKE-escaped and wrapped in wildcards; it is bound as a single
// parameter and matched case-insensitively.
func (r *itemRepository) Search(pattern string) ([]model.Item, error) {
	logger.Debug("Searching items in database", map[string]interface{}{
		"pattern": pattern,
	})

	var items []model.Item
	if err := r.live().
		Where(searchableColumns+" LIKE LOWER(?) ESCAPE '\\'", pattern).
		Order("reg_date DESC").
		Order("iid DESC").
		Find(&items).Error; err != nil {
		logger.Error("Failed to search items in database", err, map[string]interface{}{
			"pattern": pattern,
		})
		return nil, err
	}

	logger.Debug("Items found by search in database", map[string]interface{}{
		"pattern": pattern,
		"count":   len(items),
	})
	return items, nil
}

// Create inserts the item and writes the generated IID back into it.
// Sale fields, stock count, registration time and the delete flag take column defaults.
func (r *itemRepository) Create(item *model.Item) error {
	logger.Debug("Creating item in database", map[string]interface{}{
		"name":     item.Name,
		"category": item.Category,
		"price":    item.Price,
	})

	if err := r.db.Omit(clause.Associations, "sale_price", "sale_date", "count", "reg_date", "is_deleted").
		Create(item).Error; err != nil {
		logger.Error("Failed to create item in database", err, map[string]interface{}{
			"name":     item.Name,
			"category": item.Category,
		})
		return err
	}

	logger.Debug("Item created in database", map[string]interface{}{
		"iid":  item.IID,
		"name": item.Name,
	})
	return nil
}

func (r *itemRepository) Update(item *model.Item) error {
	logger.Debug("Updating item in database", map[string]interface{}{
		"iid":  item.IID,
		"name": item.Name,
	})

	if err := r.db.Model(&model.Item{}).Where("iid = ?", item.IID).
		Updates(map[string]interface{}{
			"name":     item.Name,
			"category": item.Category,
			"img1":     item.Img1,
			"img2":     item.Img2,
			"img3":     item.Img3,
			"content":  item.Content,
			"price":    item.Price,
			"option":   item.Option,
			"count":    item.Count,
			"tag":      item.Tag,
		}).Error; err != nil {
		logger.Error("Failed to update item in database", err, map[string]interface{}{
			"iid": item.IID,
		})
		return err
	}

	logger.Debug("Item updated in database", map[string]interface{}{
		"iid": item.IID,
	})
	return nil
}

// Delete flags the item as deleted. Deleting an already deleted item is a no-op.
func (r *itemRepository) Delete(iid uint) error {
	logger.Debug("Deleting item in database", map[string]interface{}{
		"iid": iid,
	})

	if err := r.db.Model(&model.Item{}).Where("iid = ?", iid).
		Update("is_deleted", true).Error; err != nil {
		logger.Error("Failed to delete item in database", err, map[string]interface{}{
			"iid": iid,
		})
		return err
	}

	logger.Debug("Item deleted in database", map[string]interface{}{
		"iid": iid,
	})
	return nil
}

// UpdateSale touches only the sale price and sale date.
func (r *itemRepository) UpdateSale(item *model.Item) error {
	logger.Debug("Updating item sale in database", map[string]interface{}{
		"iid":        item.IID,
		"sale_price": item.SalePrice,
		"sale_date":  item.SaleDate,
	})

	if err := r.db.Model(&model.Item{}).Where("iid = ?", item.IID).
		Updates(map[string]interface{}{
			"sale_price": item.SalePrice,
			"sale_date":  item.SaleDate,
		}).Error; err != nil {
		logger.Error("Failed to update item sale in database", err, map[string]interface{}{
			"iid": item.IID,
		})
		return err
	}

	logger.Debug("Item sale updated in database", map[string]interface{}{
		"iid": item.IID,
	})
	return nil
}

func (r *itemRepository) CreateOption(option *model.ItemOption) error {
	logger.Debug("Creating item option", map[string]interface{}{
		"iid":    option.IID,
		"option": option.Option,
		"count":  option.Count,
	})

	if err := r.db.Omit(clause.Associations, "is_deleted").Create(option).Error; err != nil {
		logger.Error("Failed to create item option", err, map[string]interface{}{
			"iid":    option.IID,
			"option": option.Option,
		})
		return err
	}

	logger.Debug("Item option created", map[string]interface{}{
		"ioid": option.IOID,
		"iid":  option.IID,
	})
	return nil
}

func (r *itemRepository) CreateTag(tag *model.ItemTag) error {
	logger.Debug("Creating item tag", map[string]interface{}{
		"iid": tag.IID,
		"tag": tag.Tag,
	})

	if err := r.db.Omit(clause.Associations, "is_deleted").Create(tag).Error; err != nil {
		logger.Error("Failed to create item tag", err, map[string]interface{}{
			"iid": tag.IID,
			"tag": tag.Tag,
		})
		return err
	}

	logger.Debug("Item tag created", map[string]interface{}{
		"itid": tag.ITID,
		"iid":  tag.IID,
	})
	return nil
}

func (r *itemRepository) FindOptionsByIID(iid uint) ([]model.ItemOption, error) {
	logger.Debug("Finding item options by item", map[string]interface{}{
		"iid": iid,
	})

	var options []model.ItemOption
	if err := r.db.Where("iid = ? AND is_deleted = ?", iid, false).
		Order("ioid ASC").
		Find(&options).Error; err != nil {
		logger.Error("Failed to find item options", err, map[string]interface{}{
			"iid": iid,
		})
		return nil, err
	}

	logger.Debug("Item options found", map[string]interface{}{
		"iid":   iid,
		"count": len(options),
	})
	return options, nil
}

func (r *itemRepository) FindTagsByIID(iid uint) ([]model.ItemTag, error) {
	logger.Debug("Finding item tags by item", map[string]interface{}{
		"iid": iid,
	})

	var tags []model.ItemTag
	if err := r.db.Where("iid = ? AND is_deleted = ?", iid, false).
		Order("itid ASC").
		Find(&tags).Error; err != nil {
		logger.Error("Failed to find item tags", err, map[string]interface{}{
			"iid": iid,
		})
		return nil, err
	}

	logger.Debug("Item tags found", map[string]interface{}{
		"iid":   iid,
		"count": len(tags),
	})
	return tags, nil
}
