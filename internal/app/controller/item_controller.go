package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/ft-backend/internal/app/model"
	"github.com/ikkim/ft-backend/internal/app/service"
	apperrors "github.com/ikkim/ft-backend/internal/errors"
	"github.com/ikkim/ft-backend/internal/middleware"
)

type ItemController struct {
	itemService service.ItemService
}

func NewItemController(itemService service.ItemService) *ItemController {
	return &ItemController{
		itemService: itemService,
	}
}

type ItemRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Category string `json:"category"`
	Img1     string `json:"img1"`
	Img2     string `json:"img2"`
	Img3     string `json:"img3"`
	Content  string `json:"content"`
	Price    int    `json:"price" binding:"gte=0"`
	Option   string `json:"option"`
	Tag      string `json:"tag"`
	Count    int    `json:"count" binding:"gte=0"`
}

func (r *ItemRequest) toModel() *model.Item {
	return &model.Item{
		Name:     r.Name,
		Category: r.Category,
		Img1:     r.Img1,
		Img2:     r.Img2,
		Img3:     r.Img3,
		Content:  r.Content,
		Price:    r.Price,
		Option:   r.Option,
		Tag:      r.Tag,
		Count:    r.Count,
	}
}

type SaleRequest struct {
	SalePrice int        `json:"sale_price" binding:"gte=0"`
	SaleDate  *time.Time `json:"sale_date"`
}

type ItemOptionRequest struct {
	Option string `json:"option" binding:"required,max=100"`
	Count  int    `json:"count" binding:"gte=0"`
}

type ItemTagRequest struct {
	Tag string `json:"tag" binding:"required,max=50"`
}

// ListItems returns all items, or the search result when q is given
// GET /api/v1/items?q=
func (ctrl *ItemController) ListItems(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var (
		items []model.Item
		err   error
	)
	if q, ok := c.GetQuery("q"); ok {
		items, err = ctrl.itemService.SearchItems(q)
	} else {
		items, err = ctrl.itemService.ListItems()
	}
	if err != nil {
		log.Error("Failed to fetch items", err, nil)
		apperrors.FromError(c, err, "item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

// GetItem returns the item with its options and tags
// GET /api/v1/items/:iid
func (ctrl *ItemController) GetItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	iid, ok := parseIDParam(c, "iid")
	if !ok {
		return
	}

	detail, err := ctrl.itemService.GetItemDetail(iid)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			apperrors.NotFound(c, "item")
			return
		}
		log.Error("Failed to fetch item", err, map[string]interface{}{
			"iid": iid,
		})
		apperrors.FromError(c, err, "item")
		return
	}

	c.JSON(http.StatusOK, detail)
}

// CreateItem POST /api/v1/items
func (ctrl *ItemController) CreateItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item := req.toModel()
	if err := ctrl.itemService.CreateItem(item); err != nil {
		log.Error("Failed to create item", err, map[string]interface{}{
			"name": req.Name,
		})
		apperrors.FromError(c, err, "item")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// UpdateItem PUT /api/v1/items/:iid
func (ctrl *ItemController) UpdateItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	iid, ok := parseIDParam(c, "iid")
	if !ok {
		return
	}
	var req ItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item := req.toModel()
	item.IID = iid
	if err := ctrl.itemService.UpdateItem(item); err != nil {
		log.Error("Failed to update item", err, map[string]interface{}{
			"iid": iid,
		})
		apperrors.FromError(c, err, "item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DeleteItem DELETE /api/v1/items/:iid
func (ctrl *ItemController) DeleteItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	iid, ok := parseIDParam(c, "iid")
	if !ok {
		return
	}

	if err := ctrl.itemService.DeleteItem(iid); err != nil {
		log.Error("Failed to delete item", err, map[string]interface{}{
			"iid": iid,
		})
		apperrors.FromError(c, err, "item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

// SaleItem sets only the sale price and sale end date
// PUT /api/v1/items/:iid/sale
func (ctrl *ItemController) SaleItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	iid, ok := parseIDParam(c, "iid")
	if !ok {
		return
	}
	var req SaleRequest
	if !bindJSON(c, &req) {
		return
	}

	item := &model.Item{IID: iid, SalePrice: req.SalePrice, SaleDate: req.SaleDate}
	if err := ctrl.itemService.SaleItem(item); err != nil {
		log.Error("Failed to update sale", err, map[string]interface{}{
			"iid": iid,
		})
		apperrors.FromError(c, err, "item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"iid":        iid,
		"sale_price": req.SalePrice,
		"sale_date":  req.SaleDate,
	})
}

// AddOption POST /api/v1/items/:iid/options
func (ctrl *ItemController) AddOption(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	iid, ok := parseIDParam(c, "iid")
	if !ok {
		return
	}
	var req ItemOptionRequest
	if !bindJSON(c, &req) {
		return
	}

	option := &model.ItemOption{IID: iid, Option: req.Option, Count: req.Count}
	if err := ctrl.itemService.AddOption(option); err != nil {
		log.Error("Failed to add item option", err, map[string]interface{}{
			"iid": iid,
		})
		apperrors.FromError(c, err, "item_option")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"option": option})
}

// AddTag POST /api/v1/items/:iid/tags
func (ctrl *ItemController) AddTag(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	iid, ok := parseIDParam(c, "iid")
	if !ok {
		return
	}
	var req ItemTagRequest
	if !bindJSON(c, &req) {
		return
	}

	tag := &model.ItemTag{IID: iid, Tag: req.Tag}
	if err := ctrl.itemService.AddTag(tag); err != nil {
		log.Error("Failed to add item tag", err, map[string]interface{}{
			"iid": iid,
		})
		apperrors.FromError(c, err, "item")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"tag": tag})
}
