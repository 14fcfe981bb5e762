package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ikkim/ft-backend/internal/app/model"
	"github.com/ikkim/ft-backend/internal/app/repository"
	"github.com/ikkim/ft-backend/internal/app/service"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// 시트 컬럼 순서
const (
	colName = iota
	colCategory
	colPrice
	colContent
	colImg1
	colOption
	colTag
	colOptions // "라벨:재고;라벨:재고"
	colTags    // "태그;태그"
)

// catalogRow 상품 한 건과 그 옵션/태그
type catalogRow struct {
	Item    model.Item
	Options []model.ItemOption
	Tags    []model.ItemTag
}

func readCatalogFromXLSX(filePath string) ([]catalogRow, int, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, 0, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("no data found in XLSX file")
	}

	var items []catalogRow
	skipped := 0

	// 첫 행은 헤더
	for i, row := range rows[1:] {
		parsed, err := parseCatalogRow(row)
		if err != nil {
			fmt.Printf("  row %d skipped: %v\n", i+2, err)
			skipped++
			continue
		}
		items = append(items, *parsed)
	}

	return items, skipped, nil
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

func parseCatalogRow(row []string) (*catalogRow, error) {
	name := cell(row, colName)
	if name == "" {
		return nil, fmt.Errorf("name is empty")
	}

	price, err := parsePrice(cell(row, colPrice))
	if err != nil {
		return nil, err
	}

	options, err := parseOptions(cell(row, colOptions))
	if err != nil {
		return nil, err
	}

	return &catalogRow{
		Item: model.Item{
			Name:     name,
			Category: cell(row, colCategory),
			Price:    price,
			Content:  cell(row, colContent),
			Img1:     cell(row, colImg1),
			Option:   cell(row, colOption),
			Tag:      cell(row, colTag),
		},
		Options: options,
		Tags:    parseTags(cell(row, colTags)),
	}, nil
}

// parsePrice accepts "12000" and "12,000"
func parsePrice(s string) (int, error) {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("price is empty")
	}
	price, err := strconv.Atoi(s)
	if err != nil || price < 0 {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	return price, nil
}

// parseOptions reads "S:10;M:5;L". A missing count means 0.
func parseOptions(s string) ([]model.ItemOption, error) {
	var options []model.ItemOption
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		label, countStr, hasCount := strings.Cut(part, ":")
		option := model.ItemOption{Option: strings.TrimSpace(label)}
		if option.Option == "" {
			return nil, fmt.Errorf("empty option label in %q", s)
		}
		if hasCount {
			n, err := strconv.Atoi(strings.TrimSpace(countStr))
			if err != nil || n < 0 {
				return nil, fmt.Errorf("invalid option count in %q", part)
			}
			option.Count = n
		}
		options = append(options, option)
	}
	return options, nil
}

func parseTags(s string) []model.ItemTag {
	var tags []model.ItemTag
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ";") {
		tag := strings.TrimSpace(part)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, model.ItemTag{Tag: tag})
	}
	return tags
}

// itemServiceFactory builds an item service bound to one transaction.
type itemServiceFactory func(tx *gorm.DB) service.ItemService

func newItemService(tx *gorm.DB) service.ItemService {
	return service.NewItemService(repository.NewItemRepository(tx))
}

// importCatalog inserts each item with its options and tags in its own
// transaction, so a failed row leaves nothing behind. It stops at the first
// failure and reports how many items were imported.
func importCatalog(gdb *gorm.DB, rows []catalogRow, newService itemServiceFactory) (int, error) {
	imported := 0
	for i := range rows {
		row := &rows[i]
		err := gdb.Transaction(func(tx *gorm.DB) error {
			itemService := newService(tx)
			if err := itemService.CreateItem(&row.Item); err != nil {
				return fmt.Errorf("item %q: %w", row.Item.Name, err)
			}

			for j := range row.Options {
				row.Options[j].IID = row.Item.IID
				if err := itemService.AddOption(&row.Options[j]); err != nil {
					return fmt.Errorf("item %q option %q: %w", row.Item.Name, row.Options[j].Option, err)
				}
			}
			for j := range row.Tags {
				row.Tags[j].IID = row.Item.IID
				if err := itemService.AddTag(&row.Tags[j]); err != nil {
					return fmt.Errorf("item %q tag %q: %w", row.Item.Name, row.Tags[j].Tag, err)
				}
			}
			return nil
		})
		if err != nil {
			return imported, err
		}

		imported++
		if imported%100 == 0 {
			fmt.Printf("Imported %d items...\n", imported)
		}
	}
	return imported, nil
}
