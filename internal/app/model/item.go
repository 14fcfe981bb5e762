package model

import "time"

// Item 판매 상품
type Item struct {
	IID       uint       `gorm:"column:iid;primaryKey" json:"iid"`                          // 상품 ID
	Name      string     `gorm:"type:varchar(100);not null" json:"name"`                    // 상품명
	Category  string     `gorm:"type:varchar(50);index" json:"category"`                    // 카테고리
	Img1      string     `gorm:"column:img1;type:varchar(500)" json:"img1"`                 // 대표 이미지
	Img2      string     `gorm:"column:img2;type:varchar(500)" json:"img2"`                 // 추가 이미지
	Img3      string     `gorm:"column:img3;type:varchar(500)" json:"img3"`                 // 추가 이미지
	Content   string     `gorm:"type:text" json:"content"`                                  // 상세 설명
	Price     int        `gorm:"not null" json:"price"`                                     // 정가
	SalePrice int        `gorm:"column:sale_price;default:0" json:"sale_price"`             // 할인가
	SaleDate  *time.Time `gorm:"column:sale_date" json:"sale_date,omitempty"`               // 할인 종료일
	Option    string     `gorm:"column:option;type:varchar(255)" json:"option"`             // 옵션 요약
	Tag       string     `gorm:"type:varchar(255)" json:"tag"`                              // 태그 요약
	Count     int        `gorm:"default:0" json:"count"`                                    // 재고
	RegDate   time.Time  `gorm:"column:reg_date;default:CURRENT_TIMESTAMP" json:"reg_date"` // 등록 시각
	IsDeleted bool       `gorm:"column:is_deleted;default:false;index" json:"-"`            // 삭제 여부(소프트 삭제)

	Options    []ItemOption `gorm:"foreignKey:IID" json:"-"` // 옵션 목록
	Tags       []ItemTag    `gorm:"foreignKey:IID" json:"-"` // 태그 목록
	OrderItems []OrderItem  `gorm:"foreignKey:IID" json:"-"` // 주문 항목
}

func (Item) TableName() string {
	return "items"
}

// ItemOption 상품 옵션 (사이즈, 색상 등)
type ItemOption struct {
	IOID      uint   `gorm:"column:ioid;primaryKey" json:"ioid"`                     // 옵션 ID
	IID       uint   `gorm:"column:iid;not null;index" json:"iid"`                   // 소속 상품 ID
	Option    string `gorm:"column:option;type:varchar(100);not null" json:"option"` // 옵션 값
	Count     int    `gorm:"default:0" json:"count"`                                 // 옵션 재고
	IsDeleted bool   `gorm:"column:is_deleted;default:false" json:"-"`               // 삭제 여부

	OrderItems []OrderItem `gorm:"foreignKey:IOID" json:"-"` // 이 옵션으로 주문된 항목
}

func (ItemOption) TableName() string {
	return "item_options"
}

// ItemTag 상품 검색 태그
type ItemTag struct {
	ITID      uint   `gorm:"column:itid;primaryKey" json:"itid"`       // 태그 ID
	IID       uint   `gorm:"column:iid;not null;index" json:"iid"`     // 소속 상품 ID
	Tag       string `gorm:"type:varchar(50);not null" json:"tag"`     // 태그
	IsDeleted bool   `gorm:"column:is_deleted;default:false" json:"-"` // 삭제 여부
}

func (ItemTag) TableName() string {
	return "item_tags"
}

// ItemDetail 상품 상세 화면 구성 (상품 + 옵션 + 태그)
type ItemDetail struct {
	Item    *Item        `json:"item"`
	Options []ItemOption `json:"options"`
	Tags    []ItemTag    `json:"tags"`
}
