package model

import "time"

// OrderStatus 주문 상태 코드. 결제/배송 시스템이 임의의 문자열로 갱신한다.
type OrderStatus string

const (
	OrderStatusReady     OrderStatus = "READY"     // 결제 대기
	OrderStatusPaid      OrderStatus = "PAID"      // 결제 완료
	OrderStatusShipping  OrderStatus = "SHIPPING"  // 배송 중
	OrderStatusDelivered OrderStatus = "DELIVERED" // 배송 완료
	OrderStatusCancelled OrderStatus = "CANCELLED" // 주문 취소
)

// Order 주문
type Order struct {
	OID        uint        `gorm:"column:oid;primaryKey" json:"oid"`                                      // 주문 ID
	Email      string      `gorm:"type:varchar(100);not null;index" json:"email"`                         // 주문자 이메일
	Status     OrderStatus `gorm:"type:varchar(20);default:'READY'" json:"status"`                        // 주문 상태
	Name       string      `gorm:"type:varchar(50)" json:"name"`                                          // 수령인
	PostCode   string      `gorm:"column:post_code;type:varchar(10)" json:"post_code"`                    // 우편번호
	Addr       string      `gorm:"type:varchar(255)" json:"addr"`                                         // 주소
	DetailAddr string      `gorm:"column:detail_addr;type:varchar(255)" json:"detail_addr"`               // 상세 주소
	Tel        string      `gorm:"type:varchar(20)" json:"tel"`                                           // 연락처
	Req        string      `gorm:"type:varchar(255)" json:"req"`                                          // 배송 요청사항
	Way        string      `gorm:"type:varchar(20);default:'delivery'" json:"way"`                        // 배송 방법
	TotalPrice int         `gorm:"column:total_price;not null" json:"total_price"`                        // 총 주문 금액
	RegDate    time.Time   `gorm:"column:reg_date;default:CURRENT_TIMESTAMP" json:"reg_date"`             // 주문 시각
	IsDeleted  bool        `gorm:"column:is_deleted;default:false;index" json:"-"`                        // 삭제 여부(소프트 삭제)
	OrderID    string      `gorm:"column:order_id;type:varchar(64);uniqueIndex;not null" json:"order_id"` // 외부 주문번호 (결제 연동 키)

	Items []OrderItem `gorm:"foreignKey:OID" json:"-"` // 주문 항목
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem 주문 항목
type OrderItem struct {
	OIID      uint `gorm:"column:oiid;primaryKey" json:"oiid"`       // 주문 항목 ID
	OID       uint `gorm:"column:oid;not null;index" json:"oid"`     // 주문 ID
	IID       uint `gorm:"column:iid;not null;index" json:"iid"`     // 상품 ID
	IOID      uint `gorm:"column:ioid;not null;index" json:"ioid"`   // 상품 옵션 ID
	Count     int  `gorm:"not null" json:"count"`                    // 수량
	Price     int  `gorm:"not null" json:"price"`                    // 결제 단가
	IsDeleted bool `gorm:"column:is_deleted;default:false" json:"-"` // 삭제 여부
}

func (OrderItem) TableName() string {
	return "order_items"
}

// OrderItemDetail 주문 항목 화면용 조인 결과 (상품/옵션 정보 포함)
type OrderItemDetail struct {
	Name      string `json:"name"`
	Price     int    `json:"price"`
	SalePrice int    `json:"sale_price"`
	Img1      string `json:"img1"`
	Option    string `json:"option"`
}

// OrderDetail 주문 + 주문 항목
type OrderDetail struct {
	Order *Order      `json:"order"`
	Items []OrderItem `json:"items"`
}
