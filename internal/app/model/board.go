package model

import "time"

// BoardType 게시판 종류
type BoardType string

const (
	BoardTypeReview BoardType = "review" // 상품 후기
	BoardTypeQnA    BoardType = "qna"    // 상품 문의
	BoardTypeNotice BoardType = "notice" // 공지
)

// Board 게시글 (후기/문의/공지)
type Board struct {
	BID       uint      `gorm:"column:bid;primaryKey" json:"bid"`                          // 게시글 ID
	IID       uint      `gorm:"column:iid;index" json:"iid"`                               // 대상 상품 ID
	Email     string    `gorm:"type:varchar(100);not null;index" json:"email"`             // 작성자 이메일
	Type      BoardType `gorm:"type:varchar(20);not null;index" json:"type"`               // 게시판 종류
	TypeQnA   string    `gorm:"column:type_qna;type:varchar(20)" json:"type_qna"`          // 문의 세부 분류
	Title     string    `gorm:"type:varchar(200);not null" json:"title"`                   // 제목
	RegDate   time.Time `gorm:"column:reg_date;default:CURRENT_TIMESTAMP" json:"reg_date"` // 등록 시각
	Content   string    `gorm:"type:text" json:"content"`                                  // 내용
	Img       string    `gorm:"type:varchar(500)" json:"img"`                              // 이미지 URL
	TotalSta  int       `gorm:"column:total_sta;default:0" json:"total_sta"`               // 통계(별점 합계)
	IsDeleted bool      `gorm:"column:is_deleted;default:false;index" json:"-"`            // 삭제 여부(소프트 삭제)
}

func (Board) TableName() string {
	return "boards"
}
