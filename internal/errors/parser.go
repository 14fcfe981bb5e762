package errors

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// Kind 저장소 에러 분류
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindDuplicate
	KindForeignKey
	KindNotNull
	KindConnection
)

// ErrorInfo 에러 정보 구조
type ErrorInfo struct {
	Kind    Kind
	Code    string // 에러 코드 (codes.go 참조)
	Message string // 사용자 친화적 메시지
}

// Classify 저장소 에러를 분류한다. PostgreSQL은 SQLSTATE, SQLite는 메시지로 판별
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return KindNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return KindDuplicate
		case pgForeignKeyViolation:
			return KindForeignKey
		case pgNotNullViolation:
			return KindNotNull
		}
	}

	errLower := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errLower, "duplicate key") || strings.Contains(errLower, "unique constraint"):
		return KindDuplicate
	case strings.Contains(errLower, "foreign key constraint"):
		return KindForeignKey
	case strings.Contains(errLower, "not null constraint") || strings.Contains(errLower, "violates not-null"):
		return KindNotNull
	case strings.Contains(errLower, "connection refused") ||
		strings.Contains(errLower, "no such host") ||
		strings.Contains(errLower, "timeout") ||
		strings.Contains(errLower, "database is closed"):
		return KindConnection
	}
	return KindUnknown
}

// ParseError 에러를 파싱하여 사용자 친화적인 메시지와 코드로 변환
// context 는 "item", "order" 처럼 작업 대상을 나타낸다
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "서버 오류가 발생했습니다",
		}
	}

	kind := Classify(err)
	switch kind {
	case KindNotFound:
		code, msg := notFound(context)
		return ErrorInfo{Kind: kind, Code: code, Message: msg}
	case KindDuplicate:
		if strings.Contains(strings.ToLower(err.Error()), "order_id") {
			return ErrorInfo{Kind: kind, Code: OrderDuplicateOrderID, Message: "이미 사용된 주문번호입니다"}
		}
		return ErrorInfo{Kind: kind, Code: ResourceAlreadyExists, Message: "이미 존재하는 데이터입니다"}
	case KindForeignKey:
		return ErrorInfo{Kind: kind, Code: ResourceReference, Message: "참조하는 상품/주문/옵션을 찾을 수 없습니다"}
	case KindNotNull:
		return ErrorInfo{Kind: kind, Code: ValidationRequired, Message: "필수 항목이 누락되었습니다"}
	case KindConnection:
		return ErrorInfo{Kind: kind, Code: InternalDatabaseError, Message: "데이터베이스 연결에 실패했습니다. 잠시 후 다시 시도해주세요"}
	}

	return ErrorInfo{
		Kind:    kind,
		Code:    InternalServerError,
		Message: "서버 오류가 발생했습니다. 잠시 후 다시 시도해주세요",
	}
}

func notFound(context string) (string, string) {
	switch strings.ToLower(context) {
	case "board":
		return BoardNotFound, "게시글을 찾을 수 없습니다"
	case "item":
		return ItemNotFound, "상품을 찾을 수 없습니다"
	case "item_option":
		return ItemOptionNotFound, "상품 옵션을 찾을 수 없습니다"
	case "order":
		return OrderNotFound, "주문을 찾을 수 없습니다"
	}
	return ResourceNotFound, "요청한 데이터를 찾을 수 없습니다"
}
