package errors

// 에러 코드 상수 정의
// 형식: CATEGORY_SPECIFIC_DETAIL
// 프론트엔드에서 이 코드를 기반으로 메시지를 매핑함

const (
	// ==================== 인증 (AUTH_) ====================
	AuthUnauthorized = "AUTH_UNAUTHORIZED" // 콜백 서명 불일치 등

	// ==================== 검증 (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // 잘못된 입력
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // 잘못된 ID
	ValidationRequired     = "VALIDATION_REQUIRED"      // 필수 항목

	// ==================== 리소스 (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"      // 리소스 없음
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS" // 이미 존재
	ResourceReference     = "RESOURCE_REFERENCE"      // 참조 대상 없음

	// ==================== 게시글 (BOARD_) ====================
	BoardNotFound = "BOARD_NOT_FOUND" // 게시글 없음

	// ==================== 상품 (ITEM_) ====================
	ItemNotFound       = "ITEM_NOT_FOUND"        // 상품 없음
	ItemOptionNotFound = "ITEM_OPTION_NOT_FOUND" // 옵션 없음

	// ==================== 주문 (ORDER_) ====================
	OrderNotFound         = "ORDER_NOT_FOUND"          // 주문 없음
	OrderDuplicateOrderID = "ORDER_DUPLICATE_ORDER_ID" // 주문번호 중복

	// ==================== 업로드 (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE" // 잘못된 파일 형식
	UploadFailed          = "UPLOAD_FAILED"            // 업로드 실패

	// ==================== 내부 오류 (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // 서버 오류
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // DB 연결 오류
)
