package errors

import (
	"net/http"

	"vouch/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is lets errors.Is match a detailed copy against its template.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// Predefined error types
var (
	// User and registration errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"找不到該使用者",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"此電子郵件已被註冊",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"電子郵件或密碼錯誤",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"密碼強度不足",
		"",
	)

	ErrEmailAlreadyVerified = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_ALREADY_VERIFIED",
		"電子郵件已完成驗證",
		"",
	)

	// Submission state machine errors
	ErrSubmissionNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBMISSION_NOT_FOUND",
		"找不到該驗證申請",
		"",
	)

	ErrDuplicateActiveSubmission = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_ACTIVE_SUBMISSION",
		"已有待處理或審核中的驗證申請",
		"",
	)

	ErrSubmissionNotEditable = NewBaseError(
		http.StatusConflict,
		"SUBMISSION_NOT_EDITABLE",
		"此驗證申請已送審，無法再修改",
		"",
	)

	ErrSubmissionAlreadyResolved = NewBaseError(
		http.StatusConflict,
		"SUBMISSION_ALREADY_RESOLVED",
		"此驗證申請已有審核結果",
		"",
	)

	ErrMissingRequiredDocuments = NewBaseError(
		http.StatusBadRequest,
		"MISSING_REQUIRED_DOCUMENTS",
		"尚有必要文件未上傳",
		"",
	)

	// Document and document type errors
	ErrDocumentTypeNotFound = NewBaseError(
		http.StatusNotFound,
		"DOCUMENT_TYPE_NOT_FOUND",
		"找不到該文件類型",
		"",
	)

	ErrDocumentTypeInactive = NewBaseError(
		http.StatusBadRequest,
		"DOCUMENT_TYPE_INACTIVE",
		"此文件類型已停用",
		"",
	)

	ErrDocumentTypeNotApplicable = NewBaseError(
		http.StatusBadRequest,
		"DOCUMENT_TYPE_NOT_APPLICABLE",
		"此文件類型不適用於這種帳戶",
		"",
	)

	ErrDocumentTypeInUse = NewBaseError(
		http.StatusConflict,
		"DOCUMENT_TYPE_IN_USE",
		"此文件類型仍有文件引用，無法刪除",
		"",
	)

	ErrFileTooLarge = NewBaseError(
		http.StatusBadRequest,
		"FILE_TOO_LARGE",
		"檔案大小超過上限",
		"",
	)

	ErrFileTypeNotAllowed = NewBaseError(
		http.StatusBadRequest,
		"FILE_TYPE_NOT_ALLOWED",
		"不支援的檔案格式",
		"",
	)

	// Business ownership errors
	ErrBusinessNotFound = NewBaseError(
		http.StatusNotFound,
		"BUSINESS_NOT_FOUND",
		"找不到該企業資料",
		"",
	)

	ErrAlreadyOwner = NewBaseError(
		http.StatusConflict,
		"ALREADY_OWNER",
		"該使用者已是此企業的擁有者",
		"",
	)

	ErrNotBusinessOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_BUSINESS_OWNER",
		"您不是此企業的擁有者",
		"",
	)

	ErrNotPrimaryContact = NewBaseError(
		http.StatusForbidden,
		"NOT_PRIMARY_CONTACT",
		"只有主要聯絡人或管理員可以管理擁有者",
		"",
	)

	// Token errors
	ErrInvalidOrUsedToken = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OR_USED_TOKEN",
		"無效或已使用的權杖",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusBadRequest,
		"TOKEN_EXPIRED",
		"權杖已過期",
		"",
	)

	// Collaborator failures
	ErrStorageFailure = NewBaseError(
		http.StatusBadGateway,
		"STORAGE_FAILURE",
		"檔案儲存服務暫時無法使用",
		"",
	)

	ErrDispatchFailure = NewBaseError(
		http.StatusBadGateway,
		"DISPATCH_FAILURE",
		"非同步任務派送失敗",
		"",
	)

	ErrMailFailure = NewBaseError(
		http.StatusBadGateway,
		"MAIL_FAILURE",
		"郵件寄送失敗",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"資料庫交易失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"資源衝突",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
