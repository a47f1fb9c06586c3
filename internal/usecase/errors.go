package usecase

import "fmt"

const (
	CodeNoData            = "NO_DATA"
	CodeNoResults         = "NO_RESULTS"
	CodeEmployeeNotFound  = "EMPLOYEE_NOT_FOUND"
	CodeMissingField      = "MISSING_FIELD"
	CodeMissingSalary     = "MISSING_SALARY"
	CodeRenderFailed      = "RENDER_FAILED"
	CodeNothingExported   = "NOTHING_EXPORTED"
	CodeSendFailed        = "SMTP_SEND_FAILED"
	CodeMissingRecipient  = "MISSING_RECIPIENT"
	CodeSmtpNotConfigured = "SMTP_NOT_CONFIGURED"
	CodeInvalidSmtpConfig = "INVALID_SMTP_CONFIG"
	CodeInvalidPeriod     = "INVALID_PERIOD"
	CodeInvalidFormat     = "INVALID_FORMAT"
	CodeInvalidRequest    = "INVALID_REQUEST"
)

// DomainError is a rejected precondition or invalid input.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// ImportError means the uploaded workbook could not become a dataset.
type ImportError struct {
	Code    string
	Message string
	Err     error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ImportError) Unwrap() error { return e.Err }

type LookupError struct {
	Code    string
	Message string
}

func (e *LookupError) Error() string {
	return e.Message
}

// RenderError is a slip that could not be produced for one employee.
type RenderError struct {
	EmployeeID int
	Code       string
	Message    string
	Err        error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *RenderError) Unwrap() error { return e.Err }

// TransportError wraps a failed SMTP delivery.
type TransportError struct {
	Code    string
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *TransportError) Unwrap() error { return e.Err }

var (
	errNoData = &LookupError{Code: CodeNoData, Message: "Chưa upload dữ liệu. Vui lòng upload file Excel trước."}
)

func employeeNotFound(id int) *LookupError {
	return &LookupError{Code: CodeEmployeeNotFound, Message: fmt.Sprintf("Không tìm thấy nhân viên %d", id)}
}
