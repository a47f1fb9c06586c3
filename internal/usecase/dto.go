package usecase

import (
	"time"

	"github.com/xavierca1/salary-slips/internal/entity"
)

type EmployeeSummary struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// EmployeeView is a record as the UI shows it: raw cell text keyed by column.
type EmployeeView struct {
	Index  int               `json:"index"`
	Name   string            `json:"name"`
	Info   map[string]string `json:"info"`
	Salary map[string]string `json:"salary,omitempty"`
}

func newEmployeeView(rec entity.EmployeeRecord) EmployeeView {
	v := EmployeeView{Index: rec.ID, Name: rec.Name, Info: rec.Info.Map()}
	if rec.HasSalary {
		v.Salary = rec.Salary.Map()
	}
	return v
}

func summaries(ds *entity.Dataset) []EmployeeSummary {
	out := make([]EmployeeSummary, 0, ds.Len())
	if ds == nil {
		return out
	}
	for _, rec := range ds.Records {
		out = append(out, EmployeeSummary{Index: rec.ID, Name: rec.Name})
	}
	return out
}

type ImportWorkbookInput struct {
	FileName string
	Data     []byte
}

type ImportWorkbookOutput struct {
	FileName       string            `json:"file_name"`
	ColumnsInfo    []string          `json:"columns_info"`
	ColumnsSalary  []string          `json:"columns_luong"`
	Employees      []EmployeeSummary `json:"employees_list"`
	TotalEmployees int               `json:"total_employees"`
	StatusCleared  int               `json:"email_status_cleared"`
}

type SearchEmployeesInput struct {
	Term   string   `json:"search_term"`
	Fields []string `json:"search_fields"`
	Field  string   `json:"field"`
}

type SearchEmployeesOutput struct {
	Results []EmployeeView `json:"results"`
	Count   int            `json:"count"`
}

type ColumnsOutput struct {
	HasData       bool              `json:"has_data"`
	FileName      string            `json:"file_name,omitempty"`
	ColumnsInfo   []string          `json:"columns_info"`
	ColumnsSalary []string          `json:"columns_luong"`
	Employees     []EmployeeSummary `json:"employees_list"`
	LoadedAt      *time.Time        `json:"loaded_at,omitempty"`
}

type ExportSlipInput struct {
	EmployeeID int
	Format     entity.Format
	Month      int
	Year       int
}

type BulkExportInput struct {
	IDs    []int         `json:"ids"`
	Format entity.Format `json:"format"`
	Month  int           `json:"month"`
	Year   int           `json:"year"`
}

type ItemFailure struct {
	EmployeeID int    `json:"id"`
	Name       string `json:"name,omitempty"`
	Code       string `json:"error"`
	Message    string `json:"message"`
}

type BulkExportOutput struct {
	BatchID   string
	Archive   entity.Document
	Succeeded int
	Failures  []ItemFailure
}

type SendSlipEmailInput struct {
	EmployeeID int
	Format     entity.Format
	To         string
	Month      int
	Year       int
}

type SendSlipEmailOutput struct {
	EmployeeID int       `json:"id"`
	Name       string    `json:"name"`
	Recipient  string    `json:"recipient"`
	SentAt     time.Time `json:"sent_at"`
}

type SendBulkEmailInput struct {
	IDs    []int         `json:"ids"`
	Format entity.Format `json:"format"`
	Month  int           `json:"month"`
	Year   int           `json:"year"`
}

type EmailResult struct {
	EmployeeID int    `json:"id"`
	Name       string `json:"name,omitempty"`
	Recipient  string `json:"recipient,omitempty"`
	Sent       bool   `json:"sent"`
	Code       string `json:"error,omitempty"`
	Message    string `json:"message,omitempty"`
}

type SendBulkEmailOutput struct {
	Results []EmailResult `json:"results"`
	Sent    int           `json:"sent"`
	Failed  int           `json:"failed"`
}

type EmailStatusOutput struct {
	Statuses map[string]entity.EmailStatus `json:"email_status"`
	Sent     int                           `json:"sent"`
	Total    int                           `json:"total"`
}

type ConfigureEmailInput struct {
	Server         string `json:"smtp_server" validate:"required"`
	Port           int    `json:"smtp_port" validate:"required,min=1,max=65535"`
	SenderEmail    string `json:"sender_email" validate:"required"`
	SenderPassword string `json:"sender_password" validate:"required"`
}

type EmailConfigOutput struct {
	Server      string `json:"smtp_server"`
	Port        int    `json:"smtp_port"`
	SenderEmail string `json:"sender_email"`
	HasPassword bool   `json:"has_password"`
	Configured  bool   `json:"configured"`
}
