package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/xavierca1/salary-slips/internal/entity"
	"github.com/xavierca1/salary-slips/internal/infra/spreadsheet"
)

type ImportWorkbookUseCase struct {
	Importer  WorkbookImporter
	Employees entity.EmployeeRepository
	Statuses  entity.EmailStatusRepository
	Logger    *zap.Logger
}

func NewImportWorkbookUseCase(
	importer WorkbookImporter,
	employees entity.EmployeeRepository,
	statuses entity.EmailStatusRepository,
	logger *zap.Logger,
) *ImportWorkbookUseCase {
	return &ImportWorkbookUseCase{
		Importer:  importer,
		Employees: employees,
		Statuses:  statuses,
		Logger:    orNop(logger),
	}
}

// Execute parses the workbook off-lock and swaps it in only on success,
// then drops email statuses that no longer belong to the same person.
func (uc *ImportWorkbookUseCase) Execute(ctx context.Context, input ImportWorkbookInput) (*ImportWorkbookOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ds, err := uc.Importer.Import(input.FileName, input.Data)
	if err != nil {
		var pe *spreadsheet.ParseError
		if errors.As(err, &pe) {
			return nil, &ImportError{Code: pe.Code, Message: pe.Message, Err: pe.Err}
		}
		return nil, &ImportError{Code: spreadsheet.CodeUnreadableFile, Message: fmt.Sprintf("Lỗi xử lý file: %v", err), Err: err}
	}

	uc.Employees.Replace(ds)

	cleared := uc.Statuses.Retain(func(s entity.EmailStatus) bool {
		rec, ok := ds.Find(s.EmployeeID)
		return ok && rec.Key == s.Key
	})

	uc.Logger.Info("workbook imported",
		zap.String("file", input.FileName),
		zap.Int("employees", ds.Len()),
		zap.Int("email_status_cleared", cleared),
	)

	return &ImportWorkbookOutput{
		FileName:       ds.FileName,
		ColumnsInfo:    ds.InfoColumns,
		ColumnsSalary:  ds.SalaryColumns,
		Employees:      summaries(ds),
		TotalEmployees: ds.Len(),
		StatusCleared:  cleared,
	}, nil
}

func orNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
