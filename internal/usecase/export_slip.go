package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/salary-slips/internal/entity"
	"github.com/xavierca1/salary-slips/internal/infra/render"
)

type ExportSlipUseCase struct {
	Employees entity.EmployeeRepository
	Renderer  SlipRenderer
	Logger    *zap.Logger
	Now       func() time.Time
}

func NewExportSlipUseCase(employees entity.EmployeeRepository, renderer SlipRenderer, logger *zap.Logger) *ExportSlipUseCase {
	return &ExportSlipUseCase{
		Employees: employees,
		Renderer:  renderer,
		Logger:    orNop(logger),
		Now:       time.Now,
	}
}

func (uc *ExportSlipUseCase) Execute(ctx context.Context, input ExportSlipInput) (entity.Document, error) {
	period, err := resolvePeriod(input.Month, input.Year, uc.Now())
	if err != nil {
		return entity.Document{}, err
	}
	rec, err := findRecord(uc.Employees, input.EmployeeID)
	if err != nil {
		return entity.Document{}, err
	}
	if err := ctx.Err(); err != nil {
		return entity.Document{}, err
	}

	doc, err := renderSlip(uc.Renderer, rec, input.Format, period)
	if err != nil {
		uc.Logger.Warn("slip render failed",
			zap.Int("employee_id", rec.ID),
			zap.String("format", string(input.Format)),
			zap.Error(err),
		)
		return entity.Document{}, err
	}

	uc.Logger.Debug("slip rendered",
		zap.Int("employee_id", rec.ID),
		zap.String("format", string(input.Format)),
		zap.Int("bytes", len(doc.Content)),
	)
	return doc, nil
}

func resolvePeriod(month, year int, now time.Time) (entity.Period, error) {
	p, err := entity.NewPeriod(month, year, now)
	if err != nil {
		return entity.Period{}, &DomainError{Code: CodeInvalidPeriod, Message: "Tháng hoặc năm không hợp lệ"}
	}
	return p, nil
}

// renderSlip turns renderer failures into RenderError with a stable code.
func renderSlip(r SlipRenderer, rec entity.EmployeeRecord, format entity.Format, period entity.Period) (entity.Document, error) {
	doc, err := r.Render(rec, format, period)
	if err == nil {
		return doc, nil
	}

	var mf *render.MissingFieldError
	switch {
	case errors.As(err, &mf) && mf.Field == render.FieldSalaryRow:
		return entity.Document{}, &RenderError{EmployeeID: rec.ID, Code: CodeMissingSalary, Message: "Không tìm thấy dữ liệu lương của nhân viên " + rec.Name, Err: err}
	case errors.As(err, &mf):
		return entity.Document{}, &RenderError{EmployeeID: rec.ID, Code: CodeMissingField, Message: "Thiếu thông tin " + mf.Field, Err: err}
	case errors.Is(err, entity.ErrUnknownFormat):
		return entity.Document{}, &DomainError{Code: CodeInvalidFormat, Message: "Định dạng không được hỗ trợ"}
	default:
		return entity.Document{}, &RenderError{EmployeeID: rec.ID, Code: CodeRenderFailed, Message: "Không tạo được phiếu lương", Err: err}
	}
}
