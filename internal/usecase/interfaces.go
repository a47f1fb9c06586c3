package usecase

import (
	"context"

	"github.com/xavierca1/salary-slips/internal/entity"
)

type WorkbookImporter interface {
	Import(fileName string, data []byte) (*entity.Dataset, error)
}

type SlipRenderer interface {
	Render(rec entity.EmployeeRecord, format entity.Format, period entity.Period) (entity.Document, error)
}

// SlipMailer delivers one slip with the SMTP settings current at call time.
type SlipMailer interface {
	SendSlip(ctx context.Context, cfg entity.SmtpConfig, email entity.SlipEmail) error
}
