package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xavierca1/salary-slips/internal/entity"
)

type SendSlipEmailUseCase struct {
	Employees entity.EmployeeRepository
	Renderer  SlipRenderer
	Mailer    SlipMailer
	Settings  entity.SmtpSettingsRepository
	Statuses  entity.EmailStatusRepository
	Workers   int
	Logger    *zap.Logger
	Now       func() time.Time
}

func NewSendSlipEmailUseCase(
	employees entity.EmployeeRepository,
	renderer SlipRenderer,
	mailer SlipMailer,
	settings entity.SmtpSettingsRepository,
	statuses entity.EmailStatusRepository,
	workers int,
	logger *zap.Logger,
) *SendSlipEmailUseCase {
	if workers < 1 {
		workers = 1
	}
	return &SendSlipEmailUseCase{
		Employees: employees,
		Renderer:  renderer,
		Mailer:    mailer,
		Settings:  settings,
		Statuses:  statuses,
		Workers:   workers,
		Logger:    orNop(logger),
		Now:       time.Now,
	}
}

var errSmtpNotConfigured = &DomainError{Code: CodeSmtpNotConfigured, Message: "Chưa cấu hình email. Vui lòng cấu hình SMTP trước."}

func (uc *SendSlipEmailUseCase) Execute(ctx context.Context, input SendSlipEmailInput) (*SendSlipEmailOutput, error) {
	cfg := uc.Settings.Get()
	if !cfg.Configured() {
		return nil, errSmtpNotConfigured
	}
	period, err := resolvePeriod(input.Month, input.Year, uc.Now())
	if err != nil {
		return nil, err
	}
	rec, err := findRecord(uc.Employees, input.EmployeeID)
	if err != nil {
		return nil, err
	}
	return uc.send(ctx, cfg, rec, input.Format, period, input.To)
}

// ExecuteBulk sends one slip per id; a failed employee never stops the rest.
func (uc *SendSlipEmailUseCase) ExecuteBulk(ctx context.Context, input SendBulkEmailInput) (*SendBulkEmailOutput, error) {
	cfg := uc.Settings.Get()
	if !cfg.Configured() {
		return nil, errSmtpNotConfigured
	}
	period, err := resolvePeriod(input.Month, input.Year, uc.Now())
	if err != nil {
		return nil, err
	}
	ds, ok := uc.Employees.Current()
	if !ok {
		return nil, errNoData
	}

	ids := selectIDs(ds, input.IDs)
	results := make([]EmailResult, len(ids))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(uc.Workers)
	for i, id := range ids {
		g.Go(func() error {
			results[i] = EmailResult{EmployeeID: id}
			rec, ok := ds.Find(id)
			if !ok {
				results[i].Code, results[i].Message = CodeEmployeeNotFound, employeeNotFound(id).Message
				return nil
			}
			results[i].Name = rec.Name

			sent, err := uc.send(gCtx, cfg, rec, input.Format, period, "")
			if err != nil {
				var de *DomainError
				if errors.As(err, &de) && de.Code == CodeInvalidFormat {
					return err
				}
				if ctx.Err() != nil {
					return ctx.Err()
				}
				results[i].Code, results[i].Message = codeOf(err)
				return nil
			}
			results[i].Sent = true
			results[i].Recipient = sent.Recipient
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &SendBulkEmailOutput{Results: results}
	for _, r := range results {
		if r.Sent {
			out.Sent++
		} else {
			out.Failed++
		}
	}
	uc.Logger.Info("bulk email finished", zap.Int("sent", out.Sent), zap.Int("failed", out.Failed))
	return out, nil
}

func (uc *SendSlipEmailUseCase) send(
	ctx context.Context,
	cfg entity.SmtpConfig,
	rec entity.EmployeeRecord,
	format entity.Format,
	period entity.Period,
	override string,
) (*SendSlipEmailOutput, error) {
	to, ok := recipientOf(rec, override)
	if !ok {
		return nil, &DomainError{Code: CodeMissingRecipient, Message: "Không tìm thấy email của nhân viên " + rec.Name}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := renderSlip(uc.Renderer, rec, format, period)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := uc.Logger.With(zap.Int("employee_id", rec.ID), zap.String("format", string(format)))

	err = uc.Mailer.SendSlip(ctx, cfg, entity.SlipEmail{To: to, Name: rec.Name, Period: period, Attachment: doc})
	if err != nil {
		if _, exists := uc.Statuses.Get(rec.ID); !exists {
			uc.Statuses.Put(entity.NewUnsentStatus(rec, to, err))
		}
		log.Warn("slip email failed", zap.Error(err))
		return nil, &TransportError{Code: CodeSendFailed, Message: "Gửi email thất bại", Err: err}
	}

	at := uc.Now()
	uc.Statuses.Put(entity.NewSentStatus(rec, to, at))
	log.Info("slip email sent")

	return &SendSlipEmailOutput{EmployeeID: rec.ID, Name: rec.Name, Recipient: to, SentAt: at}, nil
}

// recipientOf prefers the override, then the first mail-like column holding
// a parseable address.
func recipientOf(rec entity.EmployeeRecord, override string) (string, bool) {
	if o := strings.TrimSpace(override); o != "" {
		addr, err := mail.ParseAddress(o)
		if err != nil {
			return "", false
		}
		return addr.Address, true
	}
	for _, f := range rec.Fields() {
		name := strings.ToLower(f.Name)
		if !strings.Contains(name, "email") && !strings.Contains(name, "e-mail") && !strings.Contains(name, "mail") {
			continue
		}
		if addr, err := mail.ParseAddress(strings.TrimSpace(f.Value.Raw)); err == nil {
			return addr.Address, true
		}
	}
	return "", false
}

func codeOf(err error) (string, string) {
	var (
		de *DomainError
		le *LookupError
		re *RenderError
		te *TransportError
	)
	switch {
	case errors.As(err, &de):
		return de.Code, de.Message
	case errors.As(err, &le):
		return le.Code, le.Message
	case errors.As(err, &re):
		return re.Code, re.Message
	case errors.As(err, &te):
		return te.Code, te.Message
	default:
		return CodeSendFailed, err.Error()
	}
}
