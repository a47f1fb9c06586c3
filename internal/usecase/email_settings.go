package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/xavierca1/salary-slips/internal/entity"
)

type EmailSettingsUseCase struct {
	Settings entity.SmtpSettingsRepository
	Statuses entity.EmailStatusRepository
	Logger   *zap.Logger
	validate *validator.Validate
}

func NewEmailSettingsUseCase(settings entity.SmtpSettingsRepository, statuses entity.EmailStatusRepository, logger *zap.Logger) *EmailSettingsUseCase {
	return &EmailSettingsUseCase{
		Settings: settings,
		Statuses: statuses,
		Logger:   orNop(logger),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Configure replaces the SMTP settings after validation.
func (uc *EmailSettingsUseCase) Configure(ctx context.Context, input ConfigureEmailInput) (*EmailConfigOutput, error) {
	input.Server = strings.TrimSpace(input.Server)
	input.SenderEmail = strings.TrimSpace(input.SenderEmail)

	if err := uc.validate.Struct(input); err != nil {
		return nil, &DomainError{Code: CodeInvalidSmtpConfig, Message: describeValidation(err)}
	}

	cfg := entity.SmtpConfig{
		Server:         input.Server,
		Port:           input.Port,
		SenderEmail:    input.SenderEmail,
		SenderPassword: input.SenderPassword,
	}
	uc.Settings.Set(cfg)
	uc.Logger.Info("smtp settings updated", zap.String("smtp_server", cfg.Server), zap.Int("smtp_port", cfg.Port))

	out := configOutput(cfg)
	return &out, nil
}

func (uc *EmailSettingsUseCase) Current(ctx context.Context) EmailConfigOutput {
	return configOutput(uc.Settings.Get())
}

// Status returns the tracker keyed by employee index as text.
func (uc *EmailSettingsUseCase) Status(ctx context.Context) EmailStatusOutput {
	snap := uc.Statuses.Snapshot()
	out := EmailStatusOutput{Statuses: make(map[string]entity.EmailStatus, len(snap)), Total: len(snap)}
	for id, s := range snap {
		out.Statuses[strconv.Itoa(id)] = s
		if s.Sent {
			out.Sent++
		}
	}
	return out
}

func configOutput(cfg entity.SmtpConfig) EmailConfigOutput {
	return EmailConfigOutput{
		Server:      cfg.Server,
		Port:        cfg.Port,
		SenderEmail: cfg.SenderEmail,
		HasPassword: cfg.SenderPassword != "",
		Configured:  cfg.Configured(),
	}
}

var fieldLabels = map[string]string{
	"Server":         "smtp_server",
	"Port":           "smtp_port",
	"SenderEmail":    "sender_email",
	"SenderPassword": "sender_password",
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Cấu hình email không hợp lệ"
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := fieldLabels[fe.Field()]
		if name == "" {
			name = fe.Field()
		}
		if fe.Tag() == "required" {
			parts = append(parts, name+" là bắt buộc")
		} else {
			parts = append(parts, name+" không hợp lệ")
		}
	}
	return "Cấu hình email không hợp lệ: " + strings.Join(parts, ", ")
}
