package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/salary-slips/internal/entity"
	"github.com/xavierca1/salary-slips/internal/infra/memory"
	"github.com/xavierca1/salary-slips/internal/usecase"
)

func TestConfigureEmail(t *testing.T) {
	settings := memory.NewSmtpSettings(entity.SmtpConfig{})
	uc := usecase.NewEmailSettingsUseCase(settings, memory.NewEmailStatusRepository(), nil)

	out, err := uc.Configure(context.Background(), usecase.ConfigureEmailInput{
		Server:         " smtp.gmail.com ",
		Port:           587,
		SenderEmail:    "hr@congty.vn",
		SenderPassword: "app-password",
	})
	require.NoError(t, err)

	assert.True(t, out.Configured)
	assert.True(t, out.HasPassword)
	assert.Equal(t, "smtp.gmail.com", settings.Get().Server)
	assert.Equal(t, "app-password", settings.Get().SenderPassword)

	current := uc.Current(context.Background())
	assert.Equal(t, *out, current)
}

func TestConfigureEmailValidation(t *testing.T) {
	valid := usecase.ConfigureEmailInput{Server: "smtp.gmail.com", Port: 587, SenderEmail: "hr@congty.vn", SenderPassword: "x"}

	tests := []struct {
		name   string
		mutate func(in *usecase.ConfigureEmailInput)
		field  string
	}{
		{"missing server", func(in *usecase.ConfigureEmailInput) { in.Server = "" }, "smtp_server"},
		{"port out of range", func(in *usecase.ConfigureEmailInput) { in.Port = 70000 }, "smtp_port"},
		{"missing port", func(in *usecase.ConfigureEmailInput) { in.Port = 0 }, "smtp_port"},
		{"missing sender", func(in *usecase.ConfigureEmailInput) { in.SenderEmail = "  " }, "sender_email"},
		{"missing password", func(in *usecase.ConfigureEmailInput) { in.SenderPassword = "" }, "sender_password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := memory.NewSmtpSettings(smtpReady)
			uc := usecase.NewEmailSettingsUseCase(settings, memory.NewEmailStatusRepository(), nil)

			in := valid
			tt.mutate(&in)
			_, err := uc.Configure(context.Background(), in)

			var de *usecase.DomainError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, usecase.CodeInvalidSmtpConfig, de.Code)
			assert.Contains(t, de.Message, tt.field)
			assert.Equal(t, smtpReady, settings.Get())
		})
	}
}

func TestConfigureEmailChecksPresenceOnly(t *testing.T) {
	settings := memory.NewSmtpSettings(entity.SmtpConfig{})
	uc := usecase.NewEmailSettingsUseCase(settings, memory.NewEmailStatusRepository(), nil)

	out, err := uc.Configure(context.Background(), usecase.ConfigureEmailInput{
		Server:         "mail_relay",
		Port:           25,
		SenderEmail:    "hr",
		SenderPassword: "x",
	})
	require.NoError(t, err)
	assert.True(t, out.Configured)
	assert.Equal(t, "mail_relay", settings.Get().Server)
	assert.Equal(t, "hr", settings.Get().SenderEmail)
}

func TestEmailStatusSnapshot(t *testing.T) {
	statuses := memory.NewEmailStatusRepository()
	statuses.Put(entity.NewSentStatus(record(0, "An", "", true), "an@congty.vn", fixedNow))
	statuses.Put(entity.NewUnsentStatus(record(4, "Bình", "", true), "binh@congty.vn", errors.New("timeout")))

	out := usecase.NewEmailSettingsUseCase(memory.NewSmtpSettings(entity.SmtpConfig{}), statuses, nil).Status(context.Background())

	assert.Equal(t, 2, out.Total)
	assert.Equal(t, 1, out.Sent)
	assert.True(t, out.Statuses["0"].Sent)
	assert.Equal(t, "timeout", out.Statuses["4"].LastError)
}
