package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/salary-slips/internal/entity"
	"github.com/xavierca1/salary-slips/templates"
)

const slipTemplate = "slip_email.html"

// EmailSender dials the configured SMTP server once per slip.
type EmailSender struct {
	tmpl *template.Template
	send func(d *gomail.Dialer, m *gomail.Message) error
}

func NewEmailSender() (*EmailSender, error) {
	t, err := template.ParseFS(templates.FS, slipTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse email template: %w", err)
	}
	return &EmailSender{
		tmpl: t,
		send: func(d *gomail.Dialer, m *gomail.Message) error { return d.DialAndSend(m) },
	}, nil
}

func Subject(name string, period entity.Period) string {
	return fmt.Sprintf("Phiếu lương tháng %d/%d - %s", period.Month, period.Year, name)
}

func (s *EmailSender) Compose(from string, email entity.SlipEmail) (*gomail.Message, error) {
	data := SlipEmailData{
		Name:     email.Name,
		Month:    email.Period.Month,
		Year:     email.Period.Year,
		FileName: email.Attachment.FileName,
	}

	var body bytes.Buffer
	if err := s.tmpl.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", email.To)
	m.SetHeader("Subject", Subject(email.Name, email.Period))
	m.SetBody("text/html", body.String())

	content := email.Attachment.Content
	m.Attach(email.Attachment.FileName,
		gomail.Rename(email.Attachment.FileName),
		gomail.SetHeader(map[string][]string{"Content-Type": {email.Attachment.ContentType}}),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}),
	)
	return m, nil
}

// SendSlip returns when the SMTP exchange ends or ctx is done, whichever is first.
func (s *EmailSender) SendSlip(ctx context.Context, cfg entity.SmtpConfig, email entity.SlipEmail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m, err := s.Compose(cfg.SenderEmail, email)
	if err != nil {
		return err
	}

	d := gomail.NewDialer(cfg.Server, cfg.Port, cfg.SenderEmail, cfg.SenderPassword)

	done := make(chan error, 1)
	go func() { done <- s.send(d, m) }()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send smtp email: %w", err)
		}
		return nil
	}
}
