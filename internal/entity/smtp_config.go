package entity

type SmtpConfig struct {
	Server         string
	Port           int
	SenderEmail    string
	SenderPassword string
}

func (c SmtpConfig) Configured() bool {
	return c.Server != "" && c.Port > 0 && c.SenderEmail != ""
}

type SmtpSettingsRepository interface {
	Get() SmtpConfig
	Set(cfg SmtpConfig)
}
