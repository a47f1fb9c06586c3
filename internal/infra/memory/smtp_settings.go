package memory

import (
	"sync"

	"github.com/xavierca1/salary-slips/internal/entity"
)

type SmtpSettings struct {
	mu  sync.RWMutex
	cfg entity.SmtpConfig
}

// NewSmtpSettings starts from the environment defaults.
func NewSmtpSettings(initial entity.SmtpConfig) *SmtpSettings {
	return &SmtpSettings{cfg: initial}
}

func (s *SmtpSettings) Get() entity.SmtpConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

func (s *SmtpSettings) Set(cfg entity.SmtpConfig) {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
}
