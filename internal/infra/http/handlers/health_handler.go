package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/xavierca1/salary-slips/internal/entity"
)

type HealthHandler struct {
	Employees entity.EmployeeRepository
	Smtp      entity.SmtpSettingsRepository
	PDFFont   string
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(employees entity.EmployeeRepository, smtp entity.SmtpSettingsRepository, pdfFont string) *HealthHandler {
	return &HealthHandler{
		Employees: employees,
		Smtp:      smtp,
		PDFFont:   pdfFont,
		StartTime: time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if ds, ok := h.Employees.Current(); ok {
		deps["dataset"] = fmt.Sprintf("loaded: %s (%d employees)", ds.FileName, ds.Len())
	} else {
		deps["dataset"] = "empty"
	}

	if h.Smtp.Get().Configured() {
		deps["smtp"] = "configured"
	} else {
		deps["smtp"] = "not configured"
	}

	if h.PDFFont != "" {
		deps["pdf_font"] = "custom: " + h.PDFFont
	} else {
		deps["pdf_font"] = "bundled (DejaVu Sans)"
	}

	uptime := time.Since(h.StartTime).Round(time.Second).String()

	response := HealthResponse{
		Status:       "healthy",
		Version:      "1.0.0",
		Uptime:       uptime,
		Dependencies: deps,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
