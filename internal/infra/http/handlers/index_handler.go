package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/salary-slips/internal/usecase"
	"github.com/xavierca1/salary-slips/templates"
)

type IndexHandler struct {
	GetUC      *usecase.GetEmployeeUseCase
	SettingsUC *usecase.EmailSettingsUseCase
	Logger     *zap.Logger
	tmpl       *template.Template
}

func NewIndexHandler(get *usecase.GetEmployeeUseCase, settings *usecase.EmailSettingsUseCase, logger *zap.Logger) (*IndexHandler, error) {
	t, err := template.ParseFS(templates.FS, "index.html")
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}
	return &IndexHandler{GetUC: get, SettingsUC: settings, Logger: orNop(logger), tmpl: t}, nil
}

type indexPage struct {
	*usecase.ColumnsOutput
	Email  usecase.EmailConfigOutput
	Status usecase.EmailStatusOutput
}

// Handle (GET /) renders the single-page UI.
func (h *IndexHandler) Handle(w http.ResponseWriter, r *http.Request) {
	page := indexPage{
		ColumnsOutput: h.GetUC.Columns(r.Context()),
		Email:         h.SettingsUC.Current(r.Context()),
		Status:        h.SettingsUC.Status(r.Context()),
	}

	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, page); err != nil {
		h.Logger.Error("render index", zap.Error(err))
		http.Error(w, "Lỗi hiển thị trang", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
