package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/xavierca1/salary-slips/internal/infra/http/middleware"
	"github.com/xavierca1/salary-slips/internal/usecase"
)

type EmailHandler struct {
	SendUC     *usecase.SendSlipEmailUseCase
	SettingsUC *usecase.EmailSettingsUseCase
	Logger     *zap.Logger
}

func NewEmailHandler(send *usecase.SendSlipEmailUseCase, settings *usecase.EmailSettingsUseCase, logger *zap.Logger) *EmailHandler {
	return &EmailHandler{SendUC: send, SettingsUC: settings, Logger: orNop(logger)}
}

type sendEmailRequest struct {
	Format string `json:"format"`
	To     string `json:"to"`
	Month  int    `json:"month"`
	Year   int    `json:"year"`
}

// HandleSend (POST /send_email/{id})
func (h *EmailHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeUseCaseError(w, h.Logger, err)
		return
	}
	var req sendEmailRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON không hợp lệ")
		return
	}
	format, err := parseFormat(req.Format)
	if err != nil {
		writeUseCaseError(w, h.Logger, err)
		return
	}

	out, err := h.SendUC.Execute(r.Context(), usecase.SendSlipEmailInput{
		EmployeeID: id,
		Format:     format,
		To:         req.To,
		Month:      req.Month,
		Year:       req.Year,
	})
	if err != nil {
		middleware.RecordSlipEmail("failed")
		writeUseCaseError(w, h.Logger, err)
		return
	}
	middleware.RecordSlipEmail("sent")

	writeSuccess(w, http.StatusOK, struct {
		Message string `json:"message"`
		*usecase.SendSlipEmailOutput
	}{"Đã gửi phiếu lương tới " + out.Recipient, out})
}

type bulkEmailRequest struct {
	IDs    []int  `json:"ids"`
	Format string `json:"format"`
	Month  int    `json:"month"`
	Year   int    `json:"year"`
}

// HandleSendBulk (POST /send_email_bulk) always reports per-employee results.
func (h *EmailHandler) HandleSendBulk(w http.ResponseWriter, r *http.Request) {
	var req bulkEmailRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON không hợp lệ")
		return
	}
	format, err := parseFormat(req.Format)
	if err != nil {
		writeUseCaseError(w, h.Logger, err)
		return
	}

	out, err := h.SendUC.ExecuteBulk(r.Context(), usecase.SendBulkEmailInput{
		IDs:    req.IDs,
		Format: format,
		Month:  req.Month,
		Year:   req.Year,
	})
	if err != nil {
		writeUseCaseError(w, h.Logger, err)
		return
	}
	for _, res := range out.Results {
		if res.Sent {
			middleware.RecordSlipEmail("sent")
		} else {
			middleware.RecordSlipEmail("failed")
		}
	}
	writeSuccess(w, http.StatusOK, out)
}

// HandleStatus (GET /email_status)
func (h *EmailHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, h.SettingsUC.Status(r.Context()))
}

// HandleConfigure (POST /configure_email)
func (h *EmailHandler) HandleConfigure(w http.ResponseWriter, r *http.Request) {
	var input usecase.ConfigureEmailInput
	if err := decodeJSON(r, &input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON không hợp lệ")
		return
	}

	out, err := h.SettingsUC.Configure(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, h.Logger, err)
		return
	}
	writeSuccess(w, http.StatusOK, struct {
		Message string `json:"message"`
		*usecase.EmailConfigOutput
	}{"Đã lưu cấu hình email", out})
}

// HandleConfig (GET /email_config) never includes the password.
func (h *EmailHandler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, h.SettingsUC.Current(r.Context()))
}
