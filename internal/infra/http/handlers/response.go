package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/xavierca1/salary-slips/internal/entity"
	"github.com/xavierca1/salary-slips/internal/usecase"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

// writeSuccess flattens payload into {"success": true, ...}.
func writeSuccess(w http.ResponseWriter, status int, payload any) {
	body := map[string]json.RawMessage{}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, "ENCODE_FAILED", "Lỗi hệ thống")
			return
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			body = map[string]json.RawMessage{"result": raw}
		}
	}
	body["success"] = json.RawMessage("true")
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDocument sends a rendered file as a download.
func writeDocument(w http.ResponseWriter, doc entity.Document) {
	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.FileName}))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Content)
}

// writeUseCaseError maps the use case error taxonomy onto HTTP statuses.
func writeUseCaseError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var (
		ie *usecase.ImportError
		le *usecase.LookupError
		re *usecase.RenderError
		te *usecase.TransportError
		de *usecase.DomainError
	)
	switch {
	case errors.As(err, &ie):
		writeErrorResponse(w, http.StatusBadRequest, ie.Code, ie.Message)
	case errors.As(err, &le):
		writeErrorResponse(w, http.StatusNotFound, le.Code, le.Message)
	case errors.As(err, &re):
		writeErrorResponse(w, http.StatusUnprocessableEntity, re.Code, re.Message)
	case errors.As(err, &te):
		logger.Warn("smtp transport failed", zap.Error(err))
		writeErrorResponse(w, http.StatusBadGateway, te.Code, te.Message)
	case errors.As(err, &de):
		writeErrorResponse(w, http.StatusBadRequest, de.Code, de.Message)
	default:
		logger.Error("unexpected error", zap.Error(err))
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Lỗi hệ thống, vui lòng thử lại")
	}
}

// decodeJSON accepts an empty body as the zero value.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func parseFormat(raw string) (entity.Format, error) {
	f, err := entity.ParseFormat(raw)
	if err != nil {
		return "", &usecase.DomainError{Code: usecase.CodeInvalidFormat, Message: "Định dạng không được hỗ trợ: " + raw}
	}
	return f, nil
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, &usecase.DomainError{Code: usecase.CodeInvalidRequest, Message: "Mã nhân viên không hợp lệ"}
	}
	return id, nil
}

// optionalInt parses a query value; empty means zero.
func optionalInt(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &usecase.DomainError{Code: usecase.CodeInvalidPeriod, Message: name + " không hợp lệ"}
	}
	return n, nil
}

func orNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
