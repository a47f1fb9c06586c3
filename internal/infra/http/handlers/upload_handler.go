package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/salary-slips/internal/infra/http/middleware"
	"github.com/xavierca1/salary-slips/internal/usecase"
)

type UploadHandler struct {
	ImportUC *usecase.ImportWorkbookUseCase
	MaxBytes int64
	Logger   *zap.Logger
}

func NewUploadHandler(uc *usecase.ImportWorkbookUseCase, maxBytes int64, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{ImportUC: uc, MaxBytes: maxBytes, Logger: orNop(logger)}
}

type uploadResponse struct {
	Message string `json:"message"`
	*usecase.ImportWorkbookOutput
}

// Handle (POST /upload) expects a multipart "file" field.
func (h *UploadHandler) Handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeErrorResponse(w, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE",
				fmt.Sprintf("File vượt quá giới hạn %d MB", h.MaxBytes>>20))
			return
		}
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_FILE", "Không tìm thấy file")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_FILE", "Chưa chọn file")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "UNREADABLE_FILE", "Không đọc được file đã upload")
		return
	}

	out, err := h.ImportUC.Execute(r.Context(), usecase.ImportWorkbookInput{FileName: header.Filename, Data: data})
	if err != nil {
		middleware.RecordWorkbookImport("error")
		h.Logger.Warn("workbook rejected", zap.String("file", header.Filename), zap.Error(err))
		writeUseCaseError(w, h.Logger, err)
		return
	}
	middleware.RecordWorkbookImport("success")

	writeSuccess(w, http.StatusOK, uploadResponse{
		Message:              "Đã upload thành công file: " + header.Filename,
		ImportWorkbookOutput: out,
	})
}
