package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/xavierca1/salary-slips/internal/entity"
	"github.com/xavierca1/salary-slips/internal/infra/http/middleware"
	"github.com/xavierca1/salary-slips/internal/usecase"
)

type ExportHandler struct {
	ExportUC *usecase.ExportSlipUseCase
	BulkUC   *usecase.BulkExportUseCase
	Logger   *zap.Logger
}

func NewExportHandler(export *usecase.ExportSlipUseCase, bulk *usecase.BulkExportUseCase, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{ExportUC: export, BulkUC: bulk, Logger: orNop(logger)}
}

// HandleExcel (GET /export/excel/{id})
func (h *ExportHandler) HandleExcel(w http.ResponseWriter, r *http.Request) {
	h.exportOne(w, r, entity.FormatExcel)
}

// HandlePDF (GET /export/pdf/{id})
func (h *ExportHandler) HandlePDF(w http.ResponseWriter, r *http.Request) {
	h.exportOne(w, r, entity.FormatPDF)
}

func (h *ExportHandler) exportOne(w http.ResponseWriter, r *http.Request, format entity.Format) {
	input, err := singleExportInput(r, format)
	if err != nil {
		writeUseCaseError(w, h.Logger, err)
		return
	}

	doc, err := h.ExportUC.Execute(r.Context(), input)
	if err != nil {
		var re *usecase.RenderError
		if errors.As(err, &re) {
			middleware.RecordSlipRendered(string(format), "error")
		}
		writeUseCaseError(w, h.Logger, err)
		return
	}
	middleware.RecordSlipRendered(string(format), "success")
	writeDocument(w, doc)
}

func singleExportInput(r *http.Request, format entity.Format) (usecase.ExportSlipInput, error) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		return usecase.ExportSlipInput{}, err
	}
	q := r.URL.Query()
	month, err := optionalInt(q.Get("month"), "Tháng")
	if err != nil {
		return usecase.ExportSlipInput{}, err
	}
	year, err := optionalInt(q.Get("year"), "Năm")
	if err != nil {
		return usecase.ExportSlipInput{}, err
	}
	return usecase.ExportSlipInput{EmployeeID: id, Format: format, Month: month, Year: year}, nil
}

type bulkExportRequest struct {
	IDs    []int  `json:"ids"`
	Format string `json:"format"`
	Month  int    `json:"month"`
	Year   int    `json:"year"`
}

type bulkFailureResponse struct {
	BatchID  string                `json:"batch_id"`
	Failures []usecase.ItemFailure `json:"failures"`
}

// HandleBulk (POST /export/bulk) answers with a zip of every slip that rendered.
func (h *ExportHandler) HandleBulk(w http.ResponseWriter, r *http.Request) {
	var req bulkExportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON không hợp lệ")
		return
	}
	format, err := parseFormat(req.Format)
	if err != nil {
		writeUseCaseError(w, h.Logger, err)
		return
	}

	out, err := h.BulkUC.Execute(r.Context(), usecase.BulkExportInput{
		IDs:    req.IDs,
		Format: format,
		Month:  req.Month,
		Year:   req.Year,
	})
	if out != nil {
		for i := 0; i < out.Succeeded; i++ {
			middleware.RecordSlipRendered(string(format), "success")
		}
		for range out.Failures {
			middleware.RecordSlipRendered(string(format), "error")
		}
	}
	if err != nil {
		var re *usecase.RenderError
		if out != nil && errors.As(err, &re) {
			writeJSON(w, http.StatusUnprocessableEntity, struct {
				errorResponse
				bulkFailureResponse
			}{
				errorResponse{Error: re.Code, Message: re.Message},
				bulkFailureResponse{BatchID: out.BatchID, Failures: out.Failures},
			})
			return
		}
		writeUseCaseError(w, h.Logger, err)
		return
	}

	w.Header().Set("X-Export-Batch", out.BatchID)
	w.Header().Set("X-Export-Succeeded", strconv.Itoa(out.Succeeded))
	w.Header().Set("X-Export-Failed", strconv.Itoa(len(out.Failures)))
	writeDocument(w, out.Archive)
}
