package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/xavierca1/salary-slips/internal/usecase"
)

type EmployeeHandler struct {
	SearchUC *usecase.SearchEmployeesUseCase
	GetUC    *usecase.GetEmployeeUseCase
	Logger   *zap.Logger
}

func NewEmployeeHandler(search *usecase.SearchEmployeesUseCase, get *usecase.GetEmployeeUseCase, logger *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{SearchUC: search, GetUC: get, Logger: orNop(logger)}
}

// HandleSearch (POST /search)
func (h *EmployeeHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var input usecase.SearchEmployeesInput
	if err := decodeJSON(r, &input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON không hợp lệ")
		return
	}

	out, err := h.SearchUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, h.Logger, err)
		return
	}
	writeSuccess(w, http.StatusOK, out)
}

// HandleGet (GET /get_employee/{id})
func (h *EmployeeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeUseCaseError(w, h.Logger, err)
		return
	}

	view, err := h.GetUC.Execute(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, h.Logger, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"result": view})
}

// HandleColumns (GET /get_columns)
func (h *EmployeeHandler) HandleColumns(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, h.GetUC.Columns(r.Context()))
}
