package usecase

import (
	"context"
	"strings"

	"github.com/xavierca1/salary-slips/internal/entity"
)

type SearchEmployeesUseCase struct {
	Employees entity.EmployeeRepository
}

func NewSearchEmployeesUseCase(employees entity.EmployeeRepository) *SearchEmployeesUseCase {
	return &SearchEmployeesUseCase{Employees: employees}
}

// Execute does a case-insensitive substring match. A blank term returns
// every record in sheet order.
func (uc *SearchEmployeesUseCase) Execute(ctx context.Context, input SearchEmployeesInput) (*SearchEmployeesOutput, error) {
	ds, ok := uc.Employees.Current()
	if !ok {
		return nil, errNoData
	}

	term := strings.ToLower(strings.TrimSpace(input.Term))
	fields := searchFields(input)

	out := &SearchEmployeesOutput{Results: []EmployeeView{}}
	for _, rec := range ds.Records {
		if term != "" && !matches(rec, term, fields) {
			continue
		}
		out.Results = append(out.Results, newEmployeeView(rec))
	}
	out.Count = len(out.Results)

	if out.Count == 0 && term != "" {
		return nil, &LookupError{Code: CodeNoResults, Message: "Không tìm thấy kết quả"}
	}
	return out, nil
}

func searchFields(input SearchEmployeesInput) map[string]bool {
	names := input.Fields
	if input.Field != "" {
		names = append(append([]string{}, names...), input.Field)
	}
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// matches checks the chosen fields, or every field when none were chosen.
func matches(rec entity.EmployeeRecord, term string, fields map[string]bool) bool {
	for _, f := range rec.Fields() {
		if fields != nil && !fields[f.Name] {
			continue
		}
		if strings.Contains(strings.ToLower(f.Value.Raw), term) {
			return true
		}
	}
	return false
}
