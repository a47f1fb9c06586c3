package usecase

import (
	"context"

	"github.com/xavierca1/salary-slips/internal/entity"
)

type GetEmployeeUseCase struct {
	Employees entity.EmployeeRepository
}

func NewGetEmployeeUseCase(employees entity.EmployeeRepository) *GetEmployeeUseCase {
	return &GetEmployeeUseCase{Employees: employees}
}

func (uc *GetEmployeeUseCase) Execute(ctx context.Context, id int) (*EmployeeView, error) {
	rec, err := findRecord(uc.Employees, id)
	if err != nil {
		return nil, err
	}
	view := newEmployeeView(rec)
	return &view, nil
}

// Columns reports what the current dataset offers for searching.
func (uc *GetEmployeeUseCase) Columns(ctx context.Context) *ColumnsOutput {
	ds, ok := uc.Employees.Current()
	if !ok {
		return &ColumnsOutput{
			ColumnsInfo:   []string{},
			ColumnsSalary: []string{},
			Employees:     []EmployeeSummary{},
		}
	}
	loaded := ds.LoadedAt
	return &ColumnsOutput{
		HasData:       true,
		FileName:      ds.FileName,
		ColumnsInfo:   ds.InfoColumns,
		ColumnsSalary: ds.SalaryColumns,
		Employees:     summaries(ds),
		LoadedAt:      &loaded,
	}
}

func findRecord(repo entity.EmployeeRepository, id int) (entity.EmployeeRecord, error) {
	ds, ok := repo.Current()
	if !ok {
		return entity.EmployeeRecord{}, errNoData
	}
	rec, ok := ds.Find(id)
	if !ok {
		return entity.EmployeeRecord{}, employeeNotFound(id)
	}
	return rec, nil
}
