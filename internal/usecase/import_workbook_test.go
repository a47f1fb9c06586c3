package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/salary-slips/internal/entity"
	"github.com/xavierca1/salary-slips/internal/infra/memory"
	"github.com/xavierca1/salary-slips/internal/infra/spreadsheet"
	"github.com/xavierca1/salary-slips/internal/testutil"
	"github.com/xavierca1/salary-slips/internal/usecase"
)

func TestImportWorkbookPopulatesStore(t *testing.T) {
	employees := memory.NewEmployeeRepository()
	statuses := memory.NewEmailStatusRepository()
	uc := usecase.NewImportWorkbookUseCase(spreadsheet.NewImporter(), employees, statuses, nil)

	out, err := uc.Execute(context.Background(), usecase.ImportWorkbookInput{
		FileName: "luong.xlsx",
		Data:     testutil.PayrollWorkbook(t, testutil.DefaultEmployees()),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, out.TotalEmployees)
	assert.Equal(t, []usecase.EmployeeSummary{{Index: 0, Name: "Nguyễn Văn An"}, {Index: 1, Name: "Trần Thị Bình"}}, out.Employees)

	ds, ok := employees.Current()
	require.True(t, ok)
	assert.Equal(t, 2, ds.Len())
}

func TestImportWorkbookFailureKeepsPreviousDataset(t *testing.T) {
	previous := dataset(record(0, "An", "an@congty.vn", true))
	employees := memory.NewEmployeeRepository()
	employees.Replace(previous)
	statuses := memory.NewEmailStatusRepository()
	statuses.Put(entity.NewSentStatus(previous.Records[0], "an@congty.vn", fixedNow))

	importer := new(MockImporter)
	importer.On("Import", "bad.xlsx", mock.Anything).Return(nil, &spreadsheet.ParseError{
		Code:    spreadsheet.CodeMissingSheet,
		Message: "Không tìm thấy sheet lương",
	})

	uc := usecase.NewImportWorkbookUseCase(importer, employees, statuses, nil)
	_, err := uc.Execute(context.Background(), usecase.ImportWorkbookInput{FileName: "bad.xlsx", Data: []byte("x")})

	var ie *usecase.ImportError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, spreadsheet.CodeMissingSheet, ie.Code)

	got, _ := employees.Current()
	assert.Same(t, previous, got)
	assert.Len(t, statuses.Snapshot(), 1)
	importer.AssertExpectations(t)
}

func TestImportWorkbookUnexpectedErrorIsImportError(t *testing.T) {
	importer := new(MockImporter)
	importer.On("Import", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	uc := usecase.NewImportWorkbookUseCase(importer, memory.NewEmployeeRepository(), memory.NewEmailStatusRepository(), nil)
	_, err := uc.Execute(context.Background(), usecase.ImportWorkbookInput{FileName: "x.xlsx"})

	var ie *usecase.ImportError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, spreadsheet.CodeUnreadableFile, ie.Code)
}

func TestImportWorkbookClearsStaleEmailStatus(t *testing.T) {
	an := record(0, "An", "an@congty.vn", true)
	binh := record(1, "Bình", "binh@congty.vn", true)
	cuong := record(2, "Cường", "cuong@congty.vn", true)

	statuses := memory.NewEmailStatusRepository()
	statuses.Put(entity.NewSentStatus(an, an.Name, fixedNow))
	statuses.Put(entity.NewSentStatus(binh, binh.Name, fixedNow))
	statuses.Put(entity.NewSentStatus(cuong, cuong.Name, fixedNow))

	// An keeps index 0, index 1 now belongs to Dung, Cường is gone.
	next := dataset(record(0, "An", "an@congty.vn", true), record(1, "Dung", "dung@congty.vn", true))
	importer := new(MockImporter)
	importer.On("Import", "moi.xlsx", mock.Anything).Return(next, nil)

	uc := usecase.NewImportWorkbookUseCase(importer, memory.NewEmployeeRepository(), statuses, nil)
	out, err := uc.Execute(context.Background(), usecase.ImportWorkbookInput{FileName: "moi.xlsx"})
	require.NoError(t, err)

	assert.Equal(t, 2, out.StatusCleared)
	snap := statuses.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "An", snap[0].Name)
}

func TestImportWorkbookRespectsCanceledContext(t *testing.T) {
	importer := new(MockImporter)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := usecase.NewImportWorkbookUseCase(importer, memory.NewEmployeeRepository(), memory.NewEmailStatusRepository(), nil)
	_, err := uc.Execute(ctx, usecase.ImportWorkbookInput{FileName: "x.xlsx"})

	assert.ErrorIs(t, err, context.Canceled)
	importer.AssertNotCalled(t, "Import", mock.Anything, mock.Anything)
}
