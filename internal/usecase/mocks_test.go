package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/salary-slips/internal/entity"
	"github.com/xavierca1/salary-slips/internal/infra/memory"
)

type MockImporter struct {
	mock.Mock
}

func (m *MockImporter) Import(fileName string, data []byte) (*entity.Dataset, error) {
	args := m.Called(fileName, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Dataset), args.Error(1)
}

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(rec entity.EmployeeRecord, format entity.Format, period entity.Period) (entity.Document, error) {
	args := m.Called(rec, format, period)
	return args.Get(0).(entity.Document), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendSlip(ctx context.Context, cfg entity.SmtpConfig, email entity.SlipEmail) error {
	args := m.Called(ctx, cfg, email)
	return args.Error(0)
}

var fixedNow = time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)

func record(id int, name, email string, hasSalary bool) entity.EmployeeRecord {
	info := entity.Fields{{Name: "Họ tên", Value: entity.StringValue(name)}}
	if email != "" {
		info = append(info, entity.Field{Name: "Email", Value: entity.StringValue(email)})
	}
	var salary entity.Fields
	if hasSalary {
		salary = entity.Fields{{Name: "Lương cơ bản", Value: entity.NumberValue(5000000)}}
	}
	return entity.NewEmployeeRecord(id, name, info, salary, hasSalary)
}

func dataset(records ...entity.EmployeeRecord) *entity.Dataset {
	return &entity.Dataset{
		FileName:      "luong.xlsx",
		InfoColumns:   []string{"Họ tên", "Email"},
		SalaryColumns: []string{"Lương cơ bản"},
		Records:       records,
		LoadedAt:      fixedNow,
	}
}

func loadedRepo(records ...entity.EmployeeRecord) *memory.EmployeeRepository {
	repo := memory.NewEmployeeRepository()
	repo.Replace(dataset(records...))
	return repo
}

func doc(name string) entity.Document {
	return entity.Document{FileName: name, ContentType: "application/pdf", Content: []byte("%PDF-" + name)}
}

var smtpReady = entity.SmtpConfig{Server: "smtp.congty.vn", Port: 587, SenderEmail: "hr@congty.vn", SenderPassword: "secret"}
