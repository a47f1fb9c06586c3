package memory

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/salary-slips/internal/entity"
)

func TestEmployeeRepositoryReplace(t *testing.T) {
	repo := NewEmployeeRepository()

	_, ok := repo.Current()
	assert.False(t, ok)

	first := &entity.Dataset{FileName: "a.xlsx", Records: []entity.EmployeeRecord{{ID: 0, Name: "An"}}}
	repo.Replace(first)

	got, ok := repo.Current()
	require.True(t, ok)
	assert.Same(t, first, got)

	second := &entity.Dataset{FileName: "b.xlsx"}
	repo.Replace(second)

	got, _ = repo.Current()
	assert.Equal(t, "b.xlsx", got.FileName)
	// snapshot taken earlier is untouched
	assert.Equal(t, "a.xlsx", first.FileName)
	assert.Len(t, first.Records, 1)
}

func TestEmailStatusRepositorySnapshotIsCopy(t *testing.T) {
	repo := NewEmailStatusRepository()
	repo.Put(entity.EmailStatus{EmployeeID: 1, Name: "An", Sent: true, SentAt: time.Now()})

	snap := repo.Snapshot()
	delete(snap, 1)

	_, ok := repo.Get(1)
	assert.True(t, ok)
}

func TestEmailStatusRepositoryRetain(t *testing.T) {
	repo := NewEmailStatusRepository()
	for i := 0; i < 4; i++ {
		repo.Put(entity.EmailStatus{EmployeeID: i, Key: fmt.Sprintf("nv %d", i)})
	}

	removed := repo.Retain(func(s entity.EmailStatus) bool { return s.EmployeeID%2 == 0 })

	assert.Equal(t, 2, removed)
	snap := repo.Snapshot()
	assert.Len(t, snap, 2)
	assert.Contains(t, snap, 0)
	assert.Contains(t, snap, 2)
}

func TestEmailStatusRepositoryConcurrentPut(t *testing.T) {
	repo := NewEmailStatusRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			repo.Put(entity.EmailStatus{EmployeeID: id, Sent: true})
		}(i)
	}
	wg.Wait()

	assert.Len(t, repo.Snapshot(), 50)
}

func TestSmtpSettings(t *testing.T) {
	s := NewSmtpSettings(entity.SmtpConfig{Server: "smtp.env", Port: 587})
	assert.Equal(t, "smtp.env", s.Get().Server)

	s.Set(entity.SmtpConfig{Server: "smtp.gmail.com", Port: 465, SenderEmail: "hr@congty.vn", SenderPassword: "x"})
	assert.Equal(t, 465, s.Get().Port)
	assert.True(t, s.Get().Configured())
}
