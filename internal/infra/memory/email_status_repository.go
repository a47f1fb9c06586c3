package memory

import (
	"sync"

	"github.com/xavierca1/salary-slips/internal/entity"
)

type EmailStatusRepository struct {
	mu       sync.RWMutex
	statuses map[int]entity.EmailStatus
}

func NewEmailStatusRepository() *EmailStatusRepository {
	return &EmailStatusRepository{statuses: make(map[int]entity.EmailStatus)}
}

func (r *EmailStatusRepository) Get(employeeID int) (entity.EmailStatus, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.statuses[employeeID]
	return s, ok
}

func (r *EmailStatusRepository) Put(status entity.EmailStatus) {
	r.mu.Lock()
	r.statuses[status.EmployeeID] = status
	r.mu.Unlock()
}

func (r *EmailStatusRepository) Snapshot() map[int]entity.EmailStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[int]entity.EmailStatus, len(r.statuses))
	for id, s := range r.statuses {
		out[id] = s
	}
	return out
}

func (r *EmailStatusRepository) Retain(keep func(entity.EmailStatus) bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.statuses {
		if !keep(s) {
			delete(r.statuses, id)
			removed++
		}
	}
	return removed
}
