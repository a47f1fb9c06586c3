package memory

import (
	"sync"

	"github.com/xavierca1/salary-slips/internal/entity"
)

// EmployeeRepository holds the single active dataset. Replace swaps the
// whole table; readers keep the snapshot they got from Current.
type EmployeeRepository struct {
	mu      sync.RWMutex
	dataset *entity.Dataset
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{}
}

func (r *EmployeeRepository) Replace(ds *entity.Dataset) {
	r.mu.Lock()
	r.dataset = ds
	r.mu.Unlock()
}

func (r *EmployeeRepository) Current() (*entity.Dataset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dataset, r.dataset != nil
}
