package api

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"tableflip.dev/pumpdesk/pkg/workitem"
)

// Memory is an in-memory Service used by tests and the demo board. It mints
// IDs the way the real backend would, so records round-trip identically.
type Memory struct {
	mu     sync.Mutex
	tasks  []workitem.Task
	duties []workitem.DailyDuty

	ProductList []workitem.Product
	GunList     []workitem.Gun
}

func NewMemory() *Memory {
	return &Memory{}
}

// AddTask stores a task, assigning an ID when the record has none.
func (m *Memory) AddTask(t workitem.Task) workitem.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.Normalize()
	m.tasks = append(m.tasks, t)
	return t
}

// AddDuty stores a duty, assigning an ID when the record has none.
func (m *Memory) AddDuty(d workitem.DailyDuty) workitem.DailyDuty {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	d.Normalize()
	m.duties = append(m.duties, d)
	return d
}

func (m *Memory) Tasks(_ context.Context, q TaskQuery) ([]workitem.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]workitem.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		if q.EmployeeID != "" && t.AssignedTo != q.EmployeeID {
			continue
		}
		if q.Status != "" && t.Status != q.Status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *Memory) DailyDuties(_ context.Context, q DutyQuery) ([]workitem.DailyDuty, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]workitem.DailyDuty, 0, len(m.duties))
	for _, d := range m.duties {
		if q.EmployeeID != "" && d.EmployeeID != q.EmployeeID {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (m *Memory) UpdateTaskStatus(_ context.Context, _, taskID string, status workitem.TaskStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.tasks {
		if m.tasks[i].ID == taskID {
			m.tasks[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("task %s not found", taskID)
}

func (m *Memory) UpdateDailyDutyStatus(_ context.Context, _, dutyID string, status workitem.DutyStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.duties {
		if m.duties[i].ID == dutyID {
			m.duties[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("duty %s not found", dutyID)
}

func (m *Memory) Products(_ context.Context, _ string) ([]workitem.Product, error) {
	return m.ProductList, nil
}

func (m *Memory) Guns(_ context.Context, _ string) ([]workitem.Gun, error) {
	return m.GunList, nil
}
