// Package api talks to the station backend that owns tasks, duties,
// employees, products and guns. Everything here is plain fetch-and-decode;
// lifecycle and filtering rules live elsewhere.
package api

import (
	"context"

	"tableflip.dev/pumpdesk/pkg/workitem"
)

// TaskQuery narrows a task fetch.
type TaskQuery struct {
	OrgID      string
	EmployeeID string
	Status     workitem.TaskStatus
}

// DutyQuery narrows a daily-duty fetch.
type DutyQuery struct {
	OrgID      string
	EmployeeID string
}

// Service is the backend contract. Implementations own transport, retries
// and timeouts; callers treat every error as a failed write or fetch and
// keep their local state as it was.
type Service interface {
	Tasks(ctx context.Context, q TaskQuery) ([]workitem.Task, error)
	DailyDuties(ctx context.Context, q DutyQuery) ([]workitem.DailyDuty, error)
	UpdateTaskStatus(ctx context.Context, orgID, taskID string, status workitem.TaskStatus) error
	UpdateDailyDutyStatus(ctx context.Context, orgID, dutyID string, status workitem.DutyStatus) error
	Products(ctx context.Context, orgID string) ([]workitem.Product, error)
	Guns(ctx context.Context, orgID string) ([]workitem.Gun, error)
}
