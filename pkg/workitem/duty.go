package workitem

import (
	"encoding/json"
	"strings"
	"time"

	"tableflip.dev/pumpdesk/pkg/calendar"
)

// DutyStatus is the lifecycle label of a daily pump duty.
type DutyStatus string

const (
	DutyScheduled DutyStatus = "SCHEDULED"
	DutyActive    DutyStatus = "ACTIVE"
	DutyCompleted DutyStatus = "COMPLETED"
	DutyCancelled DutyStatus = "CANCELLED"
)

// PumpAssignment pairs a product with the gun dispensing it for one duty.
type PumpAssignment struct {
	ProductID string `json:"productId"`
	GunID     string `json:"gunId"`
}

// DailyDuty is one employee's pump-duty assignment for a calendar day.
type DailyDuty struct {
	ID          string           `json:"id"`
	EmployeeID  string           `json:"employeeId"`
	DutyDate    Date             `json:"dutyDate"`
	Assignments []PumpAssignment `json:"assignments,omitempty"`
	ShiftStart  string           `json:"shiftStart,omitempty"`
	ShiftEnd    string           `json:"shiftEnd,omitempty"`
	TotalHours  string           `json:"totalHours,omitempty"`
	Status      DutyStatus       `json:"status,omitempty"`
}

// dutyWire also carries the legacy parallel-array shape some backend
// revisions still emit: gunIds[i] is the gun used for productIds[i].
type dutyWire struct {
	ID          string           `json:"id"`
	EmployeeID  string           `json:"employeeId"`
	DutyDate    Date             `json:"dutyDate"`
	Assignments []PumpAssignment `json:"assignments"`
	ProductIDs  []string         `json:"productIds"`
	GunIDs      []string         `json:"gunIds"`
	ShiftStart  string           `json:"shiftStart"`
	ShiftEnd    string           `json:"shiftEnd"`
	TotalHours  string           `json:"totalHours"`
	Status      DutyStatus       `json:"status"`
}

func (d *DailyDuty) UnmarshalJSON(b []byte) error {
	var w dutyWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	assignments := w.Assignments
	if len(assignments) == 0 && len(w.ProductIDs) > 0 {
		assignments = zipAssignments(w.ProductIDs, w.GunIDs)
	}
	*d = DailyDuty{
		ID:          w.ID,
		EmployeeID:  w.EmployeeID,
		DutyDate:    w.DutyDate,
		Assignments: assignments,
		ShiftStart:  w.ShiftStart,
		ShiftEnd:    w.ShiftEnd,
		TotalHours:  w.TotalHours,
		Status:      w.Status,
	}
	return nil
}

// zipAssignments folds the positional pairing into explicit pairs. A gun
// list shorter than the product list leaves the tail unpaired rather than
// dropping products.
func zipAssignments(productIDs, gunIDs []string) []PumpAssignment {
	assignments := make([]PumpAssignment, 0, len(productIDs))
	for i, productID := range productIDs {
		a := PumpAssignment{ProductID: productID}
		if i < len(gunIDs) {
			a.GunID = gunIDs[i]
		}
		assignments = append(assignments, a)
	}
	return assignments
}

// Normalize applies the ingestion defaults: a missing status means the duty
// is still scheduled, and missing total hours are derived from the shift.
func (d *DailyDuty) Normalize() {
	if d.Status == "" {
		d.Status = DutyScheduled
	}
	if d.TotalHours == "" {
		d.TotalHours = calendar.ShiftDuration(d.ShiftStart, d.ShiftEnd)
	}
}

// StatusLabel implements filter.Item.
func (d *DailyDuty) StatusLabel() string {
	if d.Status == "" {
		return string(DutyScheduled)
	}
	return string(d.Status)
}

// FilterDay implements filter.Item; duties are filtered on their duty date.
func (d *DailyDuty) FilterDay() (time.Time, error) {
	return d.DutyDate.Day()
}

// SearchText implements filter.Item.
func (d *DailyDuty) SearchText() string {
	parts := []string{
		d.DutyDate.String(),
		d.EmployeeID,
		d.StatusLabel(),
		d.ShiftStart,
		d.ShiftEnd,
	}
	for _, a := range d.Assignments {
		parts = append(parts, a.ProductID, a.GunID)
	}
	return strings.Join(parts, " ")
}

// Product resolves a product id to its display name in list views.
type Product struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Gun resolves a gun id to its display label in list views.
type Gun struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
