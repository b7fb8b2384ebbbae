package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"tableflip.dev/pumpdesk/pkg/workitem"
)

func TestClientTasksQueryAndNormalize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orgs/org-1/tasks" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("employeeId"); got != "e7" {
			t.Errorf("expected employeeId e7, got %q", got)
		}
		if got := r.URL.Query().Get("status"); got != "pending" {
			t.Errorf("expected status pending, got %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sekret" {
			t.Errorf("expected bearer token, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"t1","title":"Sweep","dueDate":"2024-06-12"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sekret")
	tasks, err := c.Tasks(context.Background(), TaskQuery{OrgID: "org-1", EmployeeID: "e7", Status: workitem.TaskPending})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != "t1" {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
	// Normalize-on-read runs at the client boundary.
	if tasks[0].Status != workitem.TaskPending {
		t.Fatalf("expected normalized status, got %q", tasks[0].Status)
	}
}

func TestClientDutiesLegacyShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"d1","dutyDate":"2024-06-12","productIds":["p1"],"gunIds":["g1"],"shiftStart":"22:00","shiftEnd":"06:00"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	duties, err := c.DailyDuties(context.Background(), DutyQuery{OrgID: "org-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(duties) != 1 {
		t.Fatalf("unexpected duties: %+v", duties)
	}
	d := duties[0]
	if d.Status != workitem.DutyScheduled {
		t.Fatalf("missing status should normalize to SCHEDULED, got %q", d.Status)
	}
	if d.TotalHours != "8.0" {
		t.Fatalf("expected derived hours 8.0, got %q", d.TotalHours)
	}
	if len(d.Assignments) != 1 || d.Assignments[0] != (workitem.PumpAssignment{ProductID: "p1", GunID: "g1"}) {
		t.Fatalf("unexpected assignments: %+v", d.Assignments)
	}
}

func TestClientUpdateStatus(t *testing.T) {
	var gotMethod, gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if err := c.UpdateDailyDutyStatus(context.Background(), "org-1", "d1", workitem.DutyActive); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodPatch {
		t.Fatalf("expected PATCH, got %s", gotMethod)
	}
	if gotPath != "/orgs/org-1/daily-duties/d1/status" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if gotBody != `{"status":"ACTIVE"}` {
		t.Fatalf("unexpected body %s", gotBody)
	}
}

func TestClientSurfacesTransportErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if _, err := c.Tasks(context.Background(), TaskQuery{OrgID: "org-1"}); err == nil {
		t.Fatalf("expected an error for a 500 response")
	}
	if err := c.UpdateTaskStatus(context.Background(), "org-1", "t1", workitem.TaskCompleted); err == nil {
		t.Fatalf("expected an error for a 500 response")
	}
}

func TestMemoryService(t *testing.T) {
	m := NewMemory()
	added := m.AddTask(workitem.Task{Title: "Sweep", AssignedTo: "e7", DueDate: workitem.ParseDate("2024-06-12")})
	if added.ID == "" {
		t.Fatalf("memory service should mint an id")
	}

	tasks, err := m.Tasks(context.Background(), TaskQuery{OrgID: "org-1", EmployeeID: "e7"})
	if err != nil || len(tasks) != 1 {
		t.Fatalf("unexpected tasks: %v %v", tasks, err)
	}

	if err := m.UpdateTaskStatus(context.Background(), "org-1", added.ID, workitem.TaskInProgress); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tasks, _ = m.Tasks(context.Background(), TaskQuery{OrgID: "org-1"})
	if tasks[0].Status != workitem.TaskInProgress {
		t.Fatalf("expected in-progress, got %s", tasks[0].Status)
	}

	if err := m.UpdateTaskStatus(context.Background(), "org-1", "missing", workitem.TaskCompleted); err == nil {
		t.Fatalf("expected error for unknown task")
	}
}
