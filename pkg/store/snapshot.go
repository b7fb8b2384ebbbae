// Package store keeps the last fetched task and duty snapshots on disk so
// list views can render when the backend is unreachable. The cache holds
// whatever the backend last said; it is rebuilt wholesale on the next
// successful fetch and never edited in place.
package store

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/pumpdesk/pkg/workitem"
)

// Snapshots is the persistence contract for cached fetches.
type Snapshots interface {
	SaveTasks(orgID string, tasks []workitem.Task) error
	Tasks(orgID string) ([]workitem.Task, error)
	SaveDuties(orgID string, duties []workitem.DailyDuty) error
	Duties(orgID string) ([]workitem.DailyDuty, error)
}

// Load creates a Snapshots backed by diskv using the provided config.
func Load(cfg Config) (Snapshots, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.CachePath()
	return &snapshots{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}, nil
}

type snapshots struct {
	d *diskv.Diskv
}

const (
	kindTasks  = "tasks"
	kindDuties = "duties"
)

func (s *snapshots) SaveTasks(orgID string, tasks []workitem.Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return err
	}
	return s.d.Write(toKey(orgID, kindTasks), data)
}

func (s *snapshots) Tasks(orgID string) ([]workitem.Task, error) {
	data, err := s.d.Read(toKey(orgID, kindTasks))
	if err != nil {
		return nil, fmt.Errorf("no cached tasks for %s: %w", orgID, err)
	}
	var tasks []workitem.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, err
	}
	for i := range tasks {
		tasks[i].Normalize()
	}
	return tasks, nil
}

func (s *snapshots) SaveDuties(orgID string, duties []workitem.DailyDuty) error {
	data, err := json.Marshal(duties)
	if err != nil {
		return err
	}
	return s.d.Write(toKey(orgID, kindDuties), data)
}

func (s *snapshots) Duties(orgID string) ([]workitem.DailyDuty, error) {
	data, err := s.d.Read(toKey(orgID, kindDuties))
	if err != nil {
		return nil, fmt.Errorf("no cached duties for %s: %w", orgID, err)
	}
	var duties []workitem.DailyDuty
	if err := json.Unmarshal(data, &duties); err != nil {
		return nil, err
	}
	for i := range duties {
		duties[i].Normalize()
	}
	return duties, nil
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `org-kind`; the org id is encoded so arbitrary ids stay safe
// as directory names.
func toKey(orgID, kind string) string {
	org := base64.StdEncoding.EncodeToString([]byte(orgID))
	return fmt.Sprintf("%s-%s", org, kind)
}
