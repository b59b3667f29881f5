// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"tribunal-workers/internal/common/validation"
)

var errorCodePattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

func LoadRegistry(path string) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg ActivityRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &reg, nil
}

// New returns an empty registry stamped with the current time.
func New(version string) *ActivityRegistry {
	return &ActivityRegistry{
		Version:     version,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		Activities:  []Activity{},
	}
}

// Save writes the registry as indented JSON, creating parent directories.
func (r *ActivityRegistry) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}
	return nil
}

// Find returns the activity registered for taskType.
func (r *ActivityRegistry) Find(taskType string) (*Activity, bool) {
	for i := range r.Activities {
		if r.Activities[i].TaskType == taskType {
			return &r.Activities[i], true
		}
	}
	return nil, false
}

// Upsert replaces the activity with the same ID or appends a new one, and
// bumps LastUpdated.
func (r *ActivityRegistry) Upsert(a Activity) {
	r.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	for i := range r.Activities {
		if r.Activities[i].ID == a.ID {
			r.Activities[i] = a
			return
		}
	}
	r.Activities = append(r.Activities, a)
}

// Validate checks every activity and returns the first problem found.
func (r *ActivityRegistry) Validate() error {
	if len(r.Activities) == 0 {
		return fmt.Errorf("registry contains no activities")
	}

	ids := make(map[string]bool)
	taskTypes := make(map[string]bool)
	for _, a := range r.Activities {
		if a.ID == "" {
			return fmt.Errorf("activity missing required field: ID")
		}
		if ids[a.ID] {
			return fmt.Errorf("duplicate activity ID: %s", a.ID)
		}
		ids[a.ID] = true

		if a.DisplayName == "" {
			return fmt.Errorf("activity %s missing required field: DisplayName", a.ID)
		}
		if a.Category == "" {
			return fmt.Errorf("activity %s missing required field: Category", a.ID)
		}
		if err := validation.ValidateTaskTypeNaming(a.TaskType); err != nil {
			return fmt.Errorf("activity %s: %w", a.ID, err)
		}
		if taskTypes[a.TaskType] {
			return fmt.Errorf("duplicate task type: %s", a.TaskType)
		}
		taskTypes[a.TaskType] = true

		if a.ImplementationStatus != "" && !statuses[a.ImplementationStatus] {
			return fmt.Errorf("activity %s: unknown status %q", a.ID, a.ImplementationStatus)
		}
		if a.Timeout != "" {
			if _, err := time.ParseDuration(a.Timeout); err != nil {
				return fmt.Errorf("activity %s: invalid timeout %q", a.ID, a.Timeout)
			}
		}
		if a.Retries < 0 {
			return fmt.Errorf("activity %s: retries must not be negative", a.ID)
		}
		for _, code := range a.ErrorCodes {
			if !errorCodePattern.MatchString(code) {
				return fmt.Errorf("activity %s: invalid error code %q", a.ID, code)
			}
		}
	}
	return nil
}
