// Package project persists a cutting session (cut list, settings, and
// optionally the last result) as JSON. The engine itself never touches
// these files; persistence is purely an application concern.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"glasscut/internal/model"
)

// Project ties one cutting session together for save/load.
type Project struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Items    []model.CutItem   `json:"items"`
	Settings model.Settings    `json:"settings"`
	Result   *model.PackResult `json:"result,omitempty"`
}

// New returns an empty project with default settings and a fresh ID.
func New(name string) Project {
	if name == "" {
		name = "Untitled"
	}
	return Project{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Items:    []model.CutItem{},
		Settings: model.DefaultSettings(),
	}
}

// Save writes the project to path as indented JSON, creating missing
// parent directories.
func Save(path string, p Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a project from path. A missing file returns a fresh default
// project named after the file, with no error.
func Load(path string) (Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			base := filepath.Base(path)
			name := base[:len(base)-len(filepath.Ext(base))]
			return New(name), nil
		}
		return Project{}, err
	}

	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return Project{}, fmt.Errorf("parse project file: %w", err)
	}
	if p.Items == nil {
		p.Items = []model.CutItem{}
	}
	if p.ID == "" {
		p.ID = uuid.New().String()[:8]
	}
	return p, nil
}
