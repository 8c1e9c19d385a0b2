// Package project persists a photopack job — the photo orders, the page
// preset or custom page geometry, and the chosen algorithm — to a single
// JSON file. It also tracks a most-recently-used project list and a
// combined backup format pairing a project with the app config that
// produced it.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/photopack/internal/config"
	"github.com/piwi3910/photopack/internal/quantity"
	"github.com/piwi3910/photopack/pkg/pack"
)

const maxRecentProjects = 10

// Project is the durable, user-editable description of a packing job: what
// to pack (Orders), onto what (either a named Preset or a literal
// CustomPage), and how (Algorithm).
type Project struct {
	Name       string           `json:"name"`
	Preset     string           `json:"preset,omitempty"`
	CustomPage *pack.PageConfig `json:"custom_page,omitempty"`
	Algorithm  string           `json:"algorithm"`
	Orders     []quantity.Order `json:"orders"`
}

// New returns a Project with an explicitly-named preset and the maxrects
// algorithm, the same defaults internal/config.DefaultAppConfig favors.
func New(name string) Project {
	return Project{
		Name:      name,
		Preset:    "4x6 borderless",
		Algorithm: "maxrects",
		Orders:    []quantity.Order{},
	}
}

// Save writes p to path as indented JSON, creating parent directories as
// needed. If a file already exists at path, it is first copied aside to a
// timestamped backup (path plus a ".bak-<unix-nano>" suffix) so an
// interrupted or buggy overwrite never loses the previous save, and the
// new content is written through a temp-file-plus-rename so a reader
// never observes a half-written file.
func Save(path string, p Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("project: creating directory %q: %w", dir, err)
	}

	if err := backupExisting(path); err != nil {
		return err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("project: marshaling: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("project: creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("project: writing %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("project: closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("project: replacing %q: %w", path, err)
	}
	return nil
}

// backupExisting copies any file already at path to a ".bak-<unix-nano>"
// sibling before it is overwritten. A missing file is not an error: there
// is nothing to back up for a first save.
func backupExisting(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("project: reading %q for backup: %w", path, err)
	}
	backupPath := fmt.Sprintf("%s.bak-%d", path, time.Now().UnixNano())
	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		return fmt.Errorf("project: writing backup %q: %w", backupPath, err)
	}
	return nil
}

// Load reads a Project from path.
func Load(path string) (Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Project{}, fmt.Errorf("project: reading %q: %w", path, err)
	}
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return Project{}, fmt.Errorf("project: parsing %q: %w", path, err)
	}
	if p.Orders == nil {
		p.Orders = []quantity.Order{}
	}
	return p, nil
}

// Inputs expands every order in p into the flat []pack.PhotoInput the
// packing core consumes.
func (p Project) Inputs() []pack.PhotoInput {
	return quantity.ExpandAll(p.Orders)
}

// TouchRecent records projectPath as the most recently used project in
// the AppConfig at cfgPath, moving it to the front and trimming the list
// to maxRecentProjects entries. It loads and re-saves the config file.
func TouchRecent(cfgPath, projectPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("project: loading config %q: %w", cfgPath, err)
	}

	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		absPath = projectPath
	}

	recent := make([]string, 0, maxRecentProjects)
	recent = append(recent, absPath)
	for _, existing := range cfg.RecentProjects {
		if existing == absPath {
			continue
		}
		recent = append(recent, existing)
		if len(recent) == maxRecentProjects {
			break
		}
	}
	cfg.RecentProjects = recent

	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("project: saving config %q: %w", cfgPath, err)
	}
	return nil
}

// BackupData is the top-level structure for exporting a project bundled
// with the app config that produced it, so the pair can be restored onto
// a different machine in one step.
type BackupData struct {
	Version   string          `json:"version"`
	CreatedAt string          `json:"created_at"`
	Config    config.AppConfig `json:"config"`
	Project   Project          `json:"project"`
}

// Export bundles p and cfg into a single backup JSON file at path.
// createdAt is supplied by the caller rather than stamped internally, so
// callers in tests can produce deterministic output.
func Export(path string, p Project, cfg config.AppConfig, createdAt time.Time) error {
	backup := BackupData{
		Version:   "1.0.0",
		CreatedAt: createdAt.UTC().Format(time.RFC3339),
		Config:    cfg,
		Project:   p,
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("project: marshaling backup: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("project: creating export directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("project: writing backup file: %w", err)
	}
	return nil
}

// Import reads a backup JSON file written by Export.
func Import(path string) (BackupData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BackupData{}, fmt.Errorf("project: reading backup file: %w", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("project: parsing backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("project: invalid backup file: missing version field")
	}
	if backup.Config.RecentProjects == nil {
		backup.Config.RecentProjects = []string{}
	}
	if backup.Project.Orders == nil {
		backup.Project.Orders = []quantity.Order{}
	}
	return backup, nil
}
