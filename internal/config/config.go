package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tasksync/internal/domain"
)

const DefaultVaultPath = "~/Documents/vault"

// SettingsFile is the settings path relative to the vault root
const SettingsFile = ".tasksync/settings.yaml"

// VaultPath returns the vault path from the TASKSYNC_VAULT env var,
// falling back to DefaultVaultPath.
func VaultPath() string {
	if env := os.Getenv("TASKSYNC_VAULT"); env != "" {
		return env
	}
	return DefaultVaultPath
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Settings is the full plugin configuration. Instances are plain values:
// core functions receive a snapshot and never reach for global state.
type Settings struct {
	TasksFolder    string `yaml:"tasksFolder"`
	ProjectsFolder string `yaml:"projectsFolder"`
	AreasFolder    string `yaml:"areasFolder"`
	TemplateFolder string `yaml:"templateFolder"`
	BasesFolder    string `yaml:"basesFolder"`

	TaskTypes    []domain.TaskType `yaml:"taskTypes"`
	TaskStatuses []string          `yaml:"taskStatuses"`

	AreaBasesEnabled         bool `yaml:"areaBasesEnabled"`
	ProjectBasesEnabled      bool `yaml:"projectBasesEnabled"`
	AutoSyncAreaProjectBases bool `yaml:"autoSyncAreaProjectBases"`

	DefaultTaskTemplate       string `yaml:"defaultTaskTemplate"`
	DefaultAreaTemplate       string `yaml:"defaultAreaTemplate"`
	DefaultProjectTemplate    string `yaml:"defaultProjectTemplate"`
	DefaultParentTaskTemplate string `yaml:"defaultParentTaskTemplate"`
}

// Default returns the built-in settings
func Default() Settings {
	return Settings{
		TasksFolder:    "Tasks",
		ProjectsFolder: "Projects",
		AreasFolder:    "Areas",
		TemplateFolder: "Templates",
		BasesFolder:    "Bases",
		TaskTypes: []domain.TaskType{
			{Name: "Bug", Color: "red"},
			{Name: "Feature", Color: "blue"},
			{Name: "Improvement", Color: "green"},
			{Name: "Chore", Color: "gray"},
		},
		TaskStatuses:              []string{"Backlog", "Todo", "In progress", "Done"},
		AreaBasesEnabled:          true,
		ProjectBasesEnabled:       true,
		AutoSyncAreaProjectBases:  true,
		DefaultTaskTemplate:       "Templates/Task.md",
		DefaultAreaTemplate:       "Templates/Area.md",
		DefaultProjectTemplate:    "Templates/Project.md",
		DefaultParentTaskTemplate: "Templates/Parent Task.md",
	}
}

// FolderFor returns the configured folder for an entity kind
func (s Settings) FolderFor(kind domain.EntityKind) string {
	switch kind {
	case domain.EntityProject:
		return s.ProjectsFolder
	case domain.EntityArea:
		return s.AreasFolder
	default:
		return s.TasksFolder
	}
}

// TemplateFor returns the configured template path for an entity kind
func (s Settings) TemplateFor(kind domain.EntityKind) string {
	switch kind {
	case domain.EntityProject:
		return s.DefaultProjectTemplate
	case domain.EntityArea:
		return s.DefaultAreaTemplate
	default:
		return s.DefaultTaskTemplate
	}
}

// Load reads settings from the vault. A missing file yields the defaults;
// malformed YAML is an error.
func Load(vaultPath string) (Settings, error) {
	path := filepath.Join(ExpandHome(vaultPath), filepath.FromSlash(SettingsFile))

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	s.normalize()
	return s, nil
}

// Save validates and persists settings atomically. Emptied fields are
// silently reset to their defaults rather than written blank.
func Save(vaultPath string, s Settings) error {
	s.normalize()

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	path := filepath.Join(ExpandHome(vaultPath), filepath.FromSlash(SettingsFile))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".settings-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// normalize resets emptied fields to their defaults. A blanked template
// path or folder is never persisted.
func (s *Settings) normalize() {
	def := Default()
	if s.TasksFolder == "" {
		s.TasksFolder = def.TasksFolder
	}
	if s.ProjectsFolder == "" {
		s.ProjectsFolder = def.ProjectsFolder
	}
	if s.AreasFolder == "" {
		s.AreasFolder = def.AreasFolder
	}
	if s.TemplateFolder == "" {
		s.TemplateFolder = def.TemplateFolder
	}
	if s.BasesFolder == "" {
		s.BasesFolder = def.BasesFolder
	}
	if len(s.TaskStatuses) == 0 {
		s.TaskStatuses = def.TaskStatuses
	}
	if s.DefaultTaskTemplate == "" {
		s.DefaultTaskTemplate = def.DefaultTaskTemplate
	}
	if s.DefaultAreaTemplate == "" {
		s.DefaultAreaTemplate = def.DefaultAreaTemplate
	}
	if s.DefaultProjectTemplate == "" {
		s.DefaultProjectTemplate = def.DefaultProjectTemplate
	}
	if s.DefaultParentTaskTemplate == "" {
		s.DefaultParentTaskTemplate = def.DefaultParentTaskTemplate
	}
}
