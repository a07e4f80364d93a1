package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"tasksync/internal/config"
	"tasksync/internal/ports"
)

// Vault implements ports.VaultStore on the local filesystem.
// All paths are vault-relative with forward slashes.
type Vault struct {
	root string
}

// Ensure Vault implements VaultStore
var _ ports.VaultStore = (*Vault)(nil)

// NewVault creates a vault store rooted at the given path
func NewVault(vaultPath string) *Vault {
	return &Vault{root: config.ExpandHome(vaultPath)}
}

// Root returns the absolute vault root
func (v *Vault) Root() string {
	return v.root
}

// Abs resolves a vault-relative path to an absolute one
func (v *Vault) Abs(path string) string {
	return filepath.Join(v.root, filepath.FromSlash(path))
}

// Read returns the content of a file
func (v *Vault) Read(path string) (string, error) {
	data, err := os.ReadFile(v.Abs(path))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// Write stores content at a path, atomically from a reader's perspective:
// the content lands in a temp file first and is renamed into place, so a
// concurrent reader sees either the old file or the new one, never a
// half-written mix.
func (v *Vault) Write(path, content string) error {
	abs := v.Abs(path)
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return fmt.Errorf("failed to create parent of %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(abs), "."+filepath.Base(abs)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), abs); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Exists reports whether a file or folder exists at the path
func (v *Vault) Exists(path string) (bool, error) {
	_, err := os.Stat(v.Abs(path))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", path, err)
}

// Remove deletes a file
func (v *Vault) Remove(path string) error {
	if err := os.Remove(v.Abs(path)); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

// CreateFolder creates a folder and any missing parents
func (v *Vault) CreateFolder(path string) error {
	if err := os.MkdirAll(v.Abs(path), 0755); err != nil {
		return fmt.Errorf("failed to create folder %s: %w", path, err)
	}
	return nil
}

// List returns the markdown files directly inside a folder, sorted by
// name. A missing folder yields an empty list, not an error: entity
// folders appear lazily as the vault grows.
func (v *Vault) List(folder string) ([]string, error) {
	entries, err := os.ReadDir(v.Abs(folder))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read folder %s: %w", folder, err)
	}

	var paths []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.HasSuffix(name, ".md") {
			continue
		}
		paths = append(paths, strings.TrimSuffix(folder, "/")+"/"+name)
	}
	sort.Strings(paths)
	return paths, nil
}
