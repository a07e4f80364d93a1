package obsidian

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"tasksync/internal/config"
	"tasksync/internal/ports"
)

// Opener implements ports.ObsidianOpener via the obsidian:// URI scheme.
// Obsidian identifies vaults by folder name, so the opener only needs the
// vault's base name plus vault-relative file paths.
type Opener struct {
	vaultName string
}

// Ensure Opener implements ObsidianOpener
var _ ports.ObsidianOpener = (*Opener)(nil)

// NewOpener creates an Obsidian opener for the given vault path
func NewOpener(vaultPath string) *Opener {
	return &Opener{vaultName: filepath.Base(config.ExpandHome(vaultPath))}
}

// OpenFile opens a vault-relative file in Obsidian
func (o *Opener) OpenFile(path string) error {
	uri, err := o.BuildURI(path)
	if err != nil {
		return err
	}
	return o.openURI(uri)
}

// BuildURI constructs the obsidian:// URI for a vault-relative path.
// The URI is also what the TUI copies to the clipboard.
func (o *Opener) BuildURI(path string) (string, error) {
	path = strings.TrimPrefix(path, "./")
	if path == "" || strings.HasPrefix(path, "/") || strings.HasPrefix(path, "..") {
		return "", fmt.Errorf("not a vault-relative path: %q", path)
	}

	return fmt.Sprintf("obsidian://open?vault=%s&file=%s",
		url.QueryEscape(o.vaultName),
		url.QueryEscape(path),
	), nil
}

func (o *Opener) openURI(uri string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", uri)
	case "linux":
		cmd = exec.Command("xdg-open", uri)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", uri)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	return cmd.Run()
}
