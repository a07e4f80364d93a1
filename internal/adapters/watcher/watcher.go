package watcher

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"tasksync/internal/config"
)

// DebounceInterval is how long the watcher waits after the last event
// before firing. Editors write files in bursts (temp file, rename, touch),
// and one sync per burst is enough.
const DebounceInterval = 500 * time.Millisecond

// Watcher observes the vault's entity folders and invokes a callback after
// markdown files change. Events are debounced so a burst of writes results
// in a single callback.
type Watcher struct {
	fsw      *fsnotify.Watcher
	vault    string
	interval time.Duration
	onChange func()
	done     chan struct{}
}

// New creates a watcher over the entity folders configured in settings.
// onChange runs on the watcher goroutine after each debounced burst.
func New(vaultPath string, settings config.Settings, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		vault:    config.ExpandHome(vaultPath),
		interval: DebounceInterval,
		onChange: onChange,
		done:     make(chan struct{}),
	}

	folders := []string{settings.TasksFolder, settings.ProjectsFolder, settings.AreasFolder}
	added := 0
	for _, folder := range folders {
		abs := filepath.Join(w.vault, filepath.FromSlash(folder))
		if _, err := os.Stat(abs); err != nil {
			continue
		}
		if err := fsw.Add(abs); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", folder, err)
		}
		added++
	}
	if added == 0 {
		fsw.Close()
		return nil, fmt.Errorf("no entity folders to watch under %s", w.vault)
	}

	// Settings edits (category changes in particular) also need a resync.
	// The settings dir may not exist yet; that is fine, Load falls back to
	// defaults anyway.
	settingsDir := filepath.Dir(filepath.Join(w.vault, filepath.FromSlash(config.SettingsFile)))
	if _, err := os.Stat(settingsDir); err == nil {
		if err := fsw.Add(settingsDir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to watch settings: %w", err)
		}
	}

	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.interval)
				fire = timer.C
			} else {
				if !timer.Stop() {
					<-timer.C
				}
				timer.Reset(w.interval)
			}
		case <-fire:
			timer = nil
			fire = nil
			w.onChange()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("watcher error: %v", err)
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// relevant filters out events the sync does not care about
func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Base(event.Name)
	if name == filepath.Base(config.SettingsFile) {
		return true
	}
	if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".md") {
		return false
	}
	return true
}

// Close stops the watcher. Pending debounced callbacks are dropped.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
