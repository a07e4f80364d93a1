package ports

// VaultStore is the vault file store: an opaque text store keyed by
// vault-relative path. Write must be atomic from a reader's perspective
// (a reader never observes a half-written file).
type VaultStore interface {
	Read(path string) (string, error)
	Write(path, content string) error
	Exists(path string) (bool, error)
	Remove(path string) error
	CreateFolder(path string) error

	// List returns the markdown files directly inside a folder,
	// as vault-relative paths. Hidden entries are skipped.
	List(folder string) ([]string, error)

	// Abs resolves a vault-relative path to an absolute one, for
	// handing files to external programs (editor, Obsidian).
	Abs(path string) string
}
