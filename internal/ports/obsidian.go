package ports

// ObsidianOpener defines the interface for opening vault files in Obsidian
type ObsidianOpener interface {
	// OpenFile opens a vault-relative file in Obsidian using the
	// obsidian:// URI scheme
	OpenFile(path string) error
}
