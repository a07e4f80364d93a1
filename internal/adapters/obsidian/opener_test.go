package obsidian

import (
	"testing"
)

func TestNewOpener_DerivesVaultName(t *testing.T) {
	tests := []struct {
		name          string
		vaultPath     string
		wantVaultName string
	}{
		{
			name:          "simple vault path",
			vaultPath:     "/home/test/vault",
			wantVaultName: "vault",
		},
		{
			name:          "vault with spaces",
			vaultPath:     "/home/test/My Obsidian Vault",
			wantVaultName: "My Obsidian Vault",
		},
		{
			name:          "trailing elements",
			vaultPath:     "/home/test/documents/notes/gtd",
			wantVaultName: "gtd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opener := NewOpener(tt.vaultPath)
			if opener.vaultName != tt.wantVaultName {
				t.Errorf("vaultName = %q, want %q", opener.vaultName, tt.wantVaultName)
			}
		})
	}
}

func TestBuildURI(t *testing.T) {
	tests := []struct {
		name      string
		vaultPath string
		path      string
		wantURI   string
		wantErr   bool
	}{
		{
			name:      "task file",
			vaultPath: "/home/test/vault",
			path:      "Tasks/Fix login.md",
			wantURI:   "obsidian://open?vault=vault&file=Tasks%2FFix+login.md",
		},
		{
			name:      "vault name with spaces",
			vaultPath: "/home/test/My Vault",
			path:      "Areas/Health.md",
			wantURI:   "obsidian://open?vault=My+Vault&file=Areas%2FHealth.md",
		},
		{
			name:      "file at vault root",
			vaultPath: "/home/test/vault",
			path:      "README.md",
			wantURI:   "obsidian://open?vault=vault&file=README.md",
		},
		{
			name:      "absolute path rejected",
			vaultPath: "/home/test/vault",
			path:      "/etc/passwd",
			wantErr:   true,
		},
		{
			name:      "escaping path rejected",
			vaultPath: "/home/test/vault",
			path:      "../outside.md",
			wantErr:   true,
		},
		{
			name:      "empty path rejected",
			vaultPath: "/home/test/vault",
			path:      "",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opener := NewOpener(tt.vaultPath)
			gotURI, err := opener.BuildURI(tt.path)

			if (err != nil) != tt.wantErr {
				t.Errorf("BuildURI() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if gotURI != tt.wantURI {
				t.Errorf("BuildURI() = %q, want %q", gotURI, tt.wantURI)
			}
		})
	}
}
