package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	t.Setenv("HEARTH_TEST_DIR", "/tmp/hearth")

	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "empty path",
			path: "",
			want: "",
		},
		{
			name: "tilde prefix",
			path: "~/data/hearth.db",
			want: filepath.Join(home, "data/hearth.db"),
		},
		{
			name: "bare tilde",
			path: "~",
			want: home,
		},
		{
			name: "env variable",
			path: "$HEARTH_TEST_DIR/hearth.db",
			want: "/tmp/hearth/hearth.db",
		},
		{
			name: "absolute path unchanged",
			path: "/var/lib/hearth.db",
			want: "/var/lib/hearth.db",
		},
		{
			name: "tilde in the middle is literal",
			path: "/data/~/hearth.db",
			want: "/data/~/hearth.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandPath(tt.path); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
