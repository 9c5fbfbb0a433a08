package termwidth

import (
	"os"
	"path/filepath"
	"testing"
)

// notATerminal returns an open regular file, so the tty probe always misses.
func notATerminal(t *testing.T) *os.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestWidth_ColumnsEnv(t *testing.T) {
	t.Setenv("COLUMNS", "57")
	if got := Width(notATerminal(t)); got != 57 {
		t.Errorf("Width() = %d, want 57 from COLUMNS", got)
	}
}

func TestWidth_InvalidColumns(t *testing.T) {
	for _, cols := range []string{"abc", "0", "-4", ""} {
		t.Setenv("COLUMNS", cols)
		if got := Width(notATerminal(t)); got != DefaultWidth {
			t.Errorf("COLUMNS=%q: Width() = %d, want DefaultWidth %d", cols, got, DefaultWidth)
		}
	}
}
