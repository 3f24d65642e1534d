package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "buffer.go")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBuffer(t *testing.T) {
	path := writeTempFile(t, "package main\n\nfunc main() {}\n")

	b, err := LoadBuffer(path)
	require.NoError(t, err)
	require.Equal(t, []string{"package main", "", "func main() {}"}, b.Lines())
}

func TestLoadBuffer_ExpandsTabs(t *testing.T) {
	path := writeTempFile(t, "func main() {\n\treturn\n}\n")

	b, err := LoadBuffer(path)
	require.NoError(t, err)
	require.Equal(t, indent+"return", b.Lines()[1])
}

func TestLoadBuffer_MissingFile(t *testing.T) {
	_, err := LoadBuffer("/does/not/exist.go")
	require.Error(t, err)
}

func TestLoadBuffer_RejectsDirectory(t *testing.T) {
	_, err := LoadBuffer(t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "directory")
}

func TestLoadBuffer_RejectsHugeFile(t *testing.T) {
	path := writeTempFile(t, strings.Repeat("x", maxFileSize+1))

	_, err := LoadBuffer(path)
	require.Error(t, err)
}
