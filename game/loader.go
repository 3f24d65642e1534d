package game

import (
	"fmt"
	"os"
	"strings"

	"github.com/ionut-t/hjkl/core"
)

// maxFileSize caps playable files. Anything bigger is more scrolling than
// playing.
const maxFileSize = 1 << 20

// LoadBuffer reads a file into a playable buffer. Tabs are expanded to the
// generator's indent so every rune stays one terminal cell wide.
func LoadBuffer(path string) (*core.Buffer, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("load buffer: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("load buffer: %s is a directory", path)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("load buffer: %s exceeds %d bytes", path, maxFileSize)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load buffer: %w", err)
	}

	text := strings.ReplaceAll(string(content), "\t", indent)
	return core.NewBufferFromBytes([]byte(text)), nil
}
