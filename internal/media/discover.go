package media

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Still-image extensions the converter accepts (lowercase, leading dot).
var stillExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// FrameFiles lists the decoded stills under dir, sorted lexicographically.
// With the decoder's zero-padded numbering that is the decode order.
func FrameFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("media: cannot list %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if stillExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
