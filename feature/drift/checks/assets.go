package checks

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// ListAssets returns the sorted base names of the entries directly inside
// c.Dir that match c.Pattern. Hidden entries are skipped. A missing
// directory yields no assets and no error.
func ListAssets(fs afero.Fs, c Category) ([]string, error) {
	matches, err := afero.Glob(fs, filepath.Join(c.Dir, c.Pattern))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s assets in %s: %w", c.Kind, c.Dir, err)
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := filepath.Base(m)
		if strings.HasPrefix(name, ".") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// CheckCategory returns the assets of c not referenced by any of lines, along
// with the number of assets checked.
func CheckCategory(fs afero.Fs, lines []string, c Category) (missing []string, checked int, err error) {
	names, err := ListAssets(fs, c)
	if err != nil {
		return nil, 0, err
	}

	for _, name := range names {
		if !referenced(lines, c.Marker+name) {
			missing = append(missing, name)
		}
	}

	return missing, len(names), nil
}
