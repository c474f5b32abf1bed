package checks

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
)

// LoadCandidateLines reads path in full and returns, in order, the lines that
// contain at least one of the markers. The file is closed before returning.
func LoadCandidateLines(fs afero.Fs, path string, markers []string) ([]string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source file: %w", err)
	}
	defer f.Close()

	var lines []string
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" && containsAny(line, markers) {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read source file %s: %w", path, err)
		}
	}

	return lines, nil
}

func containsAny(line string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}

// referenced reports whether any line contains ref.
func referenced(lines []string, ref string) bool {
	for _, line := range lines {
		if strings.Contains(line, ref) {
			return true
		}
	}
	return false
}
