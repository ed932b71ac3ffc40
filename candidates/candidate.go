package candidates

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Candidate is one generated rule read from a file.
type Candidate struct {
	Name string
	Path string
	Code string
}

var Extensions = []string{".nls", ".nlogo", ".txt"}

func IsCandidateFile(path string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(path)))
}

func LoadFile(path string) (Candidate, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Candidate{}, fmt.Errorf("read candidate %s: %w", path, err)
	}
	return Candidate{
		Name: filepath.Base(path),
		Path: path,
		Code: string(content),
	}, nil
}

// Load reads every candidate file directly under dir, sorted by name.
func Load(dir string) (ret []Candidate, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.IsDir() || !IsCandidateFile(entry.Name()) {
			continue
		}
		candidate, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		ret = append(ret, candidate)
	}
	return
}
