// Package wordlist maintains the local dictionary of attested forms: a
// newline-delimited list of NFD-normalized spellings used to feed
// comparisons. Stores deduplicate on append, so repeated imports of the
// same material are harmless.
package wordlist

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atlasling/phondist/segment"
)

// Store is a dictionary backend. All returns every stored form; Add
// normalizes the given forms and stores the ones not already present,
// reporting which were new.
type Store interface {
	All(ctx context.Context) ([]string, error)
	Add(ctx context.Context, forms ...string) (added []string, err error)
}

// Normalize brings a form to its canonical stored spelling: trimmed, NFD.
func Normalize(form string) string {
	return segment.Normalize(form)
}

// Read parses a newline-delimited form list. Blank lines and '#' comments
// are skipped.
func Read(r io.Reader) ([]string, error) {
	var forms []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		forms = append(forms, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return forms, nil
}

// FileStore keeps the dictionary in a plain text file, one form per line.
type FileStore struct {
	Path string
}

// NewFileStore creates a store backed by the given path. The file need not
// exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// All returns the stored forms in file order. A missing file is an empty
// dictionary, not an error.
func (s *FileStore) All(ctx context.Context) ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open wordlist: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Add appends the forms not yet present, creating the file and its parent
// directory on first use.
func (s *FileStore) Add(ctx context.Context, forms ...string) ([]string, error) {
	existing, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(existing))
	for _, form := range existing {
		seen[form] = true
	}

	var added []string
	for _, form := range forms {
		nf := Normalize(form)
		if nf == "" || seen[nf] {
			continue
		}
		seen[nf] = true
		added = append(added, nf)
	}
	if len(added) == 0 {
		return nil, nil
	}

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create wordlist dir: %w", err)
		}
	}
	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open wordlist: %w", err)
	}
	defer f.Close()
	for _, form := range added {
		if _, err := fmt.Fprintln(f, form); err != nil {
			return nil, fmt.Errorf("append wordlist: %w", err)
		}
	}
	return added, nil
}
