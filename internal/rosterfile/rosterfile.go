// Package rosterfile loads the roster from a plain text file, one
// employee ID per line. Line order is roster order.
package rosterfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/rollcall-hq/rollcall/internal/domain/roster"
)

// Source implements roster.Source over a text file.
type Source struct {
	path string
}

// New creates a source reading from path.
func New(path string) *Source {
	return &Source{path: path}
}

// Load reads all IDs in file order. Blank lines are skipped and
// surrounding whitespace is trimmed; IDs are otherwise taken byte for
// byte. A missing file is ErrUnavailable; an empty file is an empty
// roster.
func (s *Source) Load(ctx context.Context) ([]roster.EmployeeID, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", roster.ErrUnavailable, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("open roster file: %w", err)
	}
	defer f.Close()

	var ids []roster.EmployeeID
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ids = append(ids, roster.EmployeeID(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}

	return ids, nil
}
