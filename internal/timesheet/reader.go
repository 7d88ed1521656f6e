package timesheet

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/faizmokh/jam/internal/files"
)

// Reader loads the timesheet log located by a files.Manager.
type Reader struct {
	manager *files.Manager
}

// NewReader wires a reader using the shared files.Manager.
func NewReader(manager *files.Manager) *Reader {
	return &Reader{manager: manager}
}

// Load parses the whole log file from scratch.
func (r *Reader) Load(ctx context.Context) (*Log, error) {
	if r == nil || r.manager == nil {
		return nil, errors.New("reader not initialized with file manager")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(r.manager.LogPath())
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	log, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", r.manager.LogPath(), err)
	}
	return log, nil
}
