package store

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/etnz/fortress"
	"github.com/etnz/fortress/date"
)

// ExportName is the base name of backup files.
const ExportName = "fortress_backup"

// ExportFilename returns the backup file name, suffixed with on when dated.
func ExportFilename(on date.Date, dated bool) string {
	if !dated {
		return ExportName + ".json"
	}
	return fmt.Sprintf("%s_%s.json", ExportName, on)
}

// ExportFile writes a human readable backup of st in dir and returns its path.
func ExportFile(dir string, st *fortress.State, on date.Date, dated bool) (string, error) {
	var buf bytes.Buffer
	if err := fortress.ExportSnapshot(&buf, st); err != nil {
		return "", err
	}
	path := filepath.Join(dir, ExportFilename(on, dated))
	if err := writeFile(path, buf.Bytes()); err != nil {
		return "", fmt.Errorf("cannot export to %q: %w", path, err)
	}
	return path, nil
}
