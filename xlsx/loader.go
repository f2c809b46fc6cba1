// Package xlsx reads the Preqin fund performance export and writes the
// RockSling input workbook.
package xlsx

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/etnz/rocksling"
	"github.com/xuri/excelize/v2"
)

// Pattern matches the Preqin fund performance export files.
const Pattern = "Preqin_Fundperformance_export-*.xlsx"

// Latest returns the most recently modified file in dir matching pattern.
//
// When several files share the latest modification time the first in glob
// order wins. No match is an error wrapping fs.ErrNotExist.
func Latest(dir, pattern string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return "", fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	var latest string
	var mtime int64
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			return "", err
		}
		if t := info.ModTime().UnixNano(); latest == "" || t > mtime {
			latest, mtime = m, t
		}
	}
	if latest == "" {
		return "", fmt.Errorf("no file matching %q in %q: %w", pattern, dir, fs.ErrNotExist)
	}
	return latest, nil
}

// Load reads the first sheet of the workbook at path.
//
// The first row is the header. Cells are read as raw values, and rows shorter
// than the header are padded with empty cells. Blank rows are skipped.
func Load(path string) (*rocksling.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%q has no sheet", path)
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %q of %q: %w", sheets[0], path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q of %q is empty", sheets[0], path)
	}

	t := &rocksling.Table{Header: rows[0], Rows: make([][]string, 0, len(rows)-1)}
	for _, row := range rows[1:] {
		if !slices.ContainsFunc(row, func(c string) bool { return c != "" }) {
			continue
		}
		if len(row) < len(t.Header) {
			row = append(row, make([]string, len(t.Header)-len(row))...)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// LoadLatest loads the most recent export in dir and returns its path too.
func LoadLatest(dir string) (*rocksling.Table, string, error) {
	path, err := Latest(dir, Pattern)
	if err != nil {
		return nil, "", err
	}
	t, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return t, path, nil
}
