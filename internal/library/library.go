// Package library manages a local directory library of potential records.
// Records live at <root>/potential_LAMMPS/<id>.json, with any parameter
// files for a record under <root>/potential_LAMMPS/<id>/.
package library

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/potlib/potrec/internal/model"
	"github.com/potlib/potrec/internal/record"
)

// template is the record schema directory name, kept from the upstream
// record database naming.
const template = "potential_LAMMPS"

var (
	// ErrNotFound is returned when no record matches.
	ErrNotFound = errors.New("no matching records found")

	// ErrMultiple is returned by GetOne when more than one record matches.
	ErrMultiple = errors.New("multiple matching records found")
)

// Library is a record library rooted at a local directory.
type Library struct {
	root string
}

// Open returns a library rooted at dir, creating the record directory if
// needed.
func Open(dir string) (*Library, error) {
	if dir == "" {
		return nil, fmt.Errorf("library path must be set")
	}
	if err := os.MkdirAll(filepath.Join(dir, template), 0o755); err != nil {
		return nil, fmt.Errorf("open library: %w", err)
	}
	return &Library{root: dir}, nil
}

// Root returns the library's root directory.
func (l *Library) Root() string {
	return l.root
}

// Save writes a record's document to <root>/potential_LAMMPS/<id>.json.
// With indent, the document is written in its indented printable form.
func (l *Library) Save(rec *record.Record, indent bool) error {
	if rec.ID == "" {
		return fmt.Errorf("save record: record id must be set")
	}
	doc, err := rec.BuildModel()
	if err != nil {
		return fmt.Errorf("save record %s: %w", rec.ID, err)
	}

	var data []byte
	if indent {
		data, err = model.MarshalIndent(doc, "    ")
	} else {
		data, err = model.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("save record %s: %w", rec.ID, err)
	}

	fname := l.recordPath(rec.ID)
	if err := os.WriteFile(fname, data, 0o644); err != nil {
		return fmt.Errorf("save record %s: %w", rec.ID, err)
	}
	return nil
}

// SaveWith saves the record and copies its parameter files into the
// record's directory under the library.
func (l *Library) SaveWith(rec *record.Record, indent bool, filenames ...string) error {
	if err := l.Save(rec, indent); err != nil {
		return err
	}
	if len(filenames) == 0 {
		return nil
	}

	potDir := filepath.Join(l.root, template, rec.ID)
	if err := os.MkdirAll(potDir, 0o755); err != nil {
		return fmt.Errorf("save record %s: %w", rec.ID, err)
	}
	for _, fname := range filenames {
		if err := copyFile(fname, filepath.Join(potDir, filepath.Base(fname))); err != nil {
			return fmt.Errorf("save record %s: copy %s: %w", rec.ID, fname, err)
		}
	}
	return nil
}

// Get loads a record by id. The record's PotDir is set to the library's
// parameter-file directory for the id when it exists.
func (l *Library) Get(id string) (*record.Record, error) {
	data, err := os.ReadFile(l.recordPath(id))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("get record %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get record %s: %w", id, err)
	}

	rec, err := record.LoadJSON(data)
	if err != nil {
		return nil, fmt.Errorf("get record %s: %w", id, err)
	}

	potDir := filepath.Join(l.root, template, id)
	if info, err := os.Stat(potDir); err == nil && info.IsDir() {
		rec.PotDir = potDir
	}
	return rec, nil
}

// List returns the ids of all records whose id matches pattern (a
// filepath.Match glob; "" lists everything), sorted.
func (l *Library) List(pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "*"
	}
	matches, err := filepath.Glob(filepath.Join(l.root, template, pattern+".json"))
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, strings.TrimSuffix(filepath.Base(m), ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

// Search returns the ids of records whose document contains every keyword,
// sorted.
func (l *Library) Search(keywords ...string) ([]string, error) {
	ids, err := l.List("")
	if err != nil {
		return nil, err
	}

	matched := []string{}
	for _, id := range ids {
		data, err := os.ReadFile(l.recordPath(id))
		if err != nil {
			return nil, fmt.Errorf("search records: %w", err)
		}
		content := string(data)
		ok := true
		for _, kw := range keywords {
			if !strings.Contains(content, kw) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, id)
		}
	}
	return matched, nil
}

// GetOne returns the single record matching pattern.
// Returns ErrNotFound for no match and ErrMultiple for more than one.
func (l *Library) GetOne(pattern string) (*record.Record, error) {
	ids, err := l.List(pattern)
	if err != nil {
		return nil, err
	}
	switch len(ids) {
	case 1:
		return l.Get(ids[0])
	case 0:
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("%w: %d", ErrMultiple, len(ids))
	}
}

// Delete removes a record and its parameter-file directory.
func (l *Library) Delete(id string) error {
	err := os.Remove(l.recordPath(id))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete record %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete record %s: %w", id, err)
	}
	if err := os.RemoveAll(filepath.Join(l.root, template, id)); err != nil {
		return fmt.Errorf("delete record %s: %w", id, err)
	}
	return nil
}

func (l *Library) recordPath(id string) string {
	return filepath.Join(l.root, template, id+".json")
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
