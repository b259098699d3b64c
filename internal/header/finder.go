package header

import (
	"log"
	"path/filepath"
	"slices"

	"braces.dev/errtrace"
)

// _headerPattern selects the standard library headers.
const _headerPattern = "std_*.h"

// Ref is a reference to a header on disk.
//
// It holds just enough to load the header later,
// so many of them can be in memory at once.
type Ref struct {
	// Base name of the file, e.g. "std_math.h".
	Name string

	// Path to the file.
	Path string
}

// Finder searches for standard library headers on disk.
//
// The zero value of this is ready to use.
type Finder struct {
	// Directory to search.
	// Defaults to the current directory.
	Dir string

	// Logger to write debug messages to.
	//
	// Use nil to disable debug logging.
	DebugLog *log.Logger
}

// FindHeaders returns references to all std_*.h headers
// in the finder's directory, sorted by file name.
//
// Finding nothing is not an error;
// the caller decides whether an empty result is fatal.
func (f *Finder) FindHeaders() ([]*Ref, error) {
	dir := f.Dir
	if dir == "" {
		dir = "."
	}

	paths, err := filepath.Glob(filepath.Join(dir, _headerPattern))
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	slices.Sort(paths)

	refs := make([]*Ref, len(paths))
	for i, p := range paths {
		if f.DebugLog != nil {
			f.DebugLog.Printf("Found header %v", p)
		}
		refs[i] = &Ref{Name: filepath.Base(p), Path: p}
	}
	return refs, nil
}
