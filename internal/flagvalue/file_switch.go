// Package flagvalue provides flag.Value implementations.
package flagvalue

import (
	"flag"
	"io"
	"os"

	"braces.dev/errtrace"
)

// FileSwitch is a flag that accepts both "-x" and "-x=value" forms.
// If a value is specified, it names a file to write to.
// Otherwise a caller-provided fallback writer is used.
//
// actordoc uses this for -debug:
// bare -debug logs to stderr, -debug=FILE logs to FILE.
type FileSwitch string

var _ flag.Getter = (*FileSwitch)(nil)

// Get returns the path stored in this flag,
// or '-' if the flag was set without a value.
func (fs *FileSwitch) Get() any { return string(*fs) }

// String returns the path stored in this flag,
// or '-' if the flag was set without a value.
func (fs *FileSwitch) String() string {
	return string(*fs)
}

// IsBoolFlag marks this as a flag
// that doesn't require a value.
func (*FileSwitch) IsBoolFlag() bool {
	return true
}

// Set receives the value for this flag.
func (fs *FileSwitch) Set(v string) error {
	if v == "true" {
		v = "-"
	}
	*fs = FileSwitch(v)
	return nil
}

// Bool reports whether this flag was set with any value.
func (fs *FileSwitch) Bool() bool {
	return len(*fs) > 0
}

// Create resolves this flag into a writer
// and a function to release it:
//
//   - the flag wasn't passed in: returns [io.Discard]
//   - the flag was passed without a value: returns the fallback
//   - the flag was passed with a value: creates and returns that file
func (fs *FileSwitch) Create(fallback io.Writer) (w io.Writer, close func() error, err error) {
	switch *fs {
	case "":
		return io.Discard, nopClose, nil
	case "-":
		return fallback, nopClose, nil
	default:
		f, err := os.Create(string(*fs))
		if err != nil {
			return nil, nil, errtrace.Wrap(err)
		}
		return f, f.Close, nil
	}
}

func nopClose() error { return nil }
