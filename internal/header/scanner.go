package header

import (
	"os"
	"regexp"
	"strings"

	"braces.dev/errtrace"
)

// Markers of the documentation convention used by the std_*.h headers.
var (
	_fileMarker = regexp.MustCompile(`^/// @file`)
	_defgroup   = regexp.MustCompile(`^/// @defgroup\s+\S+\s+(.*)`)
	_groupEnd   = regexp.MustCompile(`^/// @\}`)
	_brief      = regexp.MustCompile(`^/// @brief\s+(.*)`)
	_param      = regexp.MustCompile(`^/// @param\s+(\S+)\s+(.*)`)
	_return     = regexp.MustCompile(`^/// @return\s+(.*)`)
	_codeStart  = regexp.MustCompile(`^/// @code\{\.pdl\}`)
	_codeEnd    = regexp.MustCompile(`^/// @endcode`)
	_docLine    = regexp.MustCompile(`^/// ?(.*)`)

	// Declaration shape. The count tokens may themselves be
	// parameterized ("N" or "N(8)"), and an optional template
	// prefix is accepted but not captured.
	_actor = regexp.MustCompile(`(?:template\s*<[^>]+>\s*)?ACTOR\((\w+),\s*IN\((\w+),\s*(\w+(?:\(\w+\))?)\),\s*OUT\((\w+),\s*(\w+(?:\(\w+\))?)\)`)
)

// _examplePlaceholder is the literal line that introduces the @code
// block in doc comments. It is dropped from descriptions so the
// rendered output doesn't repeat it above the example.
const _examplePlaceholder = "Example usage:"

// Scanner extracts actor records from headers on disk.
//
// The zero value is ready to use.
type Scanner struct{}

// ScanHeader reads the header behind ref fully into memory
// and extracts its records.
func (*Scanner) ScanHeader(ref *Ref) ([]*Record, error) {
	src, err := os.ReadFile(ref.Path)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return Scan(string(src)), nil
}

// scanState identifies what part of a header the scanner is positioned in.
type scanState int

const (
	// stateIdle scans for group markers and doc block starts.
	stateIdle scanState = iota

	// stateSuppress consumes a file-level @file comment block
	// without attributing its lines to any record.
	stateSuppress

	// stateDoc consumes the comment lines of one doc block.
	stateDoc

	// stateDecl searches for the ACTOR() declaration
	// following a just-closed doc block.
	stateDecl
)

// Scan extracts all documented actors from the given header source,
// in source order. Scan is a pure function of its input.
//
// Scan is lenient by design: doc blocks with no following declaration,
// declarations with no preceding doc block, and missing optional tags
// all degrade to emitting fewer records rather than failing.
// In particular, a @brief block that runs into the next @brief marker
// before finding its declaration is dropped silently,
// so an undocumented declaration can swallow the block above it
// without any warning.
func Scan(src string) []*Record {
	lines := strings.Split(src, "\n")

	var (
		records []*Record
		rec     *Record // record in progress, nil outside stateDoc/stateDecl
		group   string  // title of the active @defgroup
		inCode  bool    // inside @code/@endcode within stateDoc
	)

	state := stateIdle
	for i := 0; i < len(lines); {
		line := strings.TrimSpace(lines[i])

		switch state {
		case stateSuppress:
			if strings.HasPrefix(line, "///") {
				i++
				continue
			}
			// Re-examine this line in normal mode.
			state = stateIdle

		case stateIdle:
			switch {
			case _fileMarker.MatchString(line):
				state = stateSuppress
			case _defgroup.MatchString(line):
				group = _defgroup.FindStringSubmatch(line)[1]
			case _groupEnd.MatchString(line):
				// Group scopes don't nest; nothing to restore.
			case _brief.MatchString(line):
				rec = &Record{
					Group: group,
					Brief: _brief.FindStringSubmatch(line)[1],
				}
				inCode = false
				state = stateDoc
			}
			i++

		case stateDoc:
			if !strings.HasPrefix(line, "///") && line != "" {
				// Block over. Leave the line for the
				// declaration search to examine.
				state = stateDecl
				continue
			}

			switch {
			case line == "":
				// Blank lines don't terminate the block.

			case _codeStart.MatchString(line):
				inCode = true

			case _codeEnd.MatchString(line):
				inCode = false

			case inCode:
				if m := _docLine.FindStringSubmatch(line); m != nil {
					rec.Example = append(rec.Example, m[1])
				}

			case _brief.MatchString(line):
				// A second @brief before any declaration:
				// the unfinished block is discarded.
				rec = &Record{
					Group: group,
					Brief: _brief.FindStringSubmatch(line)[1],
				}
				inCode = false

			case _param.MatchString(line):
				m := _param.FindStringSubmatch(line)
				rec.Params = append(rec.Params, Param{Name: m[1], Desc: m[2]})

			case _return.MatchString(line):
				rec.Returns = _return.FindStringSubmatch(line)[1]

			default:
				if m := _docLine.FindStringSubmatch(line); m != nil {
					if text := m[1]; text != "" && text != _examplePlaceholder {
						rec.Description = append(rec.Description, text)
					}
				}
			}
			i++

		case stateDecl:
			if _brief.MatchString(line) {
				// The previous block never found its declaration.
				// Drop it and start over with this one.
				rec = &Record{
					Group: group,
					Brief: _brief.FindStringSubmatch(line)[1],
				}
				inCode = false
				state = stateDoc
				i++
				continue
			}

			m := _actor.FindStringSubmatch(line)
			if m == nil {
				i++
				continue
			}

			rec.Name = m[1]
			rec.InType = m[2]
			rec.InCount = m[3]
			rec.OutType = m[4]
			rec.OutCount = m[5]

			// Accumulate the declaration up to the opening brace,
			// collapsing line breaks to single spaces.
			var sig []string
			for i < len(lines) && !strings.Contains(lines[i], "{") {
				sig = append(sig, strings.TrimSpace(lines[i]))
				i++
			}
			if i < len(lines) {
				head, _, _ := strings.Cut(lines[i], "{")
				sig = append(sig, strings.TrimSpace(head))
			}
			rec.Signature = strings.TrimSpace(strings.Join(sig, " "))

			records = append(records, rec)
			rec = nil
			state = stateIdle
			i++
		}
	}

	// A record still in progress at end of input never found its
	// declaration and is dropped.
	return records
}
