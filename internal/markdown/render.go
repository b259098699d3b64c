// Package markdown renders extracted actor records
// into the flat markdown reference document.
package markdown

import (
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"
	"go.pipit.dev/actordoc/internal/header"
)

// _fallbackGroup buckets records whose doc blocks
// were not preceded by any @defgroup.
const _fallbackGroup = "Other"

// Renderer writes the markdown reference document.
//
// The zero value of this is ready to use.
type Renderer struct{}

// RenderDocument renders the full document for the given records
// in a single pass.
//
// The quick-reference table lists records in input order.
// The body partitions them by group, groups appearing in the order
// they were first seen, and records keeping their relative order
// within a group.
func (*Renderer) RenderDocument(w io.Writer, records []*header.Record) error {
	lines := []string{
		"# Pipit Standard Library Reference",
		"",
		"<!-- Auto-generated by actordoc. Do not edit manually. -->",
		"",
		"## Quick Reference",
		"",
		"| Actor | Input | Output | Description |",
		"|-------|-------|--------|-------------|",
	}

	for _, rec := range records {
		lines = append(lines, fmt.Sprintf("| `%s` | %s | %s | %s |",
			rec.Name, Wire(rec.InType, rec.InCount), Wire(rec.OutType, rec.OutCount), rec.Brief))
	}
	lines = append(lines, "")

	for _, g := range GroupRecords(records) {
		lines = append(lines, "## "+g.Name, "")
		for _, rec := range g.Records {
			lines = append(lines, renderRecord(rec)...)
		}
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return errtrace.Wrap(err)
}

func renderRecord(rec *header.Record) []string {
	lines := []string{"### " + rec.Name, ""}

	// Brief and description form a single paragraph.
	if desc := strings.TrimSpace(strings.Join(rec.Description, " ")); desc != "" {
		lines = append(lines, fmt.Sprintf("**%s** — %s", rec.Brief, desc))
	} else {
		lines = append(lines, rec.Brief)
	}
	lines = append(lines, "")

	lines = append(lines,
		"**Signature:**",
		"",
		"```cpp",
		rec.Signature,
		"```",
		"")

	if len(rec.Params) > 0 {
		lines = append(lines, "**Parameters:**", "")
		for _, p := range rec.Params {
			lines = append(lines, fmt.Sprintf("- `%s` - %s", p.Name, p.Desc))
		}
		lines = append(lines, "")
	}

	if rec.Returns != "" {
		lines = append(lines, "**Returns:** "+rec.Returns, "")
	}

	if len(rec.Example) > 0 {
		lines = append(lines, "**Example:**", "", "```pdl")
		lines = append(lines, rec.Example...)
		lines = append(lines, "```", "")
	}

	return append(lines, "---", "")
}

// Wire renders a type and count pair as it appears in the
// quick-reference table: "type[count]", or the literal "void"
// for the void wire type.
func Wire(typ, count string) string {
	if typ == "void" {
		return "void"
	}
	return fmt.Sprintf("%s[%s]", typ, count)
}

// Group is a named partition of records sharing a @defgroup title.
type Group struct {
	Name    string
	Records []*header.Record
}

// GroupRecords partitions records by group title in first-seen order.
// Records with no group fall into the "Other" bucket.
func GroupRecords(records []*header.Record) []Group {
	var groups []Group
	index := make(map[string]int)

	for _, rec := range records {
		name := rec.Group
		if name == "" {
			name = _fallbackGroup
		}

		gi, ok := index[name]
		if !ok {
			gi = len(groups)
			index[name] = gi
			groups = append(groups, Group{Name: name})
		}
		groups[gi].Records = append(groups[gi].Records, rec)
	}
	return groups
}
