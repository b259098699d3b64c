package header

// Param is a single documented actor parameter.
type Param struct {
	// Name of the parameter as written in the @param tag.
	Name string

	// Rest of the @param line.
	Desc string
}

// Record holds the documentation extracted for a single actor:
// one doc comment block paired with the ACTOR() declaration
// that follows it.
//
// Records are immutable once the scanner has emitted them.
type Record struct {
	// Title of the @defgroup that was active
	// when the doc block began.
	// Empty if no group preceded the block in the same header.
	Group string

	// One-line @brief description. Always non-empty:
	// a doc block without a brief is never scanned.
	Brief string

	// Free-text lines of the extended description,
	// in source order.
	Description []string

	// Documented parameters in source order.
	// Names are not required to be unique.
	Params []Param

	// Text of the @return tag, if any.
	Returns string

	// Verbatim lines of the @code{.pdl} example block,
	// including interior blank lines.
	Example []string

	// Actor name and wire types from the ACTOR() macro.
	Name     string
	InType   string
	InCount  string
	OutType  string
	OutCount string

	// Full declaration text up to (not including) the opening brace,
	// with line breaks collapsed to single spaces.
	Signature string
}
