// Package header is the part of the pipeline of actordoc
// responsible for finding standard library headers
// and extracting documented actor records from them.
//
// It provides a [Finder] to search for std_*.h headers.
// The Finder produces [Ref]s, which are lightweight references to headers.
// [Scanner] reads a Ref from disk and extracts its [Record]s.
package header
