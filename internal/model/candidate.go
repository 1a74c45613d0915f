// Package model defines the data structures for source-tree restructuring.
package model

// Path represents a file system path.
type Path string

// Candidate represents a source file eligible for lifting into a module
// directory. All derived paths are computed once at discovery time so the
// per-file procedure never recomputes them mid-run.
type Candidate struct {
	// Source is the original file path, e.g. src/tokens/rnw.rs.
	Source Path
	// Stem is the filename without the suffix, e.g. rnw.
	Stem string
	// ModuleDir is the absolute module directory, e.g. /.../src/tokens/rnw.
	ModuleDir Path
	// ModulePath is the canonical module file inside ModuleDir, e.g. mod.rs.
	ModulePath Path
	// TestPath is the canonical test file inside ModuleDir, e.g. test.rs.
	TestPath Path
}

// Header represents the fixed block of lines prepended to every module file.
// Lines carry no terminators; Text renders the block with a trailing newline
// per line so it can be compared against and prepended to file content.
type Header []string

// Text returns the header as a single string, one newline per line.
func (h Header) Text() string {
	var out string
	for _, line := range h {
		out += line + "\n"
	}

	return out
}
