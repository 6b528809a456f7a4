// Package scripts emits <script> tags for chart bootstrap code and the
// library files charts depend on.
//
// Both emitters hold a cursor. Render writes the element under the cursor,
// Next advances it; the caller composes the two. Once the cursor is past the
// end both are no-ops.
package scripts

import (
	"fmt"
	"io"
)

// cursor is the iteration state shared by both emitters.
type cursor struct {
	w   io.Writer
	pos int
	n   int
	err error
}

// Valid reports whether the cursor points at an element.
func (c *cursor) Valid() bool {
	return c.pos < c.n
}

// Rewind moves the cursor back to the first element.
func (c *cursor) Rewind() {
	c.pos = 0
}

// Err returns the first error encountered while writing.
func (c *cursor) Err() error {
	return c.err
}

func (c *cursor) advance() {
	if c.pos < c.n {
		c.pos++
	}
}

func (c *cursor) printf(format string, args ...any) {
	if c.err != nil {
		return
	}
	if _, err := fmt.Fprintf(c.w, format, args...); err != nil {
		c.err = fmt.Errorf("failed to write script: %w", err)
	}
}

// ScriptsRenderer emits raw script bodies.
type ScriptsRenderer struct {
	cursor
	scripts []string
}

// NewScriptsRenderer returns an emitter over scripts writing to w.
func NewScriptsRenderer(w io.Writer, scripts []string) *ScriptsRenderer {
	return &ScriptsRenderer{
		cursor:  cursor{w: w, n: len(scripts)},
		scripts: scripts,
	}
}

// Render writes the current script verbatim, or inside a script element
// when wrap is true.
func (s *ScriptsRenderer) Render(wrap bool) *ScriptsRenderer {
	if !s.Valid() {
		return s
	}
	body := s.scripts[s.pos]
	if wrap {
		s.printf("<script type='text/javascript'>\n%s\n</script>\n", body)
	} else {
		s.printf("%s", body)
	}
	return s
}

// Next advances to the following script.
func (s *ScriptsRenderer) Next() *ScriptsRenderer {
	s.advance()
	return s
}

// Current returns the script under the cursor.
func (s *ScriptsRenderer) Current() (string, bool) {
	if !s.Valid() {
		return "", false
	}
	return s.scripts[s.pos], true
}

// RenderAll renders every remaining script.
func (s *ScriptsRenderer) RenderAll(wrap bool) error {
	for s.Valid() && s.err == nil {
		s.Render(wrap).Next()
	}
	return s.err
}

// FilesRenderer emits script elements that load files from prefix.
type FilesRenderer struct {
	cursor
	files  []string
	prefix string
}

// NewFilesRenderer returns an emitter over files writing to w. Each path is
// joined to prefix by plain concatenation.
func NewFilesRenderer(w io.Writer, files []string, prefix string) *FilesRenderer {
	return &FilesRenderer{
		cursor: cursor{w: w, n: len(files)},
		files:  files,
		prefix: prefix,
	}
}

// Render writes a script element for the current file. wrap has no effect.
func (f *FilesRenderer) Render(wrap bool) *FilesRenderer {
	if !f.Valid() {
		return f
	}
	f.printf("<script type=\"text/javascript\" src=\"%s%s\"></script>\n", f.prefix, f.files[f.pos])
	return f
}

// Next advances to the following file.
func (f *FilesRenderer) Next() *FilesRenderer {
	f.advance()
	return f
}

// Current returns the file under the cursor, without the prefix.
func (f *FilesRenderer) Current() (string, bool) {
	if !f.Valid() {
		return "", false
	}
	return f.files[f.pos], true
}

// RenderAll renders every remaining file.
func (f *FilesRenderer) RenderAll() error {
	for f.Valid() && f.err == nil {
		f.Render(false).Next()
	}
	return f.err
}
