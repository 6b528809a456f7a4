// Package page assembles charts into HTML pages and JSON summaries.
package page

import (
	"fmt"
	"io"
	"strings"

	"github.com/user/altamira-go/internal/chart"
	"github.com/user/altamira-go/internal/renderer"
	"github.com/user/altamira-go/internal/scripts"
)

// Item is a chart together with the style it is rendered with.
type Item struct {
	Chart *chart.Chart
	Style renderer.StyleOptions
}

// Iterator walks a set of charts, rendering their markup through a chain
// and gathering the files and scripts they need.
type Iterator struct {
	chain *renderer.Chain
	items []Item
	pos   int
}

// NewIterator returns an iterator over items. A nil chain renders the bare
// chart div.
func NewIterator(chain *renderer.Chain, items []Item) *Iterator {
	if chain == nil {
		chain = renderer.NewChain()
	}
	return &Iterator{chain: chain, items: items}
}

// Next reports whether another chart is available and advances to it.
func (it *Iterator) Next() bool {
	if it.pos >= len(it.items) {
		return false
	}
	it.pos++
	return true
}

// Item returns the chart Next last advanced to. Before the first call to
// Next it returns the zero Item.
func (it *Iterator) Item() Item {
	if it.pos == 0 {
		return Item{}
	}
	return it.items[it.pos-1]
}

// Markup renders the current chart through the chain, or returns "" before
// the first call to Next.
func (it *Iterator) Markup() string {
	item := it.Item()
	if item.Chart == nil {
		return ""
	}
	return it.chain.Render(item.Chart, item.Style)
}

// Files returns every file the charts need, in first-use order.
func (it *Iterator) Files() []string {
	var files []string
	for _, item := range it.items {
		files = chart.AppendUnique(files, item.Chart.Files()...)
	}
	return files
}

// Script returns the bootstrap code for all charts, run once the document
// is ready.
func (it *Iterator) Script() (string, error) {
	var b strings.Builder
	b.WriteString("$(document).ready(function(){\n")
	for _, item := range it.items {
		s, err := item.Chart.Script()
		if err != nil {
			return "", err
		}
		b.WriteString("    ")
		b.WriteString(s)
		b.WriteString("\n")
	}
	b.WriteString("});")
	return b.String(), nil
}

// WriteFiles writes a script element for each needed file.
func (it *Iterator) WriteFiles(w io.Writer, prefix string) error {
	if err := scripts.NewFilesRenderer(w, it.Files(), prefix).RenderAll(); err != nil {
		return fmt.Errorf("failed to write chart files: %w", err)
	}
	return nil
}

// WriteScripts writes the bootstrap code inside a script element.
func (it *Iterator) WriteScripts(w io.Writer) error {
	script, err := it.Script()
	if err != nil {
		return err
	}
	if err := scripts.NewScriptsRenderer(w, []string{script}).RenderAll(true); err != nil {
		return fmt.Errorf("failed to write chart scripts: %w", err)
	}
	return nil
}
