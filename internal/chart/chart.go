// Package chart builds chart objects whose options and bootstrap scripts
// configure the Flot charting library.
package chart

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Library is the charting library every chart in this package targets.
const Library = "flot"

// LibraryFiles are loaded before any plugin file. Flot is a jQuery plugin,
// so jQuery comes first.
var LibraryFiles = []string{"jquery.js", "jquery.flot.js"}

// Series is one labelled data series in the shape Flot reads.
type Series struct {
	Label string       `json:"label,omitempty"`
	Data  [][2]float64 `json:"data"`
}

// Chart is a named chart of a given type.
type Chart struct {
	name        string
	title       string
	description string
	typ         Type
	series      []Series
}

// New returns a chart drawn into the element with id name.
func New(name string, typ Type) *Chart {
	return &Chart{name: name, title: name, typ: typ}
}

func (c *Chart) Library() string { return Library }
func (c *Chart) Name() string    { return c.name }
func (c *Chart) Title() string   { return c.title }

// Description is markdown shown beneath the chart.
func (c *Chart) Description() string { return c.description }

func (c *Chart) Type() Type { return c.typ }

func (c *Chart) Series() []Series { return c.series }

func (c *Chart) SetTitle(title string) *Chart {
	c.title = title
	return c
}

func (c *Chart) SetDescription(markdown string) *Chart {
	c.description = markdown
	return c
}

// SetOption passes a named option through the chart type.
func (c *Chart) SetOption(name string, value any) *Chart {
	c.typ.SetOption(name, value)
	return c
}

// AddSeries appends a data series.
func (c *Chart) AddSeries(label string, data [][2]float64) *Chart {
	c.series = append(c.series, Series{Label: label, Data: data})
	return c
}

// Files returns the library files followed by the type's plugin files,
// without duplicates.
func (c *Chart) Files() []string {
	return AppendUnique(nil, append(append([]string{}, LibraryFiles...), c.typ.PluginFiles()...)...)
}

// Script returns the JavaScript statement that draws the chart.
func (c *Chart) Script() (string, error) {
	series := c.series
	if series == nil {
		series = []Series{}
	}
	data, err := json.Marshal(series)
	if err != nil {
		return "", fmt.Errorf("failed to encode series for chart %s: %w", c.name, err)
	}
	opts, err := c.typ.Options().JSON()
	if err != nil {
		return "", fmt.Errorf("chart %s: %w", c.name, err)
	}
	return fmt.Sprintf("$.plot($('#%s'), %s, %s);", jsEscape(c.name), data, opts), nil
}

// AppendUnique appends the items not already present in dst, keeping first
// occurrence order.
func AppendUnique(dst []string, items ...string) []string {
	seen := make(map[string]bool, len(dst)+len(items))
	for _, d := range dst {
		seen[d] = true
	}
	for _, it := range items {
		if seen[it] {
			continue
		}
		seen[it] = true
		dst = append(dst, it)
	}
	return dst
}

var jsReplacer = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"<", `\x3c`,
)

func jsEscape(s string) string {
	return jsReplacer.Replace(s)
}
