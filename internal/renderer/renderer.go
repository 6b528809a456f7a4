// Package renderer wraps a chart's base markup in a chain of HTML decorators.
package renderer

import (
	"fmt"
	"strings"
)

// ChartLike is the read-only view of a chart that renderers consume.
type ChartLike interface {
	Library() string
	Name() string
	Title() string
}

// StyleOption is a single inline style declaration, or a renderer-specific
// setting such as "titleTag".
type StyleOption struct {
	Key   string
	Value string
}

// StyleOptions keeps declarations in insertion order so the rendered inline
// style is stable.
type StyleOptions []StyleOption

// Style builds StyleOptions from alternating key/value strings.
// A trailing key without a value is ignored.
func Style(kv ...string) StyleOptions {
	opts := make(StyleOptions, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		opts = append(opts, StyleOption{Key: kv[i], Value: kv[i+1]})
	}
	return opts
}

// Get returns the value of the last declaration for key.
func (s StyleOptions) Get(key string) (string, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].Key == key {
			return s[i].Value, true
		}
	}
	return "", false
}

// With returns a copy of s with key set to value.
func (s StyleOptions) With(key, value string) StyleOptions {
	out := make(StyleOptions, 0, len(s)+1)
	replaced := false
	for _, o := range s {
		if o.Key == key {
			o.Value = value
			replaced = true
		}
		out = append(out, o)
	}
	if !replaced {
		out = append(out, StyleOption{Key: key, Value: value})
	}
	return out
}

// Renderer contributes an opening and a closing fragment around the markup
// nested inside it.
type Renderer interface {
	PreRender(chart ChartLike, style StyleOptions) string
	PostRender(chart ChartLike, style StyleOptions) string
	RenderStyle(style StyleOptions) string
}

// DefaultRenderer emits the div the charting library draws into.
type DefaultRenderer struct{}

// RenderStyle formats every pair as an inline CSS declaration.
func (DefaultRenderer) RenderStyle(style StyleOptions) string {
	var b strings.Builder
	for _, o := range style {
		fmt.Fprintf(&b, "%s: %s; ", o.Key, o.Value)
	}
	return b.String()
}

// PreRender opens the chart div. It is left unterminated.
func (r DefaultRenderer) PreRender(chart ChartLike, style StyleOptions) string {
	return fmt.Sprintf(`<div class="%s" id="%s" style="%s">`, chart.Library(), chart.Name(), r.RenderStyle(style))
}

// PostRender closes the chart div.
func (DefaultRenderer) PostRender(ChartLike, StyleOptions) string {
	return "</div>"
}

// DefaultTitleTag is used when the style options carry no "titleTag".
const DefaultTitleTag = "h3"

// TitleRenderer wraps the chart in a div headed by the chart title.
type TitleRenderer struct{}

// RenderStyle is always empty; the title wrapper carries no inline style.
func (TitleRenderer) RenderStyle(StyleOptions) string {
	return ""
}

// PreRender opens the title div and writes the title heading inside it.
func (TitleRenderer) PreRender(chart ChartLike, style StyleOptions) string {
	tag, ok := style.Get("titleTag")
	if !ok || tag == "" {
		tag = DefaultTitleTag
	}
	return fmt.Sprintf("<div class=\"altamira-chart-title\">\n    <%s>%s</%s>\n", tag, chart.Title(), tag)
}

// PostRender closes the title div.
func (TitleRenderer) PostRender(ChartLike, StyleOptions) string {
	return "</div>"
}
