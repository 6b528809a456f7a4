package chart

import (
	"fmt"
	"sort"
)

// Type holds the library options for one kind of chart and translates named
// settings into that nested shape.
type Type interface {
	Name() string
	Options() Options
	SetOption(name string, value any) Type
	PluginFiles() []string
}

// TypeBase carries the options and plugin files every chart type has. Its
// SetOption stores unrecognized names at the top level unchanged.
type TypeBase struct {
	options     Options
	pluginFiles []string
}

func newTypeBase(options Options, plugins ...string) TypeBase {
	return TypeBase{options: options, pluginFiles: plugins}
}

// Options returns the live option map.
func (t *TypeBase) Options() Options {
	return t.options
}

// PluginFiles returns the extra library files the configured options need.
func (t *TypeBase) PluginFiles() []string {
	out := make([]string, len(t.pluginFiles))
	copy(out, t.pluginFiles)
	return out
}

func (t *TypeBase) addPlugin(file string) {
	for _, f := range t.pluginFiles {
		if f == file {
			return
		}
	}
	t.pluginFiles = append(t.pluginFiles, file)
}

func (t *TypeBase) setOption(name string, value any) {
	t.options[name] = value
}

const (
	stackPlugin = "jquery.flot.stack.js"
	piePlugin   = "jquery.flot.pie.js"
)

// Bar draws every series as bars.
type Bar struct {
	TypeBase
}

// NewBar returns a bar type with lines and points hidden.
func NewBar() *Bar {
	return &Bar{TypeBase: newTypeBase(Options{
		"series": map[string]any{
			"lines":  map[string]any{"show": false},
			"bars":   map[string]any{"show": true},
			"points": map[string]any{"show": false},
		},
	})}
}

func (*Bar) Name() string { return "bar" }

func (b *Bar) SetOption(name string, value any) Type {
	switch name {
	case "horizontal":
		b.options.Set(value, "bars", "horizontal")
	case "stackSeries":
		b.addPlugin(stackPlugin)
		b.options.Set(true, "series", "stack")
	default:
		b.setOption(name, value)
	}
	return b
}

// Line draws every series as lines with point markers.
type Line struct {
	TypeBase
}

func NewLine() *Line {
	return &Line{TypeBase: newTypeBase(Options{
		"series": map[string]any{
			"lines":  map[string]any{"show": true},
			"points": map[string]any{"show": true},
		},
	})}
}

func (*Line) Name() string { return "line" }

func (l *Line) SetOption(name string, value any) Type {
	switch name {
	case "fillArea":
		l.options.Set(value, "series", "lines", "fill")
	case "showMarker":
		l.options.Set(value, "series", "points", "show")
	case "stackSeries":
		l.addPlugin(stackPlugin)
		l.options.Set(true, "series", "stack")
	default:
		l.setOption(name, value)
	}
	return l
}

// DefaultHole is the inner radius a new donut starts with.
const DefaultHole = 0.5

// Donut draws the first point of each series as a ring slice.
type Donut struct {
	TypeBase
}

func NewDonut() *Donut {
	return &Donut{TypeBase: newTypeBase(Options{
		"series": map[string]any{
			"pie": map[string]any{"show": true, "innerRadius": DefaultHole},
		},
	}, piePlugin)}
}

func (*Donut) Name() string { return "donut" }

func (d *Donut) SetOption(name string, value any) Type {
	switch name {
	case "hole":
		d.options.Set(value, "series", "pie", "innerRadius")
	case "showLabels":
		d.options.Set(value, "series", "pie", "label", "show")
	case "legend":
		d.options.Set(value, "legend", "show")
	default:
		d.setOption(name, value)
	}
	return d
}

var typeFactories = map[string]func() Type{
	"bar":   func() Type { return NewBar() },
	"line":  func() Type { return NewLine() },
	"donut": func() Type { return NewDonut() },
}

// NewType returns a fresh chart type by name.
func NewType(name string) (Type, error) {
	factory, ok := typeFactories[name]
	if !ok {
		return nil, fmt.Errorf("unknown chart type %q (known: %v)", name, TypeNames())
	}
	return factory(), nil
}

// TypeNames lists the registered chart type names, sorted.
func TypeNames() []string {
	names := make([]string, 0, len(typeFactories))
	for n := range typeFactories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
