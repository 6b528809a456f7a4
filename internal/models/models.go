package models

// Document is the on-disk description of a page of charts.
type Document struct {
	Title     string            `yaml:"title" json:"title"`
	JSPrefix  string            `yaml:"js_prefix" json:"js_prefix"`
	Renderers []string          `yaml:"renderers" json:"renderers"` // Outermost first, e.g. ["title"]
	Style     []StyleEntry      `yaml:"style" json:"style"`         // Applied to every chart unless overridden
	Charts    []ChartDefinition `yaml:"charts" json:"charts"`
}

// StyleEntry is one inline style declaration. A list keeps the declaration
// order stable, which a YAML mapping would not.
type StyleEntry struct {
	Key   string `yaml:"key" json:"key"`
	Value string `yaml:"value" json:"value"`
}

// ChartDefinition describes a single chart.
type ChartDefinition struct {
	Name        string             `yaml:"name" json:"name"` // Used as the div id
	Title       string             `yaml:"title" json:"title"`
	Type        string             `yaml:"type" json:"type"` // bar, line or donut
	Description string             `yaml:"description" json:"description"`
	Options     []OptionEntry      `yaml:"options" json:"options"`
	Style       []StyleEntry       `yaml:"style" json:"style"`
	Series      []SeriesDefinition `yaml:"series" json:"series"`
}

// OptionEntry is a named option passed through the chart type's SetOption.
// Order matters because later options may overwrite earlier ones.
type OptionEntry struct {
	Name  string `yaml:"name" json:"name"`
	Value any    `yaml:"value" json:"value"`
}

// SeriesDefinition holds one labelled data series.
type SeriesDefinition struct {
	Label string       `yaml:"label" json:"label"`
	Data  [][2]float64 `yaml:"data" json:"data"`
}

// ChartSummary is what the JSON report emits per chart.
type ChartSummary struct {
	Name    string         `json:"name"`
	Title   string         `json:"title"`
	Type    string         `json:"type"`
	Library string         `json:"library"`
	Files   []string       `json:"files"`
	Options map[string]any `json:"options"`
	Markup  string         `json:"markup"`
}
