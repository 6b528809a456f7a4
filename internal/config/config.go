// Package config loads page documents from YAML and builds the charts they
// describe.
package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"

	"github.com/fsnotify/fsnotify"
	"github.com/user/altamira-go/internal/chart"
	"github.com/user/altamira-go/internal/models"
	"github.com/user/altamira-go/internal/page"
	"github.com/user/altamira-go/internal/renderer"
	"gopkg.in/yaml.v3"
)

// chartName limits names to ids usable unquoted in a jQuery selector.
var chartName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// Load reads and parses a page document.
func Load(path string) (*models.Document, error) {
	if path == "" {
		return nil, fmt.Errorf("no document path given")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML page document.
func Parse(data []byte) (*models.Document, error) {
	var doc models.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return &doc, nil
}

// Build turns a document into a page ready for rendering.
func Build(doc *models.Document) (*page.Page, error) {
	chain := renderer.NewChain()
	for _, name := range doc.Renderers {
		if _, err := chain.PushByName(name); err != nil {
			return nil, err
		}
	}

	base := styleOptions(doc.Style)
	seen := make(map[string]bool, len(doc.Charts))
	items := make([]page.Item, 0, len(doc.Charts))
	for i, def := range doc.Charts {
		if def.Name == "" {
			return nil, fmt.Errorf("chart %d has no name", i+1)
		}
		if !chartName.MatchString(def.Name) {
			return nil, fmt.Errorf("chart name %q must start with a letter and contain only letters, digits, '-' or '_'", def.Name)
		}
		if seen[def.Name] {
			return nil, fmt.Errorf("duplicate chart name %q", def.Name)
		}
		seen[def.Name] = true

		c, err := buildChart(def)
		if err != nil {
			return nil, err
		}
		style := base
		for _, s := range def.Style {
			style = style.With(s.Key, s.Value)
		}
		items = append(items, page.Item{Chart: c, Style: style})
	}

	return &page.Page{
		Title:    doc.Title,
		JSPrefix: doc.JSPrefix,
		Chain:    chain,
		Items:    items,
	}, nil
}

func buildChart(def models.ChartDefinition) (*chart.Chart, error) {
	typeName := def.Type
	if typeName == "" {
		typeName = "line"
	}
	typ, err := chart.NewType(typeName)
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", def.Name, err)
	}

	c := chart.New(def.Name, typ).SetDescription(def.Description)
	if def.Title != "" {
		c.SetTitle(def.Title)
	}
	for _, opt := range def.Options {
		c.SetOption(opt.Name, opt.Value)
	}
	for _, s := range def.Series {
		c.AddSeries(s.Label, s.Data)
	}
	return c, nil
}

func styleOptions(entries []models.StyleEntry) renderer.StyleOptions {
	out := make(renderer.StyleOptions, 0, len(entries))
	for _, e := range entries {
		out = append(out, renderer.StyleOption{Key: e.Key, Value: e.Value})
	}
	return out
}

// Watch calls onChange each time the file at path is written, until ctx is
// done. Editors that replace the file are handled by watching its directory.
func Watch(ctx context.Context, path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Warning: watching %s: %v", path, err)
		}
	}
}
