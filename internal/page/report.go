package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/user/altamira-go/internal/chart"
	"github.com/user/altamira-go/internal/models"
	"github.com/user/altamira-go/internal/renderer"
	"github.com/yuin/goldmark"
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

// Page is a titled set of charts sharing one renderer chain.
type Page struct {
	Title    string
	JSPrefix string
	Chain    *renderer.Chain
	Items    []Item
}

// ReportAdapter defines the interface for generating different output formats.
type ReportAdapter interface {
	PrepareData(p *Page) error
	Write(outputFilePath string) error
}

// --- JSON Report Adapter ---

// JSONReportAdapter summarizes each chart's options, files and markup.
type JSONReportAdapter struct {
	reportData []byte
}

func (jra *JSONReportAdapter) PrepareData(p *Page) error {
	it := NewIterator(p.Chain, p.Items)
	summaries := make([]models.ChartSummary, 0, len(p.Items))
	for it.Next() {
		c := it.Item().Chart
		summaries = append(summaries, models.ChartSummary{
			Name:    c.Name(),
			Title:   c.Title(),
			Type:    c.Type().Name(),
			Library: c.Library(),
			Files:   c.Files(),
			Options: c.Type().Options(),
			Markup:  it.Markup(),
		})
	}

	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal charts to JSON: %w", err)
	}
	jra.reportData = data
	return nil
}

func (jra *JSONReportAdapter) Write(outputFilePath string) error {
	return writeFile(outputFilePath, jra.reportData)
}

// --- HTML Report Adapter ---

// HTMLReportAdapter renders a standalone HTML page.
type HTMLReportAdapter struct {
	// SkipPreviews leaves out the static images shown without JavaScript.
	SkipPreviews bool

	reportBuf bytes.Buffer
	now       func() time.Time
}

type htmlChart struct {
	Title       string
	Markup      template.HTML
	Preview     template.URL
	Description template.HTML
}

var funcMap = template.FuncMap{
	"FormatDateTime": func(t time.Time) string {
		return t.Format("2006-01-02 15:04:05 MST")
	},
}

func (hra *HTMLReportAdapter) PrepareData(p *Page) error {
	tmpl, err := template.New("page.html.tmpl").Funcs(funcMap).ParseFS(templateFS, "templates/page.html.tmpl")
	if err != nil {
		return fmt.Errorf("failed to parse HTML template: %w", err)
	}

	md := goldmark.New()
	it := NewIterator(p.Chain, p.Items)
	var charts []htmlChart
	for it.Next() {
		c := it.Item().Chart
		hc := htmlChart{
			Title:  c.Title(),
			Markup: template.HTML(it.Markup()),
		}
		if !hra.SkipPreviews {
			if img, err := chartPreview(c); err != nil {
				log.Printf("Warning: no preview for chart %s: %v", c.Name(), err)
			} else {
				hc.Preview = img
			}
		}
		if c.Description() != "" {
			var desc bytes.Buffer
			if err := md.Convert([]byte(c.Description()), &desc); err != nil {
				return fmt.Errorf("failed to convert description of chart %s: %w", c.Name(), err)
			}
			hc.Description = template.HTML(desc.String())
		}
		charts = append(charts, hc)
	}

	var files, scripts bytes.Buffer
	if err := it.WriteFiles(&files, p.JSPrefix); err != nil {
		return err
	}
	if err := it.WriteScripts(&scripts); err != nil {
		return err
	}

	now := time.Now
	if hra.now != nil {
		now = hra.now
	}
	templateData := struct {
		Title     string
		Charts    []htmlChart
		Files     template.HTML
		Scripts   template.HTML
		Generated time.Time
	}{
		Title:     p.Title,
		Charts:    charts,
		Files:     template.HTML(files.String()),
		Scripts:   template.HTML(scripts.String()),
		Generated: now(),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return fmt.Errorf("failed to execute HTML template: %w", err)
	}
	hra.reportBuf = buf
	return nil
}

func (hra *HTMLReportAdapter) Write(outputFilePath string) error {
	return writeFile(outputFilePath, hra.reportBuf.Bytes())
}

// Bytes returns the rendered page.
func (hra *HTMLReportAdapter) Bytes() []byte {
	return hra.reportBuf.Bytes()
}

func chartPreview(c *chart.Chart) (template.URL, error) {
	encoded, err := chart.PreviewBase64(c)
	if err != nil {
		return "", err
	}
	return template.URL("data:image/png;base64," + encoded), nil
}

func writeFile(outputFilePath string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(outputFilePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory for report file %s: %w", outputFilePath, err)
	}
	return os.WriteFile(outputFilePath, data, 0644)
}
