package chart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"log"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Default preview size.
var (
	PreviewWidth  = 6 * vg.Inch
	PreviewHeight = 4 * vg.Inch
)

// Preview draws a static PNG of the chart, for pages viewed without
// JavaScript. Donut charts are drawn as bars of each series' first value.
func Preview(c *Chart, width, height vg.Length) ([]byte, error) {
	if len(c.series) == 0 {
		return nil, fmt.Errorf("no data to plot for chart: %s", c.name)
	}

	p := plot.New()
	p.Title.Text = c.title
	p.Legend.Top = true

	var err error
	switch c.typ.(type) {
	case *Line:
		err = addLines(p, c)
	case *Donut:
		err = addSlices(p, c)
	default:
		err = addBars(p, c)
	}
	if err != nil {
		return nil, err
	}
	p.Add(plotter.NewGrid())

	writer, err := p.WriterTo(width, height, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create plot writer: %w", err)
	}

	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write plot to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

// PreviewBase64 is Preview at the default size, base64 encoded for use in a
// data URI.
func PreviewBase64(c *Chart) (string, error) {
	png, err := Preview(c, PreviewWidth, PreviewHeight)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}

func addBars(p *plot.Plot, c *Chart) error {
	horizontal := c.typ.Options().Bool("bars", "horizontal")
	barWidth := vg.Points(12)
	n := len(c.series)

	var labels []string
	for i, s := range c.series {
		values := make(plotter.Values, len(s.Data))
		for j, pt := range s.Data {
			if horizontal {
				values[j] = pt[0]
			} else {
				values[j] = pt[1]
			}
			if i == 0 {
				labels = append(labels, strconv.FormatFloat(pointCategory(pt, horizontal), 'g', -1, 64))
			}
		}

		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return fmt.Errorf("failed to create bars for %s: %w", c.name, err)
		}
		bars.Color = plotutil.Color(i)
		bars.LineStyle.Width = vg.Length(0)
		bars.Horizontal = horizontal
		bars.Offset = barWidth * vg.Length(2*i-n+1) / 2
		p.Add(bars)
		if s.Label != "" {
			p.Legend.Add(s.Label, bars)
		}
	}

	if horizontal {
		p.NominalY(labels...)
	} else {
		p.NominalX(labels...)
	}
	return nil
}

func pointCategory(pt [2]float64, horizontal bool) float64 {
	if horizontal {
		return pt[1]
	}
	return pt[0]
}

func addLines(p *plot.Plot, c *Chart) error {
	for i, s := range c.series {
		pts := make(plotter.XYs, len(s.Data))
		for j, pt := range s.Data {
			pts[j] = plotter.XY{X: pt[0], Y: pt[1]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			// One bad series should not cost the whole preview.
			log.Printf("Warning: failed to create line %q for %s: %v", s.Label, c.name, err)
			continue
		}
		line.Color = plotutil.Color(i)
		line.LineStyle.Width = vg.Points(2)
		p.Add(line)
		if s.Label != "" {
			p.Legend.Add(s.Label, line)
		}
	}
	return nil
}

func addSlices(p *plot.Plot, c *Chart) error {
	values := make(plotter.Values, 0, len(c.series))
	labels := make([]string, 0, len(c.series))
	for i, s := range c.series {
		if len(s.Data) == 0 {
			continue
		}
		values = append(values, s.Data[0][1])
		label := s.Label
		if label == "" {
			label = strconv.Itoa(i + 1)
		}
		labels = append(labels, label)
	}
	if len(values) == 0 {
		return fmt.Errorf("no data to plot for chart: %s", c.name)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return fmt.Errorf("failed to create slices for %s: %w", c.name, err)
	}
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalX(labels...)
	return nil
}
