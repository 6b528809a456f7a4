package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/user/altamira-go/internal/chart"
	"github.com/user/altamira-go/internal/config"
	"github.com/user/altamira-go/internal/page"
)

var (
	// Used for flags.
	outputFilePath string
	watch          bool
	skipPreviews   bool

	rootCmd = &cobra.Command{
		Use:   "altamira",
		Short: "Altamira builds Flot chart pages from YAML documents.",
		Long: `A tool that turns a YAML description of charts into an HTML page
that draws them with the Flot library, or into a JSON summary of the
options each chart passes to it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	renderCmd = &cobra.Command{
		Use:   "render [DOCUMENT] [html|json]",
		Short: "Renders a chart document as an HTML page or JSON summary.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			docPath, format := args[0], args[1]
			if format != "html" && format != "json" {
				return fmt.Errorf("invalid output format '%s'. Must be 'html' or 'json'", format)
			}

			if outputFilePath == "" {
				base := strings.TrimSuffix(filepath.Base(docPath), filepath.Ext(docPath))
				outputFilePath = fmt.Sprintf("%s.%s", base, format)
			}
			absOutputFilePath, err := filepath.Abs(outputFilePath)
			if err != nil {
				return fmt.Errorf("invalid output file path '%s': %w", outputFilePath, err)
			}

			if err := renderDocument(docPath, format, absOutputFilePath); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			fmt.Printf("Watching %s for changes. Press Ctrl+C to stop.\n", docPath)
			return config.Watch(ctx, docPath, func() {
				if err := renderDocument(docPath, format, absOutputFilePath); err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				}
			})
		},
	}

	previewCmd = &cobra.Command{
		Use:   "preview [DOCUMENT] [CHART]",
		Short: "Writes a static PNG preview of one chart.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			docPath, name := args[0], args[1]
			p, err := loadPage(docPath)
			if err != nil {
				return err
			}

			var target *chart.Chart
			for _, item := range p.Items {
				if item.Chart.Name() == name {
					target = item.Chart
					break
				}
			}
			if target == nil {
				return fmt.Errorf("chart '%s' not found in %s", name, docPath)
			}

			if outputFilePath == "" {
				outputFilePath = name + ".png"
			}
			png, err := chart.Preview(target, chart.PreviewWidth, chart.PreviewHeight)
			if err != nil {
				return fmt.Errorf("failed to draw chart '%s': %w", name, err)
			}
			if err := os.WriteFile(outputFilePath, png, 0644); err != nil {
				return fmt.Errorf("failed to write preview to %s: %w", outputFilePath, err)
			}
			fmt.Printf("Preview written to: %s\n", outputFilePath)
			return nil
		},
	}
)

func loadPage(docPath string) (*page.Page, error) {
	doc, err := config.Load(docPath)
	if err != nil {
		return nil, err
	}
	p, err := config.Build(doc)
	if err != nil {
		return nil, fmt.Errorf("invalid document %s: %w", docPath, err)
	}
	return p, nil
}

func renderDocument(docPath, format, outputPath string) error {
	p, err := loadPage(docPath)
	if err != nil {
		return err
	}

	var adapter page.ReportAdapter
	if format == "html" {
		adapter = &page.HTMLReportAdapter{SkipPreviews: skipPreviews}
	} else {
		adapter = &page.JSONReportAdapter{}
	}

	fmt.Printf("Rendering %d charts from %s\n", len(p.Items), docPath)
	if err := adapter.PrepareData(p); err != nil {
		return fmt.Errorf("failed to prepare %s output: %w", format, err)
	}
	if err := adapter.Write(outputPath); err != nil {
		return fmt.Errorf("failed to write %s output to %s: %w", format, outputPath, err)
	}
	fmt.Printf("%s output generated successfully: %s\n", strings.ToUpper(format), outputPath)
	return nil
}

func init() {
	renderCmd.Flags().StringVarP(&outputFilePath, "output-file-path", "o", "", "Output file path")
	renderCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-render whenever the document changes")
	renderCmd.Flags().BoolVar(&skipPreviews, "no-previews", false, "Leave out static PNG previews from HTML output")
	previewCmd.Flags().StringVarP(&outputFilePath, "output-file-path", "o", "", "Output file path")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(previewCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
