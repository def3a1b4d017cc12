package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/wudi/glyphscan/decoder"
	"github.com/wudi/glyphscan/glyph"
	"github.com/wudi/glyphscan/imageio"
	"github.com/wudi/glyphscan/observability"
	"github.com/wudi/glyphscan/ocr"
	"github.com/wudi/glyphscan/ocr/tesseract"
	"github.com/wudi/glyphscan/raster"
	"github.com/wudi/glyphscan/render"
)

var errUnknownGlyphs = errors.New("unrecognized glyphs found")

type decodeOptions struct {
	format      string
	engine      string
	scale       int
	border      int
	table       string
	concurrency int
	strict      bool
	metricsFile string
}

func newDecodeCmd() *cobra.Command {
	var opts decodeOptions
	cmd := &cobra.Command{
		Use:   "decode <image>...",
		Short: "Decode images and print their symbols",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, opts, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.format, "format", "text", "Output format: text, json, markdown or html")
	f.StringVar(&opts.engine, "engine", "glyph", "Recognition engine: glyph or tesseract")
	f.IntVar(&opts.scale, "scale", raster.DefaultScale, "Source pixels per glyph pixel")
	f.IntVar(&opts.border, "border", raster.DefaultBorder, "Border thickness in glyph pixels")
	f.StringVar(&opts.table, "table", "", "YAML file with extra symbol shapes")
	f.IntVar(&opts.concurrency, "concurrency", 1, "Lines decoded in parallel")
	f.BoolVar(&opts.strict, "strict", false, "Fail when any glyph is not recognized")
	f.StringVar(&opts.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file")
	return cmd
}

// glyphOnlyFlags configure the glyph decoder and have no effect on other
// engines.
var glyphOnlyFlags = []string{"scale", "border", "table", "concurrency", "strict", "metrics-file"}

type writerFunc func(w io.Writer, source string, doc decoder.Document) error

var writers = map[string]writerFunc{
	"text": func(w io.Writer, _ string, doc decoder.Document) error {
		return render.Transcript(w, doc)
	},
	"json":     render.JSON,
	"markdown": render.Markdown,
	"html":     render.HTML,
}

func loadTable(path string) (*glyph.Table, error) {
	tbl := glyph.DefaultTable()
	if path == "" {
		return tbl, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()
	extra, err := glyph.LoadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tbl.Merge(extra)
	return tbl, nil
}

func runDecode(cmd *cobra.Command, opts decodeOptions, paths []string) error {
	logger, err := loggerFor(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if opts.engine == "tesseract" {
		if opts.format != "text" {
			return fmt.Errorf("engine tesseract only supports text output")
		}
		for _, name := range glyphOnlyFlags {
			if cmd.Flags().Changed(name) {
				return fmt.Errorf("--%s is not supported by engine tesseract", name)
			}
		}
		return runTesseract(cmd, paths)
	}
	if opts.engine != "glyph" {
		return fmt.Errorf("unknown engine %q", opts.engine)
	}
	write, ok := writers[opts.format]
	if !ok {
		return fmt.Errorf("unknown format %q", opts.format)
	}
	tbl, err := loadTable(opts.table)
	if err != nil {
		return err
	}

	var (
		reg     *prometheus.Registry
		metrics observability.Metrics
	)
	if opts.metricsFile != "" {
		reg = prometheus.NewRegistry()
		if metrics, err = observability.NewPrometheusMetrics(reg); err != nil {
			return fmt.Errorf("register metrics: %w", err)
		}
	}

	dec := decoder.New(
		decoder.WithScale(opts.scale),
		decoder.WithBorder(opts.border),
		decoder.WithTable(tbl),
		decoder.WithConcurrency(opts.concurrency),
		decoder.WithLogger(logger),
		decoder.WithMetrics(metrics),
	)

	unknown := 0
	for i, path := range paths {
		img, err := imageio.Load(path)
		if err != nil {
			return err
		}
		doc, err := dec.Decode(cmd.Context(), img)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		unknown += len(doc.Unknown())
		if opts.format == "text" && len(paths) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "== %s\n", path)
		}
		if err := write(out, path, doc); err != nil {
			return err
		}
	}

	if reg != nil {
		if err := prometheus.WriteToTextfile(opts.metricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	if opts.strict && unknown > 0 {
		return fmt.Errorf("%w: %d", errUnknownGlyphs, unknown)
	}
	return nil
}

func runTesseract(cmd *cobra.Command, paths []string) error {
	results, err := ocr.RecognizeFiles(cmd.Context(), tesseract.New(), paths, ocr.WithTesseractWhitelist(ocr.DigitWhitelist))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for i, res := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "== %s\n", paths[i])
		}
		fmt.Fprintln(out, res.PlainText)
	}
	return nil
}
