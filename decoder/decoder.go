// Package decoder runs the full pipeline from a grayscale raster to lines of
// symbols.
package decoder

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wudi/glyphscan/glyph"
	"github.com/wudi/glyphscan/observability"
	"github.com/wudi/glyphscan/raster"
	"github.com/wudi/glyphscan/segment"
)

// Document is the decoded content of one image, top to bottom.
type Document struct {
	Lines [][]glyph.Symbol
}

// Unknown returns every unrecognized symbol in reading order.
func (d Document) Unknown() []glyph.Symbol {
	var out []glyph.Symbol
	for _, line := range d.Lines {
		for _, s := range line {
			if s.IsUnknown() {
				out = append(out, s)
			}
		}
	}
	return out
}

// SymbolCount returns the number of symbols across all lines.
func (d Document) SymbolCount() int {
	n := 0
	for _, line := range d.Lines {
		n += len(line)
	}
	return n
}

// Decoder holds the format parameters and the ambient hooks. A Decoder is
// safe for concurrent use once built.
type Decoder struct {
	scale       int
	border      int
	table       *glyph.Table
	concurrency int
	logger      observability.Logger
	tracer      observability.Tracer
	metrics     observability.Metrics
}

// New returns a decoder for the default format: scale 4, border 2 and the
// built-in symbol table.
func New(opts ...Option) *Decoder {
	d := &Decoder{
		scale:   raster.DefaultScale,
		border:  raster.DefaultBorder,
		table:   glyph.DefaultTable(),
		logger:  observability.NopLogger{},
		tracer:  observability.NopTracer(),
		metrics: observability.NopMetrics{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Grid binarizes src and strips the border, returning the grid that line
// segmentation starts from.
func (d *Decoder) Grid(ctx context.Context, src raster.Gray) (raster.Grid, error) {
	_, span := d.tracer.StartSpan(ctx, observability.SpanBinarize)
	defer span.Finish()
	grid, err := raster.Binarize(src, d.scale)
	if err != nil {
		span.SetError(err)
		return nil, fmt.Errorf("binarize: %w", err)
	}
	if err := raster.StripBorder(&grid, d.border); err != nil {
		span.SetError(err)
		return nil, fmt.Errorf("strip border: %w", err)
	}
	span.SetTag("rows", grid.Height())
	span.SetTag("cols", grid.Width())
	return grid, nil
}

// Decode runs the whole pipeline on src. Format and shape violations abort
// the decode; unrecognized glyphs come back as Unknown symbols.
func (d *Decoder) Decode(ctx context.Context, src raster.Gray) (Document, error) {
	ctx, span := d.tracer.StartSpan(ctx, observability.SpanDecode)
	defer span.Finish()
	start := time.Now()

	grid, err := d.Grid(ctx, src)
	if err != nil {
		span.SetError(err)
		d.logger.Error("decode failed", observability.Error("error", err))
		return Document{}, err
	}
	doc, err := d.DecodeGrid(ctx, grid)
	if err != nil {
		span.SetError(err)
		return Document{}, err
	}

	elapsed := time.Since(start)
	d.metrics.ObserveDuration(observability.MetricDecodeTime, elapsed)
	d.logger.Info("decoded image",
		observability.Int("lines", len(doc.Lines)),
		observability.Int("symbols", doc.SymbolCount()),
		observability.Int("unknown", len(doc.Unknown())),
		observability.Duration("took", elapsed),
	)
	return doc, nil
}

// DecodeGrid decodes an already binarized and border-stripped grid. Ragged
// grids fail with a *raster.ShapeError.
func (d *Decoder) DecodeGrid(ctx context.Context, grid raster.Grid) (Document, error) {
	if err := grid.Validate(); err != nil {
		return Document{}, err
	}
	lines := segment.Lines(grid)
	out := make([][]glyph.Symbol, len(lines))

	if d.concurrency > 1 && len(lines) > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(d.concurrency)
		for i, line := range lines {
			i, line := i, line
			g.Go(func() error {
				syms, err := d.decodeLine(gctx, i, line)
				if err != nil {
					return err
				}
				out[i] = syms
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return Document{}, err
		}
	} else {
		for i, line := range lines {
			select {
			case <-ctx.Done():
				return Document{}, ctx.Err()
			default:
			}
			syms, err := d.decodeLine(ctx, i, line)
			if err != nil {
				return Document{}, err
			}
			out[i] = syms
		}
	}

	doc := Document{Lines: out}
	d.metrics.Add(observability.MetricLineCount, len(out))
	d.metrics.Add(observability.MetricSymbolCount, doc.SymbolCount())
	d.metrics.Add(observability.MetricUnknownCount, len(doc.Unknown()))
	return doc, nil
}

func (d *Decoder) decodeLine(ctx context.Context, index int, line raster.Grid) ([]glyph.Symbol, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_, span := d.tracer.StartSpan(ctx, observability.SpanLine)
	defer span.Finish()
	span.SetTag("line", index)

	glyphs := segment.Glyphs(line)
	syms := make([]glyph.Symbol, 0, len(glyphs))
	for col, raw := range glyphs {
		g, err := glyph.Normalize(raw)
		if err != nil {
			span.SetError(err)
			return nil, fmt.Errorf("line %d glyph %d: %w", index, col, err)
		}
		sym := d.table.Lookup(g)
		if sym.IsUnknown() {
			d.logger.Warn("unknown glyph",
				observability.Int("line", index),
				observability.Int("glyph", col),
				observability.Int("width", g.Width),
				observability.String("pixels", g.String()),
			)
		}
		syms = append(syms, sym)
	}
	d.logger.Debug("decoded line",
		observability.Int("line", index),
		observability.Int("rows", line.Height()),
		observability.Int("glyphs", len(syms)),
	)
	return syms, nil
}
