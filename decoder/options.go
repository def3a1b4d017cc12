package decoder

import (
	"github.com/wudi/glyphscan/glyph"
	"github.com/wudi/glyphscan/observability"
)

// Option configures a Decoder.
type Option func(*Decoder)

// WithScale sets the number of source pixels per glyph pixel edge.
func WithScale(scale int) Option {
	return func(d *Decoder) { d.scale = scale }
}

// WithBorder sets the frame thickness stripped from every edge of the grid.
func WithBorder(thickness int) Option {
	return func(d *Decoder) { d.border = thickness }
}

// WithTable replaces the symbol table. A nil table keeps the current one.
func WithTable(t *glyph.Table) Option {
	return func(d *Decoder) {
		if t != nil {
			d.table = t
		}
	}
}

// WithConcurrency decodes up to n lines at once. Values below 2 keep decoding
// sequential.
func WithConcurrency(n int) Option {
	return func(d *Decoder) { d.concurrency = n }
}

// WithLogger sets the logger; nil restores the no-op logger.
func WithLogger(l observability.Logger) Option {
	return func(d *Decoder) {
		if l == nil {
			l = observability.NopLogger{}
		}
		d.logger = l
	}
}

// WithTracer sets the tracer; nil restores the no-op tracer.
func WithTracer(t observability.Tracer) Option {
	return func(d *Decoder) {
		if t == nil {
			t = observability.NopTracer()
		}
		d.tracer = t
	}
}

// WithMetrics sets the metrics sink; nil restores the no-op sink.
func WithMetrics(m observability.Metrics) Option {
	return func(d *Decoder) {
		if m == nil {
			m = observability.NopMetrics{}
		}
		d.metrics = m
	}
}
