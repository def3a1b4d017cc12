package decoder

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wudi/glyphscan/glyph"
	"github.com/wudi/glyphscan/observability"
	"github.com/wudi/glyphscan/raster"
)

// frame draws rows of '#'/' ' inside a solid border of the default thickness
// and upsamples every pixel to a scale×scale block.
func frame(rows ...string) raster.Gray {
	const b = raster.DefaultBorder
	const s = raster.DefaultScale
	w, h := len(rows[0])+2*b, len(rows)+2*b
	img := raster.Gray{Width: w * s, Height: h * s, Pix: make([]uint8, w*s*h*s)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			on := y < b || y >= h-b || x < b || x >= w-b
			if !on {
				on = rows[y-b][x-b] == '#'
			}
			if !on {
				continue
			}
			for dy := 0; dy < s; dy++ {
				for dx := 0; dx < s; dx++ {
					img.Pix[(y*s+dy)*img.Width+x*s+dx] = 255
				}
			}
		}
	}
	return img
}

func TestDecodeTwoLines(t *testing.T) {
	img := frame(
		"     ",
		" #   ",
		"#    ",
		"     ",
		"     ",
		" #   ",
		"##   ",
		"     ",
	)
	doc, err := New().Decode(context.Background(), img)
	require.NoError(t, err)
	assert.Equal(t, [][]glyph.Symbol{{glyph.Digit(0)}, {glyph.Digit(1)}}, doc.Lines)
}

func TestDecodeSeveralGlyphsPerLine(t *testing.T) {
	img := frame(
		" #   #       ",
		"#   ##       ",
		"             ",
		" ##   ##   ##",
		"# #  ###  #  ",
		"#    #    ## ",
		"             ",
		"####         ",
	)
	doc, err := New().Decode(context.Background(), img)
	require.NoError(t, err)
	assert.Equal(t, [][]glyph.Symbol{
		{glyph.Digit(0), glyph.Digit(1)},
		{glyph.Digit(2), glyph.Digit(3), glyph.Digit(4)},
		{glyph.Ellipsis},
	}, doc.Lines)
	assert.Empty(t, doc.Unknown())
	assert.Equal(t, 6, doc.SymbolCount())
}

func TestDecodeReportsUnknownInline(t *testing.T) {
	img := frame(
		"###  #",
		"###  #",
		"###   ",
	)
	rec := &recordingLogger{}
	doc, err := New(WithLogger(rec)).Decode(context.Background(), img)
	require.NoError(t, err)
	require.Len(t, doc.Lines, 1)
	require.Len(t, doc.Lines[0], 2)

	unknown := doc.Unknown()
	require.Len(t, unknown, 2)
	assert.Equal(t, []string{"###", "###", "###"}, unknown[0].Glyph.Rows())
	assert.Equal(t, []string{"#", "#", " "}, unknown[1].Glyph.Rows())
	assert.Equal(t, 2, rec.count("unknown glyph"))
	assert.Equal(t, 1, rec.count("decoded image"))
}

func TestDecodeFormatViolation(t *testing.T) {
	img := frame("#")
	img.Pix[0] = 17
	_, err := New().Decode(context.Background(), img)
	require.ErrorIs(t, err, raster.ErrFormat)
	assert.True(t, strings.HasPrefix(err.Error(), "binarize: "))
}

func TestDecodeShapeViolation(t *testing.T) {
	img := raster.Gray{Width: 12, Height: 12, Pix: make([]uint8, 144)}
	_, err := New().Decode(context.Background(), img)
	assert.ErrorIs(t, err, raster.ErrShape)
}

func TestDecodeCustomScaleAndBorder(t *testing.T) {
	grid := raster.Gray{Width: 3, Height: 4, Pix: []uint8{
		0, 0, 0,
		0, 255, 0,
		0, 255, 0,
		0, 0, 0,
	}}
	doc, err := New(WithScale(1), WithBorder(0)).Decode(context.Background(), grid)
	require.NoError(t, err)
	assert.Equal(t, [][]glyph.Symbol{{glyph.Digit(1)}}, doc.Lines)
}

func TestDecodeCustomTable(t *testing.T) {
	tbl := glyph.NewTable()
	require.NoError(t, tbl.AddRows(glyph.Digit(9), "#", "#"))
	grid := raster.Grid{{raster.On}, {raster.On}}
	doc, err := New(WithTable(tbl)).DecodeGrid(context.Background(), grid)
	require.NoError(t, err)
	assert.Equal(t, [][]glyph.Symbol{{glyph.Digit(9)}}, doc.Lines)
}

func TestDecodeConcurrentMatchesSequential(t *testing.T) {
	rows := []string{}
	for i := 0; i < 9; i++ {
		rows = append(rows, " ## #    ", "#   ## ##", "#       #", "         ")
	}
	img := frame(rows...)
	seq, err := New().Decode(context.Background(), img)
	require.NoError(t, err)
	par, err := New(WithConcurrency(4)).Decode(context.Background(), img)
	require.NoError(t, err)
	require.Len(t, seq.Lines, 9)
	assert.Equal(t, seq, par)
}

func TestDecodeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Decode(ctx, frame("#", "#"))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = New(WithConcurrency(2)).Decode(ctx, frame("#", " ", "#"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeMetrics(t *testing.T) {
	m := &recordingMetrics{counts: map[string]int{}}
	_, err := New(WithMetrics(m)).Decode(context.Background(), frame(
		" #  ###",
		"#   ###",
	))
	require.NoError(t, err)
	assert.Equal(t, 1, m.counts[observability.MetricLineCount])
	assert.Equal(t, 2, m.counts[observability.MetricSymbolCount])
	assert.Equal(t, 1, m.counts[observability.MetricUnknownCount])
	assert.Equal(t, 1, m.observed)
}

func TestNilOptionsKeepDefaults(t *testing.T) {
	d := New(WithLogger(nil), WithTracer(nil), WithMetrics(nil), WithTable(nil))
	doc, err := d.DecodeGrid(context.Background(), raster.Grid{{raster.On}, {raster.On}})
	require.NoError(t, err)
	assert.Equal(t, [][]glyph.Symbol{{glyph.Digit(1)}}, doc.Lines)
}

type recordingLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (r *recordingLogger) record(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recordingLogger) count(msg string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, m := range r.msgs {
		if m == msg {
			n++
		}
	}
	return n
}

func (r *recordingLogger) Debug(msg string, _ ...observability.Field) { r.record(msg) }
func (r *recordingLogger) Info(msg string, _ ...observability.Field)  { r.record(msg) }
func (r *recordingLogger) Warn(msg string, _ ...observability.Field)  { r.record(msg) }
func (r *recordingLogger) Error(msg string, _ ...observability.Field) { r.record(msg) }
func (r *recordingLogger) With(...observability.Field) observability.Logger {
	return r
}

type recordingMetrics struct {
	counts   map[string]int
	observed int
}

func (m *recordingMetrics) ObserveDuration(string, time.Duration) { m.observed++ }
func (m *recordingMetrics) Add(name string, n int)                { m.counts[name] += n }

func TestDecodeGridRejectsRaggedRows(t *testing.T) {
	grid := raster.Grid{{raster.On, raster.On}, {raster.On}}
	_, err := New().DecodeGrid(context.Background(), grid)
	assert.ErrorIs(t, err, raster.ErrShape)
}
