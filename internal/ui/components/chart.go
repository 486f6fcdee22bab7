package components

import (
	"math"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/projeto-tutor/tutor/internal/content"
)

// ColumnBars renders one flat column per height, each sized in percent of the container.
func ColumnBars(heights []float64) g.Node {
	return h.Div(
		h.Class("column-bars flex gap-1 items-end h-full opacity-50 pb-2"),
		g.Map(heights, func(pct float64) g.Node {
			return h.Div(
				h.Class("bar bg-slate-500 w-full"),
				h.Style("height: "+num(clamp(pct, 0, 100))+"%"),
			)
		}),
	)
}

// ActivityGrid renders the cells of grid, dimming the inactive ones.
func ActivityGrid(grid content.GridSpec) g.Node {
	cells := make([]g.Node, 0, max(grid.Cells, 0))
	for i := 0; i < grid.Cells; i++ {
		state, fill := "active", "bg-slate-500"
		if !grid.IsActive(i) {
			state, fill = "inactive", "bg-slate-800"
		}
		cells = append(cells, h.Div(
			h.Class("cell h-1.5 w-full rounded-sm "+fill),
			h.Data("state", state),
		))
	}
	return h.Div(
		h.Class("activity-grid w-full h-full flex flex-col justify-end pb-2 opacity-70"),
		h.Div(
			h.Class("grid gap-1"),
			h.Style("grid-template-columns: repeat("+strconv.Itoa(max(grid.Columns, 1))+", minmax(0, 1fr))"),
			g.Group(cells),
		),
	)
}

// BlockGrid renders n identical filler blocks in the given number of columns.
func BlockGrid(n, columns int) g.Node {
	blocks := make([]g.Node, 0, max(n, 0))
	for i := 0; i < n; i++ {
		blocks = append(blocks, h.Div(h.Class("block h-4 bg-slate-500")))
	}
	return h.Div(
		h.Class("block-grid grid gap-1"),
		h.Style("grid-template-columns: repeat("+strconv.Itoa(max(columns, 1))+", minmax(0, 1fr))"),
		g.Group(blocks),
	)
}

// chart canvas in SVG user units
const (
	barCanvasWidth  = 100.0
	barCanvasHeight = 50.0
	barGap          = 2.0
)

// BarChartProps configures BarChart.
type BarChartProps struct {
	Data []content.ChartSeriesPoint
	Fill string
}

// BarChart renders one rect per data point, scaled to the largest value.
func BarChart(p BarChartProps) g.Node {
	fill := p.Fill
	if fill == "" {
		fill = "currentColor"
	}

	var peak float64
	for _, d := range p.Data {
		peak = math.Max(peak, d.Value)
	}

	n := float64(len(p.Data))
	width := 0.0
	if n > 0 {
		width = (barCanvasWidth - barGap*(n-1)) / n
	}

	bars := make([]g.Node, 0, len(p.Data))
	for i, d := range p.Data {
		height := 0.0
		if peak > 0 && d.Value > 0 {
			height = barCanvasHeight * d.Value / peak
		}
		bars = append(bars, g.El("rect",
			g.Attr("x", num(float64(i)*(width+barGap))),
			g.Attr("y", num(barCanvasHeight-height)),
			g.Attr("width", num(width)),
			g.Attr("height", num(height)),
			g.Attr("fill", fill),
			g.Attr("data-name", d.Name),
		))
	}

	return svg("bar-chart", "0 0 "+num(barCanvasWidth)+" "+num(barCanvasHeight), bars)
}

// PieChartProps configures PieChart. Angles are in degrees.
type PieChartProps struct {
	Data         []content.ChartSeriesPoint
	Palette      content.ColorPalette
	InnerRadius  float64
	OuterRadius  float64
	PaddingAngle float64
}

// PieSegment is the geometry of one donut slice.
// Fraction is the share of the drawn arc, excluding padding.
type PieSegment struct {
	Name     string
	Value    float64
	Fraction float64
	Start    float64
	End      float64
	Fill     string
}

// PieSegments lays out the non-zero points of data counter-clockwise from 0°.
// Padding is only inserted when more than one segment is drawn.
func PieSegments(data []content.ChartSeriesPoint, palette content.ColorPalette, paddingAngle float64) []PieSegment {
	var total float64
	nonZero := 0
	for _, d := range data {
		if d.Value > 0 {
			total += d.Value
			nonZero++
		}
	}
	if total <= 0 {
		return nil
	}

	pad := 0.0
	if nonZero > 1 {
		pad = clamp(paddingAngle, 0, 360/float64(nonZero))
	}
	usable := 360 - pad*float64(nonZero)

	segments := make([]PieSegment, 0, nonZero)
	start := 0.0
	for i, d := range data {
		if d.Value <= 0 {
			continue
		}
		frac := d.Value / total
		end := start + usable*frac
		segments = append(segments, PieSegment{
			Name:     d.Name,
			Value:    d.Value,
			Fraction: frac,
			Start:    start,
			End:      end,
			Fill:     palette.Color(i),
		})
		start = end + pad
	}
	return segments
}

// PieChart renders a donut with one path per non-zero data point.
func PieChart(p PieChartProps) g.Node {
	outer := p.OuterRadius
	if outer <= 0 {
		outer = 35
	}
	inner := clamp(p.InnerRadius, 0, outer)

	size := outer * 2
	c := outer

	segments := PieSegments(p.Data, p.Palette, p.PaddingAngle)
	paths := make([]g.Node, 0, len(segments))
	for _, s := range segments {
		paths = append(paths, g.El("path",
			g.Attr("d", donutPath(c, c, inner, outer, s.Start, s.End)),
			g.Attr("fill", s.Fill),
			g.Attr("stroke", "none"),
			g.Attr("data-name", s.Name),
			g.Attr("data-fraction", num(s.Fraction)),
		))
	}

	return svg("pie-chart", "0 0 "+num(size)+" "+num(size), paths)
}

func svg(class, viewBox string, children []g.Node) g.Node {
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("class", class),
		g.Attr("viewBox", viewBox),
		g.Attr("width", "100%"),
		g.Attr("height", "100%"),
		g.Attr("preserveAspectRatio", "none"),
		g.Attr("role", "img"),
		g.Group(children),
	)
}

// donutPath draws the ring slice between start and end degrees.
// A full sweep is split in two arcs since SVG cannot draw a closed arc.
func donutPath(cx, cy, inner, outer, start, end float64) string {
	if end-start >= 359.999 {
		mid := start + 180
		return donutPath(cx, cy, inner, outer, start, mid) + " " + donutPath(cx, cy, inner, outer, mid, start+360)
	}

	large := "0"
	if end-start > 180 {
		large = "1"
	}

	ox1, oy1 := polar(cx, cy, outer, start)
	ox2, oy2 := polar(cx, cy, outer, end)

	var b strings.Builder
	b.WriteString("M" + num(ox1) + " " + num(oy1))
	b.WriteString(" A" + num(outer) + " " + num(outer) + " 0 " + large + " 0 " + num(ox2) + " " + num(oy2))
	if inner > 0 {
		ix2, iy2 := polar(cx, cy, inner, end)
		ix1, iy1 := polar(cx, cy, inner, start)
		b.WriteString(" L" + num(ix2) + " " + num(iy2))
		b.WriteString(" A" + num(inner) + " " + num(inner) + " 0 " + large + " 1 " + num(ix1) + " " + num(iy1))
	} else {
		b.WriteString(" L" + num(cx) + " " + num(cy))
	}
	b.WriteString(" Z")
	return b.String()
}

// polar maps an angle to SVG coordinates, counter-clockwise from 3 o'clock.
func polar(cx, cy, r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return cx + r*math.Cos(rad), cy - r*math.Sin(rad)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// num formats v with at most three decimals.
func num(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
