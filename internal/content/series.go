// Package content holds the literal data rendered by the Tutor page.
//
// Every value here is an illustrative constant. Nothing in the repository
// measures or aggregates these numbers.
package content

// ChartSeriesPoint is a named category paired with a magnitude.
type ChartSeriesPoint struct {
	Name  string
	Value float64
}

// ColorPalette is an ordered list of CSS colors indexed cyclically.
type ColorPalette []string

// Color returns the color for category position i.
// An empty palette yields currentColor.
func (p ColorPalette) Color(i int) string {
	if len(p) == 0 {
		return "currentColor"
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}

// GridSpec describes a fixed grid of on/off cells.
type GridSpec struct {
	Cells    int
	Columns  int
	Inactive []int
}

// IsActive reports whether cell i is drawn as active.
func (g GridSpec) IsActive(i int) bool {
	for _, off := range g.Inactive {
		if off == i {
			return false
		}
	}
	return true
}

// IntensityFill is the single fill used by the intensity bar chart.
const IntensityFill = "#334155"

var (
	intensitySeries = []ChartSeriesPoint{
		{Name: "S1", Value: 4},
		{Name: "S2", Value: 5},
		{Name: "S3", Value: 3},
		{Name: "S4", Value: 6},
		{Name: "S5", Value: 5},
		{Name: "S6", Value: 4},
		{Name: "S7", Value: 5},
	}

	attritionSeries = []ChartSeriesPoint{
		{Name: "Remaining", Value: 91},
		{Name: "Attrited", Value: 9},
	}

	attritionPalette = ColorPalette{"#334155", "#94a3b8"}

	// percent heights of the study time columns
	studyTimeBars = []float64{20, 40, 60, 50, 80, 55, 65}

	frequencyGrid = GridSpec{
		Cells:    35,
		Columns:  7,
		Inactive: []int{2, 9, 16, 23, 30, 6, 13, 27},
	}
)

// AttritionBlocks is the number of filler blocks beside the attrition donut.
const AttritionBlocks = 8

// IntensitySeries returns the weekly pedagogical request series.
func IntensitySeries() []ChartSeriesPoint {
	return append([]ChartSeriesPoint(nil), intensitySeries...)
}

// AttritionSeries returns the session completion split.
func AttritionSeries() []ChartSeriesPoint {
	return append([]ChartSeriesPoint(nil), attritionSeries...)
}

// AttritionPalette returns the colors of the attrition donut.
func AttritionPalette() ColorPalette {
	return append(ColorPalette(nil), attritionPalette...)
}

// StudyTimeBars returns the bar heights, in percent, of the study time card.
func StudyTimeBars() []float64 {
	return append([]float64(nil), studyTimeBars...)
}

// FrequencyGrid returns the session frequency grid layout.
func FrequencyGrid() GridSpec {
	g := frequencyGrid
	g.Inactive = append([]int(nil), frequencyGrid.Inactive...)
	return g
}
