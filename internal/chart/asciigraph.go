package chart

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/filmdash/internal/format"
)

var emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)

// AsciiGraph draws bar charts as plateaus on an asciigraph line plot.
type AsciiGraph struct{}

type graphChart struct {
	view string
}

func (c *graphChart) View() string { return c.view }
func (c *graphChart) Destroy()     { c.view = "" }

func (AsciiGraph) Draw(ds Dataset, opts Options) (Chart, error) {
	if len(ds.Values) == 0 {
		return &graphChart{view: emptyStyle.Render("no films to chart")}, nil
	}

	barWidth := max(opts.BarWidth, 2)
	if n := len(ds.Values); opts.Width/n > barWidth {
		barWidth = opts.Width / n
	}

	// A leading and a per-bar zero column give every plateau two edges.
	series := make([]float64, 0, 1+len(ds.Values)*barWidth)
	series = append(series, 0)
	for _, v := range ds.Values {
		for i := 0; i < barWidth-1; i++ {
			series = append(series, v)
		}
		series = append(series, 0)
	}

	graphOpts := []asciigraph.Option{
		asciigraph.Height(max(opts.Height, 2)),
		asciigraph.Precision(0),
	}
	if opts.BeginAtZero {
		graphOpts = append(graphOpts, asciigraph.LowerBound(0))
	}
	plot := asciigraph.Plot(series, graphOpts...)

	valueFormat := opts.ValueFormat
	if valueFormat == nil {
		valueFormat = format.Currency
	}
	plot, axisCol := rewriteAxis(plot, valueFormat)

	labels := make([]string, len(ds.Labels))
	for i, l := range ds.Labels {
		labels[i] = format.Truncate(l, opts.LabelMax)
	}
	var axis string
	if opts.LabelRotation == 0 {
		axis = horizontalLabels(labels, axisCol+2, barWidth)
	} else {
		axis = diagonalLabels(labels, axisCol+2, barWidth)
	}

	style := lipgloss.NewStyle()
	if opts.Color != "" {
		style = style.Foreground(lipgloss.Color(opts.Color))
	}
	return &graphChart{view: style.Render(plot) + "\n" + axis}, nil
}

// rewriteAxis replaces the numeric tick labels in front of each axis rune
// with formatted values and realigns the rows. It returns the axis column.
func rewriteAxis(plot string, valueFormat func(float64) string) (string, int) {
	lines := strings.Split(plot, "\n")
	labels := make([]string, len(lines))
	rests := make([]string, len(lines))
	hasAxis := make([]bool, len(lines))
	width := 0

	for i, line := range lines {
		r := []rune(line)
		idx := axisIndex(r)
		if idx < 0 {
			rests[i] = line
			continue
		}
		hasAxis[i] = true
		raw := strings.TrimSpace(string(r[:idx]))
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			labels[i] = valueFormat(v)
		} else {
			labels[i] = raw
		}
		rests[i] = string(r[idx:])
		width = max(width, len([]rune(labels[i])))
	}

	var b strings.Builder
	for i := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if hasAxis[i] {
			b.WriteString(strings.Repeat(" ", width-len([]rune(labels[i]))))
			b.WriteString(labels[i])
			b.WriteByte(' ')
		}
		b.WriteString(rests[i])
	}
	return b.String(), width + 1
}

func axisIndex(r []rune) int {
	for i, c := range r {
		if c == '┤' || c == '┼' {
			return i
		}
	}
	return -1
}

// diagonalLabels writes each label down and to the right from its bar, the
// terminal equivalent of a 45 degree rotation.
func diagonalLabels(labels []string, start, barWidth int) string {
	rows := 0
	for _, l := range labels {
		rows = max(rows, len([]rune(l)))
	}
	width := start + len(labels)*barWidth + rows
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	for i, l := range labels {
		col := start + i*barWidth
		for j, c := range []rune(l) {
			grid[j][col+j] = c
		}
	}

	out := make([]string, rows)
	for i, row := range grid {
		out[i] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(out, "\n")
}

func horizontalLabels(labels []string, start, barWidth int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", start))
	for _, l := range labels {
		r := []rune(l)
		if len(r) > barWidth-1 {
			r = r[:barWidth-1]
		}
		b.WriteString(string(r))
		b.WriteString(strings.Repeat(" ", barWidth-len(r)))
	}
	return strings.TrimRight(b.String(), " ")
}
