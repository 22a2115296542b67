package server

import (
	"fmt"
	"math"

	"league_table/internal/domain/entity"
)

// Pie geometry follows the usual plotting defaults: the first wedge starts
// at 12 o'clock and wedges run counter-clockwise. The emphasized wedge is
// pulled out by explodeRatio of the radius.
const (
	pieSize       = 320
	pieMargin     = 40
	pieRadius     = 120.0
	pieStartAngle = 90.0
	explodeRatio  = 0.1
	labelDistance = 1.1
	pctDistance   = 0.6
	fullCircle    = 360.0
)

type pieChart struct {
	Team     string
	ViewSize int
	ViewBox  string
	Drawable bool
	Wedges   []pieWedge
	Legend   []entity.Slice
}

type pieWedge struct {
	Label    string
	Color    string
	Percent  string
	Path     string // empty for a wedge covering the whole circle
	CenterX  float64
	CenterY  float64
	Radius   float64
	LabelX   float64
	LabelY   float64
	PercentX float64
	PercentY float64
}

// newPieChart lays out the breakdown as SVG wedges. A breakdown with no
// games played or with a negative count has no meaningful pie and is
// reported as not drawable.
func newPieChart(breakdown entity.Breakdown) pieChart {
	chart := pieChart{
		Team:     breakdown.Team,
		ViewSize: pieSize + 2*pieMargin,
		ViewBox:  fmt.Sprintf("%d %d %d %d", -pieMargin, -pieMargin, pieSize+2*pieMargin, pieSize+2*pieMargin),
		Legend:   breakdown.Slices,
	}

	if breakdown.Played <= 0 {
		return chart
	}

	for _, slice := range breakdown.Slices {
		if slice.Count < 0 {
			return chart
		}
	}

	chart.Drawable = true
	center := float64(pieSize) / 2 //nolint:mnd
	start := pieStartAngle

	for _, slice := range breakdown.Slices {
		if slice.Count == 0 {
			continue
		}

		span := fullCircle * float64(slice.Count) / float64(breakdown.Played)
		chart.Wedges = append(chart.Wedges, newPieWedge(slice, center, start, span))
		start += span
	}

	return chart
}

func newPieWedge(slice entity.Slice, center, start, span float64) pieWedge {
	mid := start + span/2 //nolint:mnd
	cx, cy := center, center

	if slice.Emphasized {
		cx, cy = polar(cx, cy, explodeRatio*pieRadius, mid)
	}

	wedge := pieWedge{
		Label:   slice.Label,
		Color:   slice.Color,
		Percent: fmt.Sprintf("%.1f%%", slice.Percent),
		CenterX: cx,
		CenterY: cy,
		Radius:  pieRadius,
	}

	wedge.LabelX, wedge.LabelY = polar(cx, cy, labelDistance*pieRadius, mid)
	wedge.PercentX, wedge.PercentY = polar(cx, cy, pctDistance*pieRadius, mid)

	if span >= fullCircle {
		return wedge
	}

	x1, y1 := polar(cx, cy, pieRadius, start)
	x2, y2 := polar(cx, cy, pieRadius, start+span)

	largeArc := 0
	if span > fullCircle/2 { //nolint:mnd
		largeArc = 1
	}

	// Sweep flag 0 draws the arc counter-clockwise on screen.
	wedge.Path = fmt.Sprintf(
		"M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 0 %.2f %.2f Z",
		cx, cy, x1, y1, pieRadius, pieRadius, largeArc, x2, y2,
	)

	return wedge
}

// polar returns the point at distance r and angle degrees from (cx, cy),
// with angles measured counter-clockwise from 3 o'clock and y growing down.
func polar(cx, cy, r, degrees float64) (float64, float64) {
	rad := math.Mod(degrees, fullCircle) * math.Pi / 180 //nolint:mnd

	return cx + r*math.Cos(rad), cy - r*math.Sin(rad)
}
