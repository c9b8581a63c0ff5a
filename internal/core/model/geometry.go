package model

// Geometry is the derived presentation size of the experiment area.
type Geometry struct {
	NodeWidth   float64
	FittsWidth  float64
	FittsHeight float64
}

// NewGeometry computes node width, total span (2*width + distance) and the
// experiment height (viewport height minus FittsHeightOffset).
func NewGeometry(width, distance, viewportHeight float64) Geometry {
	return Geometry{
		NodeWidth:   width,
		FittsWidth:  Span(width, distance),
		FittsHeight: viewportHeight - FittsHeightOffset,
	}
}

// Span returns the total width covered by both targets and the gap between them.
func Span(width, distance float64) float64 {
	return 2*width + distance
}
