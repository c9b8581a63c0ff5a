package fitts

import (
	"math"

	"fyne.io/fyne/v2"
)

// fittsLayout places the two targets side by side: each target is
// geometry.NodeWidth wide and the outer edges are geometry.FittsWidth apart.
// The pair is centred in the available space.
type fittsLayout struct {
	view *View
}

func (layout *fittsLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	left := objects[0]
	right := objects[1]

	geometry := layout.view.geometry
	nodeWidth := presentable(geometry.NodeWidth)
	span := presentable(geometry.FittsWidth)
	if nodeWidth > span {
		span = nodeWidth
	}

	height := presentable(geometry.FittsHeight)
	if height == 0 || height > size.Height {
		height = size.Height
	}

	x := (size.Width - span) / 2
	if x < 0 {
		x = 0
	}
	y := (size.Height - height) / 2

	left.Move(fyne.NewPos(x, y))
	left.Resize(fyne.NewSize(nodeWidth, height))

	right.Move(fyne.NewPos(x+span-nodeWidth, y))
	right.Resize(fyne.NewSize(nodeWidth, height))
}

func (layout *fittsLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	geometry := layout.view.geometry
	return fyne.NewSize(presentable(geometry.FittsWidth), 0)
}

// presentable maps a geometry value to a drawable size. NaN, infinities and
// negative values collapse to zero.
func presentable(value float64) float32 {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}
	return float32(value)
}
