package fitts

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

const (
	classActive   = "active"
	classInactive = "inactive"
)

var (
	activeColor   = color.NRGBA{R: 232, G: 190, B: 66, A: 255}
	inactiveColor = color.NRGBA{R: 90, G: 90, B: 100, A: 255}
)

// target is a clickable experiment region styled by its class.
type target struct {
	widget.BaseWidget
	id         int
	class      string
	background *canvas.Rectangle
	onTapped   func()
}

var _ fyne.Tappable = (*target)(nil)

func newTarget(id int, class string) *target {
	node := &target{
		id:         id,
		background: canvas.NewRectangle(inactiveColor),
	}
	node.ExtendBaseWidget(node)
	node.setClass(class)
	return node
}

func (node *target) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(node.background)
}

// Tapped forwards a completed click to the bound handler.
func (node *target) Tapped(*fyne.PointEvent) {
	if node.onTapped != nil {
		node.onTapped()
	}
}

func (node *target) setClass(class string) {
	node.class = class
	if class == classActive {
		node.background.FillColor = activeColor
	} else {
		node.background.FillColor = inactiveColor
	}
	node.background.Refresh()
}
