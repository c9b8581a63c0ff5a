package fitts

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/paul0314/fitts-experiment/internal/core/experiment"
	"github.com/paul0314/fitts-experiment/internal/core/model"
	"github.com/paul0314/fitts-experiment/internal/core/report"
)

// Element names of the presentation surface.
const (
	ElementStartButton  = "startButton"
	ElementLeftNode     = "leftNode"
	ElementRightNode    = "rightNode"
	ElementDialog       = "dialog"
	ElementDistance     = "fdistance"
	ElementWidth        = "fwidth"
	ElementValues       = "fvalues"
	ElementExperiment   = "fitts-experiment"
	ElementResults      = "results"
	ElementReturnButton = "return-button"
)

// View renders the experiment into a fyne window.
type View struct {
	window   fyne.Window
	elements map[string]fyne.CanvasObject

	startButton *widget.Button
	leftNode    *target
	rightNode   *target
	fdistance   *widget.Entry
	fwidth      *widget.Entry
	fvalues     *widget.Entry
	dialog      *fyne.Container
	fitts       *fyne.Container
	results     *fyne.Container

	screen         model.Screen
	geometry       model.Geometry
	viewportHeight float64
	onRestart      func()
}

// NewView builds every screen, installs them as the window content and shows
// the configuration dialog. seed is displayed in the inputs only; it reaches
// the model through explicit change events.
func NewView(window fyne.Window, seed model.Config) *View {
	view := &View{
		window:   window,
		elements: make(map[string]fyne.CanvasObject),
	}

	view.viewportHeight = float64(window.Canvas().Size().Height)
	view.geometry = seed.Geometry(view.viewportHeight)

	view.fdistance = widget.NewEntry()
	view.fwidth = widget.NewEntry()
	view.fvalues = widget.NewEntry()
	view.startButton = widget.NewButton("Start", nil)
	view.startButton.Importance = widget.HighImportance

	form := container.NewVBox(
		widget.NewLabelWithStyle("Fitts's law experiment", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		inputRow("Distance", view.fdistance, "px"),
		inputRow("Width", view.fwidth, "px"),
		inputRow("Trials", view.fvalues, ""),
	)
	view.dialog = container.NewBorder(nil, container.NewHBox(layout.NewSpacer(), view.startButton), nil, nil, form)

	view.leftNode = newTarget(experiment.LeftNodeID, classActive)
	view.rightNode = newTarget(experiment.RightNodeID, classInactive)
	view.fitts = container.New(&fittsLayout{view: view}, view.leftNode, view.rightNode)

	view.results = container.NewVBox()

	view.elements[ElementStartButton] = view.startButton
	view.elements[ElementLeftNode] = view.leftNode
	view.elements[ElementRightNode] = view.rightNode
	view.elements[ElementDialog] = view.dialog
	view.elements[ElementDistance] = view.fdistance
	view.elements[ElementWidth] = view.fwidth
	view.elements[ElementValues] = view.fvalues
	view.elements[ElementExperiment] = view.fitts
	view.elements[ElementResults] = view.results

	window.SetContent(container.NewStack(view.dialog, view.fitts, view.results))
	view.ShowDialog()

	view.fdistance.SetText(model.FormatInput(seed.Distance))
	view.fwidth.SetText(model.FormatInput(seed.Width))
	view.fvalues.SetText(model.FormatInput(seed.Trials))

	return view
}

func inputRow(label string, entry *widget.Entry, unit string) fyne.CanvasObject {
	return container.NewBorder(nil, nil, widget.NewLabel(label), widget.NewLabel(unit), entry)
}

// Element returns a named presentation element, or nil if it does not exist.
func (view *View) Element(name string) fyne.CanvasObject {
	return view.elements[name]
}

// Screen returns the visible screen.
func (view *View) Screen() model.Screen {
	return view.screen
}

// Geometry returns the geometry last applied to the targets.
func (view *View) Geometry() model.Geometry {
	return view.geometry
}

// BindTargetClick reports clicks on the left (1) and right (2) targets.
func (view *View) BindTargetClick(handler func(id int)) {
	view.leftNode.onTapped = func() {
		handler(experiment.LeftNodeID)
	}
	view.rightNode.onTapped = func() {
		handler(experiment.RightNodeID)
	}
}

// BindWidthChange reports every edit of the width input.
func (view *View) BindWidthChange(handler func(width float64)) {
	bindNumericInput(view.fwidth, handler)
}

// BindDistanceChange reports every edit of the distance input.
func (view *View) BindDistanceChange(handler func(distance float64)) {
	bindNumericInput(view.fdistance, handler)
}

// BindValuesChange reports every edit of the trials input.
func (view *View) BindValuesChange(handler func(trials float64)) {
	bindNumericInput(view.fvalues, handler)
}

func bindNumericInput(entry *widget.Entry, handler func(float64)) {
	entry.OnChanged = func(text string) {
		handler(model.ParseInput(text))
	}
}

// BindStartFitts reports taps on the start button.
func (view *View) BindStartFitts(handler func()) {
	view.startButton.OnTapped = handler
}

// BindRestart sets the action behind the results screen's return button.
func (view *View) BindRestart(handler func()) {
	view.onRestart = handler
}

// DisplayStatus marks exactly one target active.
func (view *View) DisplayStatus(leftActive bool) {
	if leftActive {
		view.leftNode.setClass(classActive)
		view.rightNode.setClass(classInactive)
		return
	}
	view.leftNode.setClass(classInactive)
	view.rightNode.setClass(classActive)
}

// UpdateNodeGeometry resizes the targets to width and spaces them distance apart.
func (view *View) UpdateNodeGeometry(width, distance float64) {
	view.geometry = model.NewGeometry(width, distance, view.viewportHeight)
	view.fitts.Refresh()
}

// ShowDialog shows the configuration screen.
func (view *View) ShowDialog() {
	view.show(model.ScreenDialog)
}

// ShowFitts shows the experiment screen.
func (view *View) ShowFitts() {
	view.show(model.ScreenFitts)
}

// DisplayResults replaces the results screen with the report and shows it.
func (view *View) DisplayResults(distance, width float64, times []time.Duration) {
	view.show(model.ScreenResults)

	summary := report.New(distance, width, times)
	objects := make([]fyne.CanvasObject, 0, 5)
	for _, line := range summary.Lines() {
		objects = append(objects, widget.NewLabelWithStyle(line, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	}
	if chart := summary.Chart(); chart != "" {
		objects = append(objects, widget.NewLabelWithStyle(chart, fyne.TextAlignLeading, fyne.TextStyle{Monospace: true}))
	}

	returnButton := widget.NewButton("Back", view.reset)
	view.elements[ElementReturnButton] = returnButton
	objects = append(objects, returnButton)

	view.results.Objects = objects
	view.results.Refresh()
}

func (view *View) reset() {
	if view.onRestart != nil {
		view.onRestart()
	}
}

func (view *View) show(screen model.Screen) {
	view.screen = screen
	setVisible(view.dialog, screen == model.ScreenDialog)
	setVisible(view.fitts, screen == model.ScreenFitts)
	setVisible(view.results, screen == model.ScreenResults)
}

func setVisible(object fyne.CanvasObject, visible bool) {
	if visible {
		object.Show()
		return
	}
	object.Hide()
}
