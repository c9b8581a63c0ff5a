package terminal

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paul0314/fitts-experiment/internal/core/experiment"
	"github.com/paul0314/fitts-experiment/internal/core/model"
	"github.com/paul0314/fitts-experiment/internal/core/report"
)

// DefaultScale is the number of pixels represented by one terminal cell.
const DefaultScale = 10.0

// Element names, shared with the desktop surface.
const (
	ElementDistance = "fdistance"
	ElementWidth    = "fwidth"
	ElementValues   = "fvalues"
)

const (
	focusDistance = iota
	focusWidth
	focusValues
	focusStart
	focusCount
)

// Rows of the dialog screen.
const (
	dialogTitleRow    = 0
	dialogFirstInput  = 2
	dialogStartRow    = 6
	experimentTopRow  = 2
	experimentMargin  = 1
	startLabel        = "[ Start ]"
	backLabel         = "[ Back ]"
	targetCell        = "█"
	inputLabelColumns = 10
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	focusStyle    = lipgloss.NewStyle().Reverse(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	reportStyle   = lipgloss.NewStyle().Bold(true)
)

type box struct {
	x, y, width, height int
}

func (b box) contains(x, y int) bool {
	return b.width > 0 && b.height > 0 && x >= b.x && x < b.x+b.width && y >= b.y && y < b.y+b.height
}

// View renders the experiment as a bubbletea screen. All input arrives
// through Update; render methods only change what Render draws next.
type View struct {
	scale  float64
	width  int
	height int

	screen     model.Screen
	focus      int
	inputs     [3]string
	leftActive bool
	nodeWidth  float64
	distance   float64
	geometry   model.Geometry
	summary    report.Report

	onClick    func(id int)
	onWidth    func(float64)
	onDistance func(float64)
	onValues   func(float64)
	onStart    func()
	onRestart  func()
}

// NewView creates the terminal surface showing the dialog with the inputs
// seeded from seed. scale is the number of pixels per cell.
func NewView(seed model.Config, scale float64) *View {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = DefaultScale
	}
	view := &View{
		scale:      scale,
		width:      80,
		height:     24,
		leftActive: true,
		nodeWidth:  seed.Width,
		distance:   seed.Distance,
	}
	view.geometry = model.NewGeometry(view.nodeWidth, view.distance, view.viewportHeight())
	view.ShowDialog()
	view.inputs[focusDistance] = model.FormatInput(seed.Distance)
	view.inputs[focusWidth] = model.FormatInput(seed.Width)
	view.inputs[focusValues] = model.FormatInput(seed.Trials)
	return view
}

// Resize sets the terminal size in cells.
func (view *View) Resize(width, height int) {
	view.width = width
	view.height = height
	view.geometry = model.NewGeometry(view.nodeWidth, view.distance, view.viewportHeight())
}

// Screen returns the visible screen.
func (view *View) Screen() model.Screen {
	return view.screen
}

// Geometry returns the geometry last applied to the targets, in pixels.
func (view *View) Geometry() model.Geometry {
	return view.geometry
}

// Input returns the text of a named input.
func (view *View) Input(name string) string {
	switch name {
	case ElementDistance:
		return view.inputs[focusDistance]
	case ElementWidth:
		return view.inputs[focusWidth]
	case ElementValues:
		return view.inputs[focusValues]
	}
	return ""
}

// Bind* replace the handler for each input event.

func (view *View) BindTargetClick(handler func(id int))              { view.onClick = handler }
func (view *View) BindWidthChange(handler func(width float64))       { view.onWidth = handler }
func (view *View) BindDistanceChange(handler func(distance float64)) { view.onDistance = handler }
func (view *View) BindValuesChange(handler func(trials float64))     { view.onValues = handler }
func (view *View) BindStartFitts(handler func())                     { view.onStart = handler }
func (view *View) BindRestart(handler func())                        { view.onRestart = handler }

// DisplayStatus marks exactly one target active.
func (view *View) DisplayStatus(leftActive bool) {
	view.leftActive = leftActive
}

// UpdateNodeGeometry resizes the targets to width and spaces them distance apart.
func (view *View) UpdateNodeGeometry(width, distance float64) {
	view.nodeWidth = width
	view.distance = distance
	view.geometry = model.NewGeometry(width, distance, view.viewportHeight())
}

// ShowDialog shows the configuration screen.
func (view *View) ShowDialog() {
	view.screen = model.ScreenDialog
}

// ShowFitts shows the experiment screen.
func (view *View) ShowFitts() {
	view.screen = model.ScreenFitts
}

// DisplayResults shows the report screen.
func (view *View) DisplayResults(distance, width float64, times []time.Duration) {
	view.summary = report.New(distance, width, times)
	view.screen = model.ScreenResults
}

func (view *View) viewportHeight() float64 {
	return float64(view.height) * view.scale
}

// Update dispatches a key or mouse message to the handler bound for the
// element it targets.
func (view *View) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		view.handleKey(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			view.handleClick(msg.X, msg.Y)
		}
	}
	return nil
}

func (view *View) handleKey(msg tea.KeyMsg) {
	switch view.screen {
	case model.ScreenDialog:
		view.handleDialogKey(msg)
	case model.ScreenResults:
		switch msg.String() {
		case "enter", "r":
			view.reset()
		}
	}
}

func (view *View) handleDialogKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		view.focus = (view.focus + 1) % focusCount
		return
	case tea.KeyShiftTab, tea.KeyUp:
		view.focus = (view.focus + focusCount - 1) % focusCount
		return
	case tea.KeyEnter:
		if view.focus == focusStart {
			view.start()
		}
		return
	}

	if view.focus == focusStart {
		return
	}
	text := view.inputs[view.focus]
	switch msg.Type {
	case tea.KeyBackspace:
		if len(text) == 0 {
			return
		}
		runes := []rune(text)
		text = string(runes[:len(runes)-1])
	case tea.KeyRunes:
		text += string(msg.Runes)
	default:
		return
	}
	view.inputs[view.focus] = text
	view.fireInputChange(view.focus, text)
}

func (view *View) fireInputChange(field int, text string) {
	value := model.ParseInput(text)
	var handler func(float64)
	switch field {
	case focusDistance:
		handler = view.onDistance
	case focusWidth:
		handler = view.onWidth
	case focusValues:
		handler = view.onValues
	}
	if handler != nil {
		handler(value)
	}
}

func (view *View) handleClick(x, y int) {
	switch view.screen {
	case model.ScreenDialog:
		for field := focusDistance; field <= focusValues; field++ {
			if y == dialogFirstInput+field {
				view.focus = field
				return
			}
		}
		if view.startBox().contains(x, y) {
			view.focus = focusStart
			view.start()
		}
	case model.ScreenFitts:
		left, right := view.targetBoxes()
		if left.contains(x, y) {
			view.click(experiment.LeftNodeID)
		} else if right.contains(x, y) {
			view.click(experiment.RightNodeID)
		}
	case model.ScreenResults:
		if view.backBox().contains(x, y) {
			view.reset()
		}
	}
}

func (view *View) start() {
	if view.onStart != nil {
		view.onStart()
	}
}

func (view *View) click(id int) {
	if view.onClick != nil {
		view.onClick(id)
	}
}

func (view *View) reset() {
	if view.onRestart != nil {
		view.onRestart()
	}
}

func (view *View) startBox() box {
	return box{x: 0, y: dialogStartRow, width: lipgloss.Width(startLabel), height: 1}
}

func (view *View) backBox() box {
	return box{x: 0, y: len(view.resultLines()), width: lipgloss.Width(backLabel), height: 1}
}

// targetBoxes converts the pixel geometry to cells and centres the pair horizontally.
func (view *View) targetBoxes() (box, box) {
	nodeCols := view.cells(view.geometry.NodeWidth)
	spanCols := view.cells(view.geometry.FittsWidth)
	if spanCols < 2*nodeCols {
		spanCols = 2 * nodeCols
	}

	available := view.height - experimentTopRow - experimentMargin
	rows := toCells(view.geometry.FittsHeight, view.scale, available)
	if rows <= 0 {
		rows = available
	}
	if rows < 1 {
		rows = 1
	}

	x := (view.width - spanCols) / 2
	if x < 0 {
		x = 0
	}
	left := box{x: x, y: experimentTopRow, width: nodeCols, height: rows}
	right := box{x: x + spanCols - nodeCols, y: experimentTopRow, width: nodeCols, height: rows}
	return left, right
}

// cells converts pixels to a cell count no wider than the terminal.
func (view *View) cells(pixels float64) int {
	return toCells(pixels, view.scale, view.width)
}

func toCells(pixels, scale float64, limit int) int {
	if math.IsNaN(pixels) || math.IsInf(pixels, 0) || pixels <= 0 || limit <= 0 {
		return 0
	}
	return int(math.Round(math.Min(pixels/scale, float64(limit))))
}

// Render draws the visible screen.
func (view *View) Render() string {
	switch view.screen {
	case model.ScreenFitts:
		return view.renderFitts()
	case model.ScreenResults:
		return view.renderResults()
	default:
		return view.renderDialog()
	}
}

func (view *View) renderDialog() string {
	lines := make([]string, dialogStartRow+2)
	lines[dialogTitleRow] = titleStyle.Render("Fitts's law experiment")
	labels := [3]string{"Distance", "Width", "Trials"}
	for field, label := range labels {
		value := view.inputs[field]
		if view.focus == field {
			value = focusStyle.Render(value + " ")
		}
		lines[dialogFirstInput+field] = labelStyle.Render(padRight(label, inputLabelColumns)) + value
	}
	start := startLabel
	if view.focus == focusStart {
		start = focusStyle.Render(start)
	}
	lines[dialogStartRow] = start
	lines[dialogStartRow+1] = hintStyle.Render("tab: next field  enter: start  esc: quit")
	return strings.Join(lines, "\n")
}

func (view *View) renderFitts() string {
	lines := []string{
		hintStyle.Render("click the highlighted target  q: quit"),
		"",
	}
	left, right := view.targetBoxes()
	leftStyle, rightStyle := inactiveStyle, activeStyle
	if view.leftActive {
		leftStyle, rightStyle = activeStyle, inactiveStyle
	}
	leftCells := leftStyle.Render(strings.Repeat(targetCell, left.width))
	rightCells := rightStyle.Render(strings.Repeat(targetCell, right.width))
	gap := right.x - left.x - left.width

	row := strings.Repeat(" ", left.x) + leftCells + strings.Repeat(" ", gap) + rightCells
	for i := 0; i < left.height; i++ {
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

func (view *View) resultLines() []string {
	lines := make([]string, 0, 8)
	for _, line := range view.summary.Lines() {
		lines = append(lines, reportStyle.Render(line))
	}
	lines = append(lines, "")
	if chart := view.summary.Chart(); chart != "" {
		lines = append(lines, strings.Split(chart, "\n")...)
		lines = append(lines, "")
	}
	return lines
}

func (view *View) renderResults() string {
	lines := view.resultLines()
	lines = append(lines, backLabel, hintStyle.Render("enter/r: back  q: quit"))
	return strings.Join(lines, "\n")
}

func padRight(text string, width int) string {
	if len(text) >= width {
		return text
	}
	return text + strings.Repeat(" ", width-len(text))
}
