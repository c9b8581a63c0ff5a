package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/paul0314/fitts-experiment/internal/core/model"
)

// Window edits the stored experiment defaults.
type Window struct {
	window   fyne.Window
	config   model.Config
	onSave   func(model.Config) error
	distance *widget.Entry
	width    *widget.Entry
	trials   *widget.Entry
	status   *widget.Label
}

// New creates a preferences window. onSave receives validated values only;
// an error it returns is shown in the window, which then stays open.
func New(app fyne.App, config model.Config, onSave func(model.Config) error) *Window {
	window := app.NewWindow("Fitts Defaults")

	prefs := &Window{
		window:   window,
		onSave:   onSave,
		distance: widget.NewEntry(),
		width:    widget.NewEntry(),
		trials:   widget.NewEntry(),
		status:   widget.NewLabel(""),
	}
	prefs.status.Wrapping = fyne.TextWrapWord
	prefs.UpdateConfig(config)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Experiment defaults", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, widget.NewLabel("Distance"), widget.NewLabel("px"), prefs.distance),
		container.NewBorder(nil, nil, widget.NewLabel("Width"), widget.NewLabel("px"), prefs.width),
		container.NewBorder(nil, nil, widget.NewLabel("Trials"), nil, prefs.trials),
		prefs.status,
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", window.Hide)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 240))
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateConfig replaces window values.
func (prefs *Window) UpdateConfig(config model.Config) {
	prefs.config = config
	prefs.distance.SetText(model.FormatInput(config.Distance))
	prefs.width.SetText(model.FormatInput(config.Width))
	prefs.trials.SetText(model.FormatInput(config.Trials))
	prefs.status.SetText("")
}

// Config returns the values last saved or loaded.
func (prefs *Window) Config() model.Config {
	return prefs.config
}

func (prefs *Window) handleSave() {
	config := model.Config{
		Distance: model.ParseInput(prefs.distance.Text),
		Width:    model.ParseInput(prefs.width.Text),
		Trials:   model.ParseInput(prefs.trials.Text),
	}
	if err := config.Validate(); err != nil {
		prefs.status.SetText(err.Error())
		return
	}
	if prefs.onSave != nil {
		if err := prefs.onSave(config); err != nil {
			prefs.status.SetText(err.Error())
			return
		}
	}
	prefs.config = config
	prefs.status.SetText("")
	prefs.window.Hide()
}
