package controller

import (
	"github.com/paul0314/fitts-experiment/internal/core/experiment"
)

// Controller wires Model notifications to View renders and View input events
// to Model mutations.
type Controller struct {
	model *experiment.Model
	view  View
}

// New binds the controller to the model and the view.
func New(model *experiment.Model, view View) *Controller {
	controller := &Controller{
		model: model,
		view:  view,
	}
	controller.initModelBinds()
	controller.initViewBinds()
	return controller
}

func (controller *Controller) initModelBinds() {
	controller.model.BindToggleStatus(controller.handleToggleStatus)
	controller.model.BindWidthChanged(controller.handleGeometryChanged)
	controller.model.BindDistanceChanged(controller.handleGeometryChanged)
}

func (controller *Controller) initViewBinds() {
	controller.view.BindTargetClick(controller.HandleClick)
	controller.view.BindValuesChange(controller.HandleValuesChange)
	controller.view.BindWidthChange(controller.HandleWidthChange)
	controller.view.BindDistanceChange(controller.HandleDistanceChange)
	controller.view.BindStartFitts(controller.HandleStartFitts)
}

func (controller *Controller) handleToggleStatus() {
	config := controller.model.Config()
	if float64(controller.model.TrialCount()) < config.Trials {
		controller.view.DisplayStatus(controller.model.LeftNode().Active())
		return
	}
	controller.view.DisplayResults(config.Distance, config.Width, controller.model.Times())
}

func (controller *Controller) handleGeometryChanged(width, distance float64) {
	controller.view.UpdateNodeGeometry(width, distance)
}

// HandleClick toggles the targets when the clicked node is the active one.
// Clicks on the inactive node and unknown ids are ignored.
func (controller *Controller) HandleClick(id int) {
	node := controller.model.Node(id)
	if node == nil {
		return
	}
	if node.Active() {
		controller.model.ToggleStatus()
	}
}

// HandleStartFitts marks the start of the first measurement and shows the experiment.
func (controller *Controller) HandleStartFitts() {
	controller.model.StampLastClick()
	controller.view.ShowFitts()
}

// HandleWidthChange forwards a width change to the model.
func (controller *Controller) HandleWidthChange(width float64) {
	controller.model.SetWidth(width)
}

// HandleDistanceChange forwards a distance change to the model.
func (controller *Controller) HandleDistanceChange(distance float64) {
	controller.model.SetDistance(distance)
}

// HandleValuesChange forwards a trial count change to the model.
func (controller *Controller) HandleValuesChange(trials float64) {
	controller.model.SetValues(trials)
}
