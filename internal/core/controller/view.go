package controller

import "time"

// View is the presentation surface driven by the Controller. Every Bind
// method attaches a single listener.
type View interface {
	BindTargetClick(handler func(id int))
	BindWidthChange(handler func(width float64))
	BindDistanceChange(handler func(distance float64))
	BindValuesChange(handler func(trials float64))
	BindStartFitts(handler func())

	DisplayStatus(leftActive bool)
	UpdateNodeGeometry(width, distance float64)
	ShowDialog()
	ShowFitts()
	DisplayResults(distance, width float64, times []time.Duration)
}
