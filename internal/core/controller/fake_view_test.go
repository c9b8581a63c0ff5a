package controller_test

import "time"

type geometryCall struct {
	Width    float64
	Distance float64
}

type resultsCall struct {
	Distance float64
	Width    float64
	Times    []time.Duration
}

type fakeView struct {
	onClick    func(int)
	onWidth    func(float64)
	onDistance func(float64)
	onValues   func(float64)
	onStart    func()

	statusCalls   []bool
	geometryCalls []geometryCall
	resultsCalls  []resultsCall
	screens       []string
}

func (view *fakeView) BindTargetClick(handler func(id int))          { view.onClick = handler }
func (view *fakeView) BindWidthChange(handler func(width float64))   { view.onWidth = handler }
func (view *fakeView) BindDistanceChange(handler func(float64))      { view.onDistance = handler }
func (view *fakeView) BindValuesChange(handler func(trials float64)) { view.onValues = handler }
func (view *fakeView) BindStartFitts(handler func())                 { view.onStart = handler }

func (view *fakeView) DisplayStatus(leftActive bool) {
	view.statusCalls = append(view.statusCalls, leftActive)
}

func (view *fakeView) UpdateNodeGeometry(width, distance float64) {
	view.geometryCalls = append(view.geometryCalls, geometryCall{Width: width, Distance: distance})
}

func (view *fakeView) ShowDialog() {
	view.screens = append(view.screens, "dialog")
}

func (view *fakeView) ShowFitts() {
	view.screens = append(view.screens, "fitts")
}

func (view *fakeView) DisplayResults(distance, width float64, times []time.Duration) {
	view.screens = append(view.screens, "results")
	view.resultsCalls = append(view.resultsCalls, resultsCall{Distance: distance, Width: width, Times: times})
}
