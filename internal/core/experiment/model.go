package experiment

import (
	"log"
	"time"

	"github.com/paul0314/fitts-experiment/internal/core/model"
)

// ToggleFunc is notified after the targets swapped and a latency was recorded.
type ToggleFunc func()

// GeometryFunc is notified with the current (width, distance) pair.
type GeometryFunc func(width, distance float64)

// Model owns the experiment state: both targets, the configuration, the
// recorded latencies and the last-click timestamp. Each Bind call replaces the
// previously bound callback.
type Model struct {
	left      *Node
	right     *Node
	times     []time.Duration
	lastClick time.Time
	config    model.Config

	now    func() time.Time
	logger *log.Logger

	onToggleStatus    ToggleFunc
	onWidthChanged    GeometryFunc
	onDistanceChanged GeometryFunc
}

// New creates an initialized Model.
func New() *Model {
	exp := &Model{
		now:    time.Now,
		logger: log.Default(),
	}
	exp.Initialize()
	return exp
}

// SetClock replaces the time source used for latency measurement.
func (exp *Model) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	exp.now = now
}

// SetLogger replaces the diagnostic logger.
func (exp *Model) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.Default()
	}
	exp.logger = logger
}

// Initialize resets the targets (left active), clears the records, stamps the
// last-click time and restores the default configuration.
func (exp *Model) Initialize() {
	exp.left = newNode(LeftNodeID, true)
	exp.right = newNode(RightNodeID, false)
	exp.times = nil
	exp.lastClick = exp.now()
	exp.config = model.DefaultConfig()
}

// ToggleStatus swaps the active target, records the latency since the last
// click and notifies the toggle callback.
func (exp *Model) ToggleStatus() {
	exp.left.toggle()
	exp.right.toggle()

	now := exp.now()
	exp.times = append(exp.times, now.Sub(exp.lastClick))
	exp.lastClick = now

	if exp.onToggleStatus != nil {
		exp.onToggleStatus()
	}
}

// StampLastClick sets the last-click timestamp to now.
func (exp *Model) StampLastClick() {
	exp.lastClick = exp.now()
}

// SetWidth stores the target width and notifies the width callback.
func (exp *Model) SetWidth(width float64) {
	exp.config.Width = width
	if exp.onWidthChanged != nil {
		exp.onWidthChanged(exp.config.Width, exp.config.Distance)
	}
}

// SetDistance stores the target distance and notifies the distance callback.
func (exp *Model) SetDistance(distance float64) {
	exp.config.Distance = distance
	if exp.onDistanceChanged != nil {
		exp.onDistanceChanged(exp.config.Width, exp.config.Distance)
	}
}

// SetValues stores the number of trials. Unlike width and distance it fires
// no notification.
func (exp *Model) SetValues(trials float64) {
	exp.config.Trials = trials
}

// Node returns the node with the given id, or nil for ids other than 1 and 2.
func (exp *Model) Node(id int) *Node {
	switch id {
	case LeftNodeID:
		return exp.left
	case RightNodeID:
		return exp.right
	}
	exp.logger.Printf("node for id=%d is out of range", id)
	return nil
}

// LeftNode returns node 1.
func (exp *Model) LeftNode() *Node {
	return exp.left
}

// Times returns a copy of the recorded latencies in click order.
func (exp *Model) Times() []time.Duration {
	return append([]time.Duration(nil), exp.times...)
}

// TrialCount returns the number of recorded latencies.
func (exp *Model) TrialCount() int {
	return len(exp.times)
}

// Config returns the current configuration.
func (exp *Model) Config() model.Config {
	return exp.config
}

// BindToggleStatus registers the toggle callback.
func (exp *Model) BindToggleStatus(callback ToggleFunc) {
	exp.onToggleStatus = callback
}

// BindWidthChanged registers the width callback.
func (exp *Model) BindWidthChanged(callback GeometryFunc) {
	exp.onWidthChanged = callback
}

// BindDistanceChanged registers the distance callback.
func (exp *Model) BindDistanceChanged(callback GeometryFunc) {
	exp.onDistanceChanged = callback
}
