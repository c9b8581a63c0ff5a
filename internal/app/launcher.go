package app

import (
	"log"

	"github.com/paul0314/fitts-experiment/internal/core/controller"
	"github.com/paul0314/fitts-experiment/internal/core/model"
)

// View is a presentation surface with a control that restarts the whole experiment.
type View interface {
	controller.View
	BindRestart(handler func())
}

// Launcher builds sessions from scratch. Restart is the full reload: the
// running session is dropped and configuration, view and model are rebuilt.
type Launcher[V View] struct {
	load    func() (model.Config, error)
	newView func(seed model.Config) V
	logger  *log.Logger

	current  *Session
	view     V
	restarts int
	onLaunch func(session *Session)
}

// NewLauncher creates a launcher. load supplies the configuration defaults for
// every launch; newView builds a view whose inputs display seed.
func NewLauncher[V View](load func() (model.Config, error), newView func(seed model.Config) V, logger *log.Logger) *Launcher[V] {
	if load == nil {
		load = func() (model.Config, error) { return model.DefaultConfig(), nil }
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Launcher[V]{
		load:    load,
		newView: newView,
		logger:  logger,
	}
}

// Launch builds a new view and session.
func (launcher *Launcher[V]) Launch() *Session {
	config, err := launcher.load()
	if err != nil {
		launcher.logger.Printf("load settings: %v", err)
	}

	view := launcher.newView(config)
	session := NewSession(view, config, launcher.logger)
	view.BindRestart(launcher.Restart)

	launcher.view = view
	launcher.current = session
	if launcher.onLaunch != nil {
		launcher.onLaunch(session)
	}
	return session
}

// OnLaunch sets a handler called after every launch, restarts included.
func (launcher *Launcher[V]) OnLaunch(handler func(session *Session)) {
	launcher.onLaunch = handler
}

// Restart discards the running session and launches a new one.
func (launcher *Launcher[V]) Restart() {
	if launcher.current != nil {
		launcher.logger.Printf("restarting session %s", launcher.current.ID)
	}
	launcher.restarts++
	launcher.Launch()
}

// Current returns the running session, or nil before Launch.
func (launcher *Launcher[V]) Current() *Session {
	return launcher.current
}

// View returns the view of the running session.
func (launcher *Launcher[V]) View() V {
	return launcher.view
}

// Restarts returns how many times Restart was called.
func (launcher *Launcher[V]) Restarts() int {
	return launcher.restarts
}
