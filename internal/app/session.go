package app

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/paul0314/fitts-experiment/internal/core/controller"
	"github.com/paul0314/fitts-experiment/internal/core/experiment"
	"github.com/paul0314/fitts-experiment/internal/core/model"
)

// Session is one experiment run: a fresh Model bound to a View by a Controller.
type Session struct {
	ID         string
	Model      *experiment.Model
	Controller *controller.Controller
}

// NewSession initializes a Model, binds it to view and applies every value of
// config that differs from the defaults through the controller's change handlers.
func NewSession(view controller.View, config model.Config, logger *log.Logger) *Session {
	id := uuid.NewString()
	if logger == nil {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	sessionLogger := log.New(logger.Writer(), fmt.Sprintf("%s[%s] ", logger.Prefix(), id[:8]), logger.Flags())

	exp := experiment.New()
	exp.SetLogger(sessionLogger)
	ctrl := controller.New(exp, view)

	defaults := model.DefaultConfig()
	if config.Distance != defaults.Distance {
		ctrl.HandleDistanceChange(config.Distance)
	}
	if config.Width != defaults.Width {
		ctrl.HandleWidthChange(config.Width)
	}
	if config.Trials != defaults.Trials {
		ctrl.HandleValuesChange(config.Trials)
	}

	sessionLogger.Printf("session started: distance=%v width=%v trials=%v", config.Distance, config.Width, config.Trials)

	return &Session{
		ID:         id,
		Model:      exp,
		Controller: ctrl,
	}
}
