package model

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultDistance = 450
	DefaultWidth    = 100
	DefaultTrials   = 10

	// FittsHeightOffset is subtracted from the viewport height to size the experiment area.
	FittsHeightOffset = 45
)

var (
	ErrInvalidDistance = errors.New("distance must be a finite number >= 0")
	ErrInvalidWidth    = errors.New("width must be a finite number > 0")
	ErrInvalidTrials   = errors.New("trials must be a whole number > 0")
)

// Config holds the experiment configuration. Values are not bounded; NaN is a
// legal (degraded) value that results from non-numeric input.
type Config struct {
	Distance float64
	Width    float64
	Trials   float64
}

// DefaultConfig returns distance=450, width=100, trials=10.
func DefaultConfig() Config {
	return Config{
		Distance: DefaultDistance,
		Width:    DefaultWidth,
		Trials:   DefaultTrials,
	}
}

// Geometry returns the presentation geometry derived from the configuration.
func (config Config) Geometry(viewportHeight float64) Geometry {
	return NewGeometry(config.Width, config.Distance, viewportHeight)
}

// Validate reports the first out-of-range value. The experiment core never
// calls it; it guards values before they are written as stored defaults.
func (config Config) Validate() error {
	if !isFinite(config.Distance) || config.Distance < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidDistance, config.Distance)
	}
	if !isFinite(config.Width) || config.Width <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidWidth, config.Width)
	}
	if !isFinite(config.Trials) || config.Trials < 1 || config.Trials != math.Trunc(config.Trials) {
		return fmt.Errorf("%w: got %v", ErrInvalidTrials, config.Trials)
	}
	return nil
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
