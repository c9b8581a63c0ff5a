package model

// Screen identifies which of the three mutually exclusive screens is visible.
type Screen string

const (
	ScreenDialog  Screen = "dialog"
	ScreenFitts   Screen = "fitts"
	ScreenResults Screen = "results"
)
