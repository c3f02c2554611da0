package config

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Wheel view geometry
	WheelCenterX = 380
	WheelCenterY = 330
	WheelRadius  = 200
	GrabMargin   = 16
	ArcRadius    = 46

	// Readout panel
	ReadoutX = 700
	ReadoutY = 140

	// Plot area
	PlotLeft   = 70
	PlotTop    = 80
	PlotWidth  = 640
	PlotHeight = 420
	PlotYRange = 4.0

	// Slider layout
	SliderX      = 770
	SliderY      = 140
	SliderWidth  = 210
	SliderHeight = 14
	SliderGap    = 80
)
