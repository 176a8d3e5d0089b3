package components

import "github.com/yohamta/donburi"

// AutopilotData is the state of the built-in bot that drives the tank in
// demo mode and in headless runs.
type AutopilotData struct {
	FireCooldown int
	TargetX      float64
	HasTarget    bool
	Dodging      bool
}

var Autopilot = donburi.NewComponentType[AutopilotData]()
