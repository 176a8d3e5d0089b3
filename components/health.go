package components

import "github.com/yohamta/donburi"

// HealthData is the hit counter of a zombie or boss.
type HealthData struct {
	Current int
	Max     int
}

// Damage removes n points without going below zero and reports whether the
// owner is now dead.
func (h *HealthData) Damage(n int) bool {
	h.Current -= n
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current == 0
}

var Health = donburi.NewComponentType[HealthData]()
