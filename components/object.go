package components

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the shared position/size of every field entity.
type ObjectData struct {
	*resolv.Object
}

// Center returns the midpoint of the object's box.
func (o *ObjectData) Center() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

// Overlaps reports a strict axis-aligned intersection; touching edges do not count.
func (o *ObjectData) Overlaps(other *resolv.Object) bool {
	return o.X < other.X+other.W &&
		o.X+o.W > other.X &&
		o.Y < other.Y+other.H &&
		o.Y+o.H > other.Y
}

var Object = donburi.NewComponentType[ObjectData]()

// FiniteRect reports whether a box can be placed in the world.
func FiniteRect(x, y, w, h float64) bool {
	for _, v := range [...]float64{x, y, w, h} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return w > 0 && h > 0
}

var Space = donburi.NewComponentType[resolv.Space]()
