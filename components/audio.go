package components

import (
	cfg "github.com/automoto/junglesiege/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised by gameplay this frame (singleton).
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
