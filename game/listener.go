package game

import "github.com/plus3/blockdrop/shape"

// Listener is told about landings after the tick that caused them has
// committed. Callbacks run on the ticking goroutine.
type Listener interface {
	// OnLand reports a locked shape and the number of rows it eliminated.
	OnLand(s shape.Shape, rows int)
	// OnSoftReset reports that the well was cleared because a spawn had no room.
	OnSoftReset()
	// OnSpawn reports the shape that became active after a landing.
	OnSpawn(s shape.Shape)
}

// ListenerFuncs adapts optional functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	Land      func(s shape.Shape, rows int)
	SoftReset func()
	Spawn     func(s shape.Shape)
}

func (f ListenerFuncs) OnLand(s shape.Shape, rows int) {
	if f.Land != nil {
		f.Land(s, rows)
	}
}

func (f ListenerFuncs) OnSoftReset() {
	if f.SoftReset != nil {
		f.SoftReset()
	}
}

func (f ListenerFuncs) OnSpawn(s shape.Shape) {
	if f.Spawn != nil {
		f.Spawn(s)
	}
}
