package game

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockdrop/shape"
)

// Counters tracks what happened during a session. They are plain tallies for
// diagnostics and reports, not a score.
type Counters struct {
	Ticks      uint64
	Locked     int
	Rows       int
	SoftResets int

	spawns *intmap.Map[shape.Kind, int]
}

func newCounters() Counters {
	return Counters{spawns: intmap.New[shape.Kind, int](len(shape.Kinds))}
}

func (c *Counters) spawned(k shape.Kind) {
	n, _ := c.spawns.Get(k)
	c.spawns.Put(k, n+1)
}

// Spawned returns how many shapes of kind k have been spawned.
func (c Counters) Spawned(k shape.Kind) int {
	if c.spawns == nil {
		return 0
	}
	n, _ := c.spawns.Get(k)
	return n
}

// Spawns returns the total number of spawned shapes.
func (c Counters) Spawns() int {
	total := 0
	for _, k := range shape.Kinds {
		total += c.Spawned(k)
	}
	return total
}

// Clone returns a copy that does not share the spawn histogram.
func (c Counters) Clone() Counters {
	out := c
	out.spawns = intmap.New[shape.Kind, int](len(shape.Kinds))
	for _, k := range shape.Kinds {
		if n := c.Spawned(k); n > 0 {
			out.spawns.Put(k, n)
		}
	}
	return out
}
