package tick

// Frame is passed to every system during one tick.
type Frame struct {
	// DeltaTime is the time since the previous tick in seconds.
	DeltaTime float64
	// Tick counts completed ticks, starting at zero for the first.
	Tick     uint64
	Commands *Commands

	scheduler *Scheduler
}

func newFrame(dt float64, tick uint64, scheduler *Scheduler) *Frame {
	return &Frame{
		DeltaTime: dt,
		Tick:      tick,
		Commands:  scheduler.commands,
		scheduler: scheduler,
	}
}

// Stop asks the scheduler to stop after the current tick. Remaining systems in
// this tick still run and may check Stopping to skip their work.
func (f *Frame) Stop() {
	f.scheduler.stopped = true
}

// Stopping reports whether Stop has been called.
func (f *Frame) Stopping() bool {
	return f.scheduler.stopped
}
