package tick_test

import (
	"context"
	"fmt"
	"time"

	"github.com/plus3/blockdrop/tick"
)

type Clock struct {
	Elapsed float64
}

type ClockSystem struct {
	Clock tick.Resource[Clock]
}

func (s *ClockSystem) Execute(frame *tick.Frame) {
	s.Clock.Get().Elapsed += frame.DeltaTime
}

type AnnounceSystem struct {
	Clock tick.Resource[Clock]
}

func (s *AnnounceSystem) Execute(frame *tick.Frame) {
	tickNumber := frame.Tick
	frame.Commands.Defer(func() {
		fmt.Printf("tick %d done at %.2fs\n", tickNumber, s.Clock.Get().Elapsed)
	})
}

// ExampleScheduler shows systems sharing a resource. Systems run in
// registration order and deferred commands run once every system has finished.
func ExampleScheduler() {
	scheduler := tick.NewScheduler()
	tick.Provide(scheduler, &Clock{})
	scheduler.Register(&AnnounceSystem{})
	scheduler.Register(&ClockSystem{})

	scheduler.Once(0.5)
	scheduler.Once(0.25)

	// Output:
	// tick 0 done at 0.50s
	// tick 1 done at 0.75s
}

// ExampleScheduler_Run runs systems at a fixed interval until the context is
// cancelled.
func ExampleScheduler_Run() {
	scheduler := tick.NewScheduler()
	tick.Provide(scheduler, &Clock{})
	scheduler.Register(&ClockSystem{})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := scheduler.Run(ctx, tick.Interval(100))

	fmt.Println("stopped:", err)
	// Output:
	// stopped: context deadline exceeded
}
