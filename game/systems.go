package game

import "github.com/plus3/blockdrop/tick"

// InputSystem drains the input queue and applies each requested move to the
// active shape. A quit event stops the scheduler and discards the rest of the
// queue, so nothing else is committed in that tick.
type InputSystem struct {
	Session tick.Resource[Session]
	Input   tick.Resource[Input]
}

func (s *InputSystem) Execute(frame *tick.Frame) {
	session := s.Session.Get()
	input := s.Input.Get()
	if session == nil || input == nil || session.quit {
		return
	}

	session.counters.Ticks++

	for _, ev := range input.Drain() {
		switch ev {
		case Quit:
			session.quit = true
			session.logger.Info("quit requested", "tick", frame.Tick)
			frame.Stop()
			return
		case MoveLeft:
			session.Shift(-1)
		case MoveRight:
			session.Shift(1)
		case RotateLeft:
			session.Rotate(-1)
		case RotateRight:
			session.Rotate(1)
		case SoftDrop:
			session.Descend()
		case HardDrop:
			session.HardDrop()
		}
	}
}

// GravitySystem moves the active shape down one row per tick and handles the
// landing, elimination and respawn when it cannot.
type GravitySystem struct {
	Session tick.Resource[Session]
}

func (s *GravitySystem) Execute(frame *tick.Frame) {
	session := s.Session.Get()
	if session == nil || session.quit {
		return
	}

	landing, landed := session.Fall()
	if !landed {
		return
	}
	frame.Commands.Defer(func() {
		session.notify(landing)
	})
}

// RenderSystem hands a snapshot of the committed state to a Sink.
type RenderSystem struct {
	Session tick.Resource[Session]
	Sink    Sink
}

func (s *RenderSystem) Execute(frame *tick.Frame) {
	session := s.Session.Get()
	if session == nil || session.quit || s.Sink == nil {
		return
	}
	s.Sink.Present(session.Snapshot())
}
