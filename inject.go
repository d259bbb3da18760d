package sceneedit

// Injected input is queued as whole frames. Screen coordinates are used and
// converted to world coordinates through the camera, identical to real mouse
// input. Each injected frame replaces the polled input for one Update.

// injectFrame queues one frame with the given held buttons at (x, y).
func (s *Session) injectFrame(x, y float64, held [mouseButtonCount]bool) {
	s.injectHeld = held
	s.injectQueue = append(s.injectQueue, InputState{
		Cursor:   ScreenPoint{x, y},
		Hovering: s.Camera.Viewport.Contains(x, y),
		Held:     held,
	})
}

// InjectPress queues a frame with button pressed at the given screen
// coordinates. Buttons pressed by earlier injections stay held.
func (s *Session) InjectPress(button MouseButton, x, y float64) {
	held := s.injectHeld
	held[button] = true
	s.injectFrame(x, y, held)
}

// InjectMove queues a frame that moves the cursor to the given screen
// coordinates without changing which buttons are held. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (s *Session) InjectMove(x, y float64) {
	s.injectFrame(x, y, s.injectHeld)
}

// InjectRelease queues a frame with button released at the given screen
// coordinates.
func (s *Session) InjectRelease(button MouseButton, x, y float64) {
	held := s.injectHeld
	held[button] = false
	s.injectFrame(x, y, held)
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (s *Session) InjectClick(button MouseButton, x, y float64) {
	s.InjectPress(button, x, y)
	s.InjectRelease(button, x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The total sequence consumes frames frames. Minimum frames is 2.
func (s *Session) InjectDrag(button MouseButton, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(button, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		s.InjectMove(x, y)
	}
	s.InjectRelease(button, toX, toY)
}

// Pending returns the number of queued injected frames.
func (s *Session) Pending() int {
	return len(s.injectQueue)
}

// popInjected removes and returns the oldest injected frame.
func (s *Session) popInjected() (InputState, bool) {
	if len(s.injectQueue) == 0 {
		return InputState{}, false
	}
	in := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	return in, true
}
