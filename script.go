package sceneedit

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Button string  `yaml:"button,omitempty"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// inputScript is the top-level structure of an input script.
type inputScript struct {
	Steps []scriptStep `yaml:"steps"`
}

// Snapshot records session state at a "snapshot" step.
type Snapshot struct {
	Label     string
	Selection []string
	Cursor    WorldPoint
	Center    WorldPoint
	Zoom      float64
	Rotation  float64
}

// ScriptRunner sequences injected input across frames for automated
// testing. Attach to a Session via SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	buttons   []MouseButton
	cursor    int
	waitCount int
	done      bool
	snapshots []Snapshot
}

// LoadInputScript parses a YAML or JSON input script and returns a runner
// ready to be attached to a Session. Buttons default to left; unknown actions
// and buttons are rejected up front.
func LoadInputScript(data []byte) (*ScriptRunner, error) {
	var script inputScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: %w", ErrEmptyScript)
	}

	buttons := make([]MouseButton, len(script.Steps))
	for i, st := range script.Steps {
		switch st.Action {
		case "click", "drag", "press", "release", "move", "wait", "snapshot":
		default:
			return nil, fmt.Errorf("parse input script: step %d %q: %w", i, st.Action, ErrUnknownStepKind)
		}
		b, err := parseButton(st.Button)
		if err != nil {
			return nil, fmt.Errorf("parse input script: step %d: %w", i, err)
		}
		buttons[i] = b
	}
	return &ScriptRunner{steps: script.Steps, buttons: buttons}, nil
}

func parseButton(name string) (MouseButton, error) {
	switch name {
	case "", "left":
		return MouseButtonLeft, nil
	case "right":
		return MouseButtonRight, nil
	case "middle":
		return MouseButtonMiddle, nil
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownButton)
}

// SetScriptRunner attaches a runner to the session. The runner's step method
// is called from Session.Update before input is processed each frame.
func (s *Session) SetScriptRunner(runner *ScriptRunner) {
	s.runner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Snapshots returns the snapshots taken so far, in script order.
func (r *ScriptRunner) Snapshots() []Snapshot {
	return r.snapshots
}

// step advances the runner by one frame. Called from Session.Update.
func (r *ScriptRunner) step(s *Session) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	b := r.buttons[r.cursor]
	r.cursor++

	switch st.Action {
	case "snapshot":
		r.snapshots = append(r.snapshots, Snapshot{
			Label:     st.Label,
			Selection: s.selection.UIDs(),
			Cursor:    s.CursorWorld(),
			Center:    s.Camera.Center,
			Zoom:      s.Camera.Zoom,
			Rotation:  s.Camera.Rotation,
		})
	case "click":
		s.InjectClick(b, st.X, st.Y)
	case "press":
		s.InjectPress(b, st.X, st.Y)
	case "release":
		s.InjectRelease(b, st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "drag":
		s.InjectDrag(b, st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
