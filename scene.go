package sceneedit

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tanema/gween/ease"
)

// EventStore is the interface for optional ECS integration.
// When set on a Session, selection events are forwarded to it.
type EventStore interface {
	EmitEvent(event SelectionEvent)
}

// SelectionEventKind identifies what changed the selection.
type SelectionEventKind uint8

const (
	EventClickSelect SelectionEventKind = iota // fresh left click resolved the selection
	EventBoxSelect                             // drag-box gesture changed the selection
	EventCreate                                // a thing was created and selected
	EventMove                                  // selected things were dragged
)

// SelectionEvent carries a selection change for the ECS bridge.
type SelectionEvent struct {
	Kind SelectionEventKind
	// UIDs is the selection after the change, in selection order.
	UIDs []string
	// Cursor is the world cursor when the event fired.
	Cursor WorldPoint
}

// InputState is one frame of pointer input.
type InputState struct {
	// Cursor is the raw cursor position in viewport pixels.
	Cursor ScreenPoint
	// Hovering is true while the cursor is over the canvas viewport.
	Hovering bool
	// Held reports which buttons are down, indexed by MouseButton.
	Held [mouseButtonCount]bool
}

// InputSource supplies one InputState per frame.
type InputSource interface {
	Poll() InputState
}

// Session is the editor context: camera, selection, drag baseline and a
// handle to the thing registry. All state is owned by the session and only
// mutated from Update, which must be called from a single goroutine.
type Session struct {
	Camera *Camera

	registry  Registry
	store     SceneStore
	events    EventStore
	selection *Selection
	drag      DragTracker
	settings  Settings
	watcher   *SettingsWatcher

	// Input state
	prevHeld      [mouseButtonCount]bool
	cursor        ScreenPoint
	hovering      bool
	selectStart   ScreenPoint
	dragSelecting bool
	rightClick    WorldPoint

	// Scripted input
	injectQueue []InputState
	injectHeld  [mouseButtonCount]bool
	runner      *ScriptRunner

	debug bool
	log   *log.Logger
	stats frameStats
}

// NewSession creates a session over reg with a camera covering viewport.
func NewSession(reg Registry, viewport Rect) *Session {
	return &Session{
		Camera:    NewCamera(viewport),
		registry:  reg,
		selection: NewSelection(),
		settings:  DefaultSettings(),
		log:       logger.WithPrefix("sceneedit"),
	}
}

// Registry returns the thing registry.
func (s *Session) Registry() Registry {
	return s.registry
}

// Selection returns the live selection. Callers should treat it as read-only
// while a gesture is in progress.
func (s *Session) Selection() *Selection {
	return s.selection
}

// Settings returns the active settings.
func (s *Session) Settings() Settings {
	return s.settings
}

// SetSettings replaces the active settings after normalizing them.
func (s *Session) SetSettings(settings Settings) {
	s.settings = settings.Normalized()
	s.SetDebugMode(s.settings.Debug)
}

// SetSnapToGrid toggles grid snapping for selection moves.
func (s *Session) SetSnapToGrid(enabled bool) {
	s.settings.SnapToGrid = enabled
}

// SetSettingsWatcher makes Update apply settings reloaded by w. Pass nil to
// detach.
func (s *Session) SetSettingsWatcher(w *SettingsWatcher) {
	s.watcher = w
}

// SetSceneStore sets the collaborator used by Save and LoadAssets.
func (s *Session) SetSceneStore(store SceneStore) {
	s.store = store
}

// SetEventStore sets the optional ECS bridge.
func (s *Session) SetEventStore(store EventStore) {
	s.events = store
}

// Tick polls src and runs one frame.
func (s *Session) Tick(src InputSource) {
	s.Update(src.Poll())
}

// Update runs one frame: pending settings and scripted input are applied,
// the camera animation advances, then selection and drags are resolved
// against in. Queued injected input replaces in for this frame.
func (s *Session) Update(in InputState) {
	s.applyWatchedSettings()
	if s.runner != nil {
		s.runner.step(s)
	}
	if injected, ok := s.popInjected(); ok {
		in = injected
	}

	s.Camera.update(float32(1 / s.settings.TickRate))
	s.processInput(in)
}

func (s *Session) applyWatchedSettings() {
	if s.watcher == nil {
		return
	}
	for {
		select {
		case settings, ok := <-s.watcher.Updates:
			if !ok {
				s.watcher = nil
				return
			}
			s.log.Info("settings reloaded", "grid", settings.GridSpacing, "snap", settings.SnapToGrid)
			s.SetSettings(settings)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				s.watcher = nil
				return
			}
			s.log.Error("settings reload failed", "err", err)
		default:
			return
		}
	}
}

// processInput runs the per-frame input state machine.
func (s *Session) processInput(in InputState) {
	var pressed, released [mouseButtonCount]bool
	for b := range in.Held {
		pressed[b] = in.Held[b] && !s.prevHeld[b]
		released[b] = !in.Held[b] && s.prevHeld[b]
	}
	s.prevHeld = in.Held
	s.cursor = in.Cursor
	s.hovering = in.Hovering

	if pressed[MouseButtonLeft] && in.Hovering {
		s.selectStart = in.Cursor
		s.dragSelecting = true
	}
	if released[MouseButtonLeft] || released[MouseButtonRight] {
		s.dragSelecting = false
	}
	if released[MouseButtonRight] && in.Hovering {
		s.rightClick = s.Camera.ScreenToWorld(in.Cursor)
	}

	s.updateSelection(pressed[MouseButtonLeft], in.Held[MouseButtonLeft])

	if in.Held[MouseButtonMiddle] && in.Hovering {
		s.dragMiddle()
	}

	s.drag.Sample(s.dragFrame())
}

// updateSelection resolves a fresh click or an ongoing drag-box gesture.
// Only one runs per frame and the click wins on the press frame.
func (s *Session) updateSelection(click, held bool) {
	if !s.hovering {
		return
	}

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
		s.stats = frameStats{}
	}

	cursor := s.Camera.ScreenToWorld(s.cursor)
	switch {
	case click:
		before := s.selection.UIDs()
		s.selectAt(cursor)
		s.emitIfChanged(EventClickSelect, before, cursor, true)
	case held && s.dragSelecting && Distance(s.selectStart.Vec(), s.cursor.Vec()) > s.settings.DragThreshold:
		before := s.selection.UIDs()
		s.selectInside(s.DragQuad())
		s.emitIfChanged(EventBoxSelect, before, cursor, false)
	default:
		return
	}

	if s.debug {
		s.stats.hitTestTime = time.Since(t0)
		s.stats.selected = s.selection.Len()
		s.debugLog(s.stats)
	}
}

// selectAt replaces the selection with the highest-depth thing whose hitbox
// contains p. Things without a hitbox or depth are skipped. Among equal
// depths, the thing enumerated last wins.
func (s *Session) selectAt(p WorldPoint) {
	s.selection.Clear()

	var (
		best      string
		bestDepth int
		found     bool
	)
	for _, uid := range s.registry.UIDs() {
		t, ok := s.registry.Thing(uid)
		if !ok || t.Hitbox() == nil {
			continue
		}
		depth, ok := t.Depth()
		if !ok {
			continue
		}
		t.RefreshHitbox()
		s.stats.tested++
		if !PointInConvexPolygon(p, t.Hitbox().World()) {
			continue
		}
		s.stats.hits++
		if !found || depth >= bestDepth {
			best, bestDepth, found = uid, depth, true
		}
	}
	if found {
		s.selection.Add(best)
	}
}

// selectInside replaces the selection with every thing whose hitbox lies
// entirely inside region, in enumeration order.
func (s *Session) selectInside(region Polygon) {
	s.selection.Clear()
	for _, uid := range s.registry.UIDs() {
		t, ok := s.registry.Thing(uid)
		if !ok || !t.RefreshHitbox() {
			continue
		}
		s.stats.tested++
		if ConvexContainsConvex(region, t.Hitbox().World()) {
			s.stats.hits++
			s.selection.Add(uid)
		}
	}
}

// DragQuad returns the drag-box region in world space: the screen rectangle
// between the press point and the cursor with each corner mapped separately,
// so a rotated camera yields a rotated quadrilateral.
func (s *Session) DragQuad() Polygon {
	start, cur := s.selectStart, s.cursor
	return Polygon{
		s.Camera.ScreenToWorld(start),
		s.Camera.ScreenToWorld(ScreenPoint{cur.X, start.Y}),
		s.Camera.ScreenToWorld(cur),
		s.Camera.ScreenToWorld(ScreenPoint{start.X, cur.Y}),
	}
}

// DragSelecting reports whether a left-button gesture that started on the
// canvas is still held.
func (s *Session) DragSelecting() bool {
	return s.dragSelecting
}

// dragMiddle pans the camera when nothing is selected and moves every
// selected thing otherwise.
func (s *Session) dragMiddle() {
	if s.selection.Len() == 0 {
		center := s.Camera.Center.Vec()
		next := s.ComputeDragDelta(center, true, false)
		s.Camera.Pan(next.Sub(center))
		return
	}

	moved := false
	for _, uid := range s.selection.uids {
		t, ok := s.registry.Thing(uid)
		if !ok {
			continue
		}
		pos, ok := t.Position()
		if !ok {
			panic(fmt.Sprintf("sceneedit: selected thing %q has no %s", uid, PropPosition))
		}
		next := s.ComputeDragDelta(pos.Vec(), false, s.settings.SnapToGrid)
		if next == pos.Vec() {
			continue
		}
		t.SetPosition(WorldPoint{next.X, next.Y})
		t.RefreshHitbox()
		moved = true
	}
	if moved {
		s.emit(EventMove, s.CursorWorld())
	}
}

// ComputeDragDelta displaces anchor by the cursor movement since the previous
// frame, rotated by the camera. The baseline is re-sampled at the end of every
// Update, so outside an Update it always returns anchor unchanged; callers
// with their own frames should use a DragTracker directly.
func (s *Session) ComputeDragDelta(anchor Vec2, reverse, snap bool) Vec2 {
	return s.drag.Delta(anchor, reverse, snap, s.dragFrame())
}

func (s *Session) dragFrame() DragFrame {
	return DragFrame{
		Cursor:   s.cursor,
		Zoom:     s.Camera.Zoom,
		Rotation: s.Camera.Rotation,
		CellSize: s.settings.GridSpacing,
	}
}

// CursorWorld returns the last cursor position in world space.
func (s *Session) CursorWorld() WorldPoint {
	return s.Camera.ScreenToWorld(s.cursor)
}

// Hovering reports whether the cursor was over the canvas last frame.
func (s *Session) Hovering() bool {
	return s.hovering
}

// Select replaces the selection with the given UIDs, skipping unknown ones.
func (s *Session) Select(uids ...string) {
	s.selection.Clear()
	for _, uid := range uids {
		if _, ok := s.registry.Thing(uid); ok {
			s.selection.Add(uid)
		}
	}
}

// ClearSelection empties the selection.
func (s *Session) ClearSelection() {
	s.selection.Clear()
}

// ResetView restores the camera to the origin, unrotated, at default zoom.
func (s *Session) ResetView() {
	s.Camera.Reset()
}

// RightClickPosition returns the world position of the last right-button
// release over the canvas.
func (s *Session) RightClickPosition() WorldPoint {
	return s.rightClick
}

// CreateThing creates a thing at the last right-click position, tints it
// blue, gives it the default hitbox and appends it to the selection.
func (s *Session) CreateThing(name string) (*Thing, error) {
	c, ok := s.registry.(Creator)
	if !ok {
		return nil, ErrNoCreator
	}
	t, err := c.Create(name)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", name, err)
	}
	t.SetPosition(s.rightClick)
	t.Tint = ColorBlue
	if err := s.registry.Invoke(t.UID, ActionApplyDefaultHitbox); err != nil {
		return nil, fmt.Errorf("create %s: %w", name, err)
	}
	t.RefreshHitbox()
	s.selection.Add(t.UID)
	s.emit(EventCreate, s.rightClick)
	s.log.Debug("thing created", "uid", t.UID, "name", name, "x", s.rightClick.X, "y", s.rightClick.Y)
	return t, nil
}

// FocusSelection scrolls the camera to the average position of the selected
// things over duration seconds. Reports false when no selected thing has a
// position.
func (s *Session) FocusSelection(duration float32) bool {
	var sum Vec2
	n := 0
	for _, uid := range s.selection.uids {
		t, ok := s.registry.Thing(uid)
		if !ok {
			continue
		}
		if p, ok := t.Position(); ok {
			sum = sum.Add(p.Vec())
			n++
		}
	}
	if n == 0 {
		return false
	}
	c := sum.Scale(1 / float64(n))
	s.Camera.ScrollTo(WorldPoint{c.X, c.Y}, duration, ease.OutQuad)
	return true
}

// Save asks the scene store to persist the scene.
func (s *Session) Save(path string) error {
	if s.store == nil {
		return ErrNoSceneStore
	}
	if err := s.store.Save(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// LoadAssets asks the scene store to load assets from path.
func (s *Session) LoadAssets(path string) error {
	if s.store == nil {
		return ErrNoSceneStore
	}
	if err := s.store.LoadAssets(path); err != nil {
		return fmt.Errorf("load assets %s: %w", path, err)
	}
	return nil
}

func (s *Session) emitIfChanged(kind SelectionEventKind, before []string, cursor WorldPoint, always bool) {
	if !always && s.selection.equal(before) {
		return
	}
	s.emit(kind, cursor)
}

func (s *Session) emit(kind SelectionEventKind, cursor WorldPoint) {
	if s.events == nil {
		return
	}
	s.events.EmitEvent(SelectionEvent{
		Kind:   kind,
		UIDs:   s.selection.UIDs(),
		Cursor: cursor,
	})
}
