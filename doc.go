// Package sceneedit is the selection and spatial-transform core of a 2D scene
// editor built on [Ebitengine].
//
// It maps between screen pixels, world coordinates and grid cells under a
// pannable, zoomable and rotatable [Camera], hit-tests placed things against
// their polygonal [Hitbox], and turns successive cursor samples into
// rotation- and snap-aware drag deltas.
//
// # Quick start
//
// A [Session] bundles the camera, the current [Selection], the drag baseline
// and a handle to the thing [Registry]. Drive it once per tick:
//
//	reg := sceneedit.NewMemoryRegistry()
//	session := sceneedit.NewSession(reg, sceneedit.Rect{Width: 1280, Height: 720})
//	input := sceneedit.NewEbitenInput(session.Camera)
//
//	func (g *Game) Update() error {
//		g.session.Tick(g.input)
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		sceneedit.DrawOverlay(screen, g.session)
//	}
//
// # Coordinate spaces
//
// Positions are typed by the space they live in: [ScreenPoint] for viewport
// pixels, [WorldPoint] for world units and [GridPoint] for grid cell centers.
// [Camera.ScreenToWorld], [Camera.WorldToScreen] and [SnapToGrid] are the
// only conversion points.
//
// # Selection
//
// A fresh left click selects the single highest-depth thing under the
// cursor. Holding the left button and moving past the drag threshold selects
// every thing whose hitbox lies entirely inside the dragged region, which
// becomes a general quadrilateral in world space when the camera is rotated.
// Middle-button drags pan the camera when nothing is selected and move the
// selected things otherwise, optionally snapping to the grid.
//
// Settings load from YAML or TOML, honour SCENEEDIT_* environment variables
// and can be hot-reloaded with [WatchSettings]. Selection changes can be
// forwarded to an ECS world through the adapter in sceneedit/ecs.
//
// [Ebitengine]: https://ebitengine.org
package sceneedit
