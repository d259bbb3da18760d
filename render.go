package sceneedit

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay colors.
var (
	colorGridAxis  = color.RGBA{255, 255, 0, 255}
	colorGridMajor = color.RGBA{255, 255, 255, 255}
	colorGridMinor = color.RGBA{50, 50, 50, 255}
	colorSelection = color.RGBA{0, 180, 255, 100}
	colorOutline   = color.RGBA{255, 255, 255, 255}
)

// white pixel source for DrawTriangles (single-threaded, like the session)
var whiteImage *ebiten.Image

func ensureWhiteImage() *ebiten.Image {
	if whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteImage
}

// DrawOverlay draws the grid, every thing's hitbox in its tint, the selected
// hitboxes with a translucent fill and white outline, and the live drag quad.
func DrawOverlay(dst *ebiten.Image, s *Session) {
	cam := s.Camera
	settings := s.Settings()

	if settings.GridThickness > 0 {
		for _, l := range GridLines(cam, settings.GridSpacing) {
			drawWorldLine(dst, cam, l.A, l.B, float32(settings.GridThickness), gridLineColor(l.Kind))
		}
	}

	reg := s.Registry()
	for _, uid := range reg.UIDs() {
		t, ok := reg.Thing(uid)
		if !ok || !t.RefreshHitbox() {
			continue
		}
		strokePolygon(dst, cam, t.Hitbox().World(), t.Tint.toRGBA())
	}

	o := s.Overlay()
	for _, poly := range o.Selected {
		fillPolygon(dst, cam, poly, colorSelection)
		strokePolygon(dst, cam, poly, colorOutline)
	}
	if o.DragQuad != nil {
		fillPolygon(dst, cam, o.DragQuad, colorSelection)
		strokePolygon(dst, cam, o.DragQuad, colorOutline)
	}
}

func gridLineColor(k GridLineKind) color.RGBA {
	switch k {
	case GridAxis:
		return colorGridAxis
	case GridMajor:
		return colorGridMajor
	default:
		return colorGridMinor
	}
}

func drawWorldLine(dst *ebiten.Image, cam *Camera, a, b WorldPoint, width float32, clr color.Color) {
	sa := cam.WorldToScreen(a)
	sb := cam.WorldToScreen(b)
	vector.StrokeLine(dst, float32(sa.X), float32(sa.Y), float32(sb.X), float32(sb.Y), width, clr, false)
}

func strokePolygon(dst *ebiten.Image, cam *Camera, poly Polygon, clr color.Color) {
	for _, l := range poly.Lines() {
		drawWorldLine(dst, cam, l.A, l.B, 1, clr)
	}
}

// fillPolygon fills a convex polygon as a triangle fan.
func fillPolygon(dst *ebiten.Image, cam *Camera, poly Polygon, clr color.RGBA) {
	if len(poly) < 3 {
		return
	}
	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(clr.A) / 255

	verts := make([]ebiten.Vertex, len(poly))
	for i, p := range poly {
		sp := cam.WorldToScreen(p)
		verts[i] = ebiten.Vertex{
			DstX: float32(sp.X), DstY: float32(sp.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}
	inds := make([]uint16, 0, (len(poly)-2)*3)
	for i := 1; i < len(poly)-1; i++ {
		inds = append(inds, 0, uint16(i), uint16(i+1))
	}

	var op ebiten.DrawTrianglesOptions
	dst.DrawTriangles(verts, inds, ensureWhiteImage(), &op)
}
