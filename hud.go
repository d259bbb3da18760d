package sceneedit

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// HUD draws the status panel: cursor readout, selection size and the
// current FPS/TPS. The panel text is refreshed every ~0.5 seconds of ticks.
type HUD struct {
	img        *ebiten.Image
	text       string
	sinceFlush float64
}

// NewHUD creates a HUD panel. 180x64 fits the readout plus two stat lines.
func NewHUD() *HUD {
	return &HUD{img: ebiten.NewImage(180, 64)}
}

// Update advances the refresh timer by dt seconds and rebuilds the panel
// text from s when it is due.
func (h *HUD) Update(s *Session, dt float64) {
	h.sinceFlush += dt
	if h.sinceFlush < 0.5 && h.text != "" {
		return
	}
	h.sinceFlush = 0
	h.text = hudText(s, ebiten.ActualFPS(), ebiten.ActualTPS())
}

// Draw renders the panel at the top-left of dst.
func (h *HUD) Draw(dst *ebiten.Image) {
	h.img.Clear()
	// Semi-transparent background for readability
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.img, h.text)
	dst.DrawImage(h.img, nil)
}

func hudText(s *Session, fps, tps float64) string {
	readout := "Cursor -\nGrid -"
	if r, ok := s.CursorReadout(); ok {
		readout = r.String()
	}
	return fmt.Sprintf("%s\nSelected: %d\nFPS: %.1f TPS: %.1f", readout, s.Selection().Len(), fps, tps)
}
