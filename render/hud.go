package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"neontanks/game"
)

const (
	hudMarginX    = 16
	hudMarginY    = 14
	hudLineHeight = 18
	hudBarWidth   = 160
)

var (
	hudTextColor    = color.RGBA{0x00, 0xf3, 0xff, 0xff}
	hudOverlayColor = color.RGBA{0, 0, 0, 0xb0}
	hudTitleColor   = color.RGBA{0xff, 0x2d, 0x55, 0xff}
)

// HUD draws score, health and ammo from the last status it received.
type HUD struct {
	status game.HUDStatus
	face   *text.GoXFace
	width  float64
	height float64
}

// NewHUD creates a HUD for a playfield of the given size
func NewHUD(width, height float64) *HUD {
	return &HUD{
		face:   text.NewGoXFace(basicfont.Face7x13),
		width:  width,
		height: height,
		status: game.HUDStatus{Ammo: game.UnlimitedAmmo},
	}
}

// Update implements game.HUD.
func (h *HUD) Update(status game.HUDStatus) {
	h.status = status
}

// Status returns the last status handed to Update.
func (h *HUD) Status() game.HUDStatus {
	return h.status
}

// Draw paints the HUD on top of the playfield
func (h *HUD) Draw(screen *ebiten.Image) {
	st := h.status
	if st.Phase != game.PhaseIdle {
		for i, line := range hudLines(st) {
			h.print(screen, line, hudMarginX, hudMarginY+float64(i)*hudLineHeight, hudTextColor)
		}
		barY := float32(hudMarginY + 3*hudLineHeight + 4)
		vector.DrawFilledRect(screen, hudMarginX, barY, hudBarWidth, 6, healthBarBack, true)
		vector.DrawFilledRect(screen, hudMarginX, barY, float32(hudBarWidth*st.HealthPercent/100), 6, healthBarFront, true)
	}

	title, hint := overlayText(st)
	if title == "" {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(h.width), float32(h.height), hudOverlayColor, false)
	h.printCentered(screen, title, h.height/2-hudLineHeight, hudTitleColor)
	h.printCentered(screen, hint, h.height/2+hudLineHeight, color.White)
}

// hudLines returns the status rows shown in the corner
func hudLines(st game.HUDStatus) []string {
	return []string{
		fmt.Sprintf("SCORE   %d", st.Score),
		fmt.Sprintf("HEALTH  %d%%", st.HealthPercent),
		fmt.Sprintf("AMMO    %s (%s)", st.Bullet, st.AmmoLabel()),
	}
}

// overlayText returns the full-screen message for phases that are not
// being played, or empty strings while active.
func overlayText(st game.HUDStatus) (title, hint string) {
	switch st.Phase {
	case game.PhaseIdle:
		return "NEON TANKS", "WASD to move, mouse to aim, click or SPACE to fire. Press ENTER to start"
	case game.PhaseGameOver:
		return "GAME OVER", fmt.Sprintf("Final score %d. Press ENTER to play again", st.Score)
	default:
		return "", ""
	}
}

func (h *HUD) print(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, h.face, op)
}

func (h *HUD) printCentered(screen *ebiten.Image, s string, y float64, clr color.Color) {
	w, _ := text.Measure(s, h.face, 0)
	h.print(screen, s, (h.width-w)/2, y, clr)
}
