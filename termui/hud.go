package termui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"neontanks/game"
)

const healthBarCells = 10

var (
	hudStyle     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x00, 0xf3, 0xff))
	titleStyle   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xff, 0x2d, 0x55)).Bold(true)
	messageStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// HUD shows the status line. It implements game.HUD.
type HUD struct {
	status game.HUDStatus
}

// NewHUD creates a HUD showing the idle screen
func NewHUD() *HUD {
	return &HUD{status: game.HUDStatus{Ammo: game.UnlimitedAmmo}}
}

// Update implements game.HUD.
func (h *HUD) Update(status game.HUDStatus) {
	h.status = status
}

// Status returns the last status handed to Update
func (h *HUD) Status() game.HUDStatus {
	return h.status
}

// Draw writes the status line on the last row and any phase message
func (h *HUD) Draw(screen tcell.Screen) {
	cols, rows := screen.Size()
	if rows == 0 {
		return
	}
	printAt(screen, 0, rows-1, statusLine(h.status), hudStyle)

	title, hint := phaseMessage(h.status)
	if title == "" {
		return
	}
	mid := (rows - hudRows) / 2
	printAt(screen, (cols-len([]rune(title)))/2, mid-1, title, titleStyle)
	printAt(screen, (cols-len([]rune(hint)))/2, mid+1, hint, messageStyle)
}

func statusLine(st game.HUDStatus) string {
	filled := st.HealthPercent * healthBarCells / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", healthBarCells-filled)
	return fmt.Sprintf("SCORE %d | HEALTH %s %d%% | AMMO %s (%s)", st.Score, bar, st.HealthPercent, st.Bullet, st.AmmoLabel())
}

func phaseMessage(st game.HUDStatus) (title, hint string) {
	switch st.Phase {
	case game.PhaseIdle:
		return "NEON TANKS", "WASD move, mouse aim, SPACE fire, ENTER start, ESC quit"
	case game.PhaseGameOver:
		return "GAME OVER", fmt.Sprintf("Final score %d. ENTER to play again", st.Score)
	default:
		return "", ""
	}
}

func printAt(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(max(x, 0), y, r, nil, style)
		x++
	}
}
