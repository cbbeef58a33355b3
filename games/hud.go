package games

import (
	"fmt"
	"time"

	"github.com/lixenwraith/party-arcade/render"
)

// hudRows is the number of surface rows drawHUD occupies
const hudRows = 1

// drawHUD paints the status text on the left of row 0 and the time left on the right
func drawHUD(surf render.Surface, pal render.Palette, status string, left time.Duration) {
	w, _ := surf.Size()
	surf.SetFill(pal.Text)
	surf.Text(0, 0, status)
	timer := fmt.Sprintf("%4.1fs", left.Seconds())
	surf.Text(w-len(timer), 0, timer)
}

func always() bool { return true }
func never() bool  { return false }
