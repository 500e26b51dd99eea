package pingpong

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/pingpong/internal/assets"
	"github.com/vovakirdan/pingpong/internal/core"
)

// Visual characters for rendering
const (
	TableChar   = '░'
	CenterChar  = '┊'
	NetChar     = '═'
	BallChar    = '●'
	ShadowChar  = '·'
	PaddleChar  = '▬'
	LeftEdge    = '/'
	RightEdge   = '\\'
	EdgeChar    = '─'
	ballLiftMul = 0.6 // screen rows per unit of height, times screen height
)

// Table extent in v. The far edge sits where the projection turns back on
// itself, so everything behind it collapses onto one row.
const (
	TableFarV  = -0.35
	TableNearV = 1.0
)

// WorldToScreen projects a table point onto a w×h screen. Points further
// away (smaller v) shrink toward the center.
func WorldToScreen(u, v float64, w, h int) (x, y, scale float64) {
	scale = 0.6 + v*0.5
	x = float64(w) * (0.5 + (u-0.5)*scale)
	y = float64(h) * (0.5 + (v-0.5)*scale*0.8)
	return x, y, scale
}

// ScreenToWorld inverts WorldToScreen on the near side of the table
// (v >= TableFarV). Rows above the far edge map to the far edge.
func ScreenToWorld(x, y float64, w, h int) (u, v float64) {
	if w <= 0 || h <= 0 {
		return 0.5, 0.5
	}
	// y/h - 0.5 = 0.4v² + 0.28v - 0.24
	yn := y/float64(h) - 0.5
	disc := 0.0784 + 1.6*(0.24+yn)
	if disc < 0 {
		disc = 0
	}
	v = (-0.28 + math.Sqrt(disc)) / 0.8
	if v < TableFarV {
		v = TableFarV
	}
	scale := 0.6 + v*0.5
	u = 0.5 + (x/float64(w)-0.5)/scale
	return u, v
}

// Render draws the scene, the HUD and the overlay for the current phase.
// sprites may be nil or not ready, in which case plain glyphs are used.
func Render(dst *core.Screen, s *GameState, sprites *assets.Sprites) {
	dst.Clear()

	cfg := s.cfg
	netV := (cfg.Paddles.BotStart.V + cfg.Paddles.PlayerStart.V) / 2
	DrawTable(dst, netV)

	var playerSprite, botSprite assets.Sprite
	if sprites.Ready() {
		playerSprite, botSprite = sprites.Player, sprites.Bot
	}
	DrawPaddle(dst, s.Bot, botSprite, true)
	DrawBall(dst, s.Ball, cfg.Physics.Floor)
	DrawPaddle(dst, s.Player, playerSprite, false)

	drawHUD(dst, s)
	drawOverlay(dst, s)
}

// DrawTable draws the table surface, its edges, the center line and the net
// row at netV.
func DrawTable(dst *core.Screen, netV float64) {
	w, h := dst.Width(), dst.Height()
	_, farY, _ := WorldToScreen(0.5, TableFarV, w, h)
	_, nearY, _ := WorldToScreen(0.5, TableNearV, w, h)
	top := int(math.Ceil(farY))
	bottom := int(nearY)

	for y := top; y <= bottom; y++ {
		_, v := ScreenToWorld(float64(w)/2, float64(y), w, h)
		xl, xr := tableEdges(v, w, h)
		for x := xl + 1; x < xr; x++ {
			dst.SetColor(x, y, TableChar, core.ColorTable)
		}
		dst.SetColor(xl, y, LeftEdge, core.ColorLine)
		dst.SetColor(xr, y, RightEdge, core.ColorLine)
		dst.SetColor(w/2, y, CenterChar, core.ColorLine)
	}

	xl, xr := tableEdges(TableFarV, w, h)
	dst.DrawHLine(xl, xr, top, EdgeChar, core.ColorLine)

	_, netY, _ := WorldToScreen(0.5, netV, w, h)
	xl, xr = tableEdges(netV, w, h)
	dst.DrawHLine(xl, xr, int(math.Round(netY)), NetChar, core.ColorNet)
}

func tableEdges(v float64, w, h int) (int, int) {
	left, _, _ := WorldToScreen(0, v, w, h)
	right, _, _ := WorldToScreen(1, v, w, h)
	return int(math.Round(left)), int(math.Round(right))
}

// DrawBall draws the ball raised above its table position by its height,
// with a shadow on the table once it is a row or more up.
func DrawBall(dst *core.Screen, b Ball, floor float64) {
	x, y, _ := WorldToScreen(b.U, b.V, dst.Width(), dst.Height())
	lift := (b.Z - floor) * float64(dst.Height()) * ballLiftMul

	bx := int(math.Round(x))
	by := int(math.Round(y))
	ly := int(math.Round(y - lift))
	if ly != by {
		dst.SetColor(bx, by, ShadowChar, core.ColorShadow)
	}
	dst.SetColor(bx, ly, BallChar, core.ColorBall)
}

// DrawPaddle draws a paddle sprite centered on the paddle's projected
// position. The player's blade sits on that row with the handle below; the
// bot's is mirrored. Without a sprite a bar scaled by perspective is drawn.
func DrawPaddle(dst *core.Screen, p Paddle, sprite assets.Sprite, isBot bool) {
	w, h := dst.Width(), dst.Height()
	x, y, scale := WorldToScreen(p.U, p.V, w, h)
	cx := int(math.Round(x))
	cy := int(math.Round(y))

	color := core.ColorPlayer
	if isBot {
		color = core.ColorBot
	}

	if len(sprite) == 0 {
		width := int(math.Round(2 * p.Radius * float64(w) * scale))
		if width < 3 {
			width = 3
		}
		dst.DrawHLine(cx-width/2, cx-width/2+width-1, cy, PaddleChar, color)
		return
	}

	left := cx - sprite.Width()/2
	top := cy
	if isBot {
		top = cy - sprite.Height() + 1
	}
	for row, line := range sprite {
		col := 0
		for _, r := range line {
			if r != ' ' {
				dst.SetColor(left+col, top+row, r, color)
			}
			col++
		}
	}
}

func drawHUD(dst *core.Screen, s *GameState) {
	dst.DrawTextCentered(0, fmt.Sprintf("Player: %d | Bot: %d", s.Match.PlayerScore, s.Match.BotScore), core.ColorHUD)
	dst.DrawTextCentered(1, fmt.Sprintf("%s - Level %d", s.CategoryName(), s.Progress.Level), core.ColorDim)

	p := s.Progress
	dst.DrawText(1, dst.Height()-1,
		fmt.Sprintf("LV %d  XP %d/%d  Coins %d", p.PlayerLevel, p.XP, s.XPForNext(), p.Coins),
		core.ColorReward)

	if s.Phase == PhasePlaying && s.Match.BallHeld && s.Match.ServeTurn == SidePlayer {
		dst.DrawTextCentered(dst.Height()-2, "Space: serve", core.ColorDim)
	}
}

func drawOverlay(dst *core.Screen, s *GameState) {
	switch s.Phase {
	case PhaseMenu:
		drawMessage(dst,
			"TABLE TENNIS",
			"",
			fmt.Sprintf("%s - Level %d", s.CategoryName(), s.Progress.Level),
			"Enter: start   Q: quit")
	case PhaseLevelIntro:
		drawMessage(dst,
			s.CategoryName(),
			fmt.Sprintf("Level %d", s.Progress.Level),
			fmt.Sprintf("First to %d points", s.cfg.Match.WinScore),
			"Enter: play   Esc: menu")
	case PhasePaused:
		drawMessage(dst, "PAUSED", "", "P: resume   Esc: menu")
	case PhaseRoundEnd:
		title := "BOT WINS!"
		if s.Match.Winner == SidePlayer {
			title = "YOU WIN!"
		}
		drawMessage(dst, title,
			fmt.Sprintf("%d - %d", s.Match.PlayerScore, s.Match.BotScore),
			"Enter: continue")
	case PhaseRewardClaim:
		lines := []string{"REWARDS"}
		next := "Enter: retry level"
		if r := s.LastResult; r != nil {
			lines = append(lines, fmt.Sprintf("+%d XP  +%d coins", r.Grant.EarnedXP, r.Grant.EarnedCoins))
			if r.Grant.LeveledUp {
				lines = append(lines, fmt.Sprintf("Player level %d!", s.Progress.PlayerLevel))
			}
			if r.Won {
				next = "Enter: next level"
			}
		}
		lines = append(lines, next)
		drawMessage(dst, lines...)
	}
}

// drawMessage draws a centered box with one line of text per row.
func drawMessage(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, utf8.RuneCountInString(l))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	box := core.CenteredRect(dst.Width(), dst.Height(), boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorHUD)
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		x := box.X + (boxW-utf8.RuneCountInString(l))/2
		c := core.ColorHUD
		if i == 0 {
			c = core.ColorReward
		}
		dst.DrawText(x, box.Y+1+i, l, c)
	}
}
