package breakout

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar      = '═'
	BallChar        = '●'
	BrickChar       = '█'
	HardBrickChar   = '▓' // Hard brick that has not been hit yet
	SolidBrickChar  = '▒'
	dialogSeparator = '─'
)

// Element colors
const (
	BorderColor = core.ColorWhite
	PaddleColor = core.ColorBrightWhite
	BallColor   = core.ColorRed
	DialogColor = core.ColorBrightYellow
	HUDColor    = core.ColorBrightCyan
)

const (
	serveHintReady = "Press SPACE to launch"
	serveHintWait  = "Get ready..."
)

var (
	welcomeDialog = []string{
		"──   Welcome to breakout    ──",
		"",
		"       <space>  begin",
		"       q        quit",
		"",
		"  Controls",
		"       h    move left",
		"       l    move right",
		"       p    pause",
		"       r    reset",
		"       q    quit",
	}
	pausedDialog = []string{
		"──  PAUSED  ──",
		"   p  resume",
		"   q  quit",
	}
	gameOverDialog = []string{
		"──  GAME OVER  ──",
		"   r  replay",
		"   q  quit",
	}
	victoryDialog = []string{
		"── CONGRATULATION ──",
		"     r  replay",
		"     q  quit",
	}
)

// Render draws the snapshot. The border, HUD and dialogs are part of the
// playfield, so dst should be exactly Width x Height.
func (s Snapshot) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawStyledBox(core.NewRect(0, 0, s.Width, s.Height), core.BoxDouble, BorderColor)
	s.renderHUD(dst)
	s.renderBricks(dst)
	s.renderPaddle(dst)
	s.renderBall(dst)
	s.renderOverlay(dst)
}

// renderHUD draws the score, lives and level over the top border and the
// level name over the bottom border.
func (s Snapshot) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf(" Score: %d ", s.Score)
	right := fmt.Sprintf(" Lives: %d  Level: %d ", s.Lives, s.Level)
	if utf8.RuneCountInString(left)+utf8.RuneCountInString(right)+4 > s.Width {
		right = fmt.Sprintf(" ♥%d L%d ", s.Lives, s.Level)
	}

	dst.DrawTextColored(2, 0, left, HUDColor)
	dst.DrawTextColored(s.Width-2-utf8.RuneCountInString(right), 0, right, HUDColor)

	if s.LevelName != "" {
		name := " " + s.LevelName + " "
		dst.DrawTextColored((s.Width-utf8.RuneCountInString(name))/2, s.Height-1, name, HUDColor)
	}
}

// renderBricks draws all alive bricks with a one-cell gap between neighbours.
func (s Snapshot) renderBricks(dst *core.Screen) {
	w := &s.Wall

	for i, b := range w.Bricks {
		if !b.Alive || b.Kind == BrickEmpty {
			continue
		}

		glyph := BrickChar
		switch {
		case b.Kind == BrickSolid:
			glyph = SolidBrickChar
		case b.Kind == BrickHard && b.HP > 1:
			glyph = HardBrickChar
		}

		r := w.Rect(i)
		for dx := range r.W {
			dst.SetColored(r.X+dx, r.Y, glyph, b.Color)
		}
	}
}

// renderPaddle draws the player's paddle.
func (s Snapshot) renderPaddle(dst *core.Screen) {
	x := s.Paddle.CellX()
	for i := range s.Paddle.Width {
		dst.SetColored(x+i, s.Paddle.Y, PaddleChar, PaddleColor)
	}
}

// renderBall draws the ball.
func (s Snapshot) renderBall(dst *core.Screen) {
	dst.SetColored(s.Ball.CellX(), s.Ball.CellY(), BallChar, BallColor)
}

// renderOverlay draws phase dialogs and hints.
func (s Snapshot) renderOverlay(dst *core.Screen) {
	switch s.Phase {
	case core.PhaseWelcome:
		drawDialog(dst, welcomeDialog, true)

	case core.PhaseServe:
		hint := serveHintReady
		if s.ServeDelay > 0 {
			hint = serveHintWait
		}
		dst.DrawTextColored((s.Width-utf8.RuneCountInString(hint))/2, s.Paddle.Y+1, hint, DialogColor)

	case core.PhasePaused:
		drawDialog(dst, pausedDialog, false)

	case core.PhaseGameOver:
		drawDialog(dst, append(slices.Clone(gameOverDialog), fmt.Sprintf("   score %d", s.Score)), false)

	case core.PhaseVictory:
		drawDialog(dst, append(slices.Clone(victoryDialog), fmt.Sprintf("     score %d", s.Score)), false)
	}
}

// drawDialog draws a double-bordered box centred on the screen. With
// separator set, a rule is drawn under the first line.
func drawDialog(dst *core.Screen, lines []string, separator bool) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, utf8.RuneCountInString(l))
	}

	body := make([]string, 0, len(lines)+1)
	for i, l := range lines {
		body = append(body, l+strings.Repeat(" ", inner-utf8.RuneCountInString(l)))
		if i == 0 && separator {
			body = append(body, strings.Repeat(string(dialogSeparator), inner))
		}
	}

	box := core.NewRect(0, 0, inner+2, len(body)+2)
	box.X = (dst.Width() - box.W) / 2
	box.Y = (dst.Height() - box.H) / 2

	dst.DrawRect(box, ' ')
	dst.DrawStyledBox(box, core.BoxDouble, DialogColor)
	for i, l := range body {
		dst.DrawTextColored(box.X+1, box.Y+1+i, l, DialogColor)
	}
}
