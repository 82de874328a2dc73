package breakout

import (
	"fmt"
	"math/rand/v2"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Mode selects how levels follow each other.
type Mode int

const (
	ModeSingle   Mode = iota // One level, win when it is cleared
	ModeCampaign             // Play through levels, win at end
	ModeEndless              // Play forever, score until game over
)

// String returns the CLI name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeCampaign:
		return "campaign"
	case ModeEndless:
		return "endless"
	default:
		return "single"
	}
}

// GameID returns the registry and score-table ID for the mode.
func (m Mode) GameID() string {
	switch m {
	case ModeCampaign:
		return "breakout_campaign"
	case ModeEndless:
		return "breakout_endless"
	default:
		return "breakout"
	}
}

// ParseMode converts a CLI mode name. The empty string means single.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "", "single":
		return ModeSingle, nil
	case "campaign":
		return ModeCampaign, nil
	case "endless":
		return ModeEndless, nil
	default:
		return ModeSingle, fmt.Errorf("breakout: unknown mode %q (want single, campaign or endless)", name)
	}
}

// rngStream is the second PCG word; the seed supplies the first.
const rngStream = 0x9e3779b97f4a7c15

// Game implements the Breakout game logic.
type Game struct {
	mode   Mode
	cfg    config.BreakoutConfig
	levels []LevelSpec
	start  int // First level of a run

	runtime core.RuntimeConfig
	rng     *rand.Rand
	bounds  Bounds

	// Game objects
	ball   Ball
	paddle Paddle
	wall   *Wall

	// Game state
	phase      core.Phase
	resume     core.Phase // Phase to return to when unpausing
	score      int
	lives      int
	levelIndex int
	cycle      int // Completed passes through the level list (endless mode)
	tick       uint64
	serveDelay int     // Countdown before allowing serve after miss
	speed      float64 // Launch speed, raised each endless cycle

	events []core.Event
}

// New creates a game in the given mode. A nil Options.Config uses the
// built-in tuning; an unknown Options.Level starts from the first level.
// Levels found in Options.LevelDir follow the built-in ones.
func New(mode Mode, opts registry.Options) *Game {
	cfg := config.DefaultBreakoutConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}

	// The play and serve commands load LevelDir first and log its errors.
	// Files that parsed are still returned alongside the error.
	extra, _ := LoadLevelDir(opts.LevelDir)
	levels := Catalog(extra)
	start := 0
	if i := indexOf(levels, opts.Level); i >= 0 {
		start = i
	}
	if mode == ModeSingle {
		levels = levels[start : start+1]
		start = 0
	}

	g := &Game{mode: mode, cfg: cfg, levels: levels, start: start}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.mode.GameID()
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	switch g.mode {
	case ModeCampaign:
		return "Breakout (Campaign)"
	case ModeEndless:
		return "Breakout (Endless)"
	default:
		return "Breakout"
	}
}

// Reset sizes the game to the playfield, reseeds the RNG and returns to the
// welcome screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewPCG(uint64(runtime.Seed), rngStream)) //#nosec G115 -- seed bits are reinterpreted
	g.bounds = InteriorBounds(runtime.ScreenW, runtime.ScreenH)
	g.newRun()
	g.phase = core.PhaseWelcome
	g.resume = core.PhaseWelcome
}

// newRun restores score, lives and the first level.
func (g *Game) newRun() {
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.levelIndex = g.start
	g.cycle = 0
	g.tick = 0
	g.serveDelay = 0
	g.speed = g.cfg.Physics.BallSpeed

	g.paddle = Paddle{
		X:     float64((g.runtime.ScreenW - g.cfg.Paddle.Width) / 2),
		Y:     g.runtime.ScreenH - 3,
		Width: g.cfg.Paddle.Width,
	}

	g.loadLevel(g.levelIndex)
	g.parkBall()
}

// loadLevel builds the wall for a level index.
func (g *Game) loadLevel(index int) {
	g.wall = BuildWall(g.levels[index], g.runtime.ScreenW, g.runtime.ScreenH, g.cfg.Bricks, g.rng)
}

// parkBall puts a motionless ball on top of the paddle.
func (g *Game) parkBall() {
	g.ball = Ball{
		X: g.paddle.CenterX(),
		Y: float64(g.paddle.Y - 1),
	}
}

// launch sends the parked ball up and to the right.
func (g *Game) launch() {
	g.parkBall()
	g.ball.VX = g.speed
	g.ball.VY = -g.speed
	g.phase = core.PhasePlaying
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if in.Has(core.ActionRestart) && g.phase != core.PhaseWelcome {
		g.newRun()
		g.phase = core.PhaseServe
		return g.result()
	}

	switch g.phase {
	case core.PhaseWelcome:
		if in.Has(core.ActionLaunch) {
			g.launch()
		}
		return g.result()

	case core.PhaseGameOver, core.PhaseVictory:
		return g.result()

	case core.PhasePaused:
		if in.Has(core.ActionPause) {
			g.phase = g.resume
		}
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.resume = g.phase
		g.phase = core.PhasePaused
		return g.result()
	}

	g.tick++
	g.movePaddle(in.Direction())

	if g.phase == core.PhaseServe {
		g.parkBall()
		if g.serveDelay > 0 {
			g.serveDelay--
		} else if in.Has(core.ActionLaunch) {
			g.launch()
		}
		return g.result()
	}

	g.updateBall()
	return g.result()
}

// movePaddle moves the paddle by whole steps and keeps it inside the border.
func (g *Game) movePaddle(dir int) {
	if dir == 0 {
		return
	}
	maxX := float64(core.Max(1, g.runtime.ScreenW-1-g.paddle.Width))
	g.paddle.X = core.ClampF(g.paddle.X+float64(dir)*g.cfg.Physics.PaddleSpeed, 1, maxX)
}

// updateBall moves the ball and resolves at most one collision:
// walls first, then the paddle, then bricks.
func (g *Game) updateBall() {
	prevX, prevY := g.ball.X, g.ball.Y
	g.ball.Move()

	if Missed(&g.ball, g.bounds) {
		g.loseLife()
		return
	}

	if side := CheckWallCollision(&g.ball, g.bounds); side != CollisionNone {
		g.emit(core.EventWallBounce, g.ball.CellX(), g.ball.CellY(), 0)
		return
	}

	if CheckPaddleCollision(&g.ball, &g.paddle, g.cfg.Physics.English, g.cfg.Physics.MaxBallSpeed) {
		g.emit(core.EventPaddleBounce, g.ball.CellX(), g.paddle.Y, 0)
		return
	}

	if hit, ok := CheckBrickCollision(&g.ball, prevX, prevY, g.wall); ok {
		g.hitBrick(hit.Index)
	}
}

// hitBrick damages a brick and handles the level being cleared.
func (g *Game) hitBrick(i int) {
	brick := &g.wall.Bricks[i]
	x, y := g.wall.Rect(i).Center()

	// Solid bricks cannot be destroyed
	if brick.Kind == BrickSolid {
		g.emit(core.EventBrickHit, x, y, 0)
		return
	}

	brick.HP--
	if brick.HP > 0 {
		g.emit(core.EventBrickHit, x, y, 0)
		return
	}

	brick.Alive = false
	g.score += brick.Points
	g.emit(core.EventBrickDestroyed, x, y, brick.Points)

	if g.wall.Remaining() == 0 {
		g.clearLevel()
	}
}

// clearLevel moves on to the next level or ends the run with a win.
func (g *Game) clearLevel() {
	switch g.mode {
	case ModeSingle:
		g.finish(core.PhaseVictory, core.EventVictory)
		return

	case ModeCampaign:
		if g.levelIndex+1 >= len(g.levels) {
			g.finish(core.PhaseVictory, core.EventVictory)
			return
		}
		g.levelIndex++

	case ModeEndless:
		g.levelIndex++
		if g.levelIndex >= len(g.levels) {
			g.levelIndex = 0
			g.cycle++
			g.speed = min(g.speed+g.cfg.Physics.EndlessStep, g.cfg.Physics.MaxBallSpeed)
		}
	}

	g.emit(core.EventLevelCleared, g.ball.CellX(), g.ball.CellY(), 0)
	g.loadLevel(g.levelIndex)
	g.parkBall()
	g.phase = core.PhaseServe
	g.serveDelay = g.cfg.Gameplay.ServeDelay
}

// loseLife handles a ball that dropped past the paddle.
func (g *Game) loseLife() {
	g.lives--
	g.ball.X = core.ClampF(g.ball.X, g.bounds.MinX, g.bounds.MaxX)
	g.ball.Y = g.bounds.MaxY
	g.emit(core.EventLifeLost, g.ball.CellX(), g.ball.CellY(), 0)

	if g.lives <= 0 {
		g.lives = 0
		g.finish(core.PhaseGameOver, core.EventGameOver)
		return
	}

	g.parkBall()
	g.phase = core.PhaseServe
	g.serveDelay = g.cfg.Gameplay.ServeDelay
}

// finish stops the ball where it is and enters a terminal phase.
func (g *Game) finish(phase core.Phase, kind core.EventKind) {
	g.ball.VX, g.ball.VY = 0, 0
	g.phase = phase
	g.emit(kind, g.ball.CellX(), g.ball.CellY(), 0)
}

func (g *Game) emit(kind core.EventKind, x, y, points int) {
	g.events = append(g.events, core.Event{Kind: kind, X: x, Y: y, Points: points})
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// levelNumber is the 1-based level shown to the player.
func (g *Game) levelNumber() int {
	if g.mode == ModeEndless {
		return g.cycle*len(g.levels) + g.levelIndex + 1
	}
	return g.levelIndex + 1
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.Snapshot().Render(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Lives: g.lives,
		Level: g.levelNumber(),
		Phase: g.phase,
	}
}

// Register the modes with the registry
func init() {
	registry.Register(ModeSingle.GameID(), func(opts registry.Options) registry.Game {
		return New(ModeSingle, opts)
	})
	registry.Register(ModeCampaign.GameID(), func(opts registry.Options) registry.Game {
		return New(ModeCampaign, opts)
	})
	registry.Register(ModeEndless.GameID(), func(opts registry.Options) registry.Game {
		return New(ModeEndless, opts)
	})
}
