// Package desktop runs the game in a desktop window through ebiten.
package desktop

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/starwarp/internal/game"
)

// binding maps physical keys to a game key.
type binding struct {
	key  game.Key
	keys []ebiten.Key
}

var bindings = []binding{
	{game.KeyLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{game.KeyRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{game.KeyFire, []ebiten.Key{ebiten.KeySpace}},
	{game.KeyWarp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
}

// Game implements ebiten.Game around a session.
type Game struct {
	cfg      game.Config
	log      *log.Logger
	stage    *Stage
	session  *game.Session
	games    int
	reported bool
}

var _ ebiten.Game = (*Game)(nil)

// New creates a desktop game. A nil logger discards.
func New(cfg game.Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		cfg:   cfg,
		log:   logger,
		stage: NewStage(),
	}
	g.start()
	return g
}

func (g *Game) start() {
	if g.session != nil {
		g.session.Close()
	}
	g.session = game.NewSession(g.cfg, g.stage)
	g.games++
	g.reported = false
	g.log.Info("game started", "game", g.games)
}

// Update handles input and advances the session by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.log.Info("player quit", "game", g.games)
		return ebiten.Termination
	}
	if g.session.Over() && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.log.Info("restart", "game", g.games)
		g.start()
		return nil
	}

	for _, b := range bindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				g.session.KeyDown(b.key)
			}
			if inpututil.IsKeyJustReleased(k) {
				g.session.KeyUp(b.key)
			}
		}
	}

	g.session.Advance(time.Second / time.Duration(ebiten.TPS()))

	if g.session.Over() && !g.reported {
		st := g.session.State()
		g.log.Info("game over",
			"game", g.games,
			"outcome", g.session.Outcome(),
			"destroyed", st.Destroyed,
			"ammo", st.Ammo,
		)
		g.reported = true
	}
	return nil
}

// Draw renders the stage.
func (g *Game) Draw(screen *ebiten.Image) {
	g.stage.Draw(screen)
}

// Layout fixes the logical screen size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.Screen.Width), int(g.cfg.Screen.Height)
}
