package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/zucenko/colormatch/config"
	"github.com/zucenko/colormatch/session"
	"github.com/zucenko/colormatch/spectate"
	"golang.org/x/image/font"
)

// how long the result stays on screen before the window closes
const lingerSeconds = 3

var errGameClosed = errors.New("game closed")

type Game struct {
	Session *session.GameSession
	Hub     *spectate.Hub
	Assets  *Assets
	Tweens  map[*gween.Tween]Action

	Width, Height int
	Banner        *ebiten.Image
	Debug         bool

	published uint64
	closing   bool
}

func NewGame(gs *session.GameSession, hub *spectate.Hub, assets *Assets, width, height int) *Game {
	g := &Game{
		Session:   gs,
		Hub:       hub,
		Assets:    assets,
		Tweens:    make(map[*gween.Tween]Action),
		Width:     width,
		Height:    height,
		published: ^uint64(0),
	}
	gs.OnGameEnded = g.gameEnded
	return g
}

func (g *Game) gameEnded(status session.Status) {
	msg := "Congratulations! You won."
	if status == session.ST_LOST {
		msg = "Game over! You lost."
	}
	log.Info(msg)
	g.Banner = prepareTextImage(msg, g.Assets.Font, g.Width)
	g.after(lingerSeconds, func() {
		g.closing = true
	})
}

func (g *Game) click(x, y int) {
	row, col, ok := session.PixelToCell(x, y, g.Width, g.Height, session.ROWS, session.COLUMNS)
	if !ok {
		return
	}
	if err := g.Session.Click(row, col); err != nil {
		log.Errorf("click %d,%d: %v", x, y, err)
	}
}

// publish sends a snapshot to spectators whenever the session changed.
func (g *Game) publish() {
	if g.Hub == nil || g.Session.Version() == g.published {
		return
	}
	g.published = g.Session.Version()
	g.Hub.Publish(g.Session.Snapshot())
}

func (g *Game) update(screen *ebiten.Image) error {
	dt := time.Second / time.Duration(ebiten.MaxTPS())
	g.Session.Tick(dt)
	g.updateTweens(float32(dt.Seconds()))
	if g.closing {
		return errGameClosed
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click(ebiten.CursorPosition())
	}
	for _, id := range inpututil.JustPressedTouchIDs() {
		g.click(ebiten.TouchPosition(id))
	}
	g.publish()

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	g.draw(screen)
	return nil
}

func (g *Game) draw(screen *ebiten.Image) {
	if e := screen.Fill(COLOR_BACKGROUND); e != nil {
		log.Printf("%v", e)
	}

	for _, tile := range session.Layout(g.Session, g.Width, g.Height) {
		x, y := tile.Bounds.Min.X, tile.Bounds.Min.Y
		if !tile.Revealed {
			g.Assets.Closed.SetPosition(x, y)
			g.Assets.Closed.SetSize(tile.Bounds.Dx(), tile.Bounds.Dy())
			g.Assets.Closed.Draw(screen)
			continue
		}
		diameter := tile.Bounds.Dx()
		if tile.Bounds.Dy() < diameter {
			diameter = tile.Bounds.Dy()
		}
		scale := float64(diameter) / dotSize
		r, gr, b := tile.Color.F64()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(float64(x), float64(y))
		op.ColorM.Scale(r, gr, b, 1)
		screen.DrawImage(g.Assets.Dot, op)
	}

	status := fmt.Sprintf("Attempts: %d", g.Session.Attempts)
	text.Draw(screen, status, g.Assets.SmallFont, 6, g.Height-6, color.White)

	if g.Banner != nil {
		_, h := g.Banner.Size()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, float64(g.Height-h)/2)
		screen.DrawImage(g.Banner, op)
	}

	if g.Debug {
		ebitenutil.DebugPrintAt(screen, g.Session.State.Name(), 6, 0)
	}
}

func prepareTextImage(s string, face font.Face, width int) *ebiten.Image {
	image, _ := ebiten.NewImage(width, 80, ebiten.FilterLinear)
	image.Fill(COLOR_BANNER)
	advance := font.MeasureString(face, s).Ceil()
	text.Draw(image, s, face, (width-advance)/2, 52, color.White)
	return image
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(cfg.LogLevel)

	gs, err := session.NewRandomGameSession(rand.New(rand.NewSource(cfg.Seed)), cfg.Delay)
	if err != nil {
		log.Fatal(err)
	}
	defer gs.Dispose()

	assets, err := LoadAssets()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var hub *spectate.Hub
	if cfg.SpectateAddr != "" {
		hub = spectate.NewHub()
		go hub.Loop(ctx)
		go func() {
			if err := hub.Serve(ctx, cfg.SpectateAddr); err != nil {
				log.Errorf("spectate server: %v", err)
			}
		}()
	}

	game := NewGame(gs, hub, assets, cfg.Width, cfg.Height)
	game.Debug = cfg.LogLevel >= log.DebugLevel
	err = ebiten.Run(game.update, cfg.Width, cfg.Height, 1, "Color Matching Game")
	if err != nil && !errors.Is(err, errGameClosed) {
		log.Fatal(err)
	}
}
