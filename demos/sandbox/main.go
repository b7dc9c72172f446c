// sandbox is an interactive playground for the pebble physics core: bodies
// rain under gravity, click to spawn, drag to throw, and the control bar or
// keyboard tunes the world live. An optional YAML config is hot-reloaded on
// save, and a JSON scenario script can pre-seed the world.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/pebble"
)

// uiBarHeight is the strip reserved for the control panel; pointer presses
// above this line go to the UI, not the playfield.
const uiBarHeight = 32

// spawnPop animates a just-spawned body's drawn radius from 0 to full size.
// Display only — the simulation sees the true radius from the first step.
type spawnPop struct {
	tween *gween.Tween
	scale float64
}

type Game struct {
	cfg     pebble.Config
	world   *pebble.World
	stepper *pebble.Stepper

	panel   *controlPanel
	watcher *configWatcher

	snaps []pebble.BodySnapshot
	rng   *rand.Rand

	lastTick time.Time

	dragging   pebble.Handle
	dragActive bool
	prevCX     float64
	prevCY     float64

	pops map[pebble.Handle]*spawnPop
}

func newGame(cfg pebble.Config, watcher *configWatcher) *Game {
	g := &Game{
		cfg:     cfg,
		world:   pebble.NewWorld(cfg.World),
		watcher: watcher,
		rng:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0xda7a)),
		pops:    make(map[pebble.Handle]*spawnPop),
	}
	g.stepper = pebble.NewStepper(g.world, cfg.World)
	g.panel = newControlPanel(g)
	g.addRandom(cfg.Spawn.InitialBodies)
	return g
}

func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	g.pollConfigReload()
	g.handleKeys()
	g.handlePointer()

	g.panel.refresh(g)
	g.panel.ui.Update()

	// Real elapsed time, not the nominal tick rate: the stepper owns the
	// clamping and fixed-step bookkeeping.
	now := time.Now()
	if !g.lastTick.IsZero() {
		g.stepper.Tick(now.Sub(g.lastTick).Seconds())
	}
	g.lastTick = now

	// Re-assert the dragged body after stepping so the draw matches the
	// cursor exactly.
	if g.dragActive {
		cx, cy := cursorPosition()
		vx := (cx - g.prevCX) / dt
		vy := (cy - g.prevCY) / dt
		if err := g.world.SetBodyKinematic(g.dragging, cx, cy, vx, vy); err != nil {
			g.dragActive = false // body was cleared out from under the drag
		}
		g.prevCX, g.prevCY = cx, cy
	}

	for h, p := range g.pops {
		v, done := p.tween.Update(float32(dt))
		p.scale = float64(v)
		if done {
			delete(g.pops, h)
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x0f, G: 0x0f, B: 0x17, A: 0xff})

	g.snaps = g.world.Snapshot(g.snaps[:0])
	for _, s := range g.snaps {
		r := s.Radius
		if p, ok := g.pops[s.Handle]; ok {
			r *= p.scale
		}
		vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), float32(r), s.Color.NRGBA(), true)
	}

	if g.dragActive {
		if i := findSnapshot(g.snaps, g.dragging); i >= 0 {
			s := g.snaps[i]
			vector.StrokeCircle(screen, float32(s.X), float32(s.Y), float32(s.Radius+3), 2, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xc0}, true)
		}
	}

	g.panel.ui.Draw(screen)

	_, h := g.world.Size()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.1f  TPS %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), 8, int(h)-18)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.world.Size()
	return int(w), int(h)
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.stepper.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.stepper.Paused() {
		g.stepper.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.clearAll()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.addRandom(10)
	}
}

func (g *Game) handlePointer() {
	cx, cy := cursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && cy > uiBarHeight {
		if h, ok := g.world.HitTest(cx, cy); ok {
			g.dragging = h
			g.dragActive = true
		} else {
			g.spawnAt(cx, cy, 0, 0)
		}
		g.prevCX, g.prevCY = cx, cy
	}

	if g.dragActive && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.dragActive = false
	}
}

func (g *Game) pollConfigReload() {
	if g.watcher == nil {
		return
	}
	select {
	case path := <-g.watcher.Events:
		cfg, err := pebble.LoadConfig(path)
		if err != nil {
			log.Printf("config reload: %v", err)
			return
		}
		g.cfg = cfg
		g.world.SetGravity(cfg.World.Gravity)
		g.world.SetRestitution(cfg.World.Restitution)
		log.Printf("config reloaded: gravity %.0f, restitution %.2f", cfg.World.Gravity, cfg.World.Restitution)
	case err := <-g.watcher.Errors:
		log.Printf("config watcher: %v", err)
	default:
	}
}

// spawnAt creates one body with a randomized radius and color, plus a pop-in
// tween for the first third of a second.
func (g *Game) spawnAt(x, y, vx, vy float64) {
	sp := g.cfg.Spawn
	radius := sp.MinRadius + g.rng.Float64()*(sp.MaxRadius-sp.MinRadius)
	c := pebble.Color{
		R: 0.3 + g.rng.Float64()*0.7,
		G: 0.3 + g.rng.Float64()*0.7,
		B: 0.3 + g.rng.Float64()*0.7,
		A: 1,
	}
	h, err := g.world.Spawn(x, y, radius, vx, vy, c)
	if err != nil {
		log.Printf("spawn: %v", err)
		return
	}
	g.pops[h] = &spawnPop{tween: gween.New(0, 1, 0.3, ease.OutBack)}
}

func (g *Game) addRandom(n int) {
	w, h := g.world.Size()
	sp := g.cfg.Spawn
	for i := 0; i < n; i++ {
		r := sp.MaxRadius
		x := r + g.rng.Float64()*(w-2*r)
		y := uiBarHeight + r + g.rng.Float64()*(h-uiBarHeight-2*r)
		vx := (g.rng.Float64() - 0.5) * 2 * sp.MaxInitialSpeed
		vy := (g.rng.Float64() - 0.5) * 2 * sp.MaxInitialSpeed
		g.spawnAt(x, y, vx, vy)
	}
}

func (g *Game) clearAll() {
	g.world.ClearAll()
	g.dragActive = false
	clear(g.pops)
}

func (g *Game) nudgeGravity(delta float64) {
	if err := g.world.SetGravity(g.world.Gravity() + delta); err != nil {
		log.Printf("set gravity: %v", err)
	}
}

func (g *Game) nudgeRestitution(delta float64) {
	e := clampF(g.world.Restitution()+delta, 0, 1)
	if err := g.world.SetRestitution(e); err != nil {
		log.Printf("set restitution: %v", err)
	}
}

func cursorPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func findSnapshot(snaps []pebble.BodySnapshot, h pebble.Handle) int {
	for i := range snaps {
		if snaps[i].Handle == h {
			return i
		}
	}
	return -1
}

func clampF(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func main() {
	configPath := flag.String("config", "", "YAML config file (hot-reloaded on save)")
	scriptPath := flag.String("script", "", "JSON scenario to run before the window opens")
	flag.Parse()

	cfg := pebble.DefaultConfig()
	var watcher *configWatcher
	if *configPath != "" {
		c, err := pebble.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = c

		w, err := newConfigWatcher(*configPath)
		if err != nil {
			log.Printf("config watch disabled: %v", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	g := newGame(cfg, watcher)

	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatal(err)
		}
		sc, err := pebble.LoadScenario(data)
		if err != nil {
			log.Fatal(err)
		}
		if err := sc.Run(g.world, g.stepper); err != nil {
			log.Fatal(err)
		}
	}

	w, h := g.world.Size()
	ebiten.SetWindowSize(int(w), int(h))
	ebiten.SetWindowTitle("pebble sandbox")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
