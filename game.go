package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/speeed/common"
	"github.com/milk9111/speeed/ecs"
	"github.com/milk9111/speeed/ecs/component"
	"github.com/milk9111/speeed/ecs/entity"
	"github.com/milk9111/speeed/ecs/system"
	"github.com/milk9111/speeed/levels"
	"github.com/milk9111/speeed/prefabs"
	"golang.org/x/image/font/basicfont"
)

type Game struct {
	frames int
	debug  bool
	paused bool

	pauseUI *ebitenui.UI
	hudFace ebtext.Face

	playerSpec *prefabs.PlayerSpec
	worldSpec  *prefabs.WorldSpec
	watcher    *prefabs.Watcher

	levelNames []string
	levelIndex int

	// input outlives level reloads so held keys stay held across a restart.
	input    *system.InputSystem
	world    *ecs.World
	pipeline *system.Pipeline
	render   *system.RenderSystem

	// Best times and their recordings, per level, for this session only.
	bestTicks map[string]int
	ghosts    map[string][]component.ReplayPoint
}

func NewGame(levelName string, debug, watch bool) (*Game, error) {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	worldSpec, err := prefabs.LoadWorldSpec()
	if err != nil {
		return nil, err
	}
	names, err := levels.Names()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no levels embedded")
	}

	g := &Game{
		debug:      debug,
		hudFace:    ebtext.NewGoXFace(basicfont.Face7x13),
		playerSpec: playerSpec,
		worldSpec:  worldSpec,
		levelNames: names,
		input:      system.NewInputSystem(),
		bestTicks:  make(map[string]int),
		ghosts:     make(map[string][]component.ReplayPoint),
	}
	g.levelIndex = g.indexOf(levelName)
	g.pauseUI = NewPauseUI(g)

	if watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("watch: disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	if err := g.loadLevel(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) indexOf(levelName string) int {
	if levelName == "" {
		return 0
	}
	levelName = strings.TrimSuffix(levelName, ".json")
	for i, name := range g.levelNames {
		if name == levelName {
			return i
		}
	}
	log.Printf("level %s not found, starting at %s", levelName, g.levelNames[0])
	return 0
}

func (g *Game) levelName() string {
	return g.levelNames[g.levelIndex]
}

// loadLevel rebuilds the world and every stateful system for the current
// level. Restarts go through here as well.
func (g *Game) loadLevel() error {
	name := g.levelName()
	lvl, err := levels.LoadLevelFromFS(name)
	if err != nil {
		return err
	}

	w := ecs.NewWorld()
	if err := entity.LoadLevelToWorld(w, lvl); err != nil {
		return err
	}
	if _, err := entity.NewCamera(w, g.worldSpec.CameraSmooth); err != nil {
		return err
	}
	if _, err := entity.NewRunState(w); err != nil {
		return err
	}
	if points := g.ghosts[name]; len(points) > 0 {
		if _, err := entity.NewGhost(w, points, 2*g.playerSpec.Collider.Radius); err != nil {
			return err
		}
	}
	system.NewFadeIn(w)

	var tuning *system.TuningSystem
	if g.watcher != nil {
		tuning = system.NewTuningSystem(g.watcher, g.applyTuning)
	}
	g.pipeline = system.NewPipeline(g.playerSpec, g.worldSpec, g.input, tuning)
	g.render = system.NewRenderSystem(g.worldSpec.PixelsPerUnit, g.playerSpec.EmptyColor.RGBA)
	g.world = w
	g.pipeline.Start(w)
	return nil
}

func (g *Game) applyTuning(spec *prefabs.PlayerSpec) {
	g.playerSpec = spec
	g.pipeline.ApplyTuning(spec)
	g.render.PlayerEmptyColor = spec.EmptyColor.RGBA
}

func (g *Game) restart() {
	if err := g.loadLevel(); err != nil {
		log.Printf("restart %s: %v", g.levelName(), err)
	}
}

func (g *Game) completeLevel(ticks int) {
	name := g.levelName()
	if best, ok := g.bestTicks[name]; !ok || ticks < best {
		g.bestTicks[name] = ticks
		if _, rec, err := ecs.Single(g.world, component.ReplayRecordingComponent.Kind()); err == nil {
			g.ghosts[name] = append([]component.ReplayPoint(nil), rec.Points...)
		}
	}
	log.Printf("level %s: %s", name, formatTicks(ticks))

	g.levelIndex = (g.levelIndex + 1) % len(g.levelNames)
	if err := g.loadLevel(); err != nil {
		log.Printf("load %s: %v", g.levelName(), err)
	}
}

func (g *Game) togglePause() {
	g.paused = !g.paused
}

func (g *Game) requestRestart() {
	g.paused = false
	system.RequestRestart(g.world, "menu")
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || g.startJustPressed() {
		g.togglePause()
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.frames++
	g.pipeline.Update(g.world)

	if reqs, ok := system.LevelCompletions(g.world); ok {
		g.completeLevel(reqs[0].Ticks)
		return nil
	}
	if _, ok := system.Restarts(g.world); ok {
		g.restart()
	}
	return nil
}

func (g *Game) startJustPressed() bool {
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			return true
		}
	}
	return false
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x16, G: 0x18, B: 0x20, A: 0xff})
	g.render.Draw(g.world, screen)
	g.drawHUD(screen)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()), 16, common.BaseHeight-24)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	name := g.levelName()
	ticks := 0
	if _, timer, err := ecs.Single(g.world, component.RunTimerComponent.Kind()); err == nil {
		ticks = timer.Ticks
	}
	line := fmt.Sprintf("%s  %s", name, formatTicks(ticks))
	if best, ok := g.bestTicks[name]; ok {
		line += fmt.Sprintf("  best %s", formatTicks(best))
	}
	if _, p, err := ecs.Single(g.world, component.PlayerComponent.Kind()); err == nil && p.HasJumps() {
		line += "  jump"
	}

	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(16, 16)
	op.ColorScale.ScaleWithColor(color.White)
	ebtext.Draw(screen, line, g.hudFace, op)
}

func formatTicks(ticks int) string {
	return fmt.Sprintf("%.2fs", float64(ticks)/common.TPS)
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
