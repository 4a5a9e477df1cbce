package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/milk9111/speeed/common"
	"github.com/milk9111/speeed/ecs"
	"github.com/milk9111/speeed/ecs/component"
	"github.com/milk9111/speeed/ecs/entity"
	"github.com/milk9111/speeed/ecs/system"
	"github.com/milk9111/speeed/levels"
	"github.com/milk9111/speeed/prefabs"
)

// step switches the held actions from Tick onward.
type step struct {
	Tick    int
	Actions system.Actions
}

func main() {
	levelName := flag.String("level", "", "level to simulate (defaults to the first level)")
	ticks := flag.Int("ticks", 10*common.TPS, "maximum number of fixed steps to run")
	script := flag.String("script", "0:right", "held actions per tick, e.g. \"0:right,30:right+jump,36:right\"")
	every := flag.Int("every", common.TPS/4, "log the player state every N ticks (0 disables)")
	debug := flag.Bool("debug", false, "panic on invariant violations")
	flag.Parse()

	system.Debug = *debug

	steps, err := parseScript(*script)
	if err != nil {
		log.Fatal(err)
	}

	name := *levelName
	if name == "" {
		names, err := levels.Names()
		if err != nil || len(names) == 0 {
			log.Fatalf("simulate: no levels available: %v", err)
		}
		name = names[0]
	}

	outcome, err := simulate(name, steps, *ticks, *every)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(outcome)
	if outcome.Kind != "complete" {
		os.Exit(1)
	}
}

type result struct {
	Kind  string
	Ticks int
	X, Y  float64
}

func (r result) String() string {
	return fmt.Sprintf("%s after %d ticks (%.2fs) at (%.2f, %.2f)", r.Kind, r.Ticks, float64(r.Ticks)/common.TPS, r.X, r.Y)
}

func simulate(levelName string, steps []step, maxTicks, every int) (result, error) {
	lvl, err := levels.LoadLevelFromFS(levelName)
	if err != nil {
		return result{}, err
	}
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return result{}, err
	}
	worldSpec, err := prefabs.LoadWorldSpec()
	if err != nil {
		return result{}, err
	}

	w := ecs.NewWorld()
	if err := entity.LoadLevelToWorld(w, lvl); err != nil {
		return result{}, err
	}
	if _, err := entity.NewRunState(w); err != nil {
		return result{}, err
	}

	tick := 0
	input := system.NewInputSystemWithSource(func() system.Actions {
		return actionsAt(steps, tick)
	})
	pipeline := system.NewPipeline(playerSpec, worldSpec, input, nil)
	pipeline.Start(w)

	for ; tick < maxTicks; tick++ {
		pipeline.Update(w)

		x, y := playerPosition(w)
		if done, ok := system.LevelCompletions(w); ok {
			return result{Kind: "complete", Ticks: done[len(done)-1].Ticks, X: x, Y: y}, nil
		}
		if reqs, ok := system.Restarts(w); ok {
			return result{Kind: "restart (" + reqs[0].Reason + ")", Ticks: tick + 1, X: x, Y: y}, nil
		}
		if every > 0 && tick%every == 0 {
			logPlayer(w, tick)
		}
	}
	x, y := playerPosition(w)
	return result{Kind: "timeout", Ticks: maxTicks, X: x, Y: y}, nil
}

func actionsAt(steps []step, tick int) system.Actions {
	var a system.Actions
	for _, s := range steps {
		if s.Tick > tick {
			break
		}
		a = s.Actions
	}
	return a
}

// parseScript reads "tick:action+action" entries separated by commas. An
// entry with no actions ("60:") releases everything.
func parseScript(s string) ([]step, error) {
	var steps []step
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		tickStr, actions, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("simulate: entry %q: missing ':'", entry)
		}
		tick, err := strconv.Atoi(tickStr)
		if err != nil || tick < 0 {
			return nil, fmt.Errorf("simulate: entry %q: bad tick", entry)
		}
		st := step{Tick: tick}
		for _, name := range strings.Split(actions, "+") {
			switch strings.ToLower(strings.TrimSpace(name)) {
			case "":
			case "left":
				st.Actions.Left = true
			case "right":
				st.Actions.Right = true
			case "jump":
				st.Actions.Jump = true
			case "pound":
				st.Actions.GroundPound = true
			case "restart":
				st.Actions.Restart = true
			default:
				return nil, fmt.Errorf("simulate: entry %q: unknown action %q", entry, name)
			}
		}
		steps = append(steps, st)
	}
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].Tick < steps[j].Tick })
	return steps, nil
}

func playerPosition(w *ecs.World) (float64, float64) {
	e, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return 0, 0
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0, 0
	}
	return t.X, t.Y
}

func logPlayer(w *ecs.World, tick int) {
	e, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		log.Printf("tick %4d: no player", tick)
		return
	}
	p, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
	t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	v, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	if p == nil || t == nil || v == nil {
		return
	}
	log.Printf("tick %4d: pos=(%.2f, %.2f) vel=(%.2f, %.2f) air=%t wall=%t jumps=%d swapped=%t",
		tick, t.X, t.Y, v.X, v.Y, p.InAir, p.OnWall, p.RemainingJumps, p.DirectionSwapped)
}
