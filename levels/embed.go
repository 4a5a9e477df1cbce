package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// Level is a single course in y-up world units.
type Level struct {
	Name       string      `json:"name"`
	Start      Point       `json:"start"`
	Finish     Point       `json:"finish"`
	Solids     []Solid     `json:"solids"`
	Portals    []Portal    `json:"portals,omitempty"`
	Launchpads []Launchpad `json:"launchpads,omitempty"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Solid is an axis-aligned box centered on (X, Y).
type Solid struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	W            float64 `json:"w"`
	H            float64 `json:"h"`
	Ground       bool    `json:"ground"`
	RestoresJump bool    `json:"restores_jump"`
}

// Portal angles are in degrees, as authored.
type Portal struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Destination Point   `json:"destination"`
	AngleIn     float64 `json:"angle_in"`
	AngleOut    float64 `json:"angle_out"`
}

type Launchpad struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
}

func LoadLevelFromFS(name string) (*Level, error) {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level %s: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(path.Base(name), ".json")
	}
	return &lvl, nil
}

// Names lists the embedded levels in play order (lexical file order).
func Names() ([]string, error) {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}
