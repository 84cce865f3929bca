package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names understood by the loader.
const (
	LayerWalls         = "Walls"
	GroupPlayer        = "Player"
	GroupEnemies       = "Enemies"
	GroupPits          = "Pits"
	GroupArrowSpawners = "ArrowSpawners"
	GroupSwitches      = "Switches"
	GroupKeys          = "Keys"
	GroupDoors         = "Doors"
	GroupSigns         = "Signs"
)

var (
	ErrMissingWalls    = errors.New("level has no Walls tile layer")
	ErrMissingPlayer   = errors.New("level has no player spawn")
	ErrMissingName     = errors.New("trap object has no name")
	ErrMissingTrapName = errors.New("switch has no trapName property")
	ErrDuplicateName   = errors.New("trap name used twice")
)

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// (game) or os.DirFS (tools and tests).
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:       strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:      levelMap.Width,
		Height:     levelMap.Height,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	walls := false
	for _, layer := range levelMap.Layers {
		if layer.Name != LayerWalls {
			continue
		}
		level.Solid = make([]bool, levelMap.Width*levelMap.Height)
		for i, tile := range layer.Tiles {
			if i >= len(level.Solid) {
				break
			}
			level.Solid[i] = !tile.IsNil()
		}
		walls = true
		break
	}
	if !walls {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrMissingWalls)
	}

	hasPlayer := false
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			spawn := Spawn{Name: o.Name, X: o.X, Y: o.Y, W: o.Width, H: o.Height}

			switch og.Name {
			case GroupPlayer:
				level.Player = spawn
				hasPlayer = true
			case GroupEnemies:
				level.Enemies = append(level.Enemies, spawn)
			case GroupPits:
				if spawn.Name == "" {
					return nil, fmt.Errorf("%s: pit %d: %w", tmxPath, o.ID, ErrMissingName)
				}
				level.Pits = append(level.Pits, spawn)
			case GroupArrowSpawners:
				if spawn.Name == "" {
					return nil, fmt.Errorf("%s: arrow spawner %d: %w", tmxPath, o.ID, ErrMissingName)
				}
				level.ArrowSpawners = append(level.ArrowSpawners, SpawnerSpawn{
					Spawn:  spawn,
					Angle:  o.Properties.GetFloat("angle"),
					Period: time.Duration(o.Properties.GetInt("period")) * time.Millisecond,
					Active: o.Properties.GetBool("active"),
				})
			case GroupSwitches:
				trapName := o.Properties.GetString("trapName")
				if trapName == "" {
					return nil, fmt.Errorf("%s: switch %d: %w", tmxPath, o.ID, ErrMissingTrapName)
				}
				level.Switches = append(level.Switches, SwitchSpawn{Spawn: spawn, TrapName: trapName})
			case GroupKeys:
				level.Keys = append(level.Keys, spawn)
			case GroupDoors:
				level.Doors = append(level.Doors, spawn)
			case GroupSigns:
				level.Signs = append(level.Signs, SignSpawn{Spawn: spawn, Text: o.Properties.GetString("text")})
			}
		}
	}

	if !hasPlayer {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrMissingPlayer)
	}
	if err := level.checkTrapNames(); err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}

	return level, nil
}

// TrapNames returns every pit and spawner name in the level.
func (l *Level) TrapNames() []string {
	names := make([]string, 0, len(l.Pits)+len(l.ArrowSpawners))
	for _, p := range l.Pits {
		names = append(names, p.Name)
	}
	for _, s := range l.ArrowSpawners {
		names = append(names, s.Name)
	}
	return names
}

func (l *Level) checkTrapNames() error {
	seen := make(map[string]bool)
	for _, name := range l.TrapNames() {
		if seen[name] {
			return fmt.Errorf("%q: %w", name, ErrDuplicateName)
		}
		seen[name] = true
	}
	return nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
