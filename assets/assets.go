package assets

import (
	"embed"
	"fmt"
	"sort"

	"github.com/automoto/trapdoor/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// DefaultLevel is played when no level is named.
const DefaultLevel = "dungeon"

// LoadLevels parses every embedded level, keyed by file stem, plus the sorted stems.
func LoadLevels() (map[string]*leveldata.Level, []string, error) {
	return leveldata.LoadAll(assetFS, "levels")
}

// MustLoadLevel returns the embedded level called name, panicking if it is
// missing or broken.
func MustLoadLevel(name string) *leveldata.Level {
	level, err := LoadLevel(name)
	if err != nil {
		panic(err)
	}
	return level
}

// LoadLevel returns the embedded level called name.
func LoadLevel(name string) (*leveldata.Level, error) {
	levels, names, err := LoadLevels()
	if err != nil {
		return nil, err
	}
	level, ok := levels[name]
	if !ok {
		sort.Strings(names)
		return nil, fmt.Errorf("level %q not found (have %v)", name, names)
	}
	return level, nil
}
