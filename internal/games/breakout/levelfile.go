package breakout

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// DefaultLevelDir holds user level files.
const DefaultLevelDir = "~/.breakout/levels"

// levelFile is the YAML layout of a custom level:
//
//	id: zigzag
//	name: Zig Zag
//	colors: [cyan, blue]
//	pattern:
//	  - "#..#..#..#"
//	  - ".H..H..H.."
type levelFile struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Colors  []string `yaml:"colors,omitempty"`
	Pattern []string `yaml:"pattern"`
}

// ParseLevel parses one YAML level definition.
func ParseLevel(data []byte) (LevelSpec, error) {
	var lf levelFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return LevelSpec{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if lf.ID == "" {
		return LevelSpec{}, errors.New("level has no id")
	}
	if len(lf.Pattern) == 0 {
		return LevelSpec{}, fmt.Errorf("level %q has no pattern", lf.ID)
	}

	destructible := false
	for row, line := range lf.Pattern {
		for _, ch := range line {
			switch {
			case ch == '.' || ch == 'X' || ch == 'x':
			case ch == '#' || ch == 'H' || ch == 'h' || (ch >= '1' && ch <= '9'):
				destructible = true
			default:
				return LevelSpec{}, fmt.Errorf("level %q row %d: unknown brick %q", lf.ID, row+1, ch)
			}
		}
	}
	if !destructible {
		return LevelSpec{}, fmt.Errorf("level %q has nothing to destroy", lf.ID)
	}

	name := lf.Name
	if name == "" {
		name = lf.ID
	}

	var colors []core.Color
	for _, c := range lf.Colors {
		colors = append(colors, core.ParseColor(strings.ToLower(c)))
	}

	return LevelSpec{ID: lf.ID, Name: name, Pattern: lf.Pattern, Colors: colors}, nil
}

// LoadLevelDir loads every .yaml/.yml level under dir, sorted by ID.
// A missing directory yields no levels. Files that fail to parse are
// skipped and reported together in the returned error.
func LoadLevelDir(dir string) ([]LevelSpec, error) {
	if dir == "" {
		return nil, nil
	}
	dir, err := config.ExpandHome(dir)
	if err != nil {
		return nil, err
	}

	var (
		levels []LevelSpec
		errs   []error
	)
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
		default:
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		spec, err := ParseLevel(data)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			return nil
		}
		spec.Source = path
		levels = append(levels, spec)
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("breakout: walking %s: %w", dir, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	if len(errs) > 0 {
		return levels, fmt.Errorf("breakout: bad level files: %w", errors.Join(errs...))
	}
	return levels, nil
}
