package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

const (
	groupPlayerSpawn = "PlayerSpawn"
	groupEnemySpawn  = "EnemySpawn"
	groupPatrolPaths = "PatrolPaths"
)

// ErrNoPlayerSpawn is returned for maps without a PlayerSpawn object.
var ErrNoPlayerSpawn = errors.New("no player spawn")

// LoadEncounter parses a TMX file from fsys. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS. Pixel coordinates are divided by the tile size.
func LoadEncounter(fsys fs.FS, tmxPath string) (*Encounter, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("leveldata: load %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("leveldata: load %s: tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	toWorld := func(x, y float64) math.Vec2 {
		return math.Vec2{X: x / tileW, Y: y / tileH}
	}

	enc := &Encounter{
		Name:        strings.TrimSuffix(filepath.Base(tmxPath), filepath.Ext(tmxPath)),
		Width:       float64(levelMap.Width),
		Height:      float64(levelMap.Height),
		PatrolPaths: make(map[string]PatrolPath),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupPlayerSpawn:
			for _, o := range og.Objects {
				enc.PlayerSpawns = append(enc.PlayerSpawns, PlayerSpawn{
					Position: toWorld(o.X, o.Y),
					Index:    o.Properties.GetInt("spawnIndex"),
				})
			}
		case groupEnemySpawn:
			for _, o := range og.Objects {
				enc.EnemySpawns = append(enc.EnemySpawns, EnemySpawn{
					Position:  toWorld(o.X, o.Y),
					EnemyType: o.Properties.GetString("enemyType"),
					PathName:  o.Properties.GetString("pathName"),
				})
			}
		case groupPatrolPaths:
			for _, o := range og.Objects {
				if len(o.PolyLines) == 0 {
					continue
				}
				// Only the first polyline of an object is used.
				polyline := o.PolyLines[0]
				if polyline.Points == nil || len(*polyline.Points) < 2 {
					continue
				}
				points := make([]math.Vec2, len(*polyline.Points))
				for i, point := range *polyline.Points {
					points[i] = toWorld(o.X+point.X, o.Y+point.Y)
				}
				enc.PatrolPaths[o.Name] = PatrolPath{
					Name:   o.Name,
					Points: points,
					Speed:  o.Properties.GetFloat("speed"),
				}
			}
		}
	}

	if len(enc.PlayerSpawns) == 0 {
		return nil, fmt.Errorf("leveldata: load %s: %w", tmxPath, ErrNoPlayerSpawn)
	}
	sort.SliceStable(enc.PlayerSpawns, func(i, j int) bool {
		return enc.PlayerSpawns[i].Index < enc.PlayerSpawns[j].Index
	})

	for _, spawn := range enc.EnemySpawns {
		if spawn.PathName == "" {
			continue
		}
		if _, ok := enc.PatrolPaths[spawn.PathName]; !ok {
			return nil, fmt.Errorf("leveldata: load %s: enemy references unknown path %q", tmxPath, spawn.PathName)
		}
	}

	return enc, nil
}

// LoadAll discovers every .tmx file in dir within fsys and returns the
// encounters keyed by file stem, plus the sorted stems.
func LoadAll(fsys fs.FS, dir string) (map[string]*Encounter, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("leveldata: glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("leveldata: no .tmx files found in %s", dir)
	}

	encounters := make(map[string]*Encounter, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		enc, err := LoadEncounter(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		encounters[enc.Name] = enc
		names = append(names, enc.Name)
	}

	sort.Strings(names)
	return encounters, names, nil
}
