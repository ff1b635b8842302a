package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/shadowblade/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Object group names expected in every stage file.
const (
	GroupPlayZone    = "PlayZone"
	GroupDoor        = "Door"
	GroupPlayerSpawn = "PlayerSpawn"
	GroupBossSpawn   = "BossSpawn"
)

// LoadStageLayout parses a TMX file and returns the stage regions. It takes an
// fs.FS so callers can pass the embedded assets or os.DirFS.
func LoadStageLayout(fsys fs.FS, tmxPath string) (*StageLayout, error) {
	stageMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("leveldata: load TMX %s: %w", tmxPath, err)
	}

	layout := &StageLayout{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  stageMap.Width * stageMap.TileWidth,
		MapHeight: stageMap.Height * stageMap.TileHeight,
	}

	var haveZone, haveDoor, haveSpawn bool
	for _, og := range stageMap.ObjectGroups {
		if len(og.Objects) == 0 {
			continue
		}
		o := og.Objects[0]
		switch og.Name {
		case GroupPlayZone:
			layout.PlayZone = gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			if title := o.Properties.GetString("title"); title != "" {
				layout.Name = title
			}
			haveZone = true
		case GroupDoor:
			layout.Door = gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			haveDoor = true
		case GroupPlayerSpawn:
			layout.PlayerSpawn = Point{X: o.X, Y: o.Y}
			haveSpawn = true
		case GroupBossSpawn:
			layout.BossSpawn = &Point{X: o.X, Y: o.Y}
		}
	}

	switch {
	case !haveZone:
		return nil, fmt.Errorf("leveldata: %s: missing %s object group", tmxPath, GroupPlayZone)
	case !haveDoor:
		return nil, fmt.Errorf("leveldata: %s: missing %s object group", tmxPath, GroupDoor)
	case !haveSpawn:
		return nil, fmt.Errorf("leveldata: %s: missing %s object group", tmxPath, GroupPlayerSpawn)
	}

	return layout, nil
}

// LoadAllStages discovers all .tmx files in stagesDir within fsys and returns
// the parsed layouts keyed by file stem plus the sorted stem list.
func LoadAllStages(fsys fs.FS, stagesDir string) (map[string]*StageLayout, []string, error) {
	pattern := stagesDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("leveldata: glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("leveldata: no .tmx files found in %s", stagesDir)
	}

	stages := make(map[string]*StageLayout, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		layout, err := LoadStageLayout(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		stages[stem] = layout
		names = append(names, stem)
	}

	sort.Strings(names)
	return stages, names, nil
}
