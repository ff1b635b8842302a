package assets

import (
	"embed"
	"fmt"
	"image/color"
	"io/fs"
	"math"
	"strings"

	"github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	//go:embed stages/*.tmx
	stageFS embed.FS
)

// StageDir is the directory of the embedded stage files.
const StageDir = "stages"

// LoadStages parses every embedded stage layout, keyed by file stem.
func LoadStages() (map[string]*leveldata.StageLayout, error) {
	layouts, _, err := leveldata.LoadAllStages(stageFS, StageDir)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	return layouts, nil
}

// StageFS exposes the embedded stage files, e.g. for tests.
func StageFS() fs.FS {
	return stageFS
}

// Sprites are drawn procedurally in greyscale and coloured at draw time
// with TintShader, so one frame set serves every enemy kind.

var (
	bodyColor    = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	shadeColor   = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	eyeColor     = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	bladeColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	flameColor   = color.RGBA{R: 255, G: 170, B: 60, A: 255}
	emberColor   = color.RGBA{R: 255, G: 240, B: 160, A: 255}
	outlineWidth = float32(2)
)

type FrameLoader struct {
	cache map[string]*ebiten.Image
}

func NewFrameLoader() *FrameLoader {
	return &FrameLoader{cache: make(map[string]*ebiten.Image)}
}

// GetFrame returns a cached image for one animation frame of sheetKey.
func (l *FrameLoader) GetFrame(sheetKey string, state config.StateID, frameIndex int) *ebiten.Image {
	key := fmt.Sprintf("%s/%s/%d", sheetKey, state.String(), frameIndex)
	if img, ok := l.cache[key]; ok {
		return img
	}

	frames := 1
	if def, ok := config.CharacterAnimations[sheetKey][state]; ok && def.Frames > 0 {
		frames = def.Frames
	}
	w, h := FrameSize(sheetKey)
	img := ebiten.NewImage(w, h)
	drawFrame(img, sheetKey, state, frameIndex, frames)
	l.cache[key] = img
	return img
}

var frameLoader = NewFrameLoader()

func GetFrame(sheetKey string, state config.StateID, frameIndex int) *ebiten.Image {
	return frameLoader.GetFrame(sheetKey, state, frameIndex)
}

// FrameSize returns the pixel size of a sheet's frames, which matches the
// owner's collision box.
func FrameSize(sheetKey string) (int, int) {
	switch {
	case sheetKey == "player":
		return int(config.Player.CollisionWidth), int(config.Player.CollisionHeight)
	case sheetKey == "explosion":
		return 64, 64
	case strings.HasPrefix(sheetKey, "powerup_"):
		s := int(config.PowerUp.Size)
		return s, s
	}
	for _, t := range config.Enemy.Types {
		if t.SpriteSheetKey == sheetKey {
			return int(t.CollisionWidth), int(t.CollisionHeight)
		}
	}
	return 32, 32
}

// PreloadAllAnimations renders every frame up front to avoid hitches on
// first draw.
func PreloadAllAnimations() {
	for key, defs := range config.CharacterAnimations {
		for state, def := range defs {
			for i := 0; i < def.Frames; i++ {
				_ = GetFrame(key, state, i)
			}
		}
	}
}

func drawFrame(img *ebiten.Image, sheetKey string, state config.StateID, index, frames int) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	fw, fh := float32(w), float32(h)
	t := float64(index) / float64(frames)

	switch {
	case sheetKey == "explosion":
		r := fw / 2 * float32(0.3+0.7*t)
		alpha := uint8(255 * (1 - t*0.8))
		vector.DrawFilledCircle(img, fw/2, fh/2, r, withAlpha(flameColor, alpha), true)
		vector.DrawFilledCircle(img, fw/2, fh/2, r*0.5, withAlpha(emberColor, alpha), true)
		return
	case strings.HasPrefix(sheetKey, "powerup_"):
		pulse := float32(0.8 + 0.2*math.Sin(2*math.Pi*t))
		vector.DrawFilledCircle(img, fw/2, fh/2, fw/2*pulse, bodyColor, true)
		vector.StrokeCircle(img, fw/2, fh/2, fw/2*pulse-1, outlineWidth, shadeColor, true)
		return
	}

	bob := float32(math.Sin(2*math.Pi*t)) * fh * 0.03
	bodyW, bodyH := fw*0.7, fh*0.75
	bx, by := (fw-bodyW)/2, fh*0.1+bob

	switch state {
	case config.StateDead, config.StateDying:
		// Collapsed: the body sinks over the animation.
		flat := bodyH * float32(1-0.7*t)
		vector.DrawFilledRect(img, bx, fh-flat, bodyW, flat, shadeColor, false)
		return
	case config.StateInvisible:
		vector.StrokeRect(img, bx, by, bodyW, bodyH, outlineWidth, bodyColor, false)
		return
	}

	vector.DrawFilledRect(img, bx, by, bodyW, bodyH, bodyColor, false)
	vector.DrawFilledRect(img, bx+bodyW*0.6, by+bodyH*0.15, bodyW*0.15, bodyH*0.1, eyeColor, false)

	legH := fh - (by + bodyH)
	switch state {
	case config.StateWalk:
		stride := float32(math.Sin(2*math.Pi*t)) * bodyW * 0.2
		vector.DrawFilledRect(img, bx+bodyW*0.2+stride, by+bodyH, bodyW*0.2, legH, shadeColor, false)
		vector.DrawFilledRect(img, bx+bodyW*0.6-stride, by+bodyH, bodyW*0.2, legH, shadeColor, false)
	default:
		vector.DrawFilledRect(img, bx+bodyW*0.2, by+bodyH, bodyW*0.2, legH, shadeColor, false)
		vector.DrawFilledRect(img, bx+bodyW*0.6, by+bodyH, bodyW*0.2, legH, shadeColor, false)
	}

	if state == config.StateAttack {
		reach := fw * 0.5 * float32(0.4+0.6*t)
		y := by + bodyH*0.5
		vector.StrokeLine(img, bx+bodyW, y, bx+bodyW+reach, y-reach*0.3, 3, bladeColor, true)
	}
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	// Premultiplied: scale the colour channels with the alpha.
	f := float64(a) / 255
	return color.RGBA{R: uint8(float64(c.R) * f), G: uint8(float64(c.G) * f), B: uint8(float64(c.B) * f), A: a}
}
