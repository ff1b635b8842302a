package systems

import (
	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var pauseOptions = []string{"Resume", "Exit to menu"}

// NewUpdatePause handles pause toggle and menu navigation. It should run
// after UpdateInput but before the gameplay systems.
func NewUpdatePause(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(ecs *ecs.ECS) {
		if IsGameOverShowing(ecs) || IsRunOver(ecs) {
			return
		}
		pause := GetOrCreatePause(ecs)
		input := GetOrCreateInput(ecs)

		if input.JustPressed(cfg.ActionPause) {
			pause.IsPaused = !pause.IsPaused
			pause.SelectedOption = components.MenuResume
			return
		}
		if !pause.IsPaused {
			return
		}

		numOptions := int(components.MenuExit) + 1
		if input.JustPressed(cfg.ActionMenuUp) {
			pause.SelectedOption = components.PauseMenuOption(
				(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
			)
			PlaySFX(ecs, cfg.SoundMenuNavigate, 0.5)
		}
		if input.JustPressed(cfg.ActionMenuDown) {
			pause.SelectedOption = components.PauseMenuOption(
				(int(pause.SelectedOption) + 1) % numOptions,
			)
			PlaySFX(ecs, cfg.SoundMenuNavigate, 0.5)
		}

		if input.JustPressed(cfg.ActionMenuSelect) {
			PlaySFX(ecs, cfg.SoundMenuSelect, 0.5)
			switch pause.SelectedOption {
			case components.MenuResume:
				pause.IsPaused = false
			case components.MenuExit:
				sceneChanger.ChangeScene(createMenuScene())
			}
		}
	}
}

// DrawPause renders the pause overlay and menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	titleFont := fonts.Title.Get()
	title := "PAUSED"
	text.Draw(screen, title, titleFont, int(width-float64(fonts.TextWidth(titleFont, title)))/2, int(height/3), cfg.White)

	menuFont := fonts.Bold.Get()
	for i, option := range pauseOptions {
		c := cfg.GameOver.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			c = cfg.GameOver.TextColorSelected
		}
		x := int(width-float64(fonts.TextWidth(menuFont, option))) / 2
		text.Draw(screen, option, menuFont, x, int(height/2)+i*40, c)
	}
}

// IsPaused reports whether the pause menu is open.
func IsPaused(ecs *ecs.ECS) bool {
	entry, ok := components.Pause.First(ecs.World)
	return ok && components.Pause.Get(entry).IsPaused
}

func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
