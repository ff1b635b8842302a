package systems

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/fonts"
	"github.com/automoto/shadowblade/shared/micmeter"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates an UpdateGameOver system with scene transition
// capability. meter may be nil when no capture backend exists.
func NewUpdateGameOver(sceneChanger SceneChanger, createWorldScene func() interface{}, createMenuScene func() interface{}, meter micmeter.Meter) ecs.System {
	return func(e *ecs.ECS) {
		if !IsGameOverShowing(e) {
			return
		}
		gameOver := GetOrCreateGameOver(e)
		if gameOver.Listening {
			PollScream(e, gameOver)
			return
		}

		input := GetOrCreateInput(e)

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.GameOverMenu) + 1
		if input.JustPressed(cfg.ActionMenuUp) {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) - 1 + numOptions) % numOptions,
			)
			PlaySFX(e, cfg.SoundMenuNavigate, 0.5)
		}
		if input.JustPressed(cfg.ActionMenuDown) {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) + 1) % numOptions,
			)
			PlaySFX(e, cfg.SoundMenuNavigate, 0.5)
		}

		if input.JustPressed(cfg.ActionMenuSelect) {
			PlaySFX(e, cfg.SoundMenuSelect, 0.5)
			switch gameOver.SelectedOption {
			case components.GameOverScream:
				StartScream(gameOver, meter)
			case components.GameOverRetry:
				sceneChanger.ChangeScene(createWorldScene())
			case components.GameOverMenu:
				sceneChanger.ChangeScene(createMenuScene())
			}
		}
	}
}

// StartScream begins listening on meter for the configured window.
func StartScream(gameOver *components.GameOverData, meter micmeter.Meter) {
	if meter == nil {
		gameOver.Message = "No microphone found"
		return
	}
	window := time.Duration(cfg.GameOver.ScreamSeconds * float64(time.Second))
	gameOver.Listening = true
	gameOver.Message = "SCREAM!"
	gameOver.Pending = micmeter.Async(context.Background(), meter, window)
}

// PollScream checks for a finished measurement without blocking. A loud
// enough scream revives the player; it reports whether that happened.
func PollScream(e *ecs.ECS, gameOver *components.GameOverData) bool {
	select {
	case res, ok := <-gameOver.Pending:
		gameOver.Listening = false
		gameOver.Pending = nil
		if !ok {
			return false
		}
		if res.Err != nil {
			log.Printf("Warning: Could not measure scream: %v", res.Err)
			gameOver.Message = "Microphone unavailable"
			return false
		}
		gameOver.LastPeak = res.Peak
		if res.Peak < cfg.GameOver.ScreamThreshold {
			gameOver.Message = fmt.Sprintf("Louder! %.0f of %.0f", res.Peak, cfg.GameOver.ScreamThreshold)
			return false
		}
		gameOver.Message = ""
		gameOver.SelectedOption = components.GameOverScream
		RevivePlayer(e)
		return true
	default:
		return false
	}
}

// DrawGameOver renders the game over overlay once the death delay passed.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	if !IsGameOverShowing(e) {
		return
	}
	gameOver := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.GameOver.BackgroundColor, false)

	titleFont := fonts.Title.Get()
	title := "YOU DIED"
	titleX := int((width - float64(fonts.TextWidth(titleFont, title))) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	menuFont := fonts.Bold.Get()
	var y float64
	for i, option := range cfg.GameOver.MenuOptions {
		y = cfg.GameOver.MenuStartY + float64(i)*(cfg.GameOver.MenuItemHeight+cfg.GameOver.MenuItemGap)

		textColor := cfg.GameOver.TextColorNormal
		if components.GameOverOption(i) == gameOver.SelectedOption {
			textColor = cfg.GameOver.TextColorSelected
		}
		x := int((width - float64(fonts.TextWidth(menuFont, option))) / 2)
		text.Draw(screen, option, menuFont, x, int(y)+int(cfg.GameOver.MenuItemHeight), textColor)
	}

	if gameOver.Message != "" {
		small := fonts.Regular.Get()
		x := int((width - float64(fonts.TextWidth(small, gameOver.Message))) / 2)
		text.Draw(screen, gameOver.Message, small, x, int(y+2*cfg.GameOver.MenuItemHeight+cfg.GameOver.MenuItemGap), cfg.GameOver.TitleColor)
	}
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{
			SelectedOption: components.GameOverScream,
		})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
