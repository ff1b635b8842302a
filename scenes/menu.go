package scenes

import (
	"fmt"
	"image/color"
	"os"
	"sync"

	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/systems"
	"github.com/automoto/shadowblade/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title menu and the options page.
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once

	main    *ui.MenuUI
	options *ui.MenuUI
	current *ui.MenuUI

	next interface{}
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	ms.ecs.Update()
	ms.handleInput()
	ms.current.Update()

	// Scene changes wait until the UI finished its own update.
	if ms.next != nil {
		ms.sceneChanger.ChangeScene(ms.next)
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.current.UI.Draw(screen)
}

func (ms *MenuScene) handleInput() {
	input := systems.GetOrCreateInput(ms.ecs)
	if input.JustPressed(cfg.ActionMenuUp) {
		ms.current.MoveSelection(-1)
		systems.PlaySFX(ms.ecs, cfg.SoundMenuNavigate, 0.5)
	}
	if input.JustPressed(cfg.ActionMenuDown) {
		ms.current.MoveSelection(1)
		systems.PlaySFX(ms.ecs, cfg.SoundMenuNavigate, 0.5)
	}
	if input.JustPressed(cfg.ActionMenuSelect) {
		ms.current.Activate()
	}
	if input.JustPressed(cfg.ActionMenuBack) && ms.current == ms.options {
		ms.showMain()
	}
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)

	hint := "Arrows to choose, Enter to select"
	ms.main = ui.NewMenuUI("SHADOWBLADE", []ui.MenuItem{
		{Label: ui.StaticLabel("Story"), Action: ms.selectAnd(func() {
			ms.next = NewWorldScene(ms.sceneChanger, components.ModeStory)
		})},
		{Label: ui.StaticLabel("Endless"), Action: ms.selectAnd(func() {
			ms.next = NewWorldScene(ms.sceneChanger, components.ModeEndless)
		})},
		{Label: ui.StaticLabel("Options"), Action: ms.selectAnd(ms.showOptions)},
		{Label: ui.StaticLabel("Credits"), Action: ms.selectAnd(func() {
			ms.next = NewCreditsScene(ms.sceneChanger)
		})},
		{Label: ui.StaticLabel("Quit"), Action: func() {
			systems.SaveCurrentSettings()
			os.Exit(0)
		}},
	}, hint)

	ms.options = ui.NewMenuUI("OPTIONS", []ui.MenuItem{
		{Label: volumeLabel, Action: ms.selectAnd(func() {
			systems.SetSFXVolume(ms.ecs, cfg.NextVolumeStep(systems.GetSFXVolume()))
			systems.SaveCurrentSettings()
		})},
		{Label: muteLabel, Action: ms.selectAnd(func() {
			systems.SetMuted(!systems.IsMuted())
			systems.SaveCurrentSettings()
		})},
		{Label: fullscreenLabel, Action: ms.selectAnd(func() {
			ebiten.SetFullscreen(!ebiten.IsFullscreen())
			systems.SaveCurrentSettings()
		})},
		{Label: ui.StaticLabel("Back"), Action: ms.selectAnd(ms.showMain)},
	}, "Esc to go back")

	ms.current = ms.main
}

// selectAnd plays the select cue before running action.
func (ms *MenuScene) selectAnd(action func()) func() {
	return func() {
		systems.PlaySFX(ms.ecs, cfg.SoundMenuSelect, 0.5)
		action()
	}
}

func (ms *MenuScene) showOptions() { ms.current = ms.options }
func (ms *MenuScene) showMain()    { ms.current = ms.main }

func volumeLabel() string {
	return fmt.Sprintf("Volume: %d%%", int(systems.GetSFXVolume()*100+0.5))
}

func muteLabel() string {
	return "Mute: " + onOff(systems.IsMuted())
}

func fullscreenLabel() string {
	return "Fullscreen: " + onOff(ebiten.IsFullscreen())
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}
