package scenes

import (
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/automoto/shadowblade/assets"
	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/shared/micmeter"
	"github.com/automoto/shadowblade/systems"
	"github.com/automoto/shadowblade/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// microphone is shared by every world scene; nil when no capture backend
// was found at startup.
var microphone micmeter.Meter

// SetMicrophone installs the meter used by "scream to continue".
func SetMicrophone(m micmeter.Meter) {
	microphone = m
}

// WorldScene runs one story or endless run.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	mode         components.GameMode
	once         sync.Once
}

// NewWorldScene creates a new run in mode.
func NewWorldScene(sc SceneChanger, mode components.GameMode) *WorldScene {
	return &WorldScene{sceneChanger: sc, mode: mode}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	// A won run rolls the credits
	if session := systems.GetSession(ws.ecs); session != nil && session.RunOver && session.Victory {
		ws.sceneChanger.ChangeScene(NewCreditsScene(ws.sceneChanger))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	// Preload assets to avoid lag on first use
	systems.PreloadAllSFX()
	assets.PreloadAllAnimations()

	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not load shaders, drawing untinted: %v", err)
	}

	layouts, err := assets.LoadStages()
	if err != nil {
		log.Printf("Warning: Could not load stages, using the default arena: %v", err)
	}

	e := ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(ws.sceneChanger)
	}
	createWorldScene := func() interface{} {
		return NewWorldScene(ws.sceneChanger, ws.mode)
	}

	// Audio system (runs first, even when paused for menu sounds)
	e.AddSystem(systems.UpdateAudio)

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.NewUpdatePause(ws.sceneChanger, createMenuScene))

	// Game systems wrapped with pause and game over checks
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePowerUps))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSpawner))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateStage))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateDialogue))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))

	// The game over overlay takes input once the death delay has passed
	e.AddSystem(systems.NewUpdateGameOver(ws.sceneChanger, createWorldScene, createMenuScene, microphone))

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawArena)
	e.AddRenderer(cfg.LayerActors, systems.DrawAnimated)
	e.AddRenderer(cfg.LayerActors, systems.DrawDebug)
	e.AddRenderer(cfg.LayerHUD, systems.DrawHUD)
	e.AddRenderer(cfg.LayerHUD, systems.DrawBanner)
	e.AddRenderer(cfg.LayerHUD, systems.DrawDialogue)
	e.AddRenderer(cfg.LayerHUD, systems.DrawPause)
	e.AddRenderer(cfg.LayerHUD, systems.DrawGameOver)

	ws.ecs = e

	// Session first: the layout decides the size of the collision space.
	sessionEntry := factory.CreateSession(e, factory.SessionOptions{
		Seed:    time.Now().UnixNano(),
		Mode:    ws.mode,
		Layouts: layouts,
	})
	session := components.Session.Get(sessionEntry)
	layout := systems.StageLayout(session)
	session.Layout = layout

	factory.CreateSpace(e,
		max(layout.MapWidth, cfg.C.Width),
		max(layout.MapHeight, cfg.C.Height),
		16, 16,
	)
	factory.CreateDoor(e, layout.Door)
	factory.CreatePlayer(e, layout.PlayerSpawn.X, layout.PlayerSpawn.Y)

	systems.ShowBanner(e, layout.Name)
}
