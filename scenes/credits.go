package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/fonts"
	"github.com/automoto/shadowblade/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const creditsLineHeight = 34

// CreditsScene scrolls the credits upward and returns to the menu when they
// have passed or the player presses a key.
type CreditsScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
	offset       float64
}

// NewCreditsScene creates a new credits scene
func NewCreditsScene(sc SceneChanger) *CreditsScene {
	return &CreditsScene{sceneChanger: sc}
}

func (cs *CreditsScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()

	cs.offset += cfg.Credits.ScrollSpeed
	input := systems.GetOrCreateInput(cs.ecs)
	skipped := input.JustPressed(cfg.ActionMenuSelect) || input.JustPressed(cfg.ActionMenuBack)
	if skipped || cs.finished() {
		cs.sceneChanger.ChangeScene(NewMenuScene(cs.sceneChanger))
	}
}

func (cs *CreditsScene) finished() bool {
	total := float64(len(cfg.Credits.Lines) * creditsLineHeight)
	return cs.offset > float64(cfg.C.Height)+total
}

func (cs *CreditsScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	face := fonts.Bold.Get()
	width := screen.Bounds().Dx()
	baseY := float64(screen.Bounds().Dy()) - cs.offset
	for i, line := range cfg.Credits.Lines {
		if line == "" {
			continue
		}
		y := int(baseY) + i*creditsLineHeight
		if y < -creditsLineHeight || y > screen.Bounds().Dy()+creditsLineHeight {
			continue
		}
		x := (width - fonts.TextWidth(face, line)) / 2
		text.Draw(screen, line, face, x, y, cfg.Credits.TextColor)
	}
}

func (cs *CreditsScene) configure() {
	cs.ecs = ecs.NewECS(donburi.NewWorld())
	cs.ecs.AddSystem(systems.UpdateAudio)
	cs.ecs.AddSystem(systems.UpdateInput)
}
