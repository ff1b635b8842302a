package systems

import (
	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tickSeconds is the fixed step used to drive tweens.
func tickSeconds() float32 {
	return 1 / float32(cfg.C.TPS)
}

// UpdateEffects advances the cosmetic tweens: door fade-in and the banner.
func UpdateEffects(ecs *ecs.ECS) {
	components.Door.Each(ecs.World, func(e *donburi.Entry) {
		door := components.Door.Get(e)
		if door.Fade == nil {
			return
		}
		alpha, done := door.Fade.Update(tickSeconds())
		door.Alpha = alpha
		if done {
			door.Fade = nil
		}
	})

	if banner := getBanner(ecs); banner != nil && banner.Tween != nil {
		alpha, done := banner.Tween.Update(tickSeconds())
		banner.Alpha = alpha
		if done {
			banner.Tween = nil
			banner.Text = ""
			banner.Alpha = 0
		}
	}
}

// ShowBanner displays text centred on the arena and fades it out.
func ShowBanner(ecs *ecs.ECS, text string) {
	banner := getBanner(ecs)
	if banner == nil {
		return
	}
	banner.Text = text
	banner.Alpha = 1
	banner.Tween = gween.New(1, 0, cfg.Stages.BannerSeconds, ease.InQuad)
}
