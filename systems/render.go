package systems

import (
	"image/color"

	"github.com/automoto/shadowblade/assets"
	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/fonts"
	"github.com/automoto/shadowblade/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}

	playerTint  = color.RGBA{R: 150, G: 200, B: 255, A: 255}
	endlessTint = color.RGBA{R: 40, G: 44, B: 60, A: 255}
	doorColor   = color.RGBA{R: 250, G: 220, B: 120, A: 255}

	powerUpTints = map[cfg.PowerUpKind]color.RGBA{
		cfg.PowerUpDamageAmp:       cfg.Orange,
		cfg.PowerUpInvulnerability: cfg.Gold,
		cfg.PowerUpHeart:           cfg.LightRed,
	}
)

// DrawArena fills the play zone with the stage colour and draws the door.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(ecs)
	if session == nil {
		return
	}
	tint := endlessTint
	if session.Mode == components.ModeStory {
		if stage, ok := cfg.Stage(session.Stage); ok && stage.Tint.A > 0 {
			tint = stage.Tint
		}
	}
	zone := playZone(session)
	vector.FillRect(screen, float32(zone.X), float32(zone.Y), float32(zone.W), float32(zone.H), tint, false)

	components.Door.Each(ecs.World, func(e *donburi.Entry) {
		door := components.Door.Get(e)
		if !door.Open || door.Alpha <= 0 {
			return
		}
		r := components.Object.Get(e).Rect()
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fade(doorColor, door.Alpha), false)
	})
}

// DrawAnimated renders the power-ups, the enemies and the player, in that
// order, from their current animation frame.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.PowerUp.Each(ecs.World, func(e *donburi.Entry) {
		kind := components.PowerUp.Get(e).Kind
		drawActor(screen, e, powerUpTints[kind], cfg.FacingRight, 1)
	})

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		tint := cfg.EnemyType(enemy.Kind).TintColor
		anim := components.Animation.Get(e)
		if anim.SheetKey == "explosion" {
			tint = cfg.White
		}
		drawActor(screen, e, tint, enemy.Facing, 1)
		if enemy.Confused && !enemy.IsDead {
			drawConfusedMarker(screen, e)
		}
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		drawActor(screen, e, playerTint, player.Facing, float32(player.Opacity))
	})
}

func drawActor(screen *ebiten.Image, e *donburi.Entry, tint color.RGBA, facing cfg.Facing, alpha float32) {
	anim := components.Animation.Get(e)
	if anim.CurrentAnimation == nil {
		return
	}
	img := assets.GetFrame(anim.SheetKey, anim.CurrentSheet, anim.Frame())
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	// Frames are anchored on the collision box centre so oversized
	// effects such as the explosion stay centred.
	cx, cy := components.Object.Get(e).Center()

	if assets.TintShader != nil {
		shaderOp.GeoM.Reset()
		shaderOp.ColorScale.Reset()
		shaderOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		shaderOp.GeoM.Scale(facing.Sign(), 1)
		shaderOp.GeoM.Translate(cx, cy)
		shaderOp.ColorScale.ScaleAlpha(alpha)
		shaderOp.Images[0] = img
		shaderOp.Uniforms = assets.TintUniforms(tint)
		screen.DrawRectShader(w, h, assets.TintShader, shaderOp)
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	drawOp.GeoM.Scale(facing.Sign(), 1)
	drawOp.GeoM.Translate(cx, cy)
	drawOp.ColorScale.ScaleWithColor(tint)
	drawOp.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(img, drawOp)
}

func drawConfusedMarker(screen *ebiten.Image, e *donburi.Entry) {
	obj := components.Object.Get(e)
	cx, _ := obj.Center()
	face := fonts.Bold.Get()
	text.Draw(screen, "?", face, int(cx)-fonts.TextWidth(face, "?")/2, int(obj.Y-cfg.Enemy.MarkerOffset), cfg.Yellow)
}
