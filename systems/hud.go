package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/fonts"
	"github.com/automoto/shadowblade/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the top strip: hearts, mana pips, score and stage name.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	width := float32(screen.Bounds().Dx())
	vector.FillRect(screen, 0, 0, width, float32(cfg.C.HUDHeight), cfg.HUD.BackgroundColor, false)

	playerEntry, ok := tags.Player.First(ecs.World)
	session := GetSession(ecs)
	if !ok || session == nil {
		return
	}
	player := components.Player.Get(playerEntry)
	health := components.Health.Get(playerEntry)

	margin := float32(cfg.HUD.Margin)
	pip := float32(cfg.HUD.PipSize)
	gap := float32(cfg.HUD.PipGap)

	// Hearts beyond the maximum are possible from pickups, so draw whichever is larger.
	hearts := max(health.Current, health.Max)
	for i := 0; i < hearts; i++ {
		c := cfg.HUD.EmptyColor
		if i < health.Current {
			c = cfg.HUD.HeartColor
		}
		x := margin + float32(i)*(pip+gap)
		vector.DrawFilledCircle(screen, x+pip/2, margin+pip/2, pip/2, c, true)
	}

	for i := 0; i < cfg.Player.MaxMana; i++ {
		c := cfg.HUD.EmptyColor
		if i < player.Mana {
			c = cfg.HUD.ManaColor
		}
		x := margin + float32(i)*(pip+gap)
		vector.FillRect(screen, x, margin*2+pip, pip, pip/2, c, false)
	}

	face := fonts.Bold.Get()
	score := fmt.Sprintf("SCORE %d", player.Score)
	text.Draw(screen, score, face, int(width)-fonts.TextWidth(face, score)-int(margin), int(margin)+20, cfg.HUD.TextColor)

	label := stageLabel(session)
	text.Draw(screen, label, face, (int(width)-fonts.TextWidth(face, label))/2, int(margin)+20, cfg.HUD.TextColor)

	if player.StrengthBonus > 0 {
		text.Draw(screen, "POWER", fonts.Small.Get(), int(width)-int(margin)-60, int(margin)+48, cfg.Orange)
	}
}

func stageLabel(session *components.SessionData) string {
	if session.Mode == components.ModeEndless {
		return "ENDLESS"
	}
	name := ""
	if session.Layout != nil {
		name = session.Layout.Name
	}
	return fmt.Sprintf("STAGE %d  %s", session.Stage, name)
}

// DrawBanner shows the transient centred banner.
func DrawBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	banner := getBanner(ecs)
	if banner == nil || banner.Text == "" || banner.Alpha <= 0 {
		return
	}
	face := fonts.Title.Get()
	c := fade(cfg.HUD.BannerColor, banner.Alpha)
	x := (screen.Bounds().Dx() - fonts.TextWidth(face, banner.Text)) / 2
	text.Draw(screen, banner.Text, face, x, screen.Bounds().Dy()/3, c)
}

// DrawDialogue renders the current line in a box along the bottom edge.
func DrawDialogue(ecs *ecs.ECS, screen *ebiten.Image) {
	d := getDialogue(ecs)
	if d == nil {
		return
	}
	line, ok := d.Current()
	if !ok {
		return
	}
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	boxH := float32(cfg.Dialogue.BoxHeight)
	y := h - boxH + d.Offset

	vector.FillRect(screen, 0, y, w, boxH, cfg.Dialogue.BoxColor, false)
	text.Draw(screen, line.Speaker, fonts.Bold.Get(), int(cfg.HUD.Margin), int(y)+30, cfg.HUD.BannerColor)
	text.Draw(screen, line.Text, fonts.Regular.Get(), int(cfg.HUD.Margin), int(y)+60, cfg.Dialogue.TextColor)
	hint := "Press Enter"
	small := fonts.Small.Get()
	text.Draw(screen, hint, small, int(w)-fonts.TextWidth(small, hint)-int(cfg.HUD.Margin), int(y+boxH)-12, cfg.Dialogue.TextColor)
}

// fade scales a premultiplied colour by alpha.
func fade(c color.RGBA, alpha float32) color.RGBA {
	a := max(0, min(1, alpha))
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}
