package components

import (
	"github.com/automoto/shadowblade/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DialogueScript identifies which scripted conversation is running.
type DialogueScript int

const (
	ScriptNone DialogueScript = iota
	ScriptBossIntro
	ScriptBossOutro
)

type DialogueData struct {
	Script DialogueScript
	Lines  []config.DialogueLine
	Index  int

	Slide  *gween.Tween
	Offset float32 // vertical offset of the box while it slides in
}

func (d *DialogueData) Active() bool {
	return d.Script != ScriptNone && d.Index < len(d.Lines)
}

func (d *DialogueData) Current() (config.DialogueLine, bool) {
	if !d.Active() {
		return config.DialogueLine{}, false
	}
	return d.Lines[d.Index], true
}

var Dialogue = donburi.NewComponentType[DialogueData]()

// BannerData is a transient centred message such as "Stage cleared".
type BannerData struct {
	Text  string
	Tween *gween.Tween
	Alpha float32
}

var Banner = donburi.NewComponentType[BannerData]()
