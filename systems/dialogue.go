package systems

import (
	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// StartDialogue shows lines one at a time from the first.
func StartDialogue(ecs *ecs.ECS, script components.DialogueScript, lines []cfg.DialogueLine) {
	d := getDialogue(ecs)
	if d == nil {
		return
	}
	d.Script = script
	d.Lines = lines
	d.Index = 0
	d.Offset = float32(cfg.Dialogue.BoxHeight)
	d.Slide = gween.New(float32(cfg.Dialogue.BoxHeight), 0, cfg.Dialogue.SlideIn, ease.OutCubic)
	if len(lines) == 0 {
		endDialogue(ecs, d)
	}
}

// UpdateDialogue advances the running script one line per confirm press.
func UpdateDialogue(ecs *ecs.ECS) {
	d := getDialogue(ecs)
	if d == nil || d.Script == components.ScriptNone {
		return
	}
	if d.Slide != nil {
		offset, done := d.Slide.Update(tickSeconds())
		d.Offset = offset
		if done {
			d.Slide = nil
		}
	}

	input := GetOrCreateInput(ecs)
	if !input.JustPressed(cfg.ActionConfirm) && !input.JustPressed(cfg.ActionMenuSelect) {
		return
	}
	d.Index++
	PlaySFX(ecs, cfg.SoundDialogue, 0.4)
	if d.Index >= len(d.Lines) {
		endDialogue(ecs, d)
	}
}

func endDialogue(ecs *ecs.ECS, d *components.DialogueData) {
	script := d.Script
	d.Script = components.ScriptNone
	d.Lines = nil
	d.Index = 0
	d.Slide = nil
	finishDialogue(ecs, script)
}
