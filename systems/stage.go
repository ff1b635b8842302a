package systems

import (
	"github.com/automoto/shadowblade/components"
	cfg "github.com/automoto/shadowblade/config"
	"github.com/automoto/shadowblade/systems/factory"
	"github.com/automoto/shadowblade/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStage gates progression: reaching the next stage's score threshold
// clears the current stage once, and touching the open door moves on.
// On the boss stage it starts the boss encounter.
func UpdateStage(ecs *ecs.ECS) {
	session := GetSession(ecs)
	playerEntry, ok := tags.Player.First(ecs.World)
	if session == nil || !ok || session.RunOver || session.Mode == components.ModeEndless {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.State == cfg.StateDead {
		return
	}

	if next, ok := cfg.Stage(session.Stage + 1); ok && next.Threshold > 0 && player.Score >= next.Threshold {
		if !session.StageCleared {
			ClearStage(ecs)
		}
		if session.DoorOpen && playerTouchesDoor(playerEntry) {
			AdvanceStage(ecs)
			return
		}
	}

	current, ok := cfg.Stage(session.Stage)
	if ok && current.Boss && !session.BossDefeated && !session.InCutscene {
		if _, exists := tags.Boss.First(ecs.World); !exists {
			StartBossIntro(ecs)
		}
	}
}

// ClearStage stops the wave, opens the door and grants the clear bonus. The
// StageCleared flag makes repeat calls no-ops until the next transition.
func ClearStage(ecs *ecs.ECS) {
	session := GetSession(ecs)
	if session.StageCleared {
		return
	}
	now := session.Now()
	session.StageCleared = true
	session.Spawnable = false
	ResetSpawnRamp(GetSpawner(ecs), now)

	session.DoorOpen = true
	if doorEntry, ok := tags.Door.First(ecs.World); ok {
		door := components.Door.Get(doorEntry)
		door.Open = true
		door.Alpha = 0
		door.Fade = gween.New(0, 1, cfg.Stages.DoorFadeSeconds, ease.OutQuad)
	}

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		HealPlayer(playerEntry, cfg.Stages.ClearBonusHealth, true)
	}

	ShowBanner(ecs, "Stage cleared!")
	PlaySFX(ecs, cfg.SoundDoorOpen, 0.6)
	logEvent("Stage %d cleared", session.Stage)
}

// AdvanceStage moves to the next stage: closes the door, clears the arena
// and puts the player on the new spawn point. Entering the terminal stage
// ends the run instead.
func AdvanceStage(ecs *ecs.ECS) {
	session := GetSession(ecs)
	now := session.Now()

	session.Stage++
	session.StageCleared = false
	session.DoorOpen = false
	RemoveAllEnemies(ecs)
	removeAllPowerUps(ecs)

	next, ok := cfg.Stage(session.Stage)
	if !ok || next.Terminal {
		endRun(ecs, true)
		return
	}

	session.Layout = layoutFor(session, next.Layout)
	if doorEntry, ok := tags.Door.First(ecs.World); ok {
		door := components.Door.Get(doorEntry)
		door.Open = false
		door.Fade = nil
		door.Alpha = 0
		d := session.Layout.Door
		obj := components.Object.Get(doorEntry)
		obj.W, obj.H = d.W, d.H
		obj.SetShape(resolv.NewRectangle(0, 0, d.W, d.H))
		obj.MoveTo(d.X, d.Y)
	}
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		placePlayerAtSpawn(session, playerEntry)
	}

	ResetSpawnRamp(GetSpawner(ecs), now)
	// The boss stage starts with its cutscene, which enables spawning when done.
	session.Spawnable = !next.Boss

	ShowBanner(ecs, session.Layout.Name)
	PlaySFX(ecs, cfg.SoundStageEnter, 0.6)
	logEvent("Entered stage %d (%s)", session.Stage, session.Layout.Name)
}

// StartBossIntro freezes the arena, brings in the boss and starts the
// opening dialogue.
func StartBossIntro(ecs *ecs.ECS) {
	session := GetSession(ecs)
	session.Spawnable = false
	session.InCutscene = true
	RemoveAllEnemies(ecs)
	removeAllPowerUps(ecs)

	zone := playZone(session)
	boss := cfg.EnemyType(cfg.KindBoss)
	cx, cy := zone.X+zone.W*0.8, zone.Y+zone.H/2
	if session.Layout != nil && session.Layout.BossSpawn != nil {
		cx, cy = session.Layout.BossSpawn.X, session.Layout.BossSpawn.Y
	}
	factory.CreateEnemy(ecs, cfg.KindBoss, cx-boss.CollisionWidth/2, cy-boss.CollisionHeight/2)

	StartDialogue(ecs, components.ScriptBossIntro, cfg.Dialogue.BossIntro)
	PlaySFX(ecs, cfg.SoundStageEnter, 0.8)
	logEvent("Boss encounter started")
}

// StartBossOutro runs when the boss dies; the boss stays on screen until the
// dialogue ends.
func StartBossOutro(ecs *ecs.ECS) {
	session := GetSession(ecs)
	session.Spawnable = false
	session.InCutscene = true
	StartDialogue(ecs, components.ScriptBossOutro, cfg.Dialogue.BossOutro)
}

// finishDialogue applies the consequence of a script ending.
func finishDialogue(ecs *ecs.ECS, script components.DialogueScript) {
	session := GetSession(ecs)
	session.InCutscene = false
	switch script {
	case components.ScriptBossIntro:
		session.Spawnable = true
		ResetSpawnRamp(GetSpawner(ecs), session.Now())
	case components.ScriptBossOutro:
		session.BossDefeated = true
		var bosses []*donburi.Entry
		tags.Boss.Each(ecs.World, func(e *donburi.Entry) { bosses = append(bosses, e) })
		for _, e := range bosses {
			RemoveEntity(ecs, e)
		}
		RemoveAllEnemies(ecs)
		session.Stage = cfg.FinalStage()
		endRun(ecs, true)
	}
}

func endRun(ecs *ecs.ECS, victory bool) {
	session := GetSession(ecs)
	session.RunOver = true
	session.Victory = victory
	session.Spawnable = false
	logEvent("Run over, victory=%v", victory)
}

func playerTouchesDoor(playerEntry *donburi.Entry) bool {
	playerObj := components.Object.Get(playerEntry)
	if playerObj.Space == nil {
		return false
	}
	check := playerObj.Check(0, 0, tags.ResolvDoor)
	if check == nil {
		return false
	}
	for _, obj := range check.ObjectsByTags(tags.ResolvDoor) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || !components.Door.Get(entry).Open {
			continue
		}
		if components.Object.Get(entry).Rect().Intersects(playerObj.Rect()) {
			return true
		}
	}
	return false
}

func removeAllPowerUps(ecs *ecs.ECS) {
	var doomed []*donburi.Entry
	tags.PowerUp.Each(ecs.World, func(e *donburi.Entry) { doomed = append(doomed, e) })
	for _, e := range doomed {
		RemoveEntity(ecs, e)
	}
}
