package assets

import (
	"testing"
)

func TestLoadStages(t *testing.T) {
	layouts, err := LoadStages()
	if err != nil {
		t.Fatalf("LoadStages: %v", err)
	}
	for _, stem := range []string{"stage1", "stage2", "stage3", "stage4", "endless"} {
		l, ok := layouts[stem]
		if !ok {
			t.Errorf("missing layout %s", stem)
			continue
		}
		if l.PlayZone.W <= 0 || l.PlayZone.H <= 0 {
			t.Errorf("%s: empty play zone", stem)
		}
	}
	if layouts["stage4"].BossSpawn == nil {
		t.Error("stage4 should define a boss spawn")
	}
}
