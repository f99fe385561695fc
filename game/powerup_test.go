package game

import "testing"

func TestPowerupLifecycle(t *testing.T) {
	w, _ := newTestWorld(t)
	e, err := w.SpawnPowerup(Vec2{40, -40})
	if err != nil {
		t.Fatal(err)
	}
	if w.Powerup(e) == nil {
		t.Fatal("no powerup payload")
	}
	if e.Collider.Enabled {
		t.Fatal("powerup collides")
	}

	w.Step(0.1, nil)
	if e.Position != (Vec2{40, -40}) {
		t.Fatalf("powerup moved to %+v", e.Position)
	}
	items := w.DrawList()
	if len(items) != 1 || items[0].Sprite != SpritePowerup || items[0].Order != LayerPowerup {
		t.Fatalf("draw list = %+v", items)
	}

	w.Destroy(e)
	if n := w.Sweep(); n != 1 {
		t.Fatalf("swept %d, want 1", n)
	}
	if w.powerups.Len() != 0 {
		t.Fatal("payload slot still held")
	}
}
