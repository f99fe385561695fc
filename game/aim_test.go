package game

import "testing"

func TestLeadTarget(t *testing.T) {
	cases := []struct {
		name     string
		target   Vec2
		velocity Vec2
		speed    float64
		want     Vec2
	}{
		{"still target", Vec2{100, 0}, Vec2{}, 500, Vec2{100, 0}},
		{"on top of shooter", Vec2{0.5, 0}, Vec2{50, 0}, 500, Vec2{0.5, 0}},
		{"no projectile speed", Vec2{100, 0}, Vec2{0, 50}, 0, Vec2{100, 0}},
		{"receding", Vec2{100, 0}, Vec2{50, 0}, 500, Vec2{100 + 50*100.0/450, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := leadTarget(Vec2{}, tc.target, tc.velocity, tc.speed)
			if d := got.Sub(tc.want).Len(); d > 1 {
				t.Fatalf("leadTarget = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestLeadTargetCrossing(t *testing.T) {
	// A crossing target is met where the shot and the target arrive together.
	target, velocity, speed := Vec2{300, 0}, Vec2{0, 80}, 900.0
	aim := leadTarget(Vec2{}, target, velocity, speed)
	if aim.Y <= 0 {
		t.Fatalf("aim = %+v, want ahead of the target", aim)
	}
	shot := aim.Len() / speed
	walk := aim.Sub(target).Len() / velocity.Len()
	if d := shot - walk; d > 0.01 || d < -0.01 {
		t.Fatalf("shot arrives at %v, target at %v", shot, walk)
	}
}
