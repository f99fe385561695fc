package game

import (
	"math"
	"testing"
)

func asteroidsOf(w *World) []*Entity {
	var out []*Entity
	w.Each(func(e *Entity) bool {
		if e.Kind == KindAsteroid && !e.PendingDestroy {
			out = append(out, e)
		}
		return true
	})
	return out
}

func checkAsteroidRanges(t *testing.T, w *World, e *Entity) {
	t.Helper()
	a := w.Asteroid(e)
	tun := w.Tuning().Asteroids.ForSize(a.Size)
	speed := a.Velocity.Len()
	if speed < tun.SpeedMin-eps || speed > tun.SpeedMax+eps {
		t.Errorf("%s asteroid speed %v outside [%v, %v]", a.Size, speed, tun.SpeedMin, tun.SpeedMax)
	}
	spin := math.Abs(a.Spin)
	if spin < tun.SpinMin-eps || spin > tun.SpinMax+eps {
		t.Errorf("%s asteroid spin %v outside [%v, %v]", a.Size, spin, tun.SpinMin, tun.SpinMax)
	}
	if a.Score != tun.Score {
		t.Errorf("%s asteroid score %d, want %d", a.Size, a.Score, tun.Score)
	}
	if e.Collider.Radius != tun.Radius || e.Scale != tun.Scale {
		t.Errorf("%s asteroid radius/scale = %v/%v", a.Size, e.Collider.Radius, e.Scale)
	}
}

func TestAsteroidScoreTable(t *testing.T) {
	tun := DefaultTuning().Asteroids
	if tun.Small.Score != 100 || tun.Medium.Score != 50 || tun.Large.Score != 20 {
		t.Fatalf("score table = %d/%d/%d, want 100/50/20", tun.Small.Score, tun.Medium.Score, tun.Large.Score)
	}
	if !(tun.Large.SpeedMax <= tun.Medium.SpeedMin && tun.Medium.SpeedMax <= tun.Small.SpeedMin) {
		t.Fatal("smaller asteroids should be faster")
	}
}

func TestAsteroidSplit(t *testing.T) {
	cases := []struct {
		size     AsteroidSize
		children int
		want     AsteroidSize
		sound    Sound
	}{
		{AsteroidLarge, 2, AsteroidMedium, SoundExplosionLarge},
		{AsteroidMedium, 2, AsteroidSmall, SoundExplosionMedium},
		{AsteroidSmall, 0, 0, SoundExplosionSmall},
	}
	for _, tc := range cases {
		t.Run(tc.size.String(), func(t *testing.T) {
			w, audio := newTestWorld(t)
			pos := Vec2{50, -20}
			e, err := w.SpawnAsteroid(tc.size, pos)
			if err != nil {
				t.Fatal(err)
			}
			checkAsteroidRanges(t, w, e)
			w.ClearJustCreated()
			w.Destroy(e)
			w.Sweep()

			got := asteroidsOf(w)
			if len(got) != tc.children {
				t.Fatalf("children = %d, want %d", len(got), tc.children)
			}
			for _, c := range got {
				if s := w.Asteroid(c).Size; s != tc.want {
					t.Errorf("child size = %s, want %s", s, tc.want)
				}
				if c.Position != pos {
					t.Errorf("child at %+v, want %+v", c.Position, pos)
				}
				if !c.JustCreated {
					t.Error("child not marked just created")
				}
				checkAsteroidRanges(t, w, c)
			}
			if len(got) == 2 && w.Asteroid(got[0]).Velocity == w.Asteroid(got[1]).Velocity {
				t.Error("children share a velocity")
			}
			if audio.count(tc.sound) != 1 {
				t.Errorf("%s played %d times, want 1", tc.sound, audio.count(tc.sound))
			}
			checkTree(t, w)
		})
	}
}

func TestAsteroidDrifts(t *testing.T) {
	w, _ := newTestWorld(t)
	e, _ := w.SpawnAsteroid(AsteroidLarge, Vec2{})
	a := w.Asteroid(e)
	a.Velocity = Vec2{10, -5}
	a.Spin = 30
	e.Orientation = 0

	for i := 0; i < 10; i++ {
		w.Step(0.1, nil)
	}
	if !nearVec(e.Position, Vec2{10, -5}) {
		t.Fatalf("position = %+v, want {10 -5}", e.Position)
	}
	if !near(e.Orientation, 30) {
		t.Fatalf("orientation = %v, want 30", e.Orientation)
	}
	if a.Velocity != (Vec2{10, -5}) {
		t.Fatal("asteroid velocity changed")
	}
}

func TestAsteroidBreaksOnUnshieldedPlayer(t *testing.T) {
	w, _ := newTestWorld(t)
	player, _ := w.SpawnPlayer()
	e, _ := w.SpawnAsteroid(AsteroidLarge, Vec2{})
	w.ClearJustCreated()
	w.RebuildTransforms()

	// Fresh ships are shielded.
	w.DetectCollisions()
	if e.PendingDestroy {
		t.Fatal("asteroid broke on a shielded player")
	}
	if w.Player(player).State != PlayerAlive {
		t.Fatal("shielded player died")
	}

	dropShield(t, w, player)
	w.DetectCollisions()
	if !e.PendingDestroy {
		t.Fatal("asteroid survived hitting the player")
	}
	if w.Player(player).State != PlayerDead {
		t.Fatal("player survived hitting the asteroid")
	}
}
