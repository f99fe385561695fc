package game

import "testing"

func TestLaserMovesAndExpires(t *testing.T) {
	w, audio := newTestWorld(t)
	player, _ := spawnTestPlayer(t, w)
	laser, err := w.SpawnLaser(player, 0)
	if err != nil {
		t.Fatal(err)
	}
	if audio.count(SoundLaserA)+audio.count(SoundLaserB) != 1 {
		t.Fatal("laser made no sound")
	}
	tun := w.Tuning().Laser

	w.Step(0.05, nil)
	if !near(laser.Position.X, tun.Speed*0.05) || !near(laser.Position.Y, 0) {
		t.Fatalf("laser at %+v after one step", laser.Position)
	}

	for i := 0; i < int(tun.Lifetime/0.05)+2; i++ {
		w.Step(0.05, nil)
	}
	if w.Count(KindLaser) != 0 {
		t.Fatal("laser outlived its lifetime")
	}
}

func TestLaserSoundAlternates(t *testing.T) {
	w, audio := newTestWorld(t)
	player, _ := spawnTestPlayer(t, w)
	for i := 0; i < 40; i++ {
		l, err := w.SpawnLaser(player, 0)
		if err != nil {
			t.Fatal(err)
		}
		w.Destroy(l)
		w.Sweep()
	}
	if audio.count(SoundLaserA) == 0 || audio.count(SoundLaserB) == 0 {
		t.Fatalf("laser sounds A/B = %d/%d, want both used", audio.count(SoundLaserA), audio.count(SoundLaserB))
	}
}

func TestLaserWithDeadShooterStillHits(t *testing.T) {
	w, _ := newTestWorld(t)
	player, p := spawnTestPlayer(t, w)
	player.Position = Vec2{300, 300}
	laser, _ := w.SpawnLaser(player, 0)
	laser.Position = Vec2{}
	asteroid, _ := w.SpawnAsteroid(AsteroidSmall, Vec2{})

	// The shooter goes away; its handle and id go stale.
	w.Destroy(player)
	w.Sweep()
	if _, ok := w.Resolve(w.Laser(laser).Shooter); ok {
		t.Fatal("shooter still resolves")
	}

	w.ClearJustCreated()
	w.RebuildTransforms()
	w.DetectCollisions()

	if !laser.PendingDestroy || !asteroid.PendingDestroy {
		t.Fatal("stale-shooter laser did not hit")
	}
	if p.Score != 0 {
		t.Fatal("score credited to a released payload")
	}
}

func TestLaserFactionTargets(t *testing.T) {
	cases := []struct {
		name        string
		faction     Faction
		target      Kind
		laserGone   bool
		targetFalls bool
	}{
		{"player laser vs asteroid", FactionPlayer, KindAsteroid, true, true},
		{"player laser vs enemy", FactionPlayer, KindEnemy, true, true},
		{"enemy laser vs asteroid", FactionEnemy, KindAsteroid, false, false},
		{"enemy laser vs enemy", FactionEnemy, KindEnemy, false, false},
		{"enemy laser vs player", FactionEnemy, KindPlayer, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := newTestWorld(t)
			player, _ := spawnTestPlayer(t, w)
			dropShield(t, w, player)
			enemy, _ := w.SpawnEnemy()
			en := w.Enemy(enemy)

			var target *Entity
			switch tc.target {
			case KindAsteroid:
				player.Position = Vec2{400, 300}
				target, _ = w.SpawnAsteroid(AsteroidLarge, Vec2{})
			case KindEnemy:
				player.Position = Vec2{400, 300}
				w.enemySpawn(enemy, en)
				enemy.Position = Vec2{}
				target = enemy
			case KindPlayer:
				player.Position = Vec2{}
				target = player
			}

			shooter := player
			if tc.faction == FactionEnemy {
				shooter = enemy
				if tc.target != KindEnemy {
					enemy.Position = Vec2{-400, -300}
				}
			}
			laser, err := w.SpawnLaser(shooter, 0)
			if err != nil {
				t.Fatal(err)
			}
			laser.Position = Vec2{}
			w.ClearJustCreated()
			w.RebuildTransforms()
			w.DetectCollisions()

			if laser.PendingDestroy != tc.laserGone {
				t.Errorf("laser destroyed = %v, want %v", laser.PendingDestroy, tc.laserGone)
			}
			var fell bool
			switch tc.target {
			case KindAsteroid:
				fell = target.PendingDestroy
			case KindEnemy:
				fell = en.State == EnemyDead
			case KindPlayer:
				fell = w.Player(target).State == PlayerDead
			}
			if fell != tc.targetFalls {
				t.Errorf("target fell = %v, want %v", fell, tc.targetFalls)
			}
		})
	}
}
