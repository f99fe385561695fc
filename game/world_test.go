package game

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// recordingAudio remembers every sound request
type recordingAudio struct {
	played []Sound
	voices []*recordingVoice
}

type recordingVoice struct {
	sound   Sound
	loop    bool
	volume  float64
	stopped bool
}

func (a *recordingAudio) Play(s Sound, loop bool, volume float64) Voice {
	a.played = append(a.played, s)
	v := &recordingVoice{sound: s, loop: loop, volume: volume}
	a.voices = append(a.voices, v)
	return v
}

func (a *recordingAudio) count(s Sound) int {
	n := 0
	for _, p := range a.played {
		if p == s {
			n++
		}
	}
	return n
}

func (v *recordingVoice) SetVolume(volume float64) { v.volume = volume }
func (v *recordingVoice) Playing() bool            { return !v.stopped }
func (v *recordingVoice) Stop()                    { v.stopped = true }

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.AutoWaves = false
	return cfg
}

func newTestWorld(t *testing.T) (*World, *recordingAudio) {
	t.Helper()
	return newTestWorldWith(t, testConfig(), DefaultTuning())
}

func newTestWorldWith(t *testing.T, cfg Config, tuning Tuning) (*World, *recordingAudio) {
	t.Helper()
	audio := &recordingAudio{}
	w, err := NewWorld(cfg, tuning, zaptest.NewLogger(t, zaptest.WrapOptions(zap.Development())), NewRNG(7), audio)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w, audio
}

func mustCreate(t *testing.T, w *World, kind Kind, parent *Entity) *Entity {
	t.Helper()
	e, err := w.Create(kind, parent)
	if err != nil {
		t.Fatalf("Create(%s): %v", kind, err)
	}
	return e
}

// checkTree asserts that every non-root entity is linked into its parent's
// child list exactly once
func checkTree(t *testing.T, w *World) {
	t.Helper()
	root := w.Root()
	w.Each(func(e *Entity) bool {
		if e == root {
			if !e.Parent().IsZero() {
				t.Errorf("root has a parent")
			}
			return true
		}
		parent, ok := w.Resolve(e.Parent())
		if !ok {
			t.Errorf("entity %d (%s) has no live parent", e.ID, e.Kind)
			return true
		}
		n := 0
		for _, c := range w.Children(parent) {
			if c == e {
				n++
			}
		}
		if n != 1 {
			t.Errorf("entity %d appears %d times in its parent's children", e.ID, n)
		}
		return true
	})
}

func TestNewWorldHasRoot(t *testing.T) {
	w, _ := newTestWorld(t)
	root := w.Root()
	if root == nil {
		t.Fatal("no root")
	}
	if root.Kind != KindNone {
		t.Fatalf("root kind = %s", root.Kind)
	}
	if w.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", w.Len())
	}
	if n := w.Destroy(root); n != 0 || root.PendingDestroy {
		t.Fatal("root was flagged for destruction")
	}
}

func TestCreateLinksChildrenInOrder(t *testing.T) {
	w, _ := newTestWorld(t)
	a := mustCreate(t, w, KindNone, nil)
	b := mustCreate(t, w, KindNone, a)
	c := mustCreate(t, w, KindNone, a)
	d := mustCreate(t, w, KindNone, a)

	got := w.Children(a)
	want := []*Entity{b, c, d}
	if len(got) != len(want) {
		t.Fatalf("children = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("child %d = entity %d, want %d", i, got[i].ID, want[i].ID)
		}
	}
	if p, _ := w.Resolve(b.Parent()); p != a {
		t.Fatal("child does not point at its parent")
	}
	if !b.JustCreated {
		t.Fatal("new entity not marked just created")
	}
	checkTree(t, w)
}

func TestIDsIncreaseAndAreNeverReused(t *testing.T) {
	w, _ := newTestWorld(t)
	var last EntityID
	for i := 0; i < 5; i++ {
		e := mustCreate(t, w, KindNone, nil)
		if e.ID <= last {
			t.Fatalf("id %d not above %d", e.ID, last)
		}
		last = e.ID
		w.Destroy(e)
		w.Sweep()
	}
}

func TestDestroyFlagsSubtreeAndSweepReleasesIt(t *testing.T) {
	w, _ := newTestWorld(t)
	a := mustCreate(t, w, KindNone, nil)
	b := mustCreate(t, w, KindNone, a)
	mustCreate(t, w, KindNone, a)
	mustCreate(t, w, KindNone, b)
	keep := mustCreate(t, w, KindNone, nil)

	before := w.Len()
	if n := w.Destroy(a); n != 4 {
		t.Fatalf("Destroy flagged %d entities, want 4", n)
	}
	if n := w.Destroy(a); n != 0 {
		t.Fatalf("second Destroy flagged %d entities, want 0", n)
	}

	// Flagged entities stay addressable until the sweep.
	if _, ok := w.Find(b.ID); !ok {
		t.Fatal("flagged entity not found before sweep")
	}
	ids := []EntityID{a.ID, b.ID}

	if n := w.Sweep(); n != 4 {
		t.Fatalf("Sweep released %d entities, want 4", n)
	}
	if w.Len() != before-4 {
		t.Fatalf("Len() = %d, want %d", w.Len(), before-4)
	}
	for _, id := range ids {
		if _, ok := w.Find(id); ok {
			t.Fatalf("entity %d still found after sweep", id)
		}
	}
	if got := w.Children(w.Root()); len(got) != 1 || got[0] != keep {
		t.Fatalf("root children after sweep = %d, want only the survivor", len(got))
	}
	checkTree(t, w)
}

func TestSweepUnlinksMiddleSibling(t *testing.T) {
	w, _ := newTestWorld(t)
	a := mustCreate(t, w, KindNone, nil)
	b := mustCreate(t, w, KindNone, a)
	c := mustCreate(t, w, KindNone, a)
	d := mustCreate(t, w, KindNone, a)

	w.Destroy(c)
	w.Sweep()

	got := w.Children(a)
	if len(got) != 2 || got[0] != b || got[1] != d {
		t.Fatalf("children after unlink = %v", got)
	}
	checkTree(t, w)
}

func TestFindAndResolveAfterSlotReuse(t *testing.T) {
	w, _ := newTestWorld(t)
	old := mustCreate(t, w, KindNone, nil)
	oldID, oldRef := old.ID, old.Ref()
	w.Destroy(old)
	w.Sweep()

	fresh := mustCreate(t, w, KindNone, nil)
	if fresh.Ref().Index != oldRef.Index {
		t.Fatalf("expected slot reuse, got %d want %d", fresh.Ref().Index, oldRef.Index)
	}
	if _, ok := w.Find(oldID); ok {
		t.Fatal("Find resolved a destroyed id")
	}
	if _, ok := w.Resolve(oldRef); ok {
		t.Fatal("Resolve resolved a stale handle")
	}
	if e, ok := w.Find(fresh.ID); !ok || e != fresh {
		t.Fatal("Find missed the live entity")
	}
	if _, ok := w.Find(InvalidEntityID); ok {
		t.Fatal("Find resolved the invalid id")
	}
}

func TestCreateReportsPoolExhaustion(t *testing.T) {
	cfg := testConfig()
	cfg.Capacity.Lasers = 1
	w, _ := newTestWorldWith(t, cfg, DefaultTuning())
	player, err := w.SpawnPlayer()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := w.SpawnLaser(player, 0); err != nil {
		t.Fatalf("first laser: %v", err)
	}
	before := w.Len()
	_, err = w.SpawnLaser(player, 0)
	if !errors.Is(err, ErrPoolExhausted) {
		t.Fatalf("second laser: err = %v, want ErrPoolExhausted", err)
	}
	if w.Len() != before {
		t.Fatalf("failed create leaked an entity slot: %d -> %d", before, w.Len())
	}
	if w.Count(KindLaser) != 1 {
		t.Fatalf("Count(laser) = %d, want 1", w.Count(KindLaser))
	}
}

func TestCreateUnderFlaggedParentFails(t *testing.T) {
	w, _ := newTestWorld(t)
	a := mustCreate(t, w, KindNone, nil)
	w.Destroy(a)
	if _, err := w.Create(KindNone, a); err == nil {
		t.Fatal("Create under a flagged parent succeeded")
	}
}

func TestPayloadSlotFollowsEntity(t *testing.T) {
	w, _ := newTestWorld(t)
	a, err := w.SpawnAsteroid(AsteroidLarge, Vec2{})
	if err != nil {
		t.Fatal(err)
	}
	if w.asteroids.Len() != 1 {
		t.Fatalf("asteroid pool Len() = %d, want 1", w.asteroids.Len())
	}
	if w.Laser(a) != nil || w.Player(a) != nil {
		t.Fatal("asteroid resolved a foreign payload")
	}

	// Small asteroids do not split, so the sweep leaves the pool empty.
	w.Asteroid(a).Size = AsteroidSmall
	w.Destroy(a)
	w.Sweep()
	if w.asteroids.Len() != 0 {
		t.Fatalf("asteroid pool Len() = %d after sweep, want 0", w.asteroids.Len())
	}
}

func TestClearJustCreated(t *testing.T) {
	w, _ := newTestWorld(t)
	e := mustCreate(t, w, KindNone, nil)
	w.ClearJustCreated()
	if e.JustCreated {
		t.Fatal("JustCreated still set")
	}
}

func TestUnhandledKindPanicsInDevelopment(t *testing.T) {
	w, _ := newTestWorld(t)
	e := mustCreate(t, w, KindNone, nil)
	e.Kind = Kind(200)
	defer func() {
		if recover() == nil {
			t.Fatal("unhandled kind did not panic under a development logger")
		}
	}()
	w.onUpdate(e, 0.016)
}
