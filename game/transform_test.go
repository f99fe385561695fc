package game

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func nearVec(a, b Vec2) bool { return near(a.X, b.X) && near(a.Y, b.Y) }

func TestLocalTransformKnownValues(t *testing.T) {
	tr := LocalTransform(Vec2{10, 0}, 90, 2)
	got := tr.Apply(Vec2{1, 0})
	if !nearVec(got, Vec2{10, 2}) {
		t.Fatalf("Apply = %+v, want {10 2}", got)
	}
	if !nearVec(tr.Origin(), Vec2{10, 0}) {
		t.Fatalf("Origin = %+v", tr.Origin())
	}
}

func TestMulIdentity(t *testing.T) {
	tr := LocalTransform(Vec2{3, -4}, 33, 1.5)
	for _, m := range []Transform{Identity().Mul(tr), tr.Mul(Identity())} {
		if !nearVec(m.Apply(Vec2{2, 5}), tr.Apply(Vec2{2, 5})) {
			t.Fatal("identity changed the transform")
		}
	}
}

type pose struct {
	pos   Vec2
	rot   float64
	scale float64
}

func TestRebuildComposesChain(t *testing.T) {
	cases := []struct {
		name    string
		a, b, c pose
	}{
		{"worked example", pose{Vec2{10, 0}, 90, 2}, pose{Vec2{1, 0}, 0, 1}, pose{Vec2{1, 0}, 0, 1}},
		{"rotated and scaled", pose{Vec2{-50, 20}, 30, 0.5}, pose{Vec2{7, -3}, 120, 3}, pose{Vec2{-2, 9}, 45, 0.25}},
		{"negative angles", pose{Vec2{0.5, 0.5}, -170, 1.25}, pose{Vec2{100, 0}, -45, 1}, pose{Vec2{0, -30}, 720, 2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := newTestWorld(t)
			a := mustCreate(t, w, KindNone, nil)
			b := mustCreate(t, w, KindNone, a)
			c := mustCreate(t, w, KindNone, b)
			a.Position, a.Orientation, a.Scale = tc.a.pos, tc.a.rot, tc.a.scale
			b.Position, b.Orientation, b.Scale = tc.b.pos, tc.b.rot, tc.b.scale
			c.Position, c.Orientation, c.Scale = tc.c.pos, tc.c.rot, tc.c.scale

			w.RebuildTransforms()

			want := LocalTransform(tc.a.pos, tc.a.rot, tc.a.scale).
				Mul(LocalTransform(tc.b.pos, tc.b.rot, tc.b.scale)).
				Mul(LocalTransform(tc.c.pos, tc.c.rot, tc.c.scale)).
				Apply(Vec2{})
			if got := c.WorldPosition(); !nearVec(got, want) {
				t.Fatalf("C world position = %+v, want %+v", got, want)
			}

			// Association order does not matter.
			alt := LocalTransform(tc.a.pos, tc.a.rot, tc.a.scale).Mul(
				LocalTransform(tc.b.pos, tc.b.rot, tc.b.scale).Mul(LocalTransform(tc.c.pos, tc.c.rot, tc.c.scale)))
			if !nearVec(alt.Origin(), want) {
				t.Fatalf("right-associated chain = %+v, want %+v", alt.Origin(), want)
			}
		})
	}

	t.Run("worked example value", func(t *testing.T) {
		w, _ := newTestWorld(t)
		a := mustCreate(t, w, KindNone, nil)
		b := mustCreate(t, w, KindNone, a)
		c := mustCreate(t, w, KindNone, b)
		a.Position, a.Orientation, a.Scale = Vec2{10, 0}, 90, 2
		b.Position = Vec2{1, 0}
		c.Position = Vec2{1, 0}
		w.RebuildTransforms()
		if got := c.WorldPosition(); !nearVec(got, Vec2{10, 4}) {
			t.Fatalf("C world position = %+v, want {10 4}", got)
		}
	})
}

func TestNormalizeDegrees(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{180, 180},
		{-180, 180},
		{190, -170},
		{-190, 170},
		{720, 0},
		{540, 180},
	}
	for _, tc := range cases {
		if got := normalizeDegrees(tc.in); math.Abs(got-tc.want) > eps {
			t.Errorf("normalizeDegrees(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
