package game

import "math"

// leadTarget returns the point a shot fired from `from` at projectileSpeed
// should aim for to meet a target moving at a constant velocity.
//
// The intercept time is refined iteratively: start with the time to reach
// the target's current position, move the target along by that time and
// repeat until the estimate settles.
func leadTarget(from, target, velocity Vec2, projectileSpeed float64) Vec2 {
	// Target is not moving, aim straight at it
	if math.Abs(velocity.X) < 0.1 && math.Abs(velocity.Y) < 0.1 {
		return target
	}
	distance := target.Sub(from).Len()
	if distance < 1 || projectileSpeed <= 0 {
		return target
	}

	t := distance / projectileSpeed
	for i := 0; i < 5; i++ {
		predicted := target.Add(velocity.Scale(t))
		d := predicted.Sub(from).Len()
		if d == 0 {
			break
		}
		next := d / projectileSpeed
		if math.Abs(next-t) < 0.001 {
			break
		}
		t = next
	}
	return target.Add(velocity.Scale(t))
}
