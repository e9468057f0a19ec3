package rowan

// ColorTransform is a multiplicative and additive color adjustment. A pixel
// channel v becomes v*Mul + Add. Alpha rides in AMul/AAdd, so a node's
// alpha is part of its tint and concatenates down the tree with it.
// Multipliers are in [0, 1]; additive terms are in [-1, 1].
type ColorTransform struct {
	RMul, GMul, BMul, AMul float64
	RAdd, GAdd, BAdd, AAdd float64
}

// identityTint leaves colors unchanged.
var identityTint = ColorTransform{RMul: 1, GMul: 1, BMul: 1, AMul: 1}

// IdentityColorTransform returns the tint that leaves colors unchanged.
func IdentityColorTransform() ColorTransform {
	return identityTint
}

// Mul concatenates two color transforms: result = t then applied after c,
// mirroring Matrix.Mul's parent-times-child orientation. A channel passed
// through c first and t second satisfies (v*c.Mul + c.Add)*t.Mul + t.Add.
func (t ColorTransform) Mul(c ColorTransform) ColorTransform {
	return ColorTransform{
		RMul: t.RMul * c.RMul,
		GMul: t.GMul * c.GMul,
		BMul: t.BMul * c.BMul,
		AMul: t.AMul * c.AMul,
		RAdd: t.RMul*c.RAdd + t.RAdd,
		GAdd: t.GMul*c.GAdd + t.GAdd,
		BAdd: t.BMul*c.BAdd + t.BAdd,
		AAdd: t.AMul*c.AAdd + t.AAdd,
	}
}

// Apply transforms one RGBA value (components in [0, 1]), clamping the
// result to [0, 1].
func (t ColorTransform) Apply(r, g, b, a float64) (float64, float64, float64, float64) {
	return clamp01(r*t.RMul + t.RAdd),
		clamp01(g*t.GMul + t.GAdd),
		clamp01(b*t.BMul + t.BAdd),
		clamp01(a*t.AMul + t.AAdd)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
