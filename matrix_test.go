package rowan

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Matrix) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func assertRect(t *testing.T, name string, got, want Rect) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon ||
		math.Abs(got.Width-want.Width) > epsilon || math.Abs(got.Height-want.Height) > epsilon {
		t.Errorf("%s = %+v, want %+v", name, got, want)
	}
}

// --- composeMatrix ---

func TestComposeIdentity(t *testing.T) {
	got := composeMatrix(0, 0, 1, 1, 0)
	assertMatrix(t, "identity", got, identityMatrix)
}

func TestComposeTranslation(t *testing.T) {
	got := composeMatrix(10, 20, 1, 1, 0)
	assertMatrix(t, "translation", got, Matrix{1, 0, 0, 1, 10, 20})
}

func TestComposeScale(t *testing.T) {
	got := composeMatrix(0, 0, 2, 3, 0)
	assertMatrix(t, "scale", got, Matrix{2, 0, 0, 3, 0, 0})
}

func TestComposeRotation90(t *testing.T) {
	got := composeMatrix(0, 0, 1, 1, math.Pi/2)
	// cos(90)=0, sin(90)=1 -> a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", got, Matrix{0, 1, -1, 0, 0, 0})
}

func TestComposeCombined(t *testing.T) {
	got := composeMatrix(50, 100, 2, 2, math.Pi/2)
	// Scale(2,2) then Rotate(90deg): a=0, b=2, c=-2, d=0
	assertMatrix(t, "combined", got, Matrix{0, 2, -2, 0, 50, 100})
}

// --- Mul ---

func TestMulIdentity(t *testing.T) {
	id := identityMatrix
	m := Matrix{2, 1, 3, 4, 5, 6}
	assertMatrix(t, "id*m", id.Mul(m), m)
	assertMatrix(t, "m*id", m.Mul(id), m)
}

func TestMulTranslations(t *testing.T) {
	a := TranslationMatrix(10, 20)
	b := TranslationMatrix(5, 3)
	assertMatrix(t, "translations", a.Mul(b), Matrix{1, 0, 0, 1, 15, 23})
}

// --- Invert ---

func TestInvert(t *testing.T) {
	m := Matrix{2, 0, 0, 3, 10, 20}
	assertMatrix(t, "m*inv=id", m.Mul(m.Invert()), identityMatrix)
}

func TestInvertComplex(t *testing.T) {
	m := composeMatrix(7, -3, 2, 1, math.Pi/3)
	assertMatrix(t, "m*inv=id", m.Mul(m.Invert()), identityMatrix)
}

func TestInvertSingularReturnsIdentity(t *testing.T) {
	// ScaleX=0 produces a singular matrix (determinant=0).
	m := Matrix{0, 0, 0, 1, 10, 20}
	assertMatrix(t, "singular->identity", m.Invert(), identityMatrix)
}

// --- Apply / MapRect ---

func TestApply(t *testing.T) {
	m := TranslationMatrix(10, 20)
	x, y := m.Apply(1, 2)
	assertNear(t, "x", x, 11)
	assertNear(t, "y", y, 22)
}

func TestMapRectTranslation(t *testing.T) {
	m := TranslationMatrix(5, 5)
	got := m.MapRect(Rect{X: 0, Y: 0, Width: 10, Height: 10})
	assertRect(t, "translated", got, Rect{X: 5, Y: 5, Width: 10, Height: 10})
}

func TestMapRectRotationRederivesAxisAligned(t *testing.T) {
	m := composeMatrix(0, 0, 1, 1, math.Pi/2)
	got := m.MapRect(Rect{X: 0, Y: 0, Width: 10, Height: 4})
	// Rotating 90deg maps (10,4) onto x in [-4,0], y in [0,10].
	assertRect(t, "rotated", got, Rect{X: -4, Y: 0, Width: 4, Height: 10})
}

func TestMapRectEmptyStaysEmpty(t *testing.T) {
	m := TranslationMatrix(100, 100)
	if got := m.MapRect(Rect{}); !got.Empty() {
		t.Errorf("MapRect(empty) = %+v, want empty", got)
	}
}

// --- decompose ---

func TestDecomposeRoundTrip(t *testing.T) {
	m := composeMatrix(12, -7, 2, 0.5, 0.7)
	x, y, sx, sy, r := m.decompose()
	assertNear(t, "x", x, 12)
	assertNear(t, "y", y, -7)
	assertNear(t, "scaleX", sx, 2)
	assertNear(t, "scaleY", sy, 0.5)
	assertNear(t, "rotation", r, 0.7)
}

// --- Rect ---

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: -5, Width: 10, Height: 10}
	assertRect(t, "union", a.Union(b), Rect{X: 0, Y: -5, Width: 15, Height: 15})
}

func TestRectUnionIgnoresEmpty(t *testing.T) {
	a := Rect{X: 2, Y: 3, Width: 4, Height: 5}
	assertRect(t, "a+empty", a.Union(Rect{}), a)
	assertRect(t, "empty+a", Rect{}.Union(a), a)
}

// --- Benchmarks ---

func BenchmarkMatrixMul(b *testing.B) {
	p := Matrix{2, 0.1, 0.3, 3, 100, 200}
	c := Matrix{1.5, 0.2, 0.1, 2.5, 50, 30}
	b.ReportAllocs()
	for b.Loop() {
		_ = p.Mul(c)
	}
}

func BenchmarkComposeMatrix(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = composeMatrix(100, 200, 2, 3, 0.5)
	}
}
