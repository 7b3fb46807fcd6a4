package isologo

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

func TestComposeIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    *Matrix
	}{
		{"identity", NewMatrix()},
		{"translation", NewMatrix().Translate(1, -2, 3)},
		{"uniform scale", NewMatrix().Scale(2)},
		{"rotation", NewMatrix().RotX(0.3).RotY(-1.1).RotZ(2)},
		{"mixed", NewMatrix().Translate(4, 5, 6).Scale(1, 2, 3).RotY(math.Pi / 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Copy().Compose(NewMatrix().M())
			if got.M() != tt.m.M() {
				t.Errorf("M * I = %v, want %v", got, tt.m)
			}
		})
	}
}

func TestNoArgTransformsAreNoops(t *testing.T) {
	m := NewMatrix().Translate(1, 2, 3).RotZ(0.5)
	want := m.Copy()

	m.Scale().Translate(0, 0, 0)
	if m.M() != want.M() {
		t.Errorf("Scale()/Translate(0,0,0) changed matrix: got %v, want %v", m, want)
	}
}

func TestComposeOrder(t *testing.T) {
	// Translate first, then scale: the translation is scaled too.
	m := NewMatrix().Translate(5, 0, 0).Scale(2)
	p := Pt(1, 0, 0)
	p.Transform(m)
	if !p.Approx(Pt(12, 0, 0), epsilon) {
		t.Errorf("translate then scale: got %+v, want (12,0,0)", p)
	}

	// Scale first, then translate.
	m = NewMatrix().Scale(2).Translate(5, 0, 0)
	p = Pt(1, 0, 0)
	p.Transform(m)
	if !p.Approx(Pt(7, 0, 0), epsilon) {
		t.Errorf("scale then translate: got %+v, want (7,0,0)", p)
	}
}

func TestRotations(t *testing.T) {
	tests := []struct {
		name string
		m    *Matrix
		in   Point
		want Point
	}{
		{"rotx 90 moves y to z", NewMatrix().RotX(math.Pi / 2), Pt(0, 1, 0), Pt(0, 0, 1)},
		{"roty 90 moves z to x", NewMatrix().RotY(math.Pi / 2), Pt(0, 0, 1), Pt(1, 0, 0)},
		{"rotz 90 moves x to y", NewMatrix().RotZ(math.Pi / 2), Pt(1, 0, 0), Pt(0, 1, 0)},
		{"rotz 180", NewMatrix().RotZ(math.Pi), Pt(1, 2, 3), Pt(-1, -2, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Transformed(tt.m)
			if !got.Approx(tt.want, epsilon) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSaveRestore(t *testing.T) {
	m := NewMatrix().Translate(1, 2, 3).RotY(0.7)
	want := m.M()

	m.Save().Restore()
	if m.M() != want {
		t.Errorf("Save/Restore without mutation changed matrix: %v", m)
	}

	m.Save()
	m.Scale(4).RotX(1)
	m.Restore()
	if m.M() != want {
		t.Errorf("Restore did not return to checkpoint: %v", m)
	}
}

func TestSaveIsSingleSlot(t *testing.T) {
	m := NewMatrix()
	m.Save()
	m.Translate(1, 0, 0)
	m.Save() // overwrites the identity checkpoint
	m.Translate(1, 0, 0)
	m.Restore()

	if got := m.Translation(); !got.Approx(Pt(1, 0, 0), epsilon) {
		t.Errorf("Restore after second Save: translation = %+v, want (1,0,0)", got)
	}
}

func TestCopyIsDeep(t *testing.T) {
	m := NewMatrix().Translate(1, 1, 1)
	c := m.Copy()
	c.Translate(1, 0, 0)
	if m.Translation() != Pt(1, 1, 1) {
		t.Errorf("mutating copy changed original: %v", m)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	matrices := []*Matrix{
		NewMatrix(),
		NewMatrix().Translate(3, -4, 5),
		NewMatrix().Scale(2, 0.5, 4),
		NewMatrix().RotX(0.4).RotY(1.2).RotZ(-0.8).Translate(1, 2, 3).Scale(3),
		IdentityQuaternion().Multiply(PointAngle(Pt(1, 1, 1), 0.9)).Matrix(),
	}
	points := []Point{Pt(0, 0, 0), Pt(1, 2, 3), Pt(-7.5, 0.25, 100)}

	for _, m := range matrices {
		inv, ok := m.Invert()
		if !ok {
			t.Fatalf("Invert(%v) reported singular", m)
		}
		for _, p := range points {
			got := p
			got.Transform(m).Transform(inv)
			if !got.Approx(p, 1e-9) {
				t.Errorf("round trip of %+v through %v = %+v", p, m, got)
			}
		}
	}
}

func TestInvertSingular(t *testing.T) {
	m := NewMatrix().Scale(1, 0, 1)
	if _, ok := m.Invert(); ok {
		t.Error("Invert of a flattening scale should fail")
	}
}

func TestMatrixOfKeepsValues(t *testing.T) {
	vals := [16]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	m := MatrixOf(vals)
	if m.M() != vals {
		t.Errorf("MatrixOf = %v", m)
	}
	if len(m.M()) != 16 {
		t.Errorf("len(M) = %d", len(m.M()))
	}
	if m.IsIdentity() {
		t.Error("IsIdentity() = true for non-identity values")
	}
}

func TestRowMajorView(t *testing.T) {
	m := NewMatrix().Translate(1, 2, 3)
	r := m.M()
	if r[3] != 1 || r[7] != 2 || r[11] != 3 {
		t.Errorf("translation not in the last column: %v", r)
	}
	if m.Mat4() != mgl64.Translate3D(1, 2, 3) {
		t.Errorf("Mat4() = %v, want Translate3D(1, 2, 3)", m.Mat4())
	}

	// Rows follow the column-vector convention: RotZ(90) has -sin above the diagonal.
	r = NewMatrix().RotZ(math.Pi / 2).M()
	if math.Abs(r[1]+1) > epsilon || math.Abs(r[4]-1) > epsilon {
		t.Errorf("RotZ(90).M() = %v", r)
	}

	// Compose takes row-major input and agrees with the chained form.
	a := NewMatrix().Scale(2).Compose(NewMatrix().Translate(5, 0, 0).M())
	b := NewMatrix().Scale(2).Translate(5, 0, 0)
	if !a.Approx(b, epsilon) {
		t.Errorf("Compose(row-major) = %v, want %v", a, b)
	}
}

func BenchmarkCompose(b *testing.B) {
	m := NewMatrix()
	r := NewMatrix().RotY(0.01)
	for i := 0; i < b.N; i++ {
		m.Compose(r.M())
	}
}
