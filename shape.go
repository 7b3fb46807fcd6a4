package isologo

// Shape is a collection of faces.
type Shape struct {
	Faces []*Face
}

// NewShape creates a shape from faces.
func NewShape(faces ...*Face) *Shape {
	return &Shape{Faces: faces}
}

// Rect builds the six faces of the box spanning the origin to (xx, yy, zz).
//
// Faces are ordered z=0, z=zz, y=0, y=yy, x=0, x=xx. The far face of each
// pair (1, 3 and 5) is reversed so every face winds the same way seen from
// outside the box.
func Rect(xx, yy, zz float64) *Shape {
	p000 := Pt(0, 0, 0)
	p100 := Pt(xx, 0, 0)
	p010 := Pt(0, yy, 0)
	p001 := Pt(0, 0, zz)
	p110 := Pt(xx, yy, 0)
	p101 := Pt(xx, 0, zz)
	p011 := Pt(0, yy, zz)
	p111 := Pt(xx, yy, zz)

	faces := []*Face{
		NewFace(p000, p100, p110, p010),
		NewFace(p001, p101, p111, p011),
		NewFace(p000, p001, p101, p100),
		NewFace(p010, p011, p111, p110),
		NewFace(p000, p010, p011, p001),
		NewFace(p100, p110, p111, p101),
	}
	faces[1].Reverse()
	faces[3].Reverse()
	faces[5].Reverse()
	return NewShape(faces...)
}

// UnitRect is the unit cube extending from the origin in the negative
// direction on every axis.
func UnitRect() *Shape {
	return Rect(-1, -1, -1)
}

// Join returns the symmetric difference of the shapes' faces: a face that
// occurs an even number of times across all shapes is dropped, so blocks
// placed side by side lose the face they share.
//
// Faces compare by Face.Key, which is exact. Shapes must be joined before
// any floating-point drift separates coincident faces. The surviving faces
// are clones, in first-seen order.
func Join(shapes ...*Shape) *Shape {
	var kept []*Face
	index := make(map[string]int)
	for _, s := range shapes {
		for _, f := range s.Faces {
			k := f.Key()
			if i, ok := index[k]; ok {
				kept[i] = nil
				delete(index, k)
				continue
			}
			index[k] = len(kept)
			kept = append(kept, f.Clone())
		}
	}

	out := &Shape{Faces: make([]*Face, 0, len(index))}
	for _, f := range kept {
		if f != nil {
			out.Faces = append(out.Faces, f)
		}
	}
	return out
}

// Transform returns a copy of the shape with every point transformed by m.
func (s *Shape) Transform(m *Matrix) *Shape {
	out := &Shape{Faces: make([]*Face, len(s.Faces))}
	for i, f := range s.Faces {
		out.Faces[i] = f.Clone().Transform(m)
	}
	return out
}

// Project fills the projection caches of every face.
func (s *Shape) Project(m *Matrix) {
	for _, f := range s.Faces {
		f.Project(m)
	}
}

func (*Shape) isNode() {}
