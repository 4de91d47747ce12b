package hal

// aff is a 2x3 affine matrix in row-major order with an implicit [0 0 1]
// bottom row. It maps (x, y) to (m[0]x+m[1]y+m[2], m[3]x+m[4]y+m[5]).
type aff [6]float64

func affIdentity() aff { return aff{1, 0, 0, 0, 1, 0} }

// affMul returns the composition a after b: b applies to points first.
func affMul(a, b aff) aff {
	return aff{
		a[0]*b[0] + a[1]*b[3],
		a[0]*b[1] + a[1]*b[4],
		a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3],
		a[3]*b[1] + a[4]*b[4],
		a[3]*b[2] + a[4]*b[5] + a[5],
	}
}

func affTranslate(dx, dy float64) aff { return aff{1, 0, dx, 0, 1, dy} }

func affScale(sx, sy float64) aff { return aff{sx, 0, 0, 0, sy, 0} }

// ctmStack carries the save/restore transform state shared by both drawing
// surfaces. New operations prepend, so they apply to geometry first.
type ctmStack struct {
	cur   aff
	saved []aff
}

func newCTMStack() ctmStack { return ctmStack{cur: affIdentity()} }

func (s *ctmStack) Save() { s.saved = append(s.saved, s.cur) }

func (s *ctmStack) Restore() {
	if n := len(s.saved); n > 0 {
		s.cur = s.saved[n-1]
		s.saved = s.saved[:n-1]
	}
}

func (s *ctmStack) Translate(dx, dy float64) { s.cur = affMul(s.cur, affTranslate(dx, dy)) }

func (s *ctmStack) Scale(sx, sy float64) { s.cur = affMul(s.cur, affScale(sx, sy)) }

func (s *ctmStack) reset() {
	s.cur = affIdentity()
	s.saved = s.saved[:0]
}
