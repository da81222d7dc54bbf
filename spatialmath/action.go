package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// Rotate returns R*p. H1 and H2 receive the derivatives with respect to r and p.
func (r Rot3) Rotate(p r3.Vector, H1, H2 *mgl64.Mat3) r3.Vector {
	if H1 != nil || H2 != nil {
		m := r.Matrix()
		if H1 != nil {
			*H1 = m.Mul3(Skew(p)).Mul(-1)
		}
		if H2 != nil {
			*H2 = m
		}
	}
	return r.apply(p)
}

// Unrotate returns R^T*p, the inverse action. H1 and H2 receive the derivatives with respect to
// r and p.
func (r Rot3) Unrotate(p r3.Vector, H1, H2 *mgl64.Mat3) r3.Vector {
	q := r.applyInverse(p)
	if H1 != nil {
		*H1 = Skew(q)
	}
	if H2 != nil {
		*H2 = r.Transpose()
	}
	return q
}

// RotateUnit3 rotates a direction. HR and Hp receive the derivatives with respect to r and p,
// expressed in the tangent basis of the result.
func (r Rot3) RotateUnit3(p Unit3, HR *mgl64.Mat2x3, Hp *mgl64.Mat2) Unit3 {
	q := Unit3{r.apply(p.p)}
	if HR != nil || Hp != nil {
		m := r.Matrix()
		bqt := q.Basis().Transpose()
		if HR != nil {
			*HR = bqt.Mul3(m.Mul3(Skew(p.p))).Mul(-1)
		}
		if Hp != nil {
			*Hp = bqt.Mul3(m).Mul3x2(p.Basis())
		}
	}
	return q
}

// UnrotateUnit3 applies the inverse rotation to a direction. HR and Hp receive the derivatives
// with respect to r and p, expressed in the tangent basis of the result.
func (r Rot3) UnrotateUnit3(p Unit3, HR *mgl64.Mat2x3, Hp *mgl64.Mat2) Unit3 {
	q := Unit3{r.applyInverse(p.p)}
	if HR != nil || Hp != nil {
		bqt := q.Basis().Transpose()
		if HR != nil {
			*HR = bqt.Mul3(Skew(q.p))
		}
		if Hp != nil {
			*Hp = bqt.Mul3(r.Transpose()).Mul3x2(p.Basis())
		}
	}
	return q
}
