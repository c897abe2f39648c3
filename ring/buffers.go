package ring

import (
	"github.com/slaperche-scality/nttec/buffer"
)

// MulCoefToBuf writes dst[i] = a * src[i] mod q for every i.
func (r *Ring[T]) MulCoefToBuf(a T, src, dst []T) {
	for i, v := range src {
		dst[i] = r.Mul(a, v)
	}
}

// AddTwoBufs writes dst[i] = (dst[i] + src[i]) mod q for every i.
func (r *Ring[T]) AddTwoBufs(src, dst []T) {
	for i, v := range src {
		dst[i] = r.Add(v, dst[i])
	}
}

// SubTwoBufs writes res[i] = (a[i] - b[i]) mod q for every i.
func (r *Ring[T]) SubTwoBufs(a, b, res []T) {
	for i := range a {
		res[i] = r.Sub(a[i], b[i])
	}
}

// HadamardMul writes x[i] = x[i] * y[i] mod q in place, for 0 <= i < len(y).
func (r *Ring[T]) HadamardMul(x, y []T) {
	for i, v := range y {
		x[i] = r.Mul(x[i], v)
	}
}

// HadamardMulDoubled treats x as two consecutive halves of length
// len(x)/2 and multiplies y into each half independently.
func (r *Ring[T]) HadamardMulDoubled(x, y []T) {
	half := len(x) / 2
	for i, v := range y {
		x[i] = r.Mul(x[i], v)
		x[half+i] = r.Mul(x[half+i], v)
	}
}

// AddDoubled treats x as two consecutive halves of length len(x)/2 and
// adds y into each half independently.
func (r *Ring[T]) AddDoubled(x, y []T) {
	half := len(x) / 2
	for i, v := range y {
		x[i] = r.Add(x[i], v)
		x[half+i] = r.Add(x[half+i], v)
	}
}

// NegBuf negates every element of x in place.
func (r *Ring[T]) NegBuf(x []T) {
	for i, v := range x {
		x[i] = r.Neg(v)
	}
}

// ButterflyCT is the Cooley-Tukey butterfly: for each i, a = buf1[i],
// b = coef * buf2[i]; buf1[i] = a + b, buf2[i] = a - b.
func (r *Ring[T]) ButterflyCT(coef T, buf1, buf2 []T) {
	for i := range buf1 {
		a := buf1[i]
		b := r.Mul(coef, buf2[i])
		buf1[i] = r.Add(a, b)
		buf2[i] = r.Sub(a, b)
	}
}

// ButterflyGS is the Gentleman-Sande butterfly: for each i, a = buf1[i],
// b = buf2[i]; buf1[i] = a + b, buf2[i] = coef * (a - b).
func (r *Ring[T]) ButterflyGS(coef T, buf1, buf2 []T) {
	for i := range buf1 {
		a := buf1[i]
		b := buf2[i]
		c := r.Sub(a, b)
		buf1[i] = r.Add(a, b)
		buf2[i] = r.Mul(coef, c)
	}
}

// MulVecToBuf multiplies each row of dest by the matching coefficient in
// u, reading rows from src: for every i, dest row i = u[i] * src row i.
// It special-cases the coefficients 0, 1 and q-1 (zero-fill, copy,
// negated copy)
// rather than going through a general multiply, the same shortcut the
// buffer-level Ring operations in the original algorithm take since
// those three coefficients are by far the most common in a sparse
// generator matrix.
func (r *Ring[T]) MulVecToBuf(u *buffer.AlignedBuffer[T], src, dest *buffer.MultiBuffer[T]) {
	h := r.QMinusOne()
	n := u.Len()
	for i := 0; i < n; i++ {
		coef := u.Get(i)
		switch {
		case coef == 0:
			dest.Fill(i, 0)
		case coef == 1:
			_ = dest.Copy(i, *src.Get(i))
		case coef == h:
			_ = dest.Copy(i, *src.Get(i))
			r.NegBuf(dest.Get(i).Data())
		default:
			r.MulCoefToBuf(coef, src.Get(i).Data(), dest.Get(i).Data())
		}
	}
}
