package bignum

// Toom-3 multiplication. Operands are split into three parts of k words
// interpreted as the coefficients of degree-2 polynomials, evaluated at the
// five points {0, 1, -1, 2, inf}, multiplied pointwise, and interpolated
// back. The evaluation at -1 can go negative, so partial values carry an
// explicit sign bit alongside their magnitude instead of introducing a
// signed magnitude type.

// snat is a sign-carrying nat used for Toom-3 partial values.
type snat struct {
	v   nat
	neg bool
}

func (z *snat) set(x nat) {
	z.v = z.v.set(x)
	z.neg = false
}

// add sets z = z + (sign)x.
func (z *snat) add(x nat, neg bool) {
	if z.neg == neg {
		z.v = z.v.add(z.v, x)
		return
	}
	switch z.v.cmp(x) {
	case 1:
		z.v = z.v.sub(z.v, x)
	case -1:
		t := nat(nil).sub(x, z.v)
		z.v = z.v.set(t)
		z.neg = neg
	default:
		z.v = z.v[:0]
		z.neg = false
	}
}

func (z *snat) sub(x nat, neg bool) {
	z.add(x, !neg)
}

// mul sets z to the product of the signed values (xs)x and (ys)y.
func (z *snat) mul(x nat, xs bool, y nat, ys bool) {
	z.v = z.v.mul(x, y)
	z.neg = xs != ys && len(z.v) > 0
}

// divExactW divides x by d in place, top down. The division must be exact;
// this is a carry sweep, not a general division.
func (x nat) divExactW(d Word) {
	var r uint64
	for i := len(x) - 1; i >= 0; i-- {
		t := r*_DB + uint64(x[i])
		x[i] = Word(t / uint64(d))
		r = t % uint64(d)
	}
	if debugBignum && r != 0 {
		panic("inexact division")
	}
}

func (z *snat) divExactW(d Word) {
	z.v.divExactW(d)
	z.v = z.v.norm()
}

// shl1 sets z = 2*z.
func (z *snat) shl1() {
	z.v = z.v.mulAddWW(z.v, 2, 0)
}

// toom3Mul sets z = x*y using Toom-3. Requires len(x) >= len(y) and
// len(y) >= toom3Threshold.
func (z nat) toom3Mul(x, y nat) nat {
	m := len(x)
	n := len(y)
	k := (m + 2) / 3

	// split both operands into three parts of k words; the top parts may be
	// shorter, and for y they may be empty. All parts are zero-copy views.
	part := func(w nat, i int) nat {
		lo := i * k
		if lo >= len(w) {
			return nil
		}
		hi := lo + k
		if hi > len(w) {
			hi = len(w)
		}
		return w[lo:hi].norm()
	}
	x0, x1, x2 := part(x, 0), part(x, 1), part(x, 2)
	y0, y1, y2 := part(y, 0), part(y, 1), part(y, 2)

	// evaluate both polynomials at 1, -1 and 2
	var px, py, qx, qy, rx, ry snat
	px.set(x0)
	px.add(x2, false) // x0 + x2
	qx = snat{v: nat(nil).set(px.v), neg: px.neg}
	px.add(x1, false) // x(1) = x0 + x1 + x2
	qx.sub(x1, false) // x(-1) = x0 - x1 + x2
	rx.set(x2)
	rx.shl1()
	rx.add(x1, false)
	rx.shl1()
	rx.add(x0, false) // x(2) = 4*x2 + 2*x1 + x0

	py.set(y0)
	py.add(y2, false)
	qy = snat{v: nat(nil).set(py.v), neg: py.neg}
	py.add(y1, false) // y(1)
	qy.sub(y1, false) // y(-1)
	ry.set(y2)
	ry.shl1()
	ry.add(y1, false)
	ry.shl1()
	ry.add(y0, false) // y(2)

	// pointwise products
	v0 := nat(nil).mul(x0, y0)   // w(0)
	vinf := nat(nil).mul(x2, y2) // leading coefficient
	var v1, vm1, v2 snat
	v1.mul(px.v, px.neg, py.v, py.neg)
	vm1.mul(qx.v, qx.neg, qy.v, qy.neg)
	v2.mul(rx.v, rx.neg, ry.v, ry.neg)

	// interpolation; with non-negative operands every final coefficient
	// w0..w4 is non-negative even though vm1 may not be. The temporaries
	// are reused in place (t3 becomes w3, t1 becomes w1, t2 becomes w2).
	//
	//   t3 = (v2 - vm1)/3          = w1 + w2 + 3*w3 + 5*w4
	//   t1 = (v1 - vm1)/2          = w1 + w3
	//   t2 = v1 - v0               = w1 + w2 + w3 + w4
	//   t3 = (t3 - t2)/2           = w3 + 2*w4
	//   w3 = t3 - 2*vinf
	//   w1 = t1 - w3
	//   w2 = t2 - w1 - w3 - w4
	t3 := v2
	t3.sub(vm1.v, vm1.neg)
	t3.divExactW(3)
	t2 := snat{v: nat(nil).set(v1.v), neg: v1.neg}
	t2.sub(v0, false) // t2 = v1 - v0
	t1 := v1
	t1.sub(vm1.v, vm1.neg)
	t1.divExactW(2)
	t3.sub(t2.v, t2.neg)
	t3.divExactW(2)
	t3.sub(vinf, false)
	t3.sub(vinf, false) // w3
	t1.sub(t3.v, t3.neg) // w1
	t2.sub(t1.v, t1.neg)
	t2.sub(t3.v, t3.neg)
	t2.sub(vinf, false) // w2

	if debugBignum && (t1.neg || t2.neg || t3.neg) {
		panic("toom3: negative coefficient")
	}

	// recompose z = w4*B^4 + w3*B^3 + w2*B^2 + w1*B + w0, B = 10**(_DW*k)
	z = z.make(m + n)
	z.clear()
	addAt(z, v0, 0)
	addAt(z, t1.v, k)
	addAt(z, t2.v, 2*k)
	addAt(z, t3.v, 3*k)
	addAt(z, vinf, 4*k)

	return z.norm()
}
